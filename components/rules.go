package components

import (
	cfg "github.com/pixelforge/minismash/config"
	"github.com/yohamta/donburi"
)

// Rules is the singleton tuning bundle the simulation was constructed
// with. Systems read constants from here rather than the config
// globals so tests can run worlds with overridden values.
var Rules = donburi.NewComponentType[cfg.Tuning]()
