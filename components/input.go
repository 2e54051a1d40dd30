package components

import (
	cfg "github.com/pixelforge/minismash/config"
	"github.com/yohamta/donburi"
)

// FighterInputData stores per-fighter held state for the four bound
// actions. UpdateInput fills Current from the keyboard each frame;
// the simulation reads only these booleans, never raw key state.
type FighterInputData struct {
	Current [cfg.ActionCount]bool
	Scheme  cfg.ControlScheme // fixed at construction
}

// Held reports whether the action is currently held down
func (in *FighterInputData) Held(a cfg.ActionID) bool {
	return in.Current[a]
}

var FighterInput = donburi.NewComponentType[FighterInputData]()
