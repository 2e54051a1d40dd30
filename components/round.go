package components

import (
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// RoundData is the singleton round controller state. Fighters keeps
// the two entries in resolve order (player 1 first). While Frozen the
// gameplay systems are skipped and rendering continues; when the wall
// clock passes FreezeUntil both fighters reset to their start state.
type RoundData struct {
	Fighters [2]*donburi.Entry

	Frozen      bool
	FreezeUntil time.Time

	// KO banner fade, driven while frozen
	Fade      *gween.Tween
	FadeAlpha float32
}

var Round = donburi.NewComponentType[RoundData]()
