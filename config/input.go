package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical fighter action
type ActionID int

const (
	ActionLeft ActionID = iota
	ActionRight
	ActionJump
	ActionAttack
	ActionCount // Must be last - used for array sizing
)

// ControlScheme maps each action to the key bound to it. Schemes are
// fixed at fighter construction and never change afterwards.
type ControlScheme [ActionCount]ebiten.Key

// The two local schemes, matching the on-screen hint text.
var (
	// SchemeArrows drives player 1: arrow keys plus Space to attack.
	SchemeArrows = ControlScheme{
		ActionLeft:   ebiten.KeyArrowLeft,
		ActionRight:  ebiten.KeyArrowRight,
		ActionJump:   ebiten.KeyArrowUp,
		ActionAttack: ebiten.KeySpace,
	}

	// SchemeWASD drives player 2: WASD plus F to attack.
	SchemeWASD = ControlScheme{
		ActionLeft:   ebiten.KeyA,
		ActionRight:  ebiten.KeyD,
		ActionJump:   ebiten.KeyW,
		ActionAttack: ebiten.KeyF,
	}
)
