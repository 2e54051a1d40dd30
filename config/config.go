package config

import (
	"image/color"
	"time"
)

// ArenaConfig describes the fixed play area
type ArenaConfig struct {
	Width  int
	Height int

	FloorY     float64 // top edge of the floor line
	EdgeMargin float64 // fighters can never cross closer to a side than this

	// Spawn positions as fractions of arena width (fighter centered on them)
	SpawnLeftFraction  float64
	SpawnRightFraction float64

	BackgroundColor color.RGBA
	FloorColor      color.RGBA
}

// FighterConfig contains per-fighter movement and body values.
// Both fighters share one shape; they differ only in color and controls.
type FighterConfig struct {
	// Dimensions
	Width  int
	Height int

	// Movement
	MoveSpeed float64
	JumpForce float64
	Gravity   float64

	// Vitality
	MaxHealth int
}

// CombatConfig contains attack timing, hitbox geometry and hit effects.
// Timers are in milliseconds of simulation time.
type CombatConfig struct {
	AttackDuration float64 // active hit window
	AttackCooldown float64 // gap before the next attack may start
	AttackDamage   int

	// Hitbox geometry
	AttackWidth float64 // hitbox width
	AttackReach float64 // offset past the fighter's leading edge

	// Knockback impulse applied to the defender (overwrites velocity)
	KnockbackX float64
	KnockbackY float64
}

// RoundConfig controls the round-end freeze and rematch reset
type RoundConfig struct {
	ResetDelay time.Duration // wall-clock pause before both fighters reset
}

// UIConfig contains HUD dimensions and colors
type UIConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	HealthBarY      float64
	HealthBarMargin float64

	HealthBarBgColor color.RGBA
	HitboxColor      color.RGBA
	KOOverlayAlpha   float64 // peak overlay darkness during the reset freeze

	HintText string
}

// Tuning bundles everything the simulation reads. A copy is handed to
// the world at construction so tests can override constants without
// touching the globals.
type Tuning struct {
	Arena   ArenaConfig
	Fighter FighterConfig
	Combat  CombatConfig
	Round   RoundConfig
	UI      UIConfig
}

// DefaultTuning returns the standard game values
func DefaultTuning() Tuning {
	return Tuning{
		Arena:   Arena,
		Fighter: Fighter,
		Combat:  Combat,
		Round:   Round,
		UI:      UI,
	}
}

// Global configuration instances
var Arena ArenaConfig
var Fighter FighterConfig
var Combat CombatConfig
var Round RoundConfig
var UI UIConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	Player1Red  = color.RGBA{R: 240, G: 120, B: 120, A: 255}
	Player2Blue = color.RGBA{R: 120, G: 170, B: 255, A: 255}
	BarRed      = color.RGBA{R: 220, G: 70, B: 70, A: 255}
	BarBlue     = color.RGBA{R: 70, G: 160, B: 220, A: 255}
	BarGray     = color.RGBA{R: 60, G: 60, B: 60, A: 255}
)

// Direction constants for fighter facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Arena = ArenaConfig{
		Width:  900,
		Height: 500,

		FloorY:     420, // Height - 80
		EdgeMargin: 20,

		SpawnLeftFraction:  0.25,
		SpawnRightFraction: 0.75,

		BackgroundColor: color.RGBA{R: 18, G: 18, B: 40, A: 255},
		FloorColor:      color.RGBA{R: 100, G: 100, B: 120, A: 255},
	}

	Fighter = FighterConfig{
		Width:  60,
		Height: 80,

		MoveSpeed: 6,
		JumpForce: 16,
		Gravity:   0.8,

		MaxHealth: 100,
	}

	Combat = CombatConfig{
		AttackDuration: 200,
		AttackCooldown: 400,
		AttackDamage:   12,

		AttackWidth: 50,
		AttackReach: 30,

		KnockbackX: 10,
		KnockbackY: 6,
	}

	Round = RoundConfig{
		ResetDelay: 800 * time.Millisecond,
	}

	UI = UIConfig{
		HealthBarWidth:  300,
		HealthBarHeight: 20,
		HealthBarY:      30,
		HealthBarMargin: 50,

		HealthBarBgColor: BarGray,
		HitboxColor:      color.RGBA{R: 255, G: 230, B: 150, A: 255},
		KOOverlayAlpha:   120,

		HintText: "Arrow/WASD to move, Space/F to attack",
	}
}
