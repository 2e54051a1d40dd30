package config

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestDefaultTuningMatchesGlobals(t *testing.T) {
	tuning := DefaultTuning()

	assert.Equal(t, Arena, tuning.Arena)
	assert.Equal(t, Fighter, tuning.Fighter)
	assert.Equal(t, Combat, tuning.Combat)
	assert.Equal(t, Round, tuning.Round)
	assert.Equal(t, UI, tuning.UI)
}

func TestArenaGeometry(t *testing.T) {
	assert.Equal(t, float64(Arena.Height-80), Arena.FloorY)
	assert.Less(t, Arena.SpawnLeftFraction, Arena.SpawnRightFraction)

	// Both spawn boxes must fit inside the clamped range
	for _, frac := range []float64{Arena.SpawnLeftFraction, Arena.SpawnRightFraction} {
		x := float64(Arena.Width)*frac - float64(Fighter.Width)/2
		assert.GreaterOrEqual(t, x, Arena.EdgeMargin)
		assert.LessOrEqual(t, x+float64(Fighter.Width), float64(Arena.Width)-Arena.EdgeMargin)
	}
}

func TestSchemesDoNotShareKeys(t *testing.T) {
	seen := map[ebiten.Key]bool{}
	for _, scheme := range []ControlScheme{SchemeArrows, SchemeWASD} {
		for a := ActionID(0); a < ActionCount; a++ {
			assert.False(t, seen[scheme[a]], "key %v bound twice", scheme[a])
			seen[scheme[a]] = true
		}
	}
}
