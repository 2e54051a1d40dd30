package systems

import (
	"testing"

	"github.com/pixelforge/minismash/components"
	cfg "github.com/pixelforge/minismash/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrationOrderGravityBeforeVerticalMove(t *testing.T) {
	e, p1, _ := newTestWorld(cfg.DefaultTuning())
	physics := components.Physics.Get(p1)
	obj := components.Object.Get(p1).Object

	moveTo(p1, 400, 100) // well above the floor
	physics.SpeedY = 0

	GetClock(e).DeltaMS = frameMS
	UpdatePhysics(e)

	// Gravity is added to the speed first, then the speed moves the
	// body, so even a resting body falls on its first airborne tick.
	assert.InDelta(t, 100.8, obj.Y, 1e-9)
	assert.InDelta(t, 0.8, physics.SpeedY, 1e-9)
}

func TestFloorSnapAndGroundState(t *testing.T) {
	tuning := cfg.DefaultTuning()
	e, p1, _ := newTestWorld(tuning)
	physics := components.Physics.Get(p1)
	obj := components.Object.Get(p1).Object

	moveTo(p1, 400, 200)
	for i := 0; i < 120; i++ {
		require.LessOrEqual(t, obj.Y+obj.H, tuning.Arena.FloorY)
		if physics.OnGround {
			break
		}
		assert.False(t, physics.OnGround, "airborne body must not report ground contact")
		tick(e, frameMS)
	}

	assert.True(t, physics.OnGround)
	assert.Equal(t, tuning.Arena.FloorY-obj.H, obj.Y)
	assert.Equal(t, 0.0, physics.SpeedY)
}

func TestHorizontalClampAtArenaEdges(t *testing.T) {
	tuning := cfg.DefaultTuning()
	e, p1, _ := newTestWorld(tuning)
	obj := components.Object.Get(p1).Object

	hold(p1, cfg.ActionLeft)
	for i := 0; i < 120; i++ {
		tick(e, frameMS)
		require.GreaterOrEqual(t, obj.X, tuning.Arena.EdgeMargin)
	}
	assert.Equal(t, tuning.Arena.EdgeMargin, obj.X)

	hold(p1, cfg.ActionRight)
	maxX := float64(tuning.Arena.Width) - obj.W - tuning.Arena.EdgeMargin
	for i := 0; i < 240; i++ {
		tick(e, frameMS)
		require.LessOrEqual(t, obj.X, maxX)
	}
	assert.Equal(t, maxX, obj.X)
}

func TestClampAppliesMidAir(t *testing.T) {
	tuning := cfg.DefaultTuning()
	e, p1, _ := newTestWorld(tuning)
	physics := components.Physics.Get(p1)
	obj := components.Object.Get(p1).Object

	moveTo(p1, 25, 100)
	physics.SpeedX = -50 // knockback past the wall while airborne

	GetClock(e).DeltaMS = frameMS
	UpdatePhysics(e)

	assert.Equal(t, tuning.Arena.EdgeMargin, obj.X)
	assert.False(t, physics.OnGround)
}

func TestTimerDecayResetsHitFlagWhenWindowCloses(t *testing.T) {
	e, p1, _ := newTestWorld(cfg.DefaultTuning())
	combat := components.Combat.Get(p1)

	startAttack(e, p1)
	combat.AttackHasHit = true

	GetClock(e).DeltaMS = 120
	UpdatePhysics(e)
	assert.Equal(t, 80.0, combat.AttackTimer)
	assert.True(t, combat.AttackHasHit, "flag persists while the window is open")

	UpdatePhysics(e)
	assert.Equal(t, 0.0, combat.AttackTimer)
	assert.False(t, combat.AttackHasHit, "window closing clears the flag")
	assert.Equal(t, 160.0, combat.CooldownTimer, "cooldown keeps running independently")
}

func TestTimerDecayAcrossUnevenFrames(t *testing.T) {
	e, p1, _ := newTestWorld(cfg.DefaultTuning())
	combat := components.Combat.Get(p1)
	startAttack(e, p1)

	for _, dt := range []float64{33, 7, 60} {
		GetClock(e).DeltaMS = dt
		UpdatePhysics(e)
	}
	assert.Equal(t, 100.0, combat.AttackTimer)

	GetClock(e).DeltaMS = 250
	UpdatePhysics(e)
	assert.Equal(t, 0.0, combat.AttackTimer, "decay clamps at zero, never negative")
	assert.Equal(t, 50.0, combat.CooldownTimer)
}
