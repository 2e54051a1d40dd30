package systems

import (
	"github.com/pixelforge/minismash/components"
	cfg "github.com/pixelforge/minismash/config"
	"github.com/pixelforge/minismash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics advances both fighters by the frame delta: horizontal
// displacement, then gravity, then vertical displacement. The order
// matters - horizontal motion is undamped and immediate while vertical
// motion always lags gravity by one step.
func UpdatePhysics(e *ecs.ECS) {
	rules := GetRules(e)
	dt := GetClock(e).DeltaMS
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		integrate(rules, entry, dt)
	})
}

func integrate(rules *cfg.Tuning, entry *donburi.Entry, dt float64) {
	physics := components.Physics.Get(entry)
	combat := components.Combat.Get(entry)
	obj := components.Object.Get(entry).Object

	obj.X += physics.SpeedX

	physics.SpeedY += rules.Fighter.Gravity
	obj.Y += physics.SpeedY

	// Floor collision: snap and recompute ground state from geometry
	if obj.Y+obj.H >= rules.Arena.FloorY {
		obj.Y = rules.Arena.FloorY - obj.H
		physics.SpeedY = 0
		physics.OnGround = true
	} else {
		physics.OnGround = false
	}

	// Side walls apply even mid-air
	obj.X = clamp(obj.X, rules.Arena.EdgeMargin, float64(rules.Arena.Width)-obj.W-rules.Arena.EdgeMargin)
	obj.Update()

	combat.AttackTimer = decay(combat.AttackTimer, dt)
	combat.CooldownTimer = decay(combat.CooldownTimer, dt)
	if combat.AttackTimer == 0 {
		// Hit window closed: next activation starts clean even though
		// the cooldown may still be running.
		combat.AttackHasHit = false
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func decay(timer, dt float64) float64 {
	timer -= dt
	if timer < 0 {
		return 0
	}
	return timer
}
