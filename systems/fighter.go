package systems

import (
	"github.com/pixelforge/minismash/components"
	cfg "github.com/pixelforge/minismash/config"
	"github.com/pixelforge/minismash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateFighters maps each fighter's held actions onto its velocity,
// facing and attack timers for this tick.
func UpdateFighters(e *ecs.ECS) {
	rules := GetRules(e)
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		applyInput(rules, entry)
	})
}

func applyInput(rules *cfg.Tuning, entry *donburi.Entry) {
	in := components.FighterInput.Get(entry)
	fighter := components.Fighter.Get(entry)
	physics := components.Physics.Get(entry)
	combat := components.Combat.Get(entry)

	// Horizontal speed is rebuilt from held keys every tick. Right is
	// evaluated last and overwrites, so holding both moves right.
	physics.SpeedX = 0
	if in.Held(cfg.ActionLeft) {
		physics.SpeedX = -rules.Fighter.MoveSpeed
		fighter.Facing = cfg.DirectionLeft
	}
	if in.Held(cfg.ActionRight) {
		physics.SpeedX = rules.Fighter.MoveSpeed
		fighter.Facing = cfg.DirectionRight
	}

	// Jump only from the ground; leaving it immediately blocks a
	// second jump until the floor recomputes OnGround.
	if in.Held(cfg.ActionJump) && physics.OnGround {
		physics.SpeedY = -rules.Fighter.JumpForce
		physics.OnGround = false
	}

	// A new attack needs both the hit window and the cooldown clear.
	// Holding the key neither buffers nor repeats.
	if in.Held(cfg.ActionAttack) && combat.AttackTimer <= 0 && combat.CooldownTimer <= 0 {
		combat.AttackTimer = rules.Combat.AttackDuration
		combat.CooldownTimer = rules.Combat.AttackCooldown
		combat.AttackHasHit = false
	}
}
