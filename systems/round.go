package systems

import (
	"time"

	"github.com/pixelforge/minismash/components"
	cfg "github.com/pixelforge/minismash/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WithRoundFreeze wraps a gameplay system so it is skipped while the
// post-KO freeze is running. Rendering and the round controller itself
// keep running; simulation time is frozen while the wall clock counts
// down to the reset.
func WithRoundFreeze(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetRound(e).Frozen {
			return
		}
		system(e)
	}
}

// UpdateRound runs after combat resolution. A fighter at zero health
// starts the freeze; once the reset delay has elapsed on the wall
// clock, both fighters return to their start state and the next round
// begins. There is no score - this is an infinite rematch loop.
func UpdateRound(e *ecs.ECS) {
	round := GetRound(e)
	rules := GetRules(e)

	if round.Frozen {
		if round.Fade != nil {
			round.FadeAlpha, _ = round.Fade.Update(float32(GetClock(e).DeltaMS) / 1000)
		}
		if !time.Now().Before(round.FreezeUntil) {
			round.Frozen = false
			round.Fade = nil
			round.FadeAlpha = 0
			resetFighters(rules, round)
		}
		return
	}

	for _, entry := range round.Fighters {
		if components.Health.Get(entry).Current <= 0 {
			round.Frozen = true
			round.FreezeUntil = time.Now().Add(rules.Round.ResetDelay)
			round.Fade = gween.New(0, 1, float32(rules.Round.ResetDelay.Seconds()), ease.OutQuad)
			round.FadeAlpha = 0
			return
		}
	}
}

func resetFighters(rules *cfg.Tuning, round *components.RoundData) {
	for _, entry := range round.Fighters {
		resetFighter(rules, entry)
	}
}

// resetFighter restores round-start state: designated spawn position
// resting on the floor, zeroed velocity and timers, full health,
// facing right. Idempotent regardless of prior state.
func resetFighter(rules *cfg.Tuning, entry *donburi.Entry) {
	fighter := components.Fighter.Get(entry)
	physics := components.Physics.Get(entry)
	combat := components.Combat.Get(entry)
	hp := components.Health.Get(entry)
	obj := components.Object.Get(entry).Object

	obj.X = float64(rules.Arena.Width)*fighter.SpawnFraction - obj.W/2
	obj.Y = rules.Arena.FloorY - obj.H
	obj.Update()

	physics.SpeedX = 0
	physics.SpeedY = 0
	physics.OnGround = false

	combat.AttackTimer = 0
	combat.CooldownTimer = 0
	combat.AttackHasHit = false

	hp.Current = hp.Max
	fighter.Facing = cfg.DirectionRight
}
