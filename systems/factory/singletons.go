package factory

import (
	"github.com/pixelforge/minismash/archetypes"
	"github.com/pixelforge/minismash/components"
	cfg "github.com/pixelforge/minismash/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRules stores the tuning bundle the world will simulate with
func CreateRules(e *ecs.ECS, tuning cfg.Tuning) *donburi.Entry {
	rules := archetypes.Rules.Spawn(e)
	components.Rules.SetValue(rules, tuning)
	return rules
}

// CreateClock spawns the frame clock singleton
func CreateClock(e *ecs.ECS) *donburi.Entry {
	clock := archetypes.Clock.Spawn(e)
	components.Clock.SetValue(clock, components.ClockData{})
	return clock
}

// CreateRound wires the round controller to the two fighters in
// resolve order: attacks are checked first from f1, then from f2.
func CreateRound(e *ecs.ECS, f1, f2 *donburi.Entry) *donburi.Entry {
	round := archetypes.Round.Spawn(e)
	components.Round.SetValue(round, components.RoundData{
		Fighters: [2]*donburi.Entry{f1, f2},
	})
	return round
}
