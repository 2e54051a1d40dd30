package systems

import (
	"github.com/pixelforge/minismash/archetypes"
	"github.com/pixelforge/minismash/components"
	cfg "github.com/pixelforge/minismash/config"
	"github.com/yohamta/donburi/ecs"
)

// GetRules returns the singleton tuning bundle
func GetRules(e *ecs.ECS) *cfg.Tuning {
	entry, ok := components.Rules.First(e.World)
	if !ok {
		panic("rules singleton missing - world was not built through the factory")
	}
	return components.Rules.Get(entry)
}

// GetClock returns the singleton frame clock
func GetClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		panic("clock singleton missing - world was not built through the factory")
	}
	return components.Clock.Get(entry)
}

// GetRound returns the singleton round controller state
func GetRound(e *ecs.ECS) *components.RoundData {
	entry, ok := components.Round.First(e.World)
	if !ok {
		panic("round singleton missing - world was not built through the factory")
	}
	return components.Round.Get(entry)
}

// GetOrCreateDebug returns the debug overlay singleton, creating it
// disabled on first use.
func GetOrCreateDebug(e *ecs.ECS) *components.DebugData {
	if entry, ok := components.Debug.First(e.World); ok {
		return components.Debug.Get(entry)
	}
	entry := archetypes.Debug.Spawn(e)
	components.Debug.SetValue(entry, components.DebugData{})
	return components.Debug.Get(entry)
}
