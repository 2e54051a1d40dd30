package archetypes

import (
	"github.com/pixelforge/minismash/components"
	"github.com/pixelforge/minismash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Fighter = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.Object,
		components.Physics,
		components.Combat,
		components.Health,
		components.FighterInput,
	)
	Round = newArchetype(
		components.Round,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Rules = newArchetype(
		components.Rules,
	)
	Debug = newArchetype(
		components.Debug,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(e *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	entry := e.World.Entry(e.Create(
		ecs.LayerDefault,
		append(a.components, cs...)...,
	))
	return entry
}
