package factory

import (
	"image/color"

	"github.com/pixelforge/minismash/archetypes"
	"github.com/pixelforge/minismash/components"
	cfg "github.com/pixelforge/minismash/config"
	"github.com/pixelforge/minismash/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateFighter spawns one fighter at its designated start position,
// resting on the floor and facing right. The control scheme and color
// are fixed for the lifetime of the entity; rounds reuse it via reset.
func CreateFighter(e *ecs.ECS, rules *cfg.Tuning, name string, col color.RGBA, scheme cfg.ControlScheme, spawnFraction float64) *donburi.Entry {
	fighter := archetypes.Fighter.Spawn(e)

	w := float64(rules.Fighter.Width)
	h := float64(rules.Fighter.Height)
	x := float64(rules.Arena.Width)*spawnFraction - w/2
	y := rules.Arena.FloorY - h

	obj := resolv.NewObject(x, y, w, h)
	obj.AddTags(tags.ResolvFighter)
	obj.Data = fighter
	components.Object.SetValue(fighter, components.ObjectData{Object: obj})

	components.Fighter.SetValue(fighter, components.FighterData{
		Name:          name,
		Color:         col,
		Facing:        cfg.DirectionRight,
		SpawnFraction: spawnFraction,
	})
	components.Physics.SetValue(fighter, components.PhysicsData{})
	components.Combat.SetValue(fighter, components.CombatData{})
	components.Health.SetValue(fighter, components.HealthData{
		Current: rules.Fighter.MaxHealth,
		Max:     rules.Fighter.MaxHealth,
	})
	components.FighterInput.SetValue(fighter, components.FighterInputData{
		Scheme: scheme,
	})

	return fighter
}
