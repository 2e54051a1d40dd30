package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pixelforge/minismash/components"
	"github.com/pixelforge/minismash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawArena paints the background and the floor strip
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	rules := GetRules(e)
	screen.Fill(rules.Arena.BackgroundColor)

	vector.DrawFilledRect(screen,
		50, float32(rules.Arena.FloorY)+10,
		float32(rules.Arena.Width)-100, 20,
		rules.Arena.FloorColor, false)
}

// DrawFighters renders each fighter's body box in its color
func DrawFighters(e *ecs.ECS, screen *ebiten.Image) {
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		fighter := components.Fighter.Get(entry)
		obj := components.Object.Get(entry).Object
		vector.DrawFilledRect(screen,
			float32(obj.X), float32(obj.Y),
			float32(obj.W), float32(obj.H),
			fighter.Color, false)
	})
}

// DrawHitboxes renders the active attack boxes, derived from live
// state the same way combat resolution sees them.
func DrawHitboxes(e *ecs.ECS, screen *ebiten.Image) {
	rules := GetRules(e)
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		fighter := components.Fighter.Get(entry)
		combat := components.Combat.Get(entry)
		obj := components.Object.Get(entry).Object

		box, ok := AttackHitbox(rules, fighter, combat, obj)
		if !ok {
			return
		}
		vector.DrawFilledRect(screen,
			float32(box.X), float32(box.Y),
			float32(box.W), float32(box.H),
			rules.UI.HitboxColor, false)
	})
}
