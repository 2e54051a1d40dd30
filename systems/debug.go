package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pixelforge/minismash/components"
	"github.com/pixelforge/minismash/fonts"
	"github.com/pixelforge/minismash/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the diagnostic overlay with F1
func UpdateDebug(e *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debug := GetOrCreateDebug(e)
		debug.Enabled = !debug.Enabled
	}
}

// DrawDebug outlines each fighter's body box and prints its live
// simulation values. Read-only; enabled with F1.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateDebug(e).Enabled {
		return
	}

	fontFace := fonts.Small.Get()
	tags.Fighter.Each(e.World, func(entry *donburi.Entry) {
		fighter := components.Fighter.Get(entry)
		physics := components.Physics.Get(entry)
		combat := components.Combat.Get(entry)
		obj := components.Object.Get(entry).Object

		vector.StrokeRect(screen,
			float32(obj.X), float32(obj.Y),
			float32(obj.W), float32(obj.H),
			1, fighter.Color, false)

		info := fmt.Sprintf("%s face=%+.0f ground=%t atk=%.0f cd=%.0f",
			fighter.Name, fighter.Facing, physics.OnGround,
			combat.AttackTimer, combat.CooldownTimer)
		text.Draw(screen, info, fontFace, int(obj.X)-10, int(obj.Y)-8, fighter.Color)
	})
}
