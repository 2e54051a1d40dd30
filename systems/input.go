package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pixelforge/minismash/components"
	cfg "github.com/pixelforge/minismash/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls raw keyboard state into each fighter's held-action
// snapshot. Must run before UpdateFighters; gameplay systems read only
// the snapshot, never ebiten directly, so headless worlds can drive
// fighters by writing the arrays.
func UpdateInput(e *ecs.ECS) {
	components.FighterInput.Each(e.World, func(entry *donburi.Entry) {
		in := components.FighterInput.Get(entry)
		for a := cfg.ActionID(0); a < cfg.ActionCount; a++ {
			in.Current[a] = ebiten.IsKeyPressed(in.Scheme[a])
		}
	})
}
