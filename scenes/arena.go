package scenes

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	cfg "github.com/pixelforge/minismash/config"
	"github.com/pixelforge/minismash/systems"
	"github.com/pixelforge/minismash/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs the whole game: two locally controlled fighters in
// a fixed arena, looping rounds forever. There is no other scene.
type ArenaScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewArenaScene() *ArenaScene {
	return &ArenaScene{}
}

func (s *ArenaScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

func (s *ArenaScene) Draw(screen *ebiten.Image) {
	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

// configure builds the world. System registration order is the frame
// order: clock, input snapshot, input application, integration, combat
// resolution, round control.
func (s *ArenaScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())
	tuning := cfg.DefaultTuning()

	factory.CreateRules(e, tuning)
	factory.CreateClock(e)

	p1 := factory.CreateFighter(e, &tuning, "Player 1", cfg.Player1Red,
		cfg.SchemeArrows, tuning.Arena.SpawnLeftFraction)
	p2 := factory.CreateFighter(e, &tuning, "Player 2", cfg.Player2Blue,
		cfg.SchemeWASD, tuning.Arena.SpawnRightFraction)
	factory.CreateRound(e, p1, p2)

	e.AddSystem(systems.UpdateClock)
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateDebug)
	e.AddSystem(systems.WithRoundFreeze(systems.UpdateFighters))
	e.AddSystem(systems.WithRoundFreeze(systems.UpdatePhysics))
	e.AddSystem(systems.WithRoundFreeze(systems.UpdateCombat))
	e.AddSystem(systems.UpdateRound)

	e.AddRenderer(ecs.LayerDefault, systems.DrawArena)
	e.AddRenderer(ecs.LayerDefault, systems.DrawFighters)
	e.AddRenderer(ecs.LayerDefault, systems.DrawHitboxes)
	e.AddRenderer(ecs.LayerDefault, systems.DrawHUD)
	e.AddRenderer(ecs.LayerDefault, systems.DrawKOBanner)
	e.AddRenderer(ecs.LayerDefault, systems.DrawDebug)

	s.ecs = e
}
