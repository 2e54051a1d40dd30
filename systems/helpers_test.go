package systems

import (
	"github.com/pixelforge/minismash/components"
	cfg "github.com/pixelforge/minismash/config"
	"github.com/pixelforge/minismash/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const frameMS = 16.0 // one 60fps frame worth of simulation time

// newTestWorld builds a headless world with the given tuning and two
// fighters at their start positions, the same way the arena scene
// does. No renderers and no real clock; tests drive systems directly.
func newTestWorld(tuning cfg.Tuning) (*ecs.ECS, *donburi.Entry, *donburi.Entry) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateRules(e, tuning)
	factory.CreateClock(e)

	p1 := factory.CreateFighter(e, &tuning, "Player 1", cfg.Player1Red,
		cfg.SchemeArrows, tuning.Arena.SpawnLeftFraction)
	p2 := factory.CreateFighter(e, &tuning, "Player 2", cfg.Player2Blue,
		cfg.SchemeWASD, tuning.Arena.SpawnRightFraction)
	factory.CreateRound(e, p1, p2)

	return e, p1, p2
}

// tick advances one simulated frame in scene system order
func tick(e *ecs.ECS, dtMS float64) {
	GetClock(e).DeltaMS = dtMS
	WithRoundFreeze(UpdateFighters)(e)
	WithRoundFreeze(UpdatePhysics)(e)
	WithRoundFreeze(UpdateCombat)(e)
	UpdateRound(e)
}

// hold replaces a fighter's held actions for the next frames
func hold(entry *donburi.Entry, actions ...cfg.ActionID) {
	in := components.FighterInput.Get(entry)
	in.Current = [cfg.ActionCount]bool{}
	for _, a := range actions {
		in.Current[a] = true
	}
}

// moveTo teleports a fighter's body box
func moveTo(entry *donburi.Entry, x, y float64) {
	obj := components.Object.Get(entry).Object
	obj.X = x
	obj.Y = y
	obj.Update()
}

// startAttack opens an attack window directly, bypassing input
func startAttack(e *ecs.ECS, entry *donburi.Entry) {
	rules := GetRules(e)
	combat := components.Combat.Get(entry)
	combat.AttackTimer = rules.Combat.AttackDuration
	combat.CooldownTimer = rules.Combat.AttackCooldown
	combat.AttackHasHit = false
}

// ground lets a fighter settle onto the floor with no input held
func ground(e *ecs.ECS, entry *donburi.Entry) {
	hold(entry)
	for i := 0; i < 60 && !components.Physics.Get(entry).OnGround; i++ {
		tick(e, frameMS)
	}
}
