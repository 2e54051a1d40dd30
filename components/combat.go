package components

import "github.com/yohamta/donburi"

// CombatData holds a fighter's attack sub-state. Timers count down in
// milliseconds of simulation time; AttackTimer > 0 means the hit
// window is open, CooldownTimer > 0 blocks starting a new attack even
// after the window closes.
type CombatData struct {
	AttackTimer   float64
	CooldownTimer float64
	AttackHasHit  bool // at most one hit lands per activation
}

var Combat = donburi.NewComponentType[CombatData]()
