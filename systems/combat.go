package systems

import (
	"github.com/pixelforge/minismash/components"
	cfg "github.com/pixelforge/minismash/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Rect is an axis-aligned box in arena coordinates
type Rect struct {
	X, Y, W, H float64
}

// AttackHitbox derives the active attack box from a fighter's live
// state. Recomputed on every call, never cached; ok is false while no
// hit window is open. The box sits just past the leading edge in the
// facing direction, inset 5 from the top of the body.
func AttackHitbox(rules *cfg.Tuning, fighter *components.FighterData, combat *components.CombatData, obj *resolv.Object) (Rect, bool) {
	if combat.AttackTimer <= 0 {
		return Rect{}, false
	}
	w := rules.Combat.AttackWidth
	h := obj.H - 10

	var x float64
	if fighter.Facing > 0 {
		x = obj.X + obj.W + rules.Combat.AttackReach - w
	} else {
		x = obj.X - rules.Combat.AttackReach
	}
	return Rect{X: x, Y: obj.Y + 5, W: w, H: h}, true
}

// UpdateCombat resolves attacks for both ordered pairs every tick:
// fighter 1 against fighter 2, then fighter 2 against fighter 1. Both
// directions run even in the same frame, so trading hits
// simultaneously is possible.
func UpdateCombat(e *ecs.ECS) {
	rules := GetRules(e)
	fighters := GetRound(e).Fighters
	for i, attacker := range fighters {
		resolveAttack(rules, attacker, fighters[1-i])
	}
}

func resolveAttack(rules *cfg.Tuning, attacker, defender *donburi.Entry) {
	combat := components.Combat.Get(attacker)
	fighter := components.Fighter.Get(attacker)
	obj := components.Object.Get(attacker).Object

	box, ok := AttackHitbox(rules, fighter, combat, obj)
	if !ok || combat.AttackHasHit {
		return
	}

	defObj := components.Object.Get(defender).Object
	hit := resolv.NewRectangle(box.X, box.Y, box.W, box.H)
	body := resolv.NewRectangle(defObj.X, defObj.Y, defObj.W, defObj.H)
	// Intersection reports outline crossings only; a point-blank box
	// sitting fully inside the body overlaps without crossing it.
	if hit.Intersection(0, 0, body) == nil && !hit.ContainedBy(body) {
		return
	}

	combat.AttackHasHit = true

	hp := components.Health.Get(defender)
	hp.Current -= rules.Combat.AttackDamage
	if hp.Current < 0 {
		hp.Current = 0
	}

	// Knockback overwrites the defender's velocity, it never stacks
	defPhysics := components.Physics.Get(defender)
	defPhysics.SpeedX = rules.Combat.KnockbackX * fighter.Facing
	defPhysics.SpeedY = -rules.Combat.KnockbackY
}
