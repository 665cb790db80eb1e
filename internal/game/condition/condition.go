// Package condition maps active conditions onto the numeric penalties
// they impose. The core conditions are a fixed table; each active entry
// is expanded into penalty buffs that the stacking rules then fold into
// attack rolls and armor class.
package condition

import (
	"github.com/cory-johannsen/sheet/internal/game/character"
)

// Def is the static definition of a condition. Penalties are per stack
// for valued conditions (frightened 2 imposes -2).
type Def struct {
	ID            string
	Name          string
	Valued        bool
	AttackPenalty int
	ACPenalty     int
	DamagePenalty int
	SpeedPenalty  int
}

// defs is the core condition table.
var defs = map[string]Def{
	"frightened": {ID: "frightened", Name: "Frightened", Valued: true, AttackPenalty: 1, ACPenalty: 1},
	"sickened":   {ID: "sickened", Name: "Sickened", Valued: true, AttackPenalty: 1, ACPenalty: 1},
	"enfeebled":  {ID: "enfeebled", Name: "Enfeebled", Valued: true, AttackPenalty: 1, DamagePenalty: 1},
	"clumsy":     {ID: "clumsy", Name: "Clumsy", Valued: true, ACPenalty: 1},
	"prone":      {ID: "prone", Name: "Prone", AttackPenalty: 2},
	"fatigued":   {ID: "fatigued", Name: "Fatigued", ACPenalty: 1},
	"encumbered": {ID: "encumbered", Name: "Encumbered", SpeedPenalty: 10},
}

// Lookup returns the definition for id, or (zero, false) for conditions
// the table does not model numerically (stunned, slowed, ...).
func Lookup(id string) (Def, bool) {
	d, ok := defs[id]
	return d, ok
}

// scale returns the effective multiplier for an active condition.
func scale(d Def, value int) int {
	if !d.Valued {
		return 1
	}
	if value < 1 {
		return 1
	}
	return value
}

// Penalties expands active conditions into penalty buffs. Unknown
// condition IDs contribute nothing; they stay on the record untouched.
//
// Postcondition: every returned buff has Type BonusPenalty, a negative
// Value, and Active set.
func Penalties(conds []character.Condition) []character.Buff {
	var out []character.Buff
	for _, c := range conds {
		d, ok := Lookup(c.ID)
		if !ok {
			continue
		}
		n := scale(d, c.Value)
		add := func(target character.BuffTarget, penalty int) {
			if penalty == 0 {
				return
			}
			out = append(out, character.Buff{
				Name:   d.Name,
				Type:   character.BonusPenalty,
				Target: target,
				Value:  -penalty * n,
				Active: true,
			})
		}
		add(character.TargetAttack, d.AttackPenalty)
		add(character.TargetAC, d.ACPenalty)
		add(character.TargetDamage, d.DamagePenalty)
		add(character.TargetSpeed, d.SpeedPenalty)
	}
	return out
}
