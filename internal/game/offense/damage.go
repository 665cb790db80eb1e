package offense

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cory-johannsen/sheet/internal/game/abp"
	"github.com/cory-johannsen/sheet/internal/game/catalog"
	"github.com/cory-johannsen/sheet/internal/game/character"
	"github.com/cory-johannsen/sheet/internal/game/dice"
)

// Category orders the damage components in a breakdown.
type Category string

const (
	// CategoryBase is the weapon's own damage dice.
	CategoryBase Category = "base"
	// CategoryStriking is the striking rune's bonus dice.
	CategoryStriking Category = "striking"
	// CategoryPropertyRune is a property rune's typed bonus dice.
	CategoryPropertyRune Category = "propertyRune"
	// CategoryAbility is the ability/static modifier.
	CategoryAbility Category = "ability"
	// CategoryBuff is an active buff's contribution, one per bonus type.
	CategoryBuff Category = "buff"
)

// alignmentTypes are the damage types whose runes only bite against
// matching targets; their components start conditional.
var alignmentTypes = map[string]bool{
	"holy": true, "unholy": true, "chaotic": true,
	"lawful": true, "axiomatic": true, "anarchic": true,
}

// Component is one line of the damage breakdown. Either Dice or Raw is
// meaningful: Raw carries a formula that did not parse and is rendered
// verbatim so display degrades instead of failing.
type Component struct {
	Category   Category        `json:"category"`
	Label      string          `json:"label"`
	Dice       dice.Expression `json:"-"`
	Raw        string          `json:"raw,omitempty"`
	DamageType string          `json:"damageType"`
	// Conditional marks damage that only applies in a matching context
	// (alignment runes); Active tracks the current toggle.
	Conditional bool `json:"conditional"`
	Active      bool `json:"active"`
}

// Formula renders the component's own dice or raw literal.
func (c Component) Formula() string {
	if c.Raw != "" {
		return c.Raw
	}
	return c.Dice.String()
}

// MarshalJSON emits the rendered formula alongside the component fields so
// the serialized breakdown carries each line's dice expression.
func (c Component) MarshalJSON() ([]byte, error) {
	type component Component
	return json.Marshal(struct {
		component
		Formula string `json:"formula"`
	}{component(c), c.Formula()})
}

// Breakdown is the ordered damage decomposition for one weapon.
type Breakdown struct {
	Components []Component `json:"components"`
}

// DamageBreakdown decomposes a wielded weapon's damage into ordered
// components: base dice (with the two-hand die upgrade when wielded in
// both hands), striking bonus dice (rune tier, or the ABP approximation
// under that variant), property-rune dice, the ability modifier, and
// active damage buffs with largest-of-type stacking.
//
// Precondition: weapon must be non-nil; item may be nil.
// Postcondition: pure; inputs are not modified.
func DamageBreakdown(c character.Character, weapon *catalog.WeaponDef, item *character.EquippedItem, twoHanded bool) Breakdown {
	var out Breakdown

	base, parseErr := dice.Parse(weapon.DamageDice)
	if parseErr != nil {
		out.Components = append(out.Components, Component{
			Category:   CategoryBase,
			Label:      weapon.Name,
			Raw:        weapon.DamageDice,
			DamageType: weapon.DamageType,
			Active:     true,
		})
	} else {
		if twoHanded {
			if die := weapon.TwoHandDie(); die > 0 {
				base = base.WithSides(die)
			}
		}
		out.Components = append(out.Components, Component{
			Category:   CategoryBase,
			Label:      weapon.Name,
			Dice:       base,
			DamageType: weapon.DamageType,
			Active:     true,
		})
	}

	strikingDice := 0
	if c.Variants.AutomaticBonusProgression {
		strikingDice = abp.StrikingDice(c.ClampedLevel())
	} else if item != nil && item.Weapon != nil {
		strikingDice = item.Weapon.Striking
	}
	if strikingDice > 0 && parseErr == nil {
		out.Components = append(out.Components, Component{
			Category:   CategoryStriking,
			Label:      "striking",
			Dice:       dice.Expression{Count: strikingDice, Sides: base.Sides},
			DamageType: weapon.DamageType,
			Active:     true,
		})
	}

	if item != nil && item.Weapon != nil {
		for _, pr := range item.Weapon.Property {
			comp := Component{
				Category:   CategoryPropertyRune,
				Label:      pr.ID,
				DamageType: pr.DamageType,
			}
			if expr, err := dice.Parse(pr.DamageDice); err != nil {
				comp.Raw = pr.DamageDice
			} else {
				comp.Dice = expr
			}
			if alignmentTypes[pr.DamageType] {
				comp.Conditional = true
				comp.Active = pr.Active
			} else {
				comp.Active = true
			}
			out.Components = append(out.Components, comp)
		}
	}

	if mod := attackAbilityMod(c, weapon); mod != 0 {
		out.Components = append(out.Components, Component{
			Category:   CategoryAbility,
			Label:      "strength",
			Dice:       dice.Expression{Modifier: mod},
			DamageType: weapon.DamageType,
			Active:     true,
		})
	}

	out.Components = append(out.Components, buffComponents(c.Buffs, weapon.DamageType)...)
	return out
}

// buffComponents flattens active damage buffs into components: the largest
// bonus and the worst typed penalty of each type, then every untyped
// penalty.
func buffComponents(buffs []character.Buff, damageType string) []Component {
	best := map[character.BonusType]character.Buff{}
	worst := map[character.BonusType]character.Buff{}
	var untyped []character.Buff
	for _, b := range character.ActiveBuffs(buffs, character.TargetDamage) {
		switch {
		case b.Type == character.BonusPenalty:
			untyped = append(untyped, b)
		case b.Value < 0:
			if cur, ok := worst[b.Type]; !ok || b.Value < cur.Value {
				worst[b.Type] = b
			}
		default:
			if cur, ok := best[b.Type]; !ok || b.Value > cur.Value {
				best[b.Type] = b
			}
		}
	}
	var out []Component
	for _, bt := range []character.BonusType{character.BonusStatus, character.BonusCircumstance, character.BonusItem} {
		if b, ok := best[bt]; ok {
			out = append(out, Component{
				Category:   CategoryBuff,
				Label:      fmt.Sprintf("%s (%s)", b.Name, b.Type),
				Dice:       dice.Expression{Modifier: b.Value},
				DamageType: damageType,
				Active:     true,
			})
		}
		if b, ok := worst[bt]; ok {
			out = append(out, Component{
				Category:   CategoryBuff,
				Label:      fmt.Sprintf("%s (%s)", b.Name, b.Type),
				Dice:       dice.Expression{Modifier: b.Value},
				DamageType: damageType,
				Active:     true,
			})
		}
	}
	for _, b := range untyped {
		out = append(out, Component{
			Category:   CategoryBuff,
			Label:      fmt.Sprintf("%s (%s)", b.Name, b.Type),
			Dice:       dice.Expression{Modifier: b.Value},
			DamageType: damageType,
			Active:     true,
		})
	}
	return out
}

// TypedFormula is one rendered dice-and-modifier formula for a damage type.
type TypedFormula struct {
	DamageType string `json:"damageType"`
	Formula    string `json:"formula"`
}

// Formulas aggregates the active components by damage type and renders one
// formula per type, in first-appearance order. Dice of equal size merge
// into one term; raw literals are appended verbatim.
//
// Postcondition: inactive and untoggled conditional components contribute
// nothing.
func (b Breakdown) Formulas() []TypedFormula {
	type bucket struct {
		diceBySides map[int]int
		sidesOrder  []int
		modifier    int
		raws        []string
	}
	buckets := map[string]*bucket{}
	var order []string

	for _, comp := range b.Components {
		if !comp.Active {
			continue
		}
		bk, ok := buckets[comp.DamageType]
		if !ok {
			bk = &bucket{diceBySides: map[int]int{}}
			buckets[comp.DamageType] = bk
			order = append(order, comp.DamageType)
		}
		if comp.Raw != "" {
			bk.raws = append(bk.raws, comp.Raw)
			continue
		}
		if comp.Dice.Count > 0 {
			if bk.diceBySides[comp.Dice.Sides] == 0 {
				bk.sidesOrder = append(bk.sidesOrder, comp.Dice.Sides)
			}
			bk.diceBySides[comp.Dice.Sides] += comp.Dice.Count
		}
		bk.modifier += comp.Dice.Modifier
	}

	var out []TypedFormula
	for _, dt := range order {
		bk := buckets[dt]
		var parts []string
		for _, sides := range bk.sidesOrder {
			parts = append(parts, fmt.Sprintf("%dd%d", bk.diceBySides[sides], sides))
		}
		formula := strings.Join(parts, "+")
		if bk.modifier != 0 || formula == "" {
			if formula == "" {
				formula = fmt.Sprintf("%d", bk.modifier)
			} else {
				formula = fmt.Sprintf("%s%+d", formula, bk.modifier)
			}
		}
		for _, raw := range bk.raws {
			if formula == "" {
				formula = raw
			} else {
				formula = formula + "+" + raw
			}
		}
		out = append(out, TypedFormula{DamageType: dt, Formula: formula})
	}
	return out
}

// WeaponStats bundles everything the table needs for one weapon.
type WeaponStats struct {
	AttackBonus int            `json:"attackBonus"`
	MAP         string         `json:"map"`
	Damage      Breakdown      `json:"damage"`
	Formulas    []TypedFormula `json:"formulas"`
}

// DeriveWeaponStats derives the attack bonus, MAP ladder string, and
// damage breakdown for one wielded weapon.
//
// Precondition: weapon must be non-nil; item may be nil.
func DeriveWeaponStats(c character.Character, weapon *catalog.WeaponDef, item *character.EquippedItem, twoHanded bool) WeaponStats {
	bonus := AttackBonus(c, weapon, item)
	breakdown := DamageBreakdown(c, weapon, item, twoHanded)
	return WeaponStats{
		AttackBonus: bonus,
		MAP:         FormatAttackWithMAP(bonus, weapon.IsAgile()),
		Damage:      breakdown,
		Formulas:    breakdown.Formulas(),
	}
}
