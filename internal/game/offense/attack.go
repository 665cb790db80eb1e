// Package offense derives attack bonuses, the multiple attack penalty
// ladder, and the structured damage breakdown for a wielded weapon.
package offense

import (
	"fmt"

	"github.com/cory-johannsen/sheet/internal/game/ability"
	"github.com/cory-johannsen/sheet/internal/game/abp"
	"github.com/cory-johannsen/sheet/internal/game/catalog"
	"github.com/cory-johannsen/sheet/internal/game/character"
)

// floorHalf halves n rounding toward negative infinity, matching the
// propulsive trait's half-strength contribution for weak characters.
func floorHalf(n int) int {
	if n >= 0 {
		return n / 2
	}
	return (n - 1) / 2
}

// attackAbilityMod returns the ability contribution to the attack roll:
// STR for melee and thrown weapons, half STR (floored) for propulsive
// ranged weapons, nothing for other ranged weapons.
func attackAbilityMod(c character.Character, weapon *catalog.WeaponDef) int {
	strMod := c.Abilities.StrMod()
	if weapon.IsMelee() || weapon.Thrown {
		return strMod
	}
	if weapon.IsPropulsive() {
		return floorHalf(strMod)
	}
	return 0
}

// weaponPotency returns the attack item bonus: the weapon's potency rune,
// or the Automatic Bonus Progression attack table when that variant is
// active. Never both.
func weaponPotency(c character.Character, item *character.EquippedItem) int {
	if c.Variants.AutomaticBonusProgression {
		return abp.AttackPotency(c.ClampedLevel())
	}
	if item != nil && item.Weapon != nil {
		return item.Weapon.Potency
	}
	return 0
}

// AttackBonus derives the first-attack bonus for a wielded weapon:
// ability modifier + proficiency + potency item bonus + net buff modifier.
//
// Precondition: weapon must be non-nil. item may be nil (unruned weapon).
// Postcondition: pure; inputs are not modified.
func AttackBonus(c character.Character, weapon *catalog.WeaponDef, item *character.EquippedItem) int {
	return attackAbilityMod(c, weapon) +
		ability.ProficiencyBonus(c.ClampedLevel(), c.Weapons, c.Variants.ProficiencyWithoutLevel) +
		weaponPotency(c, item) +
		character.StackBuffs(c.Buffs, character.TargetAttack)
}

// MAPPenalties returns the three-attack penalty ladder: 0/-5/-10, or
// 0/-4/-8 for agile weapons.
func MAPPenalties(agile bool) [3]int {
	if agile {
		return [3]int{0, -4, -8}
	}
	return [3]int{0, -5, -10}
}

// FormatAttackWithMAP renders the ladder applied to a base bonus, e.g.
// "+8/+3/-2" or, for an agile weapon, "+8/+4/+0".
func FormatAttackWithMAP(bonus int, agile bool) string {
	p := MAPPenalties(agile)
	return fmt.Sprintf("%+d/%+d/%+d", bonus+p[0], bonus+p[1], bonus+p[2])
}
