// Package defense derives armor class.
package defense

import (
	"github.com/cory-johannsen/sheet/internal/game/ability"
	"github.com/cory-johannsen/sheet/internal/game/abp"
	"github.com/cory-johannsen/sheet/internal/game/character"
)

// ArmorClass derives AC: 10 + DEX modifier + armor proficiency bonus +
// item bonus + stacked active buffs and penalties. The item bonus comes
// from the Automatic Bonus Progression table when that variant is active,
// otherwise from the stored equipment bonus; the two are mutually
// exclusive.
//
// Postcondition: pure; the character record is not modified.
func ArmorClass(c character.Character) int {
	level := c.ClampedLevel()

	itemBonus := c.Armor.ItemBonus
	if c.Variants.AutomaticBonusProgression {
		itemBonus = abp.DefenseBonus(level)
	}

	return 10 +
		c.Abilities.DexMod() +
		ability.ProficiencyBonus(level, c.Armor.Proficiency, c.Variants.ProficiencyWithoutLevel) +
		itemBonus +
		character.StackBuffs(c.Buffs, character.TargetAC)
}
