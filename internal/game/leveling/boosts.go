package leveling

import "github.com/cory-johannsen/sheet/internal/game/character"

// boostMilestones are the standard ability-boost levels; each grants four
// boosts at once.
var boostMilestones = []int{5, 10, 15, 20}

// AbilityBoostLevelsUpTo returns the levels in [1, level] that grant
// ability boosts. Under the standard rule these are the milestones
// {5,10,15,20}; under Gradual Ability Boosts every level from 2 on grants
// one boost (level 1 belongs to character creation, not leveling).
//
// Postcondition: the result is ascending and within [2, level].
func AbilityBoostLevelsUpTo(level int, gradual bool) []int {
	if level > character.MaxLevel {
		level = character.MaxLevel
	}
	var out []int
	if gradual {
		for lv := 2; lv <= level; lv++ {
			out = append(out, lv)
		}
		return out
	}
	for _, m := range boostMilestones {
		if m <= level {
			out = append(out, m)
		}
	}
	return out
}

// BoostsPerMilestone is how many boosts a standard milestone level grants.
const BoostsPerMilestone = 4

// TotalAbilityBoostsUpTo counts the boosts granted by levels 1..level:
// four per standard milestone, or one per level from 2 under Gradual
// Ability Boosts.
//
// Postcondition: result >= 0.
func TotalAbilityBoostsUpTo(level int, gradual bool) int {
	if gradual {
		if level < 2 {
			return 0
		}
		if level > character.MaxLevel {
			level = character.MaxLevel
		}
		return level - 1
	}
	return BoostsPerMilestone * len(AbilityBoostLevelsUpTo(level, false))
}
