// Package leveling holds the static per-level grant schedule and the slot
// derivations layered on it by variant rules.
package leveling

import "github.com/cory-johannsen/sheet/internal/game/character"

// Grants flags what the standard rules hand out at one level.
type Grants struct {
	AncestryFeat  bool
	ClassFeat     bool
	GeneralFeat   bool
	SkillFeat     bool
	SkillIncrease bool
	AbilityBoost  bool
}

// schedule is the standard 1-20 grant table. Index 0 is level 1.
var schedule = [20]Grants{
	{AncestryFeat: true, ClassFeat: true},                         // 1
	{ClassFeat: true, SkillFeat: true},                            // 2
	{GeneralFeat: true, SkillIncrease: true},                      // 3
	{ClassFeat: true, SkillFeat: true},                            // 4
	{AncestryFeat: true, SkillIncrease: true, AbilityBoost: true}, // 5
	{ClassFeat: true, SkillFeat: true},                            // 6
	{GeneralFeat: true, SkillIncrease: true},                      // 7
	{ClassFeat: true, SkillFeat: true},                            // 8
	{AncestryFeat: true, SkillIncrease: true},                     // 9
	{ClassFeat: true, SkillFeat: true, AbilityBoost: true},        // 10
	{GeneralFeat: true, SkillIncrease: true},                      // 11
	{ClassFeat: true, SkillFeat: true},                            // 12
	{AncestryFeat: true, SkillIncrease: true},                     // 13
	{ClassFeat: true, SkillFeat: true},                            // 14
	{GeneralFeat: true, SkillIncrease: true, AbilityBoost: true},  // 15
	{ClassFeat: true, SkillFeat: true},                            // 16
	{AncestryFeat: true, SkillIncrease: true},                     // 17
	{ClassFeat: true, SkillFeat: true},                            // 18
	{GeneralFeat: true, SkillIncrease: true},                      // 19
	{ClassFeat: true, SkillFeat: true, AbilityBoost: true},        // 20
}

// GrantsAt returns the standard grants for a level.
//
// Precondition: none; out-of-range levels return the zero Grants.
func GrantsAt(level int) Grants {
	if level < character.MinLevel || level > character.MaxLevel {
		return Grants{}
	}
	return schedule[level-1]
}

// ancestryParagonLevels are the extra ancestry-feat milestones under the
// Ancestry Paragon variant.
var ancestryParagonLevels = map[int]bool{1: true, 3: true, 7: true, 11: true, 15: true, 19: true}
