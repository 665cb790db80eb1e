package character

// VariantRules is the optional-rule overlay configuration. Each flag changes
// one documented formula; the zero value is the standard ruleset. The flag
// set travels with the record so old saves keep the rules they were built
// under.
type VariantRules struct {
	// FreeArchetype grants an archetype feat slot at every even level.
	FreeArchetype bool `json:"freeArchetype,omitempty"`
	// GradualAbilityBoosts grants one boost per level from 2 on, instead of
	// four boosts at each of levels 5/10/15/20.
	GradualAbilityBoosts bool `json:"gradualAbilityBoosts,omitempty"`
	// AutomaticBonusProgression replaces item potency/resilient bonuses with
	// a level-indexed table.
	AutomaticBonusProgression bool `json:"automaticBonusProgression,omitempty"`
	// ProficiencyWithoutLevel drops the level term from proficiency bonuses.
	ProficiencyWithoutLevel bool `json:"proficiencyWithoutLevel,omitempty"`
	// AncestryParagon grants extra ancestry feat slots at 1/3/7/11/15/19.
	AncestryParagon bool `json:"ancestryParagon,omitempty"`
	// DualClass lets a character carry a second class; HP uses the better
	// of the two class grants.
	DualClass bool `json:"dualClass,omitempty"`
}

// Standard returns the all-off variant configuration.
func Standard() VariantRules {
	return VariantRules{}
}
