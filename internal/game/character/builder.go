package character

import (
	"errors"

	"github.com/cory-johannsen/sheet/internal/game/ability"
	"github.com/cory-johannsen/sheet/internal/game/catalog"
)

// applyBoost adds delta to one named ability score. "free" boosts are the
// player's to assign later and are skipped here.
func applyBoost(a ability.Scores, name string, delta int) ability.Scores {
	switch name {
	case "strength":
		a.Strength += delta
	case "dexterity":
		a.Dexterity += delta
	case "constitution":
		a.Constitution += delta
	case "intelligence":
		a.Intelligence += delta
	case "wisdom":
		a.Wisdom += delta
	case "charisma":
		a.Charisma += delta
	}
	return a
}

// Build constructs a level-1 Character from a name, ancestry, and class.
// Ability scores start at 10, ancestry boosts (+2) and flaws (-2) are
// applied, then the class key ability receives a +2 boost. Hit points are
// left zeroed; the resources deriver fills them on the first pass.
//
// Precondition: name must be non-empty; anc and cls must be non-nil.
// Postcondition: Returns a Character ready for persistence, or a non-nil error.
func Build(name string, anc *catalog.Ancestry, cls *catalog.ClassDef) (Character, error) {
	if name == "" {
		return Character{}, errors.New("character name must not be empty")
	}
	if anc == nil {
		return Character{}, errors.New("ancestry must not be nil")
	}
	if cls == nil {
		return Character{}, errors.New("class must not be nil")
	}

	scores := ability.DefaultScores()
	for _, boost := range anc.Boosts {
		scores = applyBoost(scores, boost, 2)
	}
	for _, flaw := range anc.Flaws {
		scores = applyBoost(scores, flaw, -2)
	}
	scores = applyBoost(scores, cls.KeyAbility, 2)

	c := New(name)
	c.AncestryID = anc.ID
	c.ClassID = cls.ID
	c.Abilities = scores
	c.Armor.Proficiency = ability.RankFromString(cls.Proficiencies["armor"])
	c.Perception = ability.RankFromString(cls.Proficiencies["perception"])
	c.Weapons = ability.RankFromString(cls.Proficiencies["weapons"])
	c.Saves = SaveRanks{
		Fortitude: ability.RankFromString(cls.Proficiencies["fortitude"]),
		Reflex:    ability.RankFromString(cls.Proficiencies["reflex"]),
		Will:      ability.RankFromString(cls.Proficiencies["will"]),
	}
	if cls.Spellcasting != nil {
		c.Spellcasting = &Spellcasting{
			Tradition:   cls.Spellcasting.Tradition,
			Ability:     cls.Spellcasting.Ability,
			Proficiency: ability.Trained,
		}
	}
	return c, nil
}
