package resources

import (
	"github.com/cory-johannsen/sheet/internal/game/catalog"
	"github.com/cory-johannsen/sheet/internal/game/character"
)

// MaxFocusPoints is the default cap on the focus pool.
const MaxFocusPoints = 3

// FocusPoints derives the focus pool: one point when the class grants focus
// spells, one per distinct focus-granting feat, plus any additional-focus
// feat bonuses, capped at MaxFocusPoints. Duplicate feat entries are
// deduplicated by catalog identity, so a feat listed under both its id and
// its slug still counts once.
//
// Postcondition: 0 <= result <= MaxFocusPoints.
func FocusPoints(c character.Character, reg *catalog.Registry) int {
	points := 0
	if cls, ok := reg.Class(c.ClassID); ok && cls.GrantsFocusPoint {
		points++
	}

	seen := map[*catalog.Feat]bool{}
	for _, id := range c.FeatIDs {
		feat, ok := reg.Feat(id)
		if !ok || seen[feat] {
			continue
		}
		seen[feat] = true
		if feat.GrantsFocusPoint {
			points++
		}
		points += feat.AdditionalFocus
	}

	if points > MaxFocusPoints {
		return MaxFocusPoints
	}
	return points
}
