// Package resources derives the character's limited pools: hit points and
// focus points. Every function is total; unknown catalog ids contribute a
// neutral zero so a character always renders.
package resources

import (
	"github.com/cory-johannsen/sheet/internal/game/catalog"
	"github.com/cory-johannsen/sheet/internal/game/character"
)

// MaxHP derives the hit point maximum: ancestry HP + class HP +
// constitution modifier. Under the Dual Class variant the better of the
// two class grants applies.
//
// Postcondition: result >= 0; a missing ancestry or class contributes 0.
func MaxHP(c character.Character, reg *catalog.Registry) int {
	ancestryHP := 0
	if anc, ok := reg.Ancestry(c.AncestryID); ok {
		ancestryHP = anc.HP
	}

	classHP := 0
	if cls, ok := reg.Class(c.ClassID); ok {
		classHP = cls.HitPointsPerLevel
	}
	if c.Variants.DualClass && c.SecondaryClassID != "" {
		if second, ok := reg.Class(c.SecondaryClassID); ok && second.HitPointsPerLevel > classHP {
			classHP = second.HitPointsPerLevel
		}
	}

	max := ancestryHP + classHP + c.Abilities.ConMod()
	if max < 0 {
		max = 0
	}
	return max
}

// NormalizeHP recomputes the maximum and clamps the stored pool into it.
// A stored current of 0 or above the maximum resets to the maximum; that
// covers legacy records saved before max was derived and corrupt saves.
//
// Postcondition: 0 <= result.Current <= result.Max; applying NormalizeHP
// to its own output is a no-op.
func NormalizeHP(c character.Character, reg *catalog.Registry) character.HitPoints {
	hp := c.HP
	hp.Max = MaxHP(c, reg)
	if hp.Current <= 0 || hp.Current > hp.Max {
		hp.Current = hp.Max
	}
	if hp.Temporary < 0 {
		hp.Temporary = 0
	}
	return hp
}
