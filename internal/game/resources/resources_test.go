package resources_test

import (
	"testing"

	"github.com/cory-johannsen/sheet/internal/game/catalog"
	"github.com/cory-johannsen/sheet/internal/game/character"
	"github.com/cory-johannsen/sheet/internal/game/resources"
	"pgregory.net/rapid"
)

func testRegistry() *catalog.Registry {
	reg := catalog.NewRegistry()
	reg.RegisterAncestry(&catalog.Ancestry{ID: "human", Name: "Human", HP: 8})
	reg.RegisterClass(&catalog.ClassDef{ID: "fighter", Name: "Fighter", KeyAbility: "strength", HitPointsPerLevel: 8})
	reg.RegisterClass(&catalog.ClassDef{ID: "barbarian", Name: "Barbarian", KeyAbility: "strength", HitPointsPerLevel: 10})
	reg.RegisterClass(&catalog.ClassDef{ID: "bard", Name: "Bard", KeyAbility: "charisma", HitPointsPerLevel: 8, GrantsFocusPoint: true})
	reg.RegisterFeat(&catalog.Feat{ID: "focus-a", Name: "Focus A", Type: "class", GrantsFocusPoint: true})
	reg.RegisterFeat(&catalog.Feat{ID: "focus-b", Slug: "focus-b-slug", Name: "Focus B", Type: "class", GrantsFocusPoint: true})
	reg.RegisterFeat(&catalog.Feat{ID: "focus-c", Name: "Focus C", Type: "class", GrantsFocusPoint: true})
	reg.RegisterFeat(&catalog.Feat{ID: "plain", Name: "Plain", Type: "general"})
	return reg
}

func baseCharacter() character.Character {
	c := character.New("Test")
	c.AncestryID = "human"
	c.ClassID = "fighter"
	c.Abilities.Constitution = 14
	return c
}

func TestMaxHP_Standard(t *testing.T) {
	c := baseCharacter()
	// 8 ancestry + 8 class + 2 con.
	if got := resources.MaxHP(c, testRegistry()); got != 18 {
		t.Errorf("MaxHP = %d, want 18", got)
	}
}

func TestMaxHP_DualClassTakesBetterGrant(t *testing.T) {
	c := baseCharacter()
	c.Variants.DualClass = true
	c.SecondaryClassID = "barbarian"
	// 8 + max(8,10) + 2 = 20.
	if got := resources.MaxHP(c, testRegistry()); got != 20 {
		t.Errorf("MaxHP dual class = %d, want 20", got)
	}
	// Secondary id present but variant off: primary only.
	c.Variants.DualClass = false
	if got := resources.MaxHP(c, testRegistry()); got != 18 {
		t.Errorf("MaxHP with variant off = %d, want 18", got)
	}
}

func TestMaxHP_MissingRefsContributeZero(t *testing.T) {
	c := baseCharacter()
	c.AncestryID = "gone"
	c.ClassID = "also-gone"
	if got := resources.MaxHP(c, testRegistry()); got != 2 {
		t.Errorf("MaxHP with dangling refs = %d, want 2 (con only)", got)
	}
}

func TestNormalizeHP_RepairsLegacyRecords(t *testing.T) {
	reg := testRegistry()
	c := baseCharacter()

	c.HP = character.HitPoints{Current: 0, Max: 0}
	hp := resources.NormalizeHP(c, reg)
	if hp.Max != 18 || hp.Current != 18 {
		t.Errorf("zeroed record normalized to %+v, want current=max=18", hp)
	}

	c.HP = character.HitPoints{Current: 99, Max: 5}
	hp = resources.NormalizeHP(c, reg)
	if hp.Current != 18 {
		t.Errorf("overflowing current normalized to %d, want 18", hp.Current)
	}

	c.HP = character.HitPoints{Current: 7, Max: 12, Temporary: -1}
	hp = resources.NormalizeHP(c, reg)
	if hp.Current != 7 || hp.Max != 18 || hp.Temporary != 0 {
		t.Errorf("in-range current must survive, got %+v", hp)
	}
}

func TestNormalizeHP_Idempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		reg := testRegistry()
		c := baseCharacter()
		c.Level = rapid.IntRange(1, 20).Draw(rt, "level")
		c.Abilities.Constitution = rapid.IntRange(4, 24).Draw(rt, "con")
		c.HP = character.HitPoints{
			Current: rapid.IntRange(-5, 60).Draw(rt, "current"),
			Max:     rapid.IntRange(0, 60).Draw(rt, "max"),
		}
		once := resources.NormalizeHP(c, reg)
		twice := resources.NormalizeHP(c.WithHP(once), reg)
		if once != twice {
			rt.Fatalf("NormalizeHP drifted: %+v then %+v", once, twice)
		}
		if once.Current < 0 || once.Current > once.Max {
			rt.Fatalf("invariant violated: %+v", once)
		}
	})
}

func TestFocusPoints_ClassAndFeats(t *testing.T) {
	reg := testRegistry()
	c := baseCharacter()
	c.ClassID = "bard"
	c.FeatIDs = []string{"focus-a", "focus-b"}
	if got := resources.FocusPoints(c, reg); got != 3 {
		t.Errorf("FocusPoints = %d, want 3 (class + 2 feats)", got)
	}
	// A third focus feat must not break the cap.
	c.FeatIDs = append(c.FeatIDs, "focus-c")
	if got := resources.FocusPoints(c, reg); got != 3 {
		t.Errorf("FocusPoints past cap = %d, want 3", got)
	}
}

func TestFocusPoints_DeduplicatesFeats(t *testing.T) {
	reg := testRegistry()
	c := baseCharacter()
	// Same feat listed by id, again by id, and by slug alias.
	c.FeatIDs = []string{"focus-b", "focus-b", "focus-b-slug"}
	if got := resources.FocusPoints(c, reg); got != 1 {
		t.Errorf("FocusPoints with duplicates = %d, want 1", got)
	}
}

func TestFocusPoints_NonFocusCharacter(t *testing.T) {
	reg := testRegistry()
	c := baseCharacter()
	c.FeatIDs = []string{"plain", "missing-feat"}
	if got := resources.FocusPoints(c, reg); got != 0 {
		t.Errorf("FocusPoints = %d, want 0", got)
	}
}
