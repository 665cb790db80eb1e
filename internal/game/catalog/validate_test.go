package catalog

import "testing"

func cleanRegistry() *Registry {
	reg := NewRegistry()
	reg.RegisterClass(&ClassDef{ID: "fighter", Name: "Fighter", KeyAbility: "strength", HitPointsPerLevel: 10})
	reg.RegisterClass(&ClassDef{
		ID: "wizard", Name: "Wizard", KeyAbility: "intelligence", HitPointsPerLevel: 6,
		Spellcasting: &SpellcastingDef{Tradition: "arcane", Ability: "intelligence"},
	})
	reg.RegisterFeat(&Feat{ID: "feat-a", Slug: "toughness", Name: "Toughness", Level: 1, Type: "general"})
	reg.RegisterFeat(&Feat{ID: "feat-b", Name: "Mountain's Stoutness", Level: 1, Type: "ancestry", Prerequisites: []string{"toughness"}})
	reg.RegisterWeapon(&WeaponDef{ID: "longsword", Name: "Longsword", DamageDice: "1d8", DamageType: "slashing", Hands: 1})
	return reg
}

func TestValidateRefs_Clean(t *testing.T) {
	if findings := ValidateRefs(cleanRegistry()); len(findings) != 0 {
		t.Errorf("clean registry produced findings: %v", findings)
	}
}

func TestValidateRefs_UnknownKeyAbility(t *testing.T) {
	reg := cleanRegistry()
	reg.RegisterClass(&ClassDef{ID: "mystic", Name: "Mystic", KeyAbility: "luck", HitPointsPerLevel: 8})

	findings := ValidateRefs(reg)
	if len(findings) != 1 || findings[0].Kind != "class" || findings[0].ID != "mystic" {
		t.Fatalf("findings = %v, want one class/mystic finding", findings)
	}
}

func TestValidateRefs_UnknownSpellcastingAbility(t *testing.T) {
	reg := cleanRegistry()
	reg.RegisterClass(&ClassDef{
		ID: "oracle", Name: "Oracle", KeyAbility: "charisma", HitPointsPerLevel: 8,
		Spellcasting: &SpellcastingDef{Tradition: "divine", Ability: "fate"},
	})

	findings := ValidateRefs(reg)
	if len(findings) != 1 {
		t.Fatalf("findings = %v, want exactly one", findings)
	}
}

func TestValidateRefs_DanglingPrerequisite(t *testing.T) {
	reg := cleanRegistry()
	reg.RegisterFeat(&Feat{ID: "feat-c", Name: "Orphan", Level: 4, Type: "class", Prerequisites: []string{"no-such-feat"}})

	findings := ValidateRefs(reg)
	if len(findings) != 1 || findings[0].Kind != "feat" || findings[0].ID != "feat-c" {
		t.Fatalf("findings = %v, want one feat/feat-c finding", findings)
	}
}

func TestValidateRefs_PrerequisiteBySlugResolves(t *testing.T) {
	// feat-b's prerequisite names feat-a by slug; that must not be flagged.
	findings := ValidateRefs(cleanRegistry())
	for _, f := range findings {
		if f.ID == "feat-b" {
			t.Errorf("slug prerequisite flagged: %v", f)
		}
	}
}

func TestValidateRefs_BadDamageDice(t *testing.T) {
	reg := cleanRegistry()
	reg.RegisterWeapon(&WeaponDef{ID: "cursed", Name: "Cursed Blade", DamageDice: "0d6", DamageType: "slashing", Hands: 1})

	findings := ValidateRefs(reg)
	if len(findings) != 1 || findings[0].Kind != "weapon" || findings[0].ID != "cursed" {
		t.Fatalf("findings = %v, want one weapon/cursed finding", findings)
	}
}

func TestValidateRefs_SortedOutput(t *testing.T) {
	reg := cleanRegistry()
	reg.RegisterWeapon(&WeaponDef{ID: "zz", Name: "ZZ", DamageDice: "bad", DamageType: "x", Hands: 1})
	reg.RegisterClass(&ClassDef{ID: "aa", Name: "AA", KeyAbility: "luck", HitPointsPerLevel: 8})

	findings := ValidateRefs(reg)
	if len(findings) != 2 {
		t.Fatalf("findings = %v, want 2", findings)
	}
	if findings[0].Kind != "class" || findings[1].Kind != "weapon" {
		t.Errorf("findings not sorted by kind: %v", findings)
	}
}
