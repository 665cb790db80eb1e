package sheet_test

import (
	"reflect"
	"testing"

	"github.com/cory-johannsen/sheet/internal/game/ability"
	"github.com/cory-johannsen/sheet/internal/game/catalog"
	"github.com/cory-johannsen/sheet/internal/game/character"
	"github.com/cory-johannsen/sheet/internal/game/sheet"
)

func registry() *catalog.Registry {
	reg := catalog.NewRegistry()
	reg.RegisterAncestry(&catalog.Ancestry{ID: "human", Name: "Human", HP: 8})
	reg.RegisterClass(&catalog.ClassDef{ID: "bard", Name: "Bard", KeyAbility: "charisma", HitPointsPerLevel: 8, GrantsFocusPoint: true})
	reg.RegisterWeapon(&catalog.WeaponDef{ID: "rapier", Name: "Rapier", DamageDice: "1d6", DamageType: "piercing", Hands: 1, Bulk: 1})
	return reg
}

func bard() character.Character {
	c := character.New("Lute")
	c.AncestryID = "human"
	c.ClassID = "bard"
	c.Level = 5
	c.Abilities.Constitution = 12
	c.Abilities.Dexterity = 16
	c.Abilities.Strength = 12
	c.Weapons = ability.Trained
	c.Armor.Proficiency = ability.Trained
	c.Items = []character.EquippedItem{
		{ID: "i1", EquipmentID: "rapier", Name: "Rapier", Kind: character.KindWeapon, Quantity: 1, Bulk: 1},
		{ID: "i2", EquipmentID: "no-such-sword", Name: "Ghost Sword", Kind: character.KindWeapon, Quantity: 1, Bulk: 1},
	}
	return c
}

func TestDerive_FullSnapshot(t *testing.T) {
	s := sheet.Derive(bard(), registry())

	// HP: 8 + 8 + 1 = 17, filled to max.
	if s.HP.Max != 17 || s.HP.Current != 17 {
		t.Errorf("HP = %+v, want 17/17", s.HP)
	}
	// AC: 10 + 3 + (5+2) = 20.
	if s.ArmorClass != 20 {
		t.Errorf("AC = %d, want 20", s.ArmorClass)
	}
	if s.FocusPoints != 1 {
		t.Errorf("FocusPoints = %d, want 1", s.FocusPoints)
	}
	if len(s.Weapons) != 1 {
		t.Fatalf("weapons = %d, want 1 (missing catalog entry skipped)", len(s.Weapons))
	}
	// Attack: 1 str + 7 prof = 8.
	if s.Weapons[0].Stats.AttackBonus != 8 {
		t.Errorf("rapier attack = %d, want 8", s.Weapons[0].Stats.AttackBonus)
	}
	if s.Bulk.Total != 2 {
		t.Errorf("bulk = %v, want 2", s.Bulk.Total)
	}
	if len(s.FeatSlots) == 0 {
		t.Error("expected feat slots at level 5")
	}
	if s.Boosts != 4 {
		t.Errorf("boosts = %d, want 4 (level 5 milestone)", s.Boosts)
	}
}

func TestDerive_Idempotent(t *testing.T) {
	reg := registry()
	c := bard()
	first := sheet.Derive(c, reg)
	// Feed the normalized pool back into the record, as a save would.
	second := sheet.Derive(c.WithHP(first.HP), reg)
	if first.HP != second.HP {
		t.Errorf("HP drifted across passes: %+v then %+v", first.HP, second.HP)
	}
	third := sheet.Derive(c.WithHP(second.HP), reg)
	if !reflect.DeepEqual(second, third) {
		t.Error("repeated derivation of a settled record must be stable")
	}
}

func TestDerive_WieldedTwoHandedUpgradesDamage(t *testing.T) {
	reg := registry()
	reg.RegisterWeapon(&catalog.WeaponDef{
		ID: "bastard-sword", Name: "Bastard Sword",
		DamageDice: "1d8", DamageType: "slashing", Hands: 1, Bulk: 1,
		Traits: []string{"two-hand-d12"},
	})
	c := bard()
	c.Items = []character.EquippedItem{
		{ID: "i1", EquipmentID: "bastard-sword", Name: "Bastard Sword", Kind: character.KindWeapon, Quantity: 1, Bulk: 1, WieldedTwoHanded: true},
	}

	s := sheet.Derive(c, reg)
	if len(s.Weapons) != 1 {
		t.Fatalf("weapons = %d, want 1", len(s.Weapons))
	}
	fs := s.Weapons[0].Stats.Formulas
	if len(fs) != 1 || fs[0].Formula != "1d12+1" {
		t.Errorf("formulas = %v, want [1d12+1 slashing]", fs)
	}

	// Gripped in one hand the base die stays a d8.
	c.Items[0].WieldedTwoHanded = false
	s = sheet.Derive(c, reg)
	fs = s.Weapons[0].Stats.Formulas
	if len(fs) != 1 || fs[0].Formula != "1d8+1" {
		t.Errorf("formulas = %v, want [1d8+1 slashing]", fs)
	}
}

func TestDerive_ConditionsPenalizeACAndAttack(t *testing.T) {
	reg := registry()
	c := bard()
	base := sheet.Derive(c, reg)

	c.Conditions = []character.Condition{{ID: "frightened", Value: 2}}
	shaken := sheet.Derive(c, reg)

	if shaken.ArmorClass != base.ArmorClass-2 {
		t.Errorf("frightened 2 AC = %d, want %d", shaken.ArmorClass, base.ArmorClass-2)
	}
	if shaken.Weapons[0].Stats.AttackBonus != base.Weapons[0].Stats.AttackBonus-2 {
		t.Errorf("frightened 2 attack = %d, want %d",
			shaken.Weapons[0].Stats.AttackBonus, base.Weapons[0].Stats.AttackBonus-2)
	}
	if len(c.Conditions) != 1 || len(c.Buffs) != 0 {
		t.Error("the record itself must stay untouched")
	}
}

func TestDerive_DoesNotMutateInput(t *testing.T) {
	c := bard()
	c.HP = character.HitPoints{Current: 99, Max: 1}
	before := c.HP
	_ = sheet.Derive(c, registry())
	if c.HP != before {
		t.Error("Derive must not repair the record in place")
	}
}
