package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// WeaponDef defines the static properties of a weapon.
type WeaponDef struct {
	ID         string `yaml:"id" json:"id"`
	Name       string `yaml:"name" json:"name"`
	DamageDice string `yaml:"damage_dice" json:"damageDice"`
	DamageType string `yaml:"damage_type" json:"damageType"`
	Hands      int    `yaml:"hands" json:"hands"`
	// RangeIncrement is 0 for melee weapons.
	RangeIncrement int      `yaml:"range_increment,omitempty" json:"rangeIncrement,omitempty"`
	Thrown         bool     `yaml:"thrown,omitempty" json:"thrown,omitempty"`
	Bulk           float64  `yaml:"bulk" json:"bulk"`
	Traits         []string `yaml:"traits,omitempty" json:"traits,omitempty"`
}

// IsMelee reports whether the weapon is a melee weapon (RangeIncrement == 0).
func (w *WeaponDef) IsMelee() bool {
	return w.RangeIncrement == 0
}

// HasTrait reports whether the weapon carries the named trait.
func (w *WeaponDef) HasTrait(trait string) bool {
	for _, t := range w.Traits {
		if t == trait {
			return true
		}
	}
	return false
}

// IsAgile reports whether the weapon has the agile trait (reduced MAP).
func (w *WeaponDef) IsAgile() bool { return w.HasTrait("agile") }

// IsPropulsive reports whether the weapon has the propulsive trait
// (half STR added to ranged damage and attack handling).
func (w *WeaponDef) IsPropulsive() bool { return w.HasTrait("propulsive") }

// TwoHandDie returns the upgraded die size when the weapon has a
// "two-hand-dN" trait (e.g. "two-hand-d12"), or 0 when it has none.
func (w *WeaponDef) TwoHandDie() int {
	for _, t := range w.Traits {
		if rest, ok := strings.CutPrefix(t, "two-hand-d"); ok {
			if n, err := strconv.Atoi(rest); err == nil && n > 0 {
				return n
			}
		}
	}
	return 0
}

// Validate checks that the WeaponDef satisfies its invariants.
//
// Postcondition: returns nil iff all fields are valid.
func (w *WeaponDef) Validate() error {
	var errs []error
	if w.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if w.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if w.DamageDice == "" {
		errs = append(errs, errors.New("DamageDice must not be empty"))
	}
	if w.DamageType == "" {
		errs = append(errs, errors.New("DamageType must not be empty"))
	}
	if w.Hands < 1 || w.Hands > 2 {
		errs = append(errs, fmt.Errorf("Hands must be 1 or 2, got %d", w.Hands))
	}
	if len(errs) > 0 {
		return fmt.Errorf("weapon validation failed: %v", errs)
	}
	return nil
}

// ArmorDef defines the static properties of a suit of armor.
type ArmorDef struct {
	ID       string  `yaml:"id" json:"id"`
	Name     string  `yaml:"name" json:"name"`
	Category string  `yaml:"category" json:"category"` // unarmored|light|medium|heavy
	ACBonus  int     `yaml:"ac_bonus" json:"acBonus"`
	DexCap   int     `yaml:"dex_cap" json:"dexCap"`
	Bulk     float64 `yaml:"bulk" json:"bulk"`
}

// Validate checks that the ArmorDef satisfies its invariants.
func (a *ArmorDef) Validate() error {
	var errs []error
	if a.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if a.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if a.ACBonus < 0 {
		errs = append(errs, errors.New("ACBonus must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("armor validation failed: %v", errs)
	}
	return nil
}

// ShieldDef defines the static properties of a shield.
type ShieldDef struct {
	ID       string  `yaml:"id" json:"id"`
	Name     string  `yaml:"name" json:"name"`
	ACBonus  int     `yaml:"ac_bonus" json:"acBonus"`
	Hardness int     `yaml:"hardness" json:"hardness"`
	HP       int     `yaml:"hp" json:"hp"`
	Bulk     float64 `yaml:"bulk" json:"bulk"`
}

// Validate checks that the ShieldDef satisfies its invariants.
func (s *ShieldDef) Validate() error {
	var errs []error
	if s.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if s.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("shield validation failed: %v", errs)
	}
	return nil
}

// LoadWeapons reads all *.yaml files in dir and parses each as a WeaponDef.
func LoadWeapons(dir string) ([]*WeaponDef, error) {
	return loadDefs[WeaponDef](dir, "weapon", (*WeaponDef).Validate)
}

// LoadArmor reads all *.yaml files in dir and parses each as an ArmorDef.
func LoadArmor(dir string) ([]*ArmorDef, error) {
	return loadDefs[ArmorDef](dir, "armor", (*ArmorDef).Validate)
}

// LoadShields reads all *.yaml files in dir and parses each as a ShieldDef.
func LoadShields(dir string) ([]*ShieldDef, error) {
	return loadDefs[ShieldDef](dir, "shield", (*ShieldDef).Validate)
}
