package catalog

import (
	"errors"
	"fmt"
)

// SpellcastingDef describes a class's casting block, when it has one.
type SpellcastingDef struct {
	Tradition string `yaml:"tradition" json:"tradition"`
	Ability   string `yaml:"ability" json:"ability"`
}

// ClassDef defines a playable class.
//
// Proficiencies is the rank-at-level-1 table keyed by statistic
// ("perception", "fortitude", "reflex", "will", "armor", "weapons") with
// rank-name values ("trained", "expert", ...).
type ClassDef struct {
	ID                string            `yaml:"id" json:"id"`
	Name              string            `yaml:"name" json:"name"`
	Description       string            `yaml:"description,omitempty" json:"description,omitempty"`
	KeyAbility        string            `yaml:"key_ability" json:"keyAbility"`
	HitPointsPerLevel int               `yaml:"hit_points_per_level" json:"hitPointsPerLevel"`
	Proficiencies     map[string]string `yaml:"proficiencies,omitempty" json:"proficiencies,omitempty"`
	// GrantsFocusPoint marks focus-spell classes that start with one point.
	GrantsFocusPoint bool             `yaml:"grants_focus_point,omitempty" json:"grantsFocusPoint,omitempty"`
	Spellcasting     *SpellcastingDef `yaml:"spellcasting,omitempty" json:"spellcasting,omitempty"`
}

// Validate checks that the ClassDef satisfies its invariants.
//
// Postcondition: returns nil iff all fields are valid.
func (c *ClassDef) Validate() error {
	var errs []error
	if c.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if c.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if c.KeyAbility == "" {
		errs = append(errs, errors.New("KeyAbility must not be empty"))
	}
	if c.HitPointsPerLevel <= 0 {
		errs = append(errs, errors.New("HitPointsPerLevel must be > 0"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("class validation failed: %v", errs)
	}
	return nil
}

// LoadClasses reads all *.yaml files in dir and parses each as a ClassDef.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed classes (may be empty slice) or a non-nil error.
func LoadClasses(dir string) ([]*ClassDef, error) {
	return loadDefs[ClassDef](dir, "class", (*ClassDef).Validate)
}
