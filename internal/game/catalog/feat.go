package catalog

import (
	"errors"
	"fmt"
)

// Feat defines a feat.
//
// ID is the stable opaque key every other record refers to. Slug is the
// human-readable alias found in older exports; the Registry resolves both
// to the same def at load time so no call site string-matches per lookup.
type Feat struct {
	ID            string   `yaml:"id" json:"id"`
	Slug          string   `yaml:"slug,omitempty" json:"slug,omitempty"`
	Name          string   `yaml:"name" json:"name"`
	Level         int      `yaml:"level" json:"level"`
	Type          string   `yaml:"type" json:"type"` // ancestry|class|general|skill|archetype
	Traits        []string `yaml:"traits,omitempty" json:"traits,omitempty"`
	Prerequisites []string `yaml:"prerequisites,omitempty" json:"prerequisites,omitempty"`
	// GrantsFocusPoint marks feats that add a focus point when taken.
	GrantsFocusPoint bool `yaml:"grants_focus_point,omitempty" json:"grantsFocusPoint,omitempty"`
	// AdditionalFocus is a flat focus-pool increase on top of the grant.
	AdditionalFocus int `yaml:"additional_focus,omitempty" json:"additionalFocus,omitempty"`
}

// Validate checks that the Feat satisfies its invariants.
//
// Postcondition: returns nil iff all fields are valid.
func (f *Feat) Validate() error {
	var errs []error
	if f.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if f.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if f.Level < 0 || f.Level > 20 {
		errs = append(errs, fmt.Errorf("Level must be in [0,20], got %d", f.Level))
	}
	if f.AdditionalFocus < 0 {
		errs = append(errs, errors.New("AdditionalFocus must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("feat validation failed: %v", errs)
	}
	return nil
}

// LoadFeats reads all *.yaml files in dir and parses each as a Feat.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed feats (may be empty slice) or a non-nil error.
func LoadFeats(dir string) ([]*Feat, error) {
	return loadDefs[Feat](dir, "feat", (*Feat).Validate)
}
