// Package catalog holds the static rule tables: ancestries, classes, feats,
// and equipment. Defs are loaded once from YAML content directories into a
// Registry and treated as read-only by every calculator.
package catalog

import (
	"errors"
	"fmt"
)

// Ancestry defines a playable ancestry.
type Ancestry struct {
	ID     string   `yaml:"id" json:"id"`
	Name   string   `yaml:"name" json:"name"`
	HP     int      `yaml:"hp" json:"hp"`
	Size   string   `yaml:"size" json:"size"`
	Speed  int      `yaml:"speed" json:"speed"`
	Boosts []string `yaml:"boosts" json:"boosts"`
	Flaws  []string `yaml:"flaws,omitempty" json:"flaws,omitempty"`
}

// Validate checks that the Ancestry satisfies its invariants.
//
// Postcondition: returns nil iff all fields are valid.
func (a *Ancestry) Validate() error {
	var errs []error
	if a.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if a.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if a.HP < 0 {
		errs = append(errs, errors.New("HP must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("ancestry validation failed: %v", errs)
	}
	return nil
}

// LoadAncestries reads all *.yaml files in dir and parses each as an Ancestry.
//
// Precondition: dir must be a readable directory path.
// Postcondition: Returns all parsed ancestries (may be empty slice) or a non-nil error.
func LoadAncestries(dir string) ([]*Ancestry, error) {
	return loadDefs[Ancestry](dir, "ancestry", (*Ancestry).Validate)
}
