// Package character defines the character record that the sheet engine
// derives from. The JSON shape of Character is the wire and storage format;
// calculators treat a record as an immutable value and never mutate it.
package character

import (
	"time"

	"github.com/cory-johannsen/sheet/internal/game/ability"
)

// MinLevel and MaxLevel bound a character's level.
const (
	MinLevel = 1
	MaxLevel = 20
)

// HitPoints tracks the character's hit point pool. Max is derived;
// Current and Temporary are play state.
type HitPoints struct {
	Current   int `json:"current"`
	Max       int `json:"max"`
	Temporary int `json:"temporary"`
}

// ArmorConfig holds the armor-class inputs stored on the record.
// ItemBonus is the equipped armor's potency contribution; it is ignored
// when the Automatic Bonus Progression variant supplies its own table.
type ArmorConfig struct {
	Proficiency ability.Rank `json:"proficiency"`
	ItemBonus   int          `json:"itemBonus"`
}

// SaveRanks holds the three saving-throw proficiency ranks.
type SaveRanks struct {
	Fortitude ability.Rank `json:"fortitude"`
	Reflex    ability.Rank `json:"reflex"`
	Will      ability.Rank `json:"will"`
}

// Spellcasting describes a character's casting block, when present.
type Spellcasting struct {
	Tradition   string       `json:"tradition"`
	Ability     string       `json:"ability"`
	Proficiency ability.Rank `json:"proficiency"`
}

// CustomResource is a player-defined counter (e.g. a reagent pool).
type CustomResource struct {
	Name    string `json:"name"`
	Current int    `json:"current"`
	Max     int    `json:"max"`
}

// Currency is the coin purse, by denomination.
type Currency struct {
	Copper   int `json:"copper"`
	Silver   int `json:"silver"`
	Gold     int `json:"gold"`
	Platinum int `json:"platinum"`
}

// Condition is an active condition by id, with an optional stack value.
type Condition struct {
	ID    string `json:"id"`
	Value int    `json:"value,omitempty"`
}

// Character is the persistent character record.
//
// ID is assigned by the persistence layer; an empty ID means unsaved.
type Character struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`

	AncestryID   string `json:"ancestryId"`
	HeritageID   string `json:"heritageId,omitempty"`
	BackgroundID string `json:"backgroundId,omitempty"`
	ClassID      string `json:"classId"`
	// SecondaryClassID is set only under the Dual Class variant.
	SecondaryClassID string `json:"secondaryClassId,omitempty"`

	Level      int                     `json:"level"`
	Abilities  ability.Scores          `json:"abilities"`
	Skills     map[string]ability.Rank `json:"skills,omitempty"`
	Saves      SaveRanks               `json:"saves"`
	Perception ability.Rank            `json:"perception"`
	Weapons    ability.Rank            `json:"weapons"`

	HP    HitPoints   `json:"hp"`
	Armor ArmorConfig `json:"armor"`

	Items      []EquippedItem   `json:"items,omitempty"`
	Currency   Currency         `json:"currency"`
	FeatIDs    []string         `json:"feats,omitempty"`
	Buffs      []Buff           `json:"buffs,omitempty"`
	Conditions []Condition      `json:"conditions,omitempty"`
	Resources  []CustomResource `json:"resources,omitempty"`
	Pets       []Pet            `json:"pets,omitempty"`

	Spellcasting *Spellcasting `json:"spellcasting,omitempty"`
	Variants     VariantRules  `json:"variantRules"`

	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// New returns an empty character at creation defaults: every ability 10,
// level 1, empty collections, zeroed pools.
func New(name string) Character {
	return Character{
		Name:      name,
		Level:     MinLevel,
		Abilities: ability.DefaultScores(),
	}
}

// ClampedLevel returns the level forced into [MinLevel, MaxLevel].
// Legacy records have been observed with level 0.
func (c Character) ClampedLevel() int {
	if c.Level < MinLevel {
		return MinLevel
	}
	if c.Level > MaxLevel {
		return MaxLevel
	}
	return c.Level
}

// SkillRank returns the stored rank for a skill id, Untrained when absent.
func (c Character) SkillRank(skill string) ability.Rank {
	if c.Skills == nil {
		return ability.Untrained
	}
	return c.Skills[skill]
}

// WithLevel returns a copy of the character at the given level, clamped.
// The receiver is unchanged.
func (c Character) WithLevel(level int) Character {
	out := c
	out.Level = level
	out.Level = out.ClampedLevel()
	return out
}

// WithHP returns a copy of the character with the given hit point pool.
func (c Character) WithHP(hp HitPoints) Character {
	out := c
	out.HP = hp
	return out
}
