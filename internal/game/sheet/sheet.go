// Package sheet aggregates every derivation into one snapshot of the
// numbers the table needs. Derive is the single entry point the service
// layer calls; it is pure and idempotent over its inputs.
package sheet

import (
	"github.com/cory-johannsen/sheet/internal/game/catalog"
	"github.com/cory-johannsen/sheet/internal/game/character"
	"github.com/cory-johannsen/sheet/internal/game/companion"
	"github.com/cory-johannsen/sheet/internal/game/condition"
	"github.com/cory-johannsen/sheet/internal/game/defense"
	"github.com/cory-johannsen/sheet/internal/game/encumbrance"
	"github.com/cory-johannsen/sheet/internal/game/leveling"
	"github.com/cory-johannsen/sheet/internal/game/offense"
	"github.com/cory-johannsen/sheet/internal/game/resources"
)

// WeaponEntry pairs an inventory weapon with its derived statistics.
type WeaponEntry struct {
	ItemID string              `json:"itemId"`
	Name   string              `json:"name"`
	Stats  offense.WeaponStats `json:"stats"`
}

// Sheet is the full derived snapshot for one character.
type Sheet struct {
	CharacterID string `json:"characterId,omitempty"`
	Name        string `json:"name"`
	Level       int    `json:"level"`

	HP          character.HitPoints   `json:"hp"`
	ArmorClass  int                   `json:"armorClass"`
	FocusPoints int                   `json:"focusPoints"`
	Bulk        encumbrance.Result    `json:"bulk"`
	Weapons     []WeaponEntry         `json:"weapons,omitempty"`
	FeatSlots   []leveling.Slot       `json:"featSlots"`
	Boosts      int                   `json:"abilityBoosts"`
	Companions  []companion.StatBlock `json:"companions,omitempty"`
}

// Derive computes the complete snapshot: normalized hit points, armor
// class, focus points, bulk, per-weapon offense, feat slots, and companion
// blocks. Active conditions are folded in as penalties before any number
// is computed. Weapons whose catalog entry is missing are skipped rather
// than failing the sheet.
//
// Postcondition: the character and registry are not modified; equal inputs
// yield equal snapshots.
func Derive(c character.Character, reg *catalog.Registry) Sheet {
	// Active conditions act through the same stacking rules as buffs.
	if penalties := condition.Penalties(c.Conditions); len(penalties) > 0 {
		c.Buffs = append(append([]character.Buff{}, c.Buffs...), penalties...)
	}

	s := Sheet{
		CharacterID: c.ID,
		Name:        c.Name,
		Level:       c.ClampedLevel(),
		HP:          resources.NormalizeHP(c, reg),
		ArmorClass:  defense.ArmorClass(c),
		FocusPoints: resources.FocusPoints(c, reg),
		Bulk:        encumbrance.Derive(c, c.Items),
		FeatSlots:   leveling.FeatSlotsUpTo(c.ClampedLevel(), c.Variants),
		Boosts:      leveling.TotalAbilityBoostsUpTo(c.ClampedLevel(), c.Variants.GradualAbilityBoosts),
		Companions:  companion.DeriveAll(c),
	}

	for i := range c.Items {
		item := c.Items[i]
		if item.Kind != character.KindWeapon {
			continue
		}
		def, ok := reg.Weapon(item.EquipmentID)
		if !ok {
			continue
		}
		twoHanded := def.Hands == 2 || item.WieldedTwoHanded
		s.Weapons = append(s.Weapons, WeaponEntry{
			ItemID: item.ID,
			Name:   item.Name,
			Stats:  offense.DeriveWeaponStats(c, def, &item, twoHanded),
		})
	}
	return s
}
