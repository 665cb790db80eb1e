// Package encumbrance derives carried bulk from the flat inventory list,
// resolving the container graph, and classifies the load against the
// strength-based limit.
package encumbrance

import (
	"github.com/cory-johannsen/sheet/internal/game/character"
)

// NegligibleThreshold is the per-unit bulk under which an item counts as
// nothing ("negligible" light items).
const NegligibleThreshold = 0.1

// CoinsPerBulk is how many coins weigh one Bulk.
const CoinsPerBulk = 1000

// Level classifies the carried load.
type Level string

const (
	// LevelNormal is a load within the limit.
	LevelNormal Level = "normal"
	// LevelEncumbered is a load over the limit by at most 1 Bulk.
	LevelEncumbered Level = "encumbered"
	// LevelOverburdened is a load more than 1 Bulk over the limit.
	LevelOverburdened Level = "overburdened"
)

// ContainerBulk is the resolved contribution of one container.
type ContainerBulk struct {
	ItemID string `json:"itemId"`
	// Own is the container's own bulk.
	Own float64 `json:"own"`
	// Contents is the capped, reduction-adjusted bulk of what it holds.
	Contents float64 `json:"contents"`
}

// Result is the full bulk derivation for an inventory.
type Result struct {
	// Root is the summed effective bulk of items held directly.
	Root float64 `json:"root"`
	// Containers lists each container's resolved contribution.
	Containers []ContainerBulk `json:"containers"`
	// Total is Root plus every container's own+contents bulk.
	Total float64 `json:"total"`
	// Max is the carrying limit: STR modifier + 5.
	Max   float64 `json:"max"`
	Level Level   `json:"level"`
}

// effectiveBulk returns the counted bulk of one inventory entry: zero for
// negligible per-unit bulk, quantity/1000 for coins, else bulk x quantity.
func effectiveBulk(it character.EquippedItem) float64 {
	qty := it.Quantity
	if qty <= 0 {
		qty = 1
	}
	if it.Kind == character.KindCoin {
		return float64(qty) / CoinsPerBulk
	}
	if it.Bulk < NegligibleThreshold {
		return 0
	}
	return it.Bulk * float64(qty)
}

// containerContents sums the reduction-adjusted bulk of the items held by
// the container, capped at its capacity. The reduction applies per item
// and never drives a contribution negative. Nested containers are skipped;
// each container contributes once through its own entry.
func containerContents(c character.EquippedItem, items []character.EquippedItem) float64 {
	sum := 0.0
	for _, it := range items {
		if it.ContainerID != c.ID || it.ID == c.ID || it.IsContainer {
			continue
		}
		eff := effectiveBulk(it) - c.BulkReduction
		if eff < 0 {
			eff = 0
		}
		sum += eff
	}
	if c.Capacity > 0 && sum > c.Capacity {
		sum = c.Capacity
	}
	return sum
}

// MaxBulk returns the carrying limit for a strength modifier.
func MaxBulk(strMod int) float64 {
	return float64(strMod) + 5
}

// LevelFor classifies a total against a limit: normal up to the limit,
// encumbered up to limit+1, overburdened beyond.
func LevelFor(total, max float64) Level {
	switch {
	case total <= max:
		return LevelNormal
	case total <= max+1:
		return LevelEncumbered
	default:
		return LevelOverburdened
	}
}

// Derive computes the bulk picture for a character's inventory. Items whose
// ContainerID points at a non-container (or at nothing in the list) are
// treated as root items rather than dropped.
//
// Postcondition: the input slices are not modified; Total >= 0.
func Derive(c character.Character, items []character.EquippedItem) Result {
	containers := map[string]bool{}
	for _, it := range items {
		if it.IsContainer {
			containers[it.ID] = true
		}
	}

	res := Result{Max: MaxBulk(c.Abilities.StrMod())}
	for _, it := range items {
		if it.IsContainer {
			cb := ContainerBulk{
				ItemID:   it.ID,
				Own:      effectiveBulk(it),
				Contents: containerContents(it, items),
			}
			res.Containers = append(res.Containers, cb)
			res.Total += cb.Own + cb.Contents
			continue
		}
		if it.ContainerID != "" && containers[it.ContainerID] {
			continue // counted via its container
		}
		res.Root += effectiveBulk(it)
	}
	res.Total += res.Root
	res.Level = LevelFor(res.Total, res.Max)
	return res
}

// CanAddItem reports whether adding item (optionally into the container
// identified by containerID) keeps the character within the allowed
// overage of one Bulk past the limit. When a container is targeted, its
// remaining capacity is checked as well. The source inventory is never
// mutated; the insertion is simulated on a copy.
func CanAddItem(c character.Character, items []character.EquippedItem, item character.EquippedItem, containerID string) bool {
	if containerID != "" {
		var target *character.EquippedItem
		for i := range items {
			if items[i].ID == containerID && items[i].IsContainer {
				target = &items[i]
				break
			}
		}
		if target == nil {
			return false
		}
		if target.Capacity > 0 {
			used := containerContents(*target, items)
			add := effectiveBulk(item) - target.BulkReduction
			if add < 0 {
				add = 0
			}
			if used+add > target.Capacity {
				return false
			}
		}
		item.ContainerID = containerID
	} else {
		item.ContainerID = ""
	}

	simulated := make([]character.EquippedItem, len(items), len(items)+1)
	copy(simulated, items)
	simulated = append(simulated, item)

	res := Derive(c, simulated)
	return res.Total <= res.Max+1
}
