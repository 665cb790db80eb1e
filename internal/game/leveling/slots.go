package leveling

import "github.com/cory-johannsen/sheet/internal/game/character"

// SlotType names the kind of grant a slot accepts.
type SlotType string

const (
	// SlotAncestryFeat accepts ancestry feats.
	SlotAncestryFeat SlotType = "ancestry"
	// SlotClassFeat accepts class feats.
	SlotClassFeat SlotType = "class"
	// SlotGeneralFeat accepts general feats.
	SlotGeneralFeat SlotType = "general"
	// SlotSkillFeat accepts skill feats.
	SlotSkillFeat SlotType = "skill"
	// SlotSkillIncrease raises one skill rank.
	SlotSkillIncrease SlotType = "skillIncrease"
	// SlotArchetypeFeat is the Free Archetype variant's extra slot.
	SlotArchetypeFeat SlotType = "archetype"
)

// Slot is one feat/increase grant unlocked at a level.
type Slot struct {
	Type  SlotType `json:"type"`
	Level int      `json:"level"`
}

// FeatSlotsUpTo accumulates every slot unlocked at levels 1..level in
// ascending level order. Variant overlays extend the standard table:
// Free Archetype injects an archetype slot at each even level, and
// Ancestry Paragon injects an extra ancestry slot at its milestone levels
// unless the standard table already grants one there.
//
// Postcondition: slots are ordered by level ascending; no level holds two
// ancestry slots from the paragon injection alone.
func FeatSlotsUpTo(level int, variants character.VariantRules) []Slot {
	if level > character.MaxLevel {
		level = character.MaxLevel
	}
	var slots []Slot
	for lv := character.MinLevel; lv <= level; lv++ {
		g := GrantsAt(lv)
		if g.AncestryFeat {
			slots = append(slots, Slot{Type: SlotAncestryFeat, Level: lv})
		} else if variants.AncestryParagon && ancestryParagonLevels[lv] {
			slots = append(slots, Slot{Type: SlotAncestryFeat, Level: lv})
		}
		if g.ClassFeat {
			slots = append(slots, Slot{Type: SlotClassFeat, Level: lv})
		}
		if g.GeneralFeat {
			slots = append(slots, Slot{Type: SlotGeneralFeat, Level: lv})
		}
		if g.SkillFeat {
			slots = append(slots, Slot{Type: SlotSkillFeat, Level: lv})
		}
		if g.SkillIncrease {
			slots = append(slots, Slot{Type: SlotSkillIncrease, Level: lv})
		}
		if variants.FreeArchetype && lv%2 == 0 {
			slots = append(slots, Slot{Type: SlotArchetypeFeat, Level: lv})
		}
	}
	return slots
}
