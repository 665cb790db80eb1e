// Package companion derives stat blocks for familiars, animal companions,
// and eidolons from the master's record. Pet stats are never stored, only
// derived; the exceptions are current HP where the pet owns a pool.
package companion

import (
	"github.com/cory-johannsen/sheet/internal/game/ability"
	"github.com/cory-johannsen/sheet/internal/game/character"
)

// Saves is a companion's three saving-throw bonuses.
type Saves struct {
	Fortitude int `json:"fortitude"`
	Reflex    int `json:"reflex"`
	Will      int `json:"will"`
}

// HitPool is an independent HP pool for pets that track their own.
type HitPool struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// StatBlock is the derived statistics for one pet, shaped by its variant:
// familiars never carry HP, eidolons only when they do not share the
// master's pool.
type StatBlock struct {
	PetID      string            `json:"petId"`
	Name       string            `json:"name"`
	Kind       character.PetKind `json:"kind"`
	AC         int               `json:"ac"`
	Perception int               `json:"perception"`
	Saves      Saves             `json:"saves"`
	// Attack and Damage are empty for familiars.
	Attack int    `json:"attack,omitempty"`
	Damage string `json:"damage,omitempty"`
	// HP is nil for familiars and for eidolons sharing the master's pool.
	HP *HitPool `json:"hp,omitempty"`
	// SharesMasterHP marks an eidolon drawing on the master's pool.
	SharesMasterHP bool `json:"sharesMasterHp,omitempty"`
}

// template scales a companion or eidolon stat block by master level.
type template struct {
	baseHP           int
	hpPerLevel       int
	baseAC           int
	attackDice       string
	damageType       string
	fort, refl, will int // save bases added to level
}

// companionTemplates keys animal-companion stat scaling by type.
var companionTemplates = map[string]template{
	"wolf":  {baseHP: 6, hpPerLevel: 6, baseAC: 3, attackDice: "1d8", damageType: "piercing", fort: 2, refl: 3, will: 1},
	"bear":  {baseHP: 8, hpPerLevel: 8, baseAC: 2, attackDice: "1d8", damageType: "slashing", fort: 3, refl: 2, will: 1},
	"bird":  {baseHP: 4, hpPerLevel: 4, baseAC: 4, attackDice: "1d6", damageType: "piercing", fort: 1, refl: 3, will: 2},
	"horse": {baseHP: 8, hpPerLevel: 6, baseAC: 2, attackDice: "1d6", damageType: "bludgeoning", fort: 3, refl: 2, will: 1},
}

// eidolonTemplates keys eidolon stat scaling by type.
var eidolonTemplates = map[string]template{
	"dragon": {baseHP: 10, hpPerLevel: 10, baseAC: 4, attackDice: "1d10", damageType: "piercing", fort: 3, refl: 2, will: 2},
	"angel":  {baseHP: 8, hpPerLevel: 8, baseAC: 4, attackDice: "1d8", damageType: "holy", fort: 2, refl: 2, will: 3},
	"beast":  {baseHP: 10, hpPerLevel: 8, baseAC: 3, attackDice: "1d10", damageType: "slashing", fort: 3, refl: 3, will: 1},
}

// Derive computes the stat block for one pet from the master's record.
// Unknown template keys fall back to a neutral zero template so the sheet
// still renders.
//
// Precondition: pet.Kind must match the populated payload; a mismatched or
// empty payload derives the familiar-style minimal block.
// Postcondition: pure; neither pet nor master is modified.
func Derive(pet character.Pet, master character.Character) StatBlock {
	out := StatBlock{PetID: pet.ID, Name: pet.Name, Kind: pet.Kind}
	level := master.ClampedLevel()

	switch pet.Kind {
	case character.PetAnimalCompanion:
		tpl := template{}
		if pet.AnimalCompanion != nil {
			tpl = companionTemplates[pet.AnimalCompanion.CompanionType]
		}
		fillScaled(&out, tpl, level, master.Abilities.ConMod())
		if pet.AnimalCompanion != nil {
			if pet.AnimalCompanion.Mature {
				out.HP.Max += 4
			}
			out.HP.Current = clampCurrent(pet.AnimalCompanion.CurrentHP, out.HP.Max)
		}

	case character.PetEidolon:
		tpl := template{}
		if pet.Eidolon != nil {
			tpl = eidolonTemplates[pet.Eidolon.EidolonType]
		}
		fillScaled(&out, tpl, level, master.Abilities.ConMod())
		if pet.Eidolon != nil && pet.Eidolon.SharesHP {
			out.HP = nil
			out.SharesMasterHP = true
		} else if pet.Eidolon != nil {
			out.HP.Current = clampCurrent(pet.Eidolon.CurrentHP, out.HP.Max)
		}

	default:
		// Familiars: everything rides on the master's casting statistic.
		prof := ability.Untrained
		if master.Spellcasting != nil {
			prof = master.Spellcasting.Proficiency
		}
		bonus := ability.ProficiencyBonus(level, prof, master.Variants.ProficiencyWithoutLevel)
		out.AC = 10 + bonus
		out.Perception = bonus
		out.Saves = Saves{Fortitude: bonus, Reflex: bonus, Will: bonus}
	}
	return out
}

// fillScaled populates the level-scaled fields shared by companions and
// eidolons: HP from the template plus the master's CON modifier per level,
// AC and saves rising with level.
func fillScaled(out *StatBlock, tpl template, level, conMod int) {
	max := tpl.baseHP + (tpl.hpPerLevel+conMod)*level
	if max < 0 {
		max = 0
	}
	out.HP = &HitPool{Max: max, Current: max}
	out.AC = 10 + tpl.baseAC + level
	out.Perception = level + 2
	out.Saves = Saves{
		Fortitude: level + tpl.fort,
		Reflex:    level + tpl.refl,
		Will:      level + tpl.will,
	}
	out.Attack = level + 2
	if tpl.attackDice != "" {
		out.Damage = tpl.attackDice + " " + tpl.damageType
	}
}

// clampCurrent fits a stored current HP into [0, max], treating 0 as
// "unset, use max" the same way the character normalizer does.
func clampCurrent(current, max int) int {
	if current <= 0 || current > max {
		return max
	}
	return current
}

// DeriveAll maps Derive over every pet on the record, preserving order.
func DeriveAll(master character.Character) []StatBlock {
	if len(master.Pets) == 0 {
		return nil
	}
	out := make([]StatBlock, 0, len(master.Pets))
	for _, p := range master.Pets {
		out = append(out, Derive(p, master))
	}
	return out
}
