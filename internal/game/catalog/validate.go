package catalog

import (
	"fmt"
	"sort"

	"github.com/cory-johannsen/sheet/internal/game/dice"
)

// Finding is one consistency problem detected by ValidateRefs.
type Finding struct {
	Kind string // def kind ("class", "feat", "weapon")
	ID   string
	Msg  string
}

// String renders the finding as "kind id: msg".
func (f Finding) String() string {
	return fmt.Sprintf("%s %s: %s", f.Kind, f.ID, f.Msg)
}

var abilityNames = map[string]bool{
	"strength": true, "dexterity": true, "constitution": true,
	"intelligence": true, "wisdom": true, "charisma": true,
}

// ValidateRefs cross-checks the registry for consistency problems that the
// derivation layer deliberately tolerates: unknown key abilities, dangling
// feat prerequisites, unparseable damage dice. It is the offline complement
// to the always-total calculators.
//
// Postcondition: Returns findings sorted by kind then ID; empty means clean.
func ValidateRefs(reg *Registry) []Finding {
	var findings []Finding

	for _, c := range reg.Classes() {
		if !abilityNames[c.KeyAbility] {
			findings = append(findings, Finding{
				Kind: "class", ID: c.ID,
				Msg: fmt.Sprintf("unknown key ability %q", c.KeyAbility),
			})
		}
		if c.Spellcasting != nil && !abilityNames[c.Spellcasting.Ability] {
			findings = append(findings, Finding{
				Kind: "class", ID: c.ID,
				Msg: fmt.Sprintf("unknown spellcasting ability %q", c.Spellcasting.Ability),
			})
		}
	}

	for _, f := range reg.Feats() {
		for _, pre := range f.Prerequisites {
			if _, ok := reg.Feat(pre); !ok {
				findings = append(findings, Finding{
					Kind: "feat", ID: f.ID,
					Msg: fmt.Sprintf("prerequisite %q not in catalog", pre),
				})
			}
		}
	}

	for id, w := range reg.weapons {
		if _, err := dice.Parse(w.DamageDice); err != nil {
			findings = append(findings, Finding{
				Kind: "weapon", ID: id,
				Msg: fmt.Sprintf("damage dice %q do not parse: %v", w.DamageDice, err),
			})
		}
	}

	sort.Slice(findings, func(i, j int) bool {
		if findings[i].Kind != findings[j].Kind {
			return findings[i].Kind < findings[j].Kind
		}
		return findings[i].ID < findings[j].ID
	})
	return findings
}
