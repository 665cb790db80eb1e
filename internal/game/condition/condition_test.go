package condition_test

import (
	"testing"

	"github.com/cory-johannsen/sheet/internal/game/character"
	"github.com/cory-johannsen/sheet/internal/game/condition"
)

func TestPenalties_ValuedScalesWithValue(t *testing.T) {
	buffs := condition.Penalties([]character.Condition{{ID: "frightened", Value: 2}})
	if len(buffs) != 2 {
		t.Fatalf("buffs = %d, want 2 (attack and ac)", len(buffs))
	}
	for _, b := range buffs {
		if b.Value != -2 {
			t.Errorf("%s penalty = %d, want -2", b.Target, b.Value)
		}
		if b.Type != character.BonusPenalty || !b.Active {
			t.Errorf("buff %+v must be an active penalty", b)
		}
	}
}

func TestPenalties_ValuedDefaultsToOne(t *testing.T) {
	buffs := condition.Penalties([]character.Condition{{ID: "sickened"}})
	if len(buffs) != 2 || buffs[0].Value != -1 {
		t.Fatalf("sickened with no value = %+v, want two -1 penalties", buffs)
	}
}

func TestPenalties_FlatIgnoresValue(t *testing.T) {
	buffs := condition.Penalties([]character.Condition{{ID: "prone", Value: 3}})
	if len(buffs) != 1 {
		t.Fatalf("buffs = %d, want 1", len(buffs))
	}
	if buffs[0].Target != character.TargetAttack || buffs[0].Value != -2 {
		t.Errorf("prone = %+v, want -2 attack", buffs[0])
	}
}

func TestPenalties_TargetsPerCondition(t *testing.T) {
	cases := []struct {
		id      string
		targets map[character.BuffTarget]int
	}{
		{"enfeebled", map[character.BuffTarget]int{character.TargetAttack: -1, character.TargetDamage: -1}},
		{"clumsy", map[character.BuffTarget]int{character.TargetAC: -1}},
		{"encumbered", map[character.BuffTarget]int{character.TargetSpeed: -10}},
	}
	for _, tc := range cases {
		buffs := condition.Penalties([]character.Condition{{ID: tc.id, Value: 1}})
		if len(buffs) != len(tc.targets) {
			t.Errorf("%s: buffs = %d, want %d", tc.id, len(buffs), len(tc.targets))
			continue
		}
		for _, b := range buffs {
			want, ok := tc.targets[b.Target]
			if !ok {
				t.Errorf("%s: unexpected target %s", tc.id, b.Target)
				continue
			}
			if b.Value != want {
				t.Errorf("%s %s = %d, want %d", tc.id, b.Target, b.Value, want)
			}
		}
	}
}

func TestPenalties_UnknownIDSkipped(t *testing.T) {
	buffs := condition.Penalties([]character.Condition{{ID: "stunned", Value: 1}, {ID: "no-such"}})
	if len(buffs) != 0 {
		t.Errorf("unmodeled conditions must contribute nothing, got %+v", buffs)
	}
}

func TestLookup(t *testing.T) {
	if _, ok := condition.Lookup("frightened"); !ok {
		t.Error("frightened must be in the core table")
	}
	if _, ok := condition.Lookup("blessed"); ok {
		t.Error("unknown id must miss")
	}
}
