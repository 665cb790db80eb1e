package abp_test

import (
	"testing"

	"github.com/cory-johannsen/sheet/internal/game/abp"
)

func TestAttackPotency_Thresholds(t *testing.T) {
	cases := []struct{ level, want int }{
		{1, 0}, {2, 1}, {9, 1}, {10, 2}, {15, 2}, {16, 3}, {20, 3},
	}
	for _, c := range cases {
		if got := abp.AttackPotency(c.level); got != c.want {
			t.Errorf("AttackPotency(%d) = %d, want %d", c.level, got, c.want)
		}
	}
}

func TestDefenseBonus_SumsPotencyAndResilient(t *testing.T) {
	cases := []struct{ level, want int }{
		{1, 0},
		{5, 1},  // +1 potency
		{8, 2},  // +1 potency, +1 resilient
		{11, 3}, // +2 potency, +1 resilient
		{14, 4}, // +2 potency, +2 resilient
		{18, 5}, // +3 potency, +2 resilient
		{20, 6}, // +3 potency, +3 resilient
	}
	for _, c := range cases {
		if got := abp.DefenseBonus(c.level); got != c.want {
			t.Errorf("DefenseBonus(%d) = %d, want %d", c.level, got, c.want)
		}
	}
}

func TestStrikingDice_ApproximationCaps(t *testing.T) {
	cases := []struct{ level, want int }{
		{1, 0}, {5, 0}, {6, 1}, {11, 1}, {12, 2}, {18, 3}, {20, 3}, {24, 3},
	}
	for _, c := range cases {
		if got := abp.StrikingDice(c.level); got != c.want {
			t.Errorf("StrikingDice(%d) = %d, want %d", c.level, got, c.want)
		}
	}
}
