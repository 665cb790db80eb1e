package ability_test

import (
	"testing"

	"github.com/cory-johannsen/sheet/internal/game/ability"
	"pgregory.net/rapid"
)

func TestModifier_KnownValues(t *testing.T) {
	cases := []struct {
		score int
		want  int
	}{
		{10, 0},
		{11, 0},
		{12, 1},
		{18, 4},
		{20, 5},
		{7, -2},
		{8, -1},
		{9, -1},
		{1, -5},
		{0, -5},
		{-2, -6},
	}
	for _, c := range cases {
		if got := ability.Modifier(c.score); got != c.want {
			t.Errorf("Modifier(%d) = %d, want %d", c.score, got, c.want)
		}
	}
}

func TestModifier_Property_FloorDivision(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		score := rapid.IntRange(-50, 50).Draw(rt, "score")
		got := ability.Modifier(score)
		// floor((score-10)/2): modifier*2 must land on score-10 or score-11.
		if m2 := got * 2; m2 != score-10 && m2 != score-11 {
			rt.Fatalf("Modifier(%d) = %d is not floor((score-10)/2)", score, got)
		}
		if ability.Modifier(score+2) != got+1 {
			rt.Fatalf("Modifier is not monotone with step 1 per 2 score at %d", score)
		}
	})
}

func TestDefaultScores_AllTen(t *testing.T) {
	s := ability.DefaultScores()
	for name, score := range map[string]int{
		"strength": s.Strength, "dexterity": s.Dexterity,
		"constitution": s.Constitution, "intelligence": s.Intelligence,
		"wisdom": s.Wisdom, "charisma": s.Charisma,
	} {
		if score != 10 {
			t.Errorf("DefaultScores().%s = %d, want 10", name, score)
		}
	}
}

func TestScores_ByName_UnknownDefaultsToTen(t *testing.T) {
	s := ability.Scores{Strength: 18}
	if got := s.ByName("strength"); got != 18 {
		t.Errorf("ByName(strength) = %d, want 18", got)
	}
	if got := s.ByName("grit"); got != 10 {
		t.Errorf("ByName(unknown) = %d, want 10", got)
	}
}
