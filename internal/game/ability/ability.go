// Package ability provides ability-score math and the proficiency rank
// scale used by every derivation in the sheet engine.
package ability

// Scores holds the six PF2E ability score values for a character.
type Scores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// DefaultScores returns the creation baseline: every ability at 10.
func DefaultScores() Scores {
	return Scores{
		Strength: 10, Dexterity: 10, Constitution: 10,
		Intelligence: 10, Wisdom: 10, Charisma: 10,
	}
}

// Modifier returns the PF2E ability modifier for a score: floor((score-10)/2).
// Negative modifiers are preserved; there is no floor at zero.
//
// Postcondition: Modifier(10) == 0, Modifier(18) == 4, Modifier(7) == -2.
func Modifier(score int) int {
	d := score - 10
	if d >= 0 {
		return d / 2
	}
	// Go integer division truncates toward zero; odd negative deltas
	// must still round down (7 -> -2, not -1).
	return (d - 1) / 2
}

// StrMod returns the strength modifier.
func (s Scores) StrMod() int { return Modifier(s.Strength) }

// DexMod returns the dexterity modifier.
func (s Scores) DexMod() int { return Modifier(s.Dexterity) }

// ConMod returns the constitution modifier.
func (s Scores) ConMod() int { return Modifier(s.Constitution) }

// IntMod returns the intelligence modifier.
func (s Scores) IntMod() int { return Modifier(s.Intelligence) }

// WisMod returns the wisdom modifier.
func (s Scores) WisMod() int { return Modifier(s.Wisdom) }

// ChaMod returns the charisma modifier.
func (s Scores) ChaMod() int { return Modifier(s.Charisma) }

// ByName returns the score for a lowercase ability name, or 10 for an
// unknown name so a dangling key ability degrades to a +0 modifier.
func (s Scores) ByName(name string) int {
	switch name {
	case "strength":
		return s.Strength
	case "dexterity":
		return s.Dexterity
	case "constitution":
		return s.Constitution
	case "intelligence":
		return s.Intelligence
	case "wisdom":
		return s.Wisdom
	case "charisma":
		return s.Charisma
	}
	return 10
}
