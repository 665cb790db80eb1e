package ability

// Rank is the ordinal proficiency scale. The numeric value doubles as the
// raw bonus contribution before the level term is added.
type Rank int

const (
	// Untrained contributes nothing, not even level.
	Untrained Rank = 0
	// Trained is the first earned rank.
	Trained Rank = 2
	// Expert is the second earned rank.
	Expert Rank = 4
	// Master is the third earned rank.
	Master Rank = 6
	// Legendary is the highest rank.
	Legendary Rank = 8
)

// Valid reports whether r is one of the five defined ranks.
func (r Rank) Valid() bool {
	switch r {
	case Untrained, Trained, Expert, Master, Legendary:
		return true
	}
	return false
}

// String returns the lowercase rank name, or "untrained" for out-of-range values.
func (r Rank) String() string {
	switch r {
	case Trained:
		return "trained"
	case Expert:
		return "expert"
	case Master:
		return "master"
	case Legendary:
		return "legendary"
	default:
		return "untrained"
	}
}

// RankFromString parses a rank name. Unknown names map to Untrained so a
// stale record still derives a sheet.
func RankFromString(s string) Rank {
	switch s {
	case "trained":
		return Trained
	case "expert":
		return Expert
	case "master":
		return Master
	case "legendary":
		return Legendary
	default:
		return Untrained
	}
}

// ProficiencyBonus returns the total proficiency contribution for a level
// and rank. Untrained always yields 0. When withoutLevel is true (the
// Proficiency Without Level variant) the level term is dropped and the
// rank value stands alone.
//
// Postcondition: result is 0 for Untrained regardless of level or variant.
func ProficiencyBonus(level int, rank Rank, withoutLevel bool) int {
	if rank == Untrained {
		return 0
	}
	if withoutLevel {
		return int(rank)
	}
	return level + int(rank)
}
