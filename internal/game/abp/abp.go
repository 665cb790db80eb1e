// Package abp holds the Automatic Bonus Progression tables. When the
// variant is active these replace item potency/resilient bonuses wholesale;
// the two sources are never summed.
package abp

// AttackPotency returns the attack-roll item bonus granted at a level:
// +1 at 2, +2 at 10, +3 at 16.
func AttackPotency(level int) int {
	switch {
	case level >= 16:
		return 3
	case level >= 10:
		return 2
	case level >= 2:
		return 1
	default:
		return 0
	}
}

// ArmorPotency returns the AC item bonus granted at a level:
// +1 at 5, +2 at 11, +3 at 18.
func ArmorPotency(level int) int {
	switch {
	case level >= 18:
		return 3
	case level >= 11:
		return 2
	case level >= 5:
		return 1
	default:
		return 0
	}
}

// Resilient returns the save-equivalent resilient bonus granted at a level:
// +1 at 8, +2 at 14, +3 at 20.
func Resilient(level int) int {
	switch {
	case level >= 20:
		return 3
	case level >= 14:
		return 2
	case level >= 8:
		return 1
	default:
		return 0
	}
}

// DefenseBonus is the AC item bonus under the variant: armor potency plus
// resilient, standing in for both rune types.
func DefenseBonus(level int) int {
	return ArmorPotency(level) + Resilient(level)
}

// StrikingDice approximates the extra weapon damage dice granted at a
// level as floor(level/6), capped at 3. This tracks the published striking
// progression loosely, not exactly; revisit against the printed table
// before treating it as canonical.
func StrikingDice(level int) int {
	n := level / 6
	if n > 3 {
		return 3
	}
	return n
}
