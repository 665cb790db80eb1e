package character

// BonusType classifies a buff for stacking purposes.
type BonusType string

const (
	// BonusStatus is a status bonus (spells like bless, heroism).
	BonusStatus BonusType = "status"
	// BonusCircumstance is a circumstance bonus (cover, flanking aid).
	BonusCircumstance BonusType = "circumstance"
	// BonusItem is an item bonus.
	BonusItem BonusType = "item"
	// BonusPenalty is an untyped penalty; penalties always apply.
	BonusPenalty BonusType = "penalty"
)

// BuffTarget names the statistic a buff applies to.
type BuffTarget string

const (
	// TargetAttack affects attack rolls.
	TargetAttack BuffTarget = "attack"
	// TargetDamage affects damage totals.
	TargetDamage BuffTarget = "damage"
	// TargetAC affects armor class.
	TargetAC BuffTarget = "ac"
	// TargetSpeed affects movement speed.
	TargetSpeed BuffTarget = "speed"
)

// Buff is a signed bonus or penalty on one statistic. A nil Duration means
// the buff is permanent; otherwise it counts down in rounds.
type Buff struct {
	Name     string     `json:"name"`
	Type     BonusType  `json:"type"`
	Target   BuffTarget `json:"target"`
	Value    int        `json:"value"`
	Duration *int       `json:"duration,omitempty"`
	Active   bool       `json:"active"`
}

// StackBuffs applies the stacking rule to the active buffs for one target:
// only the largest positive bonus of each type counts, typed negative
// values take only the worst of their type, and untyped penalties
// (BonusPenalty) all stack.
//
// Postcondition: the result is the net signed modifier; inactive buffs and
// buffs for other targets contribute nothing.
func StackBuffs(buffs []Buff, target BuffTarget) int {
	best := map[BonusType]int{}
	worst := map[BonusType]int{}
	untyped := 0
	for _, b := range buffs {
		if !b.Active || b.Target != target {
			continue
		}
		switch {
		case b.Type == BonusPenalty:
			untyped += b.Value
		case b.Value < 0:
			if b.Value < worst[b.Type] {
				worst[b.Type] = b.Value
			}
		default:
			if b.Value > best[b.Type] {
				best[b.Type] = b.Value
			}
		}
	}
	total := untyped
	for _, v := range best {
		total += v
	}
	for _, v := range worst {
		total += v
	}
	return total
}

// ActiveBuffs returns the subset of buffs that are active for a target,
// preserving order. The input slice is not modified.
func ActiveBuffs(buffs []Buff, target BuffTarget) []Buff {
	var out []Buff
	for _, b := range buffs {
		if b.Active && b.Target == target {
			out = append(out, b)
		}
	}
	return out
}
