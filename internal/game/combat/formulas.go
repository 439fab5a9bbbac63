// Package combat implements the combat formulas and the resolution engine for
// one-on-one battles between the player and a single enemy.
package combat

// Range is an inclusive integer interval [Min, Max].
type Range struct {
	Min int
	Max int
}

// Contains reports whether v lies within the range.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Clamp bounds a draw so that Min >= 0, Max >= 1 and Min <= Max.
//
// Postcondition: 0 <= result.Min <= result.Max; result.Max >= 1.
func (r Range) Clamp() Range {
	if r.Min < 0 {
		r.Min = 0
	}
	if r.Max < 1 {
		r.Max = 1
	}
	if r.Min > r.Max {
		r.Min = r.Max
	}
	return r
}

// NormalDamageRange returns the damage interval for an ordinary hit.
// Formula: min = max((attack - defense/2)/4, 0), max = max((attack - defense/2)/2, 1).
//
// Postcondition: 0 <= Min <= Max; Max >= 1.
func NormalDamageRange(attack, defense int) Range {
	base := attack - floorDiv(defense, 2)
	return Range{Min: floorDiv(base, 4), Max: floorDiv(base, 2)}.Clamp()
}

// WeakDamageRange returns the damage interval used when the defender's
// defense exceeds the attacker's strength: [0, (strength+4)/6].
//
// Postcondition: 0 <= Min <= Max; Max >= 1.
func WeakDamageRange(strength int) Range {
	return Range{Min: 0, Max: floorDiv(strength+4, 6)}.Clamp()
}

// CritRange returns the damage interval for a critical hit: [attack/2, attack].
//
// Postcondition: 0 <= Min <= Max; Max >= 1.
func CritRange(attack int) Range {
	return Range{Min: floorDiv(attack, 2), Max: attack}.Clamp()
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
