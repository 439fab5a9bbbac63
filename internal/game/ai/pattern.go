// Package ai chooses the enemy's action each turn from its behavior pattern.
//
// A pattern is an ordered decision table of (action, weight) entries. Selection
// walks the table in order, rolls each entry against its weight, and applies an
// eligibility gate to entries that roll true. The first eligible entry wins;
// an exhausted table falls back to a plain attack.
package ai

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/fightsim/internal/game/combat"
)

// Entry is one row of a behavior pattern.
//
// Precondition: Action is valid and 1 <= Weight <= 100.
type Entry struct {
	Action combat.EnemyAction `yaml:"action"`
	Weight int                `yaml:"weight"`
}

// Pattern is an enemy's ordered decision table. Order is significant.
type Pattern []Entry

// Validate checks every entry.
//
// Postcondition: nil return guarantees a non-empty pattern whose entries all
// name a known action with a weight in [1, 100].
func (p Pattern) Validate() error {
	if len(p) == 0 {
		return errors.New("ai.Pattern: must have at least one entry")
	}
	for i, e := range p {
		if !e.Action.Valid() {
			return fmt.Errorf("ai.Pattern entry %d: unknown action %d", i, int(e.Action))
		}
		if e.Weight < 1 || e.Weight > 100 {
			return fmt.Errorf("ai.Pattern entry %d (%s): weight must be in [1, 100], got %d", i, e.Action, e.Weight)
		}
	}
	return nil
}

// Actions returns the distinct actions the pattern can produce, in pattern
// order, always including the attack fallback.
func (p Pattern) Actions() []combat.EnemyAction {
	seen := make(map[combat.EnemyAction]bool, len(p)+1)
	var out []combat.EnemyAction
	for _, e := range p {
		if !seen[e.Action] {
			seen[e.Action] = true
			out = append(out, e.Action)
		}
	}
	if !seen[combat.ActionAttack] {
		out = append(out, combat.ActionAttack)
	}
	return out
}
