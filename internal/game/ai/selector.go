package ai

import (
	"github.com/cory-johannsen/fightsim/internal/game/combat"
	"github.com/cory-johannsen/fightsim/internal/game/dice"
)

// Selector picks enemy actions. It keeps no state between turns.
//
// Invariant: rng must not be nil.
type Selector struct {
	rng           dice.Randomizer
	healThreshold float64
}

// NewSelector constructs a Selector. healThreshold is the HP ratio below which
// Heal and Healmore become eligible.
//
// Precondition: rng must not be nil.
func NewSelector(rng dice.Randomizer, healThreshold float64) *Selector {
	if rng == nil {
		panic("ai.NewSelector: rng must not be nil")
	}
	return &Selector{rng: rng, healThreshold: healThreshold}
}

// Choose walks p in order. Each entry rolls 1-100 against its weight; an entry
// that rolls true is taken if its gate allows it in s, and skipped otherwise.
// A skipped entry does not end the scan. When no entry is taken the enemy attacks.
//
// Postcondition: the result is ActionAttack or an action present in p, and it
// is never Heal or Healmore while s.HPRatio() >= the heal threshold.
func (sel *Selector) Choose(p Pattern, s Situation) combat.EnemyAction {
	for _, e := range p {
		if sel.rng.Between(1, 100) > e.Weight {
			continue
		}
		if sel.eligible(e.Action, s) {
			return e.Action
		}
	}
	return combat.ActionAttack
}

func (sel *Selector) eligible(a combat.EnemyAction, s Situation) bool {
	switch a {
	case combat.ActionHeal, combat.ActionHealmore:
		return s.HPRatio() < sel.healThreshold
	case combat.ActionSleep:
		return !s.PlayerAsleep
	case combat.ActionStopspell:
		return !s.PlayerSealed
	default:
		return true
	}
}
