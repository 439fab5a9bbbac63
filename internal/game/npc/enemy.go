package npc

import (
	"github.com/cory-johannsen/fightsim/internal/game/ai"
	"github.com/cory-johannsen/fightsim/internal/game/condition"
	"github.com/cory-johannsen/fightsim/internal/game/dice"
)

// Enemy is a live enemy combatant created from a Template for one battle.
// It is not safe for concurrent use.
type Enemy struct {
	// ID uniquely identifies this runtime instance.
	ID string
	// TemplateID is the source template's ID.
	TemplateID  string
	Name        string
	Strength    int
	Agility     int
	Resist      Resistances
	Dodge       int
	FleeTier    int
	BlocksCrits bool
	Pattern     ai.Pattern
	// Status holds the enemy's sleep countdown and spell seal.
	Status condition.Set

	currentHP int
	maxHP     int
}

// NewEnemy creates a live enemy from tmpl with the given maximum HP.
//
// Precondition: tmpl must be non-nil; maxHP >= 1.
// Postcondition: CurrentHP() == MaxHP() == maxHP and no status is active.
func NewEnemy(id string, tmpl *Template, maxHP int) *Enemy {
	return &Enemy{
		ID:          id,
		TemplateID:  tmpl.ID,
		Name:        tmpl.Name,
		Strength:    tmpl.Strength,
		Agility:     tmpl.Agility,
		Resist:      tmpl.Resist,
		Dodge:       tmpl.Dodge,
		FleeTier:    tmpl.FleeTier,
		BlocksCrits: tmpl.BlocksCrits,
		Pattern:     tmpl.Pattern,
		currentHP:   maxHP,
		maxHP:       maxHP,
	}
}

// Spawn creates a live enemy from tmpl, rolling its maximum HP from the
// template's HP range.
//
// Precondition: tmpl must be non-nil and valid; rng must be non-nil.
// Postcondition: tmpl.HP.Min <= MaxHP() <= tmpl.HP.Max for an unscripted rng.
func Spawn(tmpl *Template, rng dice.Randomizer) *Enemy {
	return NewEnemy(tmpl.ID, tmpl, rng.Between(tmpl.HP.Min, tmpl.HP.Max))
}

// CurrentHP returns the enemy's current hit points.
func (e *Enemy) CurrentHP() int { return e.currentHP }

// MaxHP returns the enemy's maximum hit points for this battle.
func (e *Enemy) MaxHP() int { return e.maxHP }

// MissingHP returns MaxHP() - CurrentHP().
func (e *Enemy) MissingHP() int { return e.maxHP - e.currentHP }

// IsDefeated reports whether the enemy has zero hit points.
func (e *Enemy) IsDefeated() bool {
	return e.currentHP <= 0
}

// TakeDamage subtracts n hit points, flooring at zero.
//
// Precondition: n >= 0.
// Postcondition: 0 <= CurrentHP() <= MaxHP().
func (e *Enemy) TakeDamage(n int) {
	e.currentHP = max(e.currentHP-n, 0)
}

// Heal restores n hit points, capped at MaxHP().
//
// Precondition: n >= 0.
// Postcondition: CurrentHP() <= MaxHP().
func (e *Enemy) Heal(n int) {
	e.currentHP = min(e.currentHP+n, e.maxHP)
}

// Asleep reports whether the enemy's sleep countdown is running.
func (e *Enemy) Asleep() bool { return e.Status.Asleep() }

// Sealed reports whether the enemy's magic is sealed.
func (e *Enemy) Sealed() bool { return e.Status.Sealed() }

// Restore returns the enemy to full health with no status, keeping its rolled maximum.
//
// Postcondition: CurrentHP() == MaxHP(); no status is active.
func (e *Enemy) Restore() {
	e.currentHP = e.maxHP
	e.Status.Reset()
}

// HealthDescription returns a visible health state string.
//
// Postcondition: Returns a non-empty string.
func (e *Enemy) HealthDescription() string {
	if e.currentHP <= 0 {
		return "defeated"
	}
	pct := float64(e.currentHP) / float64(e.maxHP)
	switch {
	case pct >= 1.0:
		return "unharmed"
	case pct >= 0.85:
		return "barely scratched"
	case pct >= 0.60:
		return "lightly wounded"
	case pct >= 0.40:
		return "moderately wounded"
	case pct >= 0.20:
		return "heavily wounded"
	default:
		return "critically wounded"
	}
}
