// Package character defines the player combatant and its construction.
package character

import (
	"slices"

	"github.com/cory-johannsen/fightsim/internal/game/combat"
	"github.com/cory-johannsen/fightsim/internal/game/condition"
	"github.com/cory-johannsen/fightsim/internal/game/inventory"
)

// MaxHerbs is the most medicinal herbs a player can carry.
const MaxHerbs = 6

// MaxLevel is the highest experience level a player can reach.
const MaxLevel = 30

// Stats holds the base attributes a player brings to battle. They are derived
// elsewhere from level and name and are plain inputs here.
type Stats struct {
	Name     string
	Level    int
	Strength int
	Agility  int
	MaxHP    int
	MaxMP    int
}

// Player is the long-lived player combatant. HP, MP, herbs and status are
// reset when a battle concludes.
// It is not safe for concurrent use.
type Player struct {
	Stats
	Loadout inventory.Loadout
	// Spells lists the spells the player has learned, in learning order.
	Spells []combat.Spell
	// Status holds the player's sleep countdown and spell seal.
	Status condition.Set

	currentHP int
	currentMP int
	herbs     int
}

// CurrentHP returns the player's current hit points.
func (p *Player) CurrentHP() int { return p.currentHP }

// MaxHP returns the player's maximum hit points.
func (p *Player) MaxHP() int { return p.Stats.MaxHP }

// MissingHP returns MaxHP() - CurrentHP().
func (p *Player) MissingHP() int { return p.Stats.MaxHP - p.currentHP }

// CurrentMP returns the player's current magic points.
func (p *Player) CurrentMP() int { return p.currentMP }

// MaxMP returns the player's maximum magic points.
func (p *Player) MaxMP() int { return p.Stats.MaxMP }

// Herbs returns the number of medicinal herbs carried.
func (p *Player) Herbs() int { return p.herbs }

// AttackPower returns strength plus the weapon modifier.
func (p *Player) AttackPower() int {
	return p.Strength + p.Loadout.WeaponModifier()
}

// Defense returns (agility + armor + shield) / 2.
func (p *Player) Defense() int {
	return (p.Agility + p.Loadout.DefenseModifier()) / 2
}

// ReducesHurt reports whether the player's armor reduces enemy Hurt damage.
func (p *Player) ReducesHurt() bool { return p.Loadout.ReducesHurt() }

// ReducesFire reports whether the player's armor reduces enemy fire damage.
func (p *Player) ReducesFire() bool { return p.Loadout.ReducesFire() }

// Knows reports whether the player has learned spell.
func (p *Player) Knows(spell combat.Spell) bool {
	return slices.Contains(p.Spells, spell)
}

// Asleep reports whether the player's sleep countdown is running.
func (p *Player) Asleep() bool { return p.Status.Asleep() }

// Sealed reports whether the player's magic is sealed.
func (p *Player) Sealed() bool { return p.Status.Sealed() }

// IsDefeated reports whether the player has zero hit points.
func (p *Player) IsDefeated() bool { return p.currentHP <= 0 }

// TakeDamage subtracts n hit points, flooring at zero.
//
// Precondition: n >= 0.
// Postcondition: 0 <= CurrentHP() <= MaxHP().
func (p *Player) TakeDamage(n int) {
	p.currentHP = max(p.currentHP-n, 0)
}

// Heal restores n hit points, capped at MaxHP().
//
// Precondition: n >= 0.
func (p *Player) Heal(n int) {
	p.currentHP = min(p.currentHP+n, p.Stats.MaxHP)
}

// SpendMP deducts cost magic points if the player has at least that many.
//
// Postcondition: returns false and leaves MP unchanged when CurrentMP() < cost.
func (p *Player) SpendMP(cost int) bool {
	if p.currentMP < cost {
		return false
	}
	p.currentMP -= cost
	return true
}

// AddHerbs adds up to n herbs without exceeding MaxHerbs and returns how many
// were actually added.
//
// Precondition: n >= 0.
func (p *Player) AddHerbs(n int) int {
	added := min(n, MaxHerbs-p.herbs)
	if added < 0 {
		added = 0
	}
	p.herbs += added
	return added
}

// TakeHerb removes one herb from the pack.
//
// Postcondition: returns false and changes nothing when no herbs remain.
func (p *Player) TakeHerb() bool {
	if p.herbs <= 0 {
		return false
	}
	p.herbs--
	return true
}

// Reset restores the player after a battle: full HP and MP, no status and an
// empty herb pouch.
//
// Postcondition: CurrentHP() == MaxHP(); CurrentMP() == MaxMP(); Herbs() == 0.
func (p *Player) Reset() {
	p.currentHP = p.Stats.MaxHP
	p.currentMP = p.Stats.MaxMP
	p.herbs = 0
	p.Status.Reset()
}
