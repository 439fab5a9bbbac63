package sim

import (
	"github.com/cory-johannsen/fightsim/internal/game/character"
	"github.com/cory-johannsen/fightsim/internal/game/combat"
)

// Move is an autopilot decision.
type Move int

const (
	MoveAttack Move = iota
	MoveHerb
	MoveHeal
)

// String returns the lowercase name of the move.
func (m Move) String() string {
	switch m {
	case MoveHerb:
		return "herb"
	case MoveHeal:
		return "heal"
	default:
		return "attack"
	}
}

// Decision is a move plus the spell to cast for MoveHeal.
type Decision struct {
	Move  Move
	Spell combat.Spell
}

// Decide picks the player's next action. Below a third of max HP the player
// eats a herb if one is left, otherwise casts the strongest healing spell it
// knows and can pay for. In every other case it attacks.
func Decide(p *character.Player) Decision {
	if p.CurrentHP()*3 >= p.MaxHP() {
		return Decision{Move: MoveAttack}
	}
	if p.Herbs() > 0 {
		return Decision{Move: MoveHerb}
	}
	if p.Sealed() {
		return Decision{Move: MoveAttack}
	}
	for _, s := range []combat.Spell{combat.SpellHealmore, combat.SpellHeal} {
		if p.Knows(s) && p.CurrentMP() >= s.MPCost() {
			return Decision{Move: MoveHeal, Spell: s}
		}
	}
	return Decision{Move: MoveAttack}
}
