package combat

import (
	"fmt"

	"github.com/cory-johannsen/fightsim/internal/game/dice"
)

// Engine resolves combat actions into outcome values. It holds the injected
// randomizer and the tuning constants and nothing else; applying an outcome to
// a combatant is the caller's job.
type Engine struct {
	rng    dice.Randomizer
	consts Constants
}

// NewEngine creates an Engine drawing from rng.
//
// Precondition: rng must not be nil.
// Postcondition: Returns a non-nil *Engine.
func NewEngine(rng dice.Randomizer, consts Constants) *Engine {
	if rng == nil {
		panic("combat.NewEngine: rng must not be nil")
	}
	return &Engine{rng: rng, consts: consts}
}

// Constants returns the tuning values the engine was built with.
func (e *Engine) Constants() Constants {
	return e.consts
}

// Randomizer returns the engine's randomness source so collaborators such as
// the behavior selector can share one draw sequence.
func (e *Engine) Randomizer() dice.Randomizer {
	return e.rng
}

func (e *Engine) draw(r Range) int {
	return e.rng.Between(r.Min, r.Max)
}

// ResolvePlayerAttack resolves one player melee attack.
//
// The draw order is crit, dodge, damage. When blocksCrits is set the crit roll
// is skipped entirely and consumes no randomness.
//
// Postcondition: result.Hit == !(result.Dodge && !result.Crit).
func (e *Engine) ResolvePlayerAttack(strength, weaponMod, enemyAgility, enemyDodge int, blocksCrits bool) AttackResult {
	crit := false
	if !blocksCrits {
		crit = e.rng.Between(1, e.consts.CritOneIn) == 1
	}
	dodge := e.rng.Between(1, e.consts.DodgeSides) <= enemyDodge

	attack := strength + weaponMod
	var r Range
	if crit {
		r = CritRange(attack)
	} else {
		r = NormalDamageRange(attack, enemyAgility)
	}
	return newAttackResult(e.draw(r), crit, dodge)
}

// ResolveEnemyAttack resolves one enemy melee attack. Enemies never crit and
// the player never dodges.
func (e *Engine) ResolveEnemyAttack(enemyStrength, playerDefense int) AttackResult {
	var r Range
	if playerDefense > enemyStrength {
		r = WeakDamageRange(enemyStrength)
	} else {
		r = NormalDamageRange(enemyStrength, playerDefense)
	}
	return newAttackResult(e.draw(r), false, false)
}

// Resists performs the shared resistance check: a draw on the resistance die
// that lands at or below resist blocks the effect.
func (e *Engine) Resists(resist int) bool {
	return e.rng.Between(1, e.consts.ResistSides) <= resist
}

// PlayerCastsHeal resolves Heal or Healmore. healCap is the caster's missing HP;
// a negative cap is treated as 0.
//
// Precondition: spell is SpellHeal or SpellHealmore.
// Postcondition: result.Amount <= max(healCap, 0).
func (e *Engine) PlayerCastsHeal(spell Spell, healCap int) SpellResult {
	var r Range
	switch spell {
	case SpellHeal:
		r = e.consts.Heal
	case SpellHealmore:
		r = e.consts.Healmore
	default:
		panic(fmt.Sprintf("combat.PlayerCastsHeal: %s is not a healing spell", spell))
	}
	healCap = max(healCap, 0)
	amount := min(e.draw(r), healCap)
	if amount <= 0 {
		return spellFailure(spell, HealedAtMaxHP)
	}
	return spellSuccess(spell, amount)
}

// PlayerCastsHurt resolves Hurt or Hurtmore against an enemy with the given
// hurt resistance. The resistance check comes first; a resisted spell draws no
// damage.
//
// Precondition: spell is SpellHurt or SpellHurtmore.
func (e *Engine) PlayerCastsHurt(spell Spell, enemyHurtResist int) SpellResult {
	var r Range
	switch spell {
	case SpellHurt:
		r = e.consts.Hurt
	case SpellHurtmore:
		r = e.consts.Hurtmore
	default:
		panic(fmt.Sprintf("combat.PlayerCastsHurt: %s is not a damage spell", spell))
	}
	if e.Resists(enemyHurtResist) {
		return spellFailure(spell, EnemyResistedHurt)
	}
	return spellSuccess(spell, e.draw(r))
}

// PlayerCastsSleep resolves Sleep. An enemy that is already asleep fails the
// spell before any roll. On success Amount is the number of rounds to apply.
func (e *Engine) PlayerCastsSleep(enemySleepCount, enemySleepResist int) SpellResult {
	if enemySleepCount > 0 {
		return spellFailure(SpellSleep, EnemyAlreadyAsleep)
	}
	if e.Resists(enemySleepResist) {
		return spellFailure(SpellSleep, EnemyResistedSleep)
	}
	return spellSuccess(SpellSleep, e.consts.EnemySleepRounds)
}

// PlayerCastsStopspell resolves Stopspell. An enemy that is already sealed
// fails the spell before any roll.
func (e *Engine) PlayerCastsStopspell(alreadyStopped bool, enemyStopspellResist int) SpellResult {
	if alreadyStopped {
		return spellFailure(SpellStopspell, EnemyAlreadySpellstopped)
	}
	if e.Resists(enemyStopspellResist) {
		return spellFailure(SpellStopspell, EnemyResistedSpellstop)
	}
	return spellSuccess(SpellStopspell, 0)
}

// ResolveHerbHealing resolves eating a herb. A player at full HP fails with
// MaxHP and no randomness is consumed.
//
// Postcondition: result.Healing <= maxHP - currentHP.
func (e *Engine) ResolveHerbHealing(currentHP, maxHP int) HerbResult {
	missing := maxHP - currentHP
	if missing <= 0 {
		return HerbFailure(MaxHP)
	}
	return HerbResult{Success: true, Healing: min(e.draw(e.consts.Herb), missing)}
}

// EnemyFlees reports whether a badly outmatched enemy runs away. The roll is
// only made when playerStrength exceeds twice enemyStrength.
func (e *Engine) EnemyFlees(enemyStrength, playerStrength int) bool {
	if playerStrength <= 2*enemyStrength {
		return false
	}
	return dice.OneIn(e.rng, e.consts.EnemyFleeOneIn)
}

// EnemyWakesUp rolls the enemy's chance to shake off sleep.
func (e *Engine) EnemyWakesUp() bool {
	return dice.OneIn(e.rng, e.consts.EnemyWakeOneIn)
}

// PlayerWakesUp rolls the player's chance to shake off sleep.
func (e *Engine) PlayerWakesUp() bool {
	return dice.OneIn(e.rng, e.consts.PlayerWakeOneIn)
}

// EnemySurprises makes the pre-battle initiative roll. The player rolls first.
// The enemy's roll is scaled by the surprise factor, and the enemy acts first
// only when the player's roll is strictly lower.
func (e *Engine) EnemySurprises(playerAgility, enemyAgility int) bool {
	playerRoll := float64(playerAgility * e.rng.Between(1, e.consts.SurpriseSides))
	enemyRoll := float64(enemyAgility*e.rng.Between(1, e.consts.SurpriseSides)) * e.consts.EnemySurpriseFactor
	return playerRoll < enemyRoll
}

// PlayerFlees resolves a player escape attempt against an enemy of the given
// flee tier. The player's chance must strictly exceed the enemy's block chance.
func (e *Engine) PlayerFlees(playerAgility, enemyAgility, fleeTier int) bool {
	flee := float64(playerAgility * e.rng.Between(0, e.consts.FleeSides-1))
	block := float64(enemyAgility*e.rng.Between(0, e.consts.FleeSides-1)) * e.consts.FleeModifier(fleeTier)
	return flee > block
}
