package combat

import (
	"fmt"

	"github.com/cory-johannsen/fightsim/internal/game/dice"
)

// EnemyTurnInput carries the attributes an enemy action needs. The engine
// never sees the combatants themselves.
type EnemyTurnInput struct {
	EnemyStrength     int
	PlayerDefense     int
	EnemySpellstopped bool
	PlayerReducesHurt bool
	PlayerReducesFire bool
	EnemyMissingHP    int
}

func enemySealed(action EnemyAction) EnemyActionResult {
	return EnemyActionResult{Action: action, Reason: EnemySpellstopped}
}

// EnemyCastsHurt resolves Hurt or Hurtmore cast at the player. reduced selects
// the smaller table granted by the player's armor.
//
// Precondition: action is ActionHurt or ActionHurtmore.
func (e *Engine) EnemyCastsHurt(action EnemyAction, sealed, reduced bool) EnemyActionResult {
	var t TieredRange
	switch action {
	case ActionHurt:
		t = e.consts.EnemyHurt
	case ActionHurtmore:
		t = e.consts.EnemyHurtmore
	default:
		panic(fmt.Sprintf("combat.EnemyCastsHurt: %s is not a hurt action", action))
	}
	if sealed {
		return enemySealed(action)
	}
	return EnemyActionResult{Action: action, Success: true, Amount: e.draw(t.Pick(reduced))}
}

// EnemyCastsHeal resolves Heal or Healmore cast by the enemy on itself. The
// amount never exceeds missingHP.
//
// Precondition: action is ActionHeal or ActionHealmore.
func (e *Engine) EnemyCastsHeal(action EnemyAction, sealed bool, missingHP int) EnemyActionResult {
	var r Range
	switch action {
	case ActionHeal:
		r = e.consts.EnemyHeal
	case ActionHealmore:
		r = e.consts.EnemyHealmore
	default:
		panic(fmt.Sprintf("combat.EnemyCastsHeal: %s is not a heal action", action))
	}
	if sealed {
		return enemySealed(action)
	}
	return EnemyActionResult{Action: action, Success: true, Amount: min(e.draw(r), max(missingHP, 0))}
}

// EnemyBreathesFire resolves Fire or Strongfire. Breath is treated as magic and
// is blocked by a seal.
//
// Precondition: action is ActionFire or ActionStrongfire.
func (e *Engine) EnemyBreathesFire(action EnemyAction, sealed, reduced bool) EnemyActionResult {
	var t TieredRange
	switch action {
	case ActionFire:
		t = e.consts.EnemyFire
	case ActionStrongfire:
		t = e.consts.EnemyStrongfire
	default:
		panic(fmt.Sprintf("combat.EnemyBreathesFire: %s is not a breath action", action))
	}
	if sealed {
		return enemySealed(action)
	}
	return EnemyActionResult{Action: action, Success: true, Amount: e.draw(t.Pick(reduced))}
}

// EnemyCastsSleep resolves Sleep cast at the player. It always lands unless
// the enemy is sealed; Amount is the number of rounds to apply.
func (e *Engine) EnemyCastsSleep(sealed bool) EnemyActionResult {
	if sealed {
		return enemySealed(ActionSleep)
	}
	return EnemyActionResult{Action: ActionSleep, Success: true, Amount: e.consts.PlayerSleepRounds}
}

// EnemyCastsStopspell resolves Stopspell cast at the player.
func (e *Engine) EnemyCastsStopspell(sealed bool) EnemyActionResult {
	if sealed {
		return enemySealed(ActionStopspell)
	}
	if !dice.OneIn(e.rng, e.consts.EnemyStopspellOneIn) {
		return EnemyActionResult{Action: ActionStopspell, Reason: SpellFailed}
	}
	return EnemyActionResult{Action: ActionStopspell, Success: true}
}

// ResolveEnemyAction dispatches a selected pattern action to its handler.
//
// Precondition: action is a valid EnemyAction. An action without a handler
// means the pattern table is corrupt, and ResolveEnemyAction panics.
func (e *Engine) ResolveEnemyAction(action EnemyAction, in EnemyTurnInput) EnemyActionResult {
	switch action {
	case ActionAttack:
		res := e.ResolveEnemyAttack(in.EnemyStrength, in.PlayerDefense)
		return EnemyActionResult{Action: action, Success: true, Amount: res.EffectiveDamage()}
	case ActionHurt, ActionHurtmore:
		return e.EnemyCastsHurt(action, in.EnemySpellstopped, in.PlayerReducesHurt)
	case ActionHeal, ActionHealmore:
		return e.EnemyCastsHeal(action, in.EnemySpellstopped, in.EnemyMissingHP)
	case ActionFire, ActionStrongfire:
		return e.EnemyBreathesFire(action, in.EnemySpellstopped, in.PlayerReducesFire)
	case ActionSleep:
		return e.EnemyCastsSleep(in.EnemySpellstopped)
	case ActionStopspell:
		return e.EnemyCastsStopspell(in.EnemySpellstopped)
	default:
		panic(fmt.Sprintf("combat.ResolveEnemyAction: no handler for enemy action %d (%s)", int(action), action))
	}
}
