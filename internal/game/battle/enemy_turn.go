package battle

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/fightsim/internal/game/ai"
	"github.com/cory-johannsen/fightsim/internal/game/combat"
	"github.com/cory-johannsen/fightsim/internal/game/condition"
)

// enemyTurn plays one enemy turn: the sleep tick, the flee check, action
// selection and resolution. A sleeping enemy forfeits the turn, including the
// turn on which it wakes.
func (b *Battle) enemyTurn(r *Report) {
	b.state = StateEnemyTurn
	b.round++
	log := b.logger.With(zap.Int("round", b.round))

	switch tick := b.enemy.Status.Sleep.Tick(b.engine.EnemyWakesUp); tick {
	case condition.Awake:
	case condition.Woke:
		log.Debug("enemy woke", zap.Stringer("tick", tick))
		r.add(Event{Type: EventEnemyWoke, Actor: ActorEnemy, Narrative: fmt.Sprintf("The %s wakes up.", b.enemy.Name)})
		return
	default:
		log.Debug("enemy asleep", zap.Stringer("tick", tick))
		r.add(Event{Type: EventEnemyAsleep, Actor: ActorEnemy, Narrative: fmt.Sprintf("The %s is asleep.", b.enemy.Name)})
		return
	}

	if b.engine.EnemyFlees(b.enemy.Strength, b.player.Strength) {
		log.Debug("enemy fled")
		r.add(Event{Type: EventEnemyFlee, Actor: ActorEnemy, Fled: true})
		b.conclude(r, EnemyFled)
		return
	}

	action := b.selector.Choose(b.enemy.Pattern, ai.BuildSituation(b.enemy, b.player))
	res := b.engine.ResolveEnemyAction(action, combat.EnemyTurnInput{
		EnemyStrength:     b.enemy.Strength,
		PlayerDefense:     b.player.Defense(),
		EnemySpellstopped: b.enemy.Sealed(),
		PlayerReducesHurt: b.player.ReducesHurt(),
		PlayerReducesFire: b.player.ReducesFire(),
		EnemyMissingHP:    b.enemy.MissingHP(),
	})
	b.applyEnemyAction(res)

	log.Debug("enemy acted",
		zap.Stringer("action", res.Action),
		zap.Bool("success", res.Success),
		zap.Int("amount", res.Amount),
		zap.Stringer("reason", res.Reason),
		zap.Int("player_hp", b.player.CurrentHP()),
	)
	r.add(Event{
		Type:      EventEnemyAction,
		Actor:     ActorEnemy,
		Narrative: enemyNarrative(res, b.enemy.Name),
		Enemy:     &res,
	})

	if b.player.IsDefeated() {
		b.conclude(r, Loss)
	}
}

// applyEnemyAction commits a resolved enemy action to the combatants.
func (b *Battle) applyEnemyAction(res combat.EnemyActionResult) {
	if !res.Success {
		return
	}
	switch res.Action {
	case combat.ActionAttack, combat.ActionHurt, combat.ActionHurtmore, combat.ActionFire, combat.ActionStrongfire:
		b.player.TakeDamage(res.Amount)
	case combat.ActionHeal, combat.ActionHealmore:
		b.enemy.Heal(res.Amount)
	case combat.ActionSleep:
		b.player.Status.Sleep.SetWithLimit(res.Amount, b.engine.Constants().PlayerSleepMaxRounds)
	case combat.ActionStopspell:
		b.player.Status.Seal.Apply()
	default:
		panic(fmt.Sprintf("battle: no effect for enemy action %s", res.Action))
	}
}
