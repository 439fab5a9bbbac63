package battle

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cory-johannsen/fightsim/internal/game/combat"
)

// Attack makes a melee attack on the enemy. Defeating the enemy wins the
// battle immediately and the enemy does not act.
//
// Precondition: State() == StatePlayerTurn.
// Postcondition: State() is StatePlayerTurn or StateResolved.
func (b *Battle) Attack() (Report, error) {
	if err := b.checkPlayerTurn(); err != nil {
		return Report{}, err
	}
	var r Report
	res := b.engine.ResolvePlayerAttack(
		b.player.Strength,
		b.player.Loadout.WeaponModifier(),
		b.enemy.Agility,
		b.enemy.Dodge,
		b.enemy.BlocksCrits,
	)
	b.enemy.TakeDamage(res.EffectiveDamage())
	b.logger.Debug("player attacked",
		zap.Int("damage", res.Damage),
		zap.Bool("crit", res.Crit),
		zap.Bool("dodge", res.Dodge),
		zap.Int("enemy_hp", b.enemy.CurrentHP()),
	)
	r.add(Event{Type: EventPlayerAttack, Actor: ActorPlayer, Narrative: attackNarrative(res, b.enemy.Name), Attack: &res})

	if b.enemy.IsDefeated() {
		b.conclude(&r, Win)
		return b.finish(r), nil
	}
	b.passTurn(&r)
	return b.finish(r), nil
}

// UseHerb eats one medicinal herb. With no herbs the attempt is reported and
// the player keeps the turn.
//
// Precondition: State() == StatePlayerTurn.
func (b *Battle) UseHerb() (Report, error) {
	if err := b.checkPlayerTurn(); err != nil {
		return Report{}, err
	}
	var r Report
	if !b.player.TakeHerb() {
		res := combat.HerbFailure(combat.NoHerbs)
		r.add(Event{Type: EventPlayerHerb, Actor: ActorPlayer, Narrative: herbNarrative(res), Herb: &res})
		return b.finish(r), nil
	}
	res := b.engine.ResolveHerbHealing(b.player.CurrentHP(), b.player.MaxHP())
	b.player.Heal(res.Healing)
	b.logger.Debug("player ate herb",
		zap.Int("healing", res.Healing),
		zap.Int("herbs_left", b.player.Herbs()),
	)
	r.add(Event{Type: EventPlayerHerb, Actor: ActorPlayer, Narrative: herbNarrative(res), Herb: &res})
	b.passTurn(&r)
	return b.finish(r), nil
}

// CastSpellByName parses name and casts the spell it names.
func (b *Battle) CastSpellByName(name string) (Report, error) {
	if err := b.checkPlayerTurn(); err != nil {
		return Report{}, err
	}
	spell, err := combat.ParseSpell(name)
	if err != nil {
		return Report{}, err
	}
	return b.CastSpell(spell)
}

// CastSpell casts spell. The MP cost is paid before the seal is checked, so a
// sealed caster loses the MP. Without enough MP nothing is deducted but the
// turn still passes. An unknown or unlearned spell is an error and the player
// keeps the turn.
//
// Precondition: State() == StatePlayerTurn.
func (b *Battle) CastSpell(spell combat.Spell) (Report, error) {
	if err := b.checkPlayerTurn(); err != nil {
		return Report{}, err
	}
	if _, ok := spell.Def(); !ok {
		return Report{}, fmt.Errorf("casting spell %d: %w", int(spell), combat.ErrUnknownSpell)
	}
	if !b.player.Knows(spell) {
		return Report{}, fmt.Errorf("casting %s: %w", spell, ErrSpellNotLearned)
	}

	var r Report
	var res combat.SpellResult
	switch {
	case !b.player.SpendMP(spell.MPCost()):
		res = combat.SpellFailure(spell, combat.NotEnoughMP)
	case b.player.Sealed():
		res = combat.SpellFailure(spell, combat.PlayerSpellstopped)
	default:
		res = b.resolveSpell(spell)
	}

	b.logger.Debug("player cast spell",
		zap.Stringer("spell", spell),
		zap.Bool("success", res.Success),
		zap.Int("amount", res.Amount),
		zap.Stringer("reason", res.Reason),
		zap.Int("mp_left", b.player.CurrentMP()),
	)
	r.add(Event{Type: EventPlayerSpell, Actor: ActorPlayer, Narrative: spellNarrative(res, b.enemy.Name), Spell: &res})

	if b.enemy.IsDefeated() {
		b.conclude(&r, Win)
		return b.finish(r), nil
	}
	b.passTurn(&r)
	return b.finish(r), nil
}

// resolveSpell rolls a paid, unsealed spell and applies its effect.
func (b *Battle) resolveSpell(spell combat.Spell) combat.SpellResult {
	switch spell {
	case combat.SpellHeal, combat.SpellHealmore:
		res := b.engine.PlayerCastsHeal(spell, b.player.MissingHP())
		b.player.Heal(res.Amount)
		return res
	case combat.SpellHurt, combat.SpellHurtmore:
		res := b.engine.PlayerCastsHurt(spell, b.enemy.Resist.Hurt)
		b.enemy.TakeDamage(res.Amount)
		return res
	case combat.SpellSleep:
		res := b.engine.PlayerCastsSleep(b.enemy.Status.Sleep.Remaining(), b.enemy.Resist.Sleep)
		if res.Success {
			b.enemy.Status.Sleep.Set(res.Amount)
		}
		return res
	case combat.SpellStopspell:
		res := b.engine.PlayerCastsStopspell(b.enemy.Sealed(), b.enemy.Resist.Stopspell)
		if res.Success {
			b.enemy.Status.Seal.Apply()
		}
		return res
	default:
		panic(fmt.Sprintf("battle: no handler for spell %s", spell))
	}
}

// Flee tries to run from the enemy. On failure the enemy takes its turn.
//
// Precondition: State() == StatePlayerTurn.
func (b *Battle) Flee() (Report, error) {
	if err := b.checkPlayerTurn(); err != nil {
		return Report{}, err
	}
	var r Report
	fled := b.engine.PlayerFlees(b.player.Agility, b.enemy.Agility, b.enemy.FleeTier)
	b.logger.Debug("player tried to flee", zap.Bool("fled", fled))
	if fled {
		r.add(Event{Type: EventPlayerFlee, Actor: ActorPlayer, Narrative: "You run away!", Fled: true})
		b.conclude(&r, PlayerFled)
		return b.finish(r), nil
	}
	r.add(Event{
		Type:      EventPlayerFlee,
		Actor:     ActorPlayer,
		Narrative: fmt.Sprintf("You try to run, but the %s blocks your way!", b.enemy.Name),
	})
	b.passTurn(&r)
	return b.finish(r), nil
}
