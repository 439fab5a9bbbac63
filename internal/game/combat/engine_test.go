package combat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/fightsim/internal/game/combat"
	"github.com/cory-johannsen/fightsim/internal/game/dice"
)

// rapidRandomizer draws every value from rapid so properties explore the
// whole space of roll sequences.
type rapidRandomizer struct {
	t *rapid.T
}

func (r rapidRandomizer) Between(low, high int) int {
	return rapid.IntRange(low, high).Draw(r.t, "roll")
}

func scriptedEngine(values ...int) (*combat.Engine, *dice.Scripted) {
	s := dice.NewScripted(values...)
	return combat.NewEngine(s, combat.DefaultConstants()), s
}

func TestNewEngine_PanicsOnNilRandomizer(t *testing.T) {
	assert.Panics(t, func() { combat.NewEngine(nil, combat.DefaultConstants()) })
}

func TestResolvePlayerAttack_NormalHit(t *testing.T) {
	e, s := scriptedEngine(2, 10, 20)
	got := e.ResolvePlayerAttack(50, 10, 3, 1, false)
	assert.Equal(t, combat.AttackResult{Damage: 20, Crit: false, Dodge: false, Hit: true}, got)
	assert.Equal(t, 0, s.Remaining())
}

func TestResolvePlayerAttack_CritLandsThroughDodge(t *testing.T) {
	e, _ := scriptedEngine(1, 1, 10)
	got := e.ResolvePlayerAttack(50, 10, 3, 1, false)
	assert.True(t, got.Crit)
	assert.True(t, got.Dodge)
	assert.True(t, got.Hit)
	assert.Equal(t, 10, got.Damage)
}

func TestResolvePlayerAttack_DodgeWithoutCritMisses(t *testing.T) {
	e, _ := scriptedEngine(5, 1, 20)
	got := e.ResolvePlayerAttack(50, 10, 3, 1, false)
	assert.False(t, got.Hit)
	assert.Equal(t, 0, got.EffectiveDamage())
}

func TestResolvePlayerAttack_BlockedCritSkipsCritRoll(t *testing.T) {
	e, s := scriptedEngine(64, 15)
	got := e.ResolvePlayerAttack(50, 10, 3, 1, true)
	assert.False(t, got.Crit)
	assert.True(t, got.Hit)
	assert.Equal(t, 15, got.Damage)
	assert.Equal(t, 0, s.Remaining())
}

// TestResolvePlayerAttack_HitLaw verifies hit == !(dodge && !crit) for every roll sequence.
func TestResolvePlayerAttack_HitLaw(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		e := combat.NewEngine(rapidRandomizer{t: rt}, combat.DefaultConstants())
		str := rapid.IntRange(0, 200).Draw(rt, "strength")
		weapon := rapid.IntRange(0, 40).Draw(rt, "weapon")
		agi := rapid.IntRange(0, 255).Draw(rt, "agility")
		dodge := rapid.IntRange(0, 64).Draw(rt, "dodge")
		blocks := rapid.Bool().Draw(rt, "blocks")

		res := e.ResolvePlayerAttack(str, weapon, agi, dodge, blocks)
		assert.Equal(rt, !(res.Dodge && !res.Crit), res.Hit)
		assert.GreaterOrEqual(rt, res.Damage, 0)
		if blocks {
			assert.False(rt, res.Crit)
		}
		if res.Crit {
			assert.True(rt, combat.CritRange(str+weapon).Contains(res.Damage))
		} else {
			assert.True(rt, combat.NormalDamageRange(str+weapon, agi).Contains(res.Damage))
		}
	})
}

func TestResolveEnemyAttack_WeakRangeWhenDefenseExceedsStrength(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		e := combat.NewEngine(rapidRandomizer{t: rt}, combat.DefaultConstants())
		str := rapid.IntRange(0, 150).Draw(rt, "strength")
		def := rapid.IntRange(0, 150).Draw(rt, "defense")
		res := e.ResolveEnemyAttack(str, def)
		assert.False(rt, res.Crit)
		assert.False(rt, res.Dodge)
		assert.True(rt, res.Hit)
		if def > str {
			assert.True(rt, combat.WeakDamageRange(str).Contains(res.Damage))
		} else {
			assert.True(rt, combat.NormalDamageRange(str, def).Contains(res.Damage))
		}
	})
}

func TestResists_AtOrBelowThreshold(t *testing.T) {
	for roll := 1; roll <= 16; roll++ {
		e, _ := scriptedEngine(roll)
		assert.Equal(t, roll <= 7, e.Resists(7), "roll %d", roll)
	}
}

func TestPlayerCastsHeal_AtFullHPFails(t *testing.T) {
	e, _ := scriptedEngine(12)
	got := e.PlayerCastsHeal(combat.SpellHeal, 0)
	assert.Equal(t, combat.SpellResult{Spell: combat.SpellHeal, Success: false, Amount: 0, Reason: combat.HealedAtMaxHP}, got)
}

func TestPlayerCastsHeal_ClampsToMissingHP(t *testing.T) {
	e, _ := scriptedEngine(17)
	got := e.PlayerCastsHeal(combat.SpellHeal, 5)
	assert.True(t, got.Success)
	assert.Equal(t, 5, got.Amount)
}

func TestPlayerCastsHeal_NeverOverheals(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		e := combat.NewEngine(rapidRandomizer{t: rt}, combat.DefaultConstants())
		spell := rapid.SampledFrom([]combat.Spell{combat.SpellHeal, combat.SpellHealmore}).Draw(rt, "spell")
		healCap := rapid.IntRange(-5, 200).Draw(rt, "cap")
		got := e.PlayerCastsHeal(spell, healCap)
		assert.LessOrEqual(rt, got.Amount, max(healCap, 0))
		assert.Equal(rt, got.Success, got.Reason == combat.ReasonNone)
		if !got.Success {
			assert.Equal(rt, 0, got.Amount)
		}
	})
}

func TestPlayerCastsHeal_PanicsOnNonHealingSpell(t *testing.T) {
	e, _ := scriptedEngine(1)
	assert.Panics(t, func() { e.PlayerCastsHeal(combat.SpellHurt, 10) })
}

func TestPlayerCastsHurt_ResistedDrawsNoDamage(t *testing.T) {
	e, s := scriptedEngine(3)
	got := e.PlayerCastsHurt(combat.SpellHurt, 3)
	assert.Equal(t, combat.EnemyResistedHurt, got.Reason)
	assert.Equal(t, 0, got.Amount)
	assert.Equal(t, 0, s.Remaining())
}

func TestPlayerCastsHurt_Lands(t *testing.T) {
	e, _ := scriptedEngine(16, 60)
	got := e.PlayerCastsHurt(combat.SpellHurtmore, 15)
	assert.True(t, got.Success)
	assert.Equal(t, 60, got.Amount)
}

func TestPlayerCastsSleep_AlreadyAsleepConsumesNoRandomness(t *testing.T) {
	e, s := scriptedEngine()
	got := e.PlayerCastsSleep(1, 0)
	assert.Equal(t, combat.SpellResult{Spell: combat.SpellSleep, Reason: combat.EnemyAlreadyAsleep}, got)
	assert.Equal(t, 0, s.Remaining())
}

func TestPlayerCastsSleep_ResistedAndLanded(t *testing.T) {
	e, _ := scriptedEngine(2, 3)
	assert.Equal(t, combat.EnemyResistedSleep, e.PlayerCastsSleep(0, 2).Reason)
	got := e.PlayerCastsSleep(0, 2)
	assert.True(t, got.Success)
	assert.Equal(t, 2, got.Amount)
}

func TestPlayerCastsStopspell_Reasons(t *testing.T) {
	e, s := scriptedEngine(1, 16)
	assert.Equal(t, combat.EnemyAlreadySpellstopped, e.PlayerCastsStopspell(true, 15).Reason)
	assert.Equal(t, 2, s.Remaining())
	assert.Equal(t, combat.EnemyResistedSpellstop, e.PlayerCastsStopspell(false, 1).Reason)
	assert.True(t, e.PlayerCastsStopspell(false, 15).Success)
}

func TestResolveHerbHealing_AtMaxHPFailsWithoutRoll(t *testing.T) {
	e, s := scriptedEngine()
	got := e.ResolveHerbHealing(30, 30)
	assert.Equal(t, combat.HerbResult{Reason: combat.MaxHP}, got)
	assert.Equal(t, 0, s.Remaining())
}

func TestResolveHerbHealing_NeverOverheals(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		e := combat.NewEngine(rapidRandomizer{t: rt}, combat.DefaultConstants())
		maxHP := rapid.IntRange(1, 300).Draw(rt, "max")
		cur := rapid.IntRange(-10, maxHP).Draw(rt, "cur")
		got := e.ResolveHerbHealing(cur, maxHP)
		assert.LessOrEqual(rt, got.Healing, maxHP-cur)
		if got.Success {
			assert.Greater(rt, got.Healing, 0)
		}
	})
}

func TestEnemyFlees_OnlyOnTopFaceWhenOutmatched(t *testing.T) {
	for roll := 1; roll <= 4; roll++ {
		e, _ := scriptedEngine(roll)
		assert.Equal(t, roll == 4, e.EnemyFlees(40, 100), "roll %d", roll)
	}
}

func TestEnemyFlees_NoRollWhenNotOutmatched(t *testing.T) {
	e, s := scriptedEngine()
	assert.False(t, e.EnemyFlees(50, 100))
	assert.Equal(t, 0, s.Remaining())
}

func TestWakeRolls(t *testing.T) {
	e, _ := scriptedEngine(3, 2, 2, 1)
	assert.True(t, e.EnemyWakesUp())
	assert.False(t, e.EnemyWakesUp())
	assert.True(t, e.PlayerWakesUp())
	assert.False(t, e.PlayerWakesUp())
}

func TestEnemySurprises(t *testing.T) {
	// player 10*10 = 100 vs enemy 20*100*0.25 = 500
	e, _ := scriptedEngine(10, 100)
	assert.True(t, e.EnemySurprises(10, 20))

	// equal rolls: the player keeps the initiative
	e, _ = scriptedEngine(10, 20)
	assert.False(t, e.EnemySurprises(10, 20))
}

func TestPlayerFlees_StrictInequality(t *testing.T) {
	// tier 3 modifier is 1.0, so identical rolls and agilities tie
	e, _ := scriptedEngine(100, 100)
	assert.False(t, e.PlayerFlees(10, 10, 3))

	e, _ = scriptedEngine(101, 100)
	assert.True(t, e.PlayerFlees(10, 10, 3))
}

func TestPlayerFlees_TieNeverSucceeds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		agi := rapid.IntRange(0, 255).Draw(rt, "agility")
		roll := rapid.IntRange(0, 254).Draw(rt, "roll")
		e, _ := scriptedEngine(roll, roll)
		assert.False(rt, e.PlayerFlees(agi, agi, 3))
	})
}

func TestPlayerFlees_LowTierEasesEscape(t *testing.T) {
	// block 200*0.25 = 50 < 60
	e, _ := scriptedEngine(60, 200)
	assert.True(t, e.PlayerFlees(1, 1, 0))
}

func TestDefaultConstants_Validate(t *testing.T) {
	require.NoError(t, combat.DefaultConstants().Validate())
}

func TestConstants_ValidateCollectsViolations(t *testing.T) {
	c := combat.DefaultConstants()
	c.CritOneIn = 0
	c.EnemyHealThreshold = 0
	c.FleeModifiers = []float64{1}
	c.Heal = combat.Range{Min: 9, Max: 3}
	c.PlayerSleepMaxRounds = 0
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "crit_one_in")
	assert.Contains(t, err.Error(), "enemy_heal_threshold")
	assert.Contains(t, err.Error(), "flee_modifiers")
	assert.Contains(t, err.Error(), "heal range")
	assert.Contains(t, err.Error(), "player_sleep_max_rounds")
}

func TestConstants_FleeModifierClampsTier(t *testing.T) {
	c := combat.DefaultConstants()
	assert.Equal(t, 0.25, c.FleeModifier(-1))
	assert.Equal(t, 0.75, c.FleeModifier(2))
	assert.Equal(t, 1.0, c.FleeModifier(9))
}
