package condition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/fightsim/internal/game/condition"
)

func never() bool {
	panic("wake roll must not be consulted")
}

func TestCountdown_ZeroValueIsAwake(t *testing.T) {
	var c condition.Countdown
	assert.False(t, c.Active())
	assert.Equal(t, condition.Awake, c.Tick(never))
	assert.False(t, condition.Awake.Forfeits())
}

func TestCountdown_FirstRoundHoldsWithoutRoll(t *testing.T) {
	var c condition.Countdown
	c.Set(2)
	assert.Equal(t, condition.Held, c.Tick(never))
	assert.Equal(t, 1, c.Remaining())
	assert.True(t, c.Active())
}

func TestCountdown_WakeRollFromLastRound(t *testing.T) {
	var c condition.Countdown
	c.Set(1)
	assert.Equal(t, condition.StillAsleep, c.Tick(func() bool { return false }))
	assert.Equal(t, 1, c.Remaining())
	assert.Equal(t, condition.Woke, c.Tick(func() bool { return true }))
	assert.False(t, c.Active())
	assert.True(t, condition.Woke.Forfeits())
}

func TestCountdown_SetPanicsOnNegative(t *testing.T) {
	var c condition.Countdown
	assert.Panics(t, func() { c.Set(-1) })
	assert.Panics(t, func() { c.SetWithLimit(1, -1) })
}

func TestCountdown_LimitForcesWake(t *testing.T) {
	var c condition.Countdown
	c.SetWithLimit(1, 6)
	rolls := 0
	fail := func() bool { rolls++; return false }
	for i := 1; i < 6; i++ {
		assert.Equal(t, condition.StillAsleep, c.Tick(fail), "tick %d", i)
		assert.Equal(t, i, c.Slept())
	}
	assert.Equal(t, condition.Woke, c.Tick(fail))
	assert.Equal(t, 6, rolls, "the wake roll is drawn on the forced tick too")
	assert.False(t, c.Active())
	assert.Equal(t, 0, c.Slept())
}

func TestCountdown_LimitOverridesHold(t *testing.T) {
	var c condition.Countdown
	c.SetWithLimit(5, 2)
	assert.Equal(t, condition.Held, c.Tick(never))
	assert.Equal(t, condition.Woke, c.Tick(never))
	assert.False(t, c.Active())
}

// TestCountdown_LimitBoundsTurnsAsleep verifies a limited countdown never runs
// more than limit ticks however the wake roll falls.
func TestCountdown_LimitBoundsTurnsAsleep(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 10).Draw(rt, "n")
		limit := rapid.IntRange(1, 10).Draw(rt, "limit")
		var c condition.Countdown
		c.SetWithLimit(n, limit)
		ticks := 0
		for c.Active() {
			ticks++
			c.Tick(func() bool { return rapid.Bool().Draw(rt, "wake") })
			if ticks > limit {
				rt.Fatalf("still asleep after %d ticks with limit %d", ticks, limit)
			}
		}
	})
}

// TestCountdown_HoldsExactlyUntilLastRound verifies a countdown of n holds n-1
// turns without consulting the wake roll.
func TestCountdown_HoldsExactlyUntilLastRound(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		n := rapid.IntRange(1, 20).Draw(rt, "n")
		var c condition.Countdown
		c.Set(n)
		for i := 0; i < n-1; i++ {
			assert.Equal(rt, condition.Held, c.Tick(never))
		}
		rolls := 0
		res := c.Tick(func() bool { rolls++; return true })
		assert.Equal(rt, condition.Woke, res)
		assert.Equal(rt, 1, rolls)
		assert.False(rt, c.Active())
	})
}

func TestSeal_StickyUntilCleared(t *testing.T) {
	var s condition.Seal
	assert.False(t, s.Active())
	s.Apply()
	s.Apply()
	assert.True(t, s.Active())
	s.Clear()
	assert.False(t, s.Active())
}

func TestSet_NamesAndReset(t *testing.T) {
	var s condition.Set
	assert.Empty(t, s.Names())
	s.Sleep.Set(2)
	s.Seal.Apply()
	assert.Equal(t, []string{"asleep", "spellstopped"}, s.Names())
	s.Reset()
	assert.False(t, s.Asleep())
	assert.False(t, s.Sealed())
}

func TestTickResult_String(t *testing.T) {
	assert.Equal(t, "still_asleep", condition.StillAsleep.String())
	assert.Equal(t, "tick_result(9)", condition.TickResult(9).String())
}
