// Package condition models the status effects a combatant can carry in
// battle: sleep, a countdown where zero means awake, and the sticky spell seal.
package condition

import "fmt"

// TickResult reports what a Countdown did on one turn.
type TickResult int

const (
	// Awake means the countdown was not running; the combatant acts normally.
	Awake TickResult = iota
	// Held means the first round of the countdown elapsed without a wake roll.
	Held
	// Woke means the wake roll succeeded and the countdown was cleared.
	Woke
	// StillAsleep means the wake roll failed.
	StillAsleep
)

// String returns the lowercase name of the result.
func (r TickResult) String() string {
	switch r {
	case Awake:
		return "awake"
	case Held:
		return "held"
	case Woke:
		return "woke"
	case StillAsleep:
		return "still_asleep"
	default:
		return fmt.Sprintf("tick_result(%d)", int(r))
	}
}

// Forfeits reports whether the combatant loses its action for this turn.
// Only a countdown that was never running lets the combatant act; a combatant
// that just woke still forfeits the turn it woke on.
func (r TickResult) Forfeits() bool {
	return r != Awake
}

// Countdown is a status counter where 0 means inactive and a positive value
// means active with that many guaranteed rounds left. It is the single
// representation of sleep for both the player and the enemy.
//
// The zero value is an inactive countdown ready to use.
type Countdown struct {
	remaining int
	slept     int
	limit     int
}

// Set starts the countdown with n rounds and no forced wake.
//
// Precondition: n >= 0.
// Postcondition: Remaining() == n.
func (c *Countdown) Set(n int) {
	c.SetWithLimit(n, 0)
}

// SetWithLimit starts the countdown with n rounds and forces a wake on the
// limit-th tick, whatever the wake roll says. A limit of 0 never forces one.
//
// Precondition: n >= 0 and limit >= 0.
// Postcondition: Remaining() == n and Slept() == 0.
func (c *Countdown) SetWithLimit(n, limit int) {
	if n < 0 || limit < 0 {
		panic(fmt.Sprintf("condition.Countdown.SetWithLimit: negative rounds %d or limit %d", n, limit))
	}
	c.remaining = n
	c.slept = 0
	c.limit = limit
}

// Slept returns how many ticks the current countdown has run.
func (c *Countdown) Slept() int {
	return c.slept
}

// Active reports whether the countdown is running.
func (c *Countdown) Active() bool {
	return c.remaining > 0
}

// Remaining returns the rounds left on the countdown.
func (c *Countdown) Remaining() int {
	return c.remaining
}

// Clear stops the countdown.
//
// Postcondition: Active() is false.
func (c *Countdown) Clear() {
	*c = Countdown{}
}

// Tick advances the countdown by one turn.
//
// While more than one round remains the countdown decrements and holds with no
// roll. From the last round on, wake is consulted: success clears the
// countdown and a failure leaves it unchanged. wake is never called when the
// countdown is inactive or holding. Once a limited countdown reaches its
// limit the tick wakes regardless; the wake roll is still drawn if the last
// round was reached.
//
// Precondition: wake must not be nil when Remaining() == 1.
func (c *Countdown) Tick(wake func() bool) TickResult {
	if c.remaining == 0 {
		return Awake
	}
	c.slept++
	forced := c.limit > 0 && c.slept >= c.limit
	if c.remaining > 1 && !forced {
		c.remaining--
		return Held
	}
	rolled := c.remaining == 1 && wake()
	if rolled || forced {
		c.Clear()
		return Woke
	}
	return StillAsleep
}
