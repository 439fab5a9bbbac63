package combat

// Reason is the closed set of expected-outcome failure reasons. A failed spell
// or herb is normal gameplay and is reported through a Reason, never an error.
// The zero value ReasonNone accompanies every successful result.
type Reason int

const (
	ReasonNone Reason = iota
	NotEnoughMP
	PlayerSpellstopped
	HealedAtMaxHP
	EnemyResistedHurt
	EnemyAlreadyAsleep
	EnemyResistedSleep
	EnemyAlreadySpellstopped
	EnemyResistedSpellstop
	EnemySpellstopped
	// SpellFailed is an enemy spell that lost its own success roll (Stopspell).
	SpellFailed
	NoHerbs
	MaxHP
)

var reasonNames = map[Reason]string{
	ReasonNone:               "none",
	NotEnoughMP:              "not_enough_mp",
	PlayerSpellstopped:       "player_spellstopped",
	HealedAtMaxHP:            "healed_at_max_hp",
	EnemyResistedHurt:        "enemy_resisted_hurt",
	EnemyAlreadyAsleep:       "enemy_already_asleep",
	EnemyResistedSleep:       "enemy_resisted_sleep",
	EnemyAlreadySpellstopped: "enemy_already_spellstopped",
	EnemyResistedSpellstop:   "enemy_resisted_spellstop",
	EnemySpellstopped:        "enemy_spellstopped",
	SpellFailed:              "spell_failed",
	NoHerbs:                  "no_herbs",
	MaxHP:                    "max_hp",
}

// String returns the snake_case name of the reason.
func (r Reason) String() string {
	if s, ok := reasonNames[r]; ok {
		return s
	}
	return "unknown"
}

// AttackResult is the outcome of a single physical attack.
//
// Invariant: Hit == !(Dodge && !Crit). A critical hit always lands.
type AttackResult struct {
	Damage int
	Crit   bool
	Dodge  bool
	Hit    bool
}

// newAttackResult builds an AttackResult and derives Hit from crit and dodge.
func newAttackResult(damage int, crit, dodge bool) AttackResult {
	return AttackResult{
		Damage: damage,
		Crit:   crit,
		Dodge:  dodge,
		Hit:    !(dodge && !crit),
	}
}

// EffectiveDamage returns the damage that lands on the target: Damage on a hit, 0 otherwise.
func (r AttackResult) EffectiveDamage() int {
	if !r.Hit {
		return 0
	}
	return r.Damage
}

// SpellResult is the outcome of a player spell.
//
// Invariant: Success == (Reason == ReasonNone); Amount == 0 when !Success.
type SpellResult struct {
	Spell   Spell
	Success bool
	Amount  int
	Reason  Reason
}

func spellSuccess(s Spell, amount int) SpellResult {
	return SpellResult{Spell: s, Success: true, Amount: amount}
}

func spellFailure(s Spell, reason Reason) SpellResult {
	return SpellResult{Spell: s, Reason: reason}
}

// SpellFailure returns a failed SpellResult for s with the given reason.
// The battle controller uses it for the MP and seal checks that precede the engine.
func SpellFailure(s Spell, reason Reason) SpellResult {
	return spellFailure(s, reason)
}

// HerbResult is the outcome of eating a medicinal herb.
//
// Invariant: Success == (Reason == ReasonNone); Healing == 0 when !Success.
type HerbResult struct {
	Success bool
	Healing int
	Reason  Reason
}

// HerbFailure returns a failed HerbResult with the given reason.
func HerbFailure(reason Reason) HerbResult {
	return HerbResult{Reason: reason}
}

// EnemyActionResult is the outcome of one enemy action. Amount is damage for
// offensive actions, healing for Heal/Healmore, the sleep duration for Sleep
// and 0 for Stopspell.
//
// Invariant: Amount == 0 when !Success.
type EnemyActionResult struct {
	Action  EnemyAction
	Success bool
	Amount  int
	Reason  Reason
}
