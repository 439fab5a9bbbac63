package combat

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// TieredRange is an enemy damage table with a reduced branch used when the
// player's armor grants the matching reduction.
type TieredRange struct {
	Normal  Range
	Reduced Range
}

// Pick returns Reduced when reduced is true, Normal otherwise.
func (t TieredRange) Pick(reduced bool) Range {
	if reduced {
		return t.Reduced
	}
	return t.Normal
}

// Constants holds every tuning value the Engine consults. The Engine holds no
// other state.
type Constants struct {
	// Odds expressed as "1 in N".
	CritOneIn           int
	EnemyFleeOneIn      int
	EnemyWakeOneIn      int
	PlayerWakeOneIn     int
	EnemyStopspellOneIn int

	// Die sizes.
	DodgeSides    int
	ResistSides   int
	SurpriseSides int
	FleeSides     int

	EnemySleepRounds  int
	PlayerSleepRounds int

	// PlayerSleepMaxRounds is the tick on which a sleeping player is woken
	// whatever the wake roll says.
	PlayerSleepMaxRounds int

	EnemyHealThreshold  float64
	EnemySurpriseFactor float64
	FleeModifiers       []float64

	Heal     Range
	Healmore Range
	Hurt     Range
	Hurtmore Range
	Herb     Range

	EnemyHeal       Range
	EnemyHealmore   Range
	EnemyHurt       TieredRange
	EnemyHurtmore   TieredRange
	EnemyFire       TieredRange
	EnemyStrongfire TieredRange
}

// DefaultConstants returns the classic tuning values.
func DefaultConstants() Constants {
	return Constants{
		CritOneIn:           32,
		EnemyFleeOneIn:      4,
		EnemyWakeOneIn:      3,
		PlayerWakeOneIn:     2,
		EnemyStopspellOneIn: 2,

		DodgeSides:    64,
		ResistSides:   16,
		SurpriseSides: 255,
		FleeSides:     255,

		EnemySleepRounds:     2,
		PlayerSleepRounds:    1,
		PlayerSleepMaxRounds: 6,

		EnemyHealThreshold:  0.25,
		EnemySurpriseFactor: 0.25,
		FleeModifiers:       []float64{0.25, 0.375, 0.75, 1.0},

		Heal:     Range{Min: 10, Max: 17},
		Healmore: Range{Min: 85, Max: 100},
		Hurt:     Range{Min: 5, Max: 12},
		Hurtmore: Range{Min: 58, Max: 65},
		Herb:     Range{Min: 23, Max: 30},

		EnemyHeal:     Range{Min: 20, Max: 27},
		EnemyHealmore: Range{Min: 85, Max: 100},
		EnemyHurt: TieredRange{
			Normal:  Range{Min: 3, Max: 10},
			Reduced: Range{Min: 2, Max: 6},
		},
		EnemyHurtmore: TieredRange{
			Normal:  Range{Min: 30, Max: 45},
			Reduced: Range{Min: 20, Max: 30},
		},
		EnemyFire: TieredRange{
			Normal:  Range{Min: 16, Max: 23},
			Reduced: Range{Min: 10, Max: 14},
		},
		EnemyStrongfire: TieredRange{
			Normal:  Range{Min: 65, Max: 72},
			Reduced: Range{Min: 42, Max: 48},
		},
	}
}

// Validate reports every violation in c.
//
// Postcondition: returns nil iff all odds and die sizes are positive, the
// threshold and factor lie in (0, 1], four flee modifiers are present and
// every range satisfies 0 <= Min <= Max.
func (c Constants) Validate() error {
	var errs []string
	positive := map[string]int{
		"crit_one_in":             c.CritOneIn,
		"enemy_flee_one_in":       c.EnemyFleeOneIn,
		"enemy_wake_one_in":       c.EnemyWakeOneIn,
		"player_wake_one_in":      c.PlayerWakeOneIn,
		"enemy_stopspell_one_in":  c.EnemyStopspellOneIn,
		"dodge_sides":             c.DodgeSides,
		"resist_sides":            c.ResistSides,
		"surprise_sides":          c.SurpriseSides,
		"flee_sides":              c.FleeSides,
		"enemy_sleep_rounds":      c.EnemySleepRounds,
		"player_sleep_rounds":     c.PlayerSleepRounds,
		"player_sleep_max_rounds": c.PlayerSleepMaxRounds,
	}
	for _, name := range slices.Sorted(maps.Keys(positive)) {
		if positive[name] < 1 {
			errs = append(errs, fmt.Sprintf("%s must be >= 1, got %d", name, positive[name]))
		}
	}
	if c.EnemyHealThreshold <= 0 || c.EnemyHealThreshold > 1 {
		errs = append(errs, fmt.Sprintf("enemy_heal_threshold must be in (0, 1], got %v", c.EnemyHealThreshold))
	}
	if c.EnemySurpriseFactor <= 0 || c.EnemySurpriseFactor > 1 {
		errs = append(errs, fmt.Sprintf("enemy_surprise_factor must be in (0, 1], got %v", c.EnemySurpriseFactor))
	}
	if len(c.FleeModifiers) != 4 {
		errs = append(errs, fmt.Sprintf("flee_modifiers must have 4 entries, got %d", len(c.FleeModifiers)))
	}
	for i, m := range c.FleeModifiers {
		if m < 0 {
			errs = append(errs, fmt.Sprintf("flee_modifiers[%d] must be >= 0, got %v", i, m))
		}
	}
	ranges := map[string]Range{
		"heal":                     c.Heal,
		"healmore":                 c.Healmore,
		"hurt":                     c.Hurt,
		"hurtmore":                 c.Hurtmore,
		"herb":                     c.Herb,
		"enemy_heal":               c.EnemyHeal,
		"enemy_healmore":           c.EnemyHealmore,
		"enemy_hurt.normal":        c.EnemyHurt.Normal,
		"enemy_hurt.reduced":       c.EnemyHurt.Reduced,
		"enemy_hurtmore.normal":    c.EnemyHurtmore.Normal,
		"enemy_hurtmore.reduced":   c.EnemyHurtmore.Reduced,
		"enemy_fire.normal":        c.EnemyFire.Normal,
		"enemy_fire.reduced":       c.EnemyFire.Reduced,
		"enemy_strongfire.normal":  c.EnemyStrongfire.Normal,
		"enemy_strongfire.reduced": c.EnemyStrongfire.Reduced,
	}
	for _, name := range slices.Sorted(maps.Keys(ranges)) {
		r := ranges[name]
		if r.Min < 0 || r.Min > r.Max {
			errs = append(errs, fmt.Sprintf("%s range [%d, %d] is invalid", name, r.Min, r.Max))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}

// FleeModifier returns the enemy block multiplier for the given flee tier,
// clamping out-of-table tiers to the nearest end.
func (c Constants) FleeModifier(tier int) float64 {
	if len(c.FleeModifiers) == 0 {
		return 1.0
	}
	if tier < 0 {
		tier = 0
	}
	if tier >= len(c.FleeModifiers) {
		tier = len(c.FleeModifiers) - 1
	}
	return c.FleeModifiers[tier]
}
