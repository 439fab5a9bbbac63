package combat

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSpell is returned by ParseSpell for names outside the catalogue.
var ErrUnknownSpell = errors.New("unknown spell")

// Spell identifies a player spell. The zero value is intentionally invalid.
type Spell int

const (
	SpellUnknown Spell = iota
	SpellHeal
	SpellHurt
	SpellSleep
	SpellStopspell
	SpellHealmore
	SpellHurtmore
)

// SpellDef holds the static properties of a player spell.
type SpellDef struct {
	Spell         Spell
	Name          string
	MPCost        int
	LevelRequired int
}

// spellBook is ordered by the level at which each spell is learned.
var spellBook = []SpellDef{
	{Spell: SpellHeal, Name: "Heal", MPCost: 4, LevelRequired: 3},
	{Spell: SpellHurt, Name: "Hurt", MPCost: 2, LevelRequired: 4},
	{Spell: SpellSleep, Name: "Sleep", MPCost: 2, LevelRequired: 7},
	{Spell: SpellStopspell, Name: "Stopspell", MPCost: 2, LevelRequired: 10},
	{Spell: SpellHealmore, Name: "Healmore", MPCost: 10, LevelRequired: 17},
	{Spell: SpellHurtmore, Name: "Hurtmore", MPCost: 5, LevelRequired: 19},
}

// Def returns the catalogue entry for s.
//
// Postcondition: returns (def, true) for every valid spell, (zero, false) otherwise.
func (s Spell) Def() (SpellDef, bool) {
	for _, d := range spellBook {
		if d.Spell == s {
			return d, true
		}
	}
	return SpellDef{}, false
}

// String returns the display name of the spell, or "unknown".
func (s Spell) String() string {
	if d, ok := s.Def(); ok {
		return d.Name
	}
	return "unknown"
}

// MPCost returns the MP the spell consumes; 0 for an invalid spell.
func (s Spell) MPCost() int {
	d, _ := s.Def()
	return d.MPCost
}

// ParseSpell converts a case-insensitive spell name into a Spell.
//
// Postcondition: returns a valid Spell, or an error wrapping ErrUnknownSpell.
func ParseSpell(name string) (Spell, error) {
	want := strings.TrimSpace(name)
	for _, d := range spellBook {
		if strings.EqualFold(d.Name, want) {
			return d.Spell, nil
		}
	}
	return SpellUnknown, fmt.Errorf("%w: %q", ErrUnknownSpell, name)
}

// SpellsForLevel returns the spells a player of the given level has learned,
// in the order they are learned.
func SpellsForLevel(level int) []Spell {
	var out []Spell
	for _, d := range spellBook {
		if level >= d.LevelRequired {
			out = append(out, d.Spell)
		}
	}
	return out
}
