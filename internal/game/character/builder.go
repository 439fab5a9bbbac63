package character

import (
	"errors"
	"fmt"

	"github.com/cory-johannsen/fightsim/internal/game/combat"
	"github.com/cory-johannsen/fightsim/internal/game/inventory"
)

// Equipment names the catalogue IDs a player is built with. Empty IDs leave
// the slot empty.
type Equipment struct {
	Weapon string
	Armor  string
	Shield string
	Herbs  int
}

// Builder assembles players against an equipment catalogue.
type Builder struct {
	reg *inventory.Registry
}

// NewBuilder returns a Builder resolving equipment against reg.
//
// Precondition: reg must not be nil.
func NewBuilder(reg *inventory.Registry) *Builder {
	if reg == nil {
		panic("character.NewBuilder: reg must not be nil")
	}
	return &Builder{reg: reg}
}

// Build constructs a Player at full HP and MP with the spells its level has learned.
//
// Precondition: 1 <= stats.Level <= MaxLevel; stats.MaxHP >= 1; strength, agility and MaxMP >= 0;
// 0 <= gear.Herbs <= MaxHerbs; every non-empty equipment ID is in the catalogue.
// Postcondition: Returns a ready Player, or a non-nil error.
func (b *Builder) Build(stats Stats, gear Equipment) (*Player, error) {
	if stats.Level < 1 || stats.Level > MaxLevel {
		return nil, fmt.Errorf("level must be 1-%d, got %d", MaxLevel, stats.Level)
	}
	if stats.MaxHP < 1 {
		return nil, fmt.Errorf("max hp must be >= 1, got %d", stats.MaxHP)
	}
	if stats.Strength < 0 || stats.Agility < 0 || stats.MaxMP < 0 {
		return nil, errors.New("strength, agility and max mp must be >= 0")
	}
	if gear.Herbs < 0 || gear.Herbs > MaxHerbs {
		return nil, fmt.Errorf("herbs must be 0-%d, got %d", MaxHerbs, gear.Herbs)
	}
	loadout, err := inventory.NewLoadout(b.reg, gear.Weapon, gear.Armor, gear.Shield)
	if err != nil {
		return nil, fmt.Errorf("resolving equipment: %w", err)
	}

	p := &Player{
		Stats:   stats,
		Loadout: loadout,
		Spells:  combat.SpellsForLevel(stats.Level),
	}
	p.Reset()
	p.AddHerbs(gear.Herbs)
	return p, nil
}
