// Package sim runs automated battles: it loads content, plays the player with
// a simple autopilot and tallies the outcomes.
package sim

import (
	"fmt"

	"github.com/cory-johannsen/fightsim/internal/config"
	"github.com/cory-johannsen/fightsim/internal/game/inventory"
	"github.com/cory-johannsen/fightsim/internal/game/npc"
)

// Content is the static game data a run draws from.
type Content struct {
	Bestiary *npc.Bestiary
	Registry *inventory.Registry
}

// LoadContent loads enemies and equipment, preferring the configured
// directories and falling back to the embedded data.
//
// Postcondition: Returns populated Content or a non-nil error.
func LoadContent(cfg config.ContentConfig) (Content, error) {
	var templates []*npc.Template
	var err error
	if cfg.EnemiesDir != "" {
		templates, err = npc.LoadTemplates(cfg.EnemiesDir)
	} else {
		templates, err = npc.DefaultTemplates()
	}
	if err != nil {
		return Content{}, fmt.Errorf("loading enemies: %w", err)
	}
	bestiary, err := npc.NewBestiary(templates)
	if err != nil {
		return Content{}, fmt.Errorf("building bestiary: %w", err)
	}

	var reg *inventory.Registry
	if cfg.EquipmentDir != "" {
		reg, err = inventory.LoadDirectory(cfg.EquipmentDir)
	} else {
		reg, err = inventory.DefaultRegistry()
	}
	if err != nil {
		return Content{}, fmt.Errorf("loading equipment: %w", err)
	}
	return Content{Bestiary: bestiary, Registry: reg}, nil
}
