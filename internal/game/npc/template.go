// Package npc provides enemy template definitions and live enemy instances.
package npc

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/fightsim/internal/game/ai"
)

// HPRange is the inclusive hit point range an enemy's maximum HP is rolled from.
type HPRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Resistances holds the thresholds used by the resistance check against each
// player spell family.
type Resistances struct {
	Sleep     int `yaml:"sleep"`
	Stopspell int `yaml:"stopspell"`
	Hurt      int `yaml:"hurt"`
}

// Template defines a reusable enemy archetype loaded from YAML.
type Template struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Strength    int         `yaml:"strength"`
	Agility     int         `yaml:"agility"`
	HP          HPRange     `yaml:"hp"`
	Resist      Resistances `yaml:"resist"`
	// Dodge is compared against a 1-64 roll; at or below it the player's attack is dodged.
	Dodge int `yaml:"dodge"`
	// FleeTier indexes the flee modifier table (0 easiest to escape, 3 hardest).
	FleeTier int `yaml:"flee_tier"`
	// BlocksCrits prevents the player from landing critical hits.
	BlocksCrits bool       `yaml:"blocks_crits"`
	Pattern     ai.Pattern `yaml:"pattern"`
}

// MaxFleeTier is the highest valid flee tier.
const MaxFleeTier = 3

// Validate checks that the template satisfies basic invariants.
//
// Precondition: t must not be nil.
// Postcondition: Returns nil iff ID and Name are non-empty, stats and
// resistances are non-negative, 1 <= HP.Min <= HP.Max, 0 <= FleeTier <= 3 and
// the pattern is valid; returns an error on the first violation otherwise.
func (t *Template) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("npc template: id must not be empty")
	}
	if t.Name == "" {
		return fmt.Errorf("npc template %q: name must not be empty", t.ID)
	}
	if t.Strength < 0 || t.Agility < 0 {
		return fmt.Errorf("npc template %q: strength and agility must be >= 0", t.ID)
	}
	if t.HP.Min < 1 || t.HP.Min > t.HP.Max {
		return fmt.Errorf("npc template %q: hp range [%d, %d] is invalid", t.ID, t.HP.Min, t.HP.Max)
	}
	if t.Resist.Sleep < 0 || t.Resist.Stopspell < 0 || t.Resist.Hurt < 0 {
		return fmt.Errorf("npc template %q: resistances must be >= 0", t.ID)
	}
	if t.Dodge < 0 {
		return fmt.Errorf("npc template %q: dodge must be >= 0", t.ID)
	}
	if t.FleeTier < 0 || t.FleeTier > MaxFleeTier {
		return fmt.Errorf("npc template %q: flee_tier must be 0-%d, got %d", t.ID, MaxFleeTier, t.FleeTier)
	}
	if err := t.Pattern.Validate(); err != nil {
		return fmt.Errorf("npc template %q: %w", t.ID, err)
	}
	return nil
}

// LoadTemplateFromBytes parses a single enemy template from raw YAML bytes.
//
// Precondition: data must be valid YAML for a single Template.
// Postcondition: Returns a validated *Template, or an error.
func LoadTemplateFromBytes(data []byte) (*Template, error) {
	var tmpl Template
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, fmt.Errorf("parsing template YAML: %w", err)
	}
	if err := tmpl.Validate(); err != nil {
		return nil, err
	}
	return &tmpl, nil
}

// LoadTemplates reads all *.yaml files in dir and returns the parsed templates
// in file name order.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns all templates or an error on the first parse or validate
// failure; on error, the partial result is discarded.
func LoadTemplates(dir string) ([]*Template, error) {
	templates, err := loadTemplatesFS(os.DirFS(dir), ".")
	if err != nil {
		return nil, fmt.Errorf("reading npc dir %q: %w", dir, err)
	}
	return templates, nil
}

func loadTemplatesFS(fsys fs.FS, dir string) ([]*Template, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, err
	}

	var templates []*Template
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		p := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("reading %q: %w", p, err)
		}

		tmpl, err := LoadTemplateFromBytes(data)
		if err != nil {
			return nil, fmt.Errorf("loading %q: %w", p, err)
		}
		templates = append(templates, tmpl)
	}
	return templates, nil
}
