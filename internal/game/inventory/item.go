// Package inventory holds the equipment catalogue. Every piece of equipment
// contributes a flat numeric modifier; armor may additionally reduce enemy
// spell damage.
package inventory

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

// Kind constants for ItemDef.Kind.
const (
	KindWeapon = "weapon"
	KindArmor  = "armor"
	KindShield = "shield"
)

// validKinds is the set of valid ItemDef kinds.
var validKinds = map[string]bool{
	KindWeapon: true,
	KindArmor:  true,
	KindShield: true,
}

// ItemDef defines one piece of equipment loaded from YAML.
type ItemDef struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Kind        string `yaml:"kind"`
	// Modifier is added to attack power for weapons and to the defense sum for armor and shields.
	Modifier int `yaml:"modifier"`
	// ReducesHurt selects the reduced enemy Hurt/Hurtmore tables. Armor only.
	ReducesHurt bool `yaml:"reduces_hurt"`
	// ReducesFire selects the reduced enemy Fire/Strongfire tables. Armor only.
	ReducesFire bool `yaml:"reduces_fire"`
}

// Validate checks that the ItemDef satisfies its invariants.
//
// Precondition: d is non-nil.
// Postcondition: returns nil iff all fields are valid.
func (d *ItemDef) Validate() error {
	var errs []error
	if d.ID == "" {
		errs = append(errs, errors.New("ID must not be empty"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("Name must not be empty"))
	}
	if !validKinds[d.Kind] {
		errs = append(errs, fmt.Errorf("Kind must be one of weapon, armor, shield; got %q", d.Kind))
	}
	if d.Modifier < 0 {
		errs = append(errs, errors.New("Modifier must be >= 0"))
	}
	if d.Kind != KindArmor && (d.ReducesHurt || d.ReducesFire) {
		errs = append(errs, errors.New("only armor may reduce spell damage"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("item validation failed: %v", errs)
	}
	return nil
}

// LoadItems reads all *.yaml and *.yml files from dir, parses each as an
// ItemDef, validates it, and returns the collected slice.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns all valid ItemDefs or the first encountered error.
func LoadItems(dir string) ([]*ItemDef, error) {
	items, err := loadItemsFS(os.DirFS(dir), ".")
	if err != nil {
		return nil, fmt.Errorf("LoadItems: %q: %w", dir, err)
	}
	return items, nil
}

func loadItemsFS(fsys fs.FS, dir string) ([]*ItemDef, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory: %w", err)
	}

	var items []*ItemDef
	for _, entry := range entries {
		ext := path.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		p := path.Join(dir, entry.Name())
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("cannot read file %q: %w", p, err)
		}
		var d ItemDef
		if err := yaml.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("cannot parse file %q: %w", p, err)
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("invalid item in %q: %w", p, err)
		}
		items = append(items, &d)
	}
	return items, nil
}
