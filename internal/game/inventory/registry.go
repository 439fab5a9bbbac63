package inventory

import (
	"embed"
	"fmt"
	"sort"
)

//go:embed catalogue/*.yaml
var catalogueFS embed.FS

// Registry holds all loaded equipment definitions indexed by kind and ID.
type Registry struct {
	byKind map[string]map[string]*ItemDef
}

// NewRegistry returns an empty Registry.
//
// Postcondition: all internal maps are initialised.
func NewRegistry() *Registry {
	r := &Registry{byKind: make(map[string]map[string]*ItemDef, len(validKinds))}
	for k := range validKinds {
		r.byKind[k] = make(map[string]*ItemDef)
	}
	return r
}

// Register adds d to the registry under its kind.
//
// Precondition:  d must not be nil and must satisfy d.Validate().
// Postcondition: the matching lookup returns d; returns error if d.ID is
// already registered for that kind.
func (r *Registry) Register(d *ItemDef) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("inventory: Registry.Register: %w", err)
	}
	if _, exists := r.byKind[d.Kind][d.ID]; exists {
		return fmt.Errorf("inventory: Registry.Register: %s ID %q already registered", d.Kind, d.ID)
	}
	r.byKind[d.Kind][d.ID] = d
	return nil
}

// Weapon returns the weapon with the given id, or nil if not found.
func (r *Registry) Weapon(id string) *ItemDef {
	return r.byKind[KindWeapon][id]
}

// Armor returns the armor with the given id, or nil if not found.
func (r *Registry) Armor(id string) *ItemDef {
	return r.byKind[KindArmor][id]
}

// Shield returns the shield with the given id, or nil if not found.
func (r *Registry) Shield(id string) *ItemDef {
	return r.byKind[KindShield][id]
}

// All returns every registered item of kind, ordered by modifier then ID.
//
// Postcondition: len(result) == number of registered items of that kind.
func (r *Registry) All(kind string) []*ItemDef {
	out := make([]*ItemDef, 0, len(r.byKind[kind]))
	for _, d := range r.byKind[kind] {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Modifier != out[j].Modifier {
			return out[i].Modifier < out[j].Modifier
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// LoadDirectory loads every item file in dir into a new Registry.
//
// Precondition: dir is a readable directory path.
// Postcondition: returns a populated Registry, or an error on any invalid or duplicate item.
func LoadDirectory(dir string) (*Registry, error) {
	items, err := LoadItems(dir)
	if err != nil {
		return nil, err
	}
	return registryFrom(items)
}

// DefaultRegistry returns a Registry holding the built-in equipment catalogue.
func DefaultRegistry() (*Registry, error) {
	items, err := loadItemsFS(catalogueFS, "catalogue")
	if err != nil {
		return nil, fmt.Errorf("loading embedded catalogue: %w", err)
	}
	return registryFrom(items)
}

func registryFrom(items []*ItemDef) (*Registry, error) {
	r := NewRegistry()
	for _, d := range items {
		if err := r.Register(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}
