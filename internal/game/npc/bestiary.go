package npc

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/cory-johannsen/fightsim/internal/game/dice"
)

// Bestiary indexes enemy templates by ID and spawns live enemies from them.
// Lookups are read-only after construction and safe for concurrent use.
type Bestiary struct {
	templates []*Template
	byID      map[string]*Template
	counter   atomic.Uint64
}

// NewBestiary indexes templates, keeping their order.
//
// Precondition: every template must be non-nil.
// Postcondition: Returns an error on an empty list or a duplicate ID.
func NewBestiary(templates []*Template) (*Bestiary, error) {
	if len(templates) == 0 {
		return nil, fmt.Errorf("npc.NewBestiary: at least one template is required")
	}
	b := &Bestiary{byID: make(map[string]*Template, len(templates))}
	for _, t := range templates {
		if _, exists := b.byID[t.ID]; exists {
			return nil, fmt.Errorf("npc.NewBestiary: duplicate template id %q", t.ID)
		}
		b.byID[t.ID] = t
		b.templates = append(b.templates, t)
	}
	return b, nil
}

// Get returns the template with the given ID.
//
// Postcondition: Returns (tmpl, true) if found, or (nil, false) otherwise.
func (b *Bestiary) Get(id string) (*Template, bool) {
	t, ok := b.byID[id]
	return t, ok
}

// ByName returns the template whose Name matches name case-insensitively,
// falling back to the first template whose Name has name as a prefix.
// Returns nil if no match is found.
func (b *Bestiary) ByName(name string) *Template {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return nil
	}
	for _, t := range b.templates {
		if strings.ToLower(t.Name) == lower {
			return t
		}
	}
	for _, t := range b.templates {
		if strings.HasPrefix(strings.ToLower(t.Name), lower) {
			return t
		}
	}
	return nil
}

// All returns a snapshot of the templates in bestiary order.
//
// Postcondition: Returns a non-nil slice; mutating it does not affect the bestiary.
func (b *Bestiary) All() []*Template {
	out := make([]*Template, len(b.templates))
	copy(out, b.templates)
	return out
}

// Spawn creates a live enemy from the template with the given ID or name.
//
// Precondition: rng must be non-nil.
// Postcondition: Returns a new Enemy with a unique instance ID, or an error if
// no template matches.
func (b *Bestiary) Spawn(ref string, rng dice.Randomizer) (*Enemy, error) {
	tmpl, ok := b.Get(ref)
	if !ok {
		tmpl = b.ByName(ref)
	}
	if tmpl == nil {
		return nil, fmt.Errorf("npc.Bestiary.Spawn: no enemy matches %q", ref)
	}
	return b.spawn(tmpl, rng), nil
}

// SpawnRandom creates a live enemy from a template chosen uniformly at random.
//
// Precondition: rng must be non-nil.
func (b *Bestiary) SpawnRandom(rng dice.Randomizer) *Enemy {
	tmpl := b.templates[rng.Between(0, len(b.templates)-1)]
	return b.spawn(tmpl, rng)
}

func (b *Bestiary) spawn(tmpl *Template, rng dice.Randomizer) *Enemy {
	e := Spawn(tmpl, rng)
	e.ID = fmt.Sprintf("%s-%d", tmpl.ID, b.counter.Add(1))
	return e
}
