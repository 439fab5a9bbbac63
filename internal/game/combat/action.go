package combat

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnemyAction identifies one entry kind in an enemy's behavior pattern.
// The zero value (ActionUnknown) is intentionally invalid.
type EnemyAction int

const (
	ActionUnknown EnemyAction = iota // zero value; intentionally invalid
	ActionAttack
	ActionHurt
	ActionHurtmore
	ActionHeal
	ActionHealmore
	ActionSleep
	ActionStopspell
	ActionFire
	ActionStrongfire
)

var enemyActionNames = map[EnemyAction]string{
	ActionAttack:     "attack",
	ActionHurt:       "hurt",
	ActionHurtmore:   "hurtmore",
	ActionHeal:       "heal",
	ActionHealmore:   "healmore",
	ActionSleep:      "sleep",
	ActionStopspell:  "stopspell",
	ActionFire:       "fire",
	ActionStrongfire: "strongfire",
}

// String returns the lowercase name of the action, or "unknown".
func (a EnemyAction) String() string {
	if s, ok := enemyActionNames[a]; ok {
		return s
	}
	return "unknown"
}

// Valid reports whether a names a known action kind.
func (a EnemyAction) Valid() bool {
	_, ok := enemyActionNames[a]
	return ok
}

// IsSpell reports whether the action is magic and therefore blocked by a seal.
// Fire breath counts as magic.
func (a EnemyAction) IsSpell() bool {
	return a.Valid() && a != ActionAttack
}

// ParseEnemyAction converts a case-insensitive action name into an EnemyAction.
//
// Postcondition: returns a valid EnemyAction or a non-nil error.
func ParseEnemyAction(s string) (EnemyAction, error) {
	want := strings.ToLower(strings.TrimSpace(s))
	for a, name := range enemyActionNames {
		if name == want {
			return a, nil
		}
	}
	return ActionUnknown, fmt.Errorf("unknown enemy action %q", s)
}

// UnmarshalYAML decodes an action from its name.
func (a *EnemyAction) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseEnemyAction(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*a = parsed
	return nil
}

// MarshalYAML encodes an action as its name.
func (a EnemyAction) MarshalYAML() (interface{}, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid enemy action %d", int(a))
	}
	return a.String(), nil
}
