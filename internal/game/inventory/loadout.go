package inventory

import "errors"

// Loadout is the equipment a player carries into battle: one weapon, one
// armor and one shield. A nil slot contributes nothing.
type Loadout struct {
	Weapon *ItemDef
	Armor  *ItemDef
	Shield *ItemDef
}

// NewLoadout resolves equipment IDs against reg. An empty ID leaves the slot empty.
//
// Precondition: reg must not be nil.
// Postcondition: returns an error naming every ID that reg does not know.
func NewLoadout(reg *Registry, weaponID, armorID, shieldID string) (Loadout, error) {
	var l Loadout
	var errs []error
	if weaponID != "" {
		if l.Weapon = reg.Weapon(weaponID); l.Weapon == nil {
			errs = append(errs, errors.New("unknown weapon "+weaponID))
		}
	}
	if armorID != "" {
		if l.Armor = reg.Armor(armorID); l.Armor == nil {
			errs = append(errs, errors.New("unknown armor "+armorID))
		}
	}
	if shieldID != "" {
		if l.Shield = reg.Shield(shieldID); l.Shield == nil {
			errs = append(errs, errors.New("unknown shield "+shieldID))
		}
	}
	if len(errs) > 0 {
		return Loadout{}, errors.Join(errs...)
	}
	return l, nil
}

func modifier(d *ItemDef) int {
	if d == nil {
		return 0
	}
	return d.Modifier
}

// WeaponModifier returns the weapon's attack modifier.
func (l Loadout) WeaponModifier() int {
	return modifier(l.Weapon)
}

// DefenseModifier returns the summed armor and shield modifiers.
func (l Loadout) DefenseModifier() int {
	return modifier(l.Armor) + modifier(l.Shield)
}

// ReducesHurt reports whether the armor reduces enemy Hurt damage.
func (l Loadout) ReducesHurt() bool {
	return l.Armor != nil && l.Armor.ReducesHurt
}

// ReducesFire reports whether the armor reduces enemy fire damage.
func (l Loadout) ReducesFire() bool {
	return l.Armor != nil && l.Armor.ReducesFire
}
