package condition

// Seal is the spell-seal status. Once applied it stays until Clear is called;
// it never expires on its own during a battle.
type Seal struct {
	active bool
}

// Apply seals the combatant's magic.
//
// Postcondition: Active() is true.
func (s *Seal) Apply() {
	s.active = true
}

// Active reports whether the combatant's magic is sealed.
func (s *Seal) Active() bool {
	return s.active
}

// Clear removes the seal.
func (s *Seal) Clear() {
	s.active = false
}
