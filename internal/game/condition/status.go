package condition

// Set tracks every status currently applied to one combatant.
// It is not safe for concurrent use; the caller must serialise access.
type Set struct {
	Sleep Countdown
	Seal  Seal
}

// Asleep reports whether the sleep countdown is running.
func (s *Set) Asleep() bool {
	return s.Sleep.Active()
}

// Sealed reports whether the combatant's magic is sealed.
func (s *Set) Sealed() bool {
	return s.Seal.Active()
}

// Names returns the names of the active statuses in a stable order.
func (s *Set) Names() []string {
	var out []string
	if s.Asleep() {
		out = append(out, "asleep")
	}
	if s.Sealed() {
		out = append(out, "spellstopped")
	}
	return out
}

// Reset clears every status.
//
// Postcondition: Asleep() and Sealed() are false.
func (s *Set) Reset() {
	s.Sleep.Clear()
	s.Seal.Clear()
}
