package dice

import "fmt"

// Scripted is a Randomizer that returns a fixed sequence of values, one per
// Between call, ignoring the requested range. It exists so battles can be
// replayed roll by roll.
//
// Scripted is not safe for concurrent use.
type Scripted struct {
	values []int
	next   int
}

// NewScripted returns a Scripted randomizer that yields values in order.
func NewScripted(values ...int) *Scripted {
	cp := make([]int, len(values))
	copy(cp, values)
	return &Scripted{values: cp}
}

// Between returns the next scripted value without clamping it to [low, high].
//
// Precondition: at least one scripted value remains. Panics otherwise, so an
// unexpected extra draw fails loudly.
func (s *Scripted) Between(low, high int) int {
	if s.next >= len(s.values) {
		panic(fmt.Sprintf("dice: scripted randomizer exhausted after %d draws (asked for [%d,%d])", len(s.values), low, high))
	}
	v := s.values[s.next]
	s.next++
	return v
}

// Remaining returns how many scripted values have not been drawn yet.
func (s *Scripted) Remaining() int {
	return len(s.values) - s.next
}

// Push appends more values to the end of the script.
func (s *Scripted) Push(values ...int) {
	s.values = append(s.values, values...)
}
