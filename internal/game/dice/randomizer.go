package dice

import "fmt"

// Randomizer yields uniformly distributed integers in an inclusive range.
// It is the only randomness dependency of the combat engine.
type Randomizer interface {
	// Between returns a value in [low, high].
	//
	// Precondition: low <= high.
	Between(low, high int) int
}

// sourceRandomizer adapts a Source to the Randomizer interface.
type sourceRandomizer struct {
	src Source
}

// NewRandomizer returns a Randomizer drawing from src.
//
// Precondition: src must be non-nil.
func NewRandomizer(src Source) Randomizer {
	return &sourceRandomizer{src: src}
}

// Between returns low + Intn(high-low+1).
//
// Precondition: low <= high. Panics otherwise.
// Postcondition: low <= result <= high.
func (r *sourceRandomizer) Between(low, high int) int {
	if low > high {
		panic(fmt.Sprintf("dice: Between called with low %d > high %d", low, high))
	}
	return low + r.src.Intn(high-low+1)
}

// OneIn reports whether a 1-in-n roll succeeds. The roll succeeds when the
// draw from [1, n] equals n.
//
// Precondition: n >= 1.
func OneIn(r Randomizer, n int) bool {
	return r.Between(1, n) == n
}
