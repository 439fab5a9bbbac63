package dice

import "go.uber.org/zap"

// LoggedRandomizer wraps a Randomizer and logs every draw at debug level with
// the requested range and the value produced.
type LoggedRandomizer struct {
	inner  Randomizer
	logger *zap.Logger
}

// NewLoggedRandomizer creates a Randomizer that delegates to inner and logs each
// draw to logger.
//
// Precondition: inner and logger must be non-nil.
func NewLoggedRandomizer(inner Randomizer, logger *zap.Logger) *LoggedRandomizer {
	return &LoggedRandomizer{inner: inner, logger: logger}
}

// Between draws from the wrapped Randomizer and logs the result.
//
// Postcondition: result is identical to inner.Between(low, high).
func (r *LoggedRandomizer) Between(low, high int) int {
	v := r.inner.Between(low, high)
	r.logger.Debug("dice draw",
		zap.Int("low", low),
		zap.Int("high", high),
		zap.Int("value", v),
	)
	return v
}
