package rules

import "errors"

var (
	// ErrInvalidCondition is returned when a condition tree cannot be
	// parsed: unknown entity type, out-of-range house, or malformed JSON.
	ErrInvalidCondition = errors.New("invalid rule condition")
)
