package model

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrUnknownSign      = errors.New("unknown zodiac sign")
	ErrUnknownPlanet    = errors.New("unknown planet")
	ErrUnknownNakshatra = errors.New("unknown nakshatra")
	ErrMissingPlanet    = errors.New("planet missing from chart")
	ErrDegreeOutOfRange = errors.New("degree out of range")
)
