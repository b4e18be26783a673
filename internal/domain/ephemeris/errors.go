package ephemeris

import "errors"

// Sentinel error kinds for adapter failures. These allow errors.Is/As from callers.
var (
	ErrAdapterFailure = errors.New("ephemeris adapter failure")
)
