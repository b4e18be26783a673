package divisional

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrUnsupportedChart = errors.New("unsupported divisional chart")
)
