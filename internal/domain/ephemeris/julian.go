package ephemeris

import (
	"fmt"
	"math"
	"time"
)

// Hours in a day, for the fractional-day part of a Julian Day.
const hoursPerDay = 24.0

// JulianDay converts an instant to a Julian Day number. The instant is
// normalized to UTC first; adapters expect UT-based Julian Days.
func JulianDay(t time.Time) float64 {
	t = t.UTC()
	y, m, d := t.Date()

	// Fliegel-Van Flandern Julian Day Number for the civil date, valid for
	// the whole Gregorian range. Integer division truncates toward zero,
	// which the algorithm relies on.
	a := (14 - int(m)) / 12
	yy := y + 4800 - a
	mm := int(m) + 12*a - 3
	jdn := d + (153*mm+2)/5 + 365*yy + yy/4 - yy/100 + yy/400 - 32045

	hour := float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
	return float64(jdn) - 0.5 + hour/hoursPerDay
}

// CheckDegrees validates an adapter-returned longitude. Real adapters bridge
// to C libraries and can surface NaN or wildly out-of-domain values on bad
// input; those must become explicit failures, not silently wrong charts.
func CheckDegrees(what string, degrees float64) error {
	if math.IsNaN(degrees) || math.IsInf(degrees, 0) {
		return fmt.Errorf("%w: %s is not finite", ErrAdapterFailure, what)
	}
	return nil
}
