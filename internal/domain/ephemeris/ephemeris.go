// Package ephemeris defines the contract for the tropical ephemeris source.
//
// The core never computes planetary astronomy itself: a production deployment
// injects an Adapter backed by a real ephemeris (Swiss Ephemeris, VSOP), and
// everything downstream treats its output as already-resolved input. All
// adapter longitudes are TROPICAL; the sidereal correction (ayanamsa
// subtraction) is applied by the chart and transit builders, never here.
package ephemeris

// Adapter is the ephemeris source contract.
type Adapter interface {
	// LongitudeSpeed returns a body's tropical ecliptic longitude in degrees
	// and its speed in degrees per day (negative while retrograde). Ketu is
	// never requested; the core derives it from Rahu.
	LongitudeSpeed(julianDay float64, body Body) (degrees, degreesPerDay float64, err error)

	// Ascendant returns the tropical ascendant longitude in degrees for the
	// given instant and geographic position.
	Ascendant(julianDay, latitude, longitude float64) (degrees float64, err error)

	// Ayanamsa returns the precession correction in degrees for the instant.
	Ayanamsa(julianDay float64) (degrees float64, err error)
}

// Body identifies a body the adapter can locate. Rahu is requested as the
// mean lunar node, the standard choice in Vedic practice.
type Body int

// Bodies in adapter request order.
const (
	BodySun Body = iota
	BodyMoon
	BodyMars
	BodyMercury
	BodyJupiter
	BodyVenus
	BodySaturn
	BodyMeanNode
)

var bodyNames = [...]string{
	"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn", "MeanNode",
}

// String returns the body name.
func (b Body) String() string {
	if b < 0 || int(b) >= len(bodyNames) {
		return "Body(?)"
	}
	return bodyNames[b]
}
