// Package approx provides a self-contained ephemeris adapter built on mean
// planetary motions. Longitudes are linear extrapolations from the J2000
// epoch, good to a few degrees over the surrounding centuries; swap in a
// full ephemeris adapter where arc-minute accuracy matters.
package approx

import (
	"fmt"
	"math"

	"github.com/okian/jyotish/internal/domain/ephemeris"
)

// J2000 is the reference epoch, 2000-01-01 12:00 TT.
const j2000 = 2451545.0

// Mean obliquity of the ecliptic at J2000, in degrees.
const obliquity = 23.4393

// Lahiri ayanamsa at J2000 and its daily precession rate in degrees.
const (
	ayanamsaJ2000 = 23.85675
	ayanamsaRate  = 50.29 / 3600 / 365.25
)

// meanMotion holds a body's mean longitude at J2000 and its mean daily
// motion, both tropical degrees.
type meanMotion struct {
	epochLongitude float64
	dailyRate      float64
}

// Mean elements. The node regresses, so its rate is negative; the other
// rates are mean geocentric motions and never go retrograde here.
var motions = map[ephemeris.Body]meanMotion{
	ephemeris.BodySun:      {280.4665, 0.98564736},
	ephemeris.BodyMoon:     {218.3165, 13.17639648},
	ephemeris.BodyMercury:  {252.2509, 4.09233445},
	ephemeris.BodyVenus:    {181.9798, 1.60213034},
	ephemeris.BodyMars:     {355.4330, 0.52403840},
	ephemeris.BodyJupiter:  {34.3515, 0.08308529},
	ephemeris.BodySaturn:   {50.0774, 0.03344414},
	ephemeris.BodyMeanNode: {125.0445, -0.05295378},
}

// Adapter is a pure-computation ephemeris source. The zero value is not
// usable; construct it with New.
type Adapter struct {
	ayanamsaOffset float64
}

// New returns an approximate ephemeris adapter.
func New(opts ...Option) *Adapter {
	a := &Adapter{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// LongitudeSpeed returns the mean tropical longitude and daily motion of a
// body at the given Julian day.
func (a *Adapter) LongitudeSpeed(julianDay float64, body ephemeris.Body) (float64, float64, error) {
	m, ok := motions[body]
	if !ok {
		return 0, 0, fmt.Errorf("%w: unknown body %d", ephemeris.ErrAdapterFailure, body)
	}
	days := julianDay - j2000
	lon := normalize(m.epochLongitude + m.dailyRate*days)
	return lon, m.dailyRate, nil
}

// Ascendant computes the tropical ascendant from local sidereal time using
// the standard rising-sign formula.
func (a *Adapter) Ascendant(julianDay, latitude, longitude float64) (float64, error) {
	if latitude <= -90 || latitude >= 90 {
		return 0, fmt.Errorf("%w: latitude %.4f has no rising point", ephemeris.ErrAdapterFailure, latitude)
	}

	days := julianDay - j2000
	// Greenwich mean sidereal time in degrees, plus the east longitude.
	lst := normalize(280.46061837 + 360.98564736629*days + longitude)

	ramc := lst * math.Pi / 180
	eps := obliquity * math.Pi / 180
	lat := latitude * math.Pi / 180

	y := -math.Cos(ramc)
	x := math.Sin(ramc)*math.Cos(eps) + math.Tan(lat)*math.Sin(eps)
	asc := math.Atan2(y, x)*180/math.Pi + 180

	return normalize(asc), nil
}

// Ayanamsa returns the Lahiri ayanamsa as a linear function of time.
func (a *Adapter) Ayanamsa(julianDay float64) (float64, error) {
	return ayanamsaJ2000 + ayanamsaRate*(julianDay-j2000) + a.ayanamsaOffset, nil
}

func normalize(degrees float64) float64 {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	return d
}
