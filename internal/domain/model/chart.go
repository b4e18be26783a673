package model

import (
	"fmt"
)

// HouseCount is the number of houses in a chart.
const HouseCount = 12

// HouseFrom returns the whole-sign house (1..12) a sign occupies counted
// from a reference sign. The reference sign itself is house 1.
func HouseFrom(reference, target ZodiacSign) int {
	return (int(target)-int(reference)+SignCount)%SignCount + 1
}

// PlanetPosition is a planet's place in a chart. House is derived from the
// sign offset to the ascendant when the chart is built; it is never set
// independently.
type PlanetPosition struct {
	Name       Planet     `json:"name"`
	Sign       ZodiacSign `json:"sign"`
	Degree     float64    `json:"degree"` // within sign, [0, 30)
	House      int        `json:"house"`  // 1..12, 0 in divisional charts
	Nakshatra  Nakshatra  `json:"nakshatra"`
	Pada       int        `json:"pada"` // 1..4
	Retrograde bool       `json:"retrograde"`
}

// AbsoluteDegree returns the position as an absolute zodiac longitude in
// [0, 360).
func (p PlanetPosition) AbsoluteDegree() float64 {
	return float64(p.Sign)*degreesPerSign + p.Degree
}

// Validate checks the position's numeric invariants.
func (p PlanetPosition) Validate() error {
	if !p.Name.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownPlanet, int(p.Name))
	}
	if !p.Sign.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownSign, int(p.Sign))
	}
	if p.Degree < 0 || p.Degree >= degreesPerSign {
		return fmt.Errorf("%w: %s at %.4f", ErrDegreeOutOfRange, p.Name, p.Degree)
	}
	return nil
}

// Ascendant is the rising degree of the chart (Lagna).
type Ascendant struct {
	Sign      ZodiacSign `json:"sign"`
	Degree    float64    `json:"degree"` // within sign, [0, 30)
	Nakshatra Nakshatra  `json:"nakshatra"`
	Pada      int        `json:"pada"`
}

// AbsoluteDegree returns the ascendant as an absolute zodiac longitude.
func (a Ascendant) AbsoluteDegree() float64 {
	return float64(a.Sign)*degreesPerSign + a.Degree
}

// KundaliChart is the core D1 (rashi) chart. It is immutable once built:
// Ketu always sits 180 degrees from Rahu and is always retrograde, and the
// houses map is the whole-sign progression from the ascendant sign.
type KundaliChart struct {
	Ascendant       Ascendant                  `json:"ascendant"`
	Planets         map[Planet]PlanetPosition  `json:"planets"`
	Houses          map[int]ZodiacSign         `json:"houses"`
	Ayanamsa        string                     `json:"ayanamsa"`
	AyanamsaDegrees float64                    `json:"ayanamsa_degrees"`
}

// Planet returns a planet's position or ErrMissingPlanet. Charts rebuilt
// from partial data may lack bodies; callers that tolerate absence should
// check with errors.Is.
func (c KundaliChart) Planet(p Planet) (PlanetPosition, error) {
	pos, ok := c.Planets[p]
	if !ok {
		return PlanetPosition{}, fmt.Errorf("%w: %s", ErrMissingPlanet, p)
	}
	return pos, nil
}

// ChartType tags a divisional (varga) chart, e.g. "D9".
type ChartType string

// Supported divisional chart tags.
const (
	ChartD9  ChartType = "D9"
	ChartD10 ChartType = "D10"
)

// DivisionalChart is a harmonic subdivision of the D1 chart. Houses are not
// carried; they are derived separately when needed.
type DivisionalChart struct {
	Type      ChartType                 `json:"chart_type"`
	Ascendant Ascendant                 `json:"ascendant"`
	Planets   map[Planet]PlanetPosition `json:"planets"`
}
