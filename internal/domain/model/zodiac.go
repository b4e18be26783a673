// Package model contains the immutable value objects shared across the
// astrology domain: zodiac signs, planets, nakshatras, charts and the
// derived structures built from them.
//
// Conventions:
// - Enumerations are small integer types indexing fixed const tables, so
//   lookups never scan or compare strings.
// - All values marshal to/from JSON as their canonical names.
// - Nothing in this package mutates after construction.
package model

import (
	"encoding/json"
	"fmt"
)

// ZodiacSign identifies one of the 12 rashis, ordered Aries..Pisces.
type ZodiacSign int

// The 12 signs in zodiacal order. Aries is 0 so that sign index arithmetic
// (degree/30, whole-sign houses) maps directly onto the enum value.
const (
	Aries ZodiacSign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// SignCount is the number of zodiac signs.
const SignCount = 12

var signNames = [SignCount]string{
	"Aries", "Taurus", "Gemini", "Cancer",
	"Leo", "Virgo", "Libra", "Scorpio",
	"Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// String returns the canonical sign name.
func (s ZodiacSign) String() string {
	if s < 0 || s >= SignCount {
		return fmt.Sprintf("ZodiacSign(%d)", int(s))
	}
	return signNames[s]
}

// Valid reports whether s is one of the 12 signs.
func (s ZodiacSign) Valid() bool {
	return s >= 0 && s < SignCount
}

// Lord returns the ruling planet of the sign. Rahu and Ketu rule no sign.
func (s ZodiacSign) Lord() Planet {
	return signLords[s]
}

var signLords = [SignCount]Planet{
	Aries:       Mars,
	Taurus:      Venus,
	Gemini:      Mercury,
	Cancer:      Moon,
	Leo:         Sun,
	Virgo:       Mercury,
	Libra:       Venus,
	Scorpio:     Mars,
	Sagittarius: Jupiter,
	Capricorn:   Saturn,
	Aquarius:    Saturn,
	Pisces:      Jupiter,
}

// ParseSign resolves a sign name to its enum value.
func ParseSign(name string) (ZodiacSign, error) {
	for i, n := range signNames {
		if n == name {
			return ZodiacSign(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSign, name)
}

// SignFromDegree returns the sign containing an absolute zodiac degree.
// The degree is normalized into [0, 360) first.
func SignFromDegree(degree float64) ZodiacSign {
	return ZodiacSign(int(NormalizeDegree(degree) / degreesPerSign))
}

// NormalizeDegree folds a longitude into [0, 360).
func NormalizeDegree(degree float64) float64 {
	d := degree - 360*float64(int(degree/360))
	if d < 0 {
		d += 360
	}
	return d
}

const degreesPerSign = 30.0

// MarshalJSON encodes the sign as its name.
func (s ZodiacSign) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a sign from its name.
func (s *ZodiacSign) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("zodiac sign: %w", err)
	}
	parsed, err := ParseSign(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Planet identifies one of the 9 grahas used in Vedic charts.
type Planet int

// The 9 planets. Order matches the traditional listing; this is NOT the
// Vimshottari dasha order, which lives in the dasha package.
const (
	Sun Planet = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu
	Ketu
)

// PlanetCount is the number of planets in a chart.
const PlanetCount = 9

var planetNames = [PlanetCount]string{
	"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn", "Rahu", "Ketu",
}

// AllPlanets lists every planet in declaration order.
func AllPlanets() []Planet {
	out := make([]Planet, PlanetCount)
	for i := range out {
		out[i] = Planet(i)
	}
	return out
}

// String returns the canonical planet name.
func (p Planet) String() string {
	if p < 0 || p >= PlanetCount {
		return fmt.Sprintf("Planet(%d)", int(p))
	}
	return planetNames[p]
}

// Valid reports whether p is one of the 9 planets.
func (p Planet) Valid() bool {
	return p >= 0 && p < PlanetCount
}

// IsNode reports whether p is a lunar node (Rahu or Ketu).
func (p Planet) IsNode() bool {
	return p == Rahu || p == Ketu
}

// ParsePlanet resolves a planet name to its enum value.
func ParsePlanet(name string) (Planet, error) {
	for i, n := range planetNames {
		if n == name {
			return Planet(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPlanet, name)
}

// MarshalJSON encodes the planet as its name.
func (p Planet) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// UnmarshalJSON decodes a planet from its name.
func (p *Planet) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("planet: %w", err)
	}
	parsed, err := ParsePlanet(name)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalText encodes the planet name; this is what encoding/json uses
// when a Planet is a map key.
func (p Planet) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a planet name used as a map key.
func (p *Planet) UnmarshalText(text []byte) error {
	parsed, err := ParsePlanet(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
