package model

import "time"

// TransitPlanet is a planet's position at a transit instant. Transit charts
// carry no houses; those come from the gochar calculation against a natal
// reference.
type TransitPlanet struct {
	Name       Planet     `json:"name"`
	Sign       ZodiacSign `json:"sign"`
	Degree     float64    `json:"degree"` // within sign, [0, 30)
	Retrograde bool       `json:"retrograde"`
}

// TransitChart holds sidereal planetary positions for one instant.
type TransitChart struct {
	Timestamp time.Time                `json:"timestamp"`
	Planets   map[Planet]TransitPlanet `json:"planets"`
}

// GocharPosition locates a transiting planet relative to the natal Lagna
// and natal Moon, as whole-sign house offsets (1..12).
type GocharPosition struct {
	Planet         Planet `json:"planet"`
	HouseFromLagna int    `json:"house_from_lagna"`
	HouseFromMoon  int    `json:"house_from_moon"` // 0 when the natal Moon is absent
}

// Gochar is the full transit-relative-to-natal picture.
type Gochar struct {
	Positions map[Planet]GocharPosition `json:"positions"`
}
