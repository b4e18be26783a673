package model

// StrengthLabel grades a house or planet.
type StrengthLabel string

// Strength grades, from the occupancy and dignity scoring rules.
const (
	StrengthStrong  StrengthLabel = "strong"
	StrengthAverage StrengthLabel = "average"
	StrengthWeak    StrengthLabel = "weak"
)

// DoshaSeverity grades a detected dosha.
type DoshaSeverity string

// Dosha severities.
const (
	SeverityLow    DoshaSeverity = "low"
	SeverityMedium DoshaSeverity = "medium"
	SeverityHigh   DoshaSeverity = "high"
)

// Dosha records the presence (or explicit absence) of an affliction pattern.
type Dosha struct {
	Name        string        `json:"name"`
	Present     bool          `json:"present"`
	Severity    DoshaSeverity `json:"severity,omitempty"`
	Description string        `json:"description,omitempty"`
}

// HouseStrength grades one house with the planet placements that drove the
// grade, for explanation downstream.
type HouseStrength struct {
	House    int           `json:"house"`
	Strength StrengthLabel `json:"strength"`
	Reasons  []string      `json:"reasons"`
}

// PlanetStrength grades one planet by dignity.
type PlanetStrength struct {
	Planet   Planet        `json:"planet"`
	Strength StrengthLabel `json:"strength"`
	Reasons  []string      `json:"reasons"`
}

// DerivedAstrology aggregates every derived fact computed from a chart.
// Partial charts produce partial facts; absence never fails the whole set.
type DerivedAstrology struct {
	Doshas          []Dosha                   `json:"doshas"`
	HouseStrengths  map[int]HouseStrength     `json:"house_strengths"`
	PlanetStrengths map[Planet]PlanetStrength `json:"planet_strengths"`
}
