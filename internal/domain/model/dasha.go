package model

import "time"

// Antardasha is a sub-period inside a Mahadasha.
type Antardasha struct {
	Lord           Planet    `json:"lord"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	DurationMonths float64   `json:"duration_months"`
}

// DashaPeriod is one Mahadasha with its 9 Antardashas. The Antardasha
// durations sum to the Mahadasha duration within rounding tolerance.
type DashaPeriod struct {
	Lord          Planet       `json:"lord"`
	StartDate     time.Time    `json:"start_date"`
	EndDate       time.Time    `json:"end_date"`
	DurationYears float64      `json:"duration_years"`
	Antardashas   []Antardasha `json:"antardashas"`
}

// SadeSatiPhase names Saturn's transit relationship to the natal Moon.
type SadeSatiPhase string

// Sade Sati phases. Rising, Peak and Setting are the three Sade Sati
// stretches proper; Dhaiya covers the 4th and 8th house transits.
const (
	SadeSatiRising  SadeSatiPhase = "Rising"
	SadeSatiPeak    SadeSatiPhase = "Peak"
	SadeSatiSetting SadeSatiPhase = "Setting"
	SadeSatiDhaiya  SadeSatiPhase = "Dhaiya"
	SadeSatiNone    SadeSatiPhase = "None"
)

// SadeSatiStatus reports Saturn's current standing relative to the natal Moon.
type SadeSatiStatus struct {
	Phase       SadeSatiPhase `json:"phase"`
	SaturnSign  ZodiacSign    `json:"saturn_sign"`
	MoonSign    ZodiacSign    `json:"moon_sign"`
	Description string        `json:"description"`
}
