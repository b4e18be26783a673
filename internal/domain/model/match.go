package model

// Avakahada carries the per-person attributes derived from the Moon's
// placement that feed Ashta Koot matching.
type Avakahada struct {
	Sign      ZodiacSign `json:"sign"`
	Nakshatra Nakshatra  `json:"nakshatra"`
	Varna     string     `json:"varna"`
	Vashya    string     `json:"vashya"`
	Yoni      string     `json:"yoni"`
	Gana      string     `json:"gana"`
	Nadi      string     `json:"nadi"`
}

// CompatibilityFactor is one of the 8 Ashta Koot factors with its score and
// the per-person values that produced it.
type CompatibilityFactor struct {
	Name        string  `json:"name"`
	Score       float64 `json:"score"`
	MaxScore    float64 `json:"max_score"`
	BoyValue    string  `json:"boy_value"`
	GirlValue   string  `json:"girl_value"`
	Area        string  `json:"area"`
	Description string  `json:"description"`
}

// MatchVerdict summarizes a total Ashta Koot score.
type MatchVerdict string

// Verdicts in descending score order.
const (
	VerdictExcellent    MatchVerdict = "Excellent Match"
	VerdictGood         MatchVerdict = "Good Match"
	VerdictAverage      MatchVerdict = "Average Match"
	VerdictBelowAverage MatchVerdict = "Below Average"
)

// CompatibilityScore is a complete 36-point Ashta Koot result.
type CompatibilityScore struct {
	Factors     []CompatibilityFactor `json:"factors"`
	TotalScore  float64               `json:"total_score"`
	MaxScore    float64               `json:"max_score"`
	Percentage  float64               `json:"percentage"`
	Verdict     MatchVerdict          `json:"verdict"`
	BoyDetails  Avakahada             `json:"boy_details"`
	GirlDetails Avakahada             `json:"girl_details"`
}
