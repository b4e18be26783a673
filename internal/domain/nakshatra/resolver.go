// Package nakshatra resolves absolute zodiac degrees into lunar mansions.
package nakshatra

import (
	"github.com/okian/jyotish/internal/domain/model"
)

// Position is a resolved nakshatra placement.
type Position struct {
	Nakshatra model.Nakshatra
	Pada      int // 1..4
}

// Resolve maps an absolute zodiac degree onto its nakshatra and pada.
// The degree is normalized into [0, 360) first, so any longitude is valid.
func Resolve(absoluteDegree float64) Position {
	d := model.NormalizeDegree(absoluteDegree)
	idx := int(d / model.NakshatraSpan)
	if idx >= model.NakshatraCount { // guard the 360.0 edge after float rounding
		idx = model.NakshatraCount - 1
	}
	within := d - float64(idx)*model.NakshatraSpan
	pada := int(within/model.PadaSpan) + 1
	if pada > 4 {
		pada = 4
	}
	return Position{Nakshatra: model.Nakshatra(idx), Pada: pada}
}

// FromSign resolves a sign-relative position. degreeInSign must already be
// in [0, 30); out-of-range values are folded via the absolute degree.
func FromSign(sign model.ZodiacSign, degreeInSign float64) Position {
	return Resolve(float64(sign)*30 + degreeInSign)
}
