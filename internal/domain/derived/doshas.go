// Package derived computes explainable facts from a D1 chart: dosha
// detection and house/planet strength grading.
//
// The engine never fails on partial charts: a missing planet yields an
// "absent" dosha or a skipped grade, so partial data still produces partial,
// explainable results.
package derived

import (
	"fmt"

	"github.com/okian/jyotish/internal/domain/model"
)

// Dosha names as reported.
const (
	MangalDoshaName   = "Mangal Dosha"
	KaalSarpDoshaName = "Kaal Sarp Dosha"
)

// mangalHouses are the placements of Mars counted from the Lagna that
// constitute Mangal Dosha.
var mangalHouses = map[int]bool{1: true, 2: true, 4: true, 7: true, 8: true, 12: true}

// Doshas runs every dosha detector against the chart.
func Doshas(kundali model.KundaliChart) []model.Dosha {
	return []model.Dosha{
		mangalDosha(kundali),
		kaalSarpDosha(kundali),
	}
}

func mangalDosha(kundali model.KundaliChart) model.Dosha {
	mars, err := kundali.Planet(model.Mars)
	if err != nil {
		return model.Dosha{
			Name:        MangalDoshaName,
			Present:     false,
			Description: "Mars position unknown",
		}
	}

	if mangalHouses[mars.House] {
		return model.Dosha{
			Name:     MangalDoshaName,
			Present:  true,
			Severity: model.SeverityMedium,
			Description: fmt.Sprintf(
				"Mars is placed in house %d, which is considered a Manglik position.", mars.House),
		}
	}

	return model.Dosha{
		Name:        MangalDoshaName,
		Present:     false,
		Description: "Mars is not in a Manglik position.",
	}
}

// kaalSarpDosha checks whether every non-node planet falls inside one of
// the two zodiacal arcs between Rahu and Ketu (boundaries inclusive). The
// matched direction names the dosha variant.
func kaalSarpDosha(kundali model.KundaliChart) model.Dosha {
	rahu, errR := kundali.Planet(model.Rahu)
	ketu, errK := kundali.Planet(model.Ketu)
	if errR != nil || errK != nil {
		return model.Dosha{
			Name:        KaalSarpDoshaName,
			Present:     false,
			Description: "Nodes unknown",
		}
	}

	rahuDeg := rahu.AbsoluteDegree()
	ketuDeg := ketu.AbsoluteDegree()

	allRahuToKetu := true
	allKetuToRahu := true
	counted := 0
	for _, p := range kundali.Planets {
		if p.Name.IsNode() {
			continue
		}
		counted++
		d := p.AbsoluteDegree()
		if !inArc(d, rahuDeg, ketuDeg) {
			allRahuToKetu = false
		}
		if !inArc(d, ketuDeg, rahuDeg) {
			allKetuToRahu = false
		}
	}
	if counted == 0 {
		return model.Dosha{
			Name:        KaalSarpDoshaName,
			Present:     false,
			Description: "No other planets found",
		}
	}

	switch {
	case allRahuToKetu:
		return model.Dosha{
			Name:        KaalSarpDoshaName,
			Present:     true,
			Severity:    model.SeverityHigh,
			Description: "All planets are hemmed between Rahu and Ketu (Anant, Rahu to Ketu).",
		}
	case allKetuToRahu:
		return model.Dosha{
			Name:        KaalSarpDoshaName,
			Present:     true,
			Severity:    model.SeverityHigh,
			Description: "All planets are hemmed between Ketu and Rahu (Kulat, Ketu to Rahu).",
		}
	default:
		return model.Dosha{
			Name:        KaalSarpDoshaName,
			Present:     false,
			Description: "Planets are not hemmed between the nodes.",
		}
	}
}

// inArc reports whether deg lies on the zodiacal arc from start to end,
// travelling forward through the zodiac, boundaries inclusive.
func inArc(deg, start, end float64) bool {
	if start < end {
		return deg >= start && deg <= end
	}
	return deg >= start || deg <= end
}
