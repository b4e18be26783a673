// Package dasha computes the Vimshottari planetary period timeline and the
// Sade Sati transit status.
package dasha

import (
	"math"
	"time"

	"github.com/okian/jyotish/internal/domain/model"
)

// The fixed Vimshottari cycle: 9 lords whose year-weights sum to 120.
var (
	lordOrder = [9]model.Planet{
		model.Ketu, model.Venus, model.Sun, model.Moon, model.Mars,
		model.Rahu, model.Jupiter, model.Saturn, model.Mercury,
	}
	lordYears = [9]float64{7, 20, 6, 10, 7, 18, 16, 19, 17}
)

// TotalYears is the full Vimshottari cycle length.
const TotalYears = 120.0

// daysPerYear converts fractional years to days for date arithmetic.
const daysPerYear = 365.25

// DefaultPeriods is how many full Mahadashas follow the balance period,
// covering a 120-year cycle.
const DefaultPeriods = 9

// Timeline produces the ordered Mahadasha sequence for a natal Moon
// position. The first period is the balance of the Dasha running at birth;
// periods full-length Mahadashas follow in lord order (DefaultPeriods when
// periods <= 0).
func Timeline(moonAbsoluteDegree float64, birth time.Time, periods int) []model.DashaPeriod {
	if periods <= 0 {
		periods = DefaultPeriods
	}

	moonDeg := model.NormalizeDegree(moonAbsoluteDegree)
	nakIdx := int(moonDeg / model.NakshatraSpan)
	if nakIdx >= model.NakshatraCount {
		nakIdx = model.NakshatraCount - 1
	}

	// The 9-lord cycle repeats across the 27 nakshatras: Ashwini starts at
	// Ketu, Bharani at Venus, and so on.
	startIdx := nakIdx % 9

	traversed := moonDeg - float64(nakIdx)*model.NakshatraSpan
	balanceFraction := 1 - traversed/model.NakshatraSpan
	balanceYears := lordYears[startIdx] * balanceFraction

	out := make([]model.DashaPeriod, 0, periods+1)

	// Balance period: the remainder of the Dasha already running at birth.
	start := birth
	end := addYearsFractional(start, balanceYears)
	out = append(out, model.DashaPeriod{
		Lord:          lordOrder[startIdx],
		StartDate:     start,
		EndDate:       end,
		DurationYears: roundTo(balanceYears, 2),
		Antardashas:   antardashas(startIdx, balanceYears, start),
	})
	start = end

	for i := 1; i <= periods; i++ {
		idx := (startIdx + i) % 9
		years := lordYears[idx]
		end = addYearsWhole(start, int(years))
		out = append(out, model.DashaPeriod{
			Lord:          lordOrder[idx],
			StartDate:     start,
			EndDate:       end,
			DurationYears: years,
			Antardashas:   antardashas(idx, years, start),
		})
		start = end
	}

	return out
}

// antardashas subdivides a Mahadasha into its 9 sub-periods, starting at
// the Mahadasha's own lord. Each sub-period takes
// durationYears * subLordYears / 120, so the 9 always sum back to the
// parent's duration.
func antardashas(lordIdx int, durationYears float64, start time.Time) []model.Antardasha {
	out := make([]model.Antardasha, 0, 9)
	current := start
	for i := 0; i < 9; i++ {
		idx := (lordIdx + i) % 9
		subYears := durationYears * lordYears[idx] / TotalYears
		end := addYearsFractional(current, subYears)
		out = append(out, model.Antardasha{
			Lord:           lordOrder[idx],
			StartDate:      current,
			EndDate:        end,
			DurationMonths: roundTo(subYears*12, 2),
		})
		current = end
	}
	return out
}

// addYearsFractional advances a date by a fractional year count using the
// Julian year length, which keeps sub-period boundaries stable.
func addYearsFractional(t time.Time, years float64) time.Time {
	days := years * daysPerYear
	return t.Add(time.Duration(days * 24 * float64(time.Hour)))
}

// addYearsWhole advances the calendar year, clamping Feb 29 starts to
// Feb 28 in non-leap target years instead of rolling into March.
func addYearsWhole(t time.Time, years int) time.Time {
	y := t.Year() + years
	m := t.Month()
	d := t.Day()
	if m == time.February && d == 29 && !isLeap(y) {
		d = 28
	}
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, t.Location())
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func roundTo(v float64, places int) float64 {
	f := math.Pow10(places)
	return math.Round(v*f) / f
}
