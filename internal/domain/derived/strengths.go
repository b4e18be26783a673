package derived

import (
	"fmt"

	"github.com/okian/jyotish/internal/domain/model"
)

// Occupancy score thresholds for house grading.
const (
	strongThreshold = 2
	weakThreshold   = -1
)

// benefics and malefics follow the simplified natural classification; Sun
// counts malefic here.
var benefics = map[model.Planet]bool{
	model.Jupiter: true, model.Venus: true, model.Mercury: true, model.Moon: true,
}

var malefics = map[model.Planet]bool{
	model.Saturn: true, model.Mars: true, model.Rahu: true, model.Ketu: true, model.Sun: true,
}

// HouseStrengths grades every house 1..12 by its occupants: +1 per benefic,
// -1 per malefic, with one reason string per contributing planet.
func HouseStrengths(kundali model.KundaliChart) map[int]model.HouseStrength {
	out := make(map[int]model.HouseStrength, model.HouseCount)

	for house := 1; house <= model.HouseCount; house++ {
		score := 0
		var reasons []string

		for _, p := range orderedPlanets(kundali) {
			if p.House != house {
				continue
			}
			switch {
			case benefics[p.Name]:
				score++
				reasons = append(reasons, fmt.Sprintf("%s (benefic) occupies house %d", p.Name, house))
			case malefics[p.Name]:
				score--
				reasons = append(reasons, fmt.Sprintf("%s (malefic) occupies house %d", p.Name, house))
			}
		}

		label := model.StrengthAverage
		switch {
		case score >= strongThreshold:
			label = model.StrengthStrong
		case score <= weakThreshold:
			label = model.StrengthWeak
		}

		out[house] = model.HouseStrength{House: house, Strength: label, Reasons: reasons}
	}

	return out
}

// exaltationSigns holds the classical exaltation sign per planet; the
// debilitation sign is always the opposite one.
var exaltationSigns = map[model.Planet]model.ZodiacSign{
	model.Sun:     model.Aries,
	model.Moon:    model.Taurus,
	model.Mars:    model.Capricorn,
	model.Mercury: model.Virgo,
	model.Jupiter: model.Cancer,
	model.Venus:   model.Pisces,
	model.Saturn:  model.Libra,
	model.Rahu:    model.Taurus,
	model.Ketu:    model.Scorpio,
}

// PlanetStrengths grades every planet present in the chart by dignity:
// exalted or own-sign placements are strong, debilitated ones weak,
// everything else average.
func PlanetStrengths(kundali model.KundaliChart) map[model.Planet]model.PlanetStrength {
	out := make(map[model.Planet]model.PlanetStrength, len(kundali.Planets))

	for name, pos := range kundali.Planets {
		exalted := exaltationSigns[name]
		debilitated := model.ZodiacSign((int(exalted) + 6) % model.SignCount)

		strength := model.StrengthAverage
		var reasons []string
		switch {
		case pos.Sign == exalted:
			strength = model.StrengthStrong
			reasons = append(reasons, fmt.Sprintf("%s is exalted in %s", name, pos.Sign))
		case pos.Sign == debilitated:
			strength = model.StrengthWeak
			reasons = append(reasons, fmt.Sprintf("%s is debilitated in %s", name, pos.Sign))
		case !name.IsNode() && pos.Sign.Lord() == name:
			strength = model.StrengthStrong
			reasons = append(reasons, fmt.Sprintf("%s occupies its own sign %s", name, pos.Sign))
		default:
			reasons = append(reasons, fmt.Sprintf("%s is neither dignified nor afflicted in %s", name, pos.Sign))
		}

		out[name] = model.PlanetStrength{Planet: name, Strength: strength, Reasons: reasons}
	}

	return out
}

// Build assembles the full derived-facts bundle for a chart.
func Build(kundali model.KundaliChart) model.DerivedAstrology {
	return model.DerivedAstrology{
		Doshas:          Doshas(kundali),
		HouseStrengths:  HouseStrengths(kundali),
		PlanetStrengths: PlanetStrengths(kundali),
	}
}

// orderedPlanets walks the chart's planets in enum order so that reason
// strings come out deterministic.
func orderedPlanets(kundali model.KundaliChart) []model.PlanetPosition {
	out := make([]model.PlanetPosition, 0, len(kundali.Planets))
	for _, p := range model.AllPlanets() {
		if pos, ok := kundali.Planets[p]; ok {
			out = append(out, pos)
		}
	}
	return out
}
