// Package transit computes current planetary positions and the Gochar view
// of a transit chart relative to a natal chart.
package transit

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/jyotish/internal/domain/ephemeris"
	"github.com/okian/jyotish/internal/domain/model"
)

var bodyOf = map[model.Planet]ephemeris.Body{
	model.Sun:     ephemeris.BodySun,
	model.Moon:    ephemeris.BodyMoon,
	model.Mars:    ephemeris.BodyMars,
	model.Mercury: ephemeris.BodyMercury,
	model.Jupiter: ephemeris.BodyJupiter,
	model.Venus:   ephemeris.BodyVenus,
	model.Saturn:  ephemeris.BodySaturn,
	model.Rahu:    ephemeris.BodyMeanNode,
}

// Calculator produces transit charts from an ephemeris adapter.
type Calculator struct {
	adapter ephemeris.Adapter
}

// New returns a transit Calculator backed by the given adapter.
func New(adapter ephemeris.Adapter) *Calculator {
	return &Calculator{adapter: adapter}
}

// Chart computes sidereal planetary positions at the given instant. Transit
// positions carry no houses; house placement is relative to a natal chart
// and comes from Gochar.
func (c *Calculator) Chart(ctx context.Context, at time.Time) (model.TransitChart, error) {
	jd := ephemeris.JulianDay(at)

	ayanamsa, err := c.adapter.Ayanamsa(jd)
	if err != nil {
		return model.TransitChart{}, fmt.Errorf("ayanamsa at %s: %w", at.Format(time.RFC3339), err)
	}
	if err := ephemeris.CheckDegrees("ayanamsa", ayanamsa); err != nil {
		return model.TransitChart{}, err
	}

	out := model.TransitChart{
		Timestamp: at.UTC(),
		Planets:   make(map[model.Planet]model.TransitPlanet, model.PlanetCount),
	}

	for _, planet := range model.AllPlanets() {
		body, ok := bodyOf[planet]
		if !ok {
			continue // Ketu is derived from Rahu below.
		}
		tropical, speed, err := c.adapter.LongitudeSpeed(jd, body)
		if err != nil {
			return model.TransitChart{}, fmt.Errorf("transit position of %s: %w", planet, err)
		}
		if err := ephemeris.CheckDegrees(planet.String(), tropical); err != nil {
			return model.TransitChart{}, err
		}

		sidereal := model.NormalizeDegree(tropical - ayanamsa)
		out.Planets[planet] = place(planet, sidereal, speed < 0)

		if planet == model.Rahu {
			opposite := model.NormalizeDegree(sidereal + 180)
			out.Planets[model.Ketu] = place(model.Ketu, opposite, true)
		}
	}

	return out, nil
}

func place(planet model.Planet, sidereal float64, retrograde bool) model.TransitPlanet {
	sign := model.SignFromDegree(sidereal)
	return model.TransitPlanet{
		Name:       planet,
		Sign:       sign,
		Degree:     sidereal - float64(sign)*30,
		Retrograde: retrograde,
	}
}

// Gochar maps transit positions onto houses counted from the natal
// ascendant and from the natal Moon. HouseFromMoon is zero when the natal
// chart carries no Moon.
func Gochar(natal model.KundaliChart, transits model.TransitChart) model.Gochar {
	moon, haveMoon := natal.Planets[model.Moon]

	out := model.Gochar{Positions: make(map[model.Planet]model.GocharPosition, len(transits.Planets))}
	for _, planet := range model.AllPlanets() {
		tp, ok := transits.Planets[planet]
		if !ok {
			continue
		}
		pos := model.GocharPosition{
			Planet:         planet,
			HouseFromLagna: model.HouseFrom(natal.Ascendant.Sign, tp.Sign),
		}
		if haveMoon {
			pos.HouseFromMoon = model.HouseFrom(moon.Sign, tp.Sign)
		}
		out.Positions[planet] = pos
	}
	return out
}
