// Package chart builds the core D1 (rashi) kundali chart from birth inputs
// and an injected ephemeris adapter.
//
// Conventions:
// - The builder is pure: one Build call, one immutable chart, no state.
// - Adapter output is tropical; the sidereal correction happens here.
// - Unknown timezones degrade to UTC (documented behavior, never an error).
package chart

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/okian/jyotish/internal/domain/ephemeris"
	"github.com/okian/jyotish/internal/domain/model"
	"github.com/okian/jyotish/internal/domain/nakshatra"
	"github.com/okian/jyotish/pkg/logger"
)

// Supported input layouts and physical coordinate bounds.
const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"

	maxLatitude  = 90.0
	maxLongitude = 180.0
)

// defaultAyanamsa is the only supported ayanamsa. Unknown selectors fall
// back to it rather than failing; downstream charts always record which
// ayanamsa was actually applied.
const defaultAyanamsa = "Lahiri"

// BirthInput is the immutable civil birth record a chart is built from.
type BirthInput struct {
	BirthDate string  // "2006-01-02"
	BirthTime string  // "15:04:05" (seconds optional)
	Latitude  float64 // degrees north
	Longitude float64 // degrees east
	Timezone  string  // IANA name, e.g. "Asia/Kolkata"
}

// bodyOf maps chart planets onto adapter bodies. Ketu is absent: it is
// derived from Rahu, never requested.
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

// Option applies a configuration option to the Builder.
type Option func(*Builder)

// WithAyanamsa selects the ayanamsa by name. Only Lahiri is supported;
// anything else silently falls back to Lahiri.
func WithAyanamsa(name string) Option {
	return func(b *Builder) {
		if strings.EqualFold(name, defaultAyanamsa) {
			b.ayanamsa = defaultAyanamsa
			return
		}
		b.ayanamsa = defaultAyanamsa
	}
}

// WithLogger sets the logger used for degradation warnings.
func WithLogger(log logger.Logger) Option {
	return func(b *Builder) {
		b.log = log
	}
}

// Builder turns birth inputs into D1 charts via the ephemeris adapter.
type Builder struct {
	adapter  ephemeris.Adapter
	ayanamsa string
	log      logger.Logger
}

// New creates a Builder around an ephemeris adapter.
func New(adapter ephemeris.Adapter, opts ...Option) *Builder {
	b := &Builder{
		adapter:  adapter,
		ayanamsa: defaultAyanamsa,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build computes the D1 chart for the given birth input.
func (b *Builder) Build(ctx context.Context, in BirthInput) (model.KundaliChart, error) {
	utc, err := b.toUTC(ctx, in)
	if err != nil {
		return model.KundaliChart{}, err
	}
	if in.Latitude < -maxLatitude || in.Latitude > maxLatitude {
		return model.KundaliChart{}, fmt.Errorf("%w: latitude %.4f", ErrInvalidInput, in.Latitude)
	}
	if in.Longitude < -maxLongitude || in.Longitude > maxLongitude {
		return model.KundaliChart{}, fmt.Errorf("%w: longitude %.4f", ErrInvalidInput, in.Longitude)
	}

	jd := ephemeris.JulianDay(utc)

	ayan, err := b.adapter.Ayanamsa(jd)
	if err != nil {
		return model.KundaliChart{}, fmt.Errorf("ayanamsa: %w", err)
	}
	if err := ephemeris.CheckDegrees("ayanamsa", ayan); err != nil {
		return model.KundaliChart{}, err
	}

	asc, err := b.buildAscendant(jd, in.Latitude, in.Longitude, ayan)
	if err != nil {
		return model.KundaliChart{}, err
	}

	planets, err := b.buildPlanets(jd, asc.Sign, ayan)
	if err != nil {
		return model.KundaliChart{}, err
	}

	return model.KundaliChart{
		Ascendant:       asc,
		Planets:         planets,
		Houses:          housesFrom(asc.Sign),
		Ayanamsa:        b.ayanamsa,
		AyanamsaDegrees: ayan,
	}, nil
}

// toUTC converts the civil birth moment into UTC. An unknown timezone
// degrades to UTC with a warning; unparseable dates and times fail.
func (b *Builder) toUTC(ctx context.Context, in BirthInput) (time.Time, error) {
	d, err := time.Parse(dateLayout, in.BirthDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: birth date %q", ErrInvalidInput, in.BirthDate)
	}
	layout := timeLayout
	if len(in.BirthTime) == len("15:04") {
		layout = "15:04"
	}
	t, err := time.Parse(layout, in.BirthTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: birth time %q", ErrInvalidInput, in.BirthTime)
	}

	loc, err := time.LoadLocation(in.Timezone)
	if err != nil {
		if b.log != nil {
			b.log.Warn(ctx, "unknown timezone; defaulting to UTC",
				logger.String("timezone", in.Timezone), logger.Error(err))
		}
		loc = time.UTC
	}

	local := time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
	return local.UTC(), nil
}

func (b *Builder) buildAscendant(jd, lat, lon, ayan float64) (model.Ascendant, error) {
	tropical, err := b.adapter.Ascendant(jd, lat, lon)
	if err != nil {
		return model.Ascendant{}, fmt.Errorf("ascendant: %w", err)
	}
	if err := ephemeris.CheckDegrees("ascendant", tropical); err != nil {
		return model.Ascendant{}, err
	}

	sidereal := model.NormalizeDegree(tropical - ayan)
	sign := model.SignFromDegree(sidereal)
	pos := nakshatra.Resolve(sidereal)
	return model.Ascendant{
		Sign:      sign,
		Degree:    sidereal - float64(sign)*30,
		Nakshatra: pos.Nakshatra,
		Pada:      pos.Pada,
	}, nil
}

func (b *Builder) buildPlanets(jd float64, ascSign model.ZodiacSign, ayan float64) (map[model.Planet]model.PlanetPosition, error) {
	planets := make(map[model.Planet]model.PlanetPosition, model.PlanetCount)

	var rahuDegree float64
	for planet, body := range bodyOf {
		tropical, speed, err := b.adapter.LongitudeSpeed(jd, body)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", planet, err)
		}
		if err := ephemeris.CheckDegrees(planet.String(), tropical); err != nil {
			return nil, err
		}

		sidereal := model.NormalizeDegree(tropical - ayan)
		planets[planet] = placePlanet(planet, sidereal, ascSign, speed < 0)
		if planet == model.Rahu {
			rahuDegree = sidereal
		}
	}

	// Ketu is the opposite node: 180 degrees from Rahu, always retrograde.
	ketuDegree := model.NormalizeDegree(rahuDegree + 180)
	planets[model.Ketu] = placePlanet(model.Ketu, ketuDegree, ascSign, true)

	return planets, nil
}

// placePlanet derives the full position from an absolute sidereal degree.
// House comes from the whole-sign offset to the ascendant and is never set
// any other way.
func placePlanet(p model.Planet, absolute float64, ascSign model.ZodiacSign, retrograde bool) model.PlanetPosition {
	sign := model.SignFromDegree(absolute)
	pos := nakshatra.Resolve(absolute)
	return model.PlanetPosition{
		Name:       p,
		Sign:       sign,
		Degree:     absolute - float64(sign)*30,
		House:      model.HouseFrom(ascSign, sign),
		Nakshatra:  pos.Nakshatra,
		Pada:       pos.Pada,
		Retrograde: retrograde,
	}
}

// housesFrom lays the 12 signs into houses starting at the ascendant sign.
func housesFrom(asc model.ZodiacSign) map[int]model.ZodiacSign {
	houses := make(map[int]model.ZodiacSign, model.HouseCount)
	for i := 0; i < model.HouseCount; i++ {
		houses[i+1] = model.ZodiacSign((int(asc) + i) % model.SignCount)
	}
	return houses
}
