// Package matching scores marital compatibility on the 36-point Ashta Koot
// scale from two natal Moon placements.
package matching

import (
	"fmt"

	"github.com/okian/jyotish/internal/domain/model"
	"github.com/okian/jyotish/internal/domain/nakshatra"
)

// Varna tiers, lowest first. Rank order drives the Varna factor.
var varnaHierarchy = [4]string{"Shudra", "Vaishya", "Kshatriya", "Brahmin"}

// varnaOf groups signs into the four Varna tiers.
var varnaOf = map[model.ZodiacSign]string{
	model.Cancer: "Brahmin", model.Scorpio: "Brahmin", model.Pisces: "Brahmin",
	model.Aries: "Kshatriya", model.Leo: "Kshatriya", model.Sagittarius: "Kshatriya",
	model.Taurus: "Vaishya", model.Virgo: "Vaishya", model.Capricorn: "Vaishya",
	model.Gemini: "Shudra", model.Libra: "Shudra", model.Aquarius: "Shudra",
}

// vashyaOf assigns each sign one of the five influence categories.
var vashyaOf = map[model.ZodiacSign]string{
	model.Aries: "Chatushpada", model.Taurus: "Chatushpada",
	model.Gemini: "Manava", model.Virgo: "Manava", model.Libra: "Manava",
	model.Sagittarius: "Manava", model.Aquarius: "Manava",
	model.Cancer: "Jalchar", model.Capricorn: "Jalchar", model.Pisces: "Jalchar",
	model.Leo:     "Vanchar",
	model.Scorpio: "Keeta",
}

// yoniOf maps each of the 27 nakshatras to its animal symbol.
var yoniOf = [model.NakshatraCount]string{
	"Horse", "Elephant", "Sheep", "Serpent", "Serpent", "Dog",
	"Cat", "Sheep", "Cat", "Rat", "Rat",
	"Cow", "Buffalo", "Tiger", "Buffalo", "Tiger",
	"Deer", "Deer", "Dog", "Monkey", "Mongoose",
	"Monkey", "Lion", "Horse", "Lion",
	"Cow", "Elephant",
}

// ganaOf maps each nakshatra to its temperament group.
var ganaOf = [model.NakshatraCount]string{
	"Deva", "Manushya", "Rakshasa", "Manushya", "Deva", "Manushya",
	"Deva", "Deva", "Rakshasa", "Rakshasa", "Manushya",
	"Manushya", "Deva", "Rakshasa", "Deva", "Rakshasa",
	"Deva", "Rakshasa", "Rakshasa", "Manushya", "Manushya",
	"Deva", "Rakshasa", "Rakshasa", "Manushya",
	"Manushya", "Deva",
}

// nadiOf partitions the 27 nakshatras into the three Nadi buckets.
var nadiOf = [model.NakshatraCount]string{
	"Adi", "Madhya", "Antya", "Antya", "Madhya", "Adi",
	"Adi", "Madhya", "Antya", "Antya", "Madhya",
	"Adi", "Adi", "Madhya", "Antya", "Antya",
	"Madhya", "Adi", "Adi", "Madhya", "Antya",
	"Antya", "Madhya", "Adi", "Adi",
	"Madhya", "Antya",
}

// AvakahadaFor derives a person's matching attributes from the Moon's sign
// and its degree within that sign.
func AvakahadaFor(moonSign model.ZodiacSign, moonDegree float64) (model.Avakahada, error) {
	if !moonSign.Valid() {
		return model.Avakahada{}, fmt.Errorf("%w: sign index %d", model.ErrUnknownSign, int(moonSign))
	}
	if moonDegree < 0 || moonDegree >= 30 {
		return model.Avakahada{}, fmt.Errorf("%w: moon degree %.4f not in [0, 30)", model.ErrDegreeOutOfRange, moonDegree)
	}

	pos := nakshatra.FromSign(moonSign, moonDegree)
	nak := pos.Nakshatra

	return model.Avakahada{
		Sign:      moonSign,
		Nakshatra: nak,
		Varna:     varnaOf[moonSign],
		Vashya:    vashyaOf[moonSign],
		Yoni:      yoniOf[nak],
		Gana:      ganaOf[nak],
		Nadi:      nadiOf[nak],
	}, nil
}
