package model

import (
	"encoding/json"
	"fmt"
)

// Nakshatra identifies one of the 27 lunar mansions, ordered Ashwini..Revati.
// Each spans 360/27 degrees (13 degrees 20 minutes) and divides into 4 padas.
type Nakshatra int

// NakshatraCount is the number of nakshatras.
const NakshatraCount = 27

// NakshatraSpan is the arc of a single nakshatra in degrees.
const NakshatraSpan = 360.0 / NakshatraCount

// PadaSpan is the arc of a single pada in degrees.
const PadaSpan = NakshatraSpan / 4

// The 27 nakshatras in zodiacal order.
const (
	Ashwini Nakshatra = iota
	Bharani
	Krittika
	Rohini
	Mrigashira
	Ardra
	Punarvasu
	Pushya
	Ashlesha
	Magha
	PurvaPhalguni
	UttaraPhalguni
	Hasta
	Chitra
	Swati
	Vishakha
	Anuradha
	Jyeshtha
	Mula
	PurvaAshadha
	UttaraAshadha
	Shravana
	Dhanishta
	Shatabhisha
	PurvaBhadrapada
	UttaraBhadrapada
	Revati
)

var nakshatraNames = [NakshatraCount]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni",
	"Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha",
	"Anuradha", "Jyeshtha", "Mula", "Purva Ashadha", "Uttara Ashadha",
	"Shravana", "Dhanishta", "Shatabhisha", "Purva Bhadrapada",
	"Uttara Bhadrapada", "Revati",
}

// String returns the canonical nakshatra name.
func (n Nakshatra) String() string {
	if n < 0 || n >= NakshatraCount {
		return fmt.Sprintf("Nakshatra(%d)", int(n))
	}
	return nakshatraNames[n]
}

// Valid reports whether n is one of the 27 nakshatras.
func (n Nakshatra) Valid() bool {
	return n >= 0 && n < NakshatraCount
}

// ParseNakshatra resolves a nakshatra name to its enum value.
func ParseNakshatra(name string) (Nakshatra, error) {
	for i, nm := range nakshatraNames {
		if nm == name {
			return Nakshatra(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownNakshatra, name)
}

// MarshalJSON encodes the nakshatra as its name.
func (n Nakshatra) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.String())
}

// UnmarshalJSON decodes a nakshatra from its name.
func (n *Nakshatra) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("nakshatra: %w", err)
	}
	parsed, err := ParseNakshatra(name)
	if err != nil {
		return err
	}
	*n = parsed
	return nil
}
