package dasha

import (
	"fmt"

	"github.com/okian/jyotish/internal/domain/model"
)

// SadeSati classifies transit Saturn against the natal Moon sign. The
// seven-and-a-half-year window spans the sign before the Moon, the Moon
// sign itself, and the sign after; the 4th and 8th houses from the Moon
// are the smaller Dhaiya afflictions.
func SadeSati(natalMoon, transitSaturn model.ZodiacSign) model.SadeSatiStatus {
	status := model.SadeSatiStatus{
		SaturnSign: transitSaturn,
		MoonSign:   natalMoon,
	}

	offset := (int(transitSaturn) - int(natalMoon) + model.SignCount) % model.SignCount
	switch offset {
	case 11:
		status.Phase = model.SadeSatiRising
		status.Description = fmt.Sprintf("Saturn in %s, 12th from natal Moon: first phase of Sade Sati", transitSaturn)
	case 0:
		status.Phase = model.SadeSatiPeak
		status.Description = fmt.Sprintf("Saturn in %s, over natal Moon: peak phase of Sade Sati", transitSaturn)
	case 1:
		status.Phase = model.SadeSatiSetting
		status.Description = fmt.Sprintf("Saturn in %s, 2nd from natal Moon: final phase of Sade Sati", transitSaturn)
	case 3, 7:
		status.Phase = model.SadeSatiDhaiya
		status.Description = fmt.Sprintf("Saturn in %s, %dth from natal Moon: Dhaiya (small panoti)", transitSaturn, offset+1)
	default:
		status.Phase = model.SadeSatiNone
		status.Description = "Sade Sati is not active"
	}

	return status
}
