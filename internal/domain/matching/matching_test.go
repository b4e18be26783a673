package matching_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/jyotish/internal/domain/matching"
	"github.com/okian/jyotish/internal/domain/model"
)

func factorByName(score model.CompatibilityScore, name string) model.CompatibilityFactor {
	for _, f := range score.Factors {
		if f.Name == name {
			return f
		}
	}
	return model.CompatibilityFactor{}
}

func TestAvakahadaFor(t *testing.T) {
	Convey("Given a Moon at Aries 10", t, func() {
		ava, err := matching.AvakahadaFor(model.Aries, 10)
		So(err, ShouldBeNil)

		Convey("Then the attributes come from the fixed tables", func() {
			So(ava.Sign, ShouldEqual, model.Aries)
			So(ava.Nakshatra, ShouldEqual, model.Ashwini)
			So(ava.Varna, ShouldEqual, "Kshatriya")
			So(ava.Vashya, ShouldEqual, "Chatushpada")
			So(ava.Yoni, ShouldEqual, "Horse")
			So(ava.Gana, ShouldEqual, "Deva")
			So(ava.Nadi, ShouldEqual, "Adi")
		})
	})

	Convey("Given a Moon at Libra 10", t, func() {
		// Absolute degree 190 falls in Swati (index 14).
		ava, err := matching.AvakahadaFor(model.Libra, 10)
		So(err, ShouldBeNil)

		So(ava.Nakshatra, ShouldEqual, model.Swati)
		So(ava.Varna, ShouldEqual, "Shudra")
		So(ava.Vashya, ShouldEqual, "Manava")
		So(ava.Yoni, ShouldEqual, "Buffalo")
		So(ava.Gana, ShouldEqual, "Deva")
		So(ava.Nadi, ShouldEqual, "Antya")
	})

	Convey("Given invalid input", t, func() {
		Convey("Then an unknown sign is rejected", func() {
			_, err := matching.AvakahadaFor(model.ZodiacSign(99), 10)
			So(err, ShouldWrap, model.ErrUnknownSign)
		})

		Convey("Then an out-of-range degree is rejected", func() {
			_, err := matching.AvakahadaFor(model.Aries, 30)
			So(err, ShouldWrap, model.ErrDegreeOutOfRange)

			_, err = matching.AvakahadaFor(model.Aries, -1)
			So(err, ShouldWrap, model.ErrDegreeOutOfRange)
		})
	})
}

func TestScore(t *testing.T) {
	Convey("Given boy Moon at Aries 10 and girl Moon at Libra 10", t, func() {
		score, err := matching.Score(model.Aries, 10, model.Libra, 10)
		So(err, ShouldBeNil)

		Convey("Then opposite signs clear the Bhakoot check", func() {
			f := factorByName(score, "Bhakoot")
			So(f.Score, ShouldEqual, 7)
			So(f.MaxScore, ShouldEqual, 7)
		})

		Convey("Then different Nadi buckets avoid the dosha", func() {
			f := factorByName(score, "Nadi")
			So(f.Score, ShouldEqual, 8)
		})

		Convey("Then the Kshatriya boy clears Varna against a Shudra girl", func() {
			So(factorByName(score, "Varna").Score, ShouldEqual, 1)
		})

		Convey("Then Mars and Venus grade neutral in Graha Maitri", func() {
			f := factorByName(score, "Graha Maitri")
			So(f.Score, ShouldEqual, 3)
			So(f.BoyValue, ShouldEqual, "Mars")
			So(f.GirlValue, ShouldEqual, "Venus")
		})

		Convey("Then both Deva ganas score full points", func() {
			So(factorByName(score, "Gana").Score, ShouldEqual, 6)
		})

		Convey("Then the total is the factor sum with a verdict", func() {
			var sum float64
			for _, f := range score.Factors {
				sum += f.Score
			}
			So(score.TotalScore, ShouldEqual, sum)
			So(score.MaxScore, ShouldEqual, 36)
			So(score.Verdict, ShouldNotBeEmpty)
			So(score.Percentage, ShouldBeBetweenOrEqual, 0, 100)
		})

		Convey("Then all eight factors are present in canonical order", func() {
			names := make([]string, 0, len(score.Factors))
			for _, f := range score.Factors {
				names = append(names, f.Name)
			}
			So(names, ShouldResemble, []string{
				"Varna", "Vashya", "Tara", "Yoni",
				"Graha Maitri", "Gana", "Bhakoot", "Nadi",
			})
		})
	})

	Convey("Given identical Moon placements", t, func() {
		score, err := matching.Score(model.Cancer, 5, model.Cancer, 5)
		So(err, ShouldBeNil)

		Convey("Then same Nadi triggers the dosha and scores zero", func() {
			So(factorByName(score, "Nadi").Score, ShouldEqual, 0)
		})

		Convey("Then same Yoni scores full points", func() {
			So(factorByName(score, "Yoni").Score, ShouldEqual, 4)
		})

		Convey("Then same lord scores full Graha Maitri", func() {
			So(factorByName(score, "Graha Maitri").Score, ShouldEqual, 5)
		})

		Convey("Then Tara 1 grades neutral", func() {
			So(factorByName(score, "Tara").Score, ShouldEqual, 1.5)
		})
	})

	Convey("Given the afflicted 6/8 Bhakoot distance", t, func() {
		// Aries to Virgo is 6 one way and 8 the other.
		score, err := matching.Score(model.Aries, 10, model.Virgo, 10)
		So(err, ShouldBeNil)

		So(factorByName(score, "Bhakoot").Score, ShouldEqual, 0)
	})

	Convey("Given enemy Yonis", t, func() {
		// Ashwini (Horse) against Swati (Buffalo) is a listed enemy pair.
		score, err := matching.Score(model.Aries, 3, model.Libra, 10)
		So(err, ShouldBeNil)

		f := factorByName(score, "Yoni")
		So(f.BoyValue, ShouldEqual, "Horse")
		So(f.GirlValue, ShouldEqual, "Buffalo")
		So(f.Score, ShouldEqual, 0)
	})

	Convey("Given an invalid participant", t, func() {
		_, err := matching.Score(model.Aries, 10, model.Libra, 31)
		So(err, ShouldWrap, model.ErrDegreeOutOfRange)
	})
}
