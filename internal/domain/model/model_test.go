package model_test

import (
	"encoding/json"
	"testing"

	"github.com/okian/jyotish/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestZodiacSign(t *testing.T) {
	Convey("Given the 12 zodiac signs", t, func() {
		Convey("When parsing every canonical name", func() {
			Convey("Then parsing should round-trip the enum", func() {
				for i := 0; i < model.SignCount; i++ {
					sign := model.ZodiacSign(i)
					parsed, err := model.ParseSign(sign.String())
					So(err, ShouldBeNil)
					So(parsed, ShouldEqual, sign)
				}
			})
		})

		Convey("When parsing an unknown name", func() {
			_, err := model.ParseSign("Ophiuchus")

			Convey("Then it should report an unknown sign", func() {
				So(err, ShouldWrap, model.ErrUnknownSign)
			})
		})

		Convey("When resolving a sign from an absolute degree", func() {
			Convey("Then degree 0 should be Aries", func() {
				So(model.SignFromDegree(0), ShouldEqual, model.Aries)
			})
			Convey("Then degree 190 should be Libra", func() {
				So(model.SignFromDegree(190), ShouldEqual, model.Libra)
			})
			Convey("Then negative degrees should normalize first", func() {
				So(model.SignFromDegree(-10), ShouldEqual, model.Pisces) // -10 -> 350
			})
		})

		Convey("When marshalling a sign to JSON", func() {
			data, err := json.Marshal(model.Scorpio)

			Convey("Then it should encode as its name", func() {
				So(err, ShouldBeNil)
				So(string(data), ShouldEqual, `"Scorpio"`)
			})
		})
	})
}

func TestSignLords(t *testing.T) {
	Convey("Given the sign rulership table", t, func() {
		Convey("Then each sign should map to its classical lord", func() {
			So(model.Aries.Lord(), ShouldEqual, model.Mars)
			So(model.Cancer.Lord(), ShouldEqual, model.Moon)
			So(model.Leo.Lord(), ShouldEqual, model.Sun)
			So(model.Capricorn.Lord(), ShouldEqual, model.Saturn)
			So(model.Aquarius.Lord(), ShouldEqual, model.Saturn)
			So(model.Pisces.Lord(), ShouldEqual, model.Jupiter)
		})
	})
}

func TestHouseFrom(t *testing.T) {
	Convey("Given whole-sign house derivation", t, func() {
		Convey("When the target is the reference itself", func() {
			Convey("Then the house should be 1 for every sign", func() {
				for i := 0; i < model.SignCount; i++ {
					s := model.ZodiacSign(i)
					So(model.HouseFrom(s, s), ShouldEqual, 1)
				}
			})
		})

		Convey("When the target ranges over all 12 signs", func() {
			Convey("Then houses should be a bijection onto 1..12", func() {
				for asc := 0; asc < model.SignCount; asc++ {
					seen := make(map[int]bool)
					for target := 0; target < model.SignCount; target++ {
						h := model.HouseFrom(model.ZodiacSign(asc), model.ZodiacSign(target))
						So(h, ShouldBeBetweenOrEqual, 1, 12)
						So(seen[h], ShouldBeFalse)
						seen[h] = true
					}
					So(len(seen), ShouldEqual, 12)
				}
			})
		})
	})
}

func TestPlanetPosition(t *testing.T) {
	Convey("Given a planet position", t, func() {
		pos := model.PlanetPosition{
			Name:   model.Moon,
			Sign:   model.Libra,
			Degree: 10,
			House:  7,
		}

		Convey("When computing the absolute degree", func() {
			Convey("Then Libra 10 should be 190", func() {
				So(pos.AbsoluteDegree(), ShouldEqual, 190.0)
			})
		})

		Convey("When the degree is inside [0, 30)", func() {
			Convey("Then validation should pass", func() {
				So(pos.Validate(), ShouldBeNil)
			})
		})

		Convey("When the degree is out of range", func() {
			pos.Degree = 30

			Convey("Then validation should fail", func() {
				So(pos.Validate(), ShouldWrap, model.ErrDegreeOutOfRange)
			})
		})
	})
}

func TestKundaliChartPlanet(t *testing.T) {
	Convey("Given a chart with only the Moon", t, func() {
		chart := model.KundaliChart{
			Planets: map[model.Planet]model.PlanetPosition{
				model.Moon: {Name: model.Moon, Sign: model.Taurus, Degree: 5, House: 2},
			},
		}

		Convey("When looking up the Moon", func() {
			pos, err := chart.Planet(model.Moon)

			Convey("Then it should be found", func() {
				So(err, ShouldBeNil)
				So(pos.Sign, ShouldEqual, model.Taurus)
			})
		})

		Convey("When looking up an absent planet", func() {
			_, err := chart.Planet(model.Saturn)

			Convey("Then it should report a missing planet", func() {
				So(err, ShouldWrap, model.ErrMissingPlanet)
			})
		})
	})
}

func TestNakshatraNames(t *testing.T) {
	Convey("Given the 27 nakshatras", t, func() {
		Convey("Then the order should run Ashwini to Revati", func() {
			So(model.Nakshatra(0).String(), ShouldEqual, "Ashwini")
			So(model.Nakshatra(14).String(), ShouldEqual, "Swati")
			So(model.Nakshatra(26).String(), ShouldEqual, "Revati")
		})

		Convey("Then parsing should round-trip every name", func() {
			for i := 0; i < model.NakshatraCount; i++ {
				n := model.Nakshatra(i)
				parsed, err := model.ParseNakshatra(n.String())
				So(err, ShouldBeNil)
				So(parsed, ShouldEqual, n)
			}
		})

		Convey("Then the named constants should match the zodiacal order", func() {
			So(model.Ashwini, ShouldEqual, model.Nakshatra(0))
			So(model.Swati, ShouldEqual, model.Nakshatra(14))
			So(model.UttaraAshadha.String(), ShouldEqual, "Uttara Ashadha")
			So(model.Revati, ShouldEqual, model.Nakshatra(model.NakshatraCount-1))
		})
	})
}

func TestPlanetMapKeys(t *testing.T) {
	Convey("Given a map keyed by planet", t, func() {
		positions := map[model.Planet]int{
			model.Jupiter: 10,
			model.Saturn:  7,
		}

		Convey("When marshaling to JSON", func() {
			data, err := json.Marshal(positions)
			So(err, ShouldBeNil)

			Convey("Then keys should be planet names, not enum numbers", func() {
				So(string(data), ShouldContainSubstring, `"Jupiter"`)
				So(string(data), ShouldContainSubstring, `"Saturn"`)
			})

			Convey("Then unmarshaling should restore the original map", func() {
				var decoded map[model.Planet]int
				So(json.Unmarshal(data, &decoded), ShouldBeNil)
				So(decoded, ShouldResemble, positions)
			})
		})
	})
}
