package ephemeris_test

import (
	"math"
	"testing"
	"time"

	"github.com/okian/jyotish/internal/domain/ephemeris"
	. "github.com/smartystreets/goconvey/convey"
)

func TestJulianDay(t *testing.T) {
	Convey("Given civil instants with known Julian Days", t, func() {
		Convey("When converting the J2000 epoch", func() {
			jd := ephemeris.JulianDay(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC))

			Convey("Then it should be exactly 2451545.0", func() {
				So(jd, ShouldAlmostEqual, 2451545.0, 1e-6)
			})
		})

		Convey("When converting midnight UTC", func() {
			jd := ephemeris.JulianDay(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC))

			Convey("Then it should land on a half-day boundary", func() {
				So(jd, ShouldAlmostEqual, 2451544.5, 1e-6)
			})
		})

		Convey("When converting a non-UTC instant", func() {
			loc := time.FixedZone("IST", 5*3600+1800)
			jd := ephemeris.JulianDay(time.Date(2000, 1, 1, 17, 30, 0, 0, loc))

			Convey("Then it should match the UTC equivalent", func() {
				So(jd, ShouldAlmostEqual, 2451545.0, 1e-6)
			})
		})

		Convey("When comparing two instants a day apart", func() {
			a := ephemeris.JulianDay(time.Date(1987, 6, 19, 4, 0, 0, 0, time.UTC))
			b := ephemeris.JulianDay(time.Date(1987, 6, 20, 4, 0, 0, 0, time.UTC))

			Convey("Then the Julian Days should differ by exactly 1", func() {
				So(b-a, ShouldAlmostEqual, 1.0, 1e-9)
			})
		})
	})
}

func TestCheckDegrees(t *testing.T) {
	Convey("Given adapter-returned longitudes", t, func() {
		Convey("When the value is finite", func() {
			Convey("Then the check should pass", func() {
				So(ephemeris.CheckDegrees("sun", 123.45), ShouldBeNil)
			})
		})

		Convey("When the value is NaN", func() {
			err := ephemeris.CheckDegrees("sun", math.NaN())

			Convey("Then it should report an adapter failure", func() {
				So(err, ShouldWrap, ephemeris.ErrAdapterFailure)
			})
		})

		Convey("When the value is infinite", func() {
			err := ephemeris.CheckDegrees("asc", math.Inf(1))

			Convey("Then it should report an adapter failure", func() {
				So(err, ShouldWrap, ephemeris.ErrAdapterFailure)
			})
		})
	})
}
