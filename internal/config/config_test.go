package config_test

import (
	"testing"

	"github.com/okian/jyotish/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.Ayanamsa, convey.ShouldEqual, "lahiri")
			convey.So(cfg.DashaPeriods, convey.ShouldEqual, 9)
			convey.So(cfg.DivisionalCharts, convey.ShouldResemble, []string{"D9", "D10"})
			convey.So(cfg.MaxRules, convey.ShouldEqual, 500)
			convey.So(cfg.QueueSize, convey.ShouldEqual, 4096)
			convey.So(cfg.CacheSize, convey.ShouldEqual, 1024)
			convey.So(cfg.CacheTTLSeconds, convey.ShouldEqual, 3600)
			convey.So(cfg.WorkerCount, convey.ShouldEqual, 0)
		})
	})
}
