package config_test

import (
	"context"
	"os"
	"testing"

	"github.com/okian/jyotish/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			// Clear any existing environment variables
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.Ayanamsa, convey.ShouldEqual, "lahiri")
				convey.So(cfg.DashaPeriods, convey.ShouldEqual, 9)
				convey.So(cfg.DivisionalCharts, convey.ShouldResemble, []string{"D9", "D10"})
				convey.So(cfg.MaxRules, convey.ShouldEqual, 500)
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("JYOTISH_ADDR", ":8080")
			_ = os.Setenv("JYOTISH_LOG_LEVEL", "debug")
			_ = os.Setenv("JYOTISH_DASHA_PERIODS", "18")
			_ = os.Setenv("JYOTISH_MAX_RULES", "250")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.DashaPeriods, convey.ShouldEqual, 18)
				convey.So(cfg.MaxRules, convey.ShouldEqual, 250)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":9090"
log_level: warn
ayanamsa: lahiri
dasha_periods: 27
rules_path: /etc/jyotish/rules.json
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("JYOTISH_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				convey.So(cfg.DashaPeriods, convey.ShouldEqual, 27)
				convey.So(cfg.RulesPath, convey.ShouldEqual, "/etc/jyotish/rules.json")
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
dasha_periods: 27
max_rules: 100
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("JYOTISH_CONFIG", tmpFile)
			_ = os.Setenv("JYOTISH_ADDR", ":8080") // This should override the file
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")     // Overridden by env
				convey.So(cfg.DashaPeriods, convey.ShouldEqual, 27)  // From file
				convey.So(cfg.MaxRules, convey.ShouldEqual, 100)     // From file
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			invalidYaml := `invalid: yaml: content: [`
			tmpFile := createTempConfigFile(invalidYaml)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("JYOTISH_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("JYOTISH_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("JYOTISH_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with a negative dasha period count", func() {
			_ = os.Setenv("JYOTISH_DASHA_PERIODS", "-1")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "dasha_periods")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with partial YAML file", func() {
			yamlContent := `
addr: ":9090"
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("JYOTISH_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should merge with defaults for missing fields", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")    // From file
				convey.So(cfg.DashaPeriods, convey.ShouldEqual, 9)  // From defaults
				convey.So(cfg.MaxRules, convey.ShouldEqual, 500)    // From defaults
			})
		})

		convey.Convey("When loading config with a zero queue size", func() {
			_ = os.Setenv("JYOTISH_QUEUE_SIZE", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "queue_size")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading batch pipeline settings from env", func() {
			_ = os.Setenv("JYOTISH_WORKER_COUNT", "6")
			_ = os.Setenv("JYOTISH_CACHE_SIZE", "64")
			_ = os.Setenv("JYOTISH_CACHE_TTL_SECONDS", "120")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then the pipeline fields should be set", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.WorkerCount, convey.ShouldEqual, 6)
				convey.So(cfg.CacheSize, convey.ShouldEqual, 64)
				convey.So(cfg.CacheTTLSeconds, convey.ShouldEqual, 120)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("JYOTISH_DASHA_PERIODS", "not_a_number")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"JYOTISH_CONFIG",
		"JYOTISH_ADDR",
		"JYOTISH_LOG_LEVEL",
		"JYOTISH_AYANAMSA",
		"JYOTISH_DASHA_PERIODS",
		"JYOTISH_RULES_PATH",
		"JYOTISH_MAX_RULES",
		"JYOTISH_WORKER_COUNT",
		"JYOTISH_QUEUE_SIZE",
		"JYOTISH_CACHE_SIZE",
		"JYOTISH_CACHE_TTL_SECONDS",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "jyotish-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
