// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...Option) initializer to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// Ayanamsa names the sidereal correction model. Only "lahiri" is
	// currently supported; unknown values fall back to it.
	Ayanamsa string `koanf:"ayanamsa"`

	// DashaPeriods sets how many full Mahadashas follow the balance
	// period in a Vimshottari timeline.
	DashaPeriods int `koanf:"dasha_periods"`

	// DivisionalCharts lists the harmonic charts computed per kundali.
	DivisionalCharts []string `koanf:"divisional_charts"`

	// RulesPath optionally points at a JSON rule definitions file.
	RulesPath string `koanf:"rules_path"`

	// MaxRules caps how many rules a single evaluation request may carry.
	MaxRules int `koanf:"max_rules"`

	// WorkerCount sets the batch computation pool size. Zero means one
	// worker per CPU core times a small multiplier.
	WorkerCount int `koanf:"worker_count"`

	// QueueSize bounds the batch job queue.
	QueueSize int `koanf:"queue_size"`

	// CacheSize bounds the computed bundle cache.
	CacheSize int `koanf:"cache_size"`

	// CacheTTLSeconds sets how long cached bundles stay valid.
	CacheTTLSeconds int `koanf:"cache_ttl_seconds"`
}

// New creates a Config with defaults.
func New() *Config {
	c := &Config{
		LogLevel:         "info",
		Addr:             ":9080",
		Ayanamsa:         "lahiri",
		DashaPeriods:     9,
		DivisionalCharts: []string{"D9", "D10"},
		RulesPath:        "",
		MaxRules:         500,
		WorkerCount:      0,
		QueueSize:        4096,
		CacheSize:        1024,
		CacheTTLSeconds:  3600,
	}
	return c
}
