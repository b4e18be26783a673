package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):.
//  1. defaults (New())
//  2. file (YAML) if JYOTISH_CONFIG is set
//  3. env (prefix JYOTISH_)
func Load(_ context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("JYOTISH_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: JYOTISH_ADDR, JYOTISH_DASHA_PERIODS, ...
	// Map env keys like JYOTISH_DASHA_PERIODS -> dasha_periods (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("JYOTISH_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "jyotish_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Basic validation
	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if cfg.DashaPeriods < 0 {
		return nil, fmt.Errorf("%w: dasha_periods must not be negative", ErrInvalidConfig)
	}
	if cfg.MaxRules <= 0 {
		return nil, fmt.Errorf("%w: max_rules must be positive", ErrInvalidConfig)
	}
	if cfg.WorkerCount < 0 {
		return nil, fmt.Errorf("%w: worker_count must not be negative", ErrInvalidConfig)
	}
	if cfg.QueueSize <= 0 {
		return nil, fmt.Errorf("%w: queue_size must be positive", ErrInvalidConfig)
	}
	if cfg.CacheSize <= 0 {
		return nil, fmt.Errorf("%w: cache_size must be positive", ErrInvalidConfig)
	}
	if cfg.CacheTTLSeconds <= 0 {
		return nil, fmt.Errorf("%w: cache_ttl_seconds must be positive", ErrInvalidConfig)
	}
	return &cfg, nil
}
