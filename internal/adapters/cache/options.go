// Package cache provides a bounded in-memory store for computed bundles.
package cache

import (
	"time"

	"github.com/okian/jyotish/pkg/logger"
)

// Option applies a configuration option to the Store.
type Option func(*Store)

// WithMaxEntries caps how many bundles the cache holds before evicting the
// oldest entry.
func WithMaxEntries(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxEntries = n
		}
	}
}

// WithTTL sets how long a cached bundle stays valid.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithLogger sets a custom logger for the store.
func WithLogger(log logger.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}
