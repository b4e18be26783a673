package rulestore

import "github.com/okian/jyotish/pkg/logger"

// Option applies a configuration option to the Store.
type Option func(*Store)

// WithLogger sets the logger used to report skipped rule definitions.
func WithLogger(log logger.Logger) Option {
	return func(s *Store) {
		s.log = log
	}
}

// WithMaxRules caps how many rules a single file may define. Zero means
// no cap.
func WithMaxRules(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.maxRules = n
		}
	}
}
