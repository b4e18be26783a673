// Package rulestore loads declarative rule definitions from JSON files
// into validated, in-memory rule sets.
package rulestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/okian/jyotish/internal/domain/rules"
	"github.com/okian/jyotish/pkg/logger"
)

// ruleDefinition is the JSON shape of one rule in a definitions file.
type ruleDefinition struct {
	Key       string          `json:"key"`
	Version   int             `json:"version"`
	Category  string          `json:"category"`
	Condition json.RawMessage `json:"condition"`
	Effect    rules.Effect    `json:"effect"`
}

// Store holds a validated rule set in memory. Loading replaces the set
// atomically; reads never block loads for long.
type Store struct {
	mu       sync.RWMutex
	rules    []rules.Rule
	log      logger.Logger
	maxRules int
}

// New creates an empty rule store.
func New(opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadFile reads a JSON definitions file and replaces the current rule
// set. Individual malformed rules are skipped with a warning rather than
// failing the whole file; an unreadable or unparseable file is an error.
func (s *Store) LoadFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadRules, err)
	}

	var defs []ruleDefinition
	if err := json.Unmarshal(data, &defs); err != nil {
		return fmt.Errorf("%w: %w", ErrLoadRules, err)
	}
	if s.maxRules > 0 && len(defs) > s.maxRules {
		return fmt.Errorf("%w: %d rules exceeds cap of %d", ErrLoadRules, len(defs), s.maxRules)
	}

	loaded := make([]rules.Rule, 0, len(defs))
	for i, def := range defs {
		rule, err := buildRule(def)
		if err != nil {
			if s.log != nil {
				s.log.Warn(ctx, "skipping malformed rule definition",
					logger.Int("index", i),
					logger.String("key", def.Key),
					logger.Error(err),
				)
			}
			continue
		}
		loaded = append(loaded, rule)
	}

	s.mu.Lock()
	s.rules = loaded
	s.mu.Unlock()

	if s.log != nil {
		s.log.Info(ctx, "rule definitions loaded",
			logger.String("path", path),
			logger.Int("loaded", len(loaded)),
			logger.Int("skipped", len(defs)-len(loaded)),
		)
	}
	return nil
}

func buildRule(def ruleDefinition) (rules.Rule, error) {
	if def.Key == "" {
		return rules.Rule{}, fmt.Errorf("%w: rule without a key", ErrLoadRules)
	}
	cond, err := rules.ParseCondition(def.Condition)
	if err != nil {
		return rules.Rule{}, err
	}
	return rules.Rule{
		ID:        uuid.New(),
		Key:       def.Key,
		Version:   def.Version,
		Category:  def.Category,
		Condition: cond,
		Effect:    def.Effect,
	}, nil
}

// Rules returns the current rule set. The returned slice is a copy and
// safe to hold across reloads.
func (s *Store) Rules(_ context.Context) []rules.Rule {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]rules.Rule, len(s.rules))
	copy(out, s.rules)
	return out
}

// Count returns the number of loaded rules.
func (s *Store) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rules)
}
