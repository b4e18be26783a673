package rules

import (
	"context"

	"github.com/google/uuid"

	"github.com/okian/jyotish/internal/domain/model"
	"github.com/okian/jyotish/pkg/logger"
)

// Effect is what a matched rule contributes to the downstream report.
type Effect struct {
	Category   string   `json:"category"`
	Impact     string   `json:"impact"`
	Tags       []string `json:"tags,omitempty"`
	Confidence float64  `json:"confidence"`
}

// Rule pairs a validated condition tree with its effect. Rules are
// immutable after construction.
type Rule struct {
	ID        uuid.UUID `json:"id"`
	Key       string    `json:"key"`
	Version   int       `json:"version"`
	Category  string    `json:"category"`
	Condition Condition `json:"-"`
	Effect    Effect    `json:"effect"`
}

// MatchResult is one matched rule with the triggers that satisfied it.
type MatchResult struct {
	Rule     Rule      `json:"rule"`
	Triggers []Trigger `json:"triggers"`
}

// Engine evaluates rule sets against charts. The zero value is usable;
// options attach a logger.
type Engine struct {
	log logger.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a structured logger for per-rule match reporting.
func WithLogger(log logger.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// NewEngine returns a rule engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate runs every rule against the chart and derived facts, returning
// one MatchResult per rule whose condition tree holds. Rules with a nil
// condition are skipped; nothing here ever returns an error, since a
// malformed or inapplicable rule is simply a non-match.
func (e *Engine) Evaluate(ctx context.Context, chart model.KundaliChart, derived model.DerivedAstrology, ruleset []Rule) []MatchResult {
	f := facts{chart: chart, derived: derived}

	out := make([]MatchResult, 0, len(ruleset))
	for _, r := range ruleset {
		if r.Condition == nil {
			continue
		}
		ok, triggers := r.Condition.evaluate(f)
		if !ok {
			continue
		}
		if e.log != nil {
			e.log.Debug(ctx, "rule matched",
				logger.String("rule_key", r.Key),
				logger.Int("triggers", len(triggers)),
			)
		}
		out = append(out, MatchResult{Rule: r, Triggers: triggers})
	}
	return out
}
