// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okian/jyotish/internal/adapters/cache"
	"github.com/okian/jyotish/internal/adapters/ephemeris/approx"
	"github.com/okian/jyotish/internal/adapters/mq/queue"
	"github.com/okian/jyotish/internal/adapters/mq/worker"
	"github.com/okian/jyotish/internal/adapters/rulestore"
	"github.com/okian/jyotish/internal/domain/chart"
	"github.com/okian/jyotish/internal/domain/dasha"
	"github.com/okian/jyotish/internal/domain/derived"
	"github.com/okian/jyotish/internal/domain/divisional"
	"github.com/okian/jyotish/internal/domain/ephemeris"
	"github.com/okian/jyotish/internal/domain/matching"
	"github.com/okian/jyotish/internal/domain/model"
	"github.com/okian/jyotish/internal/domain/nakshatra"
	"github.com/okian/jyotish/internal/domain/rules"
	"github.com/okian/jyotish/internal/domain/transit"
	"github.com/okian/jyotish/pkg/logger"
	"github.com/okian/jyotish/pkg/metrics"
)

// Service implements the API dependencies for the astrology system.
type Service struct {
	mu sync.RWMutex

	// Core components
	adapter    ephemeris.Adapter
	builder    *chart.Builder
	registry   *divisional.Registry
	calculator *transit.Calculator
	engine     *rules.Engine
	ruleStore  *rulestore.Store

	// Batch pipeline and cache
	jobQueue *queue.InMemoryQueue
	pool     *worker.Pool
	bundles  *cache.Store

	// Configuration
	ayanamsa     string
	dashaPeriods int
	chartTypes   []string
	rulesPath    string
	maxRules     int
	workerCount  int
	queueSize    int
	cacheSize    int
	cacheTTL     time.Duration

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithEphemerisAdapter injects an ephemeris adapter. Defaults to the
// built-in mean-motion adapter.
func WithEphemerisAdapter(adapter ephemeris.Adapter) Option {
	return func(s *Service) {
		if adapter != nil {
			s.adapter = adapter
		}
	}
}

// WithAyanamsa selects the sidereal correction model by name.
func WithAyanamsa(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.ayanamsa = name
		}
	}
}

// WithDashaPeriods sets how many full Mahadashas follow the balance period.
func WithDashaPeriods(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.dashaPeriods = count
		}
	}
}

// WithDivisionalCharts sets which harmonic charts are computed per kundali.
func WithDivisionalCharts(types []string) Option {
	return func(s *Service) {
		if len(types) > 0 {
			s.chartTypes = types
		}
	}
}

// WithRulesPath points the service at a JSON rule definitions file loaded
// on Start.
func WithRulesPath(path string) Option {
	return func(s *Service) {
		s.rulesPath = path
	}
}

// WithMaxRules caps the rule count per evaluation.
func WithMaxRules(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxRules = n
		}
	}
}

// WithWorkerCount sets the batch computation pool size. Zero lets the
// pool size itself off the CPU count.
func WithWorkerCount(n int) Option {
	return func(s *Service) {
		if n >= 0 {
			s.workerCount = n
		}
	}
}

// WithQueueSize bounds the batch job queue.
func WithQueueSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.queueSize = n
		}
	}
}

// WithCacheSize bounds the computed bundle cache.
func WithCacheSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.cacheSize = n
		}
	}
}

// WithCacheTTL sets how long cached bundles stay valid.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.cacheTTL = ttl
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		ayanamsa:     "lahiri",
		dashaPeriods: dasha.DefaultPeriods,
		chartTypes:   []string{"D9", "D10"},
		maxRules:     500,
		queueSize:    4096,
		cacheSize:    1024,
		cacheTTL:     time.Hour,
		logger:       nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components and loads rule definitions.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting jyotish service...")

	if s.adapter == nil {
		s.adapter = approx.New()
		s.logger.Info(ctx, "using built-in approximate ephemeris adapter")
	}

	s.builder = chart.New(s.adapter,
		chart.WithAyanamsa(s.ayanamsa),
		chart.WithLogger(s.logger),
	)
	s.registry = divisional.NewRegistry()
	s.calculator = transit.New(s.adapter)
	s.engine = rules.NewEngine(rules.WithLogger(s.logger))
	s.ruleStore = rulestore.New(
		rulestore.WithLogger(s.logger),
		rulestore.WithMaxRules(s.maxRules),
	)

	if s.rulesPath != "" {
		if err := s.ruleStore.LoadFile(ctx, s.rulesPath); err != nil {
			return fmt.Errorf("loading rules from %s: %w", s.rulesPath, err)
		}
	}

	s.bundles = cache.New(
		cache.WithMaxEntries(s.cacheSize),
		cache.WithTTL(s.cacheTTL),
		cache.WithLogger(s.logger),
	)

	s.jobQueue = queue.NewInMemoryQueue(
		queue.WithCapacity(s.queueSize),
		queue.WithBufferSize(s.queueSize),
	)
	s.pool = worker.NewPool(s.workerCount, s.jobQueue, s)
	s.pool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "jyotish service started",
		logger.String("ayanamsa", s.ayanamsa),
		logger.Int("dashaPeriods", s.dashaPeriods),
		logger.Int("rules", s.ruleStore.Count(ctx)),
		logger.Int("workers", s.pool.Size()),
	)

	return nil
}

// Stop shuts the service down, draining the batch pipeline.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	if s.jobQueue != nil {
		_ = s.jobQueue.Close()
	}
	if s.pool != nil {
		s.pool.Stop()
	}

	s.started = false
	s.logger.Info(context.Background(), "jyotish service stopped")
}

// Kundali computes the full natal bundle for a birth input: D1 chart,
// divisional charts, derived facts, Avakahada, the Vimshottari timeline,
// and the current Sade Sati status.
func (s *Service) Kundali(ctx context.Context, in chart.BirthInput) (model.KundaliBundle, error) {
	start := time.Now()

	key := s.cacheKey(in)
	if s.bundles != nil {
		if cached, err := s.bundles.Get(ctx, key); err == nil {
			return cached, nil
		}
	}

	natal, err := s.builder.Build(ctx, in)
	if err != nil {
		metrics.RecordChartBuildError()
		return model.KundaliBundle{}, err
	}
	metrics.RecordChartBuilt()
	metrics.RecordChartBuildDuration(float64(time.Since(start).Milliseconds()))

	result := model.KundaliBundle{
		Chart:      natal,
		Divisional: make(map[model.ChartType]model.DivisionalChart, len(s.chartTypes)),
		Derived:    derived.Build(natal),
	}

	for _, name := range s.chartTypes {
		dc, err := s.registry.Build(model.ChartType(name), natal)
		if err != nil {
			s.logger.Warn(ctx, "skipping unsupported divisional chart",
				logger.String("chart_type", name), logger.Error(err))
			continue
		}
		result.Divisional[dc.Type] = dc
		metrics.RecordDivisionalChart(name)
	}

	if moon, err := natal.Planet(model.Moon); err == nil {
		ava, err := matching.AvakahadaFor(moon.Sign, moon.Degree)
		if err == nil {
			result.Avakahada = &ava
		}

		birthUTC, err := birthInstant(in)
		if err == nil {
			result.Dashas = dasha.Timeline(moon.AbsoluteDegree(), birthUTC, s.dashaPeriods)
			metrics.RecordDashaTimeline()
		}

		if now, err := s.calculator.Chart(ctx, time.Now()); err == nil {
			if saturn, ok := now.Planets[model.Saturn]; ok {
				status := dasha.SadeSati(moon.Sign, saturn.Sign)
				result.SadeSati = &status
			}
		}
	}

	if s.bundles != nil {
		s.bundles.Put(ctx, key, result)
	}

	return result, nil
}

// cacheKey identifies a bundle by its birth input plus every service
// setting that feeds into the computation.
func (s *Service) cacheKey(in chart.BirthInput) string {
	return fmt.Sprintf("%s|%s|%.6f|%.6f|%s|%s|%d|%s",
		in.BirthDate, in.BirthTime, in.Latitude, in.Longitude, in.Timezone,
		s.ayanamsa, s.dashaPeriods, strings.Join(s.chartTypes, ","),
	)
}

// KundaliBatch fans a set of birth inputs out across the worker pool and
// returns one result per input in the original order.
func (s *Service) KundaliBatch(ctx context.Context, inputs []chart.BirthInput) ([]queue.Result, error) {
	if len(inputs) == 0 {
		return []queue.Result{}, nil
	}

	reply := make(chan queue.Result, len(inputs))
	for i := range inputs {
		job := queue.Job{ID: uuid.New(), Index: i, Input: inputs[i], Reply: reply}
		if !s.jobQueue.Enqueue(ctx, job) {
			return nil, fmt.Errorf("%w: job %d rejected", queue.ErrQueueFull, i)
		}
	}

	out := make([]queue.Result, len(inputs))
	for range inputs {
		select {
		case res := <-reply:
			out[res.Index] = res
		case <-ctx.Done():
			return nil, fmt.Errorf("batch aborted: %w", ctx.Err())
		}
	}
	return out, nil
}

// birthInstant parses the birth date and time into a UTC instant for dasha
// arithmetic. Timezone handling mirrors the chart builder: unknown zones
// fall back to UTC.
func birthInstant(in chart.BirthInput) (time.Time, error) {
	d, err := time.Parse("2006-01-02", in.BirthDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: birth date %q", chart.ErrInvalidInput, in.BirthDate)
	}
	layout := "15:04:05"
	if len(in.BirthTime) == len("15:04") {
		layout = "15:04"
	}
	t, err := time.Parse(layout, in.BirthTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: birth time %q", chart.ErrInvalidInput, in.BirthTime)
	}
	loc, err := time.LoadLocation(in.Timezone)
	if err != nil {
		loc = time.UTC
	}
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc).UTC(), nil
}

// Match builds both charts and scores their compatibility on the Ashta
// Koot scale.
func (s *Service) Match(ctx context.Context, boy, girl chart.BirthInput) (model.CompatibilityScore, error) {
	boyChart, err := s.builder.Build(ctx, boy)
	if err != nil {
		return model.CompatibilityScore{}, fmt.Errorf("boy chart: %w", err)
	}
	girlChart, err := s.builder.Build(ctx, girl)
	if err != nil {
		return model.CompatibilityScore{}, fmt.Errorf("girl chart: %w", err)
	}

	boyMoon, err := boyChart.Planet(model.Moon)
	if err != nil {
		return model.CompatibilityScore{}, fmt.Errorf("boy chart: %w", err)
	}
	girlMoon, err := girlChart.Planet(model.Moon)
	if err != nil {
		return model.CompatibilityScore{}, fmt.Errorf("girl chart: %w", err)
	}

	score, err := matching.Score(boyMoon.Sign, boyMoon.Degree, girlMoon.Sign, girlMoon.Degree)
	if err != nil {
		return model.CompatibilityScore{}, err
	}
	metrics.RecordCompatibilityScore(score.TotalScore)
	return score, nil
}

// Transit computes sidereal planetary positions at the given instant.
func (s *Service) Transit(ctx context.Context, at time.Time) (model.TransitChart, error) {
	tc, err := s.calculator.Chart(ctx, at)
	if err != nil {
		metrics.RecordAdapterError()
		return model.TransitChart{}, err
	}
	metrics.RecordTransitComputation()
	return tc, nil
}

// Gochar computes a transit chart and projects it onto a natal chart.
func (s *Service) Gochar(ctx context.Context, at time.Time, natal chart.BirthInput) (model.Gochar, error) {
	natalChart, err := s.builder.Build(ctx, natal)
	if err != nil {
		return model.Gochar{}, err
	}
	tc, err := s.Transit(ctx, at)
	if err != nil {
		return model.Gochar{}, err
	}
	return transit.Gochar(natalChart, tc), nil
}

// EvaluateRules builds a chart, derives its facts, and evaluates the
// stored rule set plus any inline rules against them.
func (s *Service) EvaluateRules(ctx context.Context, in chart.BirthInput, inline []rules.Rule) ([]rules.MatchResult, error) {
	natal, err := s.builder.Build(ctx, in)
	if err != nil {
		return nil, err
	}

	ruleset := s.ruleStore.Rules(ctx)
	ruleset = append(ruleset, inline...)
	if len(ruleset) > s.maxRules {
		return nil, fmt.Errorf("%w: %d rules exceeds cap of %d", rules.ErrInvalidCondition, len(ruleset), s.maxRules)
	}

	results := s.engine.Evaluate(ctx, natal, derived.Build(natal), ruleset)
	metrics.RecordRuleEvaluation(len(results))
	return results, nil
}

// AvakahadaFor exposes the per-person attribute derivation for callers
// that already hold a Moon placement.
func (s *Service) AvakahadaFor(_ context.Context, sign model.ZodiacSign, degree float64) (model.Avakahada, error) {
	return matching.AvakahadaFor(sign, degree)
}

// NakshatraAt resolves an absolute sidereal degree to its nakshatra.
func (s *Service) NakshatraAt(_ context.Context, absoluteDegree float64) nakshatra.Position {
	return nakshatra.Resolve(absoluteDegree)
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":      s.started,
		"ayanamsa":     s.ayanamsa,
		"dashaPeriods": s.dashaPeriods,
		"chartTypes":   s.chartTypes,
	}

	if s.started {
		ctx := context.Background()
		stats["rules"] = s.ruleStore.Count(ctx)
		stats["workers"] = s.pool.Size()
		stats["queueLength"] = s.jobQueue.Len(ctx)
		stats["cachedBundles"] = s.bundles.Len(ctx)
	}

	return stats
}
