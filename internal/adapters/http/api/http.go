// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/okian/jyotish/internal/adapters/mq/queue"
	"github.com/okian/jyotish/internal/domain/chart"
	"github.com/okian/jyotish/internal/domain/divisional"
	"github.com/okian/jyotish/internal/domain/ephemeris"
	"github.com/okian/jyotish/internal/domain/model"
	"github.com/okian/jyotish/internal/domain/rules"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Kundali computes the full natal bundle for a birth input.
	Kundali(ctx context.Context, in chart.BirthInput) (model.KundaliBundle, error)

	// KundaliBatch computes bundles for several birth inputs at once.
	KundaliBatch(ctx context.Context, inputs []chart.BirthInput) ([]queue.Result, error)

	// Match scores Ashta Koot compatibility between two birth inputs.
	Match(ctx context.Context, boy, girl chart.BirthInput) (model.CompatibilityScore, error)

	// Transit computes sidereal positions at an instant.
	Transit(ctx context.Context, at time.Time) (model.TransitChart, error)

	// Gochar projects a transit chart onto a natal chart.
	Gochar(ctx context.Context, at time.Time, natal chart.BirthInput) (model.Gochar, error)

	// EvaluateRules runs stored plus inline rules against a chart.
	EvaluateRules(ctx context.Context, in chart.BirthInput, inline []rules.Rule) ([]rules.MatchResult, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	kundaliHandler *KundaliHandler
	batchHandler   *BatchHandler
	matchHandler   *MatchHandler
	transitHandler *TransitHandler
	gocharHandler  *GocharHandler
	rulesHandler   *RulesHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(statsProvider),
		kundaliHandler: NewKundaliHandler(deps),
		batchHandler:   NewBatchHandler(deps),
		matchHandler:   NewMatchHandler(deps),
		transitHandler: NewTransitHandler(deps),
		gocharHandler:  NewGocharHandler(deps),
		rulesHandler:   NewRulesHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/kundali", MetricsMiddleware(s.kundaliHandler.HandlePostKundali, "kundali"))
	mux.HandleFunc("/kundali/batch", MetricsMiddleware(s.batchHandler.HandlePostBatch, "kundali_batch"))
	mux.HandleFunc("/match", MetricsMiddleware(s.matchHandler.HandlePostMatch, "match"))
	mux.HandleFunc("/transit", MetricsMiddleware(s.transitHandler.HandleGetTransit, "transit"))
	mux.HandleFunc("/gochar", MetricsMiddleware(s.gocharHandler.HandlePostGochar, "gochar"))
	mux.HandleFunc("/rules/evaluate", MetricsMiddleware(s.rulesHandler.HandleEvaluate, "rules_evaluate"))
}

// birthRequest mirrors the wire schema for a single birth input.
type birthRequest struct {
	BirthDate string  `json:"birth_date"`
	BirthTime string  `json:"birth_time"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

func (b birthRequest) validate() error {
	switch {
	case strings.TrimSpace(b.BirthDate) == "":
		return errors.New("missing birth_date")
	case strings.TrimSpace(b.BirthTime) == "":
		return errors.New("missing birth_time")
	case strings.TrimSpace(b.Timezone) == "":
		return errors.New("missing timezone")
	}
	return nil
}

func (b birthRequest) input() chart.BirthInput {
	return chart.BirthInput{
		BirthDate: b.BirthDate,
		BirthTime: b.BirthTime,
		Latitude:  b.Latitude,
		Longitude: b.Longitude,
		Timezone:  b.Timezone,
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeDomainError maps domain sentinel errors onto HTTP statuses so
// handlers stay free of per-error plumbing.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chart.ErrInvalidInput),
		errors.Is(err, model.ErrUnknownSign),
		errors.Is(err, model.ErrDegreeOutOfRange),
		errors.Is(err, divisional.ErrUnsupportedChart),
		errors.Is(err, rules.ErrInvalidCondition):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, model.ErrMissingPlanet):
		writeError(w, http.StatusUnprocessableEntity, "unprocessable", err)
	case errors.Is(err, ephemeris.ErrAdapterFailure):
		writeError(w, http.StatusBadGateway, "ephemeris_failure", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal", err)
	}
}
