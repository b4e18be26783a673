// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/okian/jyotish/internal/domain/rules"
)

// inlineRule mirrors the wire schema for an ad-hoc rule submitted with an
// evaluation request. The condition is the same JSON tree the rule store
// loads from disk.
type inlineRule struct {
	Key       string          `json:"key"`
	Version   int             `json:"version"`
	Category  string          `json:"category"`
	Condition json.RawMessage `json:"condition"`
	Effect    rules.Effect    `json:"effect"`
}

// evaluateRequest mirrors the wire schema for POST /rules/evaluate.
type evaluateRequest struct {
	Birth birthRequest `json:"birth"`
	Rules []inlineRule `json:"rules,omitempty"`
}

// RulesHandler handles rule evaluation requests.
type RulesHandler struct {
	deps Dependencies
}

// NewRulesHandler creates a new rules handler.
func NewRulesHandler(deps Dependencies) *RulesHandler {
	return &RulesHandler{deps: deps}
}

// HandleEvaluate handles POST /rules/evaluate requests.
func (h *RulesHandler) HandleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req evaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := req.Birth.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	inline := make([]rules.Rule, 0, len(req.Rules))
	for _, def := range req.Rules {
		rule, err := def.build()
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", err)
			return
		}
		inline = append(inline, rule)
	}

	results, err := h.deps.EvaluateRules(r.Context(), req.Birth.input(), inline)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

func (d inlineRule) build() (rules.Rule, error) {
	if strings.TrimSpace(d.Key) == "" {
		return rules.Rule{}, fmt.Errorf("%w: rule key must not be empty", rules.ErrInvalidCondition)
	}
	cond, err := rules.ParseCondition(d.Condition)
	if err != nil {
		return rules.Rule{}, fmt.Errorf("rule %q: %w", d.Key, err)
	}
	return rules.Rule{
		ID:        uuid.New(),
		Key:       d.Key,
		Version:   d.Version,
		Category:  d.Category,
		Condition: cond,
		Effect:    d.Effect,
	}, nil
}
