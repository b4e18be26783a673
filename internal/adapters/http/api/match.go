// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// matchRequest mirrors the wire schema for POST /match.
type matchRequest struct {
	Boy  birthRequest `json:"boy"`
	Girl birthRequest `json:"girl"`
}

func (m matchRequest) validate() error {
	if err := m.Boy.validate(); err != nil {
		return fmt.Errorf("boy: %w", err)
	}
	if err := m.Girl.validate(); err != nil {
		return fmt.Errorf("girl: %w", err)
	}
	return nil
}

// MatchHandler handles compatibility scoring requests.
type MatchHandler struct {
	deps Dependencies
}

// NewMatchHandler creates a new match handler.
func NewMatchHandler(deps Dependencies) *MatchHandler {
	return &MatchHandler{deps: deps}
}

// HandlePostMatch handles POST /match requests.
func (h *MatchHandler) HandlePostMatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	score, err := h.deps.Match(r.Context(), req.Boy.input(), req.Girl.input())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, score)
}
