// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// TransitHandler handles transit chart requests.
type TransitHandler struct {
	deps Dependencies
}

// NewTransitHandler creates a new transit handler.
func NewTransitHandler(deps Dependencies) *TransitHandler {
	return &TransitHandler{deps: deps}
}

// HandleGetTransit handles GET /transit requests. The optional "at" query
// parameter is an RFC3339 timestamp; it defaults to now.
func (h *TransitHandler) HandleGetTransit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	at := time.Now()
	if raw := r.URL.Query().Get("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", errors.New("invalid at; must be RFC3339"))
			return
		}
		at = parsed
	}

	tc, err := h.deps.Transit(r.Context(), at)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tc)
}

// gocharRequest mirrors the wire schema for POST /gochar.
type gocharRequest struct {
	At    string       `json:"at,omitempty"`
	Natal birthRequest `json:"natal"`
}

// GocharHandler handles transit-over-natal projection requests.
type GocharHandler struct {
	deps Dependencies
}

// NewGocharHandler creates a new gochar handler.
func NewGocharHandler(deps Dependencies) *GocharHandler {
	return &GocharHandler{deps: deps}
}

// HandlePostGochar handles POST /gochar requests.
func (h *GocharHandler) HandlePostGochar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req gocharRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := req.Natal.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	at := time.Now()
	if req.At != "" {
		parsed, err := time.Parse(time.RFC3339, req.At)
		if err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", errors.New("invalid at; must be RFC3339"))
			return
		}
		at = parsed
	}

	g, err := h.deps.Gochar(r.Context(), at, req.Natal.input())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}
