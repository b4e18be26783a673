// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"net/http"
)

// KundaliHandler handles natal chart requests.
type KundaliHandler struct {
	deps Dependencies
}

// NewKundaliHandler creates a new kundali handler.
func NewKundaliHandler(deps Dependencies) *KundaliHandler {
	return &KundaliHandler{deps: deps}
}

// HandlePostKundali handles POST /kundali requests.
func (h *KundaliHandler) HandlePostKundali(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req birthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	bundle, err := h.deps.Kundali(r.Context(), req.input())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bundle)
}
