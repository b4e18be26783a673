// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/okian/jyotish/internal/adapters/mq/queue"
	"github.com/okian/jyotish/internal/domain/chart"
	"github.com/okian/jyotish/internal/domain/model"
)

// Batch request size cap; anything larger should be split by the caller.
const maxBatchSize = 100

// batchRequest mirrors the wire schema for POST /kundali/batch.
type batchRequest struct {
	Births []birthRequest `json:"births"`
}

func (b batchRequest) validate() error {
	if len(b.Births) == 0 {
		return errors.New("missing births")
	}
	if len(b.Births) > maxBatchSize {
		return fmt.Errorf("too many births; max %d per batch", maxBatchSize)
	}
	for i, birth := range b.Births {
		if err := birth.validate(); err != nil {
			return fmt.Errorf("births[%d]: %w", i, err)
		}
	}
	return nil
}

// batchItemResponse is one per-input outcome. Exactly one of Bundle or
// Error is set.
type batchItemResponse struct {
	Bundle *model.KundaliBundle `json:"bundle,omitempty"`
	Error  string               `json:"error,omitempty"`
}

type batchResponse struct {
	Results []batchItemResponse `json:"results"`
}

// BatchHandler handles bulk natal chart requests.
type BatchHandler struct {
	deps Dependencies
}

// NewBatchHandler creates a new batch handler.
func NewBatchHandler(deps Dependencies) *BatchHandler {
	return &BatchHandler{deps: deps}
}

// HandlePostBatch handles POST /kundali/batch requests. Per-input
// failures land in the corresponding result slot rather than failing the
// whole batch.
func (h *BatchHandler) HandlePostBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	inputs := make([]chart.BirthInput, len(req.Births))
	for i, birth := range req.Births {
		inputs[i] = birth.input()
	}

	results, err := h.deps.KundaliBatch(r.Context(), inputs)
	if err != nil {
		if errors.Is(err, queue.ErrQueueFull) {
			writeError(w, http.StatusTooManyRequests, "backpressure", err)
			return
		}
		writeDomainError(w, err)
		return
	}

	resp := batchResponse{Results: make([]batchItemResponse, len(results))}
	for i := range results {
		if results[i].Err != nil {
			resp.Results[i] = batchItemResponse{Error: results[i].Err.Error()}
			continue
		}
		bundle := results[i].Bundle
		resp.Results[i] = batchItemResponse{Bundle: &bundle}
	}
	writeJSON(w, http.StatusOK, resp)
}
