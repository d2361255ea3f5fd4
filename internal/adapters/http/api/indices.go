// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/dnindex/internal/domain/filter"
)

// IndicesDependencies defines the interface for ranked index queries.
type IndicesDependencies interface {
	Ranked(ctx context.Context, spec filter.Spec, strategy string) ([]Entry, error)
	DefaultStrategy() string
}

// IndicesHandler handles index table requests.
type IndicesHandler struct {
	deps IndicesDependencies
}

// NewIndicesHandler creates a new indices handler.
func NewIndicesHandler(deps IndicesDependencies) *IndicesHandler {
	return &IndicesHandler{deps: deps}
}

type indicesResponse struct {
	Strategy string  `json:"strategy"`
	Count    int     `json:"count"`
	Results  []Entry `json:"results"`
}

// HandleGetIndices handles GET /indices requests.
func (h *IndicesHandler) HandleGetIndices(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_indices"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	spec, err := parseSpec(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	strategy := q.Get(paramStrategy)
	if strategy == "" {
		strategy = h.deps.DefaultStrategy()
	}

	entries, err := h.deps.Ranked(r.Context(), spec, strategy)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, indicesResponse{Strategy: strategy, Count: len(entries), Results: entries})
}
