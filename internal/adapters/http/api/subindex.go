// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/dnindex/internal/domain/filter"
	"github.com/okian/dnindex/internal/domain/scoring"
)

// SubIndexDependencies defines the interface for sub-index queries.
type SubIndexDependencies interface {
	ComputeSubIndex(ctx context.Context, kind string, spec filter.Spec) ([]scoring.CompanyScore, error)
}

// SubIndexHandler handles sub-index requests.
type SubIndexHandler struct {
	deps SubIndexDependencies
}

// NewSubIndexHandler creates a new sub-index handler.
func NewSubIndexHandler(deps SubIndexDependencies) *SubIndexHandler {
	return &SubIndexHandler{deps: deps}
}

type subIndexResponse struct {
	Kind    string                 `json:"kind"`
	Results []scoring.CompanyScore `json:"results"`
}

// HandleGetSubIndex handles GET /subindex/{kind} requests.
func (h *SubIndexHandler) HandleGetSubIndex(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_subindex"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	kind := strings.TrimPrefix(r.URL.Path, "/subindex/")
	if kind == "" || strings.Contains(kind, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, errors.New("missing sub-index kind")))
		return
	}
	spec, err := parseSpec(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	scores, err := h.deps.ComputeSubIndex(r.Context(), kind, spec)
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, subIndexResponse{Kind: kind, Results: scores})
}
