// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/okian/dnindex/internal/domain/filter"
	"github.com/okian/dnindex/internal/domain/insights"
)

// InsightsDependencies defines the interface for dashboard aggregates.
type InsightsDependencies interface {
	Overview(ctx context.Context, spec filter.Spec) insights.Overview
	Breakdown(ctx context.Context, spec filter.Spec, column filter.Column) ([]insights.Count, error)
	GenderComposition(ctx context.Context, spec filter.Spec) insights.GenderComposition
}

// InsightsHandler serves the overview, breakdown and composition views.
type InsightsHandler struct {
	deps InsightsDependencies
}

// NewInsightsHandler creates a new insights handler.
func NewInsightsHandler(deps InsightsDependencies) *InsightsHandler {
	return &InsightsHandler{deps: deps}
}

// HandleGetOverview handles GET /overview requests.
func (h *InsightsHandler) HandleGetOverview(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_overview"
	spec, ok := h.specFor(w, r, op)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Overview(r.Context(), spec))
}

// HandleGetBreakdown handles GET /breakdown?by=C requests.
func (h *InsightsHandler) HandleGetBreakdown(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_breakdown"
	spec, ok := h.specFor(w, r, op)
	if !ok {
		return
	}
	by := r.URL.Query().Get(paramBy)
	if by == "" {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, errors.New("missing by")))
		return
	}

	counts, err := h.deps.Breakdown(r.Context(), spec, filter.Column(by))
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

// HandleGetComposition handles GET /composition requests.
func (h *InsightsHandler) HandleGetComposition(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_composition"
	spec, ok := h.specFor(w, r, op)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, h.deps.GenderComposition(r.Context(), spec))
}

// specFor rejects non-GET requests and parses the filter, writing the error
// response itself when it returns false.
func (h *InsightsHandler) specFor(w http.ResponseWriter, r *http.Request, op string) (filter.Spec, bool) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return filter.Spec{}, false
	}
	spec, err := parseSpec(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return filter.Spec{}, false
	}
	return spec, true
}
