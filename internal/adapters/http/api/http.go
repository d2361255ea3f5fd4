// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/dnindex/internal/domain/filter"
	"github.com/okian/dnindex/internal/domain/scoring"
	"github.com/okian/dnindex/internal/domain/types"
	"github.com/okian/dnindex/pkg/logger"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	IndicesDependencies
	SubIndexDependencies
	OptionsDependencies
	InsightsDependencies
}

// Entry mirrors the read shape returned by index queries.
type Entry = types.RankedEntry

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler   *HealthHandler
	statsHandler    *StatsHandler
	indicesHandler  *IndicesHandler
	subIndexHandler *SubIndexHandler
	optionsHandler  *OptionsHandler
	insightsHandler *InsightsHandler

	logger logger.Logger
}

// ServerOption applies a configuration option to the Server.
type ServerOption func(*Server)

// WithLogger sets the logger used by the request middleware.
func WithLogger(l logger.Logger) ServerOption {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts ...ServerOption) *Server {
	s := &Server{
		healthHandler:   NewHealthHandler(),
		statsHandler:    NewStatsHandler(statsProvider),
		indicesHandler:  NewIndicesHandler(deps),
		subIndexHandler: NewSubIndexHandler(deps),
		optionsHandler:  NewOptionsHandler(deps),
		insightsHandler: NewInsightsHandler(deps),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	route := func(pattern, endpoint string, h http.HandlerFunc) {
		mux.HandleFunc(pattern, RequestIDMiddleware(MetricsMiddleware(h, endpoint), s.logger))
	}

	route("/healthz", "healthz", s.healthHandler.HandleHealth)
	route("/stats", "stats", s.statsHandler.HandleStats)
	route("/indices", "indices", s.indicesHandler.HandleGetIndices)
	route("/subindex/", "subindex", s.subIndexHandler.HandleGetSubIndex)
	route("/options", "options", s.optionsHandler.HandleGetOptions)
	route("/overview", "overview", s.insightsHandler.HandleGetOverview)
	route("/breakdown", "breakdown", s.insightsHandler.HandleGetBreakdown)
	route("/composition", "composition", s.insightsHandler.HandleGetComposition)
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

// writeDomainError maps caller mistakes to 400 and everything else to 500.
func writeDomainError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, scoring.ErrUnknownStrategy):
		writeError(w, http.StatusBadRequest, "unknown_strategy", WrapKind(op, ErrBadRequest, err))
	case errors.Is(err, scoring.ErrUnknownSubIndex):
		writeError(w, http.StatusBadRequest, "unknown_subindex", WrapKind(op, ErrBadRequest, err))
	case errors.Is(err, filter.ErrUnknownTable), errors.Is(err, filter.ErrUnknownColumn):
		writeError(w, http.StatusBadRequest, "unknown_column", WrapKind(op, ErrBadRequest, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}
