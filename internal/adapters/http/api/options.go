// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/okian/dnindex/internal/domain/filter"
)

// OptionsDependencies defines the interface for filter option lookups.
type OptionsDependencies interface {
	FilterOptions(ctx context.Context, table filter.Table, column filter.Column) ([]filter.Option, error)
}

// OptionsHandler handles filter option requests.
type OptionsHandler struct {
	deps OptionsDependencies
}

// NewOptionsHandler creates a new options handler.
func NewOptionsHandler(deps OptionsDependencies) *OptionsHandler {
	return &OptionsHandler{deps: deps}
}

// HandleGetOptions handles GET /options?table=T&column=C requests.
func (h *OptionsHandler) HandleGetOptions(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_options"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	q := r.URL.Query()
	table := q.Get(paramTable)
	if table == "" {
		table = string(filter.TableInitiatives)
	}
	column := q.Get(paramColumn)
	if column == "" {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, errors.New("missing column")))
		return
	}

	opts, err := h.deps.FilterOptions(r.Context(), filter.Table(table), filter.Column(column))
	if err != nil {
		writeDomainError(w, op, err)
		return
	}
	writeJSON(w, http.StatusOK, opts)
}
