package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/okian/dnindex/internal/domain/filter"
)

// Query parameter names.
const (
	paramCompany  = "company"
	paramYear     = "year"
	paramArea     = "area"
	paramCategory = "category"
	paramRole     = "role"
	paramStrategy = "strategy"
	paramTable    = "table"
	paramColumn   = "column"
	paramBy       = "by"
)

// parseSpec builds a filter from query parameters. Absent or blank
// parameters leave the field unfiltered.
func parseSpec(q url.Values) (filter.Spec, error) {
	var spec filter.Spec

	for _, c := range q[paramCompany] {
		if c = strings.TrimSpace(c); c != "" {
			spec.Companies = append(spec.Companies, c)
		}
	}

	if y := strings.TrimSpace(q.Get(paramYear)); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			return filter.Spec{}, fmt.Errorf("invalid year %q", y)
		}
		spec.Year = filter.Only(year)
	}

	spec.PracticeArea = stringSelector(q.Get(paramArea))
	spec.Category = stringSelector(q.Get(paramCategory))
	spec.Role = stringSelector(q.Get(paramRole))
	return spec, nil
}

func stringSelector(v string) filter.Selector[string] {
	if v = strings.TrimSpace(v); v == "" {
		return filter.Any[string]()
	}
	return filter.Only(v)
}
