// Package insights computes the descriptive aggregates shown next to the
// index: overview counters, initiative breakdowns and gender composition.
package insights

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/okian/dnindex/internal/domain/filter"
	"github.com/okian/dnindex/internal/domain/model"
	"github.com/okian/dnindex/internal/domain/percent"
)

// Count is one bucket of a breakdown.
type Count struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Overview summarizes the filtered initiative scope.
type Overview struct {
	Companies   int `json:"companies"`
	Initiatives int `json:"initiatives"`
	// InclusiveLanguagePercent is the share of in-scope companies with at
	// least one composition row flagged as using inclusive language.
	InclusiveLanguagePercent float64 `json:"inclusive_language_percent"`
	ByYear                   []Count `json:"by_year"`
}

// BuildOverview summarizes inits, the already filtered initiatives. comps is
// the full composition table; it is narrowed to the in-scope companies and
// to year when one is selected.
func BuildOverview(inits []model.InitiativeRecord, comps []model.CompositionRecord, year filter.Selector[int]) Overview {
	var companies []string
	seen := make(map[string]struct{})
	for _, r := range inits {
		if _, ok := seen[r.Company]; !ok {
			seen[r.Company] = struct{}{}
			companies = append(companies, r.Company)
		}
	}

	ov := Overview{
		Companies:   len(companies),
		Initiatives: len(inits),
		ByYear:      mustBreakdown(inits, filter.ColumnYear),
	}
	if len(companies) == 0 {
		return ov
	}

	scoped := filter.Composition(comps, filter.Spec{Companies: companies, Year: year})
	inclusive := make(map[string]struct{})
	for _, r := range scoped {
		if r.InclusiveLanguage == model.Yes {
			inclusive[r.Company] = struct{}{}
		}
	}
	ov.InclusiveLanguagePercent = float64(len(inclusive)) / float64(len(companies)) * 100
	return ov
}

// Breakdown counts initiatives per distinct value of column. Years sort
// numerically, other values lexically; blank values are skipped.
func Breakdown(inits []model.InitiativeRecord, column filter.Column) ([]Count, error) {
	counts := make(map[string]int)
	years := make(map[string]int)
	for _, r := range inits {
		var v string
		switch column {
		case filter.ColumnYear:
			v = strconv.Itoa(r.Year)
			years[v] = r.Year
		case filter.ColumnCompany:
			v = r.Company
		case filter.ColumnPracticeArea:
			v = r.PracticeArea
		case filter.ColumnCategory:
			v = r.Category
		default:
			return nil, fmt.Errorf("%w: %s.%s", filter.ErrUnknownColumn, filter.TableInitiatives, column)
		}
		if v == "" {
			continue
		}
		counts[v]++
	}

	out := make([]Count, 0, len(counts))
	for v, n := range counts {
		out = append(out, Count{Value: v, Count: n})
	}
	slices.SortFunc(out, func(a, b Count) int {
		if column == filter.ColumnYear {
			return years[a.Value] - years[b.Value]
		}
		return strings.Compare(a.Value, b.Value)
	})
	return out, nil
}

func mustBreakdown(inits []model.InitiativeRecord, column filter.Column) []Count {
	out, err := Breakdown(inits, column)
	if err != nil {
		return []Count{}
	}
	return out
}

// RoleShare is the mean gender split of one company and role.
type RoleShare struct {
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	PercentWomen *float64 `json:"percent_women,omitempty"`
	PercentMen   *float64 `json:"percent_men,omitempty"`
	Women        int      `json:"women"`
	Men          int      `json:"men"`
}

// GenderComposition aggregates the filtered composition table.
type GenderComposition struct {
	Rows       []RoleShare `json:"rows"`
	TotalWomen int         `json:"total_women"`
	TotalMen   int         `json:"total_men"`
}

// BuildGenderComposition averages percentages per (company, role) and sums
// head counts. Percentage columns are parsed and rescaled over comps as a whole.
func BuildGenderComposition(comps []model.CompositionRecord) GenderComposition {
	women := make([]model.Cell, len(comps))
	men := make([]model.Cell, len(comps))
	for i, r := range comps {
		women[i] = r.PercentWomen
		men[i] = r.PercentMen
	}
	pw := percent.ParseColumn(women)
	pm := percent.ParseColumn(men)

	type key struct{ company, role string }
	type group struct {
		women, men []percent.Value
		share      RoleShare
	}
	var order []key
	groups := make(map[key]*group)
	out := GenderComposition{Rows: []RoleShare{}}
	for i, r := range comps {
		k := key{r.Company, r.Role}
		g, ok := groups[k]
		if !ok {
			g = &group{share: RoleShare{Company: r.Company, Role: r.Role}}
			groups[k] = g
			order = append(order, k)
		}
		g.women = append(g.women, pw[i])
		g.men = append(g.men, pm[i])
		g.share.Women += r.Women
		g.share.Men += r.Men
		out.TotalWomen += r.Women
		out.TotalMen += r.Men
	}

	slices.SortFunc(order, func(a, b key) int {
		if c := strings.Compare(a.company, b.company); c != 0 {
			return c
		}
		return strings.Compare(a.role, b.role)
	})
	for _, k := range order {
		g := groups[k]
		if m, ok := percent.Mean(g.women); ok {
			g.share.PercentWomen = &m
		}
		if m, ok := percent.Mean(g.men); ok {
			g.share.PercentMen = &m
		}
		out.Rows = append(out.Rows, g.share)
	}
	return out
}
