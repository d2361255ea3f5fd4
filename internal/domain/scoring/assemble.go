package scoring

import (
	"slices"
	"strings"

	"github.com/okian/dnindex/internal/domain/model"
)

// Columns are the per-company outputs joined into the final table.
// Nil columns are treated as empty.
type Columns struct {
	Initiative Scores
	Category   Scores
	Parity     Scores
	Composite  Scores
	Raw        Scores
}

// Assemble outer-joins the columns by company, fills gaps with 0 and sorts
// by composite desc, then company asc.
func Assemble(strategy string, cols Columns) []model.CompanyIndexResult {
	companies := make(map[string]struct{})
	for _, s := range []Scores{cols.Initiative, cols.Category, cols.Parity, cols.Composite, cols.Raw} {
		for company := range s {
			companies[company] = struct{}{}
		}
	}

	out := make([]model.CompanyIndexResult, 0, len(companies))
	for company := range companies {
		out = append(out, model.CompanyIndexResult{
			Company:           company,
			InitiativeIndex:   clamp(cols.Initiative[company]),
			CategoryIndex:     clamp(cols.Category[company]),
			GenderParityIndex: clamp(cols.Parity[company]),
			CompositeIndex:    clamp(cols.Composite[company]),
			Raw:               cols.Raw[company],
			Strategy:          strategy,
		})
	}
	Sort(out)
	return out
}

// Sort orders results by composite desc, then company asc.
func Sort(results []model.CompanyIndexResult) {
	slices.SortStableFunc(results, func(a, b model.CompanyIndexResult) int {
		switch {
		case a.CompositeIndex > b.CompositeIndex:
			return -1
		case a.CompositeIndex < b.CompositeIndex:
			return 1
		}
		return strings.Compare(a.Company, b.Company)
	})
}
