package sampledata

import (
	"fmt"
	"math"
	"strings"

	"github.com/okian/dnindex/internal/domain/model"
)

// maxIndex is the upper bound of every index value.
const maxIndex = 100

// Verify checks the invariants every ranked index table must satisfy:
// unique companies, values within [0,100] and never NaN, and ordering by
// composite descending then company ascending.
func Verify(results []model.CompanyIndexResult) error {
	seen := make(map[string]struct{}, len(results))
	for i, r := range results {
		if _, dup := seen[r.Company]; dup {
			return fmt.Errorf("%w: company %q listed twice", ErrVerification, r.Company)
		}
		seen[r.Company] = struct{}{}

		for name, v := range map[string]float64{
			"initiative_index":    r.InitiativeIndex,
			"category_index":      r.CategoryIndex,
			"gender_parity_index": r.GenderParityIndex,
			"composite_index":     r.CompositeIndex,
		} {
			if math.IsNaN(v) || v < 0 || v > maxIndex {
				return fmt.Errorf("%w: %s of %q out of range: %g", ErrVerification, name, r.Company, v)
			}
		}

		if i == 0 {
			continue
		}
		prev := results[i-1]
		if r.CompositeIndex > prev.CompositeIndex {
			return fmt.Errorf("%w: entry %d (%g) ranks above entry %d (%g)",
				ErrVerification, i, r.CompositeIndex, i-1, prev.CompositeIndex)
		}
		if r.CompositeIndex == prev.CompositeIndex && strings.Compare(prev.Company, r.Company) > 0 {
			return fmt.Errorf("%w: tie between %q and %q not ordered by name",
				ErrVerification, prev.Company, r.Company)
		}
	}
	return nil
}
