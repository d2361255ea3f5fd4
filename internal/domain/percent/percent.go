// Package percent normalizes heterogeneous percentage values to the 0-100 range.
package percent

import (
	"math"
	"strconv"
	"strings"

	"github.com/okian/dnindex/internal/domain/model"
)

// fractionCeiling is the largest column maximum still read as a 0-1 fraction.
const fractionCeiling = 1.0

// Value is a parsed cell. Invalid values are missing, not zero.
type Value struct {
	Percent float64
	Valid   bool
}

// Parse reads a single cell. It does not rescale fractions; that decision
// belongs to the whole column, see ParseColumn.
func Parse(c model.Cell) (float64, bool) {
	if c.Numeric {
		if math.IsNaN(c.Value) || math.IsInf(c.Value, 0) {
			return 0, false
		}
		return c.Value, true
	}
	s := strings.TrimSpace(c.Text)
	s = strings.TrimSpace(strings.TrimSuffix(s, "%"))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseColumn parses every cell and, when the largest valid value is <= 1,
// multiplies the whole column by 100.
func ParseColumn(cells []model.Cell) []Value {
	out := make([]Value, len(cells))
	maxSeen := math.Inf(-1)
	for i, c := range cells {
		v, ok := Parse(c)
		out[i] = Value{Percent: v, Valid: ok}
		if ok && v > maxSeen {
			maxSeen = v
		}
	}
	if !math.IsInf(maxSeen, -1) && maxSeen <= fractionCeiling {
		for i := range out {
			if out[i].Valid {
				out[i].Percent *= 100
			}
		}
	}
	return out
}

// Failures counts the invalid values in a parsed column.
func Failures(values []Value) int {
	n := 0
	for _, v := range values {
		if !v.Valid {
			n++
		}
	}
	return n
}

// Mean averages the valid values. ok is false when none are valid.
func Mean(values []Value) (mean float64, ok bool) {
	var sum float64
	n := 0
	for _, v := range values {
		if v.Valid {
			sum += v.Percent
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}
