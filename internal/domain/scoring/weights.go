package scoring

import (
	"fmt"
	"math"
)

// Weights configures the weighted-count strategy:
// raw = Initiative*n_initiatives + Diversity*(n_categories + n_practice_areas).
type Weights struct {
	Initiative float64
	Diversity  float64
}

// DefaultWeights returns 1 per initiative and 0.5 per distinct category or practice area.
func DefaultWeights() Weights {
	return Weights{Initiative: 1, Diversity: 0.5}
}

// Validate rejects non-finite or negative weights and an all-zero set.
func (w Weights) Validate() error {
	for _, v := range []float64{w.Initiative, w.Diversity} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite weight (initiative=%g, diversity=%g)", ErrInvalidWeights, w.Initiative, w.Diversity)
		}
	}
	if w.Initiative < 0 || w.Diversity < 0 {
		return fmt.Errorf("%w: negative weight (initiative=%g, diversity=%g)", ErrInvalidWeights, w.Initiative, w.Diversity)
	}
	if w.Initiative == 0 && w.Diversity == 0 {
		return fmt.Errorf("%w: all weights are zero", ErrInvalidWeights)
	}
	return nil
}
