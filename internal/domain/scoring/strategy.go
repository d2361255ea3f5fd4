package scoring

import (
	"fmt"
	"strings"

	"github.com/okian/dnindex/internal/domain/model"
)

// Strategy names.
const (
	StrategyThreePillar   = "three-pillar"
	StrategyWeightedCount = "weighted-count"
)

// Input is the filtered pair of tables a strategy scores.
type Input struct {
	Initiatives []model.InitiativeRecord
	Composition []model.CompositionRecord
}

// Strategy combines sub-indices or raw counts into a ranked index table.
type Strategy interface {
	Name() string
	Score(in Input) []model.CompanyIndexResult
}

// Strategies lists the available strategy names.
func Strategies() []string {
	return []string{StrategyThreePillar, StrategyWeightedCount}
}

// Strategy resolves a strategy by name.
func (e *Engine) Strategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case StrategyThreePillar:
		return ThreePillar{engine: e}, nil
	case StrategyWeightedCount:
		return WeightedCount{weights: e.weights}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// ThreePillar averages the initiative, coverage and parity indices.
type ThreePillar struct {
	engine *Engine
}

// NewThreePillar creates the three-pillar strategy on top of e.
func NewThreePillar(e *Engine) ThreePillar { return ThreePillar{engine: e} }

func (ThreePillar) Name() string { return StrategyThreePillar }

func (s ThreePillar) Score(in Input) []model.CompanyIndexResult {
	cols := Columns{
		Initiative: s.engine.InitiativeCount(in.Initiatives),
		Category:   s.engine.CategoryCoverage(in.Initiatives),
		Parity:     s.engine.GenderParity(in.Composition),
	}
	cols.Composite = make(Scores)
	for _, part := range []Scores{cols.Initiative, cols.Category, cols.Parity} {
		for company := range part {
			cols.Composite[company] = (cols.Initiative[company] + cols.Category[company] + cols.Parity[company]) / 3
		}
	}
	return Assemble(StrategyThreePillar, cols)
}

// WeightedCount scores initiative volume and breadth, ignoring gender composition.
type WeightedCount struct {
	weights Weights
}

// NewWeightedCount creates the weighted-count strategy. Invalid weights fall back to defaults.
func NewWeightedCount(w Weights) WeightedCount {
	if w.Validate() != nil {
		w = DefaultWeights()
	}
	return WeightedCount{weights: w}
}

func (WeightedCount) Name() string { return StrategyWeightedCount }

func (s WeightedCount) Score(in Input) []model.CompanyIndexResult {
	type tally struct {
		initiatives int
		categories  map[string]struct{}
		areas       map[string]struct{}
	}
	tallies := make(map[string]*tally)
	for _, r := range in.Initiatives {
		t, ok := tallies[r.Company]
		if !ok {
			t = &tally{categories: make(map[string]struct{}), areas: make(map[string]struct{})}
			tallies[r.Company] = t
		}
		t.initiatives++
		if r.Category != "" {
			t.categories[r.Category] = struct{}{}
		}
		if r.PracticeArea != "" {
			t.areas[r.PracticeArea] = struct{}{}
		}
	}

	raw := make(Scores, len(tallies))
	for company, t := range tallies {
		raw[company] = s.weights.Initiative*float64(t.initiatives) +
			s.weights.Diversity*float64(len(t.categories)+len(t.areas))
	}
	return Assemble(StrategyWeightedCount, Columns{
		Composite: NormalizeMinMax(raw),
		Raw:       raw,
	})
}
