// Package scoring computes the per-company diversity and inclusion indices.
package scoring

import (
	"fmt"
	"slices"
	"strings"

	"github.com/okian/dnindex/internal/domain/model"
	"github.com/okian/dnindex/internal/domain/percent"
	"github.com/okian/dnindex/pkg/metrics"
)

// Default scoring configuration constants.
const (
	maxScoreValue    = 100
	parityMidpoint   = 50
	parityMultiplier = 2
	DefaultBoardRole = "Board"
)

// DefaultRelevantCategories is the category set used by the coverage index.
var DefaultRelevantCategories = []string{"Gender", "Age", "Disability", "Culture", "LGBTQI+"}

// Scores maps a company to a score.
type Scores map[string]float64

// CompanyScore is one row of a sub-index table.
type CompanyScore struct {
	Company string  `json:"company"`
	Score   float64 `json:"score"`
}

// Kind selects one of the sub-indices.
type Kind string

const (
	KindInitiativeCount  Kind = "initiative-count"
	KindCategoryCoverage Kind = "category-coverage"
	KindGenderParity     Kind = "gender-parity"
)

// ParseKind validates a sub-index name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindInitiativeCount, KindCategoryCoverage, KindGenderParity:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSubIndex, s)
	}
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithRelevantCategories replaces the category set used by the coverage index.
func WithRelevantCategories(categories []string) Option {
	return func(e *Engine) {
		set := make([]string, 0, len(categories))
		for _, c := range categories {
			c = strings.TrimSpace(c)
			if c != "" && !slices.Contains(set, c) {
				set = append(set, c)
			}
		}
		if len(set) > 0 {
			e.relevant = set
		}
	}
}

// WithBoardRole sets the role value that scopes the parity index.
func WithBoardRole(role string) Option {
	return func(e *Engine) {
		if role != "" {
			e.boardRole = role
		}
	}
}

// WithWeights sets the weighted-count strategy weights. Invalid weights are ignored.
func WithWeights(w Weights) Option {
	return func(e *Engine) {
		if w.Validate() == nil {
			e.weights = w
		}
	}
}

// Engine holds the scoring parameters. It keeps no state between calls and
// is safe for concurrent use.
type Engine struct {
	relevant  []string
	boardRole string
	weights   Weights
}

// NewEngine creates an engine with configuration options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		relevant:  slices.Clone(DefaultRelevantCategories),
		boardRole: DefaultBoardRole,
		weights:   DefaultWeights(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RelevantCategories returns a copy of the coverage category set.
func (e *Engine) RelevantCategories() []string { return slices.Clone(e.relevant) }

// BoardRole returns the role scoping the parity index.
func (e *Engine) BoardRole() string { return e.boardRole }

// Weights returns the weighted-count weights.
func (e *Engine) Weights() Weights { return e.weights }

// InitiativeCount counts initiatives per company and min-max normalizes the counts.
func (e *Engine) InitiativeCount(inits []model.InitiativeRecord) Scores {
	counts := make(Scores)
	for _, r := range inits {
		counts[r.Company]++
	}
	return NormalizeMinMax(counts)
}

// CategoryCoverage scores the share of relevant categories each company covers.
func (e *Engine) CategoryCoverage(inits []model.InitiativeRecord) Scores {
	present := make(map[string]map[string]struct{})
	for _, r := range inits {
		seen, ok := present[r.Company]
		if !ok {
			seen = make(map[string]struct{})
			present[r.Company] = seen
		}
		if slices.Contains(e.relevant, r.Category) {
			seen[r.Category] = struct{}{}
		}
	}
	out := make(Scores, len(present))
	for company, seen := range present {
		out[company] = float64(len(seen)) / float64(len(e.relevant)) * maxScoreValue
	}
	return out
}

// GenderParity scores how close the mean share of women on the board is to 50%.
// Companies without board rows are absent; companies whose board values are
// all unparseable score 0.
func (e *Engine) GenderParity(comps []model.CompositionRecord) Scores {
	var (
		companies []string
		cells     []model.Cell
	)
	for _, r := range comps {
		if r.Role != e.boardRole {
			continue
		}
		companies = append(companies, r.Company)
		cells = append(cells, r.PercentWomen)
	}
	values := percent.ParseColumn(cells)
	if n := percent.Failures(values); n > 0 {
		metrics.RecordPercentParseFailures(n)
	}

	grouped := make(map[string][]percent.Value)
	for i, company := range companies {
		grouped[company] = append(grouped[company], values[i])
	}
	out := make(Scores, len(grouped))
	for company, vs := range grouped {
		mean, ok := percent.Mean(vs)
		if !ok {
			out[company] = 0
			continue
		}
		out[company] = ParityScore(mean)
	}
	return out
}

// ParityScore maps a mean share of women to 100 - |50 - mean| * 2, clamped to [0,100].
func ParityScore(meanPercentWomen float64) float64 {
	d := meanPercentWomen - parityMidpoint
	if d < 0 {
		d = -d
	}
	return clamp(maxScoreValue - d*parityMultiplier)
}

// SubIndex computes one sub-index as a ranked table.
func (e *Engine) SubIndex(kind Kind, inits []model.InitiativeRecord, comps []model.CompositionRecord) ([]CompanyScore, error) {
	var s Scores
	switch kind {
	case KindInitiativeCount:
		s = e.InitiativeCount(inits)
	case KindCategoryCoverage:
		s = e.CategoryCoverage(inits)
	case KindGenderParity:
		s = e.GenderParity(comps)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSubIndex, kind)
	}
	return s.Ranked(), nil
}

// Ranked returns the scores sorted by score desc, then company asc.
func (s Scores) Ranked() []CompanyScore {
	out := make([]CompanyScore, 0, len(s))
	for company, v := range s {
		out = append(out, CompanyScore{Company: company, Score: v})
	}
	slices.SortFunc(out, func(a, b CompanyScore) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return strings.Compare(a.Company, b.Company)
	})
	return out
}
