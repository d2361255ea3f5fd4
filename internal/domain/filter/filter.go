// Package filter narrows record collections by optional per-field selectors.
package filter

import (
	"slices"

	"github.com/okian/dnindex/internal/domain/model"
)

// Selector is an optional equality constraint. The zero value is unfiltered.
type Selector[T comparable] struct {
	value T
	set   bool
}

// Only builds a selector matching exactly v.
func Only[T comparable](v T) Selector[T] {
	return Selector[T]{value: v, set: true}
}

// Any returns the unfiltered selector.
func Any[T comparable]() Selector[T] {
	return Selector[T]{}
}

// Get returns the selected value and whether one is set.
func (s Selector[T]) Get() (T, bool) { return s.value, s.set }

// Match reports whether v passes the selector.
func (s Selector[T]) Match(v T) bool {
	return !s.set || s.value == v
}

// Spec is the set of filters applied to one query.
type Spec struct {
	// Companies filters by set membership; empty means every company.
	Companies    []string
	Year         Selector[int]
	PracticeArea Selector[string]
	Category     Selector[string]
	Role         Selector[string]
}

// IsEmpty reports whether the spec filters nothing.
func (s Spec) IsEmpty() bool {
	_, y := s.Year.Get()
	_, a := s.PracticeArea.Get()
	_, c := s.Category.Get()
	_, r := s.Role.Get()
	return len(s.Companies) == 0 && !y && !a && !c && !r
}

func (s Spec) matchCompany(company string) bool {
	return len(s.Companies) == 0 || slices.Contains(s.Companies, company)
}

// Initiatives returns the records matching spec. Role is ignored because
// initiatives carry no role. The input is never modified.
func Initiatives(recs []model.InitiativeRecord, spec Spec) []model.InitiativeRecord {
	out := make([]model.InitiativeRecord, 0, len(recs))
	for _, r := range recs {
		if !spec.matchCompany(r.Company) ||
			!spec.Year.Match(r.Year) ||
			!spec.PracticeArea.Match(r.PracticeArea) ||
			!spec.Category.Match(r.Category) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Composition returns the records matching spec. Practice area and category
// do not exist on composition records and are ignored.
func Composition(recs []model.CompositionRecord, spec Spec) []model.CompositionRecord {
	out := make([]model.CompositionRecord, 0, len(recs))
	for _, r := range recs {
		if !spec.matchCompany(r.Company) ||
			!spec.Year.Match(r.Year) ||
			!spec.Role.Match(r.Role) {
			continue
		}
		out = append(out, r)
	}
	return out
}
