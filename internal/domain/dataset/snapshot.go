// Package dataset holds the immutable source tables shared by every query.
package dataset

import (
	"slices"
	"time"

	"github.com/okian/dnindex/internal/domain/model"
)

// Snapshot is the pair of source tables loaded at startup. It is never
// modified after construction; accessors return copies.
type Snapshot struct {
	initiatives []model.InitiativeRecord
	composition []model.CompositionRecord
	loadedAt    time.Time
	source      string
}

// Option applies a configuration option to a Snapshot.
type Option func(*Snapshot)

// WithSource records where the tables came from, e.g. file paths.
func WithSource(source string) Option {
	return func(s *Snapshot) {
		s.source = source
	}
}

// WithLoadedAt overrides the load timestamp.
func WithLoadedAt(t time.Time) Option {
	return func(s *Snapshot) {
		if !t.IsZero() {
			s.loadedAt = t
		}
	}
}

// New copies both tables into a new Snapshot.
func New(inits []model.InitiativeRecord, comps []model.CompositionRecord, opts ...Option) *Snapshot {
	s := &Snapshot{
		initiatives: slices.Clone(inits),
		composition: slices.Clone(comps),
		loadedAt:    time.Now(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Initiatives returns a copy of the initiative table.
func (s *Snapshot) Initiatives() []model.InitiativeRecord {
	return slices.Clone(s.initiatives)
}

// Composition returns a copy of the composition table.
func (s *Snapshot) Composition() []model.CompositionRecord {
	return slices.Clone(s.composition)
}

// Counts returns the number of rows in each table.
func (s *Snapshot) Counts() (initiatives, composition int) {
	return len(s.initiatives), len(s.composition)
}

// LoadedAt returns when the snapshot was built.
func (s *Snapshot) LoadedAt() time.Time { return s.loadedAt }

// Source describes where the tables were read from.
func (s *Snapshot) Source() string { return s.source }
