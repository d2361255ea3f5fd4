// Package service provides the core business service that implements
// the dependencies required by the HTTP API and the CLI.
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/okian/dnindex/internal/domain/dataset"
	"github.com/okian/dnindex/internal/domain/filter"
	"github.com/okian/dnindex/internal/domain/insights"
	"github.com/okian/dnindex/internal/domain/model"
	"github.com/okian/dnindex/internal/domain/scoring"
	"github.com/okian/dnindex/internal/domain/types"
	"github.com/okian/dnindex/pkg/logger"
	"github.com/okian/dnindex/pkg/metrics"
)

// Service answers index and dashboard queries over one immutable snapshot.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	snapshot        *dataset.Snapshot
	engine          *scoring.Engine
	defaultStrategy string
	logger          logger.Logger

	engineOpts []scoring.Option
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithSnapshot sets the tables queries run against.
func WithSnapshot(s *dataset.Snapshot) Option {
	return func(svc *Service) {
		if s != nil {
			svc.snapshot = s
		}
	}
}

// WithEngineOptions configures the scoring engine.
func WithEngineOptions(opts ...scoring.Option) Option {
	return func(svc *Service) {
		svc.engineOpts = append(svc.engineOpts, opts...)
	}
}

// WithDefaultStrategy sets the strategy used when a query names none.
func WithDefaultStrategy(name string) Option {
	return func(svc *Service) {
		if name != "" {
			svc.defaultStrategy = name
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(svc *Service) {
		if l != nil {
			svc.logger = l
		}
	}
}

// New constructs a new Service. Without a snapshot every query runs over
// empty tables.
func New(opts ...Option) *Service {
	s := &Service{
		defaultStrategy: scoring.StrategyThreePillar,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.snapshot == nil {
		s.snapshot = dataset.New(nil, nil)
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	s.engine = scoring.NewEngine(s.engineOpts...)

	inits, comps := s.snapshot.Counts()
	metrics.UpdateRecordsLoaded(string(filter.TableInitiatives), inits)
	metrics.UpdateRecordsLoaded(string(filter.TableComposition), comps)
	return s
}

// DefaultStrategy returns the strategy name used when none is requested.
func (s *Service) DefaultStrategy() string { return s.defaultStrategy }

// FilterOptions lists the selectable values of a table column.
func (s *Service) FilterOptions(ctx context.Context, table filter.Table, column filter.Column) ([]filter.Option, error) {
	opts, err := filter.Options(table, column, s.snapshot.Initiatives(), s.snapshot.Composition())
	if err != nil {
		metrics.RecordErrorByComponent("service", "unknown_column")
		s.logger.Debug(ctx, "filter options rejected",
			logger.String("table", string(table)),
			logger.String("column", string(column)),
			logger.Error(err),
		)
		return nil, err
	}
	return opts, nil
}

// ComputeIndices filters both tables by spec and scores them with the named
// strategy; an empty name selects the default.
func (s *Service) ComputeIndices(ctx context.Context, spec filter.Spec, strategyName string) ([]model.CompanyIndexResult, error) {
	if strategyName == "" {
		strategyName = s.defaultStrategy
	}
	strategy, err := s.engine.Strategy(strategyName)
	if err != nil {
		metrics.RecordErrorByComponent("service", "unknown_strategy")
		return nil, err
	}

	id := uuid.NewString()
	start := time.Now()

	in := scoring.Input{
		Initiatives: filter.Initiatives(s.snapshot.Initiatives(), spec),
		Composition: filter.Composition(s.snapshot.Composition(), spec),
	}
	results := strategy.Score(in)

	s.observe(ctx, id, "indices", start, len(results),
		logger.String("strategy", strategy.Name()),
		logger.Int("initiatives", len(in.Initiatives)),
		logger.Int("composition", len(in.Composition)),
		logger.Bool("filtered", !spec.IsEmpty()),
	)
	metrics.RecordComputation(strategy.Name())
	return results, nil
}

// ComputeSubIndex scores one sub-index over the filtered tables.
func (s *Service) ComputeSubIndex(ctx context.Context, kind string, spec filter.Spec) ([]scoring.CompanyScore, error) {
	k, err := scoring.ParseKind(kind)
	if err != nil {
		metrics.RecordErrorByComponent("service", "unknown_subindex")
		return nil, err
	}

	id := uuid.NewString()
	start := time.Now()

	out, err := s.engine.SubIndex(k,
		filter.Initiatives(s.snapshot.Initiatives(), spec),
		filter.Composition(s.snapshot.Composition(), spec),
	)
	if err != nil {
		return nil, err
	}

	s.observe(ctx, id, "subindex", start, len(out), logger.String("kind", string(k)))
	metrics.RecordComputation(string(k))
	return out, nil
}

// Ranked computes the index table and numbers its rows from 1.
func (s *Service) Ranked(ctx context.Context, spec filter.Spec, strategyName string) ([]types.RankedEntry, error) {
	results, err := s.ComputeIndices(ctx, spec, strategyName)
	if err != nil {
		return nil, err
	}
	metrics.UpdateCompaniesRanked(len(results))
	return types.Rank(results), nil
}

// Overview summarizes the filtered initiative scope.
func (s *Service) Overview(ctx context.Context, spec filter.Spec) insights.Overview {
	start := time.Now()
	inits := filter.Initiatives(s.snapshot.Initiatives(), spec)
	ov := insights.BuildOverview(inits, s.snapshot.Composition(), spec.Year)
	s.observe(ctx, uuid.NewString(), "overview", start, ov.Companies)
	return ov
}

// Breakdown counts filtered initiatives per value of column.
func (s *Service) Breakdown(ctx context.Context, spec filter.Spec, column filter.Column) ([]insights.Count, error) {
	start := time.Now()
	out, err := insights.Breakdown(filter.Initiatives(s.snapshot.Initiatives(), spec), column)
	if err != nil {
		metrics.RecordErrorByComponent("service", "unknown_column")
		return nil, err
	}
	s.observe(ctx, uuid.NewString(), "breakdown", start, len(out), logger.String("column", string(column)))
	return out, nil
}

// GenderComposition aggregates the filtered composition table.
func (s *Service) GenderComposition(ctx context.Context, spec filter.Spec) insights.GenderComposition {
	start := time.Now()
	gc := insights.BuildGenderComposition(filter.Composition(s.snapshot.Composition(), spec))
	s.observe(ctx, uuid.NewString(), "composition", start, len(gc.Rows))
	return gc
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats(_ context.Context) map[string]interface{} {
	inits, comps := s.snapshot.Counts()
	w := s.engine.Weights()

	return map[string]interface{}{
		"initiatives":        inits,
		"composition":        comps,
		"source":             s.snapshot.Source(),
		"loadedAt":           s.snapshot.LoadedAt().UTC().Format(time.RFC3339),
		"defaultStrategy":    s.defaultStrategy,
		"strategies":         scoring.Strategies(),
		"boardRole":          s.engine.BoardRole(),
		"relevantCategories": s.engine.RelevantCategories(),
		"weights": map[string]float64{
			"initiative": w.Initiative,
			"diversity":  w.Diversity,
		},
	}
}

// observe records latency and logs one finished computation.
func (s *Service) observe(ctx context.Context, id, op string, start time.Time, rows int, fields ...logger.Field) {
	elapsed := time.Since(start)
	metrics.RecordComputationLatency(op, float64(elapsed.Microseconds())/1000)
	if rows == 0 {
		metrics.RecordEmptyScope(op)
	}

	fields = append(fields,
		logger.String("computationID", id),
		logger.String("operation", op),
		logger.Int("rows", rows),
		logger.Duration("elapsed", elapsed),
	)
	s.logger.Debug(ctx, "computation finished", fields...)
}
