// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - Load layers a YAML file and environment variables on top of New().
// - Errors are wrapped with this package's sentinel kinds.
package config

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/okian/dnindex/internal/domain/scoring"
	"github.com/okian/dnindex/pkg/metrics"
)

// metricName matches the characters Prometheus accepts in name segments and label names.
var metricName = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`) //nolint:gochecknoglobals // compiled once

// WeightedCount holds the coefficients of the weighted-count strategy.
type WeightedCount struct {
	InitiativeWeight float64 `koanf:"initiative_weight"`
	DiversityWeight  float64 `koanf:"diversity_weight"`
}

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects text or json log output.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// InitiativesPath and CompositionPath point at the source CSV files.
	InitiativesPath string `koanf:"initiatives_path"`
	CompositionPath string `koanf:"composition_path"`

	// DefaultStrategy is used when a request names none.
	DefaultStrategy string `koanf:"default_strategy"`

	// BoardRole is the role value read by the gender-parity sub-index.
	BoardRole string `koanf:"board_role"`

	// RelevantCategories is the category set used by category coverage.
	RelevantCategories []string `koanf:"relevant_categories"`

	WeightedCount WeightedCount `koanf:"weighted_count"`

	Metrics Metrics `koanf:"metrics"`
}

// Metrics configures the Prometheus collectors exposed on /healthz.
type Metrics struct {
	// Enabled switches recording and the system metrics loop on or off.
	Enabled bool `koanf:"enabled"`

	// Namespace, Subsystem and Prefix form metric names:
	// <namespace>_<subsystem>_<prefix>_<name>.
	Namespace string `koanf:"namespace"`
	Subsystem string `koanf:"subsystem"`
	Prefix    string `koanf:"prefix"`

	// RefreshInterval paces memory, goroutine and GC sampling, e.g. "30s".
	RefreshInterval time.Duration `koanf:"refresh_interval"`

	// LatencyBuckets are the millisecond histogram buckets, strictly increasing.
	LatencyBuckets []float64 `koanf:"latency_buckets"`

	// Labels are constant labels added to every series.
	Labels map[string]string `koanf:"labels"`
}

// New creates a Config populated with defaults.
func New() *Config {
	w := scoring.DefaultWeights()
	return &Config{
		LogLevel:           "info",
		LogFormat:          "text",
		Addr:               ":9080",
		InitiativesPath:    "data/initiatives.csv",
		CompositionPath:    "data/composition.csv",
		DefaultStrategy:    scoring.StrategyThreePillar,
		BoardRole:          scoring.DefaultBoardRole,
		RelevantCategories: append([]string(nil), scoring.DefaultRelevantCategories...),
		WeightedCount: WeightedCount{
			InitiativeWeight: w.Initiative,
			DiversityWeight:  w.Diversity,
		},
		Metrics: Metrics{
			Enabled:         true,
			Namespace:       metrics.DefaultNamespace,
			Subsystem:       metrics.DefaultSubsystem,
			RefreshInterval: metrics.DefaultRefreshInterval,
			LatencyBuckets:  metrics.DefaultLatencyBuckets(),
		},
	}
}

// MetricsOptions converts the metrics section to manager options.
func (c *Config) MetricsOptions() []metrics.Option {
	return []metrics.Option{
		metrics.WithMetricsEnabled(c.Metrics.Enabled),
		metrics.WithNamespace(c.Metrics.Namespace),
		metrics.WithSubsystem(c.Metrics.Subsystem),
		metrics.WithMetricPrefix(c.Metrics.Prefix),
		metrics.WithRefreshInterval(c.Metrics.RefreshInterval),
		metrics.WithHistogramBuckets(c.Metrics.LatencyBuckets),
		metrics.WithCustomLabels(c.Metrics.Labels),
	}
}

// Weights converts the weighted-count section to scoring weights.
func (c *Config) Weights() scoring.Weights {
	return scoring.Weights{
		Initiative: c.WeightedCount.InitiativeWeight,
		Diversity:  c.WeightedCount.DiversityWeight,
	}
}

// Validate checks that the configuration can drive the service.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	if _, err := scoring.NewEngine().Strategy(c.DefaultStrategy); err != nil {
		return fmt.Errorf("%w: default_strategy: %w", ErrInvalidConfig, err)
	}
	if strings.TrimSpace(c.BoardRole) == "" {
		return fmt.Errorf("%w: board_role must not be empty", ErrInvalidConfig)
	}
	if len(c.RelevantCategories) == 0 {
		return fmt.Errorf("%w: relevant_categories must not be empty", ErrInvalidConfig)
	}
	if err := c.Weights().Validate(); err != nil {
		return fmt.Errorf("%w: weighted_count: %w", ErrInvalidConfig, err)
	}
	if err := c.Metrics.validate(); err != nil {
		return fmt.Errorf("%w: metrics: %w", ErrInvalidConfig, err)
	}
	return nil
}

// validate rejects values the Prometheus client would panic on at registration.
func (m Metrics) validate() error {
	if m.RefreshInterval <= 0 {
		return fmt.Errorf("refresh_interval must be positive, got %s", m.RefreshInterval)
	}
	for key, v := range map[string]string{"namespace": m.Namespace, "subsystem": m.Subsystem, "prefix": m.Prefix} {
		if v != "" && !metricName.MatchString(v) {
			return fmt.Errorf("%s %q is not a valid metric name segment", key, v)
		}
	}
	for i, b := range m.LatencyBuckets {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return fmt.Errorf("latency_buckets[%d] is not finite", i)
		}
		if i > 0 && b <= m.LatencyBuckets[i-1] {
			return fmt.Errorf("latency_buckets must be strictly increasing at index %d", i)
		}
	}
	for name := range m.Labels {
		if !metricName.MatchString(name) || strings.HasPrefix(name, "__") {
			return fmt.Errorf("label name %q is invalid", name)
		}
	}
	return nil
}
