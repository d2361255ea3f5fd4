package config_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/okian/dnindex/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()

		convey.Convey("When loading config with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldResemble, config.New())
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("DNINDEX_ADDR", ":8080")
			_ = os.Setenv("DNINDEX_LOG_FORMAT", "json")
			_ = os.Setenv("DNINDEX_DEFAULT_STRATEGY", "weighted-count")
			_ = os.Setenv("DNINDEX_RELEVANT_CATEGORIES", "Gender, Age ,,Culture")
			_ = os.Setenv("DNINDEX_WEIGHTED_COUNT__DIVERSITY_WEIGHT", "2.5")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
				convey.So(cfg.DefaultStrategy, convey.ShouldEqual, "weighted-count")
				convey.So(cfg.RelevantCategories, convey.ShouldResemble, []string{"Gender", "Age", "Culture"})
				convey.So(cfg.WeightedCount.DiversityWeight, convey.ShouldEqual, 2.5)
				convey.So(cfg.WeightedCount.InitiativeWeight, convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			yamlContent := `
addr: ":9090"
initiatives_path: /srv/initiatives.csv
composition_path: /srv/composition.csv
board_role: CdA
relevant_categories: [Gender, Age]
weighted_count:
  initiative_weight: 2
  diversity_weight: 1
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("DNINDEX_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.InitiativesPath, convey.ShouldEqual, "/srv/initiatives.csv")
				convey.So(cfg.CompositionPath, convey.ShouldEqual, "/srv/composition.csv")
				convey.So(cfg.BoardRole, convey.ShouldEqual, "CdA")
				convey.So(cfg.RelevantCategories, convey.ShouldResemble, []string{"Gender", "Age"})
				convey.So(cfg.WeightedCount.InitiativeWeight, convey.ShouldEqual, 2)
				convey.So(cfg.WeightedCount.DiversityWeight, convey.ShouldEqual, 1)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			yamlContent := `
addr: ":9090"
board_role: CdA
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("DNINDEX_CONFIG", tmpFile)
			_ = os.Setenv("DNINDEX_ADDR", ":8080")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.BoardRole, convey.ShouldEqual, "CdA")
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			tmpFile := createTempConfigFile(`invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("DNINDEX_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			_ = os.Setenv("DNINDEX_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			_ = os.Setenv("DNINDEX_ADDR", "")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with an unknown strategy", func() {
			_ = os.Setenv("DNINDEX_DEFAULT_STRATEGY", "median")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading the metrics section from environment variables", func() {
			_ = os.Setenv("DNINDEX_METRICS__ENABLED", "false")
			_ = os.Setenv("DNINDEX_METRICS__REFRESH_INTERVAL", "30s")
			_ = os.Setenv("DNINDEX_METRICS__LATENCY_BUCKETS", "1, 10,100")
			_ = os.Setenv("DNINDEX_METRICS__LABELS__DEPLOY", "staging")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then durations, lists and label maps should be decoded", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Metrics.Enabled, convey.ShouldBeFalse)
				convey.So(cfg.Metrics.RefreshInterval, convey.ShouldEqual, 30*time.Second)
				convey.So(cfg.Metrics.LatencyBuckets, convey.ShouldResemble, []float64{1, 10, 100})
				convey.So(cfg.Metrics.Labels, convey.ShouldResemble, map[string]string{"deploy": "staging"})
				convey.So(cfg.Metrics.Namespace, convey.ShouldEqual, "dnindex")
			})
		})

		convey.Convey("When a weight is NaN in the environment", func() {
			_ = os.Setenv("DNINDEX_WEIGHTED_COUNT__INITIATIVE_WEIGHT", "NaN")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then validation should reject it", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with invalid numeric environment variables", func() {
			_ = os.Setenv("DNINDEX_WEIGHTED_COUNT__INITIATIVE_WEIGHT", "not_a_number")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

func clearConfigEnvVars() {
	envVars := []string{
		"DNINDEX_CONFIG",
		"DNINDEX_ADDR",
		"DNINDEX_LOG_FORMAT",
		"DNINDEX_DEFAULT_STRATEGY",
		"DNINDEX_RELEVANT_CATEGORIES",
		"DNINDEX_WEIGHTED_COUNT__INITIATIVE_WEIGHT",
		"DNINDEX_WEIGHTED_COUNT__DIVERSITY_WEIGHT",
		"DNINDEX_METRICS__ENABLED",
		"DNINDEX_METRICS__REFRESH_INTERVAL",
		"DNINDEX_METRICS__LATENCY_BUCKETS",
		"DNINDEX_METRICS__LABELS__DEPLOY",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "dnindex-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
