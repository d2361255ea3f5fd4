// Command dnindex computes diversity and inclusion indices from survey
// tables and serves them over HTTP.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/okian/dnindex/internal/adapters/loader"
	service "github.com/okian/dnindex/internal/app"
	"github.com/okian/dnindex/internal/config"
	"github.com/okian/dnindex/internal/domain/scoring"
	"github.com/okian/dnindex/pkg/logger"
	"github.com/okian/dnindex/pkg/metrics"
)

// globalFlags override the matching config keys when set.
type globalFlags struct {
	initiatives string
	composition string
	logLevel    string
	logFormat   string
}

// cli carries state shared by every subcommand once the root has run.
type cli struct {
	flags   globalFlags
	cfg     *config.Config
	metrics *metrics.Manager
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "dnindex",
		Short: "Diversity and inclusion index calculator",
		Long: `dnindex reads a table of diversity initiatives and a table of workforce
composition, scores every company with a pluggable strategy and serves
the ranked indices and dashboard aggregates over HTTP.

Configuration is layered: defaults, then the YAML file named by
DNINDEX_CONFIG, then DNINDEX_* environment variables, then flags.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.initiatives, "initiatives", "", "Path to the initiatives CSV (overrides config)")
	pf.StringVar(&c.flags.composition, "composition", "", "Path to the composition CSV (overrides config)")
	pf.StringVar(&c.flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&c.flags.logFormat, "log-format", "", "Log format: text or json")

	root.AddCommand(
		newServeCmd(c),
		newRankCmd(c),
		newOptionsCmd(c),
		newGenerateCmd(c),
	)
	return root
}

// setup loads configuration, initializes logging and builds the metrics
// manager. Logs go to stderr so command output on stdout stays machine readable.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Context())
	if err != nil {
		return err
	}

	if c.flags.initiatives != "" {
		cfg.InitiativesPath = c.flags.initiatives
	}
	if c.flags.composition != "" {
		cfg.CompositionPath = c.flags.composition
	}
	if c.flags.logLevel != "" {
		cfg.LogLevel = c.flags.logLevel
	}
	if c.flags.logFormat != "" {
		cfg.LogFormat = c.flags.logFormat
	}

	if err := logger.Init(logger.WithFormat(cfg.LogFormat), logger.WithWriter(cmd.ErrOrStderr())); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(cmd.Context(), "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	c.cfg = cfg
	c.metrics = metrics.Configure(cfg.MetricsOptions()...)
	return nil
}

// newService loads the configured tables and builds the query service.
func (c *cli) newService(ctx context.Context) (*service.Service, error) {
	snap, err := loader.New(loader.WithLogger(logger.Named("loader"))).
		LoadFiles(ctx, c.cfg.InitiativesPath, c.cfg.CompositionPath)
	if err != nil {
		return nil, err
	}

	return service.New(
		service.WithSnapshot(snap),
		service.WithLogger(logger.Named("service")),
		service.WithDefaultStrategy(c.cfg.DefaultStrategy),
		service.WithEngineOptions(
			scoring.WithRelevantCategories(c.cfg.RelevantCategories),
			scoring.WithBoardRole(c.cfg.BoardRole),
			scoring.WithWeights(c.cfg.Weights()),
		),
	), nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
