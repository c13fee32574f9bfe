// Package main provides the socialnet CLI entry point.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/socialnet/core"
	"github.com/katalvlaran/socialnet/edgelist"
	"github.com/katalvlaran/socialnet/internal/config"
	"github.com/katalvlaran/socialnet/internal/logging"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := &app{}
	root := newRootCmd(a)
	err := root.ExecuteContext(ctx)
	if a.log != nil {
		_ = a.log.Sync()
	}
	if err != nil {
		stop()
		exitWithError(a.human, exitCodeFor(err), "%v", err)
	}
}

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfgPath  string
	human    bool
	dataset  string
	logLevel string
	workers  int

	cfg *config.Config
	log *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "socialnet",
		Short: "Analyze social-network edge lists",
		Long: `socialnet loads an undirected friendship graph from an edge list
(one "u v" pair per line, SNAP/KONECT style) and reports:

  - node and edge counts, degree statistics and components
  - the degree distribution as a histogram
  - average shortest-path length from a source node (BFS)
  - Jaccard similarity: top-k neighbors of a node and the most similar pair

All commands output JSON by default; pass --human for a readable report.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	root.Version = Version

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "config file (default $XDG_CONFIG_HOME/socialnet/config.yml)")
	pf.StringVar(&a.dataset, "data", "", "edge-list file to analyze (.gz is decompressed)")
	pf.BoolVar(&a.human, "human", false, "Use human-readable output instead of JSON")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.IntVar(&a.workers, "workers", 0, "goroutines for the most-similar-pair scan")

	root.AddCommand(
		newStatsCmd(a),
		newDegreesCmd(a),
		newPathCmd(a),
		newSimilarCmd(a),
		newPairCmd(a),
		newReportCmd(a),
		newGenerateCmd(a),
	)

	return root
}

// setup resolves configuration (defaults < file < .env/env < flags) and the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	// A missing .env is the common case.
	_ = godotenv.Load()

	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}

	flags := cmd.Flags()
	if flags.Changed("data") {
		cfg.Dataset = config.ExpandTilde(a.dataset)
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}

	log, err := logging.New(cfg.LogLevel, cfg.Development())
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}

	a.cfg = cfg
	a.log = log.With(zap.String("cmd", cmd.Name()))
	return nil
}

// loadGraph reads the configured dataset and builds the graph.
func (a *app) loadGraph() (*core.Graph, error) {
	if a.cfg.Dataset == "" {
		return nil, fmt.Errorf("%w: no dataset; pass --data or set dataset in the config file", errConfig)
	}

	start := time.Now()
	var opts []edgelist.Option
	if a.cfg.Lenient {
		opts = append(opts, edgelist.WithLenient())
	}
	edges, st, err := edgelist.ReadFile(a.cfg.Dataset, opts...)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", a.cfg.Dataset, err)
	}
	if st.Skipped > 0 {
		a.log.Warn("skipped malformed lines", zap.Int("skipped", st.Skipped))
	}

	g, err := core.Build(edges, core.WithLoopPolicy(a.cfg.LoopPolicy()))
	if err != nil {
		return nil, fmt.Errorf("building graph from %s: %w", a.cfg.Dataset, err)
	}

	a.log.Info("graph loaded",
		zap.String("dataset", a.cfg.Dataset),
		zap.Int("lines", st.Lines),
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return g, nil
}

// timed logs how long fn took under name.
func (a *app) timed(name string, fn func() error) error {
	start := time.Now()
	err := fn()
	fields := []zap.Field{zap.String("step", name), zap.Duration("elapsed", time.Since(start))}
	if err != nil && !errors.Is(err, context.Canceled) {
		a.log.Debug("step failed", append(fields, zap.Error(err))...)
		return err
	}
	a.log.Debug("step done", fields...)
	return err
}
