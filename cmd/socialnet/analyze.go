package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/socialnet/bfs"
	"github.com/katalvlaran/socialnet/core"
	"github.com/katalvlaran/socialnet/report"
	"github.com/katalvlaran/socialnet/similarity"
)

// queryFlags are the per-command overrides of config values.
type queryFlags struct {
	source     int
	k          int
	width      int
	exhaustive bool
}

func (q *queryFlags) addSource(cmd *cobra.Command) {
	cmd.Flags().IntVar(&q.source, "source", 0, "source node id (default from config, 0)")
}

func (q *queryFlags) addK(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&q.k, "top", "k", 5, "number of similar nodes to list")
}

func (q *queryFlags) addWidth(cmd *cobra.Command) {
	cmd.Flags().IntVar(&q.width, "width", report.DefaultWidth, "histogram bar length of the most common degree")
}

func (q *queryFlags) addExhaustive(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&q.exhaustive, "exhaustive", false, "score every pair instead of pairs sharing a neighbor")
}

// apply copies explicitly set flags over the loaded config.
func (q *queryFlags) apply(cmd *cobra.Command, a *app) error {
	f := cmd.Flags()
	if f.Changed("source") {
		a.cfg.Source = q.source
	}
	if f.Changed("top") {
		a.cfg.TopK = q.k
	}
	if f.Changed("width") {
		a.cfg.HistogramWidth = q.width
	}
	if f.Changed("exhaustive") {
		a.cfg.Exhaustive = q.exhaustive
	}
	if err := a.cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	return nil
}

func newStatsCmd(a *app) *cobra.Command {
	var q queryFlags
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show node/edge counts, degree statistics and components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := q.apply(cmd, a); err != nil {
				return err
			}
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			s := a.baseSummary(g)
			return a.emit(cmd, s, func() error { return report.WriteText(cmd.OutOrStdout(), s) })
		},
	}
	q.addSource(cmd)
	return cmd
}

func newDegreesCmd(a *app) *cobra.Command {
	var q queryFlags
	cmd := &cobra.Command{
		Use:   "degrees",
		Short: "Show the degree distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := q.apply(cmd, a); err != nil {
				return err
			}
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			dist := g.DegreeDistribution()
			rows := report.Histogram(dist, a.cfg.HistogramWidth)
			resp := DegreesResponse{Distribution: dist, Histogram: rows}
			return a.emit(cmd, resp, func() error { return report.WriteHistogram(cmd.OutOrStdout(), rows) })
		},
	}
	q.addWidth(cmd)
	return cmd
}

func newPathCmd(a *app) *cobra.Command {
	var q queryFlags
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Average shortest-path length from a source node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := q.apply(cmd, a); err != nil {
				return err
			}
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			pl, err := a.averagePath(cmd, g)
			if err != nil {
				return err
			}
			return a.emit(cmd, pl, func() error {
				if !pl.Defined {
					_, err := fmt.Fprintf(cmd.OutOrStdout(), "node %d reaches no other node\n", pl.Source)
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "average shortest path from %d: %.4f (%d reachable)\n", pl.Source, pl.Mean, pl.Reached)
				return err
			})
		},
	}
	q.addSource(cmd)
	return cmd
}

func newSimilarCmd(a *app) *cobra.Command {
	var q queryFlags
	cmd := &cobra.Command{
		Use:   "similar",
		Short: "List the k nodes most similar to a source node (Jaccard)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := q.apply(cmd, a); err != nil {
				return err
			}
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			scores, err := a.topK(g)
			if err != nil {
				return err
			}
			return a.emit(cmd, scores, func() error {
				out := cmd.OutOrStdout()
				if _, err := fmt.Fprintf(out, "top %d similar to %d:\n", a.cfg.TopK, a.cfg.Source); err != nil {
					return err
				}
				for i, s := range scores {
					if _, err := fmt.Fprintf(out, "%2d. node %d  %.4f\n", i+1, s.Node, s.Value); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
	q.addSource(cmd)
	q.addK(cmd)
	return cmd
}

func newPairCmd(a *app) *cobra.Command {
	var q queryFlags
	cmd := &cobra.Command{
		Use:   "pair",
		Short: "Find the globally most similar pair of nodes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := q.apply(cmd, a); err != nil {
				return err
			}
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			p, err := a.mostSimilarPair(cmd, g)
			if err != nil {
				return err
			}
			return a.emit(cmd, p, func() error {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "most similar pair: (%d, %d) %.4f\n", p.A, p.B, p.Value)
				return err
			})
		},
	}
	q.addExhaustive(cmd)
	return cmd
}

func newReportCmd(a *app) *cobra.Command {
	var q queryFlags
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run every analysis and print one summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := q.apply(cmd, a); err != nil {
				return err
			}
			g, err := a.loadGraph()
			if err != nil {
				return err
			}

			s := a.baseSummary(g)
			s.Histogram = report.Histogram(g.DegreeDistribution(), a.cfg.HistogramWidth)

			pl, err := a.averagePath(cmd, g)
			if err != nil {
				return err
			}
			s.Path = &pl

			if s.TopK, err = a.topK(g); err != nil {
				return err
			}

			p, err := a.mostSimilarPair(cmd, g)
			if err != nil {
				return err
			}
			s.Pair = &p

			return a.emit(cmd, s, func() error { return report.WriteText(cmd.OutOrStdout(), s) })
		},
	}
	q.addSource(cmd)
	q.addK(cmd)
	q.addWidth(cmd)
	q.addExhaustive(cmd)
	return cmd
}

func (a *app) baseSummary(g *core.Graph) report.Summary {
	return report.Summary{
		Dataset:      a.cfg.Dataset,
		Stats:        g.Stats(),
		Components:   len(bfs.Components(g)),
		Source:       a.cfg.Source,
		SourceDegree: g.Degree(a.cfg.Source),
	}
}

func (a *app) averagePath(cmd *cobra.Command, g *core.Graph) (bfs.PathLength, error) {
	var pl bfs.PathLength
	err := a.timed("average-path", func() error {
		var err error
		pl, err = bfs.AverageShortestPathLength(g, a.cfg.Source, bfs.WithContext(cmd.Context()))
		return err
	})
	return pl, err
}

func (a *app) topK(g *core.Graph) ([]similarity.Score, error) {
	var scores []similarity.Score
	err := a.timed("top-k", func() error {
		var err error
		scores, err = similarity.TopK(g, a.cfg.Source, a.cfg.TopK)
		return err
	})
	return scores, err
}

func (a *app) mostSimilarPair(cmd *cobra.Command, g *core.Graph) (similarity.Pair, error) {
	opts := []similarity.Option{
		similarity.WithContext(cmd.Context()),
		similarity.WithWorkers(a.cfg.Workers),
	}
	if a.cfg.Exhaustive {
		opts = append(opts, similarity.WithExhaustive())
	}

	var p similarity.Pair
	err := a.timed("most-similar-pair", func() error {
		var err error
		p, err = similarity.MostSimilarPair(g, opts...)
		return err
	})
	if err == nil {
		a.log.Info("most similar pair",
			zap.Int("a", p.A), zap.Int("b", p.B), zap.Float64("score", p.Value),
			zap.Int("workers", a.cfg.Workers), zap.Bool("exhaustive", a.cfg.Exhaustive))
	}
	return p, err
}

// emit writes v as JSON, or calls human when --human is set.
func (a *app) emit(cmd *cobra.Command, v interface{}, human func() error) error {
	if a.human {
		return human()
	}
	return outputJSON(cmd.OutOrStdout(), v)
}
