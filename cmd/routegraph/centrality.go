// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/routegraph/centrality"
	"github.com/katalvlaran/routegraph/internal/metrics"
	"github.com/katalvlaran/routegraph/internal/report"
	"github.com/katalvlaran/routegraph/internal/routes"
)

func (a *app) centralityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "centrality",
		Short: "Rank regions by degree, closeness and betweenness centrality",
		Long: "Builds the region graph from --input and reports all three measures.\n\n" +
			"Betweenness enumerates every simple path and grows exponentially with graph density;\n" +
			"bound it with --timeout or --step-budget on anything beyond a few dozen regions.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.cfg.Watch {
				return a.watch(cmd.Context(), cmd.OutOrStdout())
			}
			return a.analyse(cmd.Context(), cmd.OutOrStdout())
		},
	}

	fs := cmd.Flags()
	fs.IntP("top", "n", 0, "show only the N highest-ranked regions per measure (0 = all)")
	fs.IntP("workers", "w", 0, "betweenness worker goroutines (0 = GOMAXPROCS)")
	fs.Duration("timeout", 0, "abort the computation after this long (0 = no limit)")
	fs.Int("step-budget", 0, "per-source path expansion budget for betweenness (0 = unlimited)")
	fs.String("pair-mode", "ordered", "betweenness pairs: ordered or unordered")
	fs.String("metrics-file", "", "write Prometheus metrics to this file after each run")
	fs.Bool("watch", false, "recompute whenever the input file changes")
	a.bind(fs, "top", "top")
	a.bind(fs, "workers", "workers")
	a.bind(fs, "timeout", "timeout")
	a.bind(fs, "step_budget", "step-budget")
	a.bind(fs, "pair_mode", "pair-mode")
	a.bind(fs, "metrics_file", "metrics-file")
	a.bind(fs, "watch", "watch")

	return cmd
}

// centralityOptions translates the configuration into betweenness options.
func (a *app) centralityOptions() []centrality.Option {
	var opts []centrality.Option
	if a.cfg.Workers > 0 {
		opts = append(opts, centrality.WithWorkers(a.cfg.Workers))
	}
	if a.cfg.StepBudget > 0 {
		opts = append(opts, centrality.WithStepBudget(a.cfg.StepBudget))
	}
	if a.cfg.PairMode == "unordered" {
		opts = append(opts, centrality.WithPairMode(centrality.UnorderedPairs))
	}

	return opts
}

// analyse runs one load, build, compute and report cycle.
func (a *app) analyse(ctx context.Context, w io.Writer) (err error) {
	rec := metrics.NewRecorder()
	runID := uuid.NewString()
	log := a.log.With(zap.String("run_id", runID))
	defer func() {
		rec.RunFinished(err)
		if a.cfg.MetricsFile == "" {
			return
		}
		if werr := rec.WriteTextfile(a.cfg.MetricsFile); werr != nil {
			log.Warn("writing metrics failed", zap.String("path", a.cfg.MetricsFile), zap.Error(werr))
		}
	}()

	start := time.Now()
	rs, err := a.loadRoutes(log, rec.RowSkipped)
	if err != nil {
		return err
	}
	g, err := routes.BuildGraph(rs)
	if err != nil {
		return err
	}
	snap := g.Snapshot()
	rec.ObserveStage("load", start)
	rec.SetGraph(len(rs), snap.Len(), snap.EdgeCount())
	log.Info("graph built", zap.Int("vertices", snap.Len()), zap.Int("edges", snap.EdgeCount()))

	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	start = time.Now()
	sc, err := centrality.Compute(ctx, snap, a.centralityOptions()...)
	rec.ObserveStage("compute", start)
	if err != nil {
		log.Error("centrality failed", zap.Error(err))
		return err
	}
	log.Debug("centrality computed", zap.Duration("elapsed", time.Since(start)))

	rep := report.New(sc, report.Meta{
		RunID:    runID,
		Input:    a.cfg.Input,
		Routes:   len(rs),
		PairMode: a.cfg.PairMode,
	}, a.cfg.Top)

	return rep.Write(w, a.cfg.Format)
}
