package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rollingdie/astar"
	"github.com/katalvlaran/rollingdie/config"
	"github.com/katalvlaran/rollingdie/grid"
	"github.com/katalvlaran/rollingdie/heuristic"
	"github.com/katalvlaran/rollingdie/stats"
)

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <maze> [heuristic...]",
		Short: "Run several heuristics on one maze and chart the node counts",
		Long: "Run several heuristics on one maze and print a table and a bar chart of\n" +
			"nodes generated and visited. Without heuristic arguments the configured\n" +
			"list is used.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.compare(cmd.OutOrStdout(), args[0], args[1:])
		},
	}
}

func (a *app) compare(w io.Writer, mazePath string, names []string) error {
	kinds, err := a.cfg.Kinds()
	if err != nil {
		return err
	}
	if len(names) > 0 {
		kinds = kinds[:0]
		for _, name := range names {
			k, err := heuristic.ParseKind(name)
			if err != nil {
				return fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
			}
			kinds = append(kinds, k)
		}
	}

	g, err := grid.Load(mazePath)
	if err != nil {
		return err
	}

	// Each search owns its graph and frontier; only the grid is shared.
	reports := make([]stats.Report, len(kinds))
	var eg errgroup.Group
	eg.SetLimit(a.cfg.Parallelism)
	for i, k := range kinds {
		i, k := i, k
		eg.Go(func() error {
			res, err := astar.Search(g, astar.WithHeuristic(k), astar.WithLogger(a.log))
			if err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			reports[i] = stats.FromResult(mazePath, res)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	a.log.Info().Str("maze", mazePath).Int("runs", len(reports)).Msg("comparison finished")

	if a.cfg.Format != config.FormatText {
		return stats.Export(w, a.cfg.Format, reports)
	}
	if err := stats.WriteTable(w, reports); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	return stats.WriteChart(w, reports, a.chartStyles())
}
