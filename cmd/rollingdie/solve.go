package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rollingdie/astar"
	"github.com/katalvlaran/rollingdie/config"
	"github.com/katalvlaran/rollingdie/grid"
	"github.com/katalvlaran/rollingdie/heuristic"
	"github.com/katalvlaran/rollingdie/stats"
)

func newSolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve <maze> <heuristic>",
		Short: "Search one maze with one heuristic",
		Long: "Search one maze with one heuristic and print the move-by-move walkthrough\n" +
			"followed by the performance metrics.\n\n" +
			"Heuristics: manhattan, euclidean, diagonal, fancy_manhattan, forecast_manhattan.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solve(cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

func (a *app) solve(w io.Writer, mazePath, name string) error {
	kind, err := heuristic.ParseKind(name)
	if err != nil {
		return fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
	}
	g, err := grid.Load(mazePath)
	if err != nil {
		return err
	}

	res, err := astar.Search(g, astar.WithHeuristic(kind), astar.WithLogger(a.log))
	if err != nil {
		return err
	}
	a.log.Info().
		Str("maze", mazePath).
		Stringer("heuristic", kind).
		Bool("found", res.Found).
		Int("moves", res.Moves).
		Msg("search finished")

	report := stats.FromResult(mazePath, res)
	if a.cfg.Format != config.FormatText {
		return stats.Export(w, a.cfg.Format, []stats.Report{report})
	}

	if res.Found && a.cfg.Walkthrough {
		if err := a.renderer().Walkthrough(w, g, res.Path); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return stats.WriteSummary(w, report)
}
