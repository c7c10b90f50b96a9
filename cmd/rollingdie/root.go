package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rollingdie/config"
	"github.com/katalvlaran/rollingdie/render"
	"github.com/katalvlaran/rollingdie/stats"
)

// app carries the resolved configuration shared by every subcommand.
type app struct {
	cfgPath  string
	logLevel string
	format   string
	noColor  bool

	cfg config.Config
	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "rollingdie",
		Short:        "Solve rolling-die mazes with A* search",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.cfgPath, "config", "",
		"YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"log level (trace, debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.format, "format", "",
		"output format: text, json or yaml")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false,
		"disable colored output")

	root.AddCommand(newSolveCmd(a), newCompareCmd(a))

	return root
}

// setup loads the configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if a.noColor {
		cfg.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg.Format = strings.ToLower(cfg.Format)

	lvl, err := cfg.Level()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: !cfg.Color}).
		Level(lvl).
		With().Timestamp().Logger()

	return nil
}

func (a *app) renderer() *render.Renderer {
	if !a.cfg.Color {
		return render.New(render.PlainStyles())
	}

	return render.New(render.DefaultStyles())
}

func (a *app) chartStyles() stats.ChartStyles {
	if !a.cfg.Color {
		return stats.ChartStyles{Generated: lipgloss.NewStyle(), Visited: lipgloss.NewStyle()}
	}

	return stats.DefaultChartStyles()
}
