package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/popgrowth/internal/config"
	"github.com/san-kum/popgrowth/internal/export"
	"github.com/san-kum/popgrowth/internal/logging"
	"github.com/san-kum/popgrowth/internal/logistic"
	"github.com/san-kum/popgrowth/internal/server"
	"github.com/san-kum/popgrowth/internal/viz"
	"github.com/spf13/cobra"
)

const (
	exitError  = 1
	exitDomain = 2
)

var (
	configFile string
	preset     string
	n0         int
	growth     float64
	capacity   int
	tmax       int
	logLevel   string
	logFile    string
	theme      string
	outPath    string
	addr       string
	plotHeight int
	plotWidth  int
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and maps the outcome to an exit code: 2 when
// the parameters trip the domain guard, 1 for any other error.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	if err := rootCmd.Execute(); err != nil {
		if de, ok := logistic.AsDomainError(err); ok {
			fmt.Fprintln(stderr, de.Explain())
			return exitDomain
		}
		fmt.Fprintln(stderr, "error:", err)
		return exitError
	}
	return 0
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "popgrowth",
		Short:         "logistic population growth dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDashboard,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset parameters")
	pf.IntVar(&n0, "n0", int(logistic.FieldN0.Default), "initial population N0")
	pf.Float64Var(&growth, "r", logistic.FieldR.Default, "intrinsic growth rate r (may be negative)")
	pf.IntVar(&capacity, "k", int(logistic.FieldK.Default), "carrying capacity K")
	pf.IntVar(&tmax, "tmax", int(logistic.FieldT.Default), "time horizon (inclusive)")
	pf.StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write dashboard logs to this file")
	rootCmd.Flags().StringVar(&theme, "theme", "", "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")

	tableCmd := &cobra.Command{
		Use:   "table",
		Short: "print the series as a table",
		RunE:  printTable,
	}

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot N over t in the terminal",
		RunE:  plotSeries,
	}
	plotCmd.Flags().IntVar(&plotHeight, "height", config.DefaultChartHeight, "plot height in rows")
	plotCmd.Flags().IntVar(&plotWidth, "width", 0, "plot width in columns (0 = one per point)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "export the series to CSV",
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "export the series to JSON",
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "render the chart as SVG",
		RunE:  exportSVG,
	}
	svgCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the dashboard as a web page",
		RunE:  serve,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Fprintf(out, "  %-10s N0=%-5d r=%-6.2f K=%-6d tmax=%-4d %s\n",
					name, p.Params.N0, p.Params.R, p.Params.K, p.Params.TMax, p.Description)
			}
			return nil
		},
	}

	rootCmd.AddCommand(tableCmd, plotCmd, exportCSVCmd, exportJSONCmd, svgCmd, serveCmd, presetsCmd)
	return rootCmd
}

// loadConfig layers defaults < config file < preset < environment < flags
// and checks the result against the input bounds.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}
	if preset != "" && !cfg.ApplyPreset(preset) {
		return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}
	cfg.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("n0") {
		cfg.Params.N0 = n0
	}
	if flags.Changed("r") {
		cfg.Params.R = growth
	}
	if flags.Changed("k") {
		cfg.Params.K = capacity
	}
	if flags.Changed("tmax") {
		cfg.Params.TMax = tmax
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	if !viz.HasTheme(cfg.Theme) {
		return nil, fmt.Errorf("unknown theme: %s (available: %v)", cfg.Theme, viz.ThemeNames())
	}
	if err := logistic.CheckBounds(cfg.Params); err != nil {
		return nil, err
	}
	return cfg, nil
}

// evaluate loads the configuration and runs one render cycle.
func evaluate(cmd *cobra.Command) (*config.Config, logistic.Series, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.Setup(cfg.LogLevel, cmd.ErrOrStderr())

	series, err := logistic.Evaluate(cfg.Params)
	if err != nil {
		logger.Debug().Err(err).Msg("evaluation refused")
		return cfg, nil, err
	}
	logger.Debug().Int("points", len(series)).Int("undefined", series.Undefined()).Msg("series evaluated")
	return cfg, series, nil
}

func runDashboard(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.Discard()
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return err
		}
		defer f.Close()
		logger = logging.Setup(cfg.LogLevel, f)
	}

	p := tea.NewProgram(viz.NewModel(cfg, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func printTable(cmd *cobra.Command, args []string) error {
	cfg, series, err := evaluate(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "N0=%d r=%g K=%d tmax=%d\n\n", cfg.Params.N0, cfg.Params.R, cfg.Params.K, cfg.Params.TMax)
	return export.WriteTable(out, series)
}

func plotSeries(cmd *cobra.Command, args []string) error {
	cfg, series, err := evaluate(cmd)
	if err != nil {
		return err
	}

	opts := []asciigraph.Option{
		asciigraph.Height(plotHeight),
		asciigraph.Precision(3),
		asciigraph.Caption(fmt.Sprintf("N over t (N0=%d, r=%g, K=%d)", cfg.Params.N0, cfg.Params.R, cfg.Params.K)),
	}
	// resampling would bridge undefined points
	if plotWidth > 0 && series.Undefined() == 0 {
		opts = append(opts, asciigraph.Width(plotWidth))
	}
	if series.Undefined() == len(series) {
		return errors.New("no defined points to plot")
	}
	fmt.Fprintln(cmd.OutOrStdout(), asciigraph.Plot(series.Values(), opts...))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, series, err := evaluate(cmd)
	if err != nil {
		return err
	}
	return writeOutput(cmd, func(w io.Writer) error { return export.WriteCSV(w, series) })
}

func exportJSON(cmd *cobra.Command, args []string) error {
	cfg, series, err := evaluate(cmd)
	if err != nil {
		return err
	}
	return writeOutput(cmd, func(w io.Writer) error { return export.WriteJSON(w, cfg.Params, series) })
}

func exportSVG(cmd *cobra.Command, args []string) error {
	cfg, series, err := evaluate(cmd)
	if err != nil {
		return err
	}
	opts := export.DefaultSVGOptions()
	opts.Width, opts.Height = cfg.Server.SVGWidth, cfg.Server.SVGHeight
	svg := export.SeriesToSVG(series, opts)
	return writeOutput(cmd, func(w io.Writer) error {
		_, err := io.WriteString(w, svg+"\n")
		return err
	})
}

func writeOutput(cmd *cobra.Command, write func(io.Writer) error) error {
	if outPath == "" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func serve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	logger := logging.Setup(cfg.LogLevel, cmd.ErrOrStderr())
	logger.Info().Strs("allowed_origins", cfg.Server.AllowedOrigins).Msg("configuration loaded")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(cfg, logger.With().Str("component", "server").Logger()).Run(ctx)
}
