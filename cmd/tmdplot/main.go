// Command tmdplot renders the dichalcogenide figures: band structure,
// optical dichroism and Berry curvature under induced pairing, and the
// coherence-weighted optical transitions.
//
// Settings come from the environment (DATA, BUILD_DIR, PLOT_FORMATS,
// PLOT_POINTS), optionally seeded from ./.env; flags override both.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dichalcogenides/config"
	"github.com/katalvlaran/dichalcogenides/material"
	"github.com/katalvlaran/dichalcogenides/plots"
)

var (
	flagData    string
	flagOut     string
	flagFormats []string
	flagPoints  int
	flagVerbose bool
)

// app is the state shared by the subcommands once flags are parsed.
var app struct {
	cfg      config.Config
	log      *slog.Logger
	store    *material.Store
	renderer *plots.Renderer
}

var rootCmd = &cobra.Command{
	Use:   "tmdplot",
	Short: "Render transition-metal dichalcogenide figures",
	Long: `Render figures of the massive-Dirac model of MoS₂, MoSe₂, WS₂ and WSe₂.

Material parameters are read from <data>/<name>.yaml with the
<data>/induced/<name>.yaml overlay for induced pairing; the builtin
table is used when the data directory does not provide a file.

Figures are written to <out>/<figure>.<format>.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&flagData, "data", "", "material data root (env DATA)")
	f.StringVar(&flagOut, "out", "", "output directory (env BUILD_DIR)")
	f.StringSliceVar(&flagFormats, "format", nil, "export formats: eps, pdf, png, svg (env PLOT_FORMATS)")
	f.IntVar(&flagPoints, "points", 0, "samples per curve (env PLOT_POINTS)")
	f.BoolVarP(&flagVerbose, "verbose", "v", false, "log at debug level")
}

// setup resolves the configuration, applies flag overrides and builds the
// shared store, renderer and logger.
func setup(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	app.log = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(app.log)

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("data") {
		cfg.DataRoot = flagData
	}
	if cmd.Flags().Changed("out") {
		cfg.BuildDir = flagOut
	}
	if cmd.Flags().Changed("format") {
		cfg.Formats = flagFormats
	}
	if cmd.Flags().Changed("points") {
		cfg.Points = flagPoints
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	app.cfg = cfg

	app.store = material.NewStore(material.WithRoot(cfg.DataRoot), material.WithLogger(app.log))
	app.renderer = plots.NewRenderer(
		plots.WithDir(cfg.BuildDir),
		plots.WithFormats(cfg.Formats...),
		plots.WithLogger(app.log),
	)
	app.log.Debug("configured", "data", cfg.DataRoot, "out", cfg.BuildDir, "formats", cfg.Formats, "points", cfg.Points)

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
