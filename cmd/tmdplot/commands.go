package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dichalcogenides/dichalcogenide"
	"github.com/katalvlaran/dichalcogenides/material"
	"github.com/katalvlaran/dichalcogenides/plots"
)

var bandsCmd = &cobra.Command{
	Use:   "bands [material]",
	Short: "Band structure around the ±K valleys (default wse2)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runBands(orDefault(args, material.WSe2)[0])
	},
}

var opticalCmd = &cobra.Command{
	Use:   "optical [materials...]",
	Short: "Circular dichroism under induced pairing (default mose2 ws2 wse2)",
	RunE: func(_ *cobra.Command, args []string) error {
		return runOptical(orDefault(args, material.MoSe2, material.WS2, material.WSe2))
	},
}

var topologyCmd = &cobra.Command{
	Use:   "topology [materials...]",
	Short: "Berry curvature under induced pairing (default all materials)",
	RunE: func(_ *cobra.Command, args []string) error {
		return runTopology(orDefault(args, material.Supported()...))
	},
}

var transitionsCmd = &cobra.Command{
	Use:   "transitions [material]",
	Short: "Coherence-weighted optical transitions (default mos2)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return runTransitions(orDefault(args, material.MoS2)[0])
	},
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Render every figure with its default materials",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		steps := []func() error{
			func() error { return runBands(material.WSe2) },
			func() error { return runOptical([]string{material.MoSe2, material.WS2, material.WSe2}) },
			func() error { return runTopology(material.Supported()) },
			func() error { return runTransitions(material.MoS2) },
		}
		for _, step := range steps {
			if err := step(); err != nil {
				return err
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(bandsCmd, opticalCmd, topologyCmd, transitionsCmd, allCmd)
}

func orDefault(args []string, def ...string) []string {
	if len(args) == 0 {
		return def
	}

	return args
}

// models resolves every name under system.
func models(system string, names []string) ([]*dichalcogenide.Dichalcogenide, error) {
	out := make([]*dichalcogenide.Dichalcogenide, 0, len(names))
	for _, name := range names {
		d, err := dichalcogenide.New(app.store, name, system)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, nil
}

func save(fig plots.Figure, err error) error {
	if err != nil {
		return err
	}
	paths, err := app.renderer.Save(fig)
	if err != nil {
		return err
	}
	app.log.Debug("figure exported", "figure", fig.Name, "dir", app.renderer.Dir(), "files", len(paths))

	return nil
}

func runBands(name string) error {
	ds, err := models("", []string{name})
	if err != nil {
		return err
	}
	o := plots.DefaultBandsOptions()
	o.N = app.cfg.Points

	return save(plots.Bands(ds[0], o))
}

func runOptical(names []string) error {
	ds, err := models(material.SystemInduced, names)
	if err != nil {
		return err
	}

	return save(plots.OpticalDichroism(app.cfg.Points, ds...))
}

func runTopology(names []string) error {
	ds, err := models(material.SystemInduced, names)
	if err != nil {
		return err
	}

	return save(plots.BerryCurvature(app.cfg.Points, ds...))
}

// runTransitions samples half as densely as the other figures.
func runTransitions(name string) error {
	ds, err := models(material.SystemInduced, []string{name})
	if err != nil {
		return err
	}

	return save(plots.Transitions(ds[0], max(app.cfg.Points/2, 2)))
}
