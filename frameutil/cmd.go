/*
Copyright © 2017 the frame authors.
This file is part of frame.

frame is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

frame is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with frame.  If not, see <http://www.gnu.org/licenses/>.
*/

package frameutil

import (
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/mbedward/frame"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Version is the frame engine's version string, printed by the version
// subcommand.
const Version = "0.1.0"

// Cfg holds the CLI's cobra command tree and the viper instance backing its
// configuration.
type Cfg struct {
	*viper.Viper

	Root   *cobra.Command
	runCmd *cobra.Command
}

// NewCfg builds the frame CLI's command tree: "frame run <paramfile>"
// loads a parameter file, builds a Site via the factories in this package,
// runs frame.Run, and formats the result to stdout.
func NewCfg() *Cfg {
	cfg := &Cfg{Viper: viper.New()}

	cfg.Root = &cobra.Command{
		Use:   "frame",
		Short: "A deterministic forest-flammability simulator.",
		Long: `frame predicts whether, where and how intensely fire propagates
vertically through a layered plant community, given its surface fuel,
stratum composition and weather.`,
		DisableAutoGenTag: true,
	}
	cfg.Root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("frame v%s\n", Version)
		},
		DisableAutoGenTag: true,
	})

	cfg.runCmd = &cobra.Command{
		Use:               "run <paramfile> <speciesNames...>",
		Short:             "Run the flammability model on a site description.",
		Args:              cobra.MinimumNArgs(2),
		DisableAutoGenTag: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0], args[1:], cfg.GetString("settings"))
		},
	}
	cfg.Root.AddCommand(cfg.runCmd)

	// options is a table-driven flag/viper wiring: each entry is
	// registered on every flagset that should expose it (the first
	// flagset owns the flag, later ones just alias it), then bound into
	// the shared viper instance under its name.
	options := []struct {
		name, usage string
		defaultVal  string
		flagsets    []*pflag.FlagSet
	}{
		{
			name:       "settings",
			usage:      "path to a TOML file of frame.Settings overrides",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{cfg.runCmd.Flags()},
		},
	}
	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 {
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			set.String(option.name, option.defaultVal, option.usage)
		}
		if err := cfg.BindPFlag(option.name, option.flagsets[0].Lookup(option.name)); err != nil {
			panic(fmt.Sprintf("frameutil: binding flag %q: %v", option.name, err))
		}
	}

	return cfg
}

// runFile is the "frame run" subcommand's body: parse paramFile, build a
// single near-surface stratum whose species components are the species
// named by speciesNames (read under the "stratum" prefix), build the site
// around it, run the model with the default strategies and the settings
// loaded from settingsFile (DefaultSettings() when it is empty), and print
// the formatted result.
func runFile(paramFile string, speciesNames []string, settingsFile string) error {
	logrus.WithField("file", paramFile).Info("reading parameter file")

	f, err := os.Open(paramFile)
	if err != nil {
		return fmt.Errorf("frameutil: opening parameter file: %w", err)
	}
	defer f.Close()

	source, err := ParseParams(f)
	if err != nil {
		return err
	}
	va := ValueAssignments{Source: source, Fallback: defaultFallbacks()}

	stratum, err := BuildStratum(va, frame.NearSurface, "stratum", speciesNames)
	if err != nil {
		return err
	}
	site, err := BuildSite(va, []frame.Stratum{stratum})
	if err != nil {
		return err
	}

	settings, err := LoadSettings(settingsFile)
	if err != nil {
		return err
	}
	result, err := frame.Run(site, site.FireLineLength, frame.RunIgnitionPath, frame.DefaultPlantFlameModel, settings)
	if err != nil {
		return fmt.Errorf("frameutil: run failed: %w", err)
	}

	return FormatResult(os.Stdout, result)
}

// defaultFallbacks are the values ValueAssignments falls back to when a
// parameter file omits them; a real deployment would source these from a
// site-wide defaults file, but a literal map keeps this reference driver
// self-contained.
func defaultFallbacks() map[string]string {
	return map[string]string{
		"weather.windSpeed": "10", // km/h
	}
}
