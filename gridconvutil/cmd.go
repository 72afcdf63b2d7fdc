/*
Copyright © 2026 the GridConv authors.
This file is part of GridConv.

GridConv is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GridConv is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GridConv.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package gridconvutil holds the command-line interface and configuration
// handling for the gridconv converter.
package gridconvutil

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spectralmodel/gridconv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		DisableSorting:  true,
	})

	// Options are the configuration options available to GridConv.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "InputFile",
			usage: `
              InputFile specifies the path to the CSV file holding the
              sampled field data to convert.`,
			shorthand:  "i",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile specifies the path where the output grid file
              should be written.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{convertCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("GRIDCONV")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}

	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(convertCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("gridconv: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "gridconv",
	Short: "A sampled-field-data to rectilinear-grid converter.",
	Long: `GridConv converts CSV files of sampled complex-valued 3D vector field
data into rectilinear-grid NetCDF files for scientific visualization.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'GRIDCONV_var' where 'var'
is the name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of GridConv.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("GridConv v%s\n", gridconv.Version)
	},
	DisableAutoGenTag: true,
}

// convertCmd is a command that converts one CSV file to a grid file.
var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a CSV file to a grid file.",
	Long: `convert reconstructs the rectilinear grid implied by the rows of the
input CSV file and writes the field data to the output file as a NetCDF
rectilinear grid.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile, err := checkInputFile(Cfg.GetString("InputFile"))
		if err != nil {
			return err
		}
		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"))
		if err != nil {
			return err
		}
		return gridconv.Convert(inputFile, outputFile)
	},
	DisableAutoGenTag: true,
}
