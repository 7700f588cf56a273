// Package cli provides the command-line interface for chordmap.
package cli

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/chordmap/internal/config"
	"github.com/ja-he/chordmap/internal/control"
)

type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	CheckCommand   CheckCommand   `command:"check" subcommands-optional:"true"`
	ResolveCommand ResolveCommand `command:"resolve" subcommands-optional:"true"`
	RunCommand     RunCommand     `command:"run" subcommands-optional:"true"`
	VersionCommand VersionCommand `command:"version" subcommands-optional:"true"`
}

var Opts CommandLineOpts

// loadConfig reads the config file at the given path (or the default location,
// if empty) and augments the defaults for the given theme with it.
// A missing file is not an error, the defaults are used.
func loadConfig(configFile string, theme config.ColorschemeType) (config.Config, error) {
	if configFile == "" {
		configFile = control.EnvDataFromEnvironment().ConfigPath()
	}

	yamlData, err := os.ReadFile(configFile)
	if err != nil {
		log.Warn().Err(err).Str("file", configFile).Msg("can't read config file, using defaults")
		yamlData = make([]byte, 0)
	}

	return config.ParseConfigAugmentDefaults(theme, configFile, yamlData)
}
