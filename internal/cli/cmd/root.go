// Package cmd provides Cobra CLI commands for synapse.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/synapse/internal/cli"
	"github.com/bnema/synapse/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	options   cli.Options
	rootCmd   = &cobra.Command{
		Use:   "synapse",
		Short: "Bind macro-pad keys to scripts and launch them",
		Long: `Synapse listens to a USB macro pad and runs a script for every key you press.

Teach it a key from the deck (synapse deck): pick a slot, press the
physical key, then choose an application or write a custom script.
Run the headless engine with 'synapse run'.

Files:
  settings  $XDG_CONFIG_HOME/synapse/settings.json
  bindings  $XDG_DATA_HOME/synapse/bindings.json, actions.json
  scripts   $XDG_DATA_HOME/synapse/scripts/
  activity  $XDG_DATA_HOME/synapse/synapse.db`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "version", "schema":
				return nil
			}

			opts := options
			opts.Quiet = cmd.Name() == "deck"

			var err error
			app, err = cli.NewApp(opts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&options.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (default $SYNAPSE_LOG_LEVEL or info)")
	flags.StringVar(&options.LogFormat, "log-format", "", "log format: console, json (default $SYNAPSE_LOG_FORMAT or console)")
	flags.BoolVar(&options.LogFile, "log-file", false, "also write logs to the rotating file in the state directory")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
