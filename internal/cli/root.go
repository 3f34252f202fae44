// Package cli implements the ecoquest command line.
package cli

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/ecoquest/internal/config"
	"github.com/rshade/ecoquest/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the ecoquest CLI.
// It wires up configuration, logging and tracing before any subcommand runs.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "ecoquest",
		Short:         "Estimate the annual carbon footprint of everyday places",
		Long:          "EcoQuest: visit five everyday places and estimate their annual CO2e emissions and savings",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if path, _ := cmd.Flags().GetString("config"); path != "" {
				cfg, err := config.NewWithOverlay(path)
				if err != nil {
					return fmt.Errorf("loading --config: %w", err)
				}
				config.SetGlobalConfig(cfg)
			}

			if _, err := outputFormat(cmd); err != nil {
				return err
			}

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return logResult.Close()
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "extra config file merged over ~/.ecoquest/config.yaml")
	cmd.PersistentFlags().
		String("output", "", "output format: table, json, ndjson (default from config)")

	cmd.AddCommand(
		newEstimateCmd(),
		NewBatchCmd(),
		NewAirportsCmd(),
		NewRegionsCmd(),
		NewTourCmd(),
		NewVersionCmd(),
		newConfigCmd(),
	)
	closeLogAfterRun(cmd, func() error { return logResult.Close() })

	return cmd
}

// closeLogAfterRun makes every RunE in the tree close the log file when it
// returns, including on error, where cobra skips PersistentPostRunE.
func closeLogAfterRun(c *cobra.Command, closeLog func() error) {
	if run := c.RunE; run != nil {
		c.RunE = func(cmd *cobra.Command, args []string) (err error) {
			defer func() {
				if cerr := closeLog(); err == nil {
					err = cerr
				}
			}()
			return run(cmd, args)
		}
	}
	for _, sub := range c.Commands() {
		closeLogAfterRun(sub, closeLog)
	}
}

const rootCmdExample = `  # Estimate a 2,000 sq ft home in Atlanta
  ecoquest estimate house --zip 30301 --sqft 2000

  # Estimate a weekly commute as JSON
  ecoquest estimate garage --miles 150 --output json

  # Estimate a round trip flight
  ecoquest estimate airport --flights 1 --origin JFK --destination LAX

  # Estimate every scenario in a file
  ecoquest batch --file scenarios.yaml

  # Play the interactive tour
  ecoquest tour

  # Initialize configuration
  ecoquest config init`

// outputFormat resolves --output against the configured default and validates it.
func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("output")
	if format == "" {
		format = config.GetDefaultOutputFormat()
	}
	format = strings.ToLower(format)
	if !slices.Contains(config.OutputFormats(), format) {
		return "", fmt.Errorf("unsupported output format %q (want %s)",
			format, strings.Join(config.OutputFormats(), ", "))
	}
	return format, nil
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
