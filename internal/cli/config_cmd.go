package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/ecoquest/internal/config"
)

// NewConfigInitCmd creates the config init command, which writes the default settings
// to ~/.ecoquest/config.yaml.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Example: `  # Create the configuration file
  ecoquest config init

  # Create configuration, overwriting existing
  ecoquest config init --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.ConfigPath()
			if err != nil {
				return err
			}

			if !force {
				if _, statErr := os.Stat(path); statErr == nil {
					return errors.New("configuration file already exists, use --force to overwrite")
				} else if !os.IsNotExist(statErr) {
					return fmt.Errorf("cannot access config path %s: %w", path, statErr)
				}
			}

			if err = config.Default().SaveTo(path); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			cmd.Printf("Configuration initialized successfully\n")
			cmd.Printf("Configuration file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	return cmd
}

// NewConfigShowCmd creates the config show command, which prints the effective settings.
func NewConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			cfg := config.GetGlobalConfig()
			if format == config.FormatJSON || format == config.FormatNDJSON {
				return renderJSON(cmd.OutOrStdout(), cfg)
			}
			out, err := cfg.YAML()
			if err != nil {
				return err
			}
			cmd.Print(out)
			return nil
		},
	}
}

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates a configuration file for syntax and semantic correctness.

Unknown keys, an unsupported config_version, unknown output or log formats and
out-of-range batch settings are all reported.`,
		Example: `  # Validate ~/.ecoquest/config.yaml
  ecoquest config validate

  # Validate another file
  ecoquest config validate --file ./ecoquest.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := file
			if path == "" {
				var err error
				if path, err = config.ConfigPath(); err != nil {
					return err
				}
			}

			cfg, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}
			if err = cfg.Validate(); err != nil {
				return fmt.Errorf("configuration validation failed: %w", err)
			}

			cmd.Printf("✅ Configuration is valid (%s)\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "config file to validate (default ~/.ecoquest/config.yaml)")
	return cmd
}
