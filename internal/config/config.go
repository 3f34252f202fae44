// Package config loads ecoquest settings from ~/.ecoquest/config.yaml (or
// $ECOQUEST_HOME/config.yaml), applies environment overrides and keeps the
// process-wide instance.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by output.default_format and --output.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

// Batch limits.
const (
	MaxBatchConcurrency = 64
	MaxBatchSize        = 1000
)

const (
	configFileName = "config.yaml"
	outputTypeFile = "file"
)

// Environment overrides.
const (
	EnvHome         = "ECOQUEST_HOME"
	EnvLogLevel     = "ECOQUEST_LOG_LEVEL"
	EnvLogFormat    = "ECOQUEST_LOG_FORMAT"
	EnvOutputFormat = "ECOQUEST_OUTPUT_FORMAT"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full settings file.
type Config struct {
	ConfigVersion string        `yaml:"config_version" json:"config_version"`
	Output        OutputConfig  `yaml:"output" json:"output"`
	Logging       LoggingConfig `yaml:"logging" json:"logging"`
	Batch         BatchConfig   `yaml:"batch" json:"batch"`
	Tour          TourConfig    `yaml:"tour" json:"tour"`

	path string
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"`
}

// LoggingConfig controls the zerolog setup. An empty File logs to stderr.
type LoggingConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
	File   string `yaml:"file,omitempty" json:"file,omitempty"`
}

// BatchConfig holds defaults for `ecoquest batch`.
type BatchConfig struct {
	Concurrency int `yaml:"concurrency" json:"concurrency"`
	Size        int `yaml:"size" json:"size"`
}

// TourConfig holds defaults for the interactive tour.
type TourConfig struct {
	ShowEquivalencies bool `yaml:"show_equivalencies" json:"show_equivalencies"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		ConfigVersion: CurrentConfigVersion,
		Output:        OutputConfig{DefaultFormat: FormatTable},
		Logging:       LoggingConfig{Level: "info", Format: "console"},
		Batch:         BatchConfig{Concurrency: 4, Size: 25},
		Tour:          TourConfig{ShowEquivalencies: true},
	}
}

// New returns the defaults overlaid with the user's config file, when present,
// and the environment. Unreadable files are logged and ignored.
func New() *Config {
	cfg := Default()

	path, err := ConfigPath()
	if err == nil {
		cfg.path = path
		if _, statErr := os.Stat(path); statErr == nil {
			if mergeErr := ShallowMergeYAML(cfg, path); mergeErr != nil {
				Logger.Warn().
					Str("component", "config").
					Err(mergeErr).
					Str("path", path).
					Msg("ignoring unreadable config file")
			}
		}
	}

	cfg.applyEnv()
	return cfg
}

// Load reads a config file strictly: missing files and unknown keys are errors.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	cfg.path = path
	return cfg, nil
}

// Path is the file the config was loaded from or will be saved to.
func (c *Config) Path() string { return c.path }

// Save writes the config to Path, creating the directory.
func (c *Config) Save() error {
	if c.path == "" {
		path, err := ConfigPath()
		if err != nil {
			return err
		}
		c.path = path
	}
	return c.SaveTo(c.path)
}

// SaveTo writes the config as YAML to path.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// YAML renders the config as it would be saved.
func (c *Config) YAML() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}
	return string(data), nil
}

// Validate reports every problem in the config, joined.
func (c *Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if err := CheckConfigVersion(c.ConfigVersion); err != nil {
		errs = append(errs, err)
	}
	if !slices.Contains(OutputFormats(), c.Output.DefaultFormat) {
		invalid("output.default_format %q must be one of %s",
			c.Output.DefaultFormat, strings.Join(OutputFormats(), ", "))
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil || c.Logging.Level == "" {
		invalid("logging.level %q is not a log level", c.Logging.Level)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		invalid("logging.format %q must be console or json", c.Logging.Format)
	}
	if c.Batch.Concurrency < 1 || c.Batch.Concurrency > MaxBatchConcurrency {
		invalid("batch.concurrency %d must be between 1 and %d", c.Batch.Concurrency, MaxBatchConcurrency)
	}
	if c.Batch.Size < 1 || c.Batch.Size > MaxBatchSize {
		invalid("batch.size %d must be between 1 and %d", c.Batch.Size, MaxBatchSize)
	}

	return errors.Join(errs...)
}

// OutputFormats lists the accepted output formats.
func OutputFormats() []string {
	return []string{FormatTable, FormatJSON, FormatNDJSON}
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.DefaultFormat = v
	}
}
