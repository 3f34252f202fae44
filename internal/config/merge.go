package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keyConfigVersion = "config_version"
	keyOutput        = "output"
	keyLogging       = "logging"
	keyBatch         = "batch"
	keyTour          = "tour"
)

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto target.
// A section present in the overlay replaces the target's section; fields the
// section omits take their built-in defaults. Absent sections and unknown keys
// leave target unchanged.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	for key, node := range overlay {
		if err = unmarshalSection(target, key, &node); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}
	return nil
}

// unmarshalSection decodes one section onto a fresh copy of its defaults so
// nothing from the previous target value leaks through.
func unmarshalSection(target *Config, key string, node *yaml.Node) error {
	defaults := Default()
	switch key {
	case keyConfigVersion:
		var v string
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.ConfigVersion = v
	case keyOutput:
		v := defaults.Output
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Output = v
	case keyLogging:
		v := defaults.Logging
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
	case keyBatch:
		v := defaults.Batch
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Batch = v
	case keyTour:
		v := defaults.Tour
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Tour = v
	}
	return nil
}

// NewWithOverlay is New with the sections of an extra YAML file merged on top,
// before environment overrides. It backs the --config flag.
func NewWithOverlay(overlayPath string) (*Config, error) {
	cfg := New()
	if overlayPath == "" {
		return cfg, nil
	}
	if err := ShallowMergeYAML(cfg, overlayPath); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}
