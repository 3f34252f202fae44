package batch

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrNoScenarios is returned for an empty scenario file or slice.
var ErrNoScenarios = errors.New("no scenarios to estimate")

// Scenario is one survey record in a scenario file:
//
//	- name: baseline home
//	  category: house
//	  inputs:
//	    zipCode: "30301"
//	    squareFootage: 2000
//
// Category accepts category tags and location ids ("coffee-shop").
// ZIP codes should be quoted so leading zeros survive.
type Scenario struct {
	Name     string         `yaml:"name,omitempty" json:"name,omitempty"`
	Category string         `yaml:"category" json:"category"`
	Inputs   map[string]any `yaml:"inputs" json:"inputs"`
}

// DecodeScenarios reads a YAML list of scenarios. Unknown keys are rejected.
func DecodeScenarios(r io.Reader) ([]Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var scenarios []Scenario
	if err := dec.Decode(&scenarios); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoScenarios
		}
		return nil, fmt.Errorf("decoding scenarios: %w", err)
	}
	if len(scenarios) == 0 {
		return nil, ErrNoScenarios
	}
	return scenarios, nil
}

// LoadScenarios reads a scenario file from disk.
func LoadScenarios(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario file: %w", err)
	}
	defer f.Close()

	scenarios, err := DecodeScenarios(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scenarios, nil
}
