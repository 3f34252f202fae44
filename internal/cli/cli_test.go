package cli_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ecoquest/internal/cli"
	"github.com/rshade/ecoquest/internal/config"
	"github.com/rshade/ecoquest/internal/engine"
	"github.com/rshade/ecoquest/internal/survey"
)

// setupCLITest isolates the config home and registers cleanup for global state.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvOutputFormat, "")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

type estimateJSON struct {
	Category  string   `json:"category"`
	Emissions int64    `json:"emissions"`
	Savings   *int64   `json:"savings"`
	Unit      string   `json:"unit"`
	Tips      []string `json:"tips"`
	Display   struct {
		Emissions string `json:"emissions"`
		Savings   string `json:"savings"`
	} `json:"display"`
	Equivalencies *struct {
		DisplayText string `json:"display_text"`
	} `json:"equivalencies"`
	SavingsImpact string `json:"savings_impact"`
}

func TestEstimate_HouseTable(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "estimate", "house", "--zip", "30301", "--sqft", "2000")
	require.NoError(t, err)

	assert.Contains(t, out, "🏠 House")
	assert.Contains(t, out, "7,244 kg CO2e")
	assert.Contains(t, out, "2,919 kg CO2e")
	assert.Contains(t, out, "A 5 kW solar system could reduce your electricity emissions by 2919 kg CO2/year")
	assert.Contains(t, out, "Equivalent to driving ~")
	assert.Contains(t, out, "zipCode")
	assert.Contains(t, out, "30301")
}

func TestEstimate_GarageJSON(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "estimate", "garage", "--miles", "150", "--output", "json")
	require.NoError(t, err)

	var got estimateJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "garage", got.Category)
	assert.Equal(t, int64(3152), got.Emissions)
	require.NotNil(t, got.Savings)
	assert.Equal(t, int64(2528), *got.Savings)
	assert.Equal(t, "3,152", got.Display.Emissions)
	assert.Equal(t, "2,528", got.Display.Savings)
	assert.Equal(t, engine.UnitKgCO2e, got.Unit)
	require.NotNil(t, got.Equivalencies)
	assert.Contains(t, got.Equivalencies.DisplayText, "Equivalent to driving ~")
	assert.Contains(t, got.SavingsImpact, "tree seedlings")
}

func TestEstimate_AliasAndNDJSON(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "estimate", "coffee-shop", "--days", "3", "--output", "ndjson")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1)

	var got estimateJSON
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &got))
	assert.Equal(t, int64(16), got.Emissions)
	assert.Equal(t, int64(15), *got.Savings)
}

func TestEstimate_OutputFromConfigEnv(t *testing.T) {
	setupCLITest(t)
	t.Setenv(config.EnvOutputFormat, "json")

	out, _, err := execute(t, "estimate", "grocery", "--nights", "3")
	require.NoError(t, err)

	var got estimateJSON
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, int64(468), got.Emissions)
	assert.Equal(t, int64(375), *got.Savings)
}

func TestEstimate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantIs  error
		wantMsg string
	}{
		{
			name:    "invalid house answers",
			args:    []string{"estimate", "house", "--zip", "abc", "--sqft", "100"},
			wantIs:  survey.ErrInvalidField,
			wantMsg: survey.MsgZipCode,
		},
		{
			name:    "missing flag",
			args:    []string{"estimate", "garage"},
			wantIs:  survey.ErrInvalidField,
			wantMsg: survey.MsgMilesPerWeek,
		},
		{
			name:   "unknown airport",
			args:   []string{"estimate", "airport", "--flights", "1", "--origin", "ZZZ", "--destination", "LAX"},
			wantIs: engine.ErrInvalidReferenceKey,
		},
		{
			name:    "unsupported output",
			args:    []string{"estimate", "coffee", "--days", "1", "--output", "xml"},
			wantMsg: "unsupported output format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupCLITest(t)

			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			if tt.wantIs != nil {
				require.ErrorIs(t, err, tt.wantIs)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func writeScenarios(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestBatch_AllSucceed(t *testing.T) {
	setupCLITest(t)
	path := writeScenarios(t, `
- name: home
  category: house
  inputs:
    zipCode: "30301"
    squareFootage: 2000
- name: latte
  category: coffee
  inputs:
    daysPerWeek: 3
`)

	out, _, err := execute(t, "batch", "--file", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Succeeded: 2  Failed: 0")
	assert.Contains(t, out, "7,260")
	assert.Contains(t, out, "Average per scenario: 3,630 kg CO2e per year")
}

func TestBatch_AverageRoundsUp(t *testing.T) {
	setupCLITest(t)
	path := writeScenarios(t, `
- category: coffee
  inputs:
    daysPerWeek: 3
- category: coffee
  inputs:
    daysPerWeek: 1
- category: grocery
  inputs:
    nightsPerWeek: 0
`)

	out, _, err := execute(t, "batch", "--file", path, "--concurrency", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Total emissions: 22 kg CO2e per year")
	assert.Contains(t, out, "Average per scenario: 8 kg CO2e per year")
}

func TestBatch_FailuresExitNonZero(t *testing.T) {
	setupCLITest(t)

	out, errOut, err := execute(t, "batch", "--file", filepath.Join("..", "engine", "batch", "testdata", "scenarios.yaml"),
		"--concurrency", "2", "--batch-size", "2", "--output", "json")
	require.Error(t, err)

	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, cli.BatchExitCode, exitErr.Code)
	assert.Contains(t, errOut, "mystery airport")

	var report struct {
		Results []struct {
			Index int    `json:"index"`
			Error string `json:"error"`
		} `json:"results"`
		Succeeded int `json:"succeeded"`
		Failed    int `json:"failed"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 4, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	require.Len(t, report.Results, 5)
	assert.Equal(t, 5, report.Results[4].Index)
	assert.NotEmpty(t, report.Results[4].Error)
}

func TestBatch_NDJSONOneLinePerScenario(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "batch", "-f", filepath.Join("..", "engine", "batch", "testdata", "scenarios.yaml"),
		"--output", "ndjson")
	require.Error(t, err)

	scanner := bufio.NewScanner(strings.NewReader(out))
	count := 0
	for scanner.Scan() {
		var line map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
		count++
	}
	assert.Equal(t, 5, count)
}

func TestAirports_GeoJSON(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "airports", "--geojson")
	require.NoError(t, err)

	var fc struct {
		Type     string    `json:"type"`
		BBox     []float64 `json:"bbox"`
		Features []struct {
			Type     string `json:"type"`
			ID       string `json:"id"`
			Geometry struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &fc))

	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.BBox, 4)
	assert.InDelta(t, -122.5951, fc.BBox[0], 1e-9)
	assert.InDelta(t, 47.4502, fc.BBox[3], 1e-9)

	require.Len(t, fc.Features, len(engine.Airports()))
	atl := fc.Features[0]
	assert.Equal(t, "ATL", atl.ID)
	assert.Equal(t, "Point", atl.Geometry.Type)
	assert.InDeltaSlice(t, []float64{-84.4277, 33.6407}, atl.Geometry.Coordinates, 1e-9, "longitude first")
	assert.Equal(t, "Atlanta (ATL)", atl.Properties["name"])
}

func TestValidateBatchParams(t *testing.T) {
	defaults := config.BatchConfig{Concurrency: 4, Size: 25}

	params := cli.BatchParams{File: "x.yaml"}
	require.NoError(t, cli.ValidateBatchParams(&params, defaults))
	assert.Equal(t, 4, params.Concurrency)
	assert.Equal(t, 25, params.Size)

	params = cli.BatchParams{File: "x.yaml", Concurrency: config.MaxBatchConcurrency + 1}
	require.Error(t, cli.ValidateBatchParams(&params, defaults))

	params = cli.BatchParams{File: "x.yaml", Size: -1}
	require.Error(t, cli.ValidateBatchParams(&params, defaults))

	params = cli.BatchParams{}
	require.Error(t, cli.ValidateBatchParams(&params, defaults))
}

func TestReferenceCommands(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "airports", "--output", "json")
	require.NoError(t, err)
	var airports []cli.AirportView
	require.NoError(t, json.Unmarshal([]byte(out), &airports))
	assert.Len(t, airports, len(engine.Airports()))
	assert.Equal(t, engine.AirportCodes()[0], airports[0].Code)

	out, _, err = execute(t, "regions")
	require.NoError(t, err)
	assert.Contains(t, out, "REGION")
	assert.Contains(t, out, "3xxxx")
	assert.Contains(t, out, "Southeast")

	out, _, err = execute(t, "airports")
	require.NoError(t, err)
	assert.Contains(t, out, "Extent: latitude 25.7932 to 47.4502, longitude -122.5951 to -71.0096")
}

func TestConfigCommands(t *testing.T) {
	home := setupCLITest(t)

	out, _, err := execute(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")
	assert.FileExists(t, filepath.Join(home, "config.yaml"))

	_, _, err = execute(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = execute(t, "config", "init", "--force")
	require.NoError(t, err)

	out, _, err = execute(t, "config", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")

	config.ResetGlobalConfigForTest()
	out, _, err = execute(t, "config", "show", "--output", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"default_format": "table"`)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("batch:\n  concurrency: 0\n"), 0o600))
	_, _, err = execute(t, "config", "validate", "--file", bad)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestConfigFlagOverlay(t *testing.T) {
	setupCLITest(t)

	overlay := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(overlay, []byte("output:\n  default_format: ndjson\n"), 0o600))

	out, _, err := execute(t, "--config", overlay, "estimate", "coffee", "--days", "1")
	require.NoError(t, err)

	var got estimateJSON
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(out)), &got))
	assert.Equal(t, int64(6), got.Emissions)
}

func TestTour_RequiresTerminal(t *testing.T) {
	setupCLITest(t)

	_, _, err := execute(t, "tour")
	require.ErrorIs(t, err, cli.ErrNotTerminal)
}

func TestVersionCommand(t *testing.T) {
	setupCLITest(t)

	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "ecoquest ")

	root := cli.NewRootCmd("1.2.3")
	assert.Equal(t, "1.2.3", root.Version)
	assert.Equal(t, "ecoquest", root.Use)
}

func TestExitError(t *testing.T) {
	err := &cli.ExitError{Code: 2, Reason: "1 of 5 scenarios failed"}
	assert.Equal(t, "exit 2: 1 of 5 scenarios failed", err.Error())
}
