package batch

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/ecoquest/internal/engine"
	"github.com/rshade/ecoquest/internal/survey"
)

func testEstimator() *engine.Estimator {
	return engine.New(
		engine.WithLogger(zerolog.Nop()),
		engine.WithClock(func() time.Time { return time.Date(2026, 4, 22, 0, 0, 0, 0, time.UTC) }),
	)
}

func TestLoadScenarios(t *testing.T) {
	scenarios, err := LoadScenarios("testdata/scenarios.yaml")
	require.NoError(t, err)
	require.Len(t, scenarios, 5)

	assert.Equal(t, "baseline home", scenarios[0].Name)
	assert.Equal(t, "house", scenarios[0].Category)
	assert.Equal(t, "30301", scenarios[0].Inputs["zipCode"])
	assert.Equal(t, 2000, scenarios[0].Inputs["squareFootage"])

	_, err = LoadScenarios("testdata/missing.yaml")
	require.Error(t, err)
}

func TestDecodeScenarios(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := DecodeScenarios(strings.NewReader(""))
		require.ErrorIs(t, err, ErrNoScenarios)

		_, err = DecodeScenarios(strings.NewReader("[]"))
		require.ErrorIs(t, err, ErrNoScenarios)
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := DecodeScenarios(strings.NewReader("- categroy: house\n"))
		require.Error(t, err)
	})

	t.Run("not a list", func(t *testing.T) {
		_, err := DecodeScenarios(strings.NewReader("category: house\n"))
		require.Error(t, err)
	})
}

func TestRunner_Run(t *testing.T) {
	scenarios, err := LoadScenarios("testdata/scenarios.yaml")
	require.NoError(t, err)

	var updates int
	runner := NewRunner(testEstimator(),
		WithBatchSize(2),
		WithConcurrency(1),
		WithProgress(func(ProgressSnapshot) { updates++ }),
	)

	report, err := runner.Run(context.Background(), scenarios)
	require.NoError(t, err)
	require.Len(t, report.Results, 5)
	assert.Equal(t, 3, updates)

	assert.Equal(t, 4, report.Succeeded)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, int64(7244+3152+16+468), report.TotalEmissions)
	assert.Equal(t, int64(2919+2528+15+375), report.TotalSavings)

	for i, res := range report.Results {
		assert.Equal(t, i, res.Index)
	}
	assert.Equal(t, engine.CategoryCoffee, report.Results[2].Category, "location ids resolve to categories")

	failed := report.Results[4]
	assert.False(t, failed.OK())
	require.ErrorIs(t, failed.Err, engine.ErrInvalidReferenceKey)
	assert.NotEmpty(t, failed.Error)

	err = report.Err()
	require.ErrorIs(t, err, engine.ErrInvalidReferenceKey)
	assert.Contains(t, err.Error(), "scenario 5 (mystery airport)")
}

func TestRunner_RecordFailures(t *testing.T) {
	scenarios := []Scenario{
		{Category: "boat"},
		{Category: "garage", Inputs: map[string]any{"milesPerWeek": 5000}},
		{Category: "grocery", Inputs: map[string]any{"nightsPerWeek": 3}},
	}

	report, err := NewRunner(testEstimator()).Run(context.Background(), scenarios)
	require.NoError(t, err)

	require.ErrorIs(t, report.Results[0].Err, engine.ErrUnknownCategory)
	require.ErrorIs(t, report.Results[1].Err, survey.ErrInvalidField)
	assert.Contains(t, report.Results[1].Error, survey.MsgMilesPerWeek)
	assert.True(t, report.Results[2].OK())
	assert.Equal(t, 1, report.Succeeded)
	assert.Equal(t, 2, report.Failed)
}

func TestRunner_ManyScenarios(t *testing.T) {
	scenarios := make([]Scenario, 120)
	for i := range scenarios {
		scenarios[i] = Scenario{
			Name:     fmt.Sprintf("coffee-%d", i),
			Category: "coffee",
			Inputs:   map[string]any{"daysPerWeek": 3},
		}
	}

	report, err := NewRunner(testEstimator(), WithBatchSize(7), WithConcurrency(8)).
		Run(context.Background(), scenarios)
	require.NoError(t, err)
	assert.Equal(t, 120, report.Succeeded)
	assert.Equal(t, int64(120*16), report.TotalEmissions)
	require.NoError(t, report.Err())
}

func TestRunner_Errors(t *testing.T) {
	_, err := NewRunner(nil).Run(context.Background(), nil)
	require.ErrorIs(t, err, ErrNoScenarios)

	_, err = NewRunner(nil, WithBatchSize(0)).Run(context.Background(), []Scenario{{Category: "coffee"}})
	require.ErrorIs(t, err, ErrInvalidBatchSize)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report, err := NewRunner(nil).Run(ctx, []Scenario{{Category: "coffee", Inputs: map[string]any{"daysPerWeek": 1}}})
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	assert.Zero(t, report.Succeeded)
}

func TestRunner_SequentialMatchesConcurrent(t *testing.T) {
	scenarios, err := LoadScenarios("testdata/scenarios.yaml")
	require.NoError(t, err)

	var buf strings.Builder
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	sequential, err := NewRunner(testEstimator(), WithBatchSize(2), WithConcurrency(1), WithLogger(logger)).
		Run(context.Background(), scenarios)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"batch_size":2`)
	assert.Contains(t, buf.String(), `"concurrency":1`)

	concurrent, err := NewRunner(testEstimator(), WithBatchSize(2), WithConcurrency(3)).
		Run(context.Background(), scenarios)
	require.NoError(t, err)

	assert.Equal(t, concurrent.Succeeded, sequential.Succeeded)
	assert.Equal(t, concurrent.Failed, sequential.Failed)
	assert.Equal(t, concurrent.TotalEmissions, sequential.TotalEmissions)
	assert.Equal(t, concurrent.TotalSavings, sequential.TotalSavings)
	for i := range sequential.Results {
		assert.Equal(t, concurrent.Results[i].Name, sequential.Results[i].Name)
	}
}

func TestRunner_SequentialCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := NewRunner(testEstimator(), WithConcurrency(1)).
		Run(ctx, []Scenario{{Category: "coffee", Inputs: map[string]any{"daysPerWeek": 1}}})
	require.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, report)
	assert.Zero(t, report.Succeeded)
}
