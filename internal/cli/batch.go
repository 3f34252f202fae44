package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/ecoquest/internal/config"
	"github.com/rshade/ecoquest/internal/engine"
	"github.com/rshade/ecoquest/internal/engine/batch"
	"github.com/rshade/ecoquest/internal/logging"
)

// BatchExitCode is returned when at least one scenario failed.
const BatchExitCode = 2

// BatchParams holds the flags of the batch command. Exported for testing.
type BatchParams struct {
	File        string
	Concurrency int
	Size        int
}

// NewBatchCmd creates the batch command, which estimates every scenario in a YAML file.
func NewBatchCmd() *cobra.Command {
	var params BatchParams

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Estimate every scenario in a YAML file",
		Long: `Reads a YAML list of scenarios and estimates each one.

Each scenario names a category (or location id) and its survey answers:

  - name: atlanta-home
    category: house
    inputs:
      zipCode: "30301"
      squareFootage: 2000

Failed scenarios are reported alongside the successful ones; the command exits
with status 2 when any scenario failed.`,
		Example: `  # Estimate a scenario file
  ecoquest batch --file scenarios.yaml

  # Estimate with more workers, as NDJSON
  ecoquest batch --file scenarios.yaml --concurrency 8 --output ndjson`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBatch(cmd, params)
		},
	}

	cmd.Flags().StringVarP(&params.File, "file", "f", "", "scenario YAML file")
	cmd.Flags().IntVar(&params.Concurrency, "concurrency", 0, "batches estimated at once (default from config)")
	cmd.Flags().IntVar(&params.Size, "batch-size", 0, "scenarios per batch (default from config)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// ValidateBatchParams fills zero values from the config and checks the limits.
func ValidateBatchParams(params *BatchParams, defaults config.BatchConfig) error {
	if params.File == "" {
		return errors.New("--file is required")
	}
	if params.Concurrency == 0 {
		params.Concurrency = defaults.Concurrency
	}
	if params.Size == 0 {
		params.Size = defaults.Size
	}
	if params.Concurrency < 1 || params.Concurrency > config.MaxBatchConcurrency {
		return fmt.Errorf("--concurrency must be between 1 and %d, got %d",
			config.MaxBatchConcurrency, params.Concurrency)
	}
	if params.Size < 1 || params.Size > config.MaxBatchSize {
		return fmt.Errorf("--batch-size must be between 1 and %d, got %d", config.MaxBatchSize, params.Size)
	}
	return nil
}

func runBatch(cmd *cobra.Command, params BatchParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	format, err := outputFormat(cmd)
	if err != nil {
		return err
	}
	if err = ValidateBatchParams(&params, config.GetBatchConfig()); err != nil {
		return err
	}

	scenarios, err := batch.LoadScenarios(params.File)
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Str("file", params.File).Msg("failed to load scenarios")
		return err
	}
	log.Debug().Ctx(ctx).Int("scenario_count", len(scenarios)).Str("file", params.File).Msg("scenarios loaded")

	runner := batch.NewRunner(
		engine.New(engine.WithLogger(*log)),
		batch.WithBatchSize(params.Size),
		batch.WithConcurrency(params.Concurrency),
		batch.WithLogger(*log),
		batch.WithProgress(func(p batch.ProgressSnapshot) {
			log.Debug().Ctx(ctx).
				Int("processed", p.ProcessedItems).
				Int("total", p.TotalItems).
				Float64("percent", p.PercentComplete).
				Msg("batch progress")
		}),
	)

	report, err := runner.Run(ctx, scenarios)
	if err != nil {
		return err
	}

	if err = renderBatchReport(cmd.OutOrStdout(), format, report); err != nil {
		return err
	}

	log.Info().Ctx(ctx).
		Int("succeeded", report.Succeeded).
		Int("failed", report.Failed).
		Msg("batch complete")

	if report.Failed > 0 {
		for _, line := range splitJoined(report.Err()) {
			cmd.PrintErrln(line)
		}
		return &ExitError{
			Code:   BatchExitCode,
			Reason: fmt.Sprintf("%d of %d scenarios failed", report.Failed, len(report.Results)),
		}
	}
	return nil
}

// splitJoined returns the messages of an errors.Join result, one per line.
func splitJoined(err error) []string {
	if err == nil {
		return nil
	}
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		msgs := make([]string, 0, len(joined.Unwrap()))
		for _, e := range joined.Unwrap() {
			msgs = append(msgs, e.Error())
		}
		return msgs
	}
	return []string{err.Error()}
}
