package batch

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rshade/ecoquest/internal/engine"
	"github.com/rshade/ecoquest/internal/survey"
)

// DefaultConcurrency is the number of batches estimated at once.
const DefaultConcurrency = 4

// Result is the outcome of one scenario.
type Result struct {
	Index    int                       `json:"index"`
	Name     string                    `json:"name,omitempty"`
	Category engine.Category           `json:"category,omitempty"`
	Estimate *engine.EmissionsEstimate `json:"estimate,omitempty"`
	Error    string                    `json:"error,omitempty"`

	Err error `json:"-"`
}

// OK reports whether the scenario produced an estimate.
func (r Result) OK() bool { return r.Err == nil && r.Estimate != nil }

// Report is the outcome of a whole run, in input order.
type Report struct {
	Results        []Result `json:"results"`
	Succeeded      int      `json:"succeeded"`
	Failed         int      `json:"failed"`
	TotalEmissions int64    `json:"total_emissions"`
	TotalSavings   int64    `json:"total_savings"`
}

// Err joins the errors of every failed scenario, or returns nil.
func (r *Report) Err() error {
	var errs []error
	for _, res := range r.Results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("scenario %d (%s): %w", res.Index+1, res.label(), res.Err))
		}
	}
	return errors.Join(errs...)
}

func (r Result) label() string {
	if r.Name != "" {
		return r.Name
	}
	if r.Category != "" {
		return string(r.Category)
	}
	return "unnamed"
}

// Runner estimates scenarios in batches. A concurrency of 1 runs the batches in order.
type Runner struct {
	estimator   *engine.Estimator
	batchSize   int
	concurrency int
	logger      zerolog.Logger
	onProgress  ProgressCallback
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithBatchSize sets the number of scenarios per batch.
func WithBatchSize(n int) RunnerOption {
	return func(r *Runner) { r.batchSize = n }
}

// WithConcurrency sets how many batches run at once. Values below 1 mean 1.
func WithConcurrency(n int) RunnerOption {
	return func(r *Runner) { r.concurrency = max(n, 1) }
}

// WithLogger sets the logger for per-scenario failures.
func WithLogger(l zerolog.Logger) RunnerOption {
	return func(r *Runner) { r.logger = l }
}

// WithProgress sets a callback invoked after each batch.
func WithProgress(cb ProgressCallback) RunnerOption {
	return func(r *Runner) { r.onProgress = cb }
}

// NewRunner creates a Runner around est. A nil est uses engine.New().
func NewRunner(est *engine.Estimator, opts ...RunnerOption) *Runner {
	if est == nil {
		est = engine.New()
	}
	r := &Runner{
		estimator:   est,
		batchSize:   DefaultBatchSize,
		concurrency: DefaultConcurrency,
		logger:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run estimates every scenario. Per-scenario failures are recorded in the report;
// the returned error is reserved for invalid settings, empty input and cancellation.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) (*Report, error) {
	if len(scenarios) == 0 {
		return nil, ErrNoScenarios
	}

	proc, err := NewProcessor[Scenario](r.batchSize)
	if err != nil {
		return nil, err
	}
	proc.WithProgressCallback(r.onProgress)

	results := make([]Result, len(scenarios))
	callback := func(ctx context.Context, batch []Scenario, offset int) error {
		for i, sc := range batch {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[offset+i] = r.runOne(offset+i, sc)
		}
		return nil
	}

	r.logger.Debug().
		Str("component", "batch").
		Int("scenarios", len(scenarios)).
		Int("batch_size", proc.GetBatchSize()).
		Int("concurrency", r.concurrency).
		Msg("batch run started")

	var runErr error
	if r.concurrency == 1 {
		runErr = proc.Process(ctx, scenarios, callback)
	} else {
		runErr = proc.ProcessConcurrent(ctx, scenarios, callback, r.concurrency)
	}

	report := &Report{Results: results}
	for i := range results {
		res := &results[i]
		switch {
		case res.OK():
			report.Succeeded++
			report.TotalEmissions += res.Estimate.Emissions
			report.TotalSavings += res.Estimate.SavingsValue()
		case res.Err != nil:
			report.Failed++
		}
	}

	if runErr != nil {
		return report, fmt.Errorf("batch run interrupted: %w", runErr)
	}
	return report, nil
}

func (r *Runner) runOne(index int, sc Scenario) Result {
	res := Result{Index: index, Name: sc.Name}

	category, err := engine.ParseCategory(sc.Category)
	if err != nil {
		return r.fail(res, err)
	}
	res.Category = category

	input, err := survey.Parse(category, sc.Inputs)
	if err != nil {
		return r.fail(res, err)
	}

	est, err := r.estimator.Estimate(input)
	if err != nil {
		return r.fail(res, err)
	}
	res.Estimate = est
	return res
}

func (r *Runner) fail(res Result, err error) Result {
	res.Err = err
	res.Error = err.Error()
	r.logger.Warn().
		Str("component", "batch").
		Int("scenario", res.Index+1).
		Str("name", res.Name).
		Err(err).
		Msg("scenario failed")
	return res
}
