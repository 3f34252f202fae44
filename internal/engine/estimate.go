package engine

import (
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// calculation is the unrounded outcome of one category formula.
type calculation struct {
	emissions float64
	savings   float64
	tips      []string
}

// Estimator computes EmissionsEstimates. Its collaborators are fixed at construction,
// so one Estimator can be shared between goroutines.
type Estimator struct {
	logger zerolog.Logger
	now    func() time.Time
	newID  func(time.Time) string
}

// Option configures an Estimator.
type Option func(*Estimator)

// WithLogger sets the logger receiving diagnostic traces (house breakdown at debug level).
func WithLogger(l zerolog.Logger) Option {
	return func(e *Estimator) { e.logger = l }
}

// WithClock sets the source of EmissionsEstimate.Timestamp.
func WithClock(now func() time.Time) Option {
	return func(e *Estimator) {
		if now != nil {
			e.now = now
		}
	}
}

// WithIDSource sets the generator of EmissionsEstimate.ID.
func WithIDSource(newID func(time.Time) string) Option {
	return func(e *Estimator) {
		if newID != nil {
			e.newID = newID
		}
	}
}

// New creates an Estimator. By default it discards its diagnostic trace, stamps
// results with time.Now and identifies them with a ULID. Callers that want the
// trace pass WithLogger.
func New(opts ...Option) *Estimator {
	e := &Estimator{
		logger: zerolog.Nop(),
		now:    time.Now,
		newID:  newULID,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func newULID(t time.Time) string {
	return ulid.MustNew(ulid.Timestamp(t), ulid.DefaultEntropy()).String()
}

// Estimate dispatches input to its category formula and returns a complete estimate.
//
// The only failure inside the formulas is an airport code missing from the
// reference table (ErrInvalidReferenceKey). A nil input returns ErrNilInput.
// Range checks belong to the caller; zero-valued answers yield zero emissions.
func (e *Estimator) Estimate(input SurveyInput) (*EmissionsEstimate, error) {
	input, ok := normalize(input)
	if !ok {
		return nil, ErrNilInput
	}

	var (
		calc calculation
		err  error
	)

	switch in := input.(type) {
	case HouseInput:
		calc = e.estimateHouse(in)
	case GarageInput:
		calc = estimateGarage(in)
	case CoffeeInput:
		calc = estimateCoffee(in)
	case GroceryInput:
		calc = estimateGrocery(in)
	case AirportInput:
		calc, err = estimateAirport(in)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownCategory, input)
	}
	if err != nil {
		return nil, fmt.Errorf("estimating %s: %w", input.Category(), err)
	}

	return e.build(input, calc), nil
}

// EstimateFor is Estimate with an explicit category tag. It fails with
// ErrCategoryMismatch when input belongs to another category.
func (e *Estimator) EstimateFor(category Category, input SurveyInput) (*EmissionsEstimate, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}
	input, ok := normalize(input)
	if !ok {
		return nil, ErrNilInput
	}
	if input.Category() != category {
		return nil, fmt.Errorf("%w: %s input for %s", ErrCategoryMismatch, input.Category(), category)
	}
	return e.Estimate(input)
}

// normalize dereferences pointer inputs. It reports false for nil inputs.
func normalize(input SurveyInput) (SurveyInput, bool) {
	switch in := input.(type) {
	case nil:
		return nil, false
	case *HouseInput:
		if in == nil {
			return nil, false
		}
		return *in, true
	case *GarageInput:
		if in == nil {
			return nil, false
		}
		return *in, true
	case *CoffeeInput:
		if in == nil {
			return nil, false
		}
		return *in, true
	case *GroceryInput:
		if in == nil {
			return nil, false
		}
		return *in, true
	case *AirportInput:
		if in == nil {
			return nil, false
		}
		return *in, true
	default:
		return input, true
	}
}

// build rounds the calculation up and assembles the immutable result.
func (e *Estimator) build(input SurveyInput, calc calculation) *EmissionsEstimate {
	category := input.Category()
	now := e.now()
	savings := roundUp(calc.savings)

	return &EmissionsEstimate{
		ID:           e.newID(now),
		Category:     category,
		LocationID:   category.LocationID(),
		LocationName: category.LocationName(),
		Inputs:       input.Fields(),
		Emissions:    roundUp(calc.emissions),
		Savings:      &savings,
		Unit:         UnitKgCO2e,
		Timeframe:    TimeframePerYear,
		Tips:         calc.tips,
		Timestamp:    now,
	}
}

//nolint:gochecknoglobals // Stateless default used by the package-level helpers.
var defaultEstimator = New()

// Estimate runs the default Estimator.
func Estimate(input SurveyInput) (*EmissionsEstimate, error) {
	return defaultEstimator.Estimate(input)
}

// EstimateFor runs the default Estimator with an explicit category tag.
func EstimateFor(category Category, input SurveyInput) (*EmissionsEstimate, error) {
	return defaultEstimator.EstimateFor(category, input)
}
