package batch

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Default batch processing configuration.
const (
	// DefaultBatchSize is the default number of items per batch.
	DefaultBatchSize = 25

	// MinBatchSize is the minimum allowed batch size.
	MinBatchSize = 1

	// MaxBatchSize is the maximum allowed batch size.
	MaxBatchSize = 1000
)

// Common batch processing errors.
var (
	ErrInvalidBatchSize = errors.New("batch size must be between 1 and 1000")
	ErrNilCallback      = errors.New("batch callback cannot be nil")
	ErrEmptyItems       = errors.New("items slice cannot be empty")
)

// BatchCallback processes one batch. offset is the index of batch[0] in the full
// item slice.
//
//nolint:revive // BatchCallback is the canonical name for this exported type.
type BatchCallback[T any] func(ctx context.Context, batch []T, offset int) error

// ProgressCallback is invoked after each batch completes.
type ProgressCallback func(progress ProgressSnapshot)

// Processor splits items into fixed-size batches.
type Processor[T any] struct {
	batchSize  int
	onProgress ProgressCallback
}

// NewProcessor creates a processor with the given batch size.
func NewProcessor[T any](batchSize int) (*Processor[T], error) {
	if batchSize < MinBatchSize || batchSize > MaxBatchSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBatchSize, batchSize)
	}
	return &Processor[T]{batchSize: batchSize}, nil
}

// WithProgressCallback sets a progress callback for the processor.
func (p *Processor[T]) WithProgressCallback(callback ProgressCallback) *Processor[T] {
	p.onProgress = callback
	return p
}

// Process runs batches in order and stops on the first error.
func (p *Processor[T]) Process(ctx context.Context, items []T, callback BatchCallback[T]) error {
	if err := p.check(items, callback); err != nil {
		return err
	}

	progress := NewProgress(len(items), p.calculateTotalBatches(len(items)), p.batchSize)
	for i, bounds := range p.CalculateBatches(len(items)) {
		if err := ctx.Err(); err != nil {
			return err
		}
		batch := items[bounds[0]:bounds[1]]
		if err := callback(ctx, batch, bounds[0]); err != nil {
			return fmt.Errorf("batch %d failed: %w", i, err)
		}
		p.notify(progress, len(batch))
	}
	return nil
}

// ProcessConcurrent runs up to maxConcurrency batches at once. Every batch runs even
// when others fail; the errors are joined in batch order.
func (p *Processor[T]) ProcessConcurrent(
	ctx context.Context,
	items []T,
	callback BatchCallback[T],
	maxConcurrency int,
) error {
	if err := p.check(items, callback); err != nil {
		return err
	}
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}

	bounds := p.CalculateBatches(len(items))
	progress := NewProgress(len(items), len(bounds), p.batchSize)
	errs := make([]error, len(bounds))

	var g errgroup.Group
	g.SetLimit(maxConcurrency)

	for i, b := range bounds {
		if err := ctx.Err(); err != nil {
			errs[i] = err
			break
		}
		batch := items[b[0]:b[1]]
		g.Go(func() error {
			if err := callback(ctx, batch, b[0]); err != nil {
				errs[i] = fmt.Errorf("batch %d failed: %w", i, err)
				return nil
			}
			p.notify(progress, len(batch))
			return nil
		})
	}
	_ = g.Wait()

	return errors.Join(errs...)
}

// GetBatchSize returns the configured batch size.
func (p *Processor[T]) GetBatchSize() int {
	return p.batchSize
}

// CalculateBatches returns [start, end) index pairs covering totalItems.
func (p *Processor[T]) CalculateBatches(totalItems int) [][2]int {
	totalBatches := p.calculateTotalBatches(totalItems)
	batches := make([][2]int, totalBatches)
	for i := range totalBatches {
		start := i * p.batchSize
		batches[i] = [2]int{start, min(start+p.batchSize, totalItems)}
	}
	return batches
}

func (p *Processor[T]) calculateTotalBatches(totalItems int) int {
	return (totalItems + p.batchSize - 1) / p.batchSize
}

func (p *Processor[T]) check(items []T, callback BatchCallback[T]) error {
	if len(items) == 0 {
		return ErrEmptyItems
	}
	if callback == nil {
		return ErrNilCallback
	}
	return nil
}

func (p *Processor[T]) notify(progress *Progress, processed int) {
	snap := progress.AddProcessed(processed)
	if p.onProgress != nil {
		p.onProgress(snap)
	}
}
