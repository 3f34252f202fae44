package batch

import (
	"sync"
	"time"
)

// percentMultiplier is used to convert a ratio to percentage (0-100).
const percentMultiplier = 100

// Progress tracks batch completion. It is safe for concurrent use.
type Progress struct {
	totalItems       int
	processedItems   int
	totalBatches     int
	processedBatches int
	batchSize        int
	startTime        time.Time
	lastUpdateTime   time.Time

	mu sync.RWMutex
}

// NewProgress creates a new progress tracker.
func NewProgress(totalItems, totalBatches, batchSize int) *Progress {
	now := time.Now()
	return &Progress{
		totalItems:     totalItems,
		totalBatches:   totalBatches,
		batchSize:      batchSize,
		startTime:      now,
		lastUpdateTime: now,
	}
}

// AddProcessed records one finished batch of itemsProcessed items and returns
// the state right after the update.
func (p *Progress) AddProcessed(itemsProcessed int) ProgressSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.processedItems += itemsProcessed
	p.processedBatches++
	p.lastUpdateTime = time.Now()
	return p.snapshotLocked()
}

// PercentComplete returns the completion percentage (0-100).
func (p *Progress) PercentComplete() float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.percentLocked()
}

// IsComplete returns true if all items have been processed.
func (p *Progress) IsComplete() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.processedItems >= p.totalItems
}

// Snapshot returns a copy of the current progress state.
func (p *Progress) Snapshot() ProgressSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.snapshotLocked()
}

// ProgressSnapshot is an immutable view of progress state.
type ProgressSnapshot struct {
	TotalItems       int
	ProcessedItems   int
	TotalBatches     int
	ProcessedBatches int
	BatchSize        int
	StartTime        time.Time
	LastUpdateTime   time.Time
	PercentComplete  float64
	ElapsedTime      time.Duration
}

func (p *Progress) snapshotLocked() ProgressSnapshot {
	return ProgressSnapshot{
		TotalItems:       p.totalItems,
		ProcessedItems:   p.processedItems,
		TotalBatches:     p.totalBatches,
		ProcessedBatches: p.processedBatches,
		BatchSize:        p.batchSize,
		StartTime:        p.startTime,
		LastUpdateTime:   p.lastUpdateTime,
		PercentComplete:  p.percentLocked(),
		ElapsedTime:      p.lastUpdateTime.Sub(p.startTime),
	}
}

func (p *Progress) percentLocked() float64 {
	if p.totalItems == 0 {
		return 0
	}
	return (float64(p.processedItems) / float64(p.totalItems)) * percentMultiplier
}
