package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rshade/ecoquest/internal/engine"
)

// ErrEstimateMismatch is returned when an estimate is recorded for the wrong station.
var ErrEstimateMismatch = errors.New("estimate does not belong to this station")

// Progress thresholds.
const (
	lowImpactKg      = 100
	moderateImpactKg = 500
	halfPercent      = 50
	quarterPercent   = 25
	percentScale     = 100
)

// Summary messages.
const (
	MsgImpactLow       = "Excellent! You're already quite eco-friendly!"
	MsgImpactModerate  = "Good job! There's room for improvement."
	MsgImpactHigh      = "There's significant potential to reduce your carbon footprint!"
	MsgPotentialHalf   = "Amazing! You could save over half your emissions!"
	MsgPotentialPart   = "Great potential! You could save a quarter of your emissions."
	MsgPotentialSmall  = "Every little bit helps! Small changes add up."
	MsgQuestComplete   = "Quest Complete!"
	MsgQuestCongrats   = "Congratulations! You've explored all locations and discovered your annual carbon footprint."
	MsgAnnualBasisNote = "All emissions are calculated on an annual basis for consistent comparison"
)

// Visit is the latest estimate recorded at a station.
type Visit struct {
	Station  Station                   `json:"station"`
	Estimate *engine.EmissionsEstimate `json:"estimate"`
}

// Progress summarizes a tour.
type Progress struct {
	Visited          int           `json:"visited"`
	Total            int           `json:"total"`
	Visits           []Visit       `json:"visits"`
	Achievements     []Achievement `json:"achievements"`
	TotalEmissions   int64         `json:"total_emissions"`
	TotalSavings     int64         `json:"total_savings"`
	ReductionPercent float64       `json:"reduction_percent"`
	Complete         bool          `json:"complete"`
	ImpactMessage    string        `json:"impact_message"`
	PotentialMessage string        `json:"potential_message"`
}

// PercentVisited is the share of stations visited, 0-100.
func (p Progress) PercentVisited() float64 {
	if p.Total == 0 {
		return 0
	}
	return float64(p.Visited) / float64(p.Total) * percentScale
}

// Tour is one player's progress. It is safe for concurrent use.
type Tour struct {
	mu           sync.Mutex
	visits       map[engine.Category]*engine.EmissionsEstimate
	achievements []Achievement
	now          func() time.Time
}

// Option configures a Tour.
type Option func(*Tour)

// WithClock sets the source of Achievement.EarnedAt.
func WithClock(now func() time.Time) Option {
	return func(t *Tour) {
		if now != nil {
			t.now = now
		}
	}
}

// NewTour starts an empty tour.
func NewTour(opts ...Option) *Tour {
	t := &Tour{
		visits: make(map[engine.Category]*engine.EmissionsEstimate),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Record stores est as the station's latest result. The station's achievement is
// awarded on the first visit only; earned reports whether this call awarded it.
func (t *Tour) Record(est *engine.EmissionsEstimate) (achievement Achievement, earned bool, err error) {
	if est == nil {
		return Achievement{}, false, engine.ErrNilInput
	}
	if !est.Category.Valid() {
		return Achievement{}, false, fmt.Errorf("%w: %q", engine.ErrUnknownCategory, est.Category)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	_, visited := t.visits[est.Category]
	t.visits[est.Category] = est
	if visited {
		return t.achievementLocked(est.Category), false, nil
	}

	a := AchievementFor(est.Category)
	a.EarnedAt = t.now()
	t.achievements = append(t.achievements, a)
	return a, true, nil
}

// RecordAt is Record for a specific station, rejecting estimates of another category.
func (t *Tour) RecordAt(station engine.Category, est *engine.EmissionsEstimate) (Achievement, bool, error) {
	if est != nil && est.Category != station {
		return Achievement{}, false, fmt.Errorf("%w: %s estimate at %s", ErrEstimateMismatch, est.Category, station)
	}
	return t.Record(est)
}

func (t *Tour) achievementLocked(c engine.Category) Achievement {
	for _, a := range t.achievements {
		if a.Category == c {
			return a
		}
	}
	return AchievementFor(c)
}

// Visited reports whether a station has an estimate.
func (t *Tour) Visited(c engine.Category) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.visits[c]
	return ok
}

// Estimate returns the latest estimate recorded at a station.
func (t *Tour) Estimate(c engine.Category) (*engine.EmissionsEstimate, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	est, ok := t.visits[c]
	return est, ok
}

// Complete reports whether every station has been visited.
func (t *Tour) Complete() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.visits) == len(engine.Categories())
}

// Reset forgets every visit and achievement.
func (t *Tour) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.visits = make(map[engine.Category]*engine.EmissionsEstimate)
	t.achievements = nil
}

// Progress computes the current summary.
func (t *Tour) Progress() Progress {
	t.mu.Lock()
	defer t.mu.Unlock()

	stations := Stations()
	p := Progress{
		Total:        len(stations),
		Achievements: append([]Achievement(nil), t.achievements...),
	}
	for _, s := range stations {
		est, ok := t.visits[s.Category]
		if !ok {
			continue
		}
		p.Visited++
		p.Visits = append(p.Visits, Visit{Station: s, Estimate: est})
		p.TotalEmissions += est.Emissions
		p.TotalSavings += est.SavingsValue()
	}

	p.ReductionPercent = ReductionPercent(p.TotalEmissions, p.TotalSavings)
	p.Complete = p.Visited == p.Total
	p.ImpactMessage = ImpactMessage(p.TotalEmissions)
	p.PotentialMessage = PotentialMessage(p.ReductionPercent)
	return p
}

// ReductionPercent is savings / (emissions + savings) × 100, or 0 without savings.
func ReductionPercent(emissions, savings int64) float64 {
	if savings <= 0 {
		return 0
	}
	return float64(savings) / float64(emissions+savings) * percentScale
}

// ImpactMessage grades total annual emissions.
func ImpactMessage(totalEmissions int64) string {
	switch {
	case totalEmissions < lowImpactKg:
		return MsgImpactLow
	case totalEmissions < moderateImpactKg:
		return MsgImpactModerate
	default:
		return MsgImpactHigh
	}
}

// PotentialMessage grades the reduction percentage.
func PotentialMessage(reductionPercent float64) string {
	switch {
	case reductionPercent > halfPercent:
		return MsgPotentialHalf
	case reductionPercent > quarterPercent:
		return MsgPotentialPart
	default:
		return MsgPotentialSmall
	}
}
