package orchestration

import (
	"time"

	"github.com/agbru/primecount/internal/format"
)

// ProgressAggregator folds per-run progress updates into an average and an
// ETA. The spinner and the dashboard both consume the channel through it.
type ProgressAggregator struct {
	state   *format.ProgressWithETA
	numRuns int
}

// NewProgressAggregator returns nil when there is nothing to track.
func NewProgressAggregator(numRuns int) *ProgressAggregator {
	if numRuns <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:   format.NewProgressWithETA(numRuns),
		numRuns: numRuns,
	}
}

// AggregatedProgress is one update together with the aggregate it produced.
type AggregatedProgress struct {
	RunIndex        int
	Value           float64 // fraction reported by the run
	AverageProgress float64 // mean over all runs
	ETA             time.Duration
}

// Update records update and returns the new aggregate.
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	avgProgress, eta := a.state.UpdateWithETA(update.RunIndex, update.Value)
	return AggregatedProgress{
		RunIndex:        update.RunIndex,
		Value:           update.Value,
		AverageProgress: avgProgress,
		ETA:             eta,
	}
}

// CalculateAverage returns the current average, for ticker refreshes between updates.
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA returns the last ETA estimate.
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// NumRuns returns the number of runs being tracked.
func (a *ProgressAggregator) NumRuns() int {
	return a.numRuns
}

// DrainChannel discards updates until the channel is closed.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
