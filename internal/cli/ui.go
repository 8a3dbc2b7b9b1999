//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/primecount/internal/format"
	"github.com/agbru/primecount/internal/orchestration"
)

const (
	// ProgressRefreshRate defines the refresh frequency of the progress line.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 30
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows for the decoupling of the `DisplayProgress` function from a
// specific spinner implementation, facilitating easier testing and maintenance.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts `spinner.Spinner` to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() {
	rs.s.Start()
}

func (rs *realSpinner) Stop() {
	rs.s.Stop()
}

// UpdateSuffix sets the suffix under the spinner's lock, as the animation
// goroutine reads it concurrently.
func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	// Using the same interval as ProgressRefreshRate to synchronize
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// FormatProgressSuffix renders the text shown after the spinner.
func FormatProgressSuffix(progress float64, eta time.Duration) string {
	return fmt.Sprintf(" Counting primes %s", format.FormatProgressBarWithETA(progress, eta, ProgressBarWidth))
}

// DisplayProgress shows a spinner with an aggregated progress bar until
// progressChan is closed. The bar is refreshed on every update and on a
// ticker, so the ETA keeps moving between updates.
//
// Parameters:
//   - wg: Signalled when the display has stopped.
//   - progressChan: Progress updates from the runs.
//   - numRuns: The number of runs being tracked.
//   - out: The writer the spinner renders to.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numRuns int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(numRuns)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(FormatProgressSuffix(0, 0))
	s.Start()
	defer s.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				s.UpdateSuffix(FormatProgressSuffix(1.0, 0))
				return
			}
			p := agg.Update(update)
			s.UpdateSuffix(FormatProgressSuffix(p.AverageProgress, p.ETA))
		case <-ticker.C:
			s.UpdateSuffix(FormatProgressSuffix(agg.CalculateAverage(), agg.GetETA()))
		}
	}
}
