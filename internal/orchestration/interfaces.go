//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks
//go:generate mockgen -destination=mocks/mock_counter.go -package=mocks github.com/agbru/primecount/internal/primes Counter

package orchestration

import (
	"io"
	"sync"

	"github.com/agbru/primecount/internal/metrics"
	"github.com/agbru/primecount/internal/primes"
	"github.com/agbru/primecount/internal/timing"
)

// ProgressUpdate is a progress notification for one run.
type ProgressUpdate struct {
	// RunIndex is the position of the run in execution order.
	RunIndex int
	// Value is the completed fraction of the run (0.0 to 1.0).
	Value float64
}

// RunResult encapsulates the outcome of a single counting run.
// It serves as the shared domain type between orchestration and presentation layers.
type RunResult struct {
	// Name is the strategy identifier ("sequential", "parallel").
	Name string
	// Label is the console tag, e.g. "Multi-Threaded".
	Label string
	// Workers is the number of goroutines the run scanned with.
	Workers int
	// Count is the number of primes found.
	Count int64
	// Measurement holds the wall and CPU time of the run.
	Measurement timing.Measurement
	// Partials are the per-chunk counts of a parallel run, nil otherwise.
	Partials []int64
	// Chunks are the index ranges matching Partials.
	Chunks []primes.Chunk
	// Memory is the allocation activity observed across the run.
	Memory metrics.MemoryDelta
}

// InputSummary describes the loaded input.
type InputSummary struct {
	// Path is the file the numbers were read from.
	Path string
	// Items is the number of integers parsed.
	Items int
	// Skipped is the number of non-empty lines that failed to parse.
	Skipped int
}

// Report is the pair of runs together with the derived speedup.
type Report struct {
	Input      InputSummary
	Sequential RunResult
	Parallel   RunResult
	// Speedup is sequential wall time divided by parallel wall time.
	Speedup float64
}

// Consistent reports whether both strategies found the same number of primes.
func (r Report) Consistent() bool {
	return r.Sequential.Count == r.Parallel.Count
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Verbose bool
	Details bool
}

// ProgressReporter defines the interface for displaying run progress.
// This interface decouples the orchestration layer from the presentation layer.
//
// Implementations handle the visual representation of progress (spinners,
// progress bars, etc.) while the orchestration layer drives the runs.
type ProgressReporter interface {
	// DisplayProgress starts displaying progress updates from the channel.
	// It should be called in a separate goroutine and will run until the
	// progressChan is closed.
	//
	// Parameters:
	//   - wg: A WaitGroup to signal when display is complete.
	//   - progressChan: Channel receiving progress updates from the runs.
	//   - numRuns: The number of runs being tracked.
	//   - out: The writer for progress output.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numRuns int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numRuns int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numRuns int, out io.Writer) {
	f(wg, progressChan, numRuns, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter defines the interface for presenting the final report.
// This interface decouples the orchestration layer from presentation concerns,
// allowing different output formats (console, quiet, TUI) without modifying
// the orchestration logic.
type ResultPresenter interface {
	// PresentReport displays the input line, both runs and the speedup.
	PresentReport(report Report, opts PresentationOptions, out io.Writer)
}
