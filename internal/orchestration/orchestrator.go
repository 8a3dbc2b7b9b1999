package orchestration

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/primecount/internal/errors"
	"github.com/agbru/primecount/internal/logging"
	"github.com/agbru/primecount/internal/metrics"
	"github.com/agbru/primecount/internal/primes"
	"github.com/agbru/primecount/internal/timing"
)

// TracerName is the instrumentation scope of the spans opened around runs.
const TracerName = "github.com/agbru/primecount/internal/orchestration"

// ProgressBufferSize is the capacity of the progress channel. Updates that
// do not fit are dropped so a slow display never stalls a timed run.
const ProgressBufferSize = 64

// Options carries the optional collaborators of ExecuteRuns.
type Options struct {
	// Logger receives run diagnostics. Nil disables logging.
	Logger logging.Logger
	// Metrics, when non-nil, records the outcome of every run.
	Metrics *metrics.RunMetrics
}

// ExecuteRuns executes the counters strictly one after another over the same
// numbers, so that no two runs compete for CPUs and their timings compare.
//
// Each run is wrapped in a tracing span and timed with timing.Measure; memory
// statistics are sampled outside the timed region. Progress is forwarded to
// the reporter, which is drained and stopped before ExecuteRuns returns.
//
// Parameters:
//   - ctx: Carries the tracing span parent. Runs are never cancelled.
//   - counters: The strategies to run, in order.
//   - numbers: The input, shared read-only by all runs.
//   - opts: Logger and metrics sinks.
//   - reporter: The progress reporter (use NullProgressReporter for quiet mode).
//   - out: The io.Writer for progress output.
//
// Returns:
//   - []RunResult: One result per counter, in execution order.
func ExecuteRuns(ctx context.Context, counters []primes.Counter, numbers []int64, opts Options, reporter ProgressReporter, out io.Writer) []RunResult {
	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger{}
	}
	tracer := otel.Tracer(TracerName)
	collector := metrics.NewMemoryCollector()

	progressChan := make(chan ProgressUpdate, ProgressBufferSize)
	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go reporter.DisplayProgress(&displayWg, progressChan, len(counters), out)

	results := make([]RunResult, len(counters))
	for i, counter := range counters {
		runCtx, span := tracer.Start(ctx, "count."+counter.Name(), trace.WithAttributes(
			attribute.String("strategy", counter.Name()),
			attribute.Int("workers", counter.Workers()),
			attribute.Int("items", len(numbers)),
		))
		logger.Debug("run started",
			logging.String("strategy", counter.Name()),
			logging.Int("workers", counter.Workers()),
			logging.Int("items", len(numbers)))

		report := func(v float64) {
			select {
			case progressChan <- ProgressUpdate{RunIndex: i, Value: v}:
			default:
			}
		}

		before := collector.Snapshot()
		var res primes.Result
		meas := timing.Measure(func() {
			res = counter.Count(runCtx, numbers, report)
		})
		after := collector.Snapshot()

		span.SetAttributes(
			attribute.Int64("primes", res.Count),
			attribute.Float64("wall_ms", timing.Millis(meas.Wall)),
		)
		span.End()

		// The final update is sent outside the timed region and may block.
		progressChan <- ProgressUpdate{RunIndex: i, Value: 1.0}

		results[i] = RunResult{
			Name:        counter.Name(),
			Label:       counter.Label(),
			Workers:     counter.Workers(),
			Count:       res.Count,
			Measurement: meas,
			Partials:    res.Partials,
			Chunks:      res.Chunks,
			Memory:      metrics.Delta(before, after),
		}
		logger.Info("run finished",
			logging.String("strategy", counter.Name()),
			logging.Int64("primes", res.Count),
			logging.Duration("wall", meas.Wall),
			logging.Duration("cpu", meas.CPU()))

		if opts.Metrics != nil {
			opts.Metrics.ObserveRun(counter.Name(), res.Count, meas)
			if res.Partials != nil {
				opts.Metrics.ObserveChunks(res.Partials)
			}
		}
	}

	close(progressChan)
	displayWg.Wait()

	return results
}

// BuildReport pairs the sequential and parallel results and derives the
// speedup. The first result is the baseline. A MismatchError is returned,
// together with the filled report, when the two counts differ.
func BuildReport(in InputSummary, results []RunResult) (Report, error) {
	if len(results) != 2 {
		return Report{Input: in}, fmt.Errorf("expected 2 run results, got %d", len(results))
	}
	r := Report{
		Input:      in,
		Sequential: results[0],
		Parallel:   results[1],
	}
	r.Speedup = timing.Speedup(r.Sequential.Measurement.Wall, r.Parallel.Measurement.Wall)
	if !r.Consistent() {
		return r, apperrors.MismatchError{Sequential: r.Sequential.Count, Parallel: r.Parallel.Count}
	}
	return r, nil
}

// AnalyzeRuns builds the report, presents it and checks the consistency of
// the two counts.
//
// Parameters:
//   - in: The input summary.
//   - results: The run results, sequential first.
//   - opts: Presentation options (verbose, details).
//   - presenter: The result presenter for display formatting.
//   - out: The io.Writer for the report.
//
// Returns:
//   - Report: The assembled report.
//   - int: An exit code indicating success (0) or the type of failure.
func AnalyzeRuns(in InputSummary, results []RunResult, opts PresentationOptions, presenter ResultPresenter, out io.Writer) (Report, int) {
	report, err := BuildReport(in, results)
	var mismatch apperrors.MismatchError
	switch {
	case errors.As(err, &mismatch):
		presenter.PresentReport(report, opts, out)
		fmt.Fprintf(out, "\nStatus: CRITICAL ERROR! Sequential and parallel counts differ (%d vs %d).\n",
			mismatch.Sequential, mismatch.Parallel)
		return report, apperrors.ExitErrorMismatch
	case err != nil:
		fmt.Fprintf(out, "Error: %v\n", err)
		return report, apperrors.ExitErrorGeneric
	}
	presenter.PresentReport(report, opts, out)
	return report, apperrors.ExitSuccess
}
