package primes

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ProgressStride is the number of elements the sequential counter scans
// between two progress reports.
const ProgressStride = 1 << 16

// ProgressCallback receives the completed fraction of a run (0.0 to 1.0).
// It may be called from several goroutines.
type ProgressCallback func(progress float64)

// Result is the outcome of one counting run.
type Result struct {
	// Count is the total number of primes found.
	Count int64
	// Partials holds one count per chunk for parallel runs, nil otherwise.
	Partials []int64
	// Chunks are the index ranges matching Partials.
	Chunks []Chunk
}

// Counter is a prime counting strategy.
type Counter interface {
	// Name identifies the strategy in reports and metrics.
	Name() string
	// Label is the short tag used in console output, e.g. "Single-Threaded".
	Label() string
	// Workers is the number of goroutines the strategy scans with.
	Workers() int
	// Count scans numbers and returns the number of primes. The context is
	// only consulted for values (tracing); a run is never cancelled.
	Count(ctx context.Context, numbers []int64, progress ProgressCallback) Result
}

// countRange counts the primes in numbers.
func countRange(numbers []int64) int64 {
	var count int64
	for _, n := range numbers {
		if IsPrime(n) {
			count++
		}
	}
	return count
}

// CountSequential returns the number of primes in numbers, scanned in order
// on the calling goroutine.
func CountSequential(numbers []int64) int64 {
	return countRange(numbers)
}

// CountParallel partitions numbers into workers chunks, counts each chunk on
// its own goroutine and returns the total together with the per-chunk counts.
func CountParallel(numbers []int64, workers int) (int64, []int64) {
	res := NewParallel(workers).Count(context.Background(), numbers, nil)
	return res.Count, res.Partials
}

// Sequential is the single-goroutine Counter.
type Sequential struct{}

// NewSequential returns the sequential strategy.
func NewSequential() *Sequential { return &Sequential{} }

// Name returns "sequential".
func (*Sequential) Name() string { return "sequential" }

// Label returns "Single-Threaded".
func (*Sequential) Label() string { return "Single-Threaded" }

// Workers always returns 1.
func (*Sequential) Workers() int { return 1 }

// Count scans numbers in order. With a non-nil progress callback the scan is
// split into strides of ProgressStride elements, reporting after each.
func (*Sequential) Count(_ context.Context, numbers []int64, progress ProgressCallback) Result {
	if progress == nil {
		return Result{Count: countRange(numbers)}
	}
	var count int64
	total := len(numbers)
	for from := 0; from < total; from += ProgressStride {
		to := min(from+ProgressStride, total)
		count += countRange(numbers[from:to])
		progress(float64(to) / float64(total))
	}
	progress(1.0)
	return Result{Count: count}
}

// Parallel is the fixed-size worker pool Counter.
type Parallel struct {
	workers int
}

// NewParallel returns a parallel strategy with the given pool size.
// A size below 1 is treated as 1.
func NewParallel(workers int) *Parallel {
	if workers < 1 {
		workers = 1
	}
	return &Parallel{workers: workers}
}

// Name returns "parallel".
func (*Parallel) Name() string { return "parallel" }

// Label returns "Multi-Threaded".
func (*Parallel) Label() string { return "Multi-Threaded" }

// Workers returns the pool size.
func (p *Parallel) Workers() int { return p.workers }

// Count submits one task per chunk to an errgroup limited to the pool size
// and sums the per-chunk counts once every task has returned. Each task
// writes only its own slot of the partials slice, so the slots need no
// locking; Wait is the only synchronisation point.
func (p *Parallel) Count(_ context.Context, numbers []int64, progress ProgressCallback) Result {
	chunks := Partition(len(numbers), p.workers)
	partials := make([]int64, len(chunks))

	var done atomic.Int64
	var g errgroup.Group
	g.SetLimit(p.workers)
	for i, c := range chunks {
		g.Go(func() error {
			if !c.Empty() {
				partials[i] = countRange(numbers[c.From:c.To])
			}
			if progress != nil {
				progress(float64(done.Add(1)) / float64(len(chunks)))
			}
			return nil
		})
	}
	// Tasks never return an error.
	_ = g.Wait()

	var total int64
	for _, c := range partials {
		total += c
	}
	return Result{Count: total, Partials: partials, Chunks: chunks}
}
