package orchestration

import "github.com/agbru/primecount/internal/primes"

// CountersToRun returns the strategies of one invocation in execution order:
// the sequential baseline first, then the worker pool of the given size.
// Report analysis relies on this order.
func CountersToRun(workers int) []primes.Counter {
	return []primes.Counter{
		primes.NewSequential(),
		primes.NewParallel(workers),
	}
}
