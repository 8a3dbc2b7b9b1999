// Package primes implements the prime counting core: a 6k±1 wheel primality
// test, a sequential counter, an index partitioner and a parallel counter that
// fans chunks out to a fixed-size errgroup.
//
// Both counters produce identical totals for the same input regardless of the
// worker count or the order in which chunks complete.
package primes
