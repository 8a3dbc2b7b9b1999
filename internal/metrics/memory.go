// Package metrics collects runtime memory readings around counting runs and
// exports per-invocation run metrics in Prometheus format.
package metrics

import "runtime"

// MemorySnapshot holds a point-in-time memory reading.
type MemorySnapshot struct {
	HeapAlloc    uint64 // bytes in use by application
	TotalAlloc   uint64 // cumulative bytes allocated
	Sys          uint64 // total bytes obtained from OS
	NumGC        uint32 // number of completed GC cycles
	PauseTotalNs uint64 // cumulative GC pause time
	Mallocs      uint64 // cumulative heap object allocations
}

// MemoryDelta is the difference between two snapshots taken around a run.
type MemoryDelta struct {
	Allocated    uint64 // bytes allocated during the run
	Mallocs      uint64 // heap objects allocated during the run
	NumGC        uint32 // GC cycles completed during the run
	PauseTotalNs uint64 // GC pause time during the run
	HeapHigh     uint64 // larger of the before and after HeapAlloc readings, not a sampled peak
}

// MemoryCollector reads runtime memory statistics.
type MemoryCollector struct{}

// NewMemoryCollector creates a new memory collector.
func NewMemoryCollector() *MemoryCollector {
	return &MemoryCollector{}
}

// Snapshot reads current memory statistics.
func (mc *MemoryCollector) Snapshot() MemorySnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return MemorySnapshot{
		HeapAlloc:    m.HeapAlloc,
		TotalAlloc:   m.TotalAlloc,
		Sys:          m.Sys,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		Mallocs:      m.Mallocs,
	}
}

// Delta returns what changed between before and after.
func Delta(before, after MemorySnapshot) MemoryDelta {
	return MemoryDelta{
		Allocated:    after.TotalAlloc - before.TotalAlloc,
		Mallocs:      after.Mallocs - before.Mallocs,
		NumGC:        after.NumGC - before.NumGC,
		PauseTotalNs: after.PauseTotalNs - before.PauseTotalNs,
		HeapHigh:     max(before.HeapAlloc, after.HeapAlloc),
	}
}
