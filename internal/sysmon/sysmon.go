// Package sysmon reports the parallel execution resources available to the
// process.
package sysmon

import "runtime"

// Host describes the CPUs the process may run on.
type Host struct {
	NumCPU       int  // logical CPUs visible to the runtime
	Available    int  // CPUs in the scheduler affinity mask
	GOMAXPROCS   int  // Go scheduler limit
	FromAffinity bool // Available was read from the affinity mask
}

// AvailableCPUs returns the number of CPUs the process may use: the smaller
// of the affinity mask size and GOMAXPROCS, never below 1.
func AvailableCPUs() int {
	h := Sample()
	return max(min(h.Available, h.GOMAXPROCS), 1)
}

// Sample reads the current host CPU configuration.
func Sample() Host {
	h := Host{
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
	}
	if n, ok := affinityCPUs(); ok && n > 0 {
		h.Available = n
		h.FromAffinity = true
	} else {
		h.Available = h.NumCPU
	}
	return h
}
