// Package timing measures counting runs and derives the speedup figure.
package timing

import (
	"math"
	"time"
)

// Measurement is the cost of one measured unit of work.
type Measurement struct {
	// Wall is the elapsed monotonic time.
	Wall time.Duration
	// User and System are the process CPU times consumed during the unit.
	// Both are zero on platforms without getrusage.
	User   time.Duration
	System time.Duration
}

// CPU returns the combined user and system time.
func (m Measurement) CPU() time.Duration { return m.User + m.System }

// Utilization returns CPU time divided by wall time, i.e. the average number
// of cores kept busy. It returns 0 when either figure is unavailable.
func (m Measurement) Utilization() float64 {
	if m.Wall <= 0 || m.CPU() <= 0 {
		return 0
	}
	return float64(m.CPU()) / float64(m.Wall)
}

// Measure runs fn and records its wall-clock and CPU cost. The wall clock is
// read immediately around fn; the resource usage reads sit outside it.
func Measure(fn func()) Measurement {
	before := readCPUTimes()
	start := time.Now()
	fn()
	wall := time.Since(start)
	after := readCPUTimes()

	return Measurement{
		Wall:   wall,
		User:   max(after.user-before.user, 0),
		System: max(after.system-before.system, 0),
	}
}

// Millis converts d to fractional milliseconds.
func Millis(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// Speedup returns seq/par. A zero parallel time yields +Inf when the
// sequential time is positive, and 1 when both are zero.
func Speedup(seq, par time.Duration) float64 {
	if par <= 0 {
		if seq <= 0 {
			return 1
		}
		return math.Inf(1)
	}
	return float64(seq) / float64(par)
}

type cpuTimes struct {
	user   time.Duration
	system time.Duration
}
