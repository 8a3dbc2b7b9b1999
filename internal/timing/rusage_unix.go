//go:build unix

package timing

import (
	"time"

	"golang.org/x/sys/unix"
)

// readCPUTimes returns the CPU time consumed so far by the whole process.
func readCPUTimes() cpuTimes {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return cpuTimes{}
	}
	return cpuTimes{
		user:   time.Duration(ru.Utime.Nano()),
		system: time.Duration(ru.Stime.Nano()),
	}
}
