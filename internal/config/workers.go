package config

import "github.com/agbru/primecount/internal/sysmon"

// Worker count resolution chain (highest priority first):
//   1. CLI flag (--workers / -w)
//   2. Environment variable (PRIMECOUNT_WORKERS)
//   3. CPUs available to the process (affinity mask, capped by GOMAXPROCS)

// ResolveWorkers returns the pool size for the run. A configured value of 0
// selects one worker per available CPU.
func ResolveWorkers(cfg AppConfig) int {
	if cfg.Workers > 0 {
		return cfg.Workers
	}
	return sysmon.AvailableCPUs()
}
