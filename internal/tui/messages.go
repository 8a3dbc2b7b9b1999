package tui

import (
	"time"

	"github.com/agbru/primecount/internal/metrics"
	"github.com/agbru/primecount/internal/orchestration"
)

// ProgressMsg carries one aggregated progress update.
type ProgressMsg struct {
	RunIndex        int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// ProgressDoneMsg signals that the progress channel was closed.
type ProgressDoneMsg struct{}

// ReportMsg carries the analysed report.
type ReportMsg struct {
	Report  orchestration.Report
	Options orchestration.PresentationOptions
}

// RunsCompleteMsg is returned by the run command once both runs finished.
type RunsCompleteMsg struct {
	Report     orchestration.Report
	ExitCode   int
	Generation uint64
	Metrics    *metrics.RunMetrics // registry of this pair, nil when not recording
}

// TickMsg drives periodic sampling.
type TickMsg time.Time

// MemStatsMsg is a runtime sample.
type MemStatsMsg struct {
	HeapAlloc    uint64
	NumGC        uint32
	NumGoroutine int
}
