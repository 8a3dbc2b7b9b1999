package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/primecount/internal/errors"
	"github.com/agbru/primecount/internal/metrics"
	"github.com/agbru/primecount/internal/orchestration"
)

// ErrAborted is returned when the dashboard is closed before both runs finished.
var ErrAborted = errors.New("dashboard closed before the runs completed")

// Outcome is the last completed pair of runs when the dashboard closes.
type Outcome struct {
	Report   orchestration.Report
	ExitCode int
	// Metrics holds only that pair's observations; nil when the job
	// recorded none.
	Metrics *metrics.RunMetrics
}

// Run starts the dashboard and blocks until the user quits.
//
// Returns:
//   - Outcome: The last completed pair of runs.
//   - error: ErrAborted when no pair completed, or the bubbletea error.
func Run(ctx context.Context, job Job, version string) (Outcome, error) {
	initTUIStyles()

	model := NewModel(ctx, job, version)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.ref.SetProgram(p)

	final, err := p.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return Outcome{ExitCode: apperrors.ExitErrorGeneric}, err
	}
	m, ok := final.(Model)
	if !ok || !m.done || m.report == nil {
		return Outcome{ExitCode: apperrors.ExitErrorGeneric}, ErrAborted
	}
	return Outcome{Report: *m.report, ExitCode: m.exitCode, Metrics: m.metrics}, nil
}
