package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/agbru/primecount/internal/format"
	"github.com/agbru/primecount/internal/orchestration"
)

// HeaderModel renders the top line: title, input and elapsed time.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	version   string
	input     orchestration.InputSummary
	workers   int
}

// NewHeaderModel creates a header whose timer starts now.
func NewHeaderModel(version string, input orchestration.InputSummary, workers int) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
		input:     input,
		workers:   workers,
	}
}

// SetDone freezes the elapsed timer.
func (h *HeaderModel) SetDone() {
	h.endTime = time.Now()
}

// Reset restarts the elapsed timer.
func (h *HeaderModel) Reset() {
	h.startTime = time.Now()
	h.endTime = time.Time{}
}

// Elapsed returns the time since start, or the frozen duration once done.
func (h HeaderModel) Elapsed() time.Duration {
	if !h.endTime.IsZero() {
		return h.endTime.Sub(h.startTime)
	}
	return time.Since(h.startTime)
}

// View renders the header.
func (h HeaderModel) View() string {
	title := "primecount"
	if h.version != "" && h.version != "dev" {
		title += " " + h.version
	}
	parts := []string{
		titleStyle.Render(title),
		fmt.Sprintf("%s (%s numbers)", h.input.Path, format.FormatInt(int64(h.input.Items))),
		fmt.Sprintf("%d workers", h.workers),
		accentStyle.Render("Elapsed: " + format.FormatExecutionDuration(h.Elapsed())),
	}
	return strings.Join(parts, dimStyle.Render(" | "))
}
