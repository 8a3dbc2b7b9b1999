package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/primecount/internal/format"
	"github.com/agbru/primecount/internal/orchestration"
)

const (
	// panelBarWidth is the width of the per-run progress bar.
	panelBarWidth = 24
	// chunkBarWidth is the maximum width of a chunk bar.
	chunkBarWidth = 40
	// maxChunkRows caps the chunk chart; remaining chunks are summarised.
	maxChunkRows = 16
)

type runState int

const (
	runPending runState = iota
	runActive
	runFinished
)

// RunPanel shows one counting run.
type RunPanel struct {
	label    string
	workers  int
	parallel bool
	progress float64
	state    runState
	result   *orchestration.RunResult
}

// NewRunPanel creates a pending panel.
func NewRunPanel(label string, workers int, parallel bool) RunPanel {
	return RunPanel{label: label, workers: workers, parallel: parallel}
}

// SetProgress records progress; a complete value finishes the panel.
func (p *RunPanel) SetProgress(v float64) {
	p.progress = v
	switch {
	case v >= 1:
		p.state = runFinished
	case p.state == runPending:
		p.state = runActive
	}
}

// SetResult attaches the measured result.
func (p *RunPanel) SetResult(r orchestration.RunResult) {
	p.result = &r
	p.progress = 1
	p.state = runFinished
}

func (p RunPanel) title() string {
	style := sequentialStyle
	title := p.label
	if p.parallel {
		style = parallelStyle
		title = fmt.Sprintf("%s (%d goroutines)", p.label, p.workers)
	}
	return style.Render(title)
}

// View renders the panel. spin is the current spinner frame.
func (p RunPanel) View(spin string, width int) string {
	var status string
	switch p.state {
	case runPending:
		status = dimStyle.Render("waiting")
	case runActive:
		status = spin + " counting"
	default:
		status = successStyle.Render("done")
	}

	lines := []string{
		p.title(),
		renderBar(p.progress, panelBarWidth) + fmt.Sprintf(" %5.1f%%", p.progress*100),
		status,
	}
	if p.result != nil {
		lines = append(lines,
			"Primes: "+accentStyle.Render(format.FormatInt(p.result.Count)),
			"Time:   "+accentStyle.Render(format.FormatMillis(p.result.Measurement.Wall)+" ms"),
			dimStyle.Render(fmt.Sprintf("CPU %s, %.2f cores",
				format.FormatExecutionDuration(p.result.Measurement.CPU()), p.result.Measurement.Utilization())),
		)
	}
	return panelStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func renderBar(progress float64, width int) string {
	filled := int(min(max(progress, 0), 1) * float64(width))
	return barStyle.Render(strings.Repeat("█", filled)) + barEmptyStyle.Render(strings.Repeat("░", width-filled))
}

// renderSummary shows the speedup and the consistency status.
func renderSummary(r orchestration.Report) string {
	speedup := "Speedup: " + format.FormatSpeedup(r.Speedup) + "x"
	if r.Speedup >= 1 {
		speedup = successStyle.Render(speedup)
	} else {
		speedup = warningStyle.Render(speedup)
	}
	status := successStyle.Render("counts agree")
	if !r.Consistent() {
		status = errorStyle.Render(fmt.Sprintf("MISMATCH: sequential=%d parallel=%d", r.Sequential.Count, r.Parallel.Count))
	}
	return speedup + dimStyle.Render("  |  ") + status
}

// renderChunkChart draws one bar per chunk, scaled to the largest count.
func renderChunkChart(r orchestration.RunResult) string {
	if len(r.Partials) == 0 {
		return ""
	}
	var peak int64
	for _, c := range r.Partials {
		peak = max(peak, c)
	}
	rows := min(len(r.Partials), maxChunkRows)
	width := len(fmt.Sprint(len(r.Partials) - 1))

	var b strings.Builder
	b.WriteString(titleStyle.Render("Primes per chunk"))
	for i := 0; i < rows; i++ {
		n := 0
		if peak > 0 {
			n = int(float64(r.Partials[i]) / float64(peak) * chunkBarWidth)
		}
		fmt.Fprintf(&b, "\n#%-*d %s %s", width, i,
			barStyle.Render(strings.Repeat("█", n)+strings.Repeat(" ", chunkBarWidth-n)),
			format.FormatInt(r.Partials[i]))
	}
	if rest := len(r.Partials) - rows; rest > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("\n… %d more chunks", rest)))
	}
	return lipgloss.NewStyle().MarginTop(1).Render(b.String())
}
