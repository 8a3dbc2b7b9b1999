package tui

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	apperrors "github.com/agbru/primecount/internal/errors"
	"github.com/agbru/primecount/internal/format"
	"github.com/agbru/primecount/internal/metrics"
	"github.com/agbru/primecount/internal/orchestration"
	"github.com/agbru/primecount/internal/primes"
)

const (
	// sampleInterval is the period of heap and goroutine sampling.
	sampleInterval = 250 * time.Millisecond
	// historySize is the number of samples kept for the sparklines.
	historySize = 48
)

// Job is the work the dashboard drives.
type Job struct {
	Input        orchestration.InputSummary
	Numbers      []int64
	Counters     []primes.Counter
	Options      orchestration.Options
	Presentation orchestration.PresentationOptions
}

// Model is the root bubbletea model of the dashboard.
type Model struct {
	job       Job
	parentCtx context.Context
	ref       *programRef

	header  HeaderModel
	panels  []RunPanel
	spinner spinner.Model
	help    help.Model
	keymap  KeyMap

	heap       *RingBuffer
	goroutines *RingBuffer
	collector  *metrics.MemoryCollector

	report     *orchestration.Report
	metrics    *metrics.RunMetrics
	showChunks bool
	generation uint64
	done       bool
	exitCode   int
	width      int
}

// NewModel creates the dashboard model for job.
func NewModel(parentCtx context.Context, job Job, version string) Model {
	panels := make([]RunPanel, len(job.Counters))
	for i, c := range job.Counters {
		panels[i] = NewRunPanel(c.Label(), c.Workers(), i > 0)
	}

	return Model{
		job:        job,
		parentCtx:  parentCtx,
		ref:        &programRef{},
		header:     NewHeaderModel(version, job.Input, poolSize(job.Counters)),
		panels:     panels,
		spinner:    spinner.New(spinner.WithSpinner(spinner.MiniDot), spinner.WithStyle(accentStyle)),
		help:       help.New(),
		keymap:     DefaultKeyMap(),
		heap:       NewRingBuffer(historySize),
		goroutines: NewRingBuffer(historySize),
		collector:  metrics.NewMemoryCollector(),
		showChunks: job.Presentation.Verbose,
		exitCode:   apperrors.ExitSuccess,
	}
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		tickCmd(),
		startRunsCmd(m.ref, m.parentCtx, m.job, m.generation),
	)
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ProgressMsg:
		if msg.RunIndex >= 0 && msg.RunIndex < len(m.panels) {
			m.panels[msg.RunIndex].SetProgress(msg.Value)
		}
		return m, nil

	case ProgressDoneMsg:
		return m, nil

	case ReportMsg:
		m.applyReport(msg.Report)
		return m, nil

	case RunsCompleteMsg:
		if msg.Generation != m.generation {
			return m, nil // stale message from a previous run
		}
		m.applyReport(msg.Report)
		m.metrics = msg.Metrics
		m.exitCode = msg.ExitCode
		m.done = true
		m.header.SetDone()
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		return m, tea.Batch(sampleMemStatsCmd(m.collector), tickCmd())

	case MemStatsMsg:
		m.heap.Push(float64(msg.HeapAlloc))
		m.goroutines.Push(float64(msg.NumGoroutine))
		return m, nil
	}

	return m, nil
}

func (m *Model) applyReport(r orchestration.Report) {
	m.report = &r
	if len(m.panels) > 0 {
		m.panels[0].SetResult(r.Sequential)
	}
	if len(m.panels) > 1 {
		m.panels[1].SetResult(r.Parallel)
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Chunks):
		m.showChunks = !m.showChunks
		return m, nil

	case key.Matches(msg, m.keymap.Rerun):
		// Runs cannot be interrupted, so a new pair only starts after the last.
		if !m.done {
			return m, nil
		}
		m.generation++
		for i := range m.panels {
			p := m.panels[i]
			m.panels[i] = NewRunPanel(p.label, p.workers, p.parallel)
		}
		m.report = nil
		m.metrics = nil
		m.done = false
		m.exitCode = apperrors.ExitSuccess
		m.heap.Reset()
		m.goroutines.Reset()
		m.header.Reset()
		return m, tea.Batch(tickCmd(), startRunsCmd(m.ref, m.parentCtx, m.job, m.generation))
	}
	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	panelWidth := max(m.width/max(len(m.panels), 1)-2, 30)
	views := make([]string, len(m.panels))
	for i, p := range m.panels {
		views[i] = p.View(m.spinner.View(), panelWidth)
	}

	sections := []string{
		m.header.View(),
		lipgloss.JoinHorizontal(lipgloss.Top, views...),
	}
	if m.report != nil {
		sections = append(sections, renderSummary(*m.report))
		if m.showChunks {
			sections = append(sections, renderChunkChart(m.report.Parallel))
		}
	}
	sections = append(sections, m.activityView(), m.help.View(m.keymap))
	return strings.Join(sections, "\n")
}

func (m Model) activityView() string {
	if m.heap.Len() == 0 {
		return dimStyle.Render("Heap        (sampling)")
	}
	return fmt.Sprintf("%s %s %s\n%s %s %d",
		dimStyle.Render("Heap      "), accentStyle.Render(RenderSparkline(m.heap.Slice())),
		format.FormatBytes(uint64(m.heap.Last())),
		dimStyle.Render("Goroutines"), accentStyle.Render(RenderSparkline(m.goroutines.Slice())),
		int(m.goroutines.Last()))
}

// tickCmd schedules the next sampling tick.
func tickCmd() tea.Cmd {
	return tea.Tick(sampleInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleMemStatsCmd reads heap and goroutine counts off the UI goroutine.
func sampleMemStatsCmd(c *metrics.MemoryCollector) tea.Cmd {
	return func() tea.Msg {
		s := c.Snapshot()
		return MemStatsMsg{HeapAlloc: s.HeapAlloc, NumGC: s.NumGC, NumGoroutine: runtime.NumGoroutine()}
	}
}

// startRunsCmd executes and analyses both runs, streaming progress and the
// report through ref. When the job records metrics, every pair gets its own
// registry so reruns never accumulate into the previous one.
func startRunsCmd(ref *programRef, ctx context.Context, job Job, gen uint64) tea.Cmd {
	return func() tea.Msg {
		opts := job.Options
		if opts.Metrics != nil {
			opts.Metrics = metrics.NewRunMetrics()
			opts.Metrics.SetInput(len(job.Numbers), poolSize(job.Counters))
		}
		results := orchestration.ExecuteRuns(ctx, job.Counters, job.Numbers, opts, &TUIProgressReporter{ref: ref}, io.Discard)
		report, code := orchestration.AnalyzeRuns(job.Input, results, job.Presentation, &TUIResultPresenter{ref: ref}, io.Discard)
		return RunsCompleteMsg{Report: report, ExitCode: code, Generation: gen, Metrics: opts.Metrics}
	}
}

// poolSize is the largest worker count among counters, at least 1.
func poolSize(counters []primes.Counter) int {
	workers := 1
	for _, c := range counters {
		workers = max(workers, c.Workers())
	}
	return workers
}
