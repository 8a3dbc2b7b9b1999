package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os/signal"
	"syscall"

	"github.com/agbru/primecount/internal/config"
	"github.com/agbru/primecount/internal/orchestration"
	"github.com/agbru/primecount/internal/primes"
	"github.com/agbru/primecount/internal/tui"
	"github.com/agbru/primecount/internal/ui"
)

// CounterFactory builds the counters to run for a resolved pool size.
type CounterFactory func(workers int) []primes.Counter

// Application represents the primecount application instance.
type Application struct {
	Config    config.AppConfig
	Counters  CounterFactory
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithCounters sets a custom CounterFactory for the application.
func WithCounters(f CounterFactory) AppOption {
	return func(a *Application) { a.Counters = f }
}

// New creates a new Application instance by parsing command-line arguments.
// args[0] is the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Counters == nil {
		app.Counters = orchestration.CountersToRun
	}

	programName := "primecount"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)

	job, code, ok := a.prepare(out)
	if !ok {
		return code
	}

	if a.Config.TUI {
		return a.runTUI(ctx, job, out)
	}
	return a.runCount(ctx, job, out)
}

// runTUI launches the interactive dashboard and exports the last report.
func (a *Application) runTUI(ctx context.Context, job preparedJob, out io.Writer) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	outcome, err := tui.Run(ctx, job.Job, Version)
	if err != nil {
		return a.handleError(err)
	}
	if outcome.Metrics != nil {
		job.metrics = outcome.Metrics
	}
	return a.export(outcome.Report, outcome.ExitCode, job, out)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
