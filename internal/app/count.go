package app

import (
	"context"
	"io"

	"github.com/agbru/primecount/internal/cli"
	"github.com/agbru/primecount/internal/config"
	apperrors "github.com/agbru/primecount/internal/errors"
	"github.com/agbru/primecount/internal/input"
	"github.com/agbru/primecount/internal/logging"
	"github.com/agbru/primecount/internal/metrics"
	"github.com/agbru/primecount/internal/orchestration"
	"github.com/agbru/primecount/internal/sysmon"
	"github.com/agbru/primecount/internal/tui"
)

// preparedJob is a loaded input together with its run sinks.
type preparedJob struct {
	tui.Job
	logger  logging.Logger
	metrics *metrics.RunMetrics
}

// prepare loads the input and resolves the worker pool. ok is false when the
// run must stop with code.
func (a *Application) prepare(out io.Writer) (job preparedJob, code int, ok bool) {
	logger := logging.NewConsoleLogger(a.ErrWriter, a.Config.LogLevel)

	numbers, stats, err := input.Load(a.Config.InputPath)
	if err != nil {
		logger.Debug("input load failed", logging.String("path", a.Config.InputPath))
		return job, a.handleError(err), false
	}
	logger.Info("input loaded",
		logging.String("path", a.Config.InputPath),
		logging.Int("items", len(numbers)),
		logging.Int("lines", stats.Lines),
		logging.Int("skipped", stats.Skipped))

	host := sysmon.Sample()
	workers := config.ResolveWorkers(a.Config)
	logger.Info("worker pool resolved",
		logging.Int("workers", workers),
		logging.Int("available_cpus", host.Available),
		logging.Int("gomaxprocs", host.GOMAXPROCS))

	if a.Config.Details && !a.Config.Quiet && !a.Config.TUI {
		cli.PrintExecutionConfig(host, workers, out)
	}

	m := metrics.NewRunMetrics()
	m.SetInput(len(numbers), workers)

	return preparedJob{
		Job: tui.Job{
			Input:    orchestration.InputSummary{Path: a.Config.InputPath, Items: len(numbers), Skipped: stats.Skipped},
			Numbers:  numbers,
			Counters: a.Counters(workers),
			Options:  orchestration.Options{Logger: logger, Metrics: m},
			Presentation: orchestration.PresentationOptions{
				Verbose: a.Config.Verbose,
				Details: a.Config.Details,
			},
		},
		logger:  logger,
		metrics: m,
	}, apperrors.ExitSuccess, true
}

// runCount orchestrates the console run: both counts, the report, then the
// optional report and metrics files.
func (a *Application) runCount(ctx context.Context, job preparedJob, out io.Writer) int {
	var progressReporter orchestration.ProgressReporter
	var presenter orchestration.ResultPresenter
	progressOut := out
	if a.Config.Quiet {
		progressOut = io.Discard
		progressReporter = orchestration.NullProgressReporter{}
		presenter = cli.QuietResultPresenter{}
	} else {
		progressReporter = cli.CLIProgressReporter{}
		presenter = cli.CLIResultPresenter{}
	}

	results := orchestration.ExecuteRuns(ctx, job.Counters, job.Numbers, job.Options, progressReporter, progressOut)
	report, code := orchestration.AnalyzeRuns(job.Input, results, job.Presentation, presenter, out)
	return a.export(report, code, job, out)
}

// export writes the report file and the metrics textfile. A write failure
// turns a successful run into ExitErrorGeneric; a mismatch code is kept.
func (a *Application) export(report orchestration.Report, code int, job preparedJob, out io.Writer) int {
	if code == apperrors.ExitErrorGeneric {
		return code
	}
	job.metrics.SetSpeedup(report.Speedup)

	outputCfg := cli.OutputConfig{OutputFile: a.Config.OutputFile, Quiet: a.Config.Quiet}
	if err := cli.SaveReport(out, report, outputCfg); err != nil {
		return worst(code, a.handleError(err))
	}
	if a.Config.OutputFile != "" {
		job.logger.Info("report written", logging.String("path", a.Config.OutputFile))
	}

	if a.Config.MetricsFile != "" {
		if err := job.metrics.WriteTextfile(a.Config.MetricsFile); err != nil {
			return worst(code, a.handleError(apperrors.OutputError{Kind: "metrics", Path: a.Config.MetricsFile, Cause: err}))
		}
		job.logger.Info("metrics written", logging.String("path", a.Config.MetricsFile))
	}
	return code
}

func (a *Application) handleError(err error) int {
	return apperrors.HandleError(err, a.ErrWriter, cli.CLIColorProvider{})
}

// worst keeps a mismatch code over a later write failure.
func worst(code, next int) int {
	if code != apperrors.ExitSuccess {
		return code
	}
	return next
}
