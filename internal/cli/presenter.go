package cli

import (
	"io"
	"sync"

	"github.com/agbru/primecount/internal/orchestration"
	"github.com/agbru/primecount/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter for CLI output.
// It wraps the DisplayProgress function to provide a spinner and progress bar
// display while the runs execute.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing runs.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numRuns int, out io.Writer) {
	DisplayProgress(wg, progressChan, numRuns, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter with the
// colorized console report.
type CLIResultPresenter struct{}

// QuietResultPresenter implements orchestration.ResultPresenter with the
// single-line scripting format.
type QuietResultPresenter struct{}

// Verify interface compliance.
var (
	_ orchestration.ResultPresenter = CLIResultPresenter{}
	_ orchestration.ResultPresenter = QuietResultPresenter{}
)

// PresentReport displays the full console report.
func (CLIResultPresenter) PresentReport(report orchestration.Report, opts orchestration.PresentationOptions, out io.Writer) {
	DisplayReport(report, opts, out)
}

// PresentReport prints "<sequential> <parallel> <speedup>".
func (QuietResultPresenter) PresentReport(report orchestration.Report, _ orchestration.PresentationOptions, out io.Writer) {
	DisplayQuietResult(out, report)
}

// CLIColorProvider supplies the active theme's colors to apperrors.HandleError.
type CLIColorProvider struct{}

func (CLIColorProvider) Red() string    { return ui.ColorRed() }
func (CLIColorProvider) Yellow() string { return ui.ColorYellow() }
func (CLIColorProvider) Reset() string  { return ui.ColorReset() }
