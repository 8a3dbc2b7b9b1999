// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayReport], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     They are pure functions suitable for composition.
//     Examples: [FormatRunLine], [FormatQuietResult].
//
//   - Write* functions write data to files on the filesystem.
//     They handle file creation, directory setup, and error handling.
//     Examples: [WriteReportToFile].

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	apperrors "github.com/agbru/primecount/internal/errors"
	"github.com/agbru/primecount/internal/format"
	"github.com/agbru/primecount/internal/orchestration"
	"github.com/agbru/primecount/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the report (empty for no file output).
	OutputFile string
	// Quiet suppresses the confirmation line after saving.
	Quiet bool
}

// FormatInputLine renders the "File:" line.
func FormatInputLine(in orchestration.InputSummary) string {
	return fmt.Sprintf("File: %s (%s numbers)", in.Path, format.FormatInt(int64(in.Items)))
}

// FormatRunLine renders the result line of one run. Runs that were split
// into chunks also show their goroutine count.
func FormatRunLine(r orchestration.RunResult) string {
	if r.Chunks == nil {
		return fmt.Sprintf("[%s] Primes found: %s  Time: %s ms",
			r.Label, format.FormatInt(r.Count), format.FormatMillis(r.Measurement.Wall))
	}
	return fmt.Sprintf("[%s] (%d goroutines) Primes found: %s  Time: %s ms",
		r.Label, r.Workers, format.FormatInt(r.Count), format.FormatMillis(r.Measurement.Wall))
}

// FormatSpeedupLine renders the "Speedup:" line.
func FormatSpeedupLine(ratio float64) string {
	return fmt.Sprintf("Speedup: %sx", format.FormatSpeedup(ratio))
}

// FormatReportLines returns the four plain report lines.
func FormatReportLines(r orchestration.Report) []string {
	return []string{
		FormatInputLine(r.Input),
		FormatRunLine(r.Sequential),
		FormatRunLine(r.Parallel),
		FormatSpeedupLine(r.Speedup),
	}
}

// FormatQuietResult formats a report for quiet mode output:
// "<sequential> <parallel> <speedup>", suitable for scripting.
func FormatQuietResult(r orchestration.Report) string {
	return fmt.Sprintf("%d %d %s", r.Sequential.Count, r.Parallel.Count, format.FormatSpeedup(r.Speedup))
}

// DisplayQuietResult outputs a report in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, r orchestration.Report) {
	fmt.Fprintln(out, FormatQuietResult(r))
}

// speedupColor picks green for a gain and yellow for a slowdown.
func speedupColor(ratio float64) string {
	if ratio >= 1 {
		return ui.ColorGreen()
	}
	return ui.ColorYellow()
}

// DisplayReport writes the report lines, followed by the per-chunk
// breakdown when verbose and the CPU and memory figures when details is set.
//
// Parameters:
//   - r: The report to display.
//   - opts: Verbose and details switches.
//   - out: The output writer.
func DisplayReport(r orchestration.Report, opts orchestration.PresentationOptions, out io.Writer) {
	lines := FormatReportLines(r)
	fmt.Fprintln(out, lines[0])
	fmt.Fprintf(out, "%s%s%s\n", ui.ColorBlue(), lines[1], ui.ColorReset())
	fmt.Fprintf(out, "%s%s%s\n", ui.ColorMagenta(), lines[2], ui.ColorReset())
	fmt.Fprintf(out, "%s%s%s%s\n", ui.ColorBold(), speedupColor(r.Speedup), lines[3], ui.ColorReset())

	if opts.Verbose {
		DisplayChunkBreakdown(r.Parallel, out)
	}
	if opts.Details {
		DisplayRunDetails(r.Sequential, out)
		DisplayRunDetails(r.Parallel, out)
	}
}

// DisplayChunkBreakdown lists the index range and partial count of every
// chunk of a parallel run.
func DisplayChunkBreakdown(r orchestration.RunResult, out io.Writer) {
	if len(r.Chunks) == 0 {
		return
	}
	fmt.Fprintf(out, "\n%sChunks (%d):%s\n", ui.ColorUnderline(), len(r.Chunks), ui.ColorReset())
	width := len(fmt.Sprint(len(r.Chunks) - 1))
	for i, c := range r.Chunks {
		var count int64
		if i < len(r.Partials) {
			count = r.Partials[i]
		}
		fmt.Fprintf(out, "  #%-*d [%s, %s)  %s%s%s primes\n",
			width, i, format.FormatInt(int64(c.From)), format.FormatInt(int64(c.To)),
			ui.ColorBlue(), format.FormatInt(count), ui.ColorReset())
	}
}

// DisplayRunDetails shows CPU time, utilization and memory activity of a run.
func DisplayRunDetails(r orchestration.RunResult, out io.Writer) {
	m := r.Measurement
	fmt.Fprintf(out, "\n%s%s run:%s\n", ui.ColorUnderline(), r.Label, ui.ColorReset())
	fmt.Fprintf(out, "  Wall time:       %s\n", format.FormatExecutionDuration(m.Wall))
	fmt.Fprintf(out, "  CPU time:        %s (user %s, system %s)\n",
		format.FormatExecutionDuration(m.CPU()),
		format.FormatExecutionDuration(m.User), format.FormatExecutionDuration(m.System))
	fmt.Fprintf(out, "  CPU utilization: %.2f cores\n", m.Utilization())
	DisplayMemoryStats(r.Memory.HeapHigh, r.Memory.Allocated, r.Memory.NumGC, r.Memory.PauseTotalNs, out)
}

// DisplayMemoryStats shows memory statistics of a run.
func DisplayMemoryStats(heapHigh, allocated uint64, numGC uint32, pauseTotalNs uint64, out io.Writer) {
	fmt.Fprintf(out, "  Heap (high):     %s\n", format.FormatBytes(heapHigh))
	fmt.Fprintf(out, "  Allocated:       %s\n", format.FormatBytes(allocated))
	fmt.Fprintf(out, "  GC cycles:       %d\n", numGC)
	fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(pauseTotalNs)/1e6)
}

// WriteReportToFile writes the report, preceded by a commented header, to
// path. Missing parent directories are created.
//
// Returns:
//   - error: An apperrors.OutputError if the file cannot be written.
func WriteReportToFile(r orchestration.Report, path string) error {
	if path == "" {
		return nil
	}
	wrap := func(err error) error {
		return apperrors.OutputError{Kind: "report", Path: path, Cause: err}
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return wrap(fmt.Errorf("failed to create directory: %w", err))
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return wrap(err)
	}

	if err := writeReport(file, r); err != nil {
		file.Close()
		return wrap(err)
	}
	if err := file.Close(); err != nil {
		return wrap(err)
	}
	return nil
}

// writeReport writes the report file body to w. Write errors are sticky in
// the buffer and surface at Flush.
func writeReport(w io.Writer, r orchestration.Report) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# Prime Count Report\n")
	fmt.Fprintf(bw, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(bw, "# File: %s\n", r.Input.Path)
	fmt.Fprintf(bw, "# Items: %d\n", r.Input.Items)
	fmt.Fprintf(bw, "# Skipped lines: %d\n", r.Input.Skipped)
	fmt.Fprintf(bw, "# Workers: %d\n", r.Parallel.Workers)
	fmt.Fprintf(bw, "\n")
	for _, line := range FormatReportLines(r) {
		fmt.Fprintln(bw, line)
	}
	if !r.Consistent() {
		fmt.Fprintf(bw, "MISMATCH: sequential=%d parallel=%d\n", r.Sequential.Count, r.Parallel.Count)
	}
	return bw.Flush()
}

// SaveReport writes the report file when one is configured and confirms it
// on out unless quiet.
func SaveReport(out io.Writer, r orchestration.Report, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}
	if err := WriteReportToFile(r, config.OutputFile); err != nil {
		return err
	}
	if !config.Quiet {
		fmt.Fprintf(out, "\n%s✓ Report saved to: %s%s%s\n",
			ui.ColorGreen(), ui.ColorBlue(), config.OutputFile, ui.ColorReset())
	}
	return nil
}
