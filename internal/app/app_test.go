package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/agbru/primecount/internal/errors"
	"github.com/agbru/primecount/internal/primes"
)

// writeInput writes lines to a temporary input file and returns its path.
func writeInput(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "numbers.txt")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func sampleInput(t *testing.T) string {
	return writeInput(t, "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "abc", "")
}

func runApp(t *testing.T, args []string, opts ...AppOption) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	application, err := New(append([]string{"primecount"}, args...), &errOut, opts...)
	if err != nil {
		t.Fatalf("New(%v) failed: %v\nstderr: %s", args, err, errOut.String())
	}
	code = application.Run(context.Background(), &out)
	return code, out.String(), errOut.String()
}

// fixedCounter reports a preset count.
type fixedCounter struct {
	name    string
	workers int
	count   int64
}

func (f fixedCounter) Name() string  { return f.name }
func (f fixedCounter) Label() string { return f.name }
func (f fixedCounter) Workers() int  { return f.workers }
func (f fixedCounter) Count(_ context.Context, _ []int64, progress primes.ProgressCallback) primes.Result {
	if progress != nil {
		progress(1)
	}
	if f.workers > 1 {
		return primes.Result{Count: f.count, Partials: []int64{f.count}, Chunks: []primes.Chunk{{From: 0, To: 1}}}
	}
	return primes.Result{Count: f.count}
}

func TestNew(t *testing.T) {
	t.Run("parses path and flags", func(t *testing.T) {
		var errOut bytes.Buffer
		application, err := New([]string{"primecount", "-w", "3", "numbers.txt", "--quiet"}, &errOut)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if application.Config.InputPath != "numbers.txt" || application.Config.Workers != 3 || !application.Config.Quiet {
			t.Errorf("unexpected config %+v", application.Config)
		}
		if application.Counters == nil {
			t.Error("default counter factory should be set")
		}
	})

	t.Run("missing path is a config error", func(t *testing.T) {
		var errOut bytes.Buffer
		_, err := New([]string{"primecount"}, &errOut)
		if apperrors.ExitCodeFor(err) != apperrors.ExitErrorConfig {
			t.Errorf("expected config error, got %v", err)
		}
		if !strings.Contains(errOut.String(), "Usage:") {
			t.Errorf("usage should be printed, got %q", errOut.String())
		}
	})

	t.Run("help", func(t *testing.T) {
		var errOut bytes.Buffer
		_, err := New([]string{"primecount", "--help"}, &errOut)
		if !IsHelpError(err) {
			t.Errorf("expected help error, got %v", err)
		}
	})

	t.Run("empty args use the default program name", func(t *testing.T) {
		var errOut bytes.Buffer
		_, err := New(nil, &errOut)
		if err == nil {
			t.Fatal("expected an error without input path")
		}
		if !strings.Contains(errOut.String(), "primecount") {
			t.Errorf("usage should name the program, got %q", errOut.String())
		}
	})
}

func TestRun_ConsoleReport(t *testing.T) {
	path := sampleInput(t)
	code, out, errOut := runApp(t, []string{"--no-color", "-w", "2", path})

	if code != apperrors.ExitSuccess {
		t.Fatalf("code = %d, stderr: %s", code, errOut)
	}
	for _, want := range []string{
		"File: " + path + " (10 numbers)",
		"[Single-Threaded] Primes found: 5  Time:",
		"[Multi-Threaded] (2 goroutines) Primes found: 5  Time:",
		"Speedup:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got:\n%s", want, out)
		}
	}
	if errOut != "" {
		t.Errorf("default log level should keep stderr quiet, got %q", errOut)
	}
}

func TestRun_Details(t *testing.T) {
	code, out, _ := runApp(t, []string{"--no-color", "-d", "-w", "2", sampleInput(t)})
	if code != apperrors.ExitSuccess {
		t.Fatalf("code = %d", code)
	}
	for _, want := range []string{"Execution Configuration", "Worker pool: 2 goroutines", "CPU utilization"} {
		if !strings.Contains(out, want) {
			t.Errorf("details output should contain %q, got:\n%s", want, out)
		}
	}
}

func TestRun_Quiet(t *testing.T) {
	code, out, _ := runApp(t, []string{"-q", "-w", "4", sampleInput(t)})
	if code != apperrors.ExitSuccess {
		t.Fatalf("code = %d", code)
	}
	fields := strings.Fields(out)
	if len(fields) != 3 || fields[0] != "5" || fields[1] != "5" {
		t.Errorf("quiet output = %q, want '5 5 <speedup>'", out)
	}
}

func TestRun_LogLevel(t *testing.T) {
	_, _, errOut := runApp(t, []string{"--log-level", "info", "-q", sampleInput(t)})
	for _, want := range []string{"input loaded", "worker pool resolved"} {
		if !strings.Contains(errOut, want) {
			t.Errorf("stderr should contain %q, got %q", want, errOut)
		}
	}
}

func TestRun_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent.txt")
	code, out, errOut := runApp(t, []string{"--no-color", missing})

	if code != apperrors.ExitErrorGeneric {
		t.Errorf("code = %d, want %d", code, apperrors.ExitErrorGeneric)
	}
	if !strings.Contains(errOut, "Error reading file") {
		t.Errorf("stderr should report the read error, got %q", errOut)
	}
	if out != "" {
		t.Errorf("no work should be reported, got %q", out)
	}
}

func TestRun_EmptyFile(t *testing.T) {
	code, out, _ := runApp(t, []string{"-q", writeInput(t, "", "x")})
	if code != apperrors.ExitSuccess {
		t.Fatalf("code = %d", code)
	}
	if !strings.HasPrefix(out, "0 0 ") {
		t.Errorf("empty input should count zero, got %q", out)
	}
}

func TestRun_Mismatch(t *testing.T) {
	counters := WithCounters(func(workers int) []primes.Counter {
		return []primes.Counter{
			fixedCounter{name: "sequential", workers: 1, count: 5},
			fixedCounter{name: "parallel", workers: workers, count: 4},
		}
	})
	report := filepath.Join(t.TempDir(), "report.txt")
	code, out, _ := runApp(t, []string{"--no-color", "-w", "2", "-o", report, sampleInput(t)}, counters)

	if code != apperrors.ExitErrorMismatch {
		t.Errorf("code = %d, want %d", code, apperrors.ExitErrorMismatch)
	}
	if !strings.Contains(out, "CRITICAL") {
		t.Errorf("output should flag the mismatch, got:\n%s", out)
	}
	data, err := os.ReadFile(report)
	if err != nil {
		t.Fatalf("report should still be written: %v", err)
	}
	if !strings.Contains(string(data), "MISMATCH: sequential=5 parallel=4") {
		t.Errorf("report should record the mismatch, got:\n%s", data)
	}
}

func TestRun_OutputFiles(t *testing.T) {
	dir := t.TempDir()
	report := filepath.Join(dir, "out", "report.txt")
	prom := filepath.Join(dir, "primecount.prom")

	code, out, errOut := runApp(t, []string{"--no-color", "-w", "2", "-o", report, "--metrics-out", prom, sampleInput(t)})
	if code != apperrors.ExitSuccess {
		t.Fatalf("code = %d, stderr: %s", code, errOut)
	}
	if !strings.Contains(out, "Report saved to: "+report) {
		t.Errorf("output should confirm the report, got:\n%s", out)
	}

	data, err := os.ReadFile(report)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	for _, want := range []string{"# Prime Count Report", "# Items: 10", "# Skipped lines: 1", "# Workers: 2", "Primes found: 5"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("report should contain %q, got:\n%s", want, data)
		}
	}

	data, err = os.ReadFile(prom)
	if err != nil {
		t.Fatalf("metrics not written: %v", err)
	}
	for _, want := range []string{
		"primecount_items 10",
		"primecount_workers 2",
		`primecount_primes_found{strategy="sequential"} 5`,
		`primecount_primes_found{strategy="parallel"} 5`,
		"primecount_speedup_ratio",
		"primecount_run_duration_seconds",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("metrics should contain %q", want)
		}
	}
}

func TestRun_MetricsWriteFailure(t *testing.T) {
	prom := filepath.Join(t.TempDir(), "missing-dir", "primecount.prom")
	code, out, errOut := runApp(t, []string{"--no-color", "--metrics-out", prom, sampleInput(t)})

	if code != apperrors.ExitErrorGeneric {
		t.Errorf("code = %d, want %d", code, apperrors.ExitErrorGeneric)
	}
	if !strings.Contains(out, "Primes found: 5") {
		t.Errorf("results should be shown before the failure, got:\n%s", out)
	}
	if !strings.Contains(errOut, "Error saving metrics") {
		t.Errorf("stderr should report the failure, got %q", errOut)
	}
}

func TestWorst(t *testing.T) {
	t.Parallel()
	if worst(apperrors.ExitSuccess, apperrors.ExitErrorGeneric) != apperrors.ExitErrorGeneric {
		t.Error("a write failure should fail a successful run")
	}
	if worst(apperrors.ExitErrorMismatch, apperrors.ExitErrorGeneric) != apperrors.ExitErrorMismatch {
		t.Error("a mismatch should not be masked")
	}
}
