// Package config parses command-line flags and environment variables into
// the application configuration.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"

	apperrors "github.com/agbru/primecount/internal/errors"
)

// EnvPrefix prefixes every environment variable the application reads.
const EnvPrefix = "PRIMECOUNT_"

// DefaultLogLevel is the diagnostics level used when none is configured.
const DefaultLogLevel = "warn"

// ErrMissingInput is returned when no input path was given.
var ErrMissingInput = errors.New("missing input file path")

// AppConfig holds the resolved configuration of one invocation.
type AppConfig struct {
	// InputPath is the file of integers to scan (the single positional argument).
	InputPath string
	// Workers is the parallel pool size. 0 means one per available CPU.
	Workers int
	// Quiet prints a single machine-readable result line.
	Quiet bool
	// Verbose adds the per-chunk breakdown of the parallel run.
	Verbose bool
	// Details adds CPU time, utilization and memory statistics.
	Details bool
	// OutputFile, when set, receives a copy of the report.
	OutputFile string
	// MetricsFile, when set, receives the Prometheus textfile.
	MetricsFile string
	// TUI launches the interactive dashboard instead of console output.
	TUI bool
	// NoColor disables ANSI colours.
	NoColor bool
	// LogLevel is the zerolog level name for diagnostics on stderr.
	LogLevel string
}

// ParseConfig parses args (without the program name) into an AppConfig.
//
// Flags may appear before or after the input path. Flags explicitly set on
// the command line win over PRIMECOUNT_* environment variables, which win
// over defaults.
//
// Parameters:
//   - programName: The name used in usage messages.
//   - args: The command-line arguments.
//   - errWriter: Receives usage and flag errors.
//
// Returns:
//   - AppConfig: The parsed configuration.
//   - error: flag.ErrHelp for -h/--help, a ConfigError or ValidationError otherwise.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	cfg := AppConfig{LogLevel: DefaultLogLevel}

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() { PrintUsage(fs, errWriter) }

	fs.IntVar(&cfg.Workers, "workers", 0, "Parallel worker count (0 = one per available CPU).")
	fs.IntVar(&cfg.Workers, "w", 0, "Shorthand for --workers.")
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Print only '<sequential> <parallel> <speedup>'.")
	fs.BoolVar(&cfg.Quiet, "q", false, "Shorthand for --quiet.")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Show the per-chunk breakdown of the parallel run.")
	fs.BoolVar(&cfg.Verbose, "v", false, "Shorthand for --verbose.")
	fs.BoolVar(&cfg.Details, "details", false, "Show CPU time, utilization and memory statistics.")
	fs.BoolVar(&cfg.Details, "d", false, "Shorthand for --details.")
	fs.StringVar(&cfg.OutputFile, "output", "", "Write the report to this file.")
	fs.StringVar(&cfg.OutputFile, "o", "", "Shorthand for --output.")
	fs.StringVar(&cfg.MetricsFile, "metrics-out", "", "Write Prometheus metrics in text format to this file.")
	fs.BoolVar(&cfg.TUI, "tui", false, "Show the interactive dashboard.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&cfg.LogLevel, "log-level", DefaultLogLevel, "Diagnostics level on stderr (debug, info, warn, error).")

	positional, err := parseInterleaved(fs, args)
	if err != nil {
		return cfg, err
	}

	applyEnvOverrides(&cfg, fs)

	switch len(positional) {
	case 0:
		fs.Usage()
		return cfg, apperrors.ConfigError{Message: ErrMissingInput.Error()}
	case 1:
		cfg.InputPath = positional[0]
	default:
		fs.Usage()
		return cfg, apperrors.NewConfigError("expected exactly one input file, got %d arguments", len(positional))
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(errWriter, "Error: %v\n", err)
		return cfg, err
	}
	return cfg, nil
}

// parseInterleaved parses flags that may be mixed with positional arguments.
// The standard flag package stops at the first non-flag argument, so parsing
// resumes after each positional one. Everything after "--" is positional.
func parseInterleaved(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// Validate checks value ranges.
func (c AppConfig) Validate() error {
	if c.Workers < 0 {
		return apperrors.ValidationError{Field: "workers", Message: fmt.Sprintf("must be >= 0, got %d", c.Workers)}
	}
	if c.Quiet && c.TUI {
		return apperrors.ValidationError{Field: "tui", Message: "cannot be combined with --quiet"}
	}
	return nil
}

// PrintUsage writes the usage message and flag defaults.
func PrintUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: %s [flags] <file_path>\n\n", fs.Name())
	fmt.Fprintf(w, "Counts the primes in a file of integers (one per line), sequentially and\n")
	fmt.Fprintf(w, "with a worker pool, and reports both timings and the speedup.\n\n")
	fmt.Fprintf(w, "Flags:\n")
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nEvery flag can also be set with a %s<NAME> environment variable,\n", EnvPrefix)
	fmt.Fprintf(w, "e.g. %sWORKERS=4. Command-line flags take precedence.\n", EnvPrefix)
}
