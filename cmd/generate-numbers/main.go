// Command generate-numbers writes a file of random integers for primecount.
//
// Usage:
//
//	generate-numbers [-n 1000000] [-o numbers.txt] [-seed S]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	apperrors "github.com/agbru/primecount/internal/errors"
	"github.com/agbru/primecount/internal/input"
	"github.com/agbru/primecount/internal/logging"
)

// generate is replaced in tests.
var generate = input.Generate

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("generate-numbers", flag.ContinueOnError)
	fs.SetOutput(stderr)
	n := fs.Int("n", 1000000, "Number of integers to write.")
	output := fs.String("o", "numbers.txt", "Output file.")
	seed := fs.Uint64("seed", 0, "Random seed (0 = time based).")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return apperrors.ExitSuccess
		}
		return apperrors.ExitErrorConfig
	}
	if *n < 0 {
		fmt.Fprintf(stderr, "Error: -n must be >= 0, got %d\n", *n)
		return apperrors.ExitErrorConfig
	}

	s := *seed
	if s == 0 {
		s = uint64(time.Now().UnixNano())
	}
	logger := logging.NewLogger(stderr, "generate-numbers")

	f, err := os.Create(*output)
	if err != nil {
		logger.Error("cannot create output", err, logging.String("path", *output))
		return apperrors.ExitErrorGeneric
	}
	rng := rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
	if err := generate(f, *n, rng); err != nil {
		f.Close()
		os.Remove(*output)
		logger.Error("write failed", err, logging.String("path", *output))
		return apperrors.ExitErrorGeneric
	}
	if err := f.Close(); err != nil {
		os.Remove(*output)
		logger.Error("close failed", err, logging.String("path", *output))
		return apperrors.ExitErrorGeneric
	}

	fmt.Fprintf(stdout, "Generated %d numbers in %s (seed %d)\n", *n, *output, s)
	return apperrors.ExitSuccess
}
