// Package input loads the list of integers to scan.
//
// Parsing is lenient: blank lines and lines that are not base-10 64-bit
// integers are skipped without error. Only failures to open or read the
// source are reported.
package input

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"

	apperrors "github.com/agbru/primecount/internal/errors"
)

// maxLineBytes is the read buffer size. A longer line cannot hold an int64,
// so it is drained and counted as skipped.
const maxLineBytes = 64 << 10

// ParseLine parses one trimmed line. It reports false for blank lines and
// for anything strconv.ParseInt rejects (garbage, overflow).
func ParseLine(line string) (int64, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Stats describes what a parse kept and dropped.
type Stats struct {
	Lines   int // total lines read
	Blank   int // empty after trimming
	Skipped int // non-blank but unparseable
}

// Parse reads r line by line and returns the parsed integers in input order.
// The returned error is non-nil only when reading r fails.
func Parse(r io.Reader) ([]int64, Stats, error) {
	var (
		numbers []int64
		stats   Stats
	)
	br := bufio.NewReaderSize(r, maxLineBytes)
	for {
		line, err := br.ReadSlice('\n')
		overlong := false
		for errors.Is(err, bufio.ErrBufferFull) {
			overlong = true
			_, err = br.ReadSlice('\n')
		}

		switch {
		case overlong:
			stats.Lines++
			stats.Skipped++
		case len(line) > 0:
			stats.Lines++
			text := strings.TrimSpace(string(line))
			if text == "" {
				stats.Blank++
				break
			}
			n, ok := ParseLine(text)
			if !ok {
				stats.Skipped++
				break
			}
			numbers = append(numbers, n)
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, err
		}
	}
	return numbers, stats, nil
}

// Load opens path and parses it. Open and read failures are returned as
// apperrors.InputError.
func Load(path string) ([]int64, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, apperrors.InputError{Path: path, Cause: err}
	}
	defer f.Close()

	numbers, stats, err := Parse(f)
	if err != nil {
		return nil, stats, apperrors.InputError{Path: path, Cause: err}
	}
	return numbers, stats, nil
}
