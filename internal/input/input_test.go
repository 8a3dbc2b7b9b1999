package input

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"testing/iotest"

	apperrors "github.com/agbru/primecount/internal/errors"
)

func TestParseLine(t *testing.T) {
	t.Parallel()
	tests := []struct {
		line   string
		want   int64
		wantOK bool
	}{
		{"5", 5, true},
		{"  42\t", 42, true},
		{"-17", -17, true},
		{"+8", 8, true},
		{"0", 0, true},
		{"9223372036854775807", 9223372036854775807, true},
		{"9223372036854775808", 0, false}, // overflows int64
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"12abc", 0, false},
		{"1.5", 0, false},
		{"1e6", 0, false},
		{"0x1F", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseLine(tt.line)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("ParseLine(%q) = (%d, %v), want (%d, %v)", tt.line, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParse(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		input     string
		want      []int64
		wantStats Stats
	}{
		{
			name:      "malformed and blank lines are skipped",
			input:     "5\nabc\n\n7",
			want:      []int64{5, 7},
			wantStats: Stats{Lines: 4, Blank: 1, Skipped: 1},
		},
		{
			name:      "whitespace and CRLF are trimmed",
			input:     "  2 \r\n\t3\r\n",
			want:      []int64{2, 3},
			wantStats: Stats{Lines: 2},
		},
		{
			name:      "empty input",
			input:     "",
			want:      nil,
			wantStats: Stats{},
		},
		{
			name:      "only garbage",
			input:     "x\ny\n \n",
			want:      nil,
			wantStats: Stats{Lines: 3, Blank: 1, Skipped: 2},
		},
		{
			name:      "order is preserved",
			input:     "11\n-3\n2\n11\n",
			want:      []int64{11, -3, 2, 11},
			wantStats: Stats{Lines: 4},
		},
		{
			name:      "overlong line is skipped",
			input:     "5\n" + strings.Repeat("x", 2<<20) + "\n7\n",
			want:      []int64{5, 7},
			wantStats: Stats{Lines: 3, Skipped: 1},
		},
		{
			name:      "overlong last line without newline",
			input:     "5\n" + strings.Repeat("9", maxLineBytes+1),
			want:      []int64{5},
			wantStats: Stats{Lines: 2, Skipped: 1},
		},
		{
			name:      "line exactly at buffer size minus newline",
			input:     strings.Repeat(" ", maxLineBytes-2) + "3\n",
			want:      []int64{3},
			wantStats: Stats{Lines: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, stats, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Parse returned error: %v", err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Parse = %v, want %v", got, tt.want)
			}
			if stats != tt.wantStats {
				t.Errorf("stats = %+v, want %+v", stats, tt.wantStats)
			}
		})
	}
}

func TestParse_ReadError(t *testing.T) {
	t.Parallel()
	readErr := errors.New("device gone")
	_, _, err := Parse(iotest.ErrReader(readErr))
	if !errors.Is(err, readErr) {
		t.Errorf("Parse error = %v, want %v", err, readErr)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(dir, "numbers.txt")
		if err := os.WriteFile(path, []byte("2\n3\n4\nfoo\n5\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		got, stats, err := Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if !slices.Equal(got, []int64{2, 3, 4, 5}) {
			t.Errorf("Load = %v", got)
		}
		if stats.Skipped != 1 {
			t.Errorf("Skipped = %d, want 1", stats.Skipped)
		}
	})

	t.Run("missing file is an InputError", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(dir, "does-not-exist.txt")
		_, _, err := Load(path)
		var inputErr apperrors.InputError
		if !errors.As(err, &inputErr) {
			t.Fatalf("expected InputError, got %T: %v", err, err)
		}
		if inputErr.Path != path {
			t.Errorf("Path = %q, want %q", inputErr.Path, path)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("expected fs.ErrNotExist in chain, got %v", err)
		}
	})

	t.Run("directory is an InputError", func(t *testing.T) {
		t.Parallel()
		_, _, err := Load(dir)
		var inputErr apperrors.InputError
		if !errors.As(err, &inputErr) {
			t.Fatalf("expected InputError, got %T: %v", err, err)
		}
	})
}

// FuzzParseLine checks that ParseLine never panics and that accepted lines
// round-trip through strconv.
func FuzzParseLine(f *testing.F) {
	for _, seed := range []string{"5", "abc", "", " -12 ", "9223372036854775808", "+0"} {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, line string) {
		n, ok := ParseLine(line)
		if !ok {
			return
		}
		back, ok2 := ParseLine(strings.TrimSpace(line))
		if !ok2 || back != n {
			t.Errorf("ParseLine(%q) = %d but trimmed form gave (%d, %v)", line, n, back, ok2)
		}
	})
}
