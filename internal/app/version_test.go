package app

import (
	"bytes"
	"strings"
	"testing"
)

func TestHasVersionFlag(t *testing.T) {
	t.Parallel()
	tests := []struct {
		args []string
		want bool
	}{
		{nil, false},
		{[]string{"numbers.txt"}, false},
		{[]string{"--version"}, true},
		{[]string{"-w", "2", "-V"}, true},
		{[]string{"-version"}, true},
		{[]string{"--", "--version"}, false},
	}
	for _, tt := range tests {
		if got := HasVersionFlag(tt.args); got != tt.want {
			t.Errorf("HasVersionFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestPrintVersion(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	PrintVersion(&buf)
	out := buf.String()
	for _, want := range []string{"primecount " + Version, "commit:", "go version:"} {
		if !strings.Contains(out, want) {
			t.Errorf("version output should contain %q, got %q", want, out)
		}
	}
}
