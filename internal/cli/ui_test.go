package cli

import (
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/briandowns/spinner"
	"github.com/golang/mock/gomock"

	"github.com/agbru/primecount/internal/cli/mocks"
	"github.com/agbru/primecount/internal/orchestration"
)

// These tests replace the package-level spinner factory and must not run in
// parallel.

func withSpinner(t *testing.T, s Spinner) {
	t.Helper()
	orig := newSpinner
	newSpinner = func(...spinner.Option) Spinner { return s }
	t.Cleanup(func() { newSpinner = orig })
}

func TestDisplayProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := mocks.NewMockSpinner(ctrl)

	var (
		mu       sync.Mutex
		suffixes []string
	)
	s.EXPECT().UpdateSuffix(gomock.Any()).Do(func(suffix string) {
		mu.Lock()
		suffixes = append(suffixes, suffix)
		mu.Unlock()
	}).AnyTimes()
	gomock.InOrder(
		s.EXPECT().Start().Times(1),
		s.EXPECT().Stop().Times(1),
	)
	withSpinner(t, s)

	ch := make(chan orchestration.ProgressUpdate, 4)
	ch <- orchestration.ProgressUpdate{RunIndex: 0, Value: 1.0}
	ch <- orchestration.ProgressUpdate{RunIndex: 1, Value: 0.5}
	close(ch)

	var wg sync.WaitGroup
	wg.Add(1)
	DisplayProgress(&wg, ch, 2, io.Discard)
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if len(suffixes) < 2 {
		t.Fatalf("expected several suffix updates, got %v", suffixes)
	}
	if !strings.Contains(suffixes[0], "0.0%") {
		t.Errorf("first suffix should start at 0%%, got %q", suffixes[0])
	}
	if last := suffixes[len(suffixes)-1]; !strings.Contains(last, "100.0%") {
		t.Errorf("final suffix should be complete, got %q", last)
	}
}

func TestDisplayProgress_NoRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	// No spinner method may be called.
	withSpinner(t, mocks.NewMockSpinner(ctrl))

	ch := make(chan orchestration.ProgressUpdate, 1)
	ch <- orchestration.ProgressUpdate{Value: 0.3}
	close(ch)

	var wg sync.WaitGroup
	wg.Add(1)
	done := make(chan struct{})
	go func() {
		DisplayProgress(&wg, ch, 0, io.Discard)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("DisplayProgress did not return for zero runs")
	}
	wg.Wait()
}

func TestFormatProgressSuffix(t *testing.T) {
	got := FormatProgressSuffix(0.5, 3*time.Second)
	for _, want := range []string{"Counting primes", " 50.0%", "ETA: 3s"} {
		if !strings.Contains(got, want) {
			t.Errorf("suffix %q should contain %q", got, want)
		}
	}
}
