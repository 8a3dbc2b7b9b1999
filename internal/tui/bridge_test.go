package tui

import (
	"sync"
	"testing"

	"github.com/agbru/primecount/internal/orchestration"
)

func TestTUIProgressReporter_DrainsChannel(t *testing.T) {
	reporter := &TUIProgressReporter{ref: &programRef{}} // nil program: Send is a no-op

	ch := make(chan orchestration.ProgressUpdate, 10)
	ch <- orchestration.ProgressUpdate{RunIndex: 0, Value: 0.5}
	ch <- orchestration.ProgressUpdate{RunIndex: 0, Value: 1.0}
	ch <- orchestration.ProgressUpdate{RunIndex: 1, Value: 1.0}
	close(ch)

	var wg sync.WaitGroup
	wg.Add(1)
	go reporter.DisplayProgress(&wg, ch, 2, nil)
	wg.Wait()

	if len(ch) != 0 {
		t.Errorf("channel should be drained, %d updates left", len(ch))
	}
}

func TestTUIProgressReporter_ZeroRuns(t *testing.T) {
	reporter := &TUIProgressReporter{ref: &programRef{}}

	ch := make(chan orchestration.ProgressUpdate, 5)
	ch <- orchestration.ProgressUpdate{RunIndex: 0, Value: 0.5}
	close(ch)

	var wg sync.WaitGroup
	wg.Add(1)
	go reporter.DisplayProgress(&wg, ch, 0, nil)
	wg.Wait()
}

func TestTUIResultPresenter_NoProgram(t *testing.T) {
	presenter := &TUIResultPresenter{ref: &programRef{}}
	// Must not panic or block without a program.
	presenter.PresentReport(orchestration.Report{}, orchestration.PresentationOptions{}, nil)
}

func TestProgramRef_ConcurrentSend(t *testing.T) {
	ref := &programRef{}
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ref.Send(ProgressDoneMsg{})
		}()
	}
	ref.SetProgram(nil)
	wg.Wait()
}
