package orchestration_test

import (
	"bytes"
	"context"
	"io"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"

	apperrors "github.com/agbru/primecount/internal/errors"
	"github.com/agbru/primecount/internal/orchestration"
	"github.com/agbru/primecount/internal/orchestration/mocks"
	"github.com/agbru/primecount/internal/primes"
)

func mockCounter(ctrl *gomock.Controller, name string, workers int, res primes.Result) *mocks.MockCounter {
	c := mocks.NewMockCounter(ctrl)
	c.EXPECT().Name().Return(name).AnyTimes()
	c.EXPECT().Label().Return(name).AnyTimes()
	c.EXPECT().Workers().Return(workers).AnyTimes()
	c.EXPECT().Count(gomock.Any(), gomock.Any(), gomock.Any()).Return(res).Times(1)
	return c
}

func drainingReporter(ctrl *gomock.Controller, numRuns int) *mocks.MockProgressReporter {
	r := mocks.NewMockProgressReporter(ctrl)
	r.EXPECT().
		DisplayProgress(gomock.Any(), gomock.Any(), numRuns, gomock.Any()).
		Do(func(wg *sync.WaitGroup, ch <-chan orchestration.ProgressUpdate, _ int, _ io.Writer) {
			defer wg.Done()
			orchestration.DrainChannel(ch)
		}).
		Times(1)
	return r
}

// TestMismatchIsCritical feeds two disagreeing strategies through the whole
// pipeline and expects the mismatch exit code.
func TestMismatchIsCritical(t *testing.T) {
	ctrl := gomock.NewController(t)

	numbers := []int64{2, 3, 5}
	seq := mockCounter(ctrl, "sequential", 1, primes.Result{Count: 3})
	par := mockCounter(ctrl, "parallel", 2, primes.Result{Count: 2, Partials: []int64{1, 1}})

	results := orchestration.ExecuteRuns(context.Background(), []primes.Counter{seq, par}, numbers,
		orchestration.Options{}, drainingReporter(ctrl, 2), io.Discard)

	presenter := mocks.NewMockResultPresenter(ctrl)
	presenter.EXPECT().
		PresentReport(gomock.Any(), orchestration.PresentationOptions{Verbose: true}, gomock.Any()).
		Do(func(r orchestration.Report, _ orchestration.PresentationOptions, _ io.Writer) {
			if r.Consistent() {
				t.Error("report should be flagged inconsistent")
			}
		}).
		Times(1)

	var buf bytes.Buffer
	_, status := orchestration.AnalyzeRuns(orchestration.InputSummary{Items: len(numbers)}, results,
		orchestration.PresentationOptions{Verbose: true}, presenter, &buf)
	if status != apperrors.ExitErrorMismatch {
		t.Errorf("status = %d, want %d", status, apperrors.ExitErrorMismatch)
	}
}

// TestCountersReceiveInput checks that every strategy scans the same slice.
func TestCountersReceiveInput(t *testing.T) {
	ctrl := gomock.NewController(t)

	numbers := []int64{7, 8, 9}
	seq := mocks.NewMockCounter(ctrl)
	par := mocks.NewMockCounter(ctrl)
	for _, c := range []*mocks.MockCounter{seq, par} {
		c.EXPECT().Name().Return("c").AnyTimes()
		c.EXPECT().Label().Return("c").AnyTimes()
		c.EXPECT().Workers().Return(1).AnyTimes()
	}
	gomock.InOrder(
		seq.EXPECT().Count(gomock.Any(), numbers, gomock.Any()).Return(primes.Result{Count: 1}),
		par.EXPECT().Count(gomock.Any(), numbers, gomock.Any()).Return(primes.Result{Count: 1}),
	)

	results := orchestration.ExecuteRuns(context.Background(), []primes.Counter{seq, par}, numbers,
		orchestration.Options{}, drainingReporter(ctrl, 2), io.Discard)
	if len(results) != 2 || results[0].Count != 1 || results[1].Count != 1 {
		t.Errorf("unexpected results %+v", results)
	}
}
