package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pushloop/pkg/domain/model"
	"github.com/secmon-lab/pushloop/pkg/domain/types"
	"github.com/secmon-lab/pushloop/pkg/usecase"
)

// stopAfter returns a WaitFunc that lets n waits pass and cancels ctx on the next one
func stopAfter(n int, cancel context.CancelFunc, delays *[]time.Duration) usecase.WaitFunc {
	count := 0
	return func(ctx context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		count++
		if count > n {
			cancel()
			return context.Canceled
		}
		return nil
	}
}

func TestRun(t *testing.T) {
	t.Run("runs cycles with fixed delay until canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var delays []time.Duration
		f := newPushFixture(t, usecase.WithWaitFunc(stopAfter(2, cancel, &delays)))
		job := newJob(t, "A", "B")

		gt.NoError(t, f.uc.Run(ctx, job))

		// 3 cycles: two waits pass, third wait cancels
		gt.V(t, f.pushedRepos()).Equal([]string{"A", "B", "A", "B", "A", "B"})
		gt.V(t, delays).Equal([]time.Duration{time.Minute, time.Minute, time.Minute})
		gt.A(t, f.file.EnsureExistsCalls()).Length(1)
		gt.V(t, string(f.file.EnsureExistsCalls()[0].Content)).Equal("Last updated: {timestamp}")
		gt.A(t, f.file.WriteCalls()).Length(3)
	})

	t.Run("non-fatal access failures keep the loop running", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var delays []time.Duration
		f := newPushFixture(t, usecase.WithWaitFunc(stopAfter(1, cancel, &delays)))
		f.gh.CanPushFunc = func(ctx context.Context, repo model.RepositoryTarget) (bool, error) {
			return false, apiError(http.StatusServiceUnavailable)
		}

		gt.NoError(t, f.uc.Run(ctx, newJob(t, "A")))
		gt.A(t, f.gh.CanPushCalls()).Length(2)
	})

	t.Run("fatal access error ends the loop before any push", func(t *testing.T) {
		var delays []time.Duration
		f := newPushFixture(t, usecase.WithWaitFunc(stopAfter(10, func() {}, &delays)))
		f.gh.CanPushFunc = func(ctx context.Context, repo model.RepositoryTarget) (bool, error) {
			return false, apiError(http.StatusNotFound)
		}

		err := f.uc.Run(context.Background(), newJob(t, "missing"))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrRepositoryNotFound))
		gt.A(t, f.gh.PutFileCalls()).Length(0)
		gt.A(t, delays).Length(0)
	})

	t.Run("local file bootstrap failure does not stop the loop", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var delays []time.Duration
		f := newPushFixture(t, usecase.WithWaitFunc(stopAfter(0, cancel, &delays)))
		f.file.EnsureExistsFunc = func(path string, content []byte) (bool, error) {
			return false, errors.New("permission denied")
		}

		gt.NoError(t, f.uc.Run(ctx, newJob(t, "A")))
		gt.V(t, f.pushedRepos()).Equal([]string{"A"})
	})
}
