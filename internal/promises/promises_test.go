package promises

import (
	"context"
	stderrors "errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"helperkit/internal/errors"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func resolve[T any](v T) Task[T] {
	return func(context.Context) (T, error) { return v, nil }
}

func reject[T any](err error) Task[T] {
	return func(context.Context) (T, error) {
		var zero T
		return zero, err
	}
}

func resolveAfter[T any](d time.Duration, v T) Task[T] {
	return func(ctx context.Context) (T, error) {
		select {
		case <-time.After(d):
			return v, nil
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}

func TestHandlePromisesEmpty(t *testing.T) {
	got, err := HandlePromises[int](context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestHandlePromisesPreservesInputOrder(t *testing.T) {
	got, err := HandlePromises(context.Background(),
		resolveAfter(30*time.Millisecond, 1),
		resolve(2),
		resolveAfter(10*time.Millisecond, 3),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestHandlePromisesRejects(t *testing.T) {
	boom := stderrors.New("boom")

	got, err := HandlePromises(context.Background(), resolve(1), reject[int](boom))
	assert.Nil(t, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)

	var aggErr *errors.AggregateError
	require.ErrorAs(t, err, &aggErr)
	assert.Equal(t, 1, aggErr.Index)
}

func TestHandlePromisesFailsFast(t *testing.T) {
	boom := stderrors.New("boom")
	var cancelled atomic.Bool

	slow := func(ctx context.Context) (string, error) {
		select {
		case <-time.After(5 * time.Second):
			return "late", nil
		case <-ctx.Done():
			cancelled.Store(true)
			return "", ctx.Err()
		}
	}
	fail := func(context.Context) (string, error) {
		time.Sleep(10 * time.Millisecond)
		return "", boom
	}

	start := time.Now()
	_, err := HandlePromises(context.Background(), slow, fail)
	assert.ErrorIs(t, err, boom)
	assert.Less(t, time.Since(start), 2*time.Second)

	assert.Eventually(t, cancelled.Load, time.Second, 5*time.Millisecond)
}

func TestHandlePromisesRecoversPanics(t *testing.T) {
	panicky := func(context.Context) (int, error) { panic("kaboom") }

	_, err := HandlePromises(context.Background(), resolve(1), panicky)
	require.Error(t, err)
	assert.True(t, errors.IsAggregateError(err))
	assert.Contains(t, err.Error(), "task panicked: kaboom")
}

func TestHandlePromisesNilTask(t *testing.T) {
	_, err := HandlePromises[int](context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil task")
}

func TestHandlePromisesCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := HandlePromises(ctx, resolve(1))
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, errors.IsCancellationError(err))
}

func TestHandlePromisesContextCancelledWhileWaiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(20*time.Millisecond, cancel)

	_, err := HandlePromises(ctx, resolveAfter(5*time.Second, 1))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunWithLimit(t *testing.T) {
	var inFlight, peak atomic.Int32
	task := func(i int) Task[int] {
		return func(ctx context.Context) (int, error) {
			n := inFlight.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			inFlight.Add(-1)
			return i * i, nil
		}
	}

	tasks := make([]Task[int], 8)
	for i := range tasks {
		tasks[i] = task(i)
	}

	got, err := Run(context.Background(), NewAggregator(2), tasks...)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4, 9, 16, 25, 36, 49}, got)
	assert.LessOrEqual(t, peak.Load(), int32(2))
}

func TestRunWithLimitStopsSchedulingAfterFailure(t *testing.T) {
	boom := stderrors.New("boom")
	var started atomic.Int32

	tasks := []Task[int]{
		func(context.Context) (int, error) {
			started.Add(1)
			return 0, boom
		},
	}
	for i := 0; i < 5; i++ {
		tasks = append(tasks, func(ctx context.Context) (int, error) {
			started.Add(1)
			return resolveAfter(50*time.Millisecond, i)(ctx)
		})
	}

	_, err := Run(context.Background(), NewAggregator(1), tasks...)
	assert.ErrorIs(t, err, boom)

	time.Sleep(100 * time.Millisecond)
	assert.Less(t, started.Load(), int32(len(tasks)))
}
