// Package promises waits on a set of concurrent tasks and returns their
// results in input order, failing fast on the first error.
package promises

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"helperkit/internal/common"
	"helperkit/internal/errors"
)

// Task is one independently executing unit of work. Tasks should return
// promptly once ctx is cancelled.
type Task[T any] func(ctx context.Context) (T, error)

// Aggregator runs task sets. The zero value runs every task at once.
type Aggregator struct {
	// Limit caps the number of tasks in flight; <= 0 means unbounded
	Limit int

	logger *common.SafeLogger
}

// NewAggregator creates an Aggregator with the given in-flight limit
func NewAggregator(limit int) *Aggregator {
	return &Aggregator{Limit: limit, logger: common.TaskLogger}
}

// HandlePromises runs tasks concurrently with no in-flight limit.
// See Run for the result and failure semantics.
func HandlePromises[T any](ctx context.Context, tasks ...Task[T]) ([]T, error) {
	return Run(ctx, nil, tasks...)
}

// Run executes tasks concurrently using a's settings (nil means defaults).
//
// On success the results are returned in the same positional order as tasks;
// an empty task set yields an empty, non-nil slice. The first task failure
// cancels the shared context and is returned immediately as an
// *errors.AggregateError wrapping the task's error; partial results are
// discarded. Cancellation of ctx is reported the same way.
func Run[T any](ctx context.Context, a *Aggregator, tasks ...Task[T]) ([]T, error) {
	if a == nil {
		a = &Aggregator{}
	}
	logger := a.logger
	if logger == nil {
		logger = common.TaskLogger
	}

	results := make([]T, len(tasks))
	if len(tasks) == 0 {
		return results, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.NewAggregateError(-1, err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, groupCtx := errgroup.WithContext(runCtx)
	if a.Limit > 0 {
		g.SetLimit(a.Limit)
	}

	failed := make(chan *errors.AggregateError, 1)
	var failOnce sync.Once
	done := make(chan struct{})
	launched := 0

	// g.Go blocks once the limit is reached, so scheduling happens off the
	// caller's goroutine to keep fail-fast responsive.
	go func() {
		defer close(done)
		for i, task := range tasks {
			if groupCtx.Err() != nil {
				break
			}
			launched++
			i, task := i, task
			g.Go(func() error {
				value, err := runTask(groupCtx, task)
				if err != nil {
					failOnce.Do(func() {
						failed <- errors.NewAggregateError(i, err)
					})
					return err
				}
				results[i] = value
				return nil
			})
		}
		_ = g.Wait()
	}()

	select {
	case aggErr := <-failed:
		logger.Debug("task %d of %d failed, abandoning remaining tasks: %v", aggErr.Index, len(tasks), aggErr.Cause)
		return nil, aggErr
	case <-ctx.Done():
		logger.Debug("task set cancelled: %v", ctx.Err())
		return nil, errors.NewAggregateError(-1, ctx.Err())
	case <-done:
	}

	select {
	case aggErr := <-failed:
		return nil, aggErr
	default:
	}
	if launched < len(tasks) {
		return nil, errors.NewAggregateError(-1, context.Cause(runCtx))
	}
	return results, nil
}

func runTask[T any](ctx context.Context, task Task[T]) (value T, err error) {
	if task == nil {
		return value, fmt.Errorf("nil task")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
	}()
	return task(ctx)
}
