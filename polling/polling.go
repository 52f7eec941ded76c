// Package polling provides a bounded-retry poller: it evaluates an
// asynchronous producer until a predicate is satisfied or the attempt
// budget runs out.
package polling

import (
	"context"
	"time"
)

// Outcome classifies how a poll ended.
type Outcome int

const (
	// Final means the predicate was satisfied; Result.Value holds the
	// matching value.
	Final Outcome = iota
	// TimedOut means the attempt budget was exhausted; Result.Value holds
	// the last produced value.
	TimedOut
	// Cancelled means the caller's context was cancelled. A cancelled poll
	// is not an error and must never be surfaced as one.
	Cancelled
)

// Result is the tri-state outcome of a poll.
type Result[T any] struct {
	Outcome Outcome
	Value   T
}

// Poll calls producer every interval until done returns true, up to
// maxAttempts calls. maxAttempts <= 0 polls without an attempt budget.
// A producer error aborts the poll and is returned as-is; callers that
// want best-effort polling swallow errors inside their producer.
//
// The first producer call happens immediately, the interval only
// separates subsequent attempts.
func Poll[T any](ctx context.Context, interval time.Duration, maxAttempts int, producer func(context.Context) (T, error), done func(T) bool) (Result[T], error) {
	var last T
	timer := time.NewTimer(0)
	defer timer.Stop()

	for attempt := 0; maxAttempts <= 0 || attempt < maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return Result[T]{Outcome: Cancelled}, nil
		case <-timer.C:
		}

		value, err := producer(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return Result[T]{Outcome: Cancelled}, nil
			}
			return Result[T]{}, err
		}
		last = value
		if done(value) {
			return Result[T]{Outcome: Final, Value: value}, nil
		}

		timer.Reset(interval)
	}

	return Result[T]{Outcome: TimedOut, Value: last}, nil
}
