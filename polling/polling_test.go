package polling

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollReturnsFinalWhenPredicateSatisfied(t *testing.T) {
	calls := 0
	result, err := Poll(context.Background(), time.Millisecond, 10, func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	}, func(v int) bool {
		return v == 3
	})

	require.NoError(t, err)
	assert.Equal(t, Final, result.Outcome)
	assert.Equal(t, 3, result.Value)
	assert.Equal(t, 3, calls)
}

func TestPollFirstAttemptIsImmediate(t *testing.T) {
	start := time.Now()
	result, err := Poll(context.Background(), time.Hour, 1, func(ctx context.Context) (string, error) {
		return "ready", nil
	}, func(v string) bool {
		return true
	})

	require.NoError(t, err)
	assert.Equal(t, Final, result.Outcome)
	assert.Less(t, time.Since(start), time.Second)
}

func TestPollTimesOutAfterMaxAttempts(t *testing.T) {
	calls := 0
	result, err := Poll(context.Background(), time.Millisecond, 4, func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	}, func(v int) bool {
		return false
	})

	require.NoError(t, err)
	assert.Equal(t, TimedOut, result.Outcome)
	assert.Equal(t, 4, result.Value)
	assert.Equal(t, 4, calls)
}

func TestPollCancellationIsNotAnError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := Poll(ctx, time.Millisecond, 10, func(ctx context.Context) (int, error) {
		t.Fatal("producer must not run after cancellation")
		return 0, nil
	}, func(v int) bool {
		return true
	})

	require.NoError(t, err)
	assert.Equal(t, Cancelled, result.Outcome)
}

func TestPollCancelBetweenAttempts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	result, err := Poll(ctx, 50*time.Millisecond, 0, func(ctx context.Context) (int, error) {
		cancel()
		return 1, nil
	}, func(v int) bool {
		return false
	})

	require.NoError(t, err)
	assert.Equal(t, Cancelled, result.Outcome)
}

func TestPollProducerErrorAborts(t *testing.T) {
	boom := errors.New("backend unavailable")
	calls := 0
	_, err := Poll(context.Background(), time.Millisecond, 10, func(ctx context.Context) (int, error) {
		calls++
		return 0, boom
	}, func(v int) bool {
		return true
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestPollProducerErrorAfterCancellationIsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	result, err := Poll(ctx, time.Millisecond, 10, func(ctx context.Context) (int, error) {
		cancel()
		return 0, ctx.Err()
	}, func(v int) bool {
		return true
	})

	require.NoError(t, err)
	assert.Equal(t, Cancelled, result.Outcome)
}

func TestPollUnboundedRunsPastAnyFixedBudget(t *testing.T) {
	calls := 0
	result, err := Poll(context.Background(), 0, 0, func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	}, func(v int) bool {
		return v >= 50
	})

	require.NoError(t, err)
	assert.Equal(t, Final, result.Outcome)
	assert.Equal(t, 50, result.Value)
}
