package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stokpilot/stokpilot/pkg/retry"
)

func TestDo(t *testing.T) {
	fast := retry.Config{MaxAttempts: 3, Backoff: retry.Linear(time.Millisecond)}

	t.Run("SucceedsFirstTry", func(t *testing.T) {
		calls := 0
		err := retry.Do(t.Context(), fast, func() error {
			calls++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("RetriesUntilSuccess", func(t *testing.T) {
		calls := 0
		err := retry.Do(t.Context(), fast, func() error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("ExhaustsAttempts", func(t *testing.T) {
		calls := 0
		boom := errors.New("boom")
		err := retry.Do(t.Context(), fast, func() error {
			calls++
			return boom
		})
		require.ErrorIs(t, err, boom)
		assert.Equal(t, 3, calls)
	})

	t.Run("ShouldRetryStops", func(t *testing.T) {
		fatal := errors.New("fatal")
		cfg := fast
		cfg.ShouldRetry = func(err error) bool { return !errors.Is(err, fatal) }

		calls := 0
		err := retry.Do(t.Context(), cfg, func() error {
			calls++
			return fatal
		})
		require.ErrorIs(t, err, fatal)
		assert.Equal(t, 1, calls)
	})

	t.Run("CancelledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		err := retry.Do(ctx, fast, func() error { return nil })
		require.ErrorIs(t, err, context.Canceled)
	})
}
