package catalog_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stokpilot/stokpilot/internal/client/catalog"
)

type emissions struct {
	mu   sync.Mutex
	vals []string
}

func (e *emissions) add(v string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.vals = append(e.vals, v)
}

func (e *emissions) all() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.vals...)
}

func TestDebouncer(t *testing.T) {
	const delay = 20 * time.Millisecond

	t.Run("OnlyLastValueFires", func(t *testing.T) {
		var got emissions
		d := catalog.NewDebouncer(delay, got.add)
		defer d.Stop()

		d.Input("g")
		d.Input("go")
		d.Input("gof")

		time.Sleep(5 * delay)
		require.Len(t, got.all(), 1)
		assert.Equal(t, "gof", got.all()[0])
	})

	t.Run("QuietGapEmitsBoth", func(t *testing.T) {
		var got emissions
		d := catalog.NewDebouncer(delay, got.add)
		defer d.Stop()

		d.Input("kek")
		time.Sleep(3 * delay)
		d.Input("gofret")
		time.Sleep(3 * delay)

		assert.Equal(t, []string{"kek", "gofret"}, got.all())
	})

	t.Run("StopCancelsPending", func(t *testing.T) {
		var got emissions
		d := catalog.NewDebouncer(delay, got.add)

		d.Input("never")
		d.Stop()

		time.Sleep(3 * delay)
		assert.Empty(t, got.all())
	})

	t.Run("InputAfterStopIgnored", func(t *testing.T) {
		var got emissions
		d := catalog.NewDebouncer(delay, got.add)
		d.Stop()

		d.Input("late")
		time.Sleep(3 * delay)
		assert.Empty(t, got.all())
	})

	t.Run("FlushEmitsImmediately", func(t *testing.T) {
		var got emissions
		d := catalog.NewDebouncer(time.Hour, got.add)
		defer d.Stop()

		d.Input("pending")
		d.Flush("now")
		assert.Equal(t, []string{"now"}, got.all())
	})
}
