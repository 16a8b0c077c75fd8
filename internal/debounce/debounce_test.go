package debounce

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu   sync.Mutex
	vals []string
}

func (r *recorder) sink(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vals = append(r.vals, v)
}

func (r *recorder) values() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.vals))
	copy(out, r.vals)
	return out
}

func TestDebouncerCollapsesRapidUpdates(t *testing.T) {
	rec := &recorder{}
	d := New[string](50*time.Millisecond, rec.sink)
	defer d.Stop()

	d.Set("d")
	d.Set("dr")
	d.Set("dri")
	d.Set("drill")

	require.Eventually(t, func() bool {
		return len(rec.values()) == 1
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{"drill"}, rec.values())
}

func TestDebouncerTrailingEdge(t *testing.T) {
	rec := &recorder{}
	d := New[string](60*time.Millisecond, rec.sink)
	defer d.Stop()

	d.Set("first")
	// Well inside the window; must replace the pending value.
	time.Sleep(20 * time.Millisecond)
	d.Set("second")

	time.Sleep(40 * time.Millisecond)
	assert.Empty(t, rec.values(), "nothing should fire before the window elapses from the last update")

	require.Eventually(t, func() bool {
		return len(rec.values()) == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []string{"second"}, rec.values())
}

func TestDebouncerSeparateQuietPeriods(t *testing.T) {
	rec := &recorder{}
	d := New[string](30*time.Millisecond, rec.sink)
	defer d.Stop()

	d.Set("one")
	require.Eventually(t, func() bool { return len(rec.values()) == 1 }, time.Second, 5*time.Millisecond)

	d.Set("two")
	require.Eventually(t, func() bool { return len(rec.values()) == 2 }, time.Second, 5*time.Millisecond)

	assert.Equal(t, []string{"one", "two"}, rec.values())
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	rec := &recorder{}
	d := New[string](30*time.Millisecond, rec.sink)

	d.Set("never")
	d.Stop()

	time.Sleep(80 * time.Millisecond)
	assert.Empty(t, rec.values())
}

func TestDebouncerDefaultWindow(t *testing.T) {
	d := New[int](0, func(int) {})
	defer d.Stop()
	assert.Equal(t, DefaultWindow, d.window)
}
