package debounce

import (
	"sync"
	"time"
)

// DefaultWindow is the quiescence window used when none is configured.
const DefaultWindow = 300 * time.Millisecond

// Debouncer delivers the most recent value passed to Set to the sink
// once the input has been quiet for the full window. Every new Set
// cancels the pending delivery and restarts the timer (trailing edge,
// not throttle).
type Debouncer[T any] struct {
	mu     sync.Mutex
	window time.Duration
	timer  *time.Timer
	sink   func(T)
}

func New[T any](window time.Duration, sink func(T)) *Debouncer[T] {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer[T]{
		window: window,
		sink:   sink,
	}
}

// Set records v as the candidate value and restarts the quiescence timer.
// If no further Set arrives within the window, v is delivered to the sink.
func (d *Debouncer[T]) Set(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, func() {
		d.sink(v)
	})
}

// Stop cancels any pending delivery.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
