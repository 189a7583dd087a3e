package catalog

import (
	"sync"
	"time"
)

// SearchDelay is how long the search input must stay quiet before the
// debounced value fires.
const SearchDelay = 300 * time.Millisecond

// Debouncer derives a time-delayed value from a stream of inputs.
// Each new input cancels the pending emission and schedules a fresh
// one, so only the last value inside the delay window reaches emit.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	emit    func(string)
	stopped bool
}

func NewDebouncer(delay time.Duration, emit func(string)) *Debouncer {
	return &Debouncer{delay: delay, emit: emit}
}

func (d *Debouncer) Input(v string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		stopped := d.stopped
		d.mu.Unlock()
		if !stopped {
			d.emit(v)
		}
	})
}

// Flush emits v immediately, cancelling any pending emission.
func (d *Debouncer) Flush(v string) {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
	}
	stopped := d.stopped
	d.mu.Unlock()

	if !stopped {
		d.emit(v)
	}
}

// Stop cancels any pending emission. Inputs after Stop are ignored.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
}
