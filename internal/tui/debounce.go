package tui

import (
	"sync"
	"time"
)

// SearchDebounce is how long the search input must stay unchanged before the
// guide is filtered by it.
const SearchDebounce = 250 * time.Millisecond

// Debouncer delays a call until no new call has been scheduled for its duration
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	duration time.Duration
}

// NewDebouncer creates a debouncer with the given quiet period
func NewDebouncer(duration time.Duration) *Debouncer {
	return &Debouncer{duration: duration}
}

// Debounce schedules fn to run once the quiet period has elapsed. A call made
// before then replaces the pending one and restarts the period.
func (d *Debouncer) Debounce(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, fn)
}

// Cancel drops the pending call, if any
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Flush cancels the pending call and runs fn immediately
func (d *Debouncer) Flush(fn func()) {
	d.Cancel()
	fn()
}
