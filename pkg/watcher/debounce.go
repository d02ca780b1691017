package watcher

import (
	"sync"
	"time"
)

// DefaultDebounceDuration is the trailing-edge delay for change bursts.
// Editors and atomic-save tools emit several events per save; one reload per
// burst is enough.
const DefaultDebounceDuration = 200 * time.Millisecond

// Debouncer coalesces rapid triggers into one trailing call: each Trigger
// cancels the pending timer and schedules a new one.
type Debouncer struct {
	d     time.Duration
	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given trailing delay.
func NewDebouncer(d time.Duration) *Debouncer {
	if d <= 0 {
		d = DefaultDebounceDuration
	}
	return &Debouncer{d: d}
}

// Trigger schedules fn after the delay, cancelling any pending call first.
func (b *Debouncer) Trigger(fn func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.d, fn)
}

// Cancel drops any pending call.
func (b *Debouncer) Cancel() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
