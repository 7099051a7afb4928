package discover

import (
	"sync"
	"time"
)

// DefaultDebounce is the pause after the last keystroke before the search
// pipeline runs.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer delays a callback until input has been quiet for a fixed window.
// Arm replaces any pending callback, so only the newest query ever fires;
// Stop cancels whatever is pending, for consumer teardown.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Arm schedules fn to run after the delay, cancelling any pending call.
func (d *Debouncer) Arm(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels the pending call, if any. Safe to call repeatedly.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
