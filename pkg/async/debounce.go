package async

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of calls into a single trailing invocation.
// Each call resets the quiet period; only the most recent function runs
// once the period elapses without further calls.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given quiet period
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Do schedules fn to run after the quiet period, replacing any pending call
func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending call
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Throttler rate-limits calls to at most one per interval. The first call
// runs immediately; calls arriving during the cooldown replace each other,
// and the most recent one runs when the cooldown elapses.
type Throttler struct {
	mu       sync.Mutex
	interval time.Duration
	lastRun  time.Time
	pending  func()
	timer    *time.Timer
}

// NewThrottler creates a throttler with the given cooldown interval
func NewThrottler(interval time.Duration) *Throttler {
	return &Throttler{interval: interval}
}

// Do runs fn immediately if the cooldown has elapsed, otherwise keeps it
// as the pending call for the end of the cooldown. Last write wins.
func (t *Throttler) Do(fn func()) {
	t.mu.Lock()

	now := time.Now()
	if elapsed := now.Sub(t.lastRun); elapsed >= t.interval {
		t.lastRun = now
		t.mu.Unlock()
		fn()
		return
	}

	t.pending = fn
	if t.timer == nil {
		remaining := t.interval - now.Sub(t.lastRun)
		t.timer = time.AfterFunc(remaining, t.firePending)
	}
	t.mu.Unlock()
}

// firePending runs the most recent suppressed call
func (t *Throttler) firePending() {
	t.mu.Lock()
	fn := t.pending
	t.pending = nil
	t.timer = nil
	t.lastRun = time.Now()
	t.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Stop cancels any pending call
func (t *Throttler) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.pending = nil
}
