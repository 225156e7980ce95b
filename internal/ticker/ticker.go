// Package ticker is a repeating timer polled from a game loop. The callback
// runs on the goroutine that calls Advance, so it can touch UI state without
// locking.
package ticker

import (
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidInterval is returned by Start for a non-positive interval.
var ErrInvalidInterval = errors.New("ticker interval must be positive")

// Ticker invokes a callback every interval while running.
type Ticker struct {
	interval time.Duration
	fn       func()
	next     time.Time
	running  bool
}

// Start arms the ticker. The first callback fires on the first Advance at or
// after now+interval. Starting a running ticker replaces its schedule.
func (t *Ticker) Start(now time.Time, interval time.Duration, fn func()) error {
	if interval <= 0 {
		return errors.Wrapf(ErrInvalidInterval, "got %s", interval)
	}
	t.interval = interval
	t.fn = fn
	t.next = now.Add(interval)
	t.running = true
	return nil
}

// Stop disarms the ticker and drops the callback. It is safe to call more
// than once.
func (t *Ticker) Stop() {
	t.running = false
	t.fn = nil
}

// Running reports whether the ticker is armed.
func (t *Ticker) Running() bool { return t.running }

// Interval returns the configured interval.
func (t *Ticker) Interval() time.Duration { return t.interval }

// Advance fires the callback if a tick is due at now. Missed ticks are
// collapsed into one; the schedule then resumes from now.
func (t *Ticker) Advance(now time.Time) bool {
	if !t.running || now.Before(t.next) {
		return false
	}

	t.next = t.next.Add(t.interval)
	if !t.next.After(now) {
		t.next = now.Add(t.interval)
	}
	if t.fn != nil {
		t.fn()
	}
	return true
}
