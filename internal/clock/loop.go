package clock

import (
	"sync/atomic"
	"time"
)

// Loop is a Clock whose timer callbacks are delivered as events on a
// channel instead of running on the timer goroutine. The owner drains
// Events() on its control goroutine and runs each event there, so every
// callback is serialized with the rest of the owner's state changes.
//
// A timer stopped on the control goroutine never runs, even if its
// event was already queued.
type Loop struct {
	base   Clock
	events chan func()
}

var _ Clock = (*Loop)(nil)

// NewLoop wraps base. A nil base uses Real.
func NewLoop(base Clock) *Loop {
	if base == nil {
		base = Real{}
	}
	return &Loop{base: base, events: make(chan func(), 16)}
}

// Events returns the channel of pending callbacks.
func (l *Loop) Events() <-chan func() {
	return l.events
}

// Now delegates to the wrapped clock.
func (l *Loop) Now() time.Time {
	return l.base.Now()
}

// AfterFunc schedules f to be queued on Events after d.
func (l *Loop) AfterFunc(d time.Duration, f func()) Timer {
	t := &loopTimer{}
	t.inner = l.base.AfterFunc(d, func() {
		l.events <- func() {
			if t.stopped.CompareAndSwap(false, true) {
				f()
			}
		}
	})
	return t
}

type loopTimer struct {
	inner   Timer
	stopped atomic.Bool
}

func (t *loopTimer) Stop() bool {
	t.inner.Stop()
	return t.stopped.CompareAndSwap(false, true)
}
