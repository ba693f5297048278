package logger

import (
	"sync/atomic"
	"time"
)

// clock hands out UTC capture instants that never go backwards, even when the
// wall clock is stepped.
type clock struct {
	now  func() time.Time
	last atomic.Int64
}

func newClock(now func() time.Time) *clock {
	if now == nil {
		now = time.Now
	}
	return &clock{now: now}
}

func (c *clock) Now() time.Time {
	t := c.now().UTC()
	ns := t.UnixNano()
	for {
		prev := c.last.Load()
		if ns <= prev {
			return time.Unix(0, prev).UTC()
		}
		if c.last.CompareAndSwap(prev, ns) {
			return t
		}
	}
}
