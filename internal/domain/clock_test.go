package domain

import (
	"testing"
	"time"
)

type clock struct {
	t     time.Time
	calls int
}

// useClock replaces now with a clock that advances one second per call.
func useClock(t *testing.T) *clock {
	t.Helper()
	c := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	prev := now
	now = func() time.Time {
		c.calls++
		c.t = c.t.Add(time.Second)
		return c.t
	}
	t.Cleanup(func() { now = prev })
	return c
}
