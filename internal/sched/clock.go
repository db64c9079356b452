// internal/sched/clock.go

package sched

// Clock is the logical time source of one simulation run.
// It only moves forward.
type Clock struct {
	now int64
}

// NewClock creates a clock starting at the given time.
func NewClock(start int64) *Clock {
	return &Clock{now: start}
}

// Now returns the current logical time.
func (c *Clock) Now() int64 { return c.now }

// Advance moves the clock forward by d. Non-positive d is ignored.
func (c *Clock) Advance(d int64) {
	if d <= 0 {
		return
	}
	c.now += d
}

// AdvanceTo jumps the clock to t if t lies in the future.
func (c *Clock) AdvanceTo(t int64) {
	if t <= c.now {
		return
	}
	c.now = t
}
