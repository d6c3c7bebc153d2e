package search

import "time"

// clock is a wall-clock deadline, checked at the top of each search
// iteration. There is no preemption mid-iteration, so the engine may
// overshoot the deadline by the cost of one iteration (expansion +
// rollout + backup). Modeled on the teacher's TimeControl, trimmed to the
// single fixed-deadline case this engine needs (no pondering, no
// move-to-go budgeting).
type clock struct {
	deadline time.Time
}

// newClock returns a clock that expires after budget.
func newClock(budget time.Duration) *clock {
	return &clock{deadline: time.Now().Add(budget)}
}

// expired reports whether the deadline has passed.
func (c *clock) expired() bool {
	return !time.Now().Before(c.deadline)
}
