// Package interval gates a simulation step to a fixed rate from a driver that
// polls every frame. It never catches up: a late poll runs the step once and
// reports the dropped frames instead.
package interval

import "time"

// Scheduler invokes its step function at most once per interval.
// It is polled from a single goroutine and does no locking.
type Scheduler struct {
	interval time.Duration
	step     func()
	clock    Clock
	warn     Warner

	last  time.Time
	fired bool
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(s *Scheduler) {
		s.clock = c
	}
}

// WithWarner sets the sink for cadence warnings.
func WithWarner(w Warner) Option {
	return func(s *Scheduler) {
		s.warn = w
	}
}

// IntervalForRate converts a rate in steps per second to an interval.
// Rates below one are treated as one step per second.
func IntervalForRate(rate int) time.Duration {
	if rate < 1 {
		rate = 1
	}
	return time.Second / time.Duration(rate)
}

// New creates a scheduler that runs step every interval.
func New(interval time.Duration, step func(), opts ...Option) *Scheduler {
	s := &Scheduler{
		interval: interval,
		step:     step,
		clock:    SystemClock,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Interval returns the target interval between steps.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// Poll runs the step if at least one interval has passed since the last run.
// The first poll always runs it.
func (s *Scheduler) Poll() {
	start := s.clock.Now()
	elapsed := start.Sub(s.last)
	if s.fired && elapsed < s.interval {
		return
	}

	WarnUnless(s.warn, !s.fired || elapsed < 2*s.interval, MsgFramesDropped,
		"elapsed", elapsed, "interval", s.interval)

	s.step()

	s.last = start
	s.fired = true

	took := s.clock.Now().Sub(s.last)
	WarnUnless(s.warn, took < s.interval, MsgRunningSlow,
		"step", took, "interval", s.interval)
}
