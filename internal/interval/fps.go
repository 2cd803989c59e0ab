package interval

import "time"

// FrameCounter counts driver frames and reports the count of the last
// completed second.
type FrameCounter struct {
	clock   Clock
	start   time.Time
	running int
	last    int
}

// NewFrameCounter creates a counter on the given clock (nil means SystemClock).
func NewFrameCounter(c Clock) *FrameCounter {
	if c == nil {
		c = SystemClock
	}
	return &FrameCounter{clock: c}
}

// Tick records one frame.
func (f *FrameCounter) Tick() {
	now := f.clock.Now()
	if now.Sub(f.start) > time.Second {
		f.last = f.running
		f.running = 0
		f.start = now
	}
	f.running++
}

// FPS returns the number of frames seen during the last full second.
func (f *FrameCounter) FPS() int {
	return f.last
}
