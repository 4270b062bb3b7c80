package game

import "time"

// timings records the duration of the last N regenerations in a ring buffer
// so the HUD can show how long building a galaxy takes.
type timings struct {
	buffer    []time.Duration
	nextIndex int
	filled    bool
}

func newTimings(ringSize int) *timings {
	return &timings{buffer: make([]time.Duration, ringSize)}
}

func (t *timings) add(d time.Duration) {
	t.buffer[t.nextIndex] = d
	t.nextIndex++
	if t.nextIndex >= len(t.buffer) {
		t.nextIndex = 0
		t.filled = true
	}
}

func (t *timings) len() int {
	if t.filled {
		return len(t.buffer)
	}
	return t.nextIndex
}

// snapshot returns the recorded durations, oldest first.
func (t *timings) snapshot() []time.Duration {
	out := make([]time.Duration, 0, t.len())
	if t.filled {
		out = append(out, t.buffer[t.nextIndex:]...)
	}
	return append(out, t.buffer[:t.nextIndex]...)
}

// last returns the most recent duration, or zero.
func (t *timings) last() time.Duration {
	if t.len() == 0 {
		return 0
	}
	idx := t.nextIndex - 1
	if idx < 0 {
		idx = len(t.buffer) - 1
	}
	return t.buffer[idx]
}

func (t *timings) mean() time.Duration {
	n := t.len()
	if n == 0 {
		return 0
	}
	var sum time.Duration
	for _, d := range t.snapshot() {
		sum += d
	}
	return sum / time.Duration(n)
}
