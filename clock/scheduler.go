// Package clock advances timed effects on the simulation tick
package clock

import (
	"container/heap"
	"time"
)

// Timer is a one-shot callback scheduled on simulation time
type Timer struct {
	due       time.Duration
	seq       uint64
	fn        func()
	index     int
	cancelled bool
	fired     bool
	s         *Scheduler
}

// Cancel prevents the callback from firing
// Returns false if the timer already fired or was cancelled
func (t *Timer) Cancel() bool {
	if t == nil || t.fired || t.cancelled {
		return false
	}
	t.cancelled = true
	if t.index >= 0 && t.s != nil {
		heap.Remove(&t.s.queue, t.index)
	}
	return true
}

// Active reports whether the timer is still pending
func (t *Timer) Active() bool {
	return t != nil && !t.fired && !t.cancelled
}

// Remaining returns simulation time until the timer fires, zero when inactive
func (t *Timer) Remaining() time.Duration {
	if !t.Active() {
		return 0
	}
	if r := t.due - t.s.now; r > 0 {
		return r
	}
	return 0
}

// Scheduler holds pending timers ordered by due time, ties broken by scheduling order
// Not safe for concurrent use; owned by the game loop
type Scheduler struct {
	now   time.Duration
	seq   uint64
	queue timerHeap
}

// NewScheduler creates a scheduler at simulation time zero
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the accumulated simulation time
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Pending returns the number of timers waiting to fire
func (s *Scheduler) Pending() int {
	return len(s.queue)
}

// After schedules fn to run once d of simulation time has elapsed
// Non-positive d fires on the next Advance
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.seq++
	t := &Timer{due: s.now + d, seq: s.seq, fn: fn, s: s}
	heap.Push(&s.queue, t)
	return t
}

// Advance moves simulation time forward and fires every due timer in order
// Timers scheduled by callbacks fire in the same call when already due
// Returns the number of callbacks fired
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}
	fired := 0
	for len(s.queue) > 0 && s.queue[0].due <= s.now {
		t := heap.Pop(&s.queue).(*Timer)
		t.fired = true
		if t.fn != nil {
			t.fn()
		}
		fired++
	}
	return fired
}

// Clear cancels every pending timer
func (s *Scheduler) Clear() {
	for _, t := range s.queue {
		t.cancelled = true
		t.index = -1
	}
	s.queue = s.queue[:0]
}

type timerHeap []*Timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].due == h[j].due {
		return h[i].seq < h[j].seq
	}
	return h[i].due < h[j].due
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*Timer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
