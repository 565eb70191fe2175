package core

import (
	"sort"
	"sync"
	"time"
)

// Clock schedules deferred callbacks. The engine never sleeps; it asks a
// Clock to run the next step of a sequence later.
type Clock interface {
	// AfterFunc arranges for f to run once d has elapsed on this clock.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending callback returned by Clock.AfterFunc.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the
	// call stopped the timer (false if it already fired or was stopped).
	Stop() bool
}

// ManualClock is a logical clock that only moves when Advance is called.
// Callbacks run synchronously inside Advance, in deadline order, which makes
// timed sequences deterministic in tests and in frame-driven game loops.
type ManualClock struct {
	now     time.Duration
	seq     uint64
	pending []*manualTimer
}

type manualTimer struct {
	clock    *ManualClock
	deadline time.Duration
	seq      uint64
	fn       func()
	done     bool
}

// NewManualClock returns a logical clock starting at zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

// Now returns the elapsed logical time.
func (c *ManualClock) Now() time.Duration {
	return c.now
}

// AfterFunc schedules f at Now()+d. A non-positive d fires on the next Advance.
func (c *ManualClock) AfterFunc(d time.Duration, f func()) Timer {
	if d < 0 {
		d = 0
	}
	c.seq++
	t := &manualTimer{clock: c, deadline: c.now + d, seq: c.seq, fn: f}
	c.pending = append(c.pending, t)
	return t
}

// Advance moves the clock forward by d, firing every callback that becomes due.
// Callbacks scheduled by a firing callback also run if they fall inside the window.
func (c *ManualClock) Advance(d time.Duration) {
	target := c.now + d
	for {
		next := c.nextDue(target)
		if next == nil {
			break
		}
		c.now = next.deadline
		next.done = true
		next.fn()
	}
	c.now = target
}

// Pending returns the number of timers that have not fired or been stopped.
func (c *ManualClock) Pending() int {
	n := 0
	for _, t := range c.pending {
		if !t.done {
			n++
		}
	}
	return n
}

// nextDue pops the earliest live timer with deadline <= target.
func (c *ManualClock) nextDue(target time.Duration) *manualTimer {
	live := c.pending[:0]
	for _, t := range c.pending {
		if !t.done {
			live = append(live, t)
		}
	}
	c.pending = live
	if len(c.pending) == 0 {
		return nil
	}

	sort.SliceStable(c.pending, func(i, j int) bool {
		if c.pending[i].deadline != c.pending[j].deadline {
			return c.pending[i].deadline < c.pending[j].deadline
		}
		return c.pending[i].seq < c.pending[j].seq
	})
	if c.pending[0].deadline > target {
		return nil
	}
	return c.pending[0]
}

func (t *manualTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	return true
}

// RealClock schedules callbacks on the wall clock via time.AfterFunc.
// Callbacks run on their own goroutine; callers that need single-writer
// semantics must hand them back to their own loop or use QueueClock.
type RealClock struct{}

// AfterFunc implements Clock.
func (RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// QueueClock waits on the wall clock but never runs a callback by itself.
// Due callbacks queue up until the owner calls RunDue on its own goroutine,
// so an owner that is not safe for concurrent use can still be timed.
type QueueClock struct {
	mu    sync.Mutex
	ready []*queuedTimer
}

type queuedTimer struct {
	clock *QueueClock
	timer *time.Timer
	fn    func()
	done  bool // guarded by clock.mu
}

// NewQueueClock returns an empty wall-clock queue.
func NewQueueClock() *QueueClock {
	return &QueueClock{}
}

// AfterFunc queues f once d has elapsed. f runs inside a later RunDue.
func (c *QueueClock) AfterFunc(d time.Duration, f func()) Timer {
	t := &queuedTimer{clock: c, fn: f}
	t.timer = time.AfterFunc(d, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if !t.done {
			c.ready = append(c.ready, t)
		}
	})
	return t
}

// RunDue runs every queued callback in the order they came due, including
// ones that come due while it runs, and reports how many ran.
func (c *QueueClock) RunDue() int {
	n := 0
	for {
		c.mu.Lock()
		if len(c.ready) == 0 {
			c.mu.Unlock()
			return n
		}
		t := c.ready[0]
		c.ready = c.ready[1:]
		skip := t.done
		t.done = true
		c.mu.Unlock()

		if !skip {
			t.fn()
			n++
		}
	}
}

func (t *queuedTimer) Stop() bool {
	t.timer.Stop()
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	return true
}
