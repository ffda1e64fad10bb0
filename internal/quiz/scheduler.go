package quiz

import (
	"sort"
	"sync"
	"time"
)

// Timer is the handle of a pending callback.
type Timer interface {
	Stop() bool
}

// Clock abstracts time.AfterFunc so timed transitions can be driven by tests.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// RealClock returns a Clock backed by the runtime timers.
func RealClock() Clock { return realClock{} }

// Task names a pending delayed transition. At most one task per name is pending.
type Task string

const (
	TaskReveal      Task = "reveal"
	TaskAutoAdvance Task = "auto_advance"
	TaskRestart     Task = "restart_transition"
)

type scheduled struct {
	id       uint64
	timer    Timer
	deadline time.Time
}

// Scheduler owns cancellable delayed tasks. Every method must be called with
// locker held, and callbacks run with locker held, so a callback can never
// interleave with the transition that cancelled it.
type Scheduler struct {
	clock  Clock
	locker sync.Locker
	nextID uint64
	tasks  map[Task]scheduled
}

func NewScheduler(clock Clock, locker sync.Locker) *Scheduler {
	if clock == nil {
		clock = RealClock()
	}
	return &Scheduler{clock: clock, locker: locker, tasks: make(map[Task]scheduled)}
}

// Schedule runs f after d, replacing any pending task with the same name.
func (s *Scheduler) Schedule(task Task, d time.Duration, f func()) {
	s.Cancel(task)
	s.nextID++
	id := s.nextID
	timer := s.clock.AfterFunc(d, func() {
		s.locker.Lock()
		defer s.locker.Unlock()
		// A timer that fired while its cancellation waited on the lock is stale.
		current, ok := s.tasks[task]
		if !ok || current.id != id {
			return
		}
		delete(s.tasks, task)
		f()
	})
	s.tasks[task] = scheduled{id: id, timer: timer, deadline: s.clock.Now().Add(d)}
}

// Cancel drops a pending task. It reports whether one was pending.
func (s *Scheduler) Cancel(task Task) bool {
	current, ok := s.tasks[task]
	if !ok {
		return false
	}
	current.timer.Stop()
	delete(s.tasks, task)
	return true
}

// CancelAll drops every pending task.
func (s *Scheduler) CancelAll() {
	for task := range s.tasks {
		s.Cancel(task)
	}
}

func (s *Scheduler) Pending(task Task) bool {
	_, ok := s.tasks[task]
	return ok
}

// NextDue returns the time left until the earliest pending task fires.
func (s *Scheduler) NextDue() (time.Duration, bool) {
	var earliest time.Time
	found := false
	for _, t := range s.tasks {
		if !found || t.deadline.Before(earliest) {
			earliest = t.deadline
			found = true
		}
	}
	if !found {
		return 0, false
	}
	left := earliest.Sub(s.clock.Now())
	if left < 0 {
		left = 0
	}
	return left, true
}

// ManualClock is a Clock that only moves when Advance is called. Callbacks run
// synchronously on the caller's goroutine, in deadline order.
type ManualClock struct {
	mu     sync.Mutex
	now    time.Duration
	seq    int
	timers []*manualTimer
}

type manualTimer struct {
	clock    *ManualClock
	deadline time.Duration
	seq      int
	fn       func()
	stopped  bool
}

func NewManualClock() *ManualClock { return &ManualClock{} }

var manualEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return manualEpoch.Add(c.now)
}

func (c *ManualClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &manualTimer{clock: c, deadline: c.now + d, seq: c.seq, fn: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves the clock forward by d and fires every timer that became due.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		due := c.popDue(target)
		if due == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = due.deadline
		c.mu.Unlock()
		due.fn()
	}
}

// FireStopped runs the callbacks of stopped timers, simulating timers that
// fired just before their cancellation took the lock.
func (c *ManualClock) FireStopped() {
	c.mu.Lock()
	var fns []func()
	kept := c.timers[:0]
	for _, t := range c.timers {
		if t.stopped {
			fns = append(fns, t.fn)
			continue
		}
		kept = append(kept, t)
	}
	c.timers = kept
	c.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (c *ManualClock) popDue(target time.Duration) *manualTimer {
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	c.timers = live
	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].deadline == c.timers[j].deadline {
			return c.timers[i].seq < c.timers[j].seq
		}
		return c.timers[i].deadline < c.timers[j].deadline
	})
	if len(c.timers) == 0 || c.timers[0].deadline > target {
		return nil
	}
	t := c.timers[0]
	c.timers = c.timers[1:]
	t.stopped = true
	return t
}
