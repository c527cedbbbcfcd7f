package sched

import (
	"context"
	"sort"
	"time"
)

// Fake is a manually advanced clock that implements Scheduler and Dispatcher.
// Nothing happens until the test calls Advance or Flush, which makes tick
// ordering fully deterministic.
type Fake struct {
	now     time.Duration
	nextID  int
	timers  map[int]*fakeTimer
	pending []fakeJob
}

type fakeTimer struct {
	id       int
	period   time.Duration
	deadline time.Duration
	fn       func()
}

type fakeJob struct {
	work func(ctx context.Context) error
	done func(err error)
}

// NewFake creates a fake clock at time zero.
func NewFake() *Fake {
	return &Fake{timers: make(map[int]*fakeTimer)}
}

// Every registers a recurring callback. The first run is one period from now.
func (f *Fake) Every(period time.Duration, fn func()) Handle {
	if period <= 0 {
		period = time.Millisecond
	}
	f.nextID++
	id := f.nextID
	f.timers[id] = &fakeTimer{
		id:       id,
		period:   period,
		deadline: f.now + period,
		fn:       fn,
	}
	return HandleFunc(func() {
		delete(f.timers, id)
	})
}

// Advance moves the clock forward by d, firing due callbacks in deadline
// order (ties broken by registration order). Callbacks may cancel timers,
// including their own, or register new ones.
func (f *Fake) Advance(d time.Duration) {
	target := f.now + d
	for {
		t := f.nextDue(target)
		if t == nil {
			break
		}
		f.now = t.deadline
		t.deadline += t.period
		t.fn()
	}
	f.now = target
}

// Tick advances the clock by exactly one period of the earliest timer.
func (f *Fake) Tick() {
	t := f.nextDue(-1)
	if t == nil {
		return
	}
	f.Advance(t.deadline - f.now)
}

func (f *Fake) nextDue(limit time.Duration) *fakeTimer {
	ids := make([]int, 0, len(f.timers))
	for id := range f.timers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	var best *fakeTimer
	for _, id := range ids {
		t := f.timers[id]
		if limit >= 0 && t.deadline > limit {
			continue
		}
		if best == nil || t.deadline < best.deadline {
			best = t
		}
	}
	return best
}

// Active returns the number of live recurring callbacks.
func (f *Fake) Active() int {
	return len(f.timers)
}

// Now returns the elapsed fake time.
func (f *Fake) Now() time.Duration {
	return f.now
}

// Go queues work; it runs on the next Flush.
func (f *Fake) Go(work func(ctx context.Context) error, done func(err error)) {
	f.pending = append(f.pending, fakeJob{work: work, done: done})
}

// Pending returns the number of queued async jobs.
func (f *Fake) Pending() int {
	return len(f.pending)
}

// Flush runs queued jobs, including jobs queued by their completions.
func (f *Fake) Flush() {
	for len(f.pending) > 0 {
		job := f.pending[0]
		f.pending = f.pending[1:]
		err := job.work(context.Background())
		if job.done != nil {
			job.done(err)
		}
	}
}
