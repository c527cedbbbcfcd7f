// Package tui provides the Bubble Tea integration for neon-snake.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-snake/internal/sched"
)

// timerMsg fires a registered recurring callback.
type timerMsg struct {
	id int
}

// doneMsg carries the result of dispatched work back onto the Update loop.
type doneMsg struct {
	id  int
	err error
}

type timer struct {
	period time.Duration
	fn     func()
}

// eventLoop implements sched.Scheduler and sched.Dispatcher on top of the
// Bubble Tea Update loop. Registrations made during Update are turned into
// commands by drain; the resulting messages are routed back through handle,
// so every callback runs on the Update goroutine.
type eventLoop struct {
	ctx    context.Context
	cancel context.CancelFunc
	nextID int
	timers map[int]*timer
	jobs   map[int]func(error)
	cmds   []tea.Cmd
	// arm builds the command that fires a timer; tests replace it.
	arm func(id int, d time.Duration) tea.Cmd
}

func newEventLoop() *eventLoop {
	ctx, cancel := context.WithCancel(context.Background())
	return &eventLoop{
		ctx:    ctx,
		cancel: cancel,
		timers: make(map[int]*timer),
		jobs:   make(map[int]func(error)),
		arm:    tickCmd,
	}
}

// tickCmd returns a Bubble Tea command that fires timer id after d.
func tickCmd(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	})
}

// Every schedules fn every period until the handle is cancelled.
func (l *eventLoop) Every(period time.Duration, fn func()) sched.Handle {
	l.nextID++
	id := l.nextID
	l.timers[id] = &timer{period: period, fn: fn}
	l.cmds = append(l.cmds, l.arm(id, period))
	return sched.HandleFunc(func() {
		delete(l.timers, id)
	})
}

// Go runs work in a command goroutine; done is delivered via doneMsg.
func (l *eventLoop) Go(work func(ctx context.Context) error, done func(err error)) {
	l.nextID++
	id := l.nextID
	l.jobs[id] = done
	ctx := l.ctx
	l.cmds = append(l.cmds, func() tea.Msg {
		return doneMsg{id: id, err: work(ctx)}
	})
}

// handle routes loop messages. It reports whether msg belonged to the loop.
func (l *eventLoop) handle(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case timerMsg:
		t, ok := l.timers[msg.id]
		if !ok {
			// Cancelled; let the chain die.
			return true
		}
		l.cmds = append(l.cmds, l.arm(msg.id, t.period))
		t.fn()
		return true

	case doneMsg:
		done, ok := l.jobs[msg.id]
		if !ok {
			return true
		}
		delete(l.jobs, msg.id)
		if done != nil {
			done(msg.err)
		}
		return true
	}
	return false
}

// drain returns the commands queued since the last drain.
func (l *eventLoop) drain() tea.Cmd {
	if len(l.cmds) == 0 {
		return nil
	}
	cmds := l.cmds
	l.cmds = nil
	return batch(cmds...)
}

// batch drops nil commands and avoids wrapping a single command.
func batch(cmds ...tea.Cmd) tea.Cmd {
	valid := cmds[:0:0]
	for _, c := range cmds {
		if c != nil {
			valid = append(valid, c)
		}
	}
	switch len(valid) {
	case 0:
		return nil
	case 1:
		return valid[0]
	}
	return tea.Batch(valid...)
}

// close cancels in-flight work and drops every timer.
func (l *eventLoop) close() {
	l.cancel()
	clear(l.timers)
}

var (
	_ sched.Scheduler  = (*eventLoop)(nil)
	_ sched.Dispatcher = (*eventLoop)(nil)
)
