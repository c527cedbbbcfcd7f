package snake

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/sched"
)

func TestStartTearsDownPrevious(t *testing.T) {
	h := newHarness(t, nil)
	first := h.start(t)
	second := h.start(t)

	if first.State() != StateStopped {
		t.Errorf("first state = %s, expected stopped", first.State())
	}
	if h.clock.Active() != 1 || h.bus.Listeners() != 1 {
		t.Errorf("timers/listeners = %d/%d, expected 1/1", h.clock.Active(), h.bus.Listeners())
	}
	if h.ctrl.Session() != second {
		t.Error("controller should hold the newest session")
	}

	h.bus.Publish(core.HeadingUp)
	h.clock.Tick()

	if first.Heading() != core.HeadingNone || first.Ticks() != 0 {
		t.Error("superseded session still receives input or ticks")
	}
	if second.Heading() != core.HeadingUp || second.Ticks() != 1 {
		t.Errorf("heading/ticks = %v/%d, expected up/1", second.Heading(), second.Ticks())
	}
	if len(h.prompt.asked) != 0 {
		t.Error("a superseded session must not prompt")
	}
}

func TestRepeatedStartsDoNotLeakListeners(t *testing.T) {
	h := newHarness(t, nil)
	for i := 0; i < 10; i++ {
		h.start(t)
	}
	if h.bus.Listeners() != 1 || h.clock.Active() != 1 {
		t.Errorf("timers/listeners = %d/%d after 10 starts, expected 1/1", h.clock.Active(), h.bus.Listeners())
	}
}

func TestStartWithoutSurfaceIsNoop(t *testing.T) {
	clock := sched.NewFake()
	bus := newCountingBus()
	ctrl := NewController(DefaultSettings(), Deps{
		Scheduler: clock,
		Input:     bus,
		Logger:    log.New(io.Discard),
	})

	if s := ctrl.Start(); s != nil {
		t.Fatal("Start() without a surface should return nil")
	}
	if ctrl.State() != StateIdle || ctrl.Session() != nil {
		t.Errorf("state = %s, expected idle", ctrl.State())
	}
	if clock.Active() != 0 || bus.Listeners() != 0 {
		t.Error("a failed start must not schedule ticks or subscribe")
	}
}

func TestStopOnQuit(t *testing.T) {
	h := newHarness(t, nil)
	s := h.start(t)

	h.ctrl.Stop()
	h.ctrl.Stop()

	if s.State() != StateStopped || h.ctrl.State() != StateStopped {
		t.Errorf("state = %s, expected stopped", s.State())
	}
	if h.clock.Active() != 0 || h.bus.Listeners() != 0 {
		t.Error("Stop() left the timer or listener behind")
	}
	if len(h.prompt.asked) != 0 {
		t.Error("Stop() must not prompt")
	}
}

func TestControllerIdleBeforeStart(t *testing.T) {
	h := newHarness(t, nil)
	if h.ctrl.State() != StateIdle {
		t.Errorf("state = %s, expected idle", h.ctrl.State())
	}
	h.ctrl.Stop()
}

func TestRedraw(t *testing.T) {
	h := newHarness(t, nil)
	if h.ctrl.Redraw() {
		t.Error("Redraw() before any start should report false")
	}

	h.start(t)
	before := len(h.surface.ops)
	if !h.ctrl.Redraw() {
		t.Fatal("Redraw() should draw the active session")
	}
	if len(h.surface.ops) <= before || h.surface.lastFrame()[0].kind != "clear" {
		t.Error("Redraw() did not render a full frame")
	}
}
