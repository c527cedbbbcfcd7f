package snake

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-snake/internal/audio"
	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/input"
	"github.com/vovakirdan/neon-snake/internal/leaderboard"
	"github.com/vovakirdan/neon-snake/internal/sched"
)

type op struct {
	kind       string // "clear", "fill", "stroke"
	x, y, w, h int
	col        core.Color
}

type recordingSurface struct {
	ops []op
}

func (r *recordingSurface) Size() (int, int) { return 400, 400 }

func (r *recordingSurface) Clear() { r.ops = append(r.ops, op{kind: "clear"}) }

func (r *recordingSurface) FillRect(x, y, w, h int, c core.Color) {
	r.ops = append(r.ops, op{"fill", x, y, w, h, c})
}

func (r *recordingSurface) StrokeRect(x, y, w, h int, c core.Color) {
	r.ops = append(r.ops, op{"stroke", x, y, w, h, c})
}

// lastFrame returns the ops since the most recent clear.
func (r *recordingSurface) lastFrame() []op {
	for i := len(r.ops) - 1; i >= 0; i-- {
		if r.ops[i].kind == "clear" {
			return r.ops[i:]
		}
	}
	return nil
}

type recordingPrompt struct {
	asked []int
	reply func(string)
}

func (p *recordingPrompt) AskName(score int, reply func(string)) {
	p.asked = append(p.asked, score)
	p.reply = reply
}

type recordingAlerter struct {
	msgs []string
}

func (a *recordingAlerter) Alert(msg string) { a.msgs = append(a.msgs, msg) }

type refreshCounter struct {
	n int
}

func (r *refreshCounter) Refresh() { r.n++ }

type recordingCues struct {
	played []audio.Cue
}

func (r *recordingCues) Play(c audio.Cue) { r.played = append(r.played, c) }

func (r *recordingCues) last() audio.Cue {
	if len(r.played) == 0 {
		return ""
	}
	return r.played[len(r.played)-1]
}

type failingSink struct{}

var errNetwork = errors.New("network unreachable")

func (failingSink) SubmitScore(context.Context, string, int) error { return errNetwork }

func (failingSink) TopScores(context.Context, int) ([]leaderboard.Entry, error) {
	return nil, errNetwork
}

type memRecorder struct {
	results []Result
	err     error
}

func (m *memRecorder) RecordGame(_ context.Context, r Result) error {
	m.results = append(m.results, r)
	return m.err
}

// countingBus tracks live subscriptions on top of an input.Bus.
type countingBus struct {
	*input.Bus
	live int
}

func newCountingBus() *countingBus {
	return &countingBus{Bus: input.NewBus()}
}

func (b *countingBus) Subscribe(fn func(core.Heading)) func() {
	unsubscribe := b.Bus.Subscribe(fn)
	b.live++
	done := false
	return func() {
		if !done {
			done = true
			b.live--
		}
		unsubscribe()
	}
}

func (b *countingBus) Listeners() int {
	return b.live
}

type harness struct {
	clock   *sched.Fake
	bus     *countingBus
	surface *recordingSurface
	prompt  *recordingPrompt
	alerts  *recordingAlerter
	board   *refreshCounter
	cues    *recordingCues
	ctrl    *Controller
}

func newHarness(t *testing.T, sink leaderboard.Sink) *harness {
	t.Helper()
	h := &harness{
		clock:   sched.NewFake(),
		bus:     newCountingBus(),
		surface: &recordingSurface{},
		prompt:  &recordingPrompt{},
		alerts:  &recordingAlerter{},
		board:   &refreshCounter{},
		cues:    &recordingCues{},
	}
	h.ctrl = NewController(DefaultSettings(), Deps{
		Surface:    h.surface,
		Scheduler:  h.clock,
		Dispatcher: h.clock,
		Input:      h.bus,
		Prompt:     h.prompt,
		Alerter:    h.alerts,
		Cues:       h.cues,
		Sink:       sink,
		Board:      h.board,
		Rand:       rand.New(rand.NewSource(1)),
		Logger:     log.New(io.Discard),
	})
	return h
}

// start begins a session and fails the test if it does not run.
func (h *harness) start(t *testing.T) *Session {
	t.Helper()
	s := h.ctrl.Start()
	if s == nil {
		t.Fatal("Start() returned nil")
	}
	return s
}

// place overrides the session state for a scenario.
func place(s *Session, body []core.Cell, food core.Cell, heading core.Heading) {
	s.snake = append([]core.Cell(nil), body...)
	s.food = food
	s.heading = heading
}

func cell(x, y int) core.Cell {
	return core.Cell{X: x, Y: y}
}
