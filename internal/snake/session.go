package snake

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/neon-snake/internal/audio"
	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/sched"
)

// State is the lifecycle stage of a session.
type State string

const (
	StateIdle    State = "idle"
	StateRunning State = "running"
	StateEnded   State = "ended"
	// StateStopped marks a session torn down before it ended, either
	// superseded by a new start or stopped on quit. Nothing is reported.
	StateStopped State = "stopped"
)

// EndReason says why a session ended.
type EndReason string

const (
	EndNone EndReason = ""
	EndWall EndReason = "wall"
	EndSelf EndReason = "self"
)

// User-visible outcomes of a score submission.
const (
	MsgUploaded    = "Score uploaded!"
	MsgUploadError = "Error uploading score."
)

// Result summarises a finished session.
type Result struct {
	SessionID string
	Score     int
	Length    int
	Ticks     int
	Reason    EndReason
	Duration  time.Duration
}

// Session is one game from start to collision. It owns the snake, the
// food, the heading, the score and the handles that keep it running.
type Session struct {
	id       string
	settings Settings
	deps     Deps
	logger   *log.Logger

	snake   []core.Cell // head at index 0
	food    core.Cell
	heading core.Heading
	score   int
	ticks   int
	state   State
	reason  EndReason

	handle      sched.Handle
	unsubscribe func()
}

func newSession(settings Settings, deps Deps) *Session {
	id := uuid.NewString()
	s := &Session{
		id:       id,
		settings: settings,
		deps:     deps,
		logger:   deps.Logger.With("session", id),
		snake:    []core.Cell{settings.StartCell()},
		state:    StateRunning,
	}
	s.food = s.randomCell(s.snake[0])
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle stage.
func (s *Session) State() State { return s.state }

// Score returns the number of food cells eaten.
func (s *Session) Score() int { return s.score }

// Heading returns the heading the next tick will apply.
func (s *Session) Heading() core.Heading { return s.heading }

// Food returns the food cell.
func (s *Session) Food() core.Cell { return s.food }

// Ticks returns the number of ticks processed.
func (s *Session) Ticks() int { return s.ticks }

// Reason returns why the session ended, or EndNone.
func (s *Session) Reason() EndReason { return s.reason }

// Snake returns a copy of the body, head first.
func (s *Session) Snake() []core.Cell {
	return append([]core.Cell(nil), s.snake...)
}

// Head returns the head cell.
func (s *Session) Head() core.Cell { return s.snake[0] }

// Len returns the body length.
func (s *Session) Len() int { return len(s.snake) }

// Result summarises the session so far.
func (s *Session) Result() Result {
	return Result{
		SessionID: s.id,
		Score:     s.score,
		Length:    len(s.snake),
		Ticks:     s.ticks,
		Reason:    s.reason,
		Duration:  time.Duration(s.ticks) * s.settings.Period,
	}
}

// SetHeading requests a new heading. A direct reversal of the heading
// currently set is ignored; otherwise the request overwrites any earlier
// one not yet consumed by a tick. It reports whether the request was taken.
func (s *Session) SetHeading(h core.Heading) bool {
	if s.state != StateRunning || h == core.HeadingNone {
		return false
	}
	if h.Reverses(s.heading) {
		return false
	}
	s.heading = h
	return true
}

// Tick advances the game by one step. It is what the scheduler calls; a
// tick delivered after the session stopped running is ignored.
func (s *Session) Tick() {
	if s.state != StateRunning {
		return
	}
	s.ticks++

	// Without a heading the snake stays put and nothing else happens.
	if s.heading == core.HeadingNone {
		s.render()
		return
	}

	dx, dy := s.heading.Delta()
	head := s.snake[0]
	next := head.Add(dx*s.settings.CellSize, dy*s.settings.CellSize)

	if !s.settings.InField(next) {
		s.end(EndWall)
		return
	}

	eating := next == s.food

	// The tail moves away this tick unless the snake grows, so it is not
	// an obstacle.
	body := s.snake
	if !eating {
		body = body[:len(body)-1]
	}
	for _, c := range body {
		if c == next {
			s.end(EndSelf)
			return
		}
	}

	s.snake = append([]core.Cell{next}, s.snake...)
	if eating {
		s.score++
		s.deps.Cues.Play(audio.CueHover)
		s.food = s.randomCell(next)
		s.logger.Debug("food eaten", "score", s.score, "length", len(s.snake))
	} else {
		s.snake = s.snake[:len(s.snake)-1]
	}

	s.render()
}

// randomCell picks a uniformly random field cell other than avoid. The
// body is not avoided, so food may land on the snake.
func (s *Session) randomCell(avoid core.Cell) core.Cell {
	rng := s.deps.Rand
	for {
		c := core.Cell{
			X: rng.Intn(s.settings.Cols) * s.settings.CellSize,
			Y: rng.Intn(s.settings.Rows) * s.settings.CellSize,
		}
		if c != avoid {
			return c
		}
	}
}

// teardown cancels the tick timer and drops the input subscription.
func (s *Session) teardown() {
	if s.handle != nil {
		s.handle.Cancel()
		s.handle = nil
	}
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// stop tears down a session that has not ended.
func (s *Session) stop() {
	if s.state != StateRunning {
		return
	}
	s.teardown()
	s.state = StateStopped
	s.logger.Debug("session stopped", "score", s.score)
}

func (s *Session) end(reason EndReason) {
	s.teardown()
	s.state = StateEnded
	s.reason = reason

	s.deps.Cues.Play(audio.CueSuccess)
	s.render()
	s.logger.Info("game over", "score", s.score, "length", len(s.snake), "reason", string(reason), "ticks", s.ticks)

	s.record()

	if s.deps.Prompt == nil {
		return
	}
	s.deps.Prompt.AskName(s.score, s.submit)
}

func (s *Session) record() {
	if s.deps.Recorder == nil || s.deps.Dispatcher == nil {
		return
	}
	res := s.Result()
	s.deps.Dispatcher.Go(
		func(ctx context.Context) error {
			return s.deps.Recorder.RecordGame(ctx, res)
		},
		func(err error) {
			if err != nil {
				s.logger.Warn("recording game failed", "error", err)
			}
		},
	)
}

// submit handles the name prompt's reply. A blank name skips the upload;
// any other name is stored as typed.
func (s *Session) submit(name string) {
	if strings.TrimSpace(name) == "" {
		s.logger.Debug("score not submitted: no name")
		return
	}
	if s.deps.Sink == nil || s.deps.Dispatcher == nil {
		s.logger.Debug("score not submitted: no leaderboard")
		return
	}

	score := s.score
	s.deps.Dispatcher.Go(
		func(ctx context.Context) error {
			return s.deps.Sink.SubmitScore(ctx, name, score)
		},
		func(err error) {
			if err != nil {
				s.logger.Error("score upload failed", "name", name, "score", score, "error", err)
				s.alert(MsgUploadError)
				return
			}
			s.logger.Info("score uploaded", "name", name, "score", score)
			s.alert(MsgUploaded)
			if s.deps.Board != nil {
				s.deps.Board.Refresh()
			}
		},
	)
}

func (s *Session) alert(msg string) {
	if s.deps.Alerter != nil {
		s.deps.Alerter.Alert(msg)
	}
}
