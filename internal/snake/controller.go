package snake

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-snake/internal/audio"
	"github.com/vovakirdan/neon-snake/internal/core"
)

// Controller owns at most one active session.
type Controller struct {
	settings Settings
	deps     Deps
	logger   *log.Logger
	current  *Session
}

// NewController creates an idle controller.
func NewController(settings Settings, deps Deps) *Controller {
	deps = deps.withDefaults()
	return &Controller{
		settings: settings,
		deps:     deps,
		logger:   deps.Logger,
	}
}

// Start begins a fresh session, tearing down the previous one first.
// Without a surface or a scheduler nothing happens and Start returns nil.
func (c *Controller) Start() *Session {
	if c.deps.Surface == nil {
		c.logger.Warn("cannot start game: no render surface")
		return nil
	}
	if c.deps.Scheduler == nil {
		c.logger.Warn("cannot start game: no scheduler")
		return nil
	}

	c.deps.Cues.Play(audio.CueClick)

	if c.current != nil {
		c.current.stop()
	}

	s := newSession(c.settings, c.deps)
	c.current = s

	if c.deps.Input != nil {
		s.unsubscribe = c.deps.Input.Subscribe(func(h core.Heading) {
			s.SetHeading(h)
		})
	}
	s.render()
	s.handle = c.deps.Scheduler.Every(c.settings.Period, s.Tick)

	s.logger.Info("game started", "period", c.settings.Period)
	return s
}

// Stop tears down the active session without ending it.
func (c *Controller) Stop() {
	if c.current != nil {
		c.current.stop()
	}
}

// Session returns the most recent session, or nil before the first start.
func (c *Controller) Session() *Session {
	return c.current
}

// State returns the most recent session's state, or StateIdle.
func (c *Controller) State() State {
	if c.current == nil {
		return StateIdle
	}
	return c.current.State()
}

// Settings returns the field settings.
func (c *Controller) Settings() Settings {
	return c.settings
}

// Redraw renders the most recent session's current frame again, e.g.
// after a palette change. It reports whether there was anything to draw.
func (c *Controller) Redraw() bool {
	if c.current == nil {
		return false
	}
	c.current.render()
	return true
}
