// Package snake implements the Snake game loop: a session advanced on a
// fixed cadence by an injected scheduler, rendered onto an injected surface
// and reporting its final score to a leaderboard sink.
//
// Everything here runs on a single event queue. Ticks, heading updates,
// prompt replies and dispatcher completions must all be delivered from
// that queue; no locking is done.
package snake

import (
	"context"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-snake/internal/audio"
	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/leaderboard"
	"github.com/vovakirdan/neon-snake/internal/sched"
	"github.com/vovakirdan/neon-snake/internal/theme"
)

// Surface is a 2D drawing target in pixel units.
type Surface interface {
	Size() (width, height int)
	Clear()
	FillRect(x, y, w, h int, c core.Color)
	StrokeRect(x, y, w, h int, c core.Color)
}

// CueSink plays feedback sounds. It must be safe to call when audio is
// unavailable.
type CueSink interface {
	Play(c audio.Cue)
}

// InputSource delivers heading requests until unsubscribed.
type InputSource interface {
	Subscribe(fn func(core.Heading)) (unsubscribe func())
}

// NamePrompt asks the player for a name. reply is invoked once, on the
// event queue; an empty name means the player declined.
type NamePrompt interface {
	AskName(score int, reply func(name string))
}

// Alerter shows a short user-visible message.
type Alerter interface {
	Alert(msg string)
}

// Refresher reloads a leaderboard view.
type Refresher interface {
	Refresh()
}

// Palette supplies the colours used when drawing a frame.
type Palette interface {
	Head() core.Color
	Body() core.Color
	Food() core.Color
}

// Recorder stores the outcome of finished sessions.
type Recorder interface {
	RecordGame(ctx context.Context, r Result) error
}

// Deps are the capabilities a Controller needs. Surface and Scheduler are
// required for a session to start; everything else is optional.
type Deps struct {
	Surface    Surface
	Scheduler  sched.Scheduler
	Dispatcher sched.Dispatcher
	Input      InputSource
	Prompt     NamePrompt
	Alerter    Alerter
	Cues       CueSink
	Sink       leaderboard.Sink
	Board      Refresher
	Palette    Palette
	Recorder   Recorder
	Rand       *rand.Rand
	Logger     *log.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Cues == nil {
		d.Cues = audio.Nop{}
	}
	if d.Palette == nil {
		d.Palette = fixedPalette{theme.Neon}
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if d.Logger == nil {
		d.Logger = log.Default()
	}
	return d
}

type fixedPalette struct {
	t theme.Theme
}

func (p fixedPalette) Head() core.Color { return p.t.Primary }
func (p fixedPalette) Body() core.Color { return p.t.Secondary }
func (p fixedPalette) Food() core.Color { return core.ColorFood }
