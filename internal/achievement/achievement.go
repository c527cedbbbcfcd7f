// Package achievement unlocks one-shot titles and keeps their toasts
// visible for a short while.
package achievement

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-snake/internal/audio"
)

// Titles unlocked by the game.
const (
	SystemHacker  = "System Hacker"
	TimeTraveler  = "Time Traveler"
	GodMode       = "God Mode Activated"
	ToastDuration = 4 * time.Second
)

// Titles lists every title the game can unlock.
var Titles = []string{SystemHacker, TimeTraveler, GodMode}

// Toast is a visible unlock notification.
type Toast struct {
	Title   string
	Expires time.Time
}

// Tracker remembers unlocked titles for its lifetime.
type Tracker struct {
	cues     audio.Sink
	logger   *log.Logger
	unlocked map[string]time.Time
	toasts   []Toast
}

// NewTracker creates a tracker that plays the success cue on each unlock.
func NewTracker(cues audio.Sink, logger *log.Logger) *Tracker {
	if cues == nil {
		cues = audio.Nop{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Tracker{
		cues:     cues,
		logger:   logger,
		unlocked: make(map[string]time.Time),
	}
}

// Unlock records title at now. It returns false if the title was already
// unlocked, in which case nothing else happens.
func (t *Tracker) Unlock(title string, now time.Time) bool {
	if t.isUnlocked(title) {
		return false
	}
	t.unlocked[title] = now
	t.toasts = append(t.toasts, Toast{Title: title, Expires: now.Add(ToastDuration)})
	t.cues.Play(audio.CueSuccess)
	t.logger.Info("achievement unlocked", "title", title)
	return true
}

// isUnlocked reports whether title has been unlocked.
func (t *Tracker) isUnlocked(title string) bool {
	_, ok := t.unlocked[title]
	return ok
}

// Count returns the number of unlocked titles.
func (t *Tracker) Count() int {
	return len(t.unlocked)
}

// Toasts drops expired toasts and returns the ones still visible at now,
// oldest first.
func (t *Tracker) Toasts(now time.Time) []Toast {
	live := t.toasts[:0]
	for _, toast := range t.toasts {
		if now.Before(toast.Expires) {
			live = append(live, toast)
		}
	}
	t.toasts = live
	return append([]Toast(nil), live...)
}
