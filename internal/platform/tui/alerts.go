package tui

import "time"

const alertDuration = 3 * time.Second

// alertLine keeps the latest alert visible for a few seconds. It
// implements snake.Alerter.
type alertLine struct {
	now   func() time.Time
	msg   string
	until time.Time
}

func newAlertLine(now func() time.Time) *alertLine {
	return &alertLine{now: now}
}

// Alert replaces the current message.
func (a *alertLine) Alert(msg string) {
	a.msg = msg
	a.until = a.now().Add(alertDuration)
}

// Current returns the visible message, or "".
func (a *alertLine) Current() string {
	if a.msg == "" || !a.now().Before(a.until) {
		return ""
	}
	return a.msg
}
