package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/leaderboard"
)

const (
	boardWidth   = 30
	boardNameLen = 16
)

// Board messages shown instead of entries.
const (
	boardOffline = "Leaderboard offline."
	boardLoading = "Loading..."
	boardFailed  = "Failed to load scores."
	boardEmpty   = "No scores yet. Be the first!"
)

// rankColor returns the podium colour for 1-based rank, or "".
func rankColor(rank int) core.Color {
	switch rank {
	case 1:
		return core.ColorGold
	case 2:
		return core.ColorSilver
	case 3:
		return core.ColorBronze
	}
	return core.ColorDefault
}

// boardLines renders the leaderboard body as plain lines paired with
// their colour.
func boardLines(b *leaderboard.Board) ([]string, []core.Color) {
	switch {
	case !b.Available():
		return []string{boardOffline}, []core.Color{core.ColorDefault}
	case b.Err() != nil:
		return []string{boardFailed}, []core.Color{core.ColorFood}
	case b.Loading() && !b.Loaded():
		return []string{boardLoading}, []core.Color{core.ColorDefault}
	case len(b.Entries()) == 0:
		return []string{boardEmpty}, []core.Color{core.ColorDefault}
	}

	entries := b.Entries()
	lines := make([]string, len(entries))
	colors := make([]core.Color, len(entries))
	for i, e := range entries {
		lines[i] = formatEntry(i+1, e)
		colors[i] = rankColor(i + 1)
	}
	return lines, colors
}

func formatEntry(rank int, e leaderboard.Entry) string {
	name := e.Name
	if r := []rune(name); len(r) > boardNameLen {
		name = string(r[:boardNameLen-1]) + "."
	}
	return fmt.Sprintf("#%-2d %-*s %6d", rank, boardNameLen, name, e.Score)
}

// renderBoard draws the leaderboard panel.
func renderBoard(p *Painter, b *leaderboard.Board, accent core.Color) string {
	title := p.Style().Bold(true).Foreground(lipgloss.Color(accent)).Render("GLOBAL LEADERBOARD")

	lines, colors := boardLines(b)
	var body strings.Builder
	for i, line := range lines {
		if i > 0 {
			body.WriteByte('\n')
		}
		st := p.Style()
		if colors[i] != core.ColorDefault {
			st = st.Foreground(lipgloss.Color(colors[i]))
		}
		if i < 3 && colors[i] != core.ColorDefault && colors[i] != core.ColorFood {
			st = st.Bold(true)
		}
		body.WriteString(st.Render(line))
	}

	return p.Style().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(boardWidth).
		Padding(0, 1).
		Render(title + "\n\n" + body.String())
}
