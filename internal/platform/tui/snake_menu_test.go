package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/theme"
)

func keyDown() tea.KeyMsg  { return tea.KeyMsg{Type: tea.KeyDown} }
func keyEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }

func TestSetupMenuPicksDifficulty(t *testing.T) {
	m := NewSetupModel(nil, SetupSelection{Difficulty: config.DifficultyNormal}, 80, 24)

	m.Update(keyDown())
	_, cmd := m.Update(keyEnter())

	sel := m.Selected()
	if sel == nil {
		t.Fatal("expected a selection")
	}
	if sel.Difficulty != config.DifficultyHard {
		t.Errorf("difficulty = %q, expected hard", sel.Difficulty)
	}
	if sel.Theme != theme.Neon.Name {
		t.Errorf("theme = %q, expected neon", sel.Theme)
	}
	if cmd == nil {
		t.Fatal("selecting should quit the menu")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected quit message")
	}
}

func TestSetupMenuPicksTheme(t *testing.T) {
	m := NewSetupModel(theme.Presets(), SetupSelection{Difficulty: config.DifficultyEasy}, 80, 24)

	// Move to the theme row below the presets.
	for range config.Presets() {
		m.Update(keyDown())
	}
	m.Update(keyEnter())
	if !m.inThemeSelect {
		t.Fatal("theme row should open the theme list")
	}

	m.Update(keyDown())
	m.Update(keyEnter())
	if m.inThemeSelect {
		t.Fatal("choosing a theme should return to the difficulty list")
	}
	if m.Selected() != nil {
		t.Fatal("theme choice alone must not finish the menu")
	}

	m.cursor = 0
	m.Update(keyEnter())
	sel := m.Selected()
	if sel == nil || sel.Theme != "toxic" || sel.Difficulty != config.DifficultyEasy {
		t.Errorf("selection = %+v", sel)
	}
}

func TestSetupMenuQuit(t *testing.T) {
	m := NewSetupModel(nil, SetupSelection{}, 80, 24)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if m.Selected() != nil {
		t.Error("quitting should yield no selection")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
}
