package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-snake/internal/config"
	"github.com/vovakirdan/neon-snake/internal/theme"
)

// SetupSelection holds the user's choices from the setup menu.
type SetupSelection struct {
	Difficulty config.DifficultyPreset
	Theme      string
}

// menuKeys are the bindings shared by the setup menu screens.
type menuKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func defaultMenuKeys() menuKeys {
	return menuKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k", "w")),
		Down:   key.NewBinding(key.WithKeys("down", "j", "s")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Back:   key.NewBinding(key.WithKeys("esc", "b")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}

// SetupModel lets users choose the difficulty and the starting theme.
type SetupModel struct {
	presets       []config.DifficultyPreset
	themes        []theme.Theme
	cursor        int
	themeCursor   int
	inThemeSelect bool
	width         int
	height        int
	keys          menuKeys
	selection     SetupSelection
	choosing      bool
	quitting      bool
}

// NewSetupModel creates the setup menu. initial preselects the cursor.
func NewSetupModel(themes []theme.Theme, initial SetupSelection, width, height int) *SetupModel {
	if len(themes) == 0 {
		themes = theme.Presets()
	}
	m := &SetupModel{
		presets:   config.Presets(),
		themes:    themes,
		width:     width,
		height:    height,
		keys:      defaultMenuKeys(),
		selection: initial,
		choosing:  true,
	}
	for i, p := range m.presets {
		if p == initial.Difficulty {
			m.cursor = i
		}
	}
	for i, t := range themes {
		if t.Name == initial.Theme {
			m.themeCursor = i
		}
	}
	m.selection.Theme = themes[m.themeCursor].Name
	return m
}

// Init initializes the model.
func (m *SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m *SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.inThemeSelect {
			return m, m.handleThemeKey(msg)
		}
		return m, m.handleModeKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m *SetupModel) handleModeKey(msg tea.KeyMsg) tea.Cmd {
	// One row per preset plus the theme row.
	rows := len(m.presets) + 1

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < rows-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Select):
		if m.cursor == len(m.presets) {
			m.inThemeSelect = true
			return nil
		}
		m.choosing = false
		m.selection.Difficulty = m.presets[m.cursor]
		return tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.quitting = true
		return tea.Quit
	}
	return nil
}

func (m *SetupModel) handleThemeKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.themeCursor > 0 {
			m.themeCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.themeCursor < len(m.themes)-1 {
			m.themeCursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.selection.Theme = m.themes[m.themeCursor].Name
		m.inThemeSelect = false
	case key.Matches(msg, m.keys.Back):
		m.inThemeSelect = false
	}
	return nil
}

// View renders the menu.
func (m *SetupModel) View() string {
	if m.quitting || !m.choosing {
		return ""
	}
	if m.inThemeSelect {
		return m.viewThemeSelect()
	}
	return m.viewModeSelect()
}

func (m *SetupModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("N E O N   S N A K E", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range m.presets {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-8s", cursor, strings.ToUpper(string(p))), m.width))
		b.WriteString("\n")
	}

	cursor := "  "
	if m.cursor == len(m.presets) {
		cursor = "> "
	}
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("%sTheme: %s...", cursor, m.selection.Theme), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m *SetupModel) viewThemeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT THEME", m.width))
	b.WriteString("\n\n")

	for i, t := range m.themes {
		cursor := "  "
		if i == m.themeCursor {
			cursor = "> "
		}
		name := lipgloss.NewStyle().Foreground(lipgloss.Color(t.Primary)).Render(fmt.Sprintf("%-10s", t.Name))
		b.WriteString(centerText(cursor+name, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if the user left without choosing.
func (m *SetupModel) Selected() *SetupSelection {
	if m.choosing || m.quitting {
		return nil
	}
	sel := m.selection
	return &sel
}

// RunSetupMenu shows the setup menu. It returns nil when the user quits.
func RunSetupMenu(themes []theme.Theme, initial SetupSelection, width, height int) (*SetupSelection, error) {
	model := NewSetupModel(themes, initial, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return nil, err
	}
	return model.Selected(), nil
}
