package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-snake/internal/core"
)

const nameLimit = 20

// namePrompt is the modal asking for a leaderboard name after game over.
// It implements snake.NamePrompt.
type namePrompt struct {
	input  textinput.Model
	active bool
	score  int
	reply  func(string)
	// opened is set by AskName so the model can start the cursor blink.
	opened bool
}

func newNamePrompt(defaultName string) *namePrompt {
	ti := textinput.New()
	ti.Placeholder = "your name"
	ti.CharLimit = nameLimit
	ti.Width = nameLimit
	ti.SetValue(defaultName)
	return &namePrompt{input: ti}
}

// AskName opens the modal. A prompt that is already open is answered
// with an empty name first.
func (p *namePrompt) AskName(score int, reply func(name string)) {
	if p.active {
		p.answer("")
	}
	p.active = true
	p.opened = true
	p.score = score
	p.reply = reply
	p.input.CursorEnd()
	p.input.Focus()
}

func (p *namePrompt) answer(name string) {
	reply := p.reply
	p.active = false
	p.reply = nil
	p.input.Blur()
	if reply != nil {
		reply(name)
	}
}

// Update handles a message while the prompt is open. typed reports
// whether a key edited the text.
func (p *namePrompt) Update(msg tea.Msg) (cmd tea.Cmd, typed bool) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.Type {
		case tea.KeyEnter:
			p.answer(p.input.Value())
			return nil, false
		case tea.KeyEsc:
			p.answer("")
			return nil, false
		}
	}

	before := p.input.Value()
	p.input, cmd = p.input.Update(msg)
	return cmd, p.input.Value() != before
}

// takeOpened reports and clears the opened flag.
func (p *namePrompt) takeOpened() bool {
	o := p.opened
	p.opened = false
	return o
}

// Active reports whether the modal is open.
func (p *namePrompt) Active() bool {
	return p.active
}

func (p *namePrompt) View(pt *Painter, accent core.Color) string {
	if !p.active {
		return ""
	}
	head := pt.Style().Bold(true).Foreground(lipgloss.Color(accent)).
		Render(fmt.Sprintf("GAME OVER! Score: %d", p.score))
	body := "Enter your name for the Global Leaderboard:\n\n" + p.input.View() +
		"\n\n" + pt.Style().Foreground(lipgloss.Color("241")).Render("enter submit • esc skip")

	return pt.Style().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(accent)).
		Padding(0, 2).
		Render(head + "\n\n" + body)
}
