package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neon-snake/internal/achievement"
	"github.com/vovakirdan/neon-snake/internal/audio"
	"github.com/vovakirdan/neon-snake/internal/core"
	"github.com/vovakirdan/neon-snake/internal/input"
	"github.com/vovakirdan/neon-snake/internal/konami"
	"github.com/vovakirdan/neon-snake/internal/leaderboard"
	"github.com/vovakirdan/neon-snake/internal/snake"
	"github.com/vovakirdan/neon-snake/internal/theme"
)

const (
	// uiRefresh keeps toasts and alerts expiring while no game is running.
	uiRefresh = 250 * time.Millisecond
	boardGap  = 2
	// Lines around the field: title, status, notices, help.
	chromeLines = 4
)

// Options configures a game screen.
type Options struct {
	Settings   snake.Settings
	Sink       leaderboard.Sink
	Recorder   snake.Recorder
	BoardLimit int
	Themes     *theme.Selector
	Cues       audio.Sink
	Seed       int64
	// Player pre-fills the name prompt.
	Player   string
	Renderer *lipgloss.Renderer
	Logger   *log.Logger
	Now      func() time.Time
}

type muter interface {
	SetMuted(muted bool)
	Muted() bool
}

// muteGate adds muting to cue sinks that lack it.
type muteGate struct {
	sink  audio.Sink
	muted bool
}

func (g *muteGate) Play(c audio.Cue) {
	if !g.muted {
		g.sink.Play(c)
	}
}

func (g *muteGate) SetMuted(muted bool) { g.muted = muted }

func (g *muteGate) Muted() bool { return g.muted }

// Model is the Bubble Tea model for the game screen: play field,
// leaderboard panel, status line and the name prompt.
type Model struct {
	opts    Options
	logger  *log.Logger
	now     func() time.Time
	loop    *eventLoop
	bus     *input.Bus
	ctrl    *snake.Controller
	board   *leaderboard.Board
	themes  *theme.Selector
	cues    audio.Sink
	mute    muter
	tracker *achievement.Tracker
	konami  konami.Detector
	godMode bool
	prompt  *namePrompt
	alerts  *alertLine
	screen  *core.Screen
	canvas  *core.Canvas
	painter *Painter
	keys    KeyMap
	help    help.Model

	width    int
	height   int
	quitting bool
}

// NewModel creates the game screen. Zero options fall back to the default
// field, the preset themes, silent cues and the default logger.
func NewModel(opts Options) *Model {
	if opts.Settings.Cols == 0 {
		opts.Settings = snake.DefaultSettings()
	}
	if opts.Themes == nil {
		opts.Themes = theme.NewSelector(nil, "")
	}
	if opts.Cues == nil {
		opts.Cues = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	st := opts.Settings
	w, h := st.Extent()
	screen := core.NewScreen(st.Cols*core.GlyphWidth, st.Rows)

	m := &Model{
		opts:    opts,
		logger:  opts.Logger,
		now:     opts.Now,
		loop:    newEventLoop(),
		bus:     input.NewBus(),
		themes:  opts.Themes,
		screen:  screen,
		canvas:  core.NewCanvas(screen, 0, 0, w, h, st.CellSize),
		painter: NewPainter(opts.Renderer),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		prompt:  newNamePrompt(opts.Player),
		alerts:  newAlertLine(opts.Now),
	}

	if mu, ok := opts.Cues.(muter); ok {
		m.cues, m.mute = opts.Cues, mu
	} else {
		g := &muteGate{sink: opts.Cues}
		m.cues, m.mute = g, g
	}

	m.board = leaderboard.NewBoard(opts.Sink, m.loop, opts.BoardLimit, m.logger)
	m.tracker = achievement.NewTracker(m.cues, m.logger)
	m.ctrl = snake.NewController(st, snake.Deps{
		Surface:    m.canvas,
		Scheduler:  m.loop,
		Dispatcher: m.loop,
		Input:      m.bus,
		Prompt:     m.prompt,
		Alerter:    m.alerts,
		Cues:       m.cues,
		Sink:       opts.Sink,
		Board:      m.board,
		Palette:    m.themes,
		Recorder:   opts.Recorder,
		Rand:       rand.New(rand.NewSource(opts.Seed)),
		Logger:     m.logger,
	})

	m.drawSplash()
	return m
}

// drawSplash fills the idle field and prints the start hint.
func (m *Model) drawSplash() {
	w, h := m.canvas.Size()
	m.canvas.Clear()
	m.canvas.FillRect(0, 0, w, h, core.ColorBackground)

	lines := []string{"NEON SNAKE", "", "PRESS ENTER"}
	top := (m.screen.Height() - len(lines)) / 2
	for i, line := range lines {
		x := (m.screen.Width() - len(line)) / 2
		for j, r := range line {
			m.screen.SetGlyph(x+j, top+i, core.Glyph{Rune: r, Fg: m.themes.Head(), Bg: core.ColorBackground})
		}
	}
}

// Init loads the leaderboard and starts the UI refresh timer.
func (m *Model) Init() tea.Cmd {
	m.board.Refresh()
	m.loop.Every(uiRefresh, func() {})
	return batch(m.loop.drain(), tea.SetWindowTitle("neon-snake"))
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		cmd = m.handleKey(msg)

	default:
		if !m.loop.handle(msg) && m.prompt.Active() {
			// Cursor blink and friends.
			cmd, _ = m.prompt.Update(msg)
		}
	}

	if m.prompt.takeOpened() {
		cmd = batch(cmd, textinput.Blink)
	}
	return m, batch(cmd, m.loop.drain())
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return m.quit()
	}

	if m.prompt.Active() {
		cmd, typed := m.prompt.Update(msg)
		if typed {
			m.cues.Play(audio.CueType)
		}
		return cmd
	}

	if m.konami.Feed(msg.String()) {
		m.godMode = true
		if !m.tracker.Unlock(achievement.GodMode, m.now()) {
			m.cues.Play(audio.CueSuccess)
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Start):
		m.start()

	case key.Matches(msg, m.keys.Theme):
		t := m.themes.Next()
		m.cues.Play(audio.CueClick)
		m.tracker.Unlock(achievement.SystemHacker, m.now())
		m.redraw()
		m.logger.Debug("theme changed", "theme", t.Name)

	case key.Matches(msg, m.keys.Retro):
		on := m.themes.ToggleRetro()
		m.cues.Play(audio.CueClick)
		m.tracker.Unlock(achievement.TimeTraveler, m.now())
		m.redraw()
		m.logger.Debug("retro mode", "on", on)

	case key.Matches(msg, m.keys.Mute):
		m.mute.SetMuted(!m.mute.Muted())

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	default:
		if h := m.keys.Heading(msg); h != core.HeadingNone {
			m.bus.Publish(h)
		}
	}
	return nil
}

func (m *Model) start() {
	if m.tooSmall() {
		fw, fh := m.minSize()
		m.alerts.Alert(fmt.Sprintf("Window too small: need %dx%d.", fw, fh))
		return
	}
	m.ctrl.Start()
}

func (m *Model) redraw() {
	if !m.ctrl.Redraw() {
		m.drawSplash()
	}
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.Close()
	return tea.Quit
}

// Close stops the active game and cancels in-flight work.
func (m *Model) Close() {
	m.ctrl.Stop()
	m.loop.close()
}

// MinSize returns the smallest terminal, in columns and lines, that fits a
// field of st with its border and chrome.
func MinSize(st snake.Settings) (width, height int) {
	return st.Cols*core.GlyphWidth + 2, st.Rows + 2 + chromeLines
}

func (m *Model) minSize() (int, int) {
	return MinSize(m.opts.Settings)
}

// tooSmall reports whether the last known window cannot fit the field.
// Before the first size message the window is assumed to fit.
func (m *Model) tooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false
	}
	fw, fh := m.minSize()
	return m.width < fw || m.height < fh
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.tooSmall() {
		fw, fh := m.minSize()
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d.\nResize or press q to quit.", fw, fh, m.width, m.height)
	}

	accent := m.themes.Head()
	border := accent
	if m.godMode {
		border = core.ColorGold
	}

	title := m.painter.Style().Bold(true).Foreground(lipgloss.Color(accent)).Render("N E O N   S N A K E")

	field := m.painter.Style().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Render(m.painter.RenderScreen(m.screen))

	left := field
	if m.prompt.Active() {
		left = lipgloss.JoinVertical(lipgloss.Left, field, m.prompt.View(m.painter, accent))
	}

	board := renderBoard(m.painter, m.board, accent)

	var body string
	if m.width == 0 || m.width >= lipgloss.Width(left)+boardGap+lipgloss.Width(board) {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", boardGap), board)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, left, board)
	}

	return strings.Join([]string{
		title,
		body,
		m.statusLine(),
		m.noticeLine(accent),
		m.help.View(m.keys),
	}, "\n")
}

func (m *Model) statusLine() string {
	parts := []string{}

	s := m.ctrl.Session()
	if s != nil {
		parts = append(parts, fmt.Sprintf("SCORE %d", s.Score()), fmt.Sprintf("LENGTH %d", s.Len()))
	}
	parts = append(parts, "THEME "+strings.ToUpper(m.themes.Current().Name))
	if m.themes.Retro() {
		parts = append(parts, "RETRO")
	}
	if m.mute.Muted() {
		parts = append(parts, "MUTED")
	}
	if m.godMode {
		parts = append(parts, "GOD MODE")
	}
	if n := m.tracker.Count(); n > 0 {
		parts = append(parts, fmt.Sprintf("ACHIEVEMENTS %d/%d", n, len(achievement.Titles)))
	}

	switch m.ctrl.State() {
	case snake.StateIdle, snake.StateStopped:
		parts = append(parts, "press enter to start")
	case snake.StateEnded:
		if !m.prompt.Active() {
			parts = append(parts, "GAME OVER - enter to play again")
		}
	}

	return m.painter.Style().Foreground(lipgloss.Color("245")).Render(strings.Join(parts, "  "))
}

func (m *Model) noticeLine(accent core.Color) string {
	var parts []string
	if msg := m.alerts.Current(); msg != "" {
		parts = append(parts, m.painter.Style().Bold(true).Foreground(lipgloss.Color(accent)).Render(msg))
	}
	for _, t := range m.tracker.Toasts(m.now()) {
		parts = append(parts, m.painter.Style().Foreground(lipgloss.Color(core.ColorGold)).
			Render("🏆 ACHIEVEMENT UNLOCKED: "+t.Title))
	}
	return strings.Join(parts, "  ")
}

// Run starts the Bubble Tea program with a fresh game screen.
func Run(opts Options) error {
	m := NewModel(opts)

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	m.Close()
	return err
}
