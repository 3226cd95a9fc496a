package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/screens"
	"github.com/vovakirdan/starcatch/internal/storage"
)

// Options configures a play session.
type Options struct {
	Game    config.StarcatchConfig
	Runtime core.RuntimeConfig
	Input   InputMode
	Hold    time.Duration  // Key hold window, zero for the default
	Store   *storage.Store // Persists results, may be nil
	Mode    string         // Difficulty preset recorded with results
	Player  string         // Recorded with results, empty for local play
	ShowFPS bool
	Logger  *log.Logger
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model hosting the screen stack.
type Model struct {
	manager  *screens.Manager
	source   *Source
	rumble   *Rumble
	fps      *FrameRateMonitor
	keys     KeyMap
	help     help.Model
	screen   *core.Screen
	config   core.RuntimeConfig
	input    InputMode
	logger   *log.Logger
	showFPS  bool
	lastTick time.Time
	quitting bool
}

// NewModel builds the stack with the main menu on top.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	input := opts.Input
	if input == "" {
		input = InputKeyboard
	}

	rumble := NewRumble(logger)
	mopts := screens.Options{
		Game:      opts.Game,
		Caps:      input.Capabilities(),
		Seed:      cfg.Seed,
		InputMode: string(input),
		Actuator:  rumble,
		Logger:    logger,
	}
	if opts.Store != nil {
		results := NewStoreResults(opts.Store, opts.Mode, opts.Player)
		mopts.Sink = results
		mopts.Scores = results
	}
	manager := screens.NewManager(mopts)
	manager.Push(screens.KindMenu)

	m := Model{
		manager: manager,
		source:  NewSource(input, opts.Hold),
		rumble:  rumble,
		fps:     NewFrameRateMonitor(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		screen:  core.NewScreen(0, 0),
		config:  cfg,
		input:   input,
		logger:  logger,
		showFPS: opts.ShowFPS,
	}
	m.resize()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("starcatch"), tickCmd(m.config.TickDuration()))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case tea.FocusMsg:
		m.manager.SetWindowFocus(true)
		return m, nil

	case tea.BlurMsg:
		m.manager.SetWindowFocus(false)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.manager.Close()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	}

	for _, a := range m.keys.Actions(msg) {
		m.source.Press(a)
	}
	return m, nil
}

// handleTick runs one fixed-step tick of the stack.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.manager.Update(m.config.TickDuration(), m.source.Next())

	if m.manager.Done() {
		m.manager.Close()
		m.quitting = true
		return m, tea.Quit
	}

	cmds := []tea.Cmd{tickCmd(m.config.TickDuration())}
	if !m.lastTick.IsZero() && m.fps.Frame(now.Sub(m.lastTick)) && m.showFPS {
		cmds = append(cmds, tea.SetWindowTitle(m.fps.Details()))
	}
	m.lastTick = now

	return m, tea.Batch(cmds...)
}

// hudRows is the number of lines below the playfield.
func (m Model) hudRows() int {
	if m.help.ShowAll {
		return 4
	}
	return 2
}

// resize fits the grid to the terminal, leaving room for the HUD.
func (m *Model) resize() {
	h := m.config.ScreenH - m.hudRows()
	if h < 0 {
		h = 0
	}
	m.screen.Resize(m.config.ScreenW, h)
}

// statusLine summarizes input, pad and rumble state.
func (m Model) statusLine() string {
	parts := []string{"input: " + string(m.input)}
	if m.input != InputKeyboard {
		pad := "unplugged"
		if m.source.PadConnected() {
			pad = "plugged"
		}
		parts = append(parts, "pad: "+pad)
	}
	for _, s := range m.manager.Screens() {
		if g, ok := s.(*screens.Gameplay); ok {
			parts = append(parts, "session: "+g.LastFrame().State.String())
		}
	}
	parts = append(parts, "rumble "+m.rumble.Meter())
	if m.showFPS && m.fps.Details() != "" {
		parts = append(parts, m.fps.Details())
	}
	return strings.Join(parts, "  |  ")
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.manager.Draw(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".starcatch", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("starcatch_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.manager.Draw(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.statusLine()))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Run starts the Bubble Tea program with a model built from opts.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
