package screens

import (
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/games/starcatch"
)

// Factory builds a screen of one kind.
type Factory func(m *Manager) Screen

// Options configures a Manager.
type Options struct {
	Game      config.StarcatchConfig
	Caps      starcatch.Capabilities
	Seed      int64
	InputMode string             // Recorded with each result
	Actuator  starcatch.Actuator // Receives haptic feedback, may be nil
	Sink      ResultSink         // May be nil
	Scores    ScoreTable         // Enables the high-score screen, may be nil
	Logger    *log.Logger        // Defaults to a discarding logger
}

// Manager owns the screen stack.
type Manager struct {
	opts      Options
	logger    *log.Logger
	screens   []Screen
	factories map[Kind]Factory
	layer     *core.Screen
	blurred   bool
	plays     int64
	done      bool
}

// NewManager creates an empty stack with the default factories registered.
func NewManager(opts Options) *Manager {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Manager{
		opts:      opts,
		logger:    logger,
		factories: make(map[Kind]Factory),
		layer:     core.NewScreen(0, 0),
	}
	m.Register(KindMenu, func(m *Manager) Screen { return NewMainMenu(m) })
	m.Register(KindGameplay, func(m *Manager) Screen { return NewGameplay(m) })
	m.Register(KindPause, func(m *Manager) Screen { return NewPauseMenu() })
	m.Register(KindWin, func(m *Manager) Screen { return NewWinMenu() })
	m.Register(KindControls, func(m *Manager) Screen { return NewControls() })
	m.Register(KindScores, func(m *Manager) Screen { return NewScores(m.opts.Scores) })
	return m
}

// Register sets the factory used to build screens of kind.
func (m *Manager) Register(kind Kind, f Factory) {
	m.factories[kind] = f
}

// Push builds a screen of kind and adds it on top.
func (m *Manager) Push(kind Kind) Screen {
	f, ok := m.factories[kind]
	if !ok {
		m.logger.Error("no factory for screen", "kind", kind)
		return nil
	}
	s := f(m)
	m.AddScreen(s)
	return s
}

// AddScreen puts s on top of the stack.
func (m *Manager) AddScreen(s Screen) {
	m.screens = append(m.screens, s)
	m.logger.Debug("screen added", "kind", s.Kind(), "depth", len(m.screens))
}

// RemoveScreen drops s at once, without an off transition.
func (m *Manager) RemoveScreen(s Screen) {
	i := slices.Index(m.screens, s)
	if i < 0 {
		return
	}
	m.screens = slices.Delete(m.screens, i, i+1)
	if u, ok := s.(interface{ Unload() }); ok {
		u.Unload()
	}
	m.logger.Debug("screen removed", "kind", s.Kind(), "depth", len(m.screens))
}

// Replace exits every screen and pushes kinds in order.
func (m *Manager) Replace(kinds ...Kind) {
	for _, s := range m.screens {
		s.base().Exit()
	}
	for _, k := range kinds {
		m.Push(k)
	}
}

// SetWindowFocus tells the stack whether the terminal window has focus.
// Without focus no screen receives input.
func (m *Manager) SetWindowFocus(focused bool) {
	m.blurred = !focused
}

// Quit marks the stack as finished; the driver should stop.
func (m *Manager) Quit() {
	m.done = true
}

// Close removes every screen, topmost first, so sessions report results.
func (m *Manager) Close() {
	for len(m.screens) > 0 {
		m.RemoveScreen(m.screens[len(m.screens)-1])
	}
	m.done = true
}

// Done reports whether Quit was called or the stack ran empty.
func (m *Manager) Done() bool {
	return m.done || len(m.screens) == 0
}

// Screens returns a copy of the stack, bottom first.
func (m *Manager) Screens() []Screen {
	return slices.Clone(m.screens)
}

// Top returns the topmost screen or nil.
func (m *Manager) Top() Screen {
	if len(m.screens) == 0 {
		return nil
	}
	return m.screens[len(m.screens)-1]
}

// Options returns the options the manager was built with.
func (m *Manager) Options() Options {
	return m.opts
}

// Logger returns the manager's logger.
func (m *Manager) Logger() *log.Logger {
	return m.logger
}

// nextSeed hands each new gameplay session its own seed.
func (m *Manager) nextSeed() int64 {
	m.plays++
	return m.opts.Seed + m.plays - 1
}

// Update runs one tick over the stack, topmost screen first. The first
// visible screen from the top takes input; everything below it is told
// another screen has focus, and whether it is covered.
func (m *Manager) Update(dt time.Duration, in Input) {
	stack := slices.Clone(m.screens)

	otherHasFocus := m.blurred
	covered := false
	overlaid := false

	for i := len(stack) - 1; i >= 0; i-- {
		s := stack[i]
		ctx := Context{
			OtherHasFocus: otherHasFocus,
			Covered:       covered,
			Overlaid:      overlaid,
			Input:         in,
		}
		s.Update(m, dt, ctx)

		b := s.base()
		if b.finished() {
			m.RemoveScreen(s)
			continue
		}
		if b.visible() {
			if !otherHasFocus {
				s.HandleInput(m, in)
				otherHasFocus = true
			}
			overlaid = true
			if !b.IsPopup {
				covered = true
			}
		}
	}
}

// Draw renders the stack bottom-up into scr. Each screen draws into its
// own layer so a backdrop fade only darkens the screens below it.
func (m *Manager) Draw(scr *core.Screen) {
	scr.Clear()
	m.layer.Resize(scr.Width(), scr.Height())

	for i, s := range m.screens {
		if s.base().State() == StateHidden {
			continue
		}
		m.layer.Clear()
		s.Draw(m.layer, m.fadeAbove(i))
		scr.Overlay(m.layer)
	}
}

// fadeAbove is the combined backdrop fade of visible screens above index i.
func (m *Manager) fadeAbove(i int) float64 {
	fade := 0.0
	for _, s := range m.screens[i+1:] {
		if s.base().State() == StateHidden {
			continue
		}
		if bd, ok := s.(Backdrop); ok {
			fade = starcatch.Composite(fade, bd.BackdropFade())
		}
	}
	return fade
}
