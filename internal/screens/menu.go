package screens

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/starcatch/internal/core"
)

// Menu transition times; popups come and go faster.
const (
	menuTransition  = 500 * time.Millisecond
	popupTransition = 200 * time.Millisecond
)

// MenuEntry is one selectable line of a menu.
type MenuEntry struct {
	Text     string
	Selected func(m *Manager)
}

// MenuScreen is a titled list of entries with optional body text.
// The same type backs the main menu, the popups and the info screens.
type MenuScreen struct {
	Base
	kind     Kind
	title    string
	entries  []MenuEntry
	body     []string
	cursor   int
	onCancel func(m *Manager)
}

func newMenu(kind Kind, title string, popup bool) *MenuScreen {
	t := menuTransition
	if popup {
		t = popupTransition
	}
	return &MenuScreen{
		Base:     newBase(t, t, popup),
		kind:     kind,
		title:    title,
		onCancel: func(*Manager) {},
	}
}

func (s *MenuScreen) add(text string, selected func(m *Manager)) {
	s.entries = append(s.entries, MenuEntry{Text: text, Selected: selected})
}

func exitScreen(s *MenuScreen) func(*Manager) {
	return func(*Manager) { s.Exit() }
}

// NewMainMenu builds the title menu. High Scores only shows when the
// manager has a score table.
func NewMainMenu(m *Manager) *MenuScreen {
	s := newMenu(KindMenu, "S T A R C A T C H", false)
	s.add("Play", func(m *Manager) { m.Replace(KindGameplay) })
	s.add("Controls", func(m *Manager) { m.Push(KindControls) })
	if m.Options().Scores != nil {
		s.add("High Scores", func(m *Manager) { m.Push(KindScores) })
	}
	s.add("Exit", func(m *Manager) { m.Quit() })
	s.onCancel = func(m *Manager) { m.Quit() }
	return s
}

// NewPauseMenu builds the popup shown over a paused session.
func NewPauseMenu() *MenuScreen {
	s := newMenu(KindPause, "Paused", true)
	s.add("Resume", exitScreen(s))
	s.add("Quit to menu", func(m *Manager) { m.Replace(KindMenu) })
	s.onCancel = exitScreen(s)
	return s
}

// NewWinMenu builds the popup shown once every star is collected.
func NewWinMenu() *MenuScreen {
	s := newMenu(KindWin, "You caught them all!", true)
	s.add("Play again", func(m *Manager) { m.Replace(KindGameplay) })
	s.add("Main menu", func(m *Manager) { m.Replace(KindMenu) })
	s.onCancel = func(m *Manager) { m.Replace(KindMenu) }
	return s
}

// NewControls builds the key reference screen.
func NewControls() *MenuScreen {
	s := newMenu(KindControls, "Controls", false)
	s.body = []string{
		"left / right    turn",
		"up / down       thrust / brake",
		"a / d           pad stick",
		"] / [           pad triggers",
		"g               plug / unplug pad",
		"p / esc         pause",
		"q / ctrl+c      quit",
	}
	s.add("Back", exitScreen(s))
	s.onCancel = exitScreen(s)
	return s
}

// maxScoreRows is how many results the high-score screen lists.
const maxScoreRows = 10

// NewScores builds the high-score screen from table. A table with a
// Heading method names the screen.
func NewScores(table ScoreTable) *MenuScreen {
	title := "High Scores"
	if h, ok := table.(interface{ Heading() string }); ok {
		title = h.Heading()
	}
	s := newMenu(KindScores, title, false)
	s.body = scoreLines(table)
	s.add("Back", exitScreen(s))
	s.onCancel = exitScreen(s)
	return s
}

func scoreLines(table ScoreTable) []string {
	if table == nil {
		return []string{"No score database."}
	}
	rows, err := table.TopResults(maxScoreRows)
	if err != nil {
		return []string{"Could not load scores."}
	}
	if len(rows) == 0 {
		return []string{"No scores recorded yet."}
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		mark := " "
		if r.Won {
			mark = "*"
		}
		lines[i] = fmt.Sprintf("#%-2d %4d %s  %s", i+1, r.Score, mark, r.When.Format("Jan 02 15:04"))
	}
	return lines
}

// Kind returns the menu's variant.
func (s *MenuScreen) Kind() Kind { return s.kind }

// Title returns the menu title.
func (s *MenuScreen) Title() string { return s.title }

// Entries returns the menu entry labels.
func (s *MenuScreen) Entries() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Text
	}
	return out
}

// Cursor returns the selected entry index.
func (s *MenuScreen) Cursor() int { return s.cursor }

// Update advances the transition.
func (s *MenuScreen) Update(_ *Manager, dt time.Duration, ctx Context) {
	s.Transition(dt, ctx.OtherHasFocus, ctx.Covered)
}

// HandleInput moves the cursor and runs entries.
func (s *MenuScreen) HandleInput(m *Manager, in Input) {
	n := len(s.entries)
	switch {
	case in.Pressed.Has(core.ActionUp):
		s.cursor = (s.cursor - 1 + n) % n
	case in.Pressed.Has(core.ActionDown):
		s.cursor = (s.cursor + 1) % n
	case in.Pressed.Has(core.ActionConfirm):
		s.entries[s.cursor].Selected(m)
	case in.Pressed.Has(core.ActionBack), s.kind == KindPause && in.Pressed.Has(core.ActionPause):
		s.onCancel(m)
	}
}

// BackdropFade darkens the screens below a popup.
func (s *MenuScreen) BackdropFade() float64 {
	if !s.IsPopup {
		return 0
	}
	return s.TransitionAlpha() * 2 / 3
}

// Draw lays the menu out centered, sliding in from above as it transitions.
func (s *MenuScreen) Draw(layer *core.Screen, stackFade float64) {
	alpha := s.TransitionAlpha()
	slide := int(math.Pow(1-alpha, 2) * 4)

	height := 2 + len(s.entries)
	if len(s.body) > 0 {
		height += len(s.body) + 1
	}
	top := (layer.Height()-height)/2 - slide

	if s.IsPopup {
		width := len([]rune(s.title))
		for _, e := range s.entries {
			width = core.Max(width, len([]rune(e.Text))+4)
		}
		width += 6
		box := core.NewRect((layer.Width()-width)/2, top-1, width, height+2)
		layer.DrawBox(box, core.Shade(core.ColorBlue, alpha))
	}

	layer.DrawTextCentered(top, s.title, core.Shade(core.ColorBrightWhite, alpha))
	row := top + 2

	for _, line := range s.body {
		layer.DrawTextCentered(row, line, core.Shade(core.ColorCyan, alpha))
		row++
	}
	if len(s.body) > 0 {
		row++
	}

	for i, e := range s.entries {
		text, color := "  "+e.Text+"  ", core.ColorWhite
		if i == s.cursor {
			text, color = "> "+e.Text+" <", core.ColorYellow
		}
		layer.DrawTextCentered(row, text, core.Shade(color, alpha))
		row++
	}

	layer.FadeToBlack(stackFade)
}
