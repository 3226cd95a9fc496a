package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/screens"
)

func newTestModel() Model {
	return NewModel(Options{
		Game:    config.DefaultStarcatchConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
	})
}

func TestModelStartsOnMenu(t *testing.T) {
	m := newTestModel()
	top := m.manager.Top()
	if top == nil || top.Kind() != screens.KindMenu {
		t.Fatalf("top screen = %v, want the main menu", top)
	}
	if m.screen.Width() != 80 || m.screen.Height() != 22 {
		t.Errorf("grid = %dx%d, want 80x22", m.screen.Width(), m.screen.Height())
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel()
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	if m.screen.Width() != 100 || m.screen.Height() != 28 {
		t.Errorf("grid = %dx%d, want 100x28", m.screen.Width(), m.screen.Height())
	}

	next, _ = m.Update(runeKey('?'))
	m = next.(Model)
	if m.screen.Height() != 26 {
		t.Errorf("grid height with full help = %d, want 26", m.screen.Height())
	}
}

func TestModelTickKeepsRunning(t *testing.T) {
	m := newTestModel()
	next, cmd := m.Update(TickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("tick returned no follow-up command")
	}
	if v := next.(Model).View(); !strings.Contains(v, "input: keyboard") {
		t.Errorf("view missing status line: %q", v)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel()
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	m = next.(Model)
	if !m.manager.Done() {
		t.Error("manager still running after quit")
	}
	if m.View() != "" {
		t.Error("view not cleared after quit")
	}
}
