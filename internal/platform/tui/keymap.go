package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starcatch/internal/core"
)

// KeyMap defines the key bindings for play.
type KeyMap struct {
	TurnLeft   key.Binding
	TurnRight  key.Binding
	Thrust     key.Binding
	Brake      key.Binding
	StickLeft  key.Binding
	StickRight key.Binding
	PadAccel   key.Binding
	PadBrake   key.Binding
	PadToggle  key.Binding
	MenuUp     key.Binding
	MenuDown   key.Binding
	Confirm    key.Binding
	Pause      key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		TurnLeft: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←/→", "turn"),
		),
		TurnRight: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "turn right"),
		),
		Thrust: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑/↓", "thrust/brake"),
		),
		Brake: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "brake"),
		),
		StickLeft: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a/d", "pad stick"),
		),
		StickRight: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "pad stick right"),
		),
		PadAccel: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]/[", "pad triggers"),
		),
		PadBrake: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "pad brake"),
		),
		PadToggle: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "plug/unplug pad"),
		),
		MenuUp: key.NewBinding(
			key.WithKeys("w", "k"),
			key.WithHelp("w/k", "menu up"),
		),
		MenuDown: key.NewBinding(
			key.WithKeys("s", "j"),
			key.WithHelp("s/j", "menu down"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.TurnLeft, k.Thrust, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TurnLeft, k.Thrust, k.Pause},
		{k.StickLeft, k.PadAccel, k.PadToggle},
		{k.Confirm, k.Back, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// binding pairs a key binding with the actions it raises.
type binding struct {
	key     key.Binding
	actions []core.Action
}

func (k KeyMap) bindings() []binding {
	return []binding{
		{k.TurnLeft, []core.Action{core.ActionLeft}},
		{k.TurnRight, []core.Action{core.ActionRight}},
		{k.Thrust, []core.Action{core.ActionUp}},
		{k.Brake, []core.Action{core.ActionDown}},
		{k.StickLeft, []core.Action{core.ActionStickLeft}},
		{k.StickRight, []core.Action{core.ActionStickRight}},
		{k.PadAccel, []core.Action{core.ActionAccel}},
		{k.PadBrake, []core.Action{core.ActionBrake}},
		{k.PadToggle, []core.Action{core.ActionPadToggle}},
		{k.MenuUp, []core.Action{core.ActionUp}},
		{k.MenuDown, []core.Action{core.ActionDown}},
		{k.Confirm, []core.Action{core.ActionConfirm}},
		{k.Pause, []core.Action{core.ActionPause}},
		{k.Back, []core.Action{core.ActionBack}},
	}
}

// Actions translates a key message into every action it raises.
// One key may raise several, e.g. esc both pauses and backs out of a menu.
func (k KeyMap) Actions(msg tea.KeyMsg) []core.Action {
	var out []core.Action
	for _, b := range k.bindings() {
		if key.Matches(msg, b.key) {
			out = append(out, b.actions...)
		}
	}
	return out
}
