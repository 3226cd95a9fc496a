package tui

import (
	"fmt"
	"time"

	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/games/starcatch"
	"github.com/vovakirdan/starcatch/internal/screens"
)

// DefaultHoldWindow is how long a key counts as held after its last press.
// Terminals report presses and auto-repeats, never releases.
const DefaultHoldWindow = 150 * time.Millisecond

// virtualPad is the device ID of the keyboard-driven pad.
const virtualPad starcatch.DeviceID = "virtual-pad"

// InputMode selects which devices a session listens to.
type InputMode string

const (
	InputKeyboard InputMode = "keyboard"
	InputPad      InputMode = "pad"
	InputBoth     InputMode = "both"
)

// ParseInputMode validates a mode name. Empty selects keyboard.
func ParseInputMode(name string) (InputMode, error) {
	switch InputMode(name) {
	case "", InputKeyboard:
		return InputKeyboard, nil
	case InputPad, InputBoth:
		return InputMode(name), nil
	default:
		return "", fmt.Errorf("tui: unknown input mode %q (want keyboard, pad or both)", name)
	}
}

// Capabilities returns the session capabilities for the mode.
func (m InputMode) Capabilities() starcatch.Capabilities {
	return starcatch.Capabilities{
		PointerKeys: m == InputKeyboard || m == InputBoth,
		AnalogStick: m == InputPad || m == InputBoth,
	}
}

// Source turns terminal key presses into session snapshots and menu
// presses. The virtual pad is driven by its own keys and can be
// unplugged to exercise disconnect handling.
type Source struct {
	caps    starcatch.Capabilities
	hold    time.Duration
	last    map[core.Action]time.Time
	pressed core.InputFrame
	padOn   bool
	now     func() time.Time
}

// NewSource creates a source for mode. A non-positive hold uses
// DefaultHoldWindow.
func NewSource(mode InputMode, hold time.Duration) *Source {
	if hold <= 0 {
		hold = DefaultHoldWindow
	}
	caps := mode.Capabilities()
	return &Source{
		caps:    caps,
		hold:    hold,
		last:    make(map[core.Action]time.Time),
		pressed: core.NewInputFrame(),
		padOn:   caps.AnalogStick,
		now:     time.Now,
	}
}

// Press records a key action.
func (s *Source) Press(a core.Action) {
	if a == core.ActionPadToggle {
		s.padOn = !s.padOn
	}
	s.last[a] = s.now()
	s.pressed.Set(a)
}

// PadConnected reports whether the virtual pad is plugged in.
func (s *Source) PadConnected() bool {
	return s.padOn
}

// Capabilities implements starcatch.Source.
func (s *Source) Capabilities() starcatch.Capabilities {
	return s.caps
}

func (s *Source) held(a core.Action, now time.Time) bool {
	t, ok := s.last[a]
	return ok && now.Sub(t) < s.hold
}

func axis(neg, pos bool) float64 {
	switch {
	case neg && !pos:
		return -1
	case pos && !neg:
		return 1
	default:
		return 0
	}
}

func level(on bool) float64 {
	if on {
		return 1
	}
	return 0
}

// Poll implements starcatch.Source. Pause is edge-triggered: it is set only
// when the pause key was pressed since the last Next.
func (s *Source) Poll() starcatch.Snapshot {
	now := s.now()
	snap := starcatch.Snapshot{
		Keys: starcatch.KeyState{
			Left:  s.held(core.ActionLeft, now),
			Right: s.held(core.ActionRight, now),
			Up:    s.held(core.ActionUp, now),
			Down:  s.held(core.ActionDown, now),
			Pause: s.pressed.Has(core.ActionPause),
		},
	}

	if s.caps.AnalogStick {
		pad := starcatch.PadState{ID: virtualPad, Connected: s.padOn}
		if s.padOn {
			pad.StickX = axis(s.held(core.ActionStickLeft, now), s.held(core.ActionStickRight, now))
			pad.RightTrigger = level(s.held(core.ActionAccel, now))
			pad.LeftTrigger = level(s.held(core.ActionBrake, now))
		}
		snap.Pads = []starcatch.PadState{pad}
	}
	return snap
}

// Next returns the input for one tick and clears the pressed edges.
func (s *Source) Next() screens.Input {
	in := screens.Input{Snapshot: s.Poll(), Pressed: s.pressed}
	s.pressed = core.NewInputFrame()
	return in
}

var _ starcatch.Source = (*Source)(nil)
