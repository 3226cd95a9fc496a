// Package screens implements the overlay stack that hosts a starcatch
// session: menus, the gameplay screen and the popups drawn above it.
// Screens transition on and off over time, the topmost active screen
// receives input, and every screen learns whether something covers it.
package screens

import (
	"time"

	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/games/starcatch"
)

// Kind identifies a screen variant.
type Kind int

const (
	KindMenu Kind = iota
	KindGameplay
	KindPause
	KindWin
	KindControls
	KindScores
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindMenu:
		return "Menu"
	case KindGameplay:
		return "Gameplay"
	case KindPause:
		return "Pause"
	case KindWin:
		return "Win"
	case KindControls:
		return "Controls"
	case KindScores:
		return "Scores"
	default:
		return "Unknown"
	}
}

// TransitionState is where a screen is in its on/off transition.
type TransitionState int

const (
	StateTransitionOn TransitionState = iota
	StateActive
	StateTransitionOff
	StateHidden
)

// String returns a human-readable name for the state.
func (s TransitionState) String() string {
	switch s {
	case StateTransitionOn:
		return "TransitionOn"
	case StateActive:
		return "Active"
	case StateTransitionOff:
		return "TransitionOff"
	case StateHidden:
		return "Hidden"
	default:
		return "Unknown"
	}
}

// Input is what the manager hands to screens each tick.
type Input struct {
	Pressed  core.InputFrame    // Actions newly pressed this tick
	Snapshot starcatch.Snapshot // Held device state for the gameplay session
}

// Context describes a screen's place in the stack for one tick.
type Context struct {
	OtherHasFocus bool // A screen above, or another window, owns input
	Covered       bool // A non-popup screen above is showing
	Overlaid      bool // Any screen above is showing
	Input         Input
}

// Screen is one layer of the stack.
type Screen interface {
	Kind() Kind
	base() *Base

	// Update runs every tick, topmost screen first.
	Update(m *Manager, dt time.Duration, ctx Context)
	// HandleInput runs only for the topmost active screen.
	HandleInput(m *Manager, in Input)
	// Draw renders into a layer of its own, darkened by stackFade.
	Draw(layer *core.Screen, stackFade float64)
}

// Backdrop is implemented by screens that darken everything below them.
type Backdrop interface {
	BackdropFade() float64
}

// Base holds the transition state shared by every screen.
// Embed it and call Transition from Update.
type Base struct {
	TransitionOnTime  time.Duration
	TransitionOffTime time.Duration
	IsPopup           bool

	position      float64 // 1 fully off, 0 fully on
	state         TransitionState
	exiting       bool
	otherHasFocus bool
}

func newBase(on, off time.Duration, popup bool) Base {
	return Base{
		TransitionOnTime:  on,
		TransitionOffTime: off,
		IsPopup:           popup,
		position:          1,
		state:             StateTransitionOn,
	}
}

func (b *Base) base() *Base { return b }

// Transition advances the on/off animation for one tick.
func (b *Base) Transition(dt time.Duration, otherHasFocus, covered bool) {
	b.otherHasFocus = otherHasFocus

	switch {
	case b.exiting:
		b.state = StateTransitionOff
		b.step(dt, b.TransitionOffTime, 1)
	case covered:
		if b.step(dt, b.TransitionOffTime, 1) {
			b.state = StateTransitionOff
		} else {
			b.state = StateHidden
		}
	default:
		if b.step(dt, b.TransitionOnTime, -1) {
			b.state = StateTransitionOn
		} else {
			b.state = StateActive
		}
	}
}

// step moves the position toward direction and reports whether the
// transition is still running.
func (b *Base) step(dt, total time.Duration, direction float64) bool {
	delta := 1.0
	if total > 0 {
		delta = float64(dt) / float64(total)
	}
	b.position += delta * direction

	if (direction < 0 && b.position <= 0) || (direction > 0 && b.position >= 1) {
		b.position = core.ClampF(b.position, 0, 1)
		return false
	}
	return true
}

// Exit starts the screen's off transition; the manager drops it once done.
func (b *Base) Exit() {
	b.exiting = true
}

// State returns the transition state.
func (b *Base) State() TransitionState { return b.state }

// TransitionPosition is 0 when fully on and 1 when fully off.
func (b *Base) TransitionPosition() float64 { return b.position }

// TransitionAlpha is 1 when fully on and 0 when fully off.
func (b *Base) TransitionAlpha() float64 { return 1 - b.position }

// IsExiting reports whether Exit was called.
func (b *Base) IsExiting() bool { return b.exiting }

// IsActive reports whether the screen is showing and owns input.
func (b *Base) IsActive() bool {
	return !b.otherHasFocus && (b.state == StateTransitionOn || b.state == StateActive)
}

func (b *Base) visible() bool {
	return b.state == StateTransitionOn || b.state == StateActive
}

func (b *Base) finished() bool {
	return b.exiting && b.position >= 1
}
