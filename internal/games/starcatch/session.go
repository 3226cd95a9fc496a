// Package starcatch implements the star-collecting ship game session.
// The player steers a ship around a walled playfield and picks up a star;
// walls and pickups buzz a shared haptic pulse, and the session fades out
// while an overlay covers it.
package starcatch

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
)

// ErrInvalidArgument is the class of errors for bad driver input.
var ErrInvalidArgument = errors.New("starcatch: invalid argument")

var (
	// ErrNilInput is returned when a focused session gets no input snapshot.
	ErrNilInput = fmt.Errorf("%w: nil input snapshot while focused", ErrInvalidArgument)
	// ErrNegativeTick is returned for a negative tick duration.
	ErrNegativeTick = fmt.Errorf("%w: negative tick duration", ErrInvalidArgument)
)

// Phase is the session's entry/exit transition phase, owned by the screen stack.
type Phase int

const (
	PhaseTransitionOn Phase = iota
	PhaseActive
	PhaseTransitionOff
	PhaseHidden
)

// State is the session state derived each tick.
type State int

const (
	StateFocused State = iota
	StateObscured
	StateTransitioningIn
	StateTransitioningOut
	StateWon
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateFocused:
		return "Focused"
	case StateObscured:
		return "Obscured"
	case StateTransitioningIn:
		return "TransitioningIn"
	case StateTransitioningOut:
		return "TransitioningOut"
	case StateWon:
		return "Won"
	default:
		return "Unknown"
	}
}

// Request asks the screen stack to push an overlay.
type Request int

const (
	RequestPause Request = iota + 1
	RequestWin
)

// String returns a human-readable name for the request.
func (r Request) String() string {
	switch r {
	case RequestPause:
		return "Pause"
	case RequestWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// TickInput is everything the screen stack supplies for one tick.
type TickInput struct {
	Focused   bool // Session is the top input target
	Obscured  bool // An overlay covers the session
	Phase     Phase
	OwnAlpha  float64 // Own transition alpha, 1 when fully shown
	StackFade float64 // Fade the stack draws above the session
	Snapshot  *Snapshot
}

// Frame is the outcome of one tick.
type Frame struct {
	State    State
	Score    int
	Requests []Request
	Intent   Intent
	Contacts Contacts
}

// Session owns all per-session mutable state. It is single-threaded:
// one Advance per tick from the driver, nothing runs in between.
type Session struct {
	cfg      config.StarcatchConfig
	caps     Capabilities
	player   Player
	target   Entity
	score    int
	pulse    *Pulse
	blend    *Blend
	resolver *Resolver
	devices  DeviceSet
	won      bool
	ticks    int
}

// NewSession starts a session with the configured start positions.
// act receives feedback commands and may be nil.
func NewSession(cfg config.StarcatchConfig, caps Capabilities, seed int64, act Actuator) *Session {
	pulse := NewPulse(cfg.Feedback.Duration, act)
	return &Session{
		cfg:  cfg,
		caps: caps,
		player: Player{Entity: Entity{
			Pos:     core.Vec2{X: cfg.Player.StartX, Y: cfg.Player.StartY},
			SpriteW: cfg.Player.SpriteW,
			SpriteH: cfg.Player.SpriteH,
		}},
		target: Entity{
			Pos:     core.Vec2{X: cfg.Target.StartX, Y: cfg.Target.StartY},
			SpriteW: cfg.Target.SpriteW,
			SpriteH: cfg.Target.SpriteH,
		},
		pulse:    pulse,
		blend:    NewBlend(cfg.Transition.BlendStep),
		resolver: NewResolver(cfg, seed, pulse),
		devices:  make(DeviceSet),
	}
}

// Advance runs one tick.
//
// The blend always animates. While obscured the pulse is silenced. The
// simulation (input, motion, collision, win check) only runs while focused,
// not exiting and not yet won. The pulse timer keeps running whenever the
// session is not obscured so a pulse never outlives its duration. It
// advances before the simulation: a pulse triggered this tick starts at
// zero elapsed time.
func (s *Session) Advance(dt time.Duration, in TickInput) (Frame, error) {
	if dt < 0 {
		return Frame{}, ErrNegativeTick
	}
	if in.Focused && in.Snapshot == nil {
		return Frame{}, ErrNilInput
	}

	s.blend.Update(in.Obscured)
	if in.Obscured {
		s.pulse.Cancel()
	} else {
		s.pulse.Advance(dt)
	}

	var f Frame
	if s.simulating(in) {
		s.ticks++
		snap := *in.Snapshot
		f.Intent = Resolve(snap, s.caps, s.devices, s.cfg.Player)
		s.devices.Observe(snap)

		if f.Intent.PauseRequested {
			f.Requests = append(f.Requests, RequestPause)
		} else {
			s.player.Integrate(f.Intent, s.cfg.Player.MaxSpeed)
			f.Contacts = s.resolver.Resolve(&s.player, &s.target, &s.score)
		}

		// Exact equality: a score that skips past the threshold never wins.
		if s.score == s.cfg.Gameplay.WinScore && !s.won {
			s.won = true
			f.Requests = append(f.Requests, RequestWin)
		}
	}

	f.State = s.state(in)
	f.Score = s.score
	return f, nil
}

func (s *Session) simulating(in TickInput) bool {
	if !in.Focused || in.Obscured || s.won {
		return false
	}
	return in.Phase == PhaseTransitionOn || in.Phase == PhaseActive
}

func (s *Session) state(in TickInput) State {
	switch {
	case s.won:
		return StateWon
	case in.Phase == PhaseTransitionOff || in.Phase == PhaseHidden:
		return StateTransitioningOut
	case in.Obscured || !in.Focused:
		return StateObscured
	case in.Phase == PhaseTransitionOn:
		return StateTransitioningIn
	default:
		return StateFocused
	}
}

// Close silences the actuator. The session must not be advanced afterwards.
func (s *Session) Close() {
	s.pulse.Cancel()
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Won reports whether the win request has been made.
func (s *Session) Won() bool { return s.won }

// Ticks returns the number of simulated ticks.
func (s *Session) Ticks() int { return s.ticks }

// Blend returns the current transition blend coefficient.
func (s *Session) Blend() float64 { return s.blend.Value() }

// Pulse returns the feedback pulse state.
func (s *Session) Pulse() PulseState { return s.pulse.State() }

// Player returns a copy of the ship state.
func (s *Session) Player() Player { return s.player }

// Target returns a copy of the star state.
func (s *Session) Target() Entity { return s.target }

// Capabilities returns the input capabilities fixed at session start.
func (s *Session) Capabilities() Capabilities { return s.caps }
