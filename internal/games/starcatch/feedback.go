package starcatch

import "time"

// FeedbackCommand is sent to the haptic actuator.
type FeedbackCommand struct {
	On        bool
	Intensity float64 // Constant while on; zero when off
}

// Actuator receives feedback commands. Implementations must not block.
type Actuator interface {
	SetFeedback(cmd FeedbackCommand)
}

// ActuatorFunc adapts a function to the Actuator interface.
type ActuatorFunc func(cmd FeedbackCommand)

// SetFeedback calls f(cmd).
func (f ActuatorFunc) SetFeedback(cmd FeedbackCommand) { f(cmd) }

// PulseState is the state of a Pulse.
type PulseState int

const (
	PulseIdle PulseState = iota
	PulseActive
)

// String returns a human-readable name for the state.
func (s PulseState) String() string {
	if s == PulseActive {
		return "Active"
	}
	return "Idle"
}

// Pulse is one shared timed actuator for every feedback cause.
// Overlapping triggers extend the pulse instead of stacking.
// Time is the sum of Advance durations, never the wall clock.
type Pulse struct {
	state    PulseState
	elapsed  time.Duration
	duration time.Duration
	out      Actuator
}

// NewPulse creates an idle pulse that holds for duration after the last trigger.
// A nil actuator discards commands.
func NewPulse(duration time.Duration, out Actuator) *Pulse {
	if out == nil {
		out = ActuatorFunc(func(FeedbackCommand) {})
	}
	return &Pulse{duration: duration, out: out}
}

// Trigger starts the pulse, or restarts its timer if already active.
// "On" is emitted only on the Idle->Active edge.
func (p *Pulse) Trigger(intensity float64) {
	p.elapsed = 0
	if p.state == PulseActive {
		return
	}
	p.state = PulseActive
	p.out.SetFeedback(FeedbackCommand{On: true, Intensity: intensity})
}

// Advance adds dt to the timer while active and turns the pulse off once
// the elapsed time exceeds the duration.
func (p *Pulse) Advance(dt time.Duration) {
	if p.state != PulseActive {
		return
	}
	p.elapsed += dt
	if p.elapsed > p.duration {
		p.stop()
	}
}

// Cancel silences an active pulse immediately.
func (p *Pulse) Cancel() {
	if p.state == PulseActive {
		p.stop()
	}
}

func (p *Pulse) stop() {
	p.state = PulseIdle
	p.elapsed = 0
	p.out.SetFeedback(FeedbackCommand{})
}

// State returns the current pulse state.
func (p *Pulse) State() PulseState {
	return p.state
}

// Elapsed returns the time since the last trigger while active.
func (p *Pulse) Elapsed() time.Duration {
	return p.elapsed
}
