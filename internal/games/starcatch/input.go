package starcatch

import "github.com/vovakirdan/starcatch/internal/config"

// DeviceID names an input device, e.g. "keyboard" or "pad0".
type DeviceID string

// KeyState is the held state of the discrete direction keys for one tick.
type KeyState struct {
	Left, Right bool
	Up, Down    bool
	Pause       bool
}

// PadState is one analog controller for one tick.
// Axis values are not sanitized: NaN or out-of-range values are the
// source's fault and flow straight into the intent.
type PadState struct {
	ID           DeviceID
	Connected    bool
	StickX       float64 // Left stick horizontal axis, -1..1
	LeftTrigger  float64 // Brake, 0..1
	RightTrigger float64 // Accelerate, 0..1
	Pause        bool
}

// Snapshot is the raw device state for one tick.
type Snapshot struct {
	Keys KeyState
	Pads []PadState
}

// Capabilities describes which device classes an input source provides.
// It is resolved once at startup; the resolver ignores classes that are off.
type Capabilities struct {
	PointerKeys bool // Discrete direction keys
	AnalogStick bool // Analog stick and triggers
}

// Source is a runtime-resolved input device abstraction.
type Source interface {
	Capabilities() Capabilities
	Poll() Snapshot
}

// DeviceSet records devices that have been seen connected.
type DeviceSet map[DeviceID]bool

// Observe marks every connected pad in snap as seen.
func (d DeviceSet) Observe(snap Snapshot) {
	for _, p := range snap.Pads {
		if p.Connected {
			d[p.ID] = true
		}
	}
}

// Seen reports whether id was ever connected.
func (d DeviceSet) Seen(id DeviceID) bool {
	return d[id]
}

// Intent is the device-independent input summary for one tick.
type Intent struct {
	Turn           float64 // Degrees to add to the rotation accumulator
	Thrust         float64 // Speed to add before clamping
	PauseRequested bool
}

// Resolve turns a raw snapshot into an Intent. It has no side effects;
// prev is only read. A pad that is disconnected now but present in prev
// requests a pause, so a player who never plugged a pad in is never paused.
func Resolve(snap Snapshot, caps Capabilities, prev DeviceSet, tune config.PlayerConfig) Intent {
	var in Intent
	in.PauseRequested = snap.Keys.Pause

	if caps.PointerKeys {
		k := snap.Keys
		if k.Left {
			in.Turn -= tune.TurnStep
		}
		if k.Right {
			in.Turn += tune.TurnStep
		}
		if k.Up {
			in.Thrust += tune.ThrustStep
		}
		if k.Down {
			in.Thrust -= tune.ThrustStep
		}
	}

	for _, p := range snap.Pads {
		if !p.Connected {
			if prev.Seen(p.ID) {
				in.PauseRequested = true
			}
			continue
		}
		if p.Pause {
			in.PauseRequested = true
		}
		if !caps.AnalogStick {
			continue
		}
		in.Turn += p.StickX * tune.StickTurn
		in.Thrust += p.RightTrigger / tune.AccelDiv
		in.Thrust -= p.LeftTrigger / tune.BrakeDiv
	}

	return in
}
