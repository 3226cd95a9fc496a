// Package replay drives a star-catch session headlessly from a scripted
// input timeline. It is used to reproduce bug reports and to check tuning
// changes without a terminal.
package replay

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/starcatch/internal/games/starcatch"
)

// ErrInvalidScript is returned for scripts that cannot be replayed.
var ErrInvalidScript = errors.New("replay: invalid script")

// Script is a replay timeline.
//
//	seed: 7
//	tick: 16ms
//	input: keyboard
//	segments:
//	  - ticks: 30
//	    keys: [up]
//	  - ticks: 10
//	    obscured: true
type Script struct {
	Seed     int64         `yaml:"seed"`
	Tick     time.Duration `yaml:"tick"`
	Input    string        `yaml:"input"` // keyboard, pad or both
	Segments []Segment     `yaml:"segments"`
}

// Segment holds one input state for a number of ticks.
type Segment struct {
	Ticks     int      `yaml:"ticks"`
	Keys      []string `yaml:"keys"` // left, right, up, down, pause
	Pad       *Pad     `yaml:"pad"`
	Obscured  bool     `yaml:"obscured"`
	Unfocused bool     `yaml:"unfocused"`
	Phase     string   `yaml:"phase"` // on, active, off or hidden; empty is active
}

// Pad is the state of the scripted gamepad.
type Pad struct {
	Connected bool    `yaml:"connected"`
	Stick     float64 `yaml:"stick"`
	Accel     float64 `yaml:"accel"`
	Brake     float64 `yaml:"brake"`
}

// scriptPad is the device ID of the scripted gamepad.
const scriptPad starcatch.DeviceID = "script-pad"

var phases = map[string]starcatch.Phase{
	"":       starcatch.PhaseActive,
	"active": starcatch.PhaseActive,
	"on":     starcatch.PhaseTransitionOn,
	"off":    starcatch.PhaseTransitionOff,
	"hidden": starcatch.PhaseHidden,
}

// Parse decodes and validates a script.
func Parse(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("replay: cannot decode script: %w", err)
	}
	if s.Tick == 0 {
		s.Tick = time.Second / 60
	}
	if s.Input == "" {
		s.Input = "keyboard"
	}
	if err := s.Validate(); err != nil {
		return Script{}, err
	}
	return s, nil
}

// Load reads and parses a script file.
func Load(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("replay: cannot read script %s: %w", path, err)
	}
	return Parse(data)
}

// Validate checks the script for values the session cannot replay.
func (s Script) Validate() error {
	if s.Tick < 0 {
		return fmt.Errorf("%w: negative tick %s", ErrInvalidScript, s.Tick)
	}
	if _, err := s.capabilities(); err != nil {
		return err
	}
	for i, seg := range s.Segments {
		if seg.Ticks <= 0 {
			return fmt.Errorf("%w: segment %d has %d ticks", ErrInvalidScript, i, seg.Ticks)
		}
		if _, ok := phases[seg.Phase]; !ok {
			return fmt.Errorf("%w: segment %d has unknown phase %q", ErrInvalidScript, i, seg.Phase)
		}
		for _, k := range seg.Keys {
			switch k {
			case "left", "right", "up", "down", "pause":
			default:
				return fmt.Errorf("%w: segment %d has unknown key %q", ErrInvalidScript, i, k)
			}
		}
	}
	return nil
}

// TotalTicks returns the length of the timeline.
func (s Script) TotalTicks() int {
	n := 0
	for _, seg := range s.Segments {
		n += seg.Ticks
	}
	return n
}

func (s Script) capabilities() (starcatch.Capabilities, error) {
	switch s.Input {
	case "keyboard":
		return starcatch.Capabilities{PointerKeys: true}, nil
	case "pad":
		return starcatch.Capabilities{AnalogStick: true}, nil
	case "both":
		return starcatch.Capabilities{PointerKeys: true, AnalogStick: true}, nil
	default:
		return starcatch.Capabilities{}, fmt.Errorf("%w: unknown input %q", ErrInvalidScript, s.Input)
	}
}

// snapshot builds the device state for one tick of seg. Pause is pressed
// only on the segment's first tick.
func (seg Segment) snapshot(first bool) starcatch.Snapshot {
	var snap starcatch.Snapshot
	for _, k := range seg.Keys {
		switch k {
		case "left":
			snap.Keys.Left = true
		case "right":
			snap.Keys.Right = true
		case "up":
			snap.Keys.Up = true
		case "down":
			snap.Keys.Down = true
		case "pause":
			snap.Keys.Pause = first
		}
	}
	if seg.Pad != nil {
		snap.Pads = []starcatch.PadState{{
			ID:           scriptPad,
			Connected:    seg.Pad.Connected,
			StickX:       seg.Pad.Stick,
			RightTrigger: seg.Pad.Accel,
			LeftTrigger:  seg.Pad.Brake,
		}}
	}
	return snap
}
