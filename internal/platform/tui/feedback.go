package tui

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starcatch/internal/games/starcatch"
)

// Rumble is the terminal stand-in for a vibration motor. It shows the
// current intensity in the HUD and logs every command.
type Rumble struct {
	intensity float64
	logger    *log.Logger
}

// NewRumble creates an idle rumble indicator.
func NewRumble(logger *log.Logger) *Rumble {
	return &Rumble{logger: logger}
}

// SetFeedback implements starcatch.Actuator.
func (r *Rumble) SetFeedback(cmd starcatch.FeedbackCommand) {
	if cmd.On {
		r.intensity = cmd.Intensity
	} else {
		r.intensity = 0
	}
	if r.logger != nil {
		r.logger.Debug("feedback", "on", cmd.On, "intensity", cmd.Intensity)
	}
}

// Intensity returns the current motor level.
func (r *Rumble) Intensity() float64 { return r.intensity }

// meterWidth is the number of cells in the HUD rumble meter.
const meterWidth = 4

// Meter renders the intensity as a short bar.
func (r *Rumble) Meter() string {
	n := int(r.intensity*meterWidth + 0.5)
	if n > meterWidth {
		n = meterWidth
	}
	return strings.Repeat("▮", n) + strings.Repeat("▯", meterWidth-n)
}

var _ starcatch.Actuator = (*Rumble)(nil)
