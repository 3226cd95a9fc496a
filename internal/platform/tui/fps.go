package tui

import (
	"fmt"
	"time"
)

// FrameRateMonitor samples the frame rate once per interval.
type FrameRateMonitor struct {
	interval time.Duration
	since    time.Duration
	frames   int
	total    time.Duration
	fps      float64
	details  string
}

// NewFrameRateMonitor creates a monitor that samples every second.
func NewFrameRateMonitor() *FrameRateMonitor {
	return &FrameRateMonitor{interval: time.Second}
}

// Frame counts one frame that took dt. It reports whether a new sample
// was taken, i.e. whether Details changed.
func (f *FrameRateMonitor) Frame(dt time.Duration) bool {
	f.frames++
	f.since += dt
	f.total += dt
	if f.since <= f.interval {
		return false
	}
	f.fps = float64(f.frames) / f.since.Seconds()
	f.details = fmt.Sprintf("FPS:%.1f - GameTime: %.1fs", f.fps, f.total.Seconds())
	f.frames = 0
	f.since -= f.interval
	return true
}

// FPS returns the last sampled frame rate.
func (f *FrameRateMonitor) FPS() float64 { return f.fps }

// Details returns the last sample as a title string.
func (f *FrameRateMonitor) Details() string { return f.details }
