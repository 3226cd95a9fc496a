// Package config provides YAML-based game configuration loading and
// difficulty presets for starcatch.
package config

import "time"

// StarcatchConfig contains all tuning for a starcatch session.
type StarcatchConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Player     PlayerConfig     `yaml:"player"`
	Target     TargetConfig     `yaml:"target"`
	Feedback   FeedbackConfig   `yaml:"feedback"`
	Transition TransitionConfig `yaml:"transition"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
}

// PlayfieldConfig defines the logical resolution and the wall margin.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Margin float64 `yaml:"margin"` // Distance of each wall from the screen edge
}

// PlayerConfig defines the ship's start position, sprite and handling.
type PlayerConfig struct {
	StartX     float64 `yaml:"start_x"`
	StartY     float64 `yaml:"start_y"`
	SpriteW    int     `yaml:"sprite_w"`
	SpriteH    int     `yaml:"sprite_h"`
	MaxSpeed   float64 `yaml:"max_speed"`
	TurnStep   float64 `yaml:"turn_step"`   // Degrees per tick for a held turn key
	ThrustStep float64 `yaml:"thrust_step"` // Speed per tick for a held thrust key
	StickTurn  float64 `yaml:"stick_turn"`  // Degrees per tick at full stick deflection
	AccelDiv   float64 `yaml:"accel_div"`   // Right trigger value is divided by this
	BrakeDiv   float64 `yaml:"brake_div"`   // Left trigger value is divided by this
}

// TargetConfig defines the star's start position, sprite and respawn region.
type TargetConfig struct {
	StartX  float64 `yaml:"start_x"`
	StartY  float64 `yaml:"start_y"`
	SpriteW int     `yaml:"sprite_w"`
	SpriteH int     `yaml:"sprite_h"`
	SpawnX  [2]int  `yaml:"spawn_x"` // [min, max) x of a respawn
	SpawnY  [2]int  `yaml:"spawn_y"` // [min, max) y of a respawn
}

// FeedbackConfig defines the haptic pulse.
type FeedbackConfig struct {
	Duration         time.Duration `yaml:"duration"`
	CaptureIntensity float64       `yaml:"capture_intensity"`
	WallIntensity    float64       `yaml:"wall_intensity"`
}

// TransitionConfig defines fade timings.
type TransitionConfig struct {
	BlendStep float64       `yaml:"blend_step"` // Blend change per tick
	OnTime    time.Duration `yaml:"on_time"`
	OffTime   time.Duration `yaml:"off_time"`
}

// GameplayConfig defines scoring.
type GameplayConfig struct {
	SpriteScale float64 `yaml:"sprite_scale"`
	WinScore    int     `yaml:"win_score"`
}

// Bounds returns the wall rectangle as min/max corners.
func (p PlayfieldConfig) Bounds() (minX, minY, maxX, maxY float64) {
	return p.Margin, p.Margin, p.Width - p.Margin, p.Height - p.Margin
}
