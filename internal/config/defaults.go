package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/starcatch.yaml
var defaultStarcatchYAML []byte

// DefaultStarcatchConfig returns the default starcatch configuration.
func DefaultStarcatchConfig() StarcatchConfig {
	return StarcatchConfig{
		Playfield: PlayfieldConfig{
			Width:  1280,
			Height: 720,
			Margin: 45,
		},
		Player: PlayerConfig{
			StartX:     640,
			StartY:     360,
			SpriteW:    512,
			SpriteH:    512,
			MaxSpeed:   5,
			TurnStep:   1,
			ThrustStep: 0.1,
			StickTurn:  2,
			AccelDiv:   2,
			BrakeDiv:   5,
		},
		Target: TargetConfig{
			StartX:  1000,
			StartY:  360,
			SpriteW: 512,
			SpriteH: 512,
			SpawnX:  [2]int{100, 1100},
			SpawnY:  [2]int{100, 600},
		},
		Feedback: FeedbackConfig{
			Duration:         500 * time.Millisecond,
			CaptureIntensity: 0.5,
			WallIntensity:    1.0,
		},
		Transition: TransitionConfig{
			BlendStep: 1.0 / 32,
			OnTime:    1500 * time.Millisecond,
			OffTime:   500 * time.Millisecond,
		},
		Gameplay: GameplayConfig{
			SpriteScale: 0.2,
			WinScore:    20,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultStarcatchYAML
}
