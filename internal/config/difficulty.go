package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string means no preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyPreset modifies the ship handling based on a difficulty preset.
// Normal and the empty preset leave the loaded config untouched.
func ApplyPreset(cfg *StarcatchConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxSpeed = 4
		cfg.Player.ThrustStep = 0.08
	case DifficultyHard:
		cfg.Player.MaxSpeed = 7
		cfg.Player.ThrustStep = 0.15
		cfg.Player.TurnStep = 1.5
	}
}
