package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "starcatch.yaml"

// Load loads starcatch configuration.
// Search order: customPath -> ~/.starcatch/configs/starcatch.yaml -> ./configs/starcatch.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides the keys it names.
func Load(customPath string) (StarcatchConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return StarcatchConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return StarcatchConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultStarcatchYAML)
	if err != nil {
		return DefaultStarcatchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the default configuration and validates the result.
func Parse(data []byte) (StarcatchConfig, error) {
	cfg := DefaultStarcatchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return StarcatchConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return StarcatchConfig{}, err
	}
	return cfg, nil
}

// Validate reports the first setting that would make a session unplayable.
func (c StarcatchConfig) Validate() error {
	var errs []error
	p := c.Playfield
	if p.Margin < 0 || p.Width <= 2*p.Margin || p.Height <= 2*p.Margin {
		errs = append(errs, fmt.Errorf("playfield %gx%g with margin %g leaves no room", p.Width, p.Height, p.Margin))
	}
	if c.Player.MaxSpeed <= 0 {
		errs = append(errs, fmt.Errorf("player.max_speed must be positive, got %g", c.Player.MaxSpeed))
	}
	if c.Player.AccelDiv == 0 || c.Player.BrakeDiv == 0 {
		errs = append(errs, errors.New("player.accel_div and player.brake_div must be non-zero"))
	}
	t := c.Target
	if t.SpawnX[1] <= t.SpawnX[0] || t.SpawnY[1] <= t.SpawnY[0] {
		errs = append(errs, fmt.Errorf("target spawn region %v x %v is empty", t.SpawnX, t.SpawnY))
	}
	if c.Feedback.Duration <= 0 {
		errs = append(errs, fmt.Errorf("feedback.duration must be positive, got %s", c.Feedback.Duration))
	}
	if c.Transition.BlendStep <= 0 || c.Transition.BlendStep > 1 {
		errs = append(errs, fmt.Errorf("transition.blend_step must be in (0, 1], got %g", c.Transition.BlendStep))
	}
	if c.Gameplay.WinScore <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.win_score must be positive, got %d", c.Gameplay.WinScore))
	}
	if c.Gameplay.SpriteScale <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.sprite_scale must be positive, got %g", c.Gameplay.SpriteScale))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".starcatch", "configs", filename)
}
