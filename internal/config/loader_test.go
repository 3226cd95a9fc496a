package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(GetDefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != DefaultStarcatchConfig() {
		t.Errorf("embedded YAML and DefaultStarcatchConfig() disagree:\n%+v\n%+v", cfg, DefaultStarcatchConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("gameplay:\n  win_score: 5\nfeedback:\n  duration: 250ms\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Gameplay.WinScore != 5 {
		t.Errorf("WinScore = %d, expected 5", cfg.Gameplay.WinScore)
	}
	if cfg.Feedback.Duration != 250*time.Millisecond {
		t.Errorf("Duration = %s, expected 250ms", cfg.Feedback.Duration)
	}
	// Untouched keys keep their defaults
	if cfg.Player.MaxSpeed != 5 {
		t.Errorf("MaxSpeed = %g, expected default 5", cfg.Player.MaxSpeed)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero speed", "player:\n  max_speed: 0\n", "max_speed"},
		{"empty spawn", "target:\n  spawn_x: [500, 500]\n", "spawn region"},
		{"huge margin", "playfield:\n  margin: 400\n", "leaves no room"},
		{"blend step", "transition:\n  blend_step: 2\n", "blend_step"},
		{"win score", "gameplay:\n  win_score: -1\n", "win_score"},
		{"bad yaml", "player: [", "yaml"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("gameplay:\n  win_score: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Gameplay.WinScore != 3 {
		t.Errorf("WinScore = %d, expected 3", cfg.Gameplay.WinScore)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultStarcatchConfig()
	ApplyPreset(&cfg, DifficultyNormal)
	if cfg != DefaultStarcatchConfig() {
		t.Error("normal preset should not change the config")
	}

	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Player.MaxSpeed != 7 {
		t.Errorf("hard MaxSpeed = %g, expected 7", cfg.Player.MaxSpeed)
	}

	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown names")
	}
	if p, err := ParsePreset(""); err != nil || p != "" {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv(EnvDBPath, "/tmp/x.db")
	if got := GetEnv(EnvDBPath, "fallback"); got != "/tmp/x.db" {
		t.Errorf("GetEnv = %q, expected /tmp/x.db", got)
	}
	if got := GetEnv("STARCATCH_UNSET_FOR_TEST", "fallback"); got != "fallback" {
		t.Errorf("GetEnv = %q, expected fallback", got)
	}
}
