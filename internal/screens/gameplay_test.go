package screens

import (
	"math"
	"testing"

	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/games/starcatch"
)

func TestShipGlyph(t *testing.T) {
	tests := []struct {
		name     string
		heading  float64
		expected rune
	}{
		{"east", 0, '→'},
		{"south", math.Pi / 2, '↓'},
		{"west", math.Pi, '←'},
		{"north", -math.Pi / 2, '↑'},
		{"north east", -math.Pi / 4, '↗'},
		{"full turn", 2 * math.Pi, '→'},
		{"nearly east", 0.2, '→'},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ShipGlyph(tc.heading + math.Pi/2); got != tc.expected {
				t.Errorf("ShipGlyph(%f) = %q, expected %q", tc.heading, got, tc.expected)
			}
		})
	}
}

func TestRenderScene(t *testing.T) {
	cfg := config.DefaultStarcatchConfig()
	s := starcatch.NewSession(cfg, starcatch.Capabilities{PointerKeys: true}, 1, nil)
	layer := core.NewScreen(128, 72)

	RenderScene(layer, s.Draw(1, 0), cfg.Playfield.Margin)

	if got := layer.Get(64, 36); got != '→' {
		t.Errorf("ship cell = %q, expected '→'", got)
	}
	if c := layer.GetCell(100, 36); c.Rune != '★' || c.Color != core.ColorBrightYellow {
		t.Errorf("star cell = %+v", c)
	}

	text := "Score: 0"
	x := 64 - len(text)/2
	for i, r := range text {
		if got := layer.Get(x+i, 7); got != r {
			t.Fatalf("score text at (%d, 7) = %q, expected %q", x+i, got, r)
		}
	}

	if got := layer.Get(4, 4); got != '┌' {
		t.Errorf("wall corner = %q, expected '┌'", got)
	}
}

func TestRenderSceneEmptyLayer(t *testing.T) {
	s := starcatch.NewSession(config.DefaultStarcatchConfig(), starcatch.Capabilities{}, 1, nil)
	RenderScene(core.NewScreen(0, 0), s.Draw(1, 0), 45)
}
