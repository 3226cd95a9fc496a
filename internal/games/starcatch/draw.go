package starcatch

import (
	"fmt"

	"github.com/vovakirdan/starcatch/internal/core"
)

// Texture is an opaque asset handle resolved by the renderer.
type Texture string

// Asset handles used by a session.
const (
	TextureBackground Texture = "background"
	TextureShip       Texture = "ship"
	TextureStar       Texture = "star"
	TextureGameFont   Texture = "gamefont"
)

// spriteOrigin is the rotation origin inside the 512x512 sprite art.
var spriteOrigin = core.Vec2{X: 256, Y: 256}

// DrawKind selects how a DrawIntent is rendered.
type DrawKind int

const (
	DrawFill   DrawKind = iota // Texture stretched over the whole playfield
	DrawSprite                 // Texture placed at Pos, rotated about Origin
	DrawText                   // Text in the given font, anchored at Pos
)

// DrawIntent describes one thing to draw in playfield coordinates.
// The core never touches pixels; the platform turns intents into output.
type DrawIntent struct {
	Kind     DrawKind
	Texture  Texture
	Pos      core.Vec2
	Origin   core.Vec2
	Rotation float64
	Scale    float64
	Tint     float64 // Brightness 0..1
	Text     string
	Centered bool // Text is centered horizontally on Pos
}

// Scene is everything a renderer needs for one frame of a session.
type Scene struct {
	Width, Height float64
	Intents       []DrawIntent
	Fade          float64 // Fade-to-black alpha, zero when no fade is applied
	Feedback      bool    // Actuator currently on
	Score         int
}

// Draw builds the scene for the current state. ownAlpha is the session's
// own entry/exit transition alpha; stackFade is the alpha of any fade the
// overlay stack draws above it.
func (s *Session) Draw(ownAlpha, stackFade float64) Scene {
	pf := s.cfg.Playfield
	scale := s.cfg.Gameplay.SpriteScale

	intents := []DrawIntent{
		{Kind: DrawFill, Texture: TextureBackground, Scale: 1, Tint: ownAlpha},
		{
			Kind:     DrawSprite,
			Texture:  TextureShip,
			Pos:      s.player.Pos,
			Origin:   spriteOrigin,
			Rotation: s.player.DrawRotation(),
			Scale:    scale,
			Tint:     1,
		},
		{
			Kind:    DrawSprite,
			Texture: TextureStar,
			Pos:     s.target.Pos,
			Origin:  spriteOrigin,
			Scale:   scale,
			Tint:    1,
		},
		{
			Kind:     DrawText,
			Texture:  TextureGameFont,
			Pos:      core.Vec2{X: pf.Width / 2, Y: pf.Height * 0.1},
			Scale:    1,
			Tint:     1,
			Text:     fmt.Sprintf("Score: %d", s.score),
			Centered: true,
		},
	}

	var fade float64
	if ownAlpha < 1 || s.blend.Value() > 0 {
		fade = s.blend.FadeAlpha(ownAlpha)
	}
	if stackFade > 0 {
		fade = Composite(fade, stackFade)
	}

	return Scene{
		Width:    pf.Width,
		Height:   pf.Height,
		Intents:  intents,
		Fade:     fade,
		Feedback: s.pulse.State() == PulseActive,
		Score:    s.score,
	}
}
