package screens

import (
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/starcatch/internal/core"
	"github.com/vovakirdan/starcatch/internal/games/starcatch"
)

// Gameplay hosts one starcatch session.
type Gameplay struct {
	Base
	session   *starcatch.Session
	sink      ResultSink
	logger    *log.Logger
	inputMode string
	played    time.Duration
	last      starcatch.Frame
	margin    float64
}

// NewGameplay starts a fresh session from the manager's options.
func NewGameplay(m *Manager) *Gameplay {
	o := m.Options()
	seed := m.nextSeed()
	m.Logger().Info("session started", "seed", seed, "input", o.InputMode)
	return &Gameplay{
		Base:      newBase(o.Game.Transition.OnTime, o.Game.Transition.OffTime, false),
		session:   starcatch.NewSession(o.Game, o.Caps, seed, o.Actuator),
		sink:      o.Sink,
		logger:    m.Logger(),
		inputMode: o.InputMode,
		margin:    o.Game.Playfield.Margin,
	}
}

// Kind returns KindGameplay.
func (g *Gameplay) Kind() Kind { return KindGameplay }

// Session returns the hosted session.
func (g *Gameplay) Session() *starcatch.Session { return g.session }

// LastFrame returns the outcome of the most recent tick.
func (g *Gameplay) LastFrame() starcatch.Frame { return g.last }

// Update ticks the session. The gameplay screen never hides behind an
// overlay; the session fades itself instead.
func (g *Gameplay) Update(m *Manager, dt time.Duration, ctx Context) {
	g.Transition(dt, ctx.OtherHasFocus, false)

	in := starcatch.TickInput{
		Focused:  g.IsActive(),
		Obscured: ctx.Overlaid,
		Phase:    phaseOf(g.State()),
		OwnAlpha: g.TransitionAlpha(),
	}
	if in.Focused {
		snap := ctx.Input.Snapshot
		in.Snapshot = &snap
	}

	ticks := g.session.Ticks()
	f, err := g.session.Advance(dt, in)
	if err != nil {
		// A failed tick ends the session; Unload records what was played.
		g.logger.Error("session tick failed, ending session", "err", err)
		m.RemoveScreen(g)
		m.Push(KindMenu)
		return
	}
	if g.session.Ticks() > ticks {
		g.played += dt
	}
	g.last = f

	for _, r := range f.Requests {
		g.logger.Debug("session request", "request", r, "score", f.Score)
		switch r {
		case starcatch.RequestPause:
			m.Push(KindPause)
		case starcatch.RequestWin:
			m.Push(KindWin)
		}
	}
}

// HandleInput is a no-op; the session reads the snapshot in Update.
func (g *Gameplay) HandleInput(*Manager, Input) {}

// Unload silences feedback and reports the result.
func (g *Gameplay) Unload() {
	g.session.Close()
	r := Result{
		Score:     g.session.Score(),
		Won:       g.session.Won(),
		Ticks:     g.session.Ticks(),
		Duration:  g.played,
		InputMode: g.inputMode,
	}
	g.logger.Info("session ended", "score", r.Score, "won", r.Won, "ticks", r.Ticks)
	if g.sink == nil {
		return
	}
	if err := g.sink.RecordResult(r); err != nil {
		g.logger.Warn("could not record result", "err", err)
	}
}

func phaseOf(s TransitionState) starcatch.Phase {
	switch s {
	case StateTransitionOn:
		return starcatch.PhaseTransitionOn
	case StateActive:
		return starcatch.PhaseActive
	case StateTransitionOff:
		return starcatch.PhaseTransitionOff
	default:
		return starcatch.PhaseHidden
	}
}

// Draw projects the session scene onto the terminal grid.
func (g *Gameplay) Draw(layer *core.Screen, stackFade float64) {
	scene := g.session.Draw(g.TransitionAlpha(), stackFade)
	RenderScene(layer, scene, g.margin)
	layer.FadeToBlack(scene.Fade)
}

// shipGlyphs point along headings 0, 45, ... 315 degrees, y down.
var shipGlyphs = []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// ShipGlyph picks the arrow closest to a sprite rotation. Sprites are
// drawn a quarter turn ahead of the heading.
func ShipGlyph(rotation float64) rune {
	heading := rotation - math.Pi/2
	i := int(math.Round(heading/(math.Pi/4))) % len(shipGlyphs)
	if i < 0 {
		i += len(shipGlyphs)
	}
	return shipGlyphs[i]
}

// projector maps playfield coordinates to grid cells.
type projector struct {
	sx, sy float64
}

func newProjector(scene starcatch.Scene, cols, rows int) projector {
	return projector{sx: float64(cols) / scene.Width, sy: float64(rows) / scene.Height}
}

func (p projector) cell(v core.Vec2) (int, int) {
	return int(v.X * p.sx), int(v.Y * p.sy)
}

// RenderScene draws scene intents into layer. margin is the wall inset in
// playfield units.
func RenderScene(layer *core.Screen, scene starcatch.Scene, margin float64) {
	cols, rows := layer.Width(), layer.Height()
	if cols == 0 || rows == 0 || scene.Width <= 0 || scene.Height <= 0 {
		return
	}
	p := newProjector(scene, cols, rows)

	for _, di := range scene.Intents {
		switch di.Kind {
		case starcatch.DrawFill:
			drawField(layer, p, scene, margin, di.Tint)
		case starcatch.DrawSprite:
			x, y := p.cell(di.Pos)
			switch di.Texture {
			case starcatch.TextureShip:
				layer.SetCell(x, y, ShipGlyph(di.Rotation), core.Shade(core.ColorBrightCyan, di.Tint))
			case starcatch.TextureStar:
				layer.SetCell(x, y, '★', core.Shade(core.ColorBrightYellow, di.Tint))
			}
		case starcatch.DrawText:
			x, y := p.cell(di.Pos)
			if di.Centered {
				x -= len([]rune(di.Text)) / 2
			}
			layer.DrawText(x, y, di.Text, core.Shade(core.ColorBrightWhite, di.Tint))
		}
	}

	if scene.Feedback {
		const label = "~ rumble ~"
		layer.DrawText(cols-len(label)-1, 0, label, core.ColorOrange)
	}
}

// drawField draws the starfield background and the walls.
func drawField(layer *core.Screen, p projector, scene starcatch.Scene, margin, tint float64) {
	cols, rows := layer.Width(), layer.Height()
	dot := core.Shade(core.ColorBlue, tint)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if (x*31+y*17)%53 == 0 {
				layer.SetCell(x, y, '.', dot)
			}
		}
	}

	x0, y0 := p.cell(core.Vec2{X: margin, Y: margin})
	x1, y1 := p.cell(core.Vec2{X: scene.Width - margin, Y: scene.Height - margin})
	if x1-x0 < 2 || y1-y0 < 2 {
		return
	}
	layer.DrawBox(core.NewRect(x0, y0, x1-x0+1, y1-y0+1), core.Shade(core.ColorBlue, tint))
}
