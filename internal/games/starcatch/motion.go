package starcatch

import (
	"math"

	"github.com/vovakirdan/starcatch/internal/core"
)

// Entity is anything with a position and a sprite-sized bounding box.
type Entity struct {
	Pos     core.Vec2
	SpriteW int // Logical sprite width before scaling
	SpriteH int // Logical sprite height before scaling
}

// Box returns the entity's collision rectangle. The box's top-left corner
// sits at the entity position and its size is the sprite size times scale.
func (e Entity) Box(scale float64) core.Rect {
	return core.NewRect(
		int(e.Pos.X), int(e.Pos.Y),
		int(float64(e.SpriteW)*scale), int(float64(e.SpriteH)*scale),
	)
}

// Player is the ship. Rotation and speed persist across ticks.
type Player struct {
	Entity
	RotationDeg float64 // Unbounded accumulator
	Rotation    float64 // RotationDeg in radians
	Speed       float64
}

// Integrate applies one tick of intent: turn, thrust with a clamp on the
// resulting speed, then move along the heading.
func (p *Player) Integrate(in Intent, maxSpeed float64) {
	p.RotationDeg += in.Turn
	p.Rotation = core.ToRadians(p.RotationDeg)

	p.Speed = core.ClampF(p.Speed+in.Thrust, -maxSpeed, maxSpeed)

	p.Pos = p.Pos.Add(core.Heading(p.Rotation).Scale(p.Speed))
}

// DrawRotation is the sprite rotation; the ship art points up at zero.
func (p *Player) DrawRotation() float64 {
	return p.Rotation + math.Pi/2
}
