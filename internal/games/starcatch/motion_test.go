package starcatch

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/starcatch/internal/core"
)

func TestIntegrateSpeedClamp(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	p := Player{}

	for i := 0; i < 5000; i++ {
		thrust := (rng.Float64() - 0.5) * 4 // -2..2 per tick
		p.Integrate(Intent{Thrust: thrust, Turn: rng.Float64()*10 - 5}, 5)
		if p.Speed < -5 || p.Speed > 5 {
			t.Fatalf("tick %d: speed %f outside [-5, 5]", i, p.Speed)
		}
	}
}

func TestIntegrateClampsResultNotDelta(t *testing.T) {
	p := Player{Speed: 4.95}
	p.Integrate(Intent{Thrust: 0.1}, 5)
	if p.Speed != 5 {
		t.Errorf("Speed = %f, expected 5", p.Speed)
	}

	// A small negative delta from the cap moves off it immediately
	p.Integrate(Intent{Thrust: -0.5}, 5)
	if p.Speed != 4.5 {
		t.Errorf("Speed = %f, expected 4.5", p.Speed)
	}
}

func TestIntegrateRotationAccumulates(t *testing.T) {
	p := Player{}
	for i := 0; i < 400; i++ {
		p.Integrate(Intent{Turn: 1}, 5)
	}
	if p.RotationDeg != 400 {
		t.Errorf("RotationDeg = %f, expected 400 (unbounded)", p.RotationDeg)
	}
	if math.Abs(p.Rotation-core.ToRadians(400)) > 1e-12 {
		t.Errorf("Rotation = %f, expected radians(400)", p.Rotation)
	}
}

func TestIntegrateMovesAlongHeading(t *testing.T) {
	p := Player{Entity: Entity{Pos: core.Vec2{X: 100, Y: 100}}}

	// Facing +X, speed 2
	p.Integrate(Intent{Thrust: 2}, 5)
	if math.Abs(p.Pos.X-102) > 1e-9 || math.Abs(p.Pos.Y-100) > 1e-9 {
		t.Errorf("Pos = %+v, expected (102, 100)", p.Pos)
	}

	// Turn to +Y (90 degrees) and coast; speed persists
	p.Integrate(Intent{Turn: 90}, 5)
	if math.Abs(p.Pos.X-102) > 1e-9 || math.Abs(p.Pos.Y-102) > 1e-9 {
		t.Errorf("Pos = %+v, expected (102, 102)", p.Pos)
	}

	// Negative speed reverses along the heading
	p.Integrate(Intent{Thrust: -4}, 5)
	if math.Abs(p.Pos.Y-100) > 1e-9 {
		t.Errorf("Pos.Y = %f, expected 100 after reversing", p.Pos.Y)
	}
}

func TestEntityBox(t *testing.T) {
	e := Entity{Pos: core.Vec2{X: 10.7, Y: 20.2}, SpriteW: 512, SpriteH: 256}
	box := e.Box(0.2)
	want := core.NewRect(10, 20, 102, 51)
	if box != want {
		t.Errorf("Box() = %+v, expected %+v", box, want)
	}
}
