package starcatch

import (
	"math/rand"

	"github.com/vovakirdan/starcatch/internal/config"
	"github.com/vovakirdan/starcatch/internal/core"
)

// Edge is a bitmask of playfield walls.
type Edge uint8

const (
	EdgeLeft Edge = 1 << iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

// Count returns the number of walls in the mask.
func (e Edge) Count() int {
	n := 0
	for m := e; m != 0; m &= m - 1 {
		n++
	}
	return n
}

// Contacts reports what the resolver found this tick.
type Contacts struct {
	Captured bool
	Edges    Edge
}

// Resolver checks the player against the target and the walls.
type Resolver struct {
	cfg   config.StarcatchConfig
	rng   *rand.Rand
	pulse *Pulse
}

// NewResolver creates a resolver that reports contacts to pulse.
func NewResolver(cfg config.StarcatchConfig, seed int64, pulse *Pulse) *Resolver {
	return &Resolver{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(seed)),
		pulse: pulse,
	}
}

// Resolve runs after integration. A capture relocates the target and adds
// a point; any wall clamp zeroes the whole speed. Both trigger the pulse,
// once per cause, and the pulse coalesces them.
func (r *Resolver) Resolve(p *Player, t *Entity, score *int) Contacts {
	var c Contacts
	scale := r.cfg.Gameplay.SpriteScale

	if p.Box(scale).Intersects(t.Box(scale)) {
		t.Pos = r.spawnPoint()
		*score++
		c.Captured = true
		r.pulse.Trigger(r.cfg.Feedback.CaptureIntensity)
	}

	minX, minY, maxX, maxY := r.cfg.Playfield.Bounds()
	if p.Pos.X > maxX {
		p.Pos.X = maxX
		c.Edges |= EdgeRight
	}
	if p.Pos.X < minX {
		p.Pos.X = minX
		c.Edges |= EdgeLeft
	}
	if p.Pos.Y > maxY {
		p.Pos.Y = maxY
		c.Edges |= EdgeBottom
	}
	if p.Pos.Y < minY {
		p.Pos.Y = minY
		c.Edges |= EdgeTop
	}

	if c.Edges != 0 {
		p.Speed = 0
		for i := 0; i < c.Edges.Count(); i++ {
			r.pulse.Trigger(r.cfg.Feedback.WallIntensity)
		}
	}

	return c
}

// spawnPoint picks a uniform integer point in the target spawn region.
func (r *Resolver) spawnPoint() core.Vec2 {
	sx, sy := r.cfg.Target.SpawnX, r.cfg.Target.SpawnY
	return core.Vec2{
		X: float64(sx[0] + r.rng.Intn(sx[1]-sx[0])),
		Y: float64(sy[0] + r.rng.Intn(sy[1]-sy[0])),
	}
}
