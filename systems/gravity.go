package systems

import (
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/bubbles/components"
)

// GravityField drives the global bias vector toward one of the eight
// compass directions, picking a new one on request.
type GravityField struct {
	state components.Gravity
	rng   *rand.Rand
	lerp  float64
}

// NewGravityField creates a field at rest with no target yet.
func NewGravityField(rng *rand.Rand, lerp float64) *GravityField {
	return &GravityField{
		state: components.Gravity{Direction: -1},
		rng:   rng,
		lerp:  lerp,
	}
}

// ChangeDirection picks a new target uniformly from the directions other
// than the current one.
func (g *GravityField) ChangeDirection() int {
	n := len(components.CompassDirections)
	if g.state.Direction < 0 {
		g.state.Direction = g.rng.Intn(n)
		return g.state.Direction
	}
	next := g.rng.Intn(n - 1)
	if next >= g.state.Direction {
		next++
	}
	g.state.Direction = next
	return next
}

// Advance moves the bias a lerp fraction of the way toward the target.
func (g *GravityField) Advance() {
	if g.state.Direction < 0 {
		return
	}
	target := components.CompassDirections[g.state.Direction]
	g.state.X += (target.X - g.state.X) * g.lerp
	g.state.Y += (target.Y - g.state.Y) * g.lerp
}

// Vec returns the current bias.
func (g *GravityField) Vec() r2.Vec {
	return g.state.Vec()
}

// State returns a copy of the gravity record.
func (g *GravityField) State() components.Gravity {
	return g.state
}
