// Package components defines the plain data records the simulation operates on.
package components

import "gonum.org/v1/gonum/spatial/r2"

// Bubble is a single simulated circular sprite.
type Bubble struct {
	Pos     r2.Vec  // Center, in canvas pixels
	Vel     r2.Vec  // Pixels per tick
	Radius  float64 // Fixed at creation, always > 0
	Hue     float64 // Degrees in [0, 360)
	Opacity float64 // [0, 1], fixed at creation

	// CollisionEnabled is false while a freshly spawned bubble that landed on
	// top of another one waits out its grace period.
	CollisionEnabled bool
	Grace            float64 // Remaining grace seconds
}

// Overlaps reports whether b and o intersect.
func (b *Bubble) Overlaps(o *Bubble) bool {
	d := r2.Sub(b.Pos, o.Pos)
	sum := b.Radius + o.Radius
	return r2.Norm2(d) < sum*sum
}

// Speed returns the velocity magnitude.
func (b *Bubble) Speed() float64 {
	return r2.Norm(b.Vel)
}

// Gravity is the drifting directional bias applied to every bubble.
type Gravity struct {
	X, Y      float64 // Current bias, each in [-1, 1]
	Direction int     // Index into CompassDirections of the current target, -1 before the first pick
}

// Vec returns the bias as a vector.
func (g Gravity) Vec() r2.Vec {
	return r2.Vec{X: g.X, Y: g.Y}
}

// CompassDirections are the eight gravity targets, clockwise from north.
// Y grows downward, matching screen coordinates.
var CompassDirections = [8]r2.Vec{
	{X: 0, Y: -1},  // N
	{X: 1, Y: -1},  // NE
	{X: 1, Y: 0},   // E
	{X: 1, Y: 1},   // SE
	{X: 0, Y: 1},   // S
	{X: -1, Y: 1},  // SW
	{X: -1, Y: 0},  // W
	{X: -1, Y: -1}, // NW
}

var compassNames = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// DirectionName returns the compass name of the current target, or "-" when none.
func (g Gravity) DirectionName() string {
	if g.Direction < 0 || g.Direction >= len(compassNames) {
		return "-"
	}
	return compassNames[g.Direction]
}
