package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/bubbles/components"
)

// epsilon below which two centers are treated as coincident.
const epsilon = 1e-9

// Collides reports whether two bubbles' circles intersect.
func Collides(a, b *components.Bubble) bool {
	return r2.Norm(r2.Sub(b.Pos, a.Pos)) < a.Radius+b.Radius
}

// contactNormal returns the unit vector from a to b and the center distance.
// Coincident centers fall back to the relative velocity direction, then +X.
func contactNormal(a, b *components.Bubble) (r2.Vec, float64) {
	d := r2.Sub(b.Pos, a.Pos)
	dist := r2.Norm(d)
	if dist > epsilon {
		return r2.Scale(1/dist, d), dist
	}
	rel := r2.Sub(a.Vel, b.Vel)
	if r2.Norm(rel) > epsilon {
		return r2.Unit(rel), 0
	}
	return r2.Vec{X: 1}, 0
}

// exchange applies the 1D elastic collision formula with radius standing in for mass.
func exchange(v1, v2, m1, m2 float64) (float64, float64) {
	total := m1 + m2
	return (v1*(m1-m2) + 2*m2*v2) / total,
		(v2*(m2-m1) + 2*m1*v1) / total
}

// separate pushes a and b apart along n by half the overlap each.
func separate(a, b *components.Bubble, n r2.Vec, overlap float64) {
	push := r2.Scale(overlap/2, n)
	a.Pos = r2.Sub(a.Pos, push)
	b.Pos = r2.Add(b.Pos, push)
}

// ResolveElastic exchanges momentum along the contact normal, leaving
// tangential components unchanged, then separates the pair. Velocities are
// only exchanged while the bubbles approach each other. Returns false if
// the pair was not overlapping.
func ResolveElastic(a, b *components.Bubble) bool {
	n, dist := contactNormal(a, b)
	overlap := a.Radius + b.Radius - dist
	if overlap <= 0 {
		return false
	}

	v1n := r2.Dot(a.Vel, n)
	v2n := r2.Dot(b.Vel, n)
	if v1n > v2n {
		n1, n2 := exchange(v1n, v2n, a.Radius, b.Radius)
		a.Vel = r2.Add(a.Vel, r2.Scale(n1-v1n, n))
		b.Vel = r2.Add(b.Vel, r2.Scale(n2-v2n, n))
	}

	separate(a, b, n, overlap)
	return true
}

// ResolveAngle rotates both velocities into the contact frame, exchanges
// the contact-axis components by radius weight, and rotates back.
func ResolveAngle(a, b *components.Bubble) bool {
	n, dist := contactNormal(a, b)
	overlap := a.Radius + b.Radius - dist
	if overlap <= 0 {
		return false
	}

	origin := r2.Vec{}
	angle := math.Atan2(n.Y, n.X)
	u1 := r2.Rotate(a.Vel, -angle, origin)
	u2 := r2.Rotate(b.Vel, -angle, origin)

	if u1.X > u2.X {
		u1.X, u2.X = exchange(u1.X, u2.X, a.Radius, b.Radius)
		a.Vel = r2.Rotate(u1, angle, origin)
		b.Vel = r2.Rotate(u2, angle, origin)
	}

	separate(a, b, n, overlap)
	return true
}

// resolvePairs runs pairwise detection over all i < j and resolves each
// colliding pair with the given policy. Bubbles in their grace period are skipped.
func resolvePairs(bubbles []components.Bubble, policy components.CollisionPolicy) int {
	var resolve func(a, b *components.Bubble) bool
	switch policy {
	case components.PolicyElastic:
		resolve = ResolveElastic
	case components.PolicyAngle:
		resolve = ResolveAngle
	default:
		return 0
	}

	collisions := 0
	for i := range bubbles {
		a := &bubbles[i]
		if !a.CollisionEnabled {
			continue
		}
		for j := i + 1; j < len(bubbles); j++ {
			b := &bubbles[j]
			if !b.CollisionEnabled || !Collides(a, b) {
				continue
			}
			if resolve(a, b) {
				collisions++
			}
		}
	}
	return collisions
}
