package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/bubbles/components"
)

// integrate advances one bubble by one tick: gravity bias, speed cap,
// position, hue and grace countdown.
func integrate(b *components.Bubble, gravity r2.Vec, p *Params) {
	if p.GravityEnabled {
		b.Vel = r2.Add(b.Vel, r2.Scale(p.GravityStrength, gravity))
	}

	if p.MaxSpeed > 0 {
		if speed := r2.Norm(b.Vel); speed > p.MaxSpeed {
			b.Vel = r2.Scale(p.MaxSpeed/speed, b.Vel)
		}
	}

	b.Pos = r2.Add(b.Pos, b.Vel)
	b.Hue = WrapHue(b.Hue + p.HueRate)

	if !b.CollisionEnabled {
		b.Grace -= p.DT
		if b.Grace <= 0 {
			b.Grace = 0
			b.CollisionEnabled = true
		}
	}
}

// resolveBounds reflects a bubble off any edge it crossed and returns the
// number of axes that bounced.
func resolveBounds(b *components.Bubble, bounds Bounds, p *Params) int {
	tol := p.tolerance(b.Radius)
	bounced := 0
	if reflectAxis(&b.Pos.X, &b.Vel.X, bounds.Width, b.Radius, tol) {
		bounced++
	}
	if reflectAxis(&b.Pos.Y, &b.Vel.Y, bounds.Height, b.Radius, tol) {
		bounced++
	}
	return bounced
}

// reflectAxis clamps pos to [r-tol, extent-r+tol] and points vel back inward
// when the clamp engaged. A canvas too small for the bubble pins it to the middle.
func reflectAxis(pos, vel *float64, extent, r, tol float64) bool {
	lo := r - tol
	hi := extent - r + tol
	if hi < lo {
		*pos = extent / 2
		return false
	}
	switch {
	case *pos < lo:
		*pos = lo
		*vel = math.Abs(*vel)
		return true
	case *pos > hi:
		*pos = hi
		*vel = -math.Abs(*vel)
		return true
	}
	return false
}

// clampInside pulls a bubble back inside the canvas without touching its velocity.
func clampInside(b *components.Bubble, bounds Bounds, p *Params) {
	tol := p.tolerance(b.Radius)
	b.Pos.X = clampAxis(b.Pos.X, bounds.Width, b.Radius, tol)
	b.Pos.Y = clampAxis(b.Pos.Y, bounds.Height, b.Radius, tol)
}

func clampAxis(pos, extent, r, tol float64) float64 {
	lo := r - tol
	hi := extent - r + tol
	if hi < lo {
		return extent / 2
	}
	return math.Max(lo, math.Min(hi, pos))
}
