package systems

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/bubbles/components"
	"github.com/pthm-cable/bubbles/config"
)

const tol = 1e-9

// testParams returns the default parameters with gravity off.
func testParams(t *testing.T) Params {
	t.Helper()
	p, err := ParamsFromConfig(config.Defaults())
	if err != nil {
		t.Fatalf("ParamsFromConfig: %v", err)
	}
	p.GravityEnabled = false
	return p
}

func bubbleAt(x, y, vx, vy, r float64) components.Bubble {
	return components.Bubble{
		Pos:              r2.Vec{X: x, Y: y},
		Vel:              r2.Vec{X: vx, Y: vy},
		Radius:           r,
		Opacity:          1,
		CollisionEnabled: true,
	}
}

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// assertInside fails if any bubble's extent leaves the canvas by more than
// the boundary tolerance.
func assertInside(t *testing.T, bubbles []components.Bubble, bounds Bounds, p *Params) {
	t.Helper()
	for i := range bubbles {
		b := &bubbles[i]
		allow := p.tolerance(b.Radius) + 1e-6
		if b.Pos.X-b.Radius < -allow || b.Pos.X+b.Radius > bounds.Width+allow ||
			b.Pos.Y-b.Radius < -allow || b.Pos.Y+b.Radius > bounds.Height+allow {
			t.Fatalf("bubble %d at (%f, %f) r=%f escaped %vx%v", i, b.Pos.X, b.Pos.Y, b.Radius, bounds.Width, bounds.Height)
		}
	}
}
