package systems

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/bubbles/components"
)

// TestHeadOnEqualRadii covers two radius-40 bubbles overlapping head-on.
func TestHeadOnEqualRadii(t *testing.T) {
	p := testParams(t)
	p.Policy = components.PolicyElastic
	bounds := Bounds{Width: 800, Height: 600}

	bubbles := []components.Bubble{
		bubbleAt(100, 100, 1, 0, 40),
		bubbleAt(110, 100, -1, 0, 40),
	}

	res := Step(bubbles, bounds, r2.Vec{}, &p)

	if res.Collisions != 1 {
		t.Fatalf("collisions = %d, want 1", res.Collisions)
	}
	dist := r2.Norm(r2.Sub(bubbles[1].Pos, bubbles[0].Pos))
	if dist < 80-tol {
		t.Errorf("distance after step = %f, want >= 80", dist)
	}
	if !almostEqual(bubbles[0].Vel.X, -1, tol) || !almostEqual(bubbles[1].Vel.X, 1, tol) {
		t.Errorf("velocities = %v, %v, want swapped normal components", bubbles[0].Vel, bubbles[1].Vel)
	}
	if !almostEqual(bubbles[0].Vel.Y, 0, tol) || !almostEqual(bubbles[1].Vel.Y, 0, tol) {
		t.Errorf("tangential components changed: %v, %v", bubbles[0].Vel, bubbles[1].Vel)
	}
}

var collisionCases = []struct {
	name string
	a, b components.Bubble
}{
	{"head on equal", bubbleAt(100, 100, 2, 0, 30), bubbleAt(140, 100, -2, 0, 30)},
	{"oblique equal", bubbleAt(200, 200, 1.5, 0.5, 25), bubbleAt(230, 220, -0.5, -1, 25)},
	{"heavy hits light", bubbleAt(300, 300, 3, 1, 60), bubbleAt(360, 320, 0, 0, 15)},
	{"light hits heavy", bubbleAt(300, 300, 2, -2, 10), bubbleAt(312, 290, -0.2, 0.1, 80)},
	{"vertical", bubbleAt(50, 50, 0, 2, 20), bubbleAt(50, 80, 0, -1, 20)},
	{"deep overlap", bubbleAt(400, 400, 1, 1, 40), bubbleAt(401, 402, -1, -1, 40)},
}

func TestResolveSeparatesPairs(t *testing.T) {
	policies := map[string]func(a, b *components.Bubble) bool{
		"elastic": ResolveElastic,
		"angle":   ResolveAngle,
	}

	for pname, resolve := range policies {
		for _, tc := range collisionCases {
			t.Run(pname+"/"+tc.name, func(t *testing.T) {
				a, b := tc.a, tc.b
				if !Collides(&a, &b) {
					t.Fatal("test case does not collide")
				}
				if !resolve(&a, &b) {
					t.Fatal("resolve reported no overlap")
				}
				dist := r2.Norm(r2.Sub(b.Pos, a.Pos))
				if dist < a.Radius+b.Radius-1e-6 {
					t.Errorf("distance = %f, want >= %f", dist, a.Radius+b.Radius)
				}
			})
		}
	}
}

func TestElasticConservesNormalMomentum(t *testing.T) {
	for _, tc := range collisionCases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := tc.a, tc.b
			n := r2.Unit(r2.Sub(b.Pos, a.Pos))

			before := a.Radius*r2.Dot(a.Vel, n) + b.Radius*r2.Dot(b.Vel, n)
			energyBefore := a.Radius*r2.Norm2(a.Vel) + b.Radius*r2.Norm2(b.Vel)

			ResolveElastic(&a, &b)

			after := a.Radius*r2.Dot(a.Vel, n) + b.Radius*r2.Dot(b.Vel, n)
			energyAfter := a.Radius*r2.Norm2(a.Vel) + b.Radius*r2.Norm2(b.Vel)

			if !almostEqual(before, after, 1e-9) {
				t.Errorf("normal momentum %f -> %f", before, after)
			}
			if energyAfter > energyBefore+1e-9 {
				t.Errorf("kinetic energy grew %f -> %f", energyBefore, energyAfter)
			}
		})
	}
}

func TestAnglePolicyMatchesElastic(t *testing.T) {
	for _, tc := range collisionCases {
		t.Run(tc.name, func(t *testing.T) {
			a1, b1 := tc.a, tc.b
			a2, b2 := tc.a, tc.b
			ResolveElastic(&a1, &b1)
			ResolveAngle(&a2, &b2)

			if r2.Norm(r2.Sub(a1.Vel, a2.Vel)) > 1e-9 || r2.Norm(r2.Sub(b1.Vel, b2.Vel)) > 1e-9 {
				t.Errorf("elastic %v/%v vs angle %v/%v", a1.Vel, b1.Vel, a2.Vel, b2.Vel)
			}
		})
	}
}

func TestTangentialUnchanged(t *testing.T) {
	a := bubbleAt(100, 100, 1, 3, 20)
	b := bubbleAt(130, 100, -1, -2, 20)

	ResolveElastic(&a, &b)

	// Normal is +X, so Y components are tangential.
	if !almostEqual(a.Vel.Y, 3, tol) || !almostEqual(b.Vel.Y, -2, tol) {
		t.Errorf("tangential components changed: %v, %v", a.Vel, b.Vel)
	}
}

func TestSeparatingPairKeepsVelocity(t *testing.T) {
	a := bubbleAt(100, 100, -1, 0, 20)
	b := bubbleAt(120, 100, 1, 0, 20)

	if !ResolveElastic(&a, &b) {
		t.Fatal("expected overlap")
	}
	if a.Vel.X != -1 || b.Vel.X != 1 {
		t.Errorf("velocities changed for a separating pair: %v, %v", a.Vel, b.Vel)
	}
	if d := r2.Norm(r2.Sub(b.Pos, a.Pos)); d < 40-tol {
		t.Errorf("distance = %f, want >= 40", d)
	}
}

func TestCoincidentCenters(t *testing.T) {
	tests := []struct {
		name string
		a, b components.Bubble
	}{
		{"moving", bubbleAt(200, 200, 1, 0, 30), bubbleAt(200, 200, -1, 0, 30)},
		{"at rest", bubbleAt(200, 200, 0, 0, 30), bubbleAt(200, 200, 0, 0, 30)},
	}

	for _, tt := range tests {
		for _, resolve := range []func(a, b *components.Bubble) bool{ResolveElastic, ResolveAngle} {
			a, b := tt.a, tt.b
			resolve(&a, &b)

			for _, v := range []float64{a.Pos.X, a.Pos.Y, b.Pos.X, b.Pos.Y, a.Vel.X, a.Vel.Y, b.Vel.X, b.Vel.Y} {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("%s: non-finite state a=%+v b=%+v", tt.name, a, b)
				}
			}
			if d := r2.Norm(r2.Sub(b.Pos, a.Pos)); d < 60-1e-6 {
				t.Errorf("%s: distance = %f, want >= 60", tt.name, d)
			}
		}
	}
}

func TestNonOverlappingNotResolved(t *testing.T) {
	a := bubbleAt(0, 0, 1, 0, 10)
	b := bubbleAt(25, 0, -1, 0, 10)
	if Collides(&a, &b) {
		t.Fatal("Collides reported overlap for separated bubbles")
	}
	if ResolveElastic(&a, &b) || ResolveAngle(&a, &b) {
		t.Error("resolve should report false for separated bubbles")
	}
}

func TestGraceBubblesSkipCollisions(t *testing.T) {
	bubbles := []components.Bubble{
		bubbleAt(100, 100, 0, 0, 20),
		bubbleAt(110, 100, 0, 0, 20),
	}
	bubbles[1].CollisionEnabled = false

	if n := resolvePairs(bubbles, components.PolicyElastic); n != 0 {
		t.Errorf("collisions = %d, want 0 while one bubble is in grace", n)
	}
	if bubbles[0].Pos.X != 100 || bubbles[1].Pos.X != 110 {
		t.Error("grace bubble was moved")
	}
}

func TestPolicyNoneSkipsDetection(t *testing.T) {
	bubbles := []components.Bubble{
		bubbleAt(100, 100, 0, 0, 20),
		bubbleAt(110, 100, 0, 0, 20),
	}
	if n := resolvePairs(bubbles, components.PolicyNone); n != 0 {
		t.Errorf("collisions = %d, want 0 with policy none", n)
	}
}

func TestResolvePairsCountsAll(t *testing.T) {
	// Three bubbles spaced along X; only the neighbouring pairs overlap.
	bubbles := []components.Bubble{
		bubbleAt(100, 100, 1, 0, 20),
		bubbleAt(130, 100, 0, 0, 20),
		bubbleAt(300, 100, 0, 0, 20),
	}
	if n := resolvePairs(bubbles, components.PolicyElastic); n != 1 {
		t.Errorf("collisions = %d, want 1", n)
	}
}
