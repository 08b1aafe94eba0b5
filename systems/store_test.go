package systems

import (
	"math"
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/bubbles/components"
)

func newTestStore(t *testing.T, capacity int, mode components.SpawnMode, grace float64) *Store {
	t.Helper()
	p := testParams(t)
	p.Spawn.Mode = mode
	return NewStore(capacity, NewSpawner(rand.New(rand.NewSource(1)), p.Spawn), grace)
}

var testBounds = Bounds{Width: 1280, Height: 720}

func TestStoreCapacity(t *testing.T) {
	s := newTestStore(t, 25, components.SpawnRandom, 0)

	added := 0
	for i := 0; i < 30; i++ {
		if s.Spawn(testBounds) {
			added++
		}
	}

	if added != 25 || s.Len() != 25 {
		t.Errorf("added %d, len %d, want 25", added, s.Len())
	}
	if s.Spawn(testBounds) {
		t.Error("Spawn beyond capacity should be a no-op")
	}
}

func TestStoreResize(t *testing.T) {
	tests := []struct {
		name  string
		start int
		to    int
		want  int
	}{
		{"trim 30 to 20", 30, 20, 20},
		{"pad 5 to 20", 5, 20, 20},
		{"same size", 20, 20, 20},
		{"beyond capacity", 10, 500, 100},
		{"negative", 10, -3, 0},
		{"to zero", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t, 100, components.SpawnRandom, 0)
			s.Resize(tt.start, testBounds)
			if s.Len() != tt.start {
				t.Fatalf("setup len = %d, want %d", s.Len(), tt.start)
			}

			s.Resize(tt.to, testBounds)
			if s.Len() != tt.want {
				t.Errorf("len = %d, want %d", s.Len(), tt.want)
			}
		})
	}
}

func TestStoreResizeKeepsPrefix(t *testing.T) {
	s := newTestStore(t, 50, components.SpawnRandom, 0)
	s.Resize(30, testBounds)
	first := s.Bubbles()[0]

	s.Resize(20, testBounds)
	if s.Bubbles()[0] != first {
		t.Error("trim replaced existing bubbles")
	}
}

func TestStoreReset(t *testing.T) {
	s := newTestStore(t, 25, components.SpawnRandom, 0)
	s.Resize(10, testBounds)
	before := s.Bubbles()[0].Pos

	s.Reset(12, testBounds)
	if s.Len() != 12 {
		t.Errorf("len = %d, want 12", s.Len())
	}
	if s.Bubbles()[0].Pos == before {
		t.Error("reset should regenerate bubbles")
	}
}

func TestRandomSpawnInsideBounds(t *testing.T) {
	p := testParams(t)
	p.Spawn.RadiusJitter = 10
	p.Spawn.MinOpacity = 0.3
	p.Spawn.MaxOpacity = 0.9
	sp := NewSpawner(rand.New(rand.NewSource(3)), p.Spawn)

	for i := 0; i < 500; i++ {
		b := sp.New(testBounds)
		if b.Radius < 30 || b.Radius > 50 {
			t.Fatalf("radius %f outside jitter range", b.Radius)
		}
		if b.Pos.X < b.Radius || b.Pos.X > testBounds.Width-b.Radius ||
			b.Pos.Y < b.Radius || b.Pos.Y > testBounds.Height-b.Radius {
			t.Fatalf("spawn at %v with radius %f not inside margin", b.Pos, b.Radius)
		}
		speed := r2.Norm(b.Vel)
		if speed < p.Spawn.MinSpeed-tol || speed > p.Spawn.MaxSpeed+tol {
			t.Fatalf("speed %f outside [%f, %f]", speed, p.Spawn.MinSpeed, p.Spawn.MaxSpeed)
		}
		if b.Hue < 0 || b.Hue >= 360 {
			t.Fatalf("hue %f out of range", b.Hue)
		}
		if b.Opacity < 0.3 || b.Opacity > 0.9 {
			t.Fatalf("opacity %f out of range", b.Opacity)
		}
		if !b.CollisionEnabled {
			t.Fatal("fresh bubble should collide")
		}
	}
}

func TestCornerSpawn(t *testing.T) {
	p := testParams(t)
	p.Spawn.Mode = components.SpawnCorner
	sp := NewSpawner(rand.New(rand.NewSource(5)), p.Spawn)

	for i := 0; i < 200; i++ {
		b := sp.New(testBounds)
		if b.Pos.X != b.Radius || b.Pos.Y != testBounds.Height-b.Radius {
			t.Fatalf("corner spawn at %v, want (%f, %f)", b.Pos, b.Radius, testBounds.Height-b.Radius)
		}
		if !almostEqual(r2.Norm(b.Vel), p.Spawn.MaxSpeed, tol) {
			t.Fatalf("speed %f, want %f", r2.Norm(b.Vel), p.Spawn.MaxSpeed)
		}
		// Up and to the right, between 22.5 and 67.5 degrees.
		angle := math.Atan2(-b.Vel.Y, b.Vel.X)
		if angle < math.Pi/8-tol || angle > 3*math.Pi/8+tol {
			t.Fatalf("launch angle %f outside cone", angle)
		}
	}
}

func TestSpawnGracePeriod(t *testing.T) {
	// Corner spawns always land on top of each other.
	s := newTestStore(t, 5, components.SpawnCorner, 0.5)

	s.Spawn(testBounds)
	s.Spawn(testBounds)

	first, second := s.Bubbles()[0], s.Bubbles()[1]
	if !first.CollisionEnabled {
		t.Error("first bubble has nothing to overlap and should collide")
	}
	if second.CollisionEnabled || second.Grace != 0.5 {
		t.Errorf("overlapping spawn: enabled=%v grace=%f, want disabled for 0.5s", second.CollisionEnabled, second.Grace)
	}
}

func TestSpawnWithoutGracePeriod(t *testing.T) {
	s := newTestStore(t, 5, components.SpawnCorner, 0)
	s.Spawn(testBounds)
	s.Spawn(testBounds)

	if !s.Bubbles()[1].CollisionEnabled {
		t.Error("grace disabled: overlapping spawn should still collide")
	}
}
