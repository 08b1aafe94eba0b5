package systems

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/bubbles/components"
)

// Spawner creates bubbles with randomized position, velocity and color phase.
type Spawner struct {
	rng    *rand.Rand
	params SpawnParams
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, params SpawnParams) *Spawner {
	return &Spawner{rng: rng, params: params}
}

// New returns a fresh bubble placed inside bounds.
func (s *Spawner) New(bounds Bounds) components.Bubble {
	p := s.params

	radius := p.Radius + (s.rng.Float64()*2-1)*p.RadiusJitter
	if radius < 1 {
		radius = 1
	}

	b := components.Bubble{
		Radius:           radius,
		Hue:              s.rng.Float64() * 360,
		Opacity:          p.MinOpacity + s.rng.Float64()*(p.MaxOpacity-p.MinOpacity),
		CollisionEnabled: true,
	}

	switch p.Mode {
	case components.SpawnCorner:
		// Launch from the bottom-left corner somewhere in a 45 degree cone
		// starting 22.5 degrees above horizontal.
		b.Pos = r2.Vec{X: radius, Y: bounds.Height - radius}
		angle := s.rng.Float64()*math.Pi/4 + math.Pi/8
		b.Vel = r2.Vec{X: math.Cos(angle) * p.MaxSpeed, Y: -math.Sin(angle) * p.MaxSpeed}
	default:
		b.Pos = r2.Vec{
			X: s.uniformInside(bounds.Width, radius),
			Y: s.uniformInside(bounds.Height, radius),
		}
		angle := s.rng.Float64() * 2 * math.Pi
		speed := p.MinSpeed + s.rng.Float64()*(p.MaxSpeed-p.MinSpeed)
		b.Vel = r2.Vec{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed}
	}

	return b
}

// uniformInside picks a coordinate in [r, extent-r], or the midpoint when
// the canvas is narrower than the bubble.
func (s *Spawner) uniformInside(extent, r float64) float64 {
	span := extent - 2*r
	if span <= 0 {
		return extent / 2
	}
	return r + s.rng.Float64()*span
}

// Store is the capacity-bounded, index-addressed collection of bubbles.
type Store struct {
	bubbles     []components.Bubble
	capacity    int
	spawner     *Spawner
	gracePeriod float64
}

// NewStore creates an empty store. A bubble spawned on top of an existing
// one has collisions disabled for gracePeriod seconds (0 disables grace).
func NewStore(capacity int, spawner *Spawner, gracePeriod float64) *Store {
	if capacity < 1 {
		capacity = 1
	}
	return &Store{
		bubbles:     make([]components.Bubble, 0, capacity),
		capacity:    capacity,
		spawner:     spawner,
		gracePeriod: gracePeriod,
	}
}

// Spawn adds one bubble unless the store is full. Returns whether a bubble was added.
func (s *Store) Spawn(bounds Bounds) bool {
	if len(s.bubbles) >= s.capacity {
		return false
	}

	b := s.spawner.New(bounds)
	if s.gracePeriod > 0 {
		for i := range s.bubbles {
			if b.Overlaps(&s.bubbles[i]) {
				b.CollisionEnabled = false
				b.Grace = s.gracePeriod
				break
			}
		}
	}

	s.bubbles = append(s.bubbles, b)
	return true
}

// Resize trims or pads the store to exactly n bubbles, clamped to [0, capacity].
func (s *Store) Resize(n int, bounds Bounds) {
	n = max(0, min(n, s.capacity))
	if n < len(s.bubbles) {
		clear(s.bubbles[n:])
		s.bubbles = s.bubbles[:n]
		return
	}
	for len(s.bubbles) < n {
		s.Spawn(bounds)
	}
}

// Reset clears the store and regenerates n bubbles.
func (s *Store) Reset(n int, bounds Bounds) {
	s.Resize(0, bounds)
	s.Resize(n, bounds)
}

// Bubbles returns the backing slice. Callers may mutate elements in place.
func (s *Store) Bubbles() []components.Bubble {
	return s.bubbles
}

// Len returns the number of bubbles.
func (s *Store) Len() int {
	return len(s.bubbles)
}

// Cap returns the store capacity.
func (s *Store) Cap() int {
	return s.capacity
}
