package systems

import (
	"math/rand"

	"github.com/pthm-cable/bubbles/components"
)

// Simulation owns all mutable animation state: the bubble store, the
// gravity field, the canvas bounds and the spawn and gravity timers.
// It is driven from a single goroutine.
type Simulation struct {
	params  Params
	rng     *rand.Rand
	store   *Store
	gravity *GravityField
	bounds  Bounds

	spawnTimer   Interval
	gravityTimer Interval

	tick    int32
	simTime float64

	hook PhaseHook
}

// NewSimulation creates a simulation and spawns the initial bubbles.
func NewSimulation(params Params, bounds Bounds, seed int64) *Simulation {
	rng := rand.New(rand.NewSource(seed))

	s := &Simulation{
		params:       params,
		rng:          rng,
		store:        NewStore(params.Capacity, NewSpawner(rng, params.Spawn), params.GracePeriod),
		gravity:      NewGravityField(rng, params.GravityLerp),
		bounds:       bounds,
		spawnTimer:   Interval{Period: params.SpawnInterval},
		gravityTimer: Interval{Period: params.GravityInterval},
	}

	s.store.Reset(params.Initial, bounds)
	if params.GravityEnabled {
		s.gravity.ChangeDirection()
	}

	return s
}

// Update advances the timers by one tick, then steps every bubble.
func (s *Simulation) Update() StepResult {
	dt := s.params.DT

	s.hook.mark(PhaseTimers)
	spawned := 0
	for n := s.spawnTimer.Advance(dt); n > 0; n-- {
		if s.store.Spawn(s.bounds) {
			spawned++
		}
	}

	if s.params.GravityEnabled {
		for n := s.gravityTimer.Advance(dt); n > 0; n-- {
			s.gravity.ChangeDirection()
		}
		s.gravity.Advance()
	}

	res := step(s.store.Bubbles(), s.bounds, s.gravity.Vec(), &s.params, s.hook)
	res.Spawned = spawned

	s.tick++
	s.simTime += dt
	return res
}

// SetBounds applies a viewport resize. Depending on ResetOnResize the store
// is regenerated at its current size or every bubble is pulled inside.
func (s *Simulation) SetBounds(width, height float64) {
	nb := Bounds{Width: width, Height: height}
	if nb == s.bounds {
		return
	}
	s.bounds = nb

	if s.params.ResetOnResize {
		s.store.Reset(s.store.Len(), s.bounds)
		return
	}
	bubbles := s.store.Bubbles()
	for i := range bubbles {
		clampInside(&bubbles[i], s.bounds, &s.params)
	}
}

// SetPhaseHook installs a callback invoked at the start of each tick phase.
// Pass nil to remove it.
func (s *Simulation) SetPhaseHook(hook PhaseHook) {
	s.hook = hook
}

// Resize trims or pads the store to n bubbles.
func (s *Simulation) Resize(n int) {
	s.store.Resize(n, s.bounds)
}

// Reset regenerates the initial population and restarts the spawn timer.
func (s *Simulation) Reset() {
	s.store.Reset(s.params.Initial, s.bounds)
	s.spawnTimer.Reset()
}

// SetPolicy switches the collision policy.
func (s *Simulation) SetPolicy(p components.CollisionPolicy) {
	s.params.Policy = p
}

// SetGravityEnabled turns the gravity bias on or off. Turning it on picks a
// target if none was chosen yet.
func (s *Simulation) SetGravityEnabled(enabled bool) {
	s.params.GravityEnabled = enabled
	if enabled && s.gravity.State().Direction < 0 {
		s.gravity.ChangeDirection()
		s.gravityTimer.Reset()
	}
}

// SetHueRate changes the hue advance per tick.
func (s *Simulation) SetHueRate(rate float64) {
	s.params.HueRate = rate
}

// Params returns the current parameters.
func (s *Simulation) Params() Params {
	return s.params
}

// Bubbles returns the bubbles in store order.
func (s *Simulation) Bubbles() []components.Bubble {
	return s.store.Bubbles()
}

// Store returns the particle store.
func (s *Simulation) Store() *Store {
	return s.store
}

// Gravity returns the current gravity record.
func (s *Simulation) Gravity() components.Gravity {
	return s.gravity.State()
}

// Bounds returns the current canvas bounds.
func (s *Simulation) Bounds() Bounds {
	return s.bounds
}

// Tick returns the number of completed ticks.
func (s *Simulation) Tick() int32 {
	return s.tick
}

// SimTime returns elapsed simulated seconds.
func (s *Simulation) SimTime() float64 {
	return s.simTime
}
