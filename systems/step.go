package systems

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/bubbles/components"
)

// StepResult summarizes what happened during one tick.
type StepResult struct {
	Collisions int // Pairs resolved
	Bounces    int // Axis reflections off the canvas edges
	InGrace    int // Bubbles with collisions disabled after the step
	Spawned    int // Bubbles added by the spawn timer before the step
}

// Phase names passed to a phase hook.
const (
	PhaseTimers    = "timers"
	PhaseIntegrate = "integrate"
	PhaseBounds    = "bounds"
	PhaseCollide   = "collide"
)

// PhaseHook is called as each phase of a tick begins.
type PhaseHook func(phase string)

func (h PhaseHook) mark(phase string) {
	if h != nil {
		h(phase)
	}
}

// Step advances every bubble by one tick: integrate, reflect off the canvas
// edges, then detect and resolve pairwise collisions.
func Step(bubbles []components.Bubble, bounds Bounds, gravity r2.Vec, p *Params) StepResult {
	return step(bubbles, bounds, gravity, p, nil)
}

func step(bubbles []components.Bubble, bounds Bounds, gravity r2.Vec, p *Params, hook PhaseHook) StepResult {
	var res StepResult

	hook.mark(PhaseIntegrate)
	for i := range bubbles {
		integrate(&bubbles[i], gravity, p)
	}

	hook.mark(PhaseBounds)
	for i := range bubbles {
		res.Bounces += resolveBounds(&bubbles[i], bounds, p)
	}

	hook.mark(PhaseCollide)
	res.Collisions = resolvePairs(bubbles, p.Policy)
	if res.Collisions > 0 {
		// Separation may have pushed a bubble past an edge.
		for i := range bubbles {
			clampInside(&bubbles[i], bounds, p)
		}
	}

	for i := range bubbles {
		if !bubbles[i].CollisionEnabled {
			res.InGrace++
		}
	}

	return res
}
