// Package telemetry provides windowed simulation stats, performance timing
// and CSV output.
package telemetry

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/bubbles/components"
)

// Collector accumulates events within time windows and produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	collisions int
	bounces    int
	spawns     int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int32(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordStep adds the event counts of one tick.
func (c *Collector) RecordStep(collisions, bounces, spawns int) {
	c.collisions += collisions
	c.bounces += bounces
	c.spawns += spawns
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats from the bubbles at window end and resets
// counters for the next window.
func (c *Collector) Flush(currentTick int32, bubbles []components.Bubble, capacity int, gravity components.Gravity) WindowStats {
	speeds := make([]float64, len(bubbles))
	var energy float64
	inGrace := 0
	for i := range bubbles {
		b := &bubbles[i]
		speeds[i] = b.Speed()
		// Radius stands in for mass, as in collision resolution.
		energy += 0.5 * b.Radius * r2.Norm2(b.Vel)
		if !b.CollisionEnabled {
			inGrace++
		}
	}
	mean, std, p10, p50, p90 := ComputeSpeedStats(speeds)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		Bubbles:  len(bubbles),
		Capacity: capacity,
		InGrace:  inGrace,

		Collisions: c.collisions,
		Bounces:    c.bounces,
		Spawns:     c.spawns,

		SpeedMean: mean,
		SpeedStd:  std,
		SpeedP10:  p10,
		SpeedP50:  p50,
		SpeedP90:  p90,

		KineticEnergy: energy,

		GravityX:   gravity.X,
		GravityY:   gravity.Y,
		GravityDir: gravity.Direction,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.collisions = 0
	c.bounces = 0
	c.spawns = 0

	return stats
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
