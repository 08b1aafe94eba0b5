// Package systems contains the bubble simulation: store, motion, collisions,
// gravity, color cycling and the simulation context that owns them.
package systems

import (
	"fmt"

	"github.com/pthm-cable/bubbles/components"
	"github.com/pthm-cable/bubbles/config"
)

// Bounds represents the canvas the bubbles live in.
type Bounds struct {
	Width, Height float64
}

// SpawnParams control how new bubbles are created.
type SpawnParams struct {
	Mode         components.SpawnMode
	Radius       float64
	RadiusJitter float64
	MinOpacity   float64
	MaxOpacity   float64
	MinSpeed     float64
	MaxSpeed     float64
}

// Params is the single configuration surface for the simulation.
type Params struct {
	DT float64 // Simulated seconds per tick

	Initial       int
	Capacity      int
	SpawnInterval float64
	Spawn         SpawnParams
	ResetOnResize bool

	Boundary      components.BoundaryMode
	PhaseDistance float64
	MaxSpeed      float64

	Policy      components.CollisionPolicy
	GracePeriod float64

	GravityEnabled  bool
	GravityStrength float64
	GravityInterval float64
	GravityLerp     float64

	HueRate float64
}

// ParamsFromConfig builds simulation parameters from a loaded config.
func ParamsFromConfig(cfg *config.Config) (Params, error) {
	mode, err := components.ParseSpawnMode(cfg.Spawn.Mode)
	if err != nil {
		return Params{}, fmt.Errorf("spawn: %w", err)
	}
	boundary, err := components.ParseBoundaryMode(cfg.Physics.Boundary)
	if err != nil {
		return Params{}, fmt.Errorf("physics: %w", err)
	}
	policy, err := components.ParseCollisionPolicy(cfg.Collision.Policy)
	if err != nil {
		return Params{}, fmt.Errorf("collision: %w", err)
	}

	return Params{
		DT:            cfg.Physics.DT,
		Initial:       cfg.Derived.InitialCount,
		Capacity:      cfg.Bubbles.Capacity,
		SpawnInterval: cfg.Spawn.Interval,
		Spawn: SpawnParams{
			Mode:         mode,
			Radius:       cfg.Bubbles.Radius,
			RadiusJitter: cfg.Bubbles.RadiusJitter,
			MinOpacity:   cfg.Bubbles.MinOpacity,
			MaxOpacity:   cfg.Bubbles.MaxOpacity,
			MinSpeed:     cfg.Spawn.MinSpeed,
			MaxSpeed:     cfg.Spawn.MaxSpeed,
		},
		ResetOnResize:   cfg.Viewport.ResetOnResize,
		Boundary:        boundary,
		PhaseDistance:   cfg.Physics.PhaseDistance,
		MaxSpeed:        cfg.Physics.MaxSpeed,
		Policy:          policy,
		GracePeriod:     cfg.Collision.GracePeriod,
		GravityEnabled:  cfg.Gravity.Enabled,
		GravityStrength: cfg.Gravity.Strength,
		GravityInterval: cfg.Gravity.Interval,
		GravityLerp:     cfg.Gravity.Lerp,
		HueRate:         cfg.Color.HueRate,
	}, nil
}

// tolerance returns how far a bubble of radius r may cross an edge.
func (p *Params) tolerance(r float64) float64 {
	switch p.Boundary {
	case components.BoundaryHalfRadius:
		return r / 2
	case components.BoundaryPhase:
		return p.PhaseDistance
	default:
		return 0
	}
}
