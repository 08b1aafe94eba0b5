package main

import (
	"github.com/pthm-cable/bubbles/config"
)

// ParamSpec describes one tunable config field.
type ParamSpec struct {
	Name    string
	Path    string // YAML path, for logs
	Min     float64
	Max     float64
	Default float64

	field func(*config.Config) *float64
}

func (s ParamSpec) clamp(v float64) float64 {
	return max(s.Min, min(s.Max, v))
}

// ParamVector is the ordered search space.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector returns the motion parameters the tuner searches over.
func NewParamVector() *ParamVector {
	return &ParamVector{
		Specs: []ParamSpec{
			{Name: "radius", Path: "bubbles.radius", Min: 15, Max: 60, Default: 40,
				field: func(c *config.Config) *float64 { return &c.Bubbles.Radius }},
			{Name: "spawn_min_speed", Path: "spawn.min_speed", Min: 0.2, Max: 3, Default: 1,
				field: func(c *config.Config) *float64 { return &c.Spawn.MinSpeed }},
			{Name: "spawn_max_speed", Path: "spawn.max_speed", Min: 1, Max: 6, Default: 2,
				field: func(c *config.Config) *float64 { return &c.Spawn.MaxSpeed }},
			{Name: "max_speed", Path: "physics.max_speed", Min: 2, Max: 12, Default: 6,
				field: func(c *config.Config) *float64 { return &c.Physics.MaxSpeed }},
			{Name: "gravity_strength", Path: "gravity.strength", Min: 0, Max: 0.1, Default: 0.02,
				field: func(c *config.Config) *float64 { return &c.Gravity.Strength }},
			{Name: "gravity_lerp", Path: "gravity.lerp", Min: 0.001, Max: 0.1, Default: 0.01,
				field: func(c *config.Config) *float64 { return &c.Gravity.Lerp }},
			{Name: "gravity_interval", Path: "gravity.interval", Min: 1, Max: 15, Default: 5,
				field: func(c *config.Config) *float64 { return &c.Gravity.Interval }},
		},
	}
}

// Dim returns the number of parameters.
func (pv *ParamVector) Dim() int {
	return len(pv.Specs)
}

func (pv *ParamVector) mapEach(v []float64, f func(ParamSpec, float64) float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		out[i] = f(spec, v[i])
	}
	return out
}

// DefaultVector returns the default raw values.
func (pv *ParamVector) DefaultVector() []float64 {
	return pv.mapEach(make([]float64, len(pv.Specs)), func(s ParamSpec, _ float64) float64 { return s.Default })
}

// Normalize maps raw values onto the unit cube.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	return pv.mapEach(raw, func(s ParamSpec, v float64) float64 { return (v - s.Min) / (s.Max - s.Min) })
}

// Denormalize maps unit-cube values back to raw values. Results may fall
// outside the bounds; see Clamp.
func (pv *ParamVector) Denormalize(normalized []float64) []float64 {
	return pv.mapEach(normalized, func(s ParamSpec, v float64) float64 { return s.Min + v*(s.Max-s.Min) })
}

// Clamp bounds every value to its spec.
func (pv *ParamVector) Clamp(v []float64) []float64 {
	return pv.mapEach(v, func(s ParamSpec, v float64) float64 { return s.clamp(v) })
}

// ApplyToConfig writes clamped values into cfg and repairs combinations
// the search can produce but the simulation rejects.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) {
	for i, spec := range pv.Specs {
		*spec.field(cfg) = spec.clamp(values[i])
	}

	if cfg.Spawn.MinSpeed > cfg.Spawn.MaxSpeed {
		cfg.Spawn.MinSpeed, cfg.Spawn.MaxSpeed = cfg.Spawn.MaxSpeed, cfg.Spawn.MinSpeed
	}
	if cfg.Bubbles.RadiusJitter >= cfg.Bubbles.Radius {
		cfg.Bubbles.RadiusJitter = 0
	}
}

// ExtractFromConfig reads the current values out of cfg.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, spec := range pv.Specs {
		out[i] = *spec.field(cfg)
	}
	return out
}
