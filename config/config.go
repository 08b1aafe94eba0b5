// Package config provides configuration loading and access for the animation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all animation configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Viewport  ViewportConfig  `yaml:"viewport"`
	Bubbles   BubblesConfig   `yaml:"bubbles"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Collision CollisionConfig `yaml:"collision"`
	Gravity   GravityConfig   `yaml:"gravity"`
	Color     ColorConfig     `yaml:"color"`
	Sprite    SpriteConfig    `yaml:"sprite"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// ViewportConfig controls what happens when the window is resized.
type ViewportConfig struct {
	Resizable     bool `yaml:"resizable"`
	ResetOnResize bool `yaml:"reset_on_resize"` // Clear and regenerate the store on resize
}

// BubblesConfig holds per-bubble creation parameters and the store capacity.
type BubblesConfig struct {
	Initial      int     `yaml:"initial"`       // Bubbles created at start
	Capacity     int     `yaml:"capacity"`      // Store ceiling (20, 25, 28 or 100 in practice)
	Radius       float64 `yaml:"radius"`        // Base radius in pixels
	RadiusJitter float64 `yaml:"radius_jitter"` // Uniform +/- variation applied at creation
	MinOpacity   float64 `yaml:"min_opacity"`
	MaxOpacity   float64 `yaml:"max_opacity"`
}

// SpawnConfig holds spawn cadence and initial motion.
type SpawnConfig struct {
	Mode     string  `yaml:"mode"`      // "random" or "corner"
	Interval float64 `yaml:"interval"`  // Seconds between scheduled spawns (0 = disabled)
	MinSpeed float64 `yaml:"min_speed"` // Pixels per tick
	MaxSpeed float64 `yaml:"max_speed"` // Pixels per tick
}

// PhysicsConfig holds motion and boundary parameters.
type PhysicsConfig struct {
	DT            float64 `yaml:"dt"`             // Simulated seconds per tick
	Boundary      string  `yaml:"boundary"`       // "radius", "half_radius" or "phase"
	PhaseDistance float64 `yaml:"phase_distance"` // Overlap allowed past an edge in "phase" mode
	MaxSpeed      float64 `yaml:"max_speed"`      // Velocity cap in pixels per tick (0 = uncapped)
}

// CollisionConfig holds bubble-bubble collision parameters.
type CollisionConfig struct {
	Policy      string  `yaml:"policy"`       // "elastic", "angle" or "none"
	GracePeriod float64 `yaml:"grace_period"` // Seconds a spawn-overlapping bubble ignores collisions
}

// GravityConfig holds the drifting directional bias parameters.
type GravityConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Strength float64 `yaml:"strength"` // Velocity added per tick at full bias
	Interval float64 `yaml:"interval"` // Seconds between direction changes
	Lerp     float64 `yaml:"lerp"`     // Fraction of remaining distance to target covered per tick
}

// ColorConfig holds hue cycle parameters.
type ColorConfig struct {
	HueRate    float64 `yaml:"hue_rate"` // Degrees per tick
	Saturation float64 `yaml:"saturation"`
	Value      float64 `yaml:"value"`
	Background string  `yaml:"background"` // Hex color, e.g. "#000000"
}

// SpriteConfig holds the bubble sprite source.
type SpriteConfig struct {
	Path    string  `yaml:"path"`    // Image file; empty = generate procedurally
	Size    int     `yaml:"size"`    // Procedural sprite size in pixels
	Density float64 `yaml:"density"` // Procedural radial gradient density
	Rim     float64 `yaml:"rim"`     // Procedural rim thickness as a fraction of radius
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	TicksPerSecond float64 // 1 / Physics.DT
	InitialCount   int     // Bubbles.Initial clamped to capacity
	ScreenW        float64 // Screen.Width as float64
	ScreenH        float64 // Screen.Height as float64
}

// Known enum values.
var (
	SpawnModes        = []string{"random", "corner"}
	BoundaryModes     = []string{"radius", "half_radius", "phase"}
	CollisionPolicies = []string{"elastic", "angle", "none"}
)

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Defaults returns a fresh copy of the embedded defaults.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c *Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if c.Bubbles.Capacity < 1 {
		return fmt.Errorf("bubbles.capacity must be at least 1, got %d", c.Bubbles.Capacity)
	}
	if c.Bubbles.Initial < 0 {
		return fmt.Errorf("bubbles.initial must not be negative, got %d", c.Bubbles.Initial)
	}
	if c.Bubbles.Radius <= 0 {
		return fmt.Errorf("bubbles.radius must be positive, got %g", c.Bubbles.Radius)
	}
	if c.Bubbles.RadiusJitter < 0 || c.Bubbles.RadiusJitter >= c.Bubbles.Radius {
		return fmt.Errorf("bubbles.radius_jitter must be in [0, radius), got %g", c.Bubbles.RadiusJitter)
	}
	if c.Bubbles.MinOpacity < 0 || c.Bubbles.MaxOpacity > 1 || c.Bubbles.MinOpacity > c.Bubbles.MaxOpacity {
		return fmt.Errorf("bubbles opacity range [%g, %g] must lie within [0, 1]", c.Bubbles.MinOpacity, c.Bubbles.MaxOpacity)
	}
	if c.Spawn.MinSpeed < 0 || c.Spawn.MinSpeed > c.Spawn.MaxSpeed {
		return fmt.Errorf("spawn speed range [%g, %g] is invalid", c.Spawn.MinSpeed, c.Spawn.MaxSpeed)
	}
	if c.Physics.DT <= 0 {
		return fmt.Errorf("physics.dt must be positive, got %g", c.Physics.DT)
	}
	if c.Physics.PhaseDistance < 0 {
		return fmt.Errorf("physics.phase_distance must not be negative, got %g", c.Physics.PhaseDistance)
	}
	if err := oneOf("spawn.mode", c.Spawn.Mode, SpawnModes); err != nil {
		return err
	}
	if err := oneOf("physics.boundary", c.Physics.Boundary, BoundaryModes); err != nil {
		return err
	}
	if err := oneOf("collision.policy", c.Collision.Policy, CollisionPolicies); err != nil {
		return err
	}
	if c.Gravity.Lerp < 0 || c.Gravity.Lerp > 1 {
		return fmt.Errorf("gravity.lerp must be in [0, 1], got %g", c.Gravity.Lerp)
	}
	return nil
}

func oneOf(field, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("%s: unknown value %q (want one of %v)", field, value, allowed)
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.TicksPerSecond = 1.0 / c.Physics.DT
	c.Derived.InitialCount = min(c.Bubbles.Initial, c.Bubbles.Capacity)
	c.Derived.ScreenW = float64(c.Screen.Width)
	c.Derived.ScreenH = float64(c.Screen.Height)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
