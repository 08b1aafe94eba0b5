// Package game drives the bubble simulation frame by frame: input, ticks,
// drawing and telemetry.
package game

import (
	"fmt"
	"log/slog"

	"github.com/pthm-cable/bubbles/config"
	"github.com/pthm-cable/bubbles/renderer"
	"github.com/pthm-cable/bubbles/systems"
	"github.com/pthm-cable/bubbles/telemetry"
	"github.com/pthm-cable/bubbles/ui"
)

// maxStepsPerUpdate caps the speed multiplier.
const maxStepsPerUpdate = 10

// Options configures a new Game.
type Options struct {
	Seed           int64
	Headless       bool
	LogStats       bool
	StatsWindowSec float64 // 0 = use config
	OutputDir      string  // CSV logs and config copy; empty = disabled
	SpritePath     string  // Overrides sprite.path
	StepsPerUpdate int

	// Config overrides the global config when set.
	Config *config.Config

	// StatsCallback receives every flushed stats window.
	StatsCallback func(telemetry.WindowStats)
}

// Game holds the complete frame-driver state.
type Game struct {
	cfg  *config.Config
	sim  *systems.Simulation

	// Rendering (nil in headless mode)
	surface  renderer.Surface
	sprite   *renderer.Sprite
	bubbles  *renderer.BubbleRenderer
	hud      *ui.HUD
	controls *ui.ControlsPanel

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	statsCallback func(telemetry.WindowStats)
	logStats      bool

	headless       bool
	paused         bool
	stepsPerUpdate int

	screenWidth, screenHeight float32
}

// NewGameWithOptions creates a game. In graphical mode it must be called
// after the window is created, since it loads the bubble sprite.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Cfg()
	}

	params, err := systems.ParamsFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("simulation params: %w", err)
	}

	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		statsWindow = opts.StatsWindowSec
	}

	steps := opts.StepsPerUpdate
	if steps < 1 {
		steps = 1
	}

	g := &Game{
		cfg:            cfg,
		collector:      telemetry.NewCollector(statsWindow, params.DT),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		statsCallback:  opts.StatsCallback,
		logStats:       opts.LogStats,
		headless:       opts.Headless,
		stepsPerUpdate: steps,
		screenWidth:    float32(cfg.Screen.Width),
		screenHeight:   float32(cfg.Screen.Height),
	}

	if !g.headless {
		if err := g.initRendering(opts.SpritePath); err != nil {
			return nil, err
		}
	}

	bounds := systems.Bounds{Width: float64(g.screenWidth), Height: float64(g.screenHeight)}
	g.sim = systems.NewSimulation(params, bounds, opts.Seed)
	g.sim.SetPhaseHook(g.perfCollector.StartPhase)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		g.Unload()
		return nil, fmt.Errorf("output: %w", err)
	}
	g.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config copy", "error", err)
	}
	if dir := om.Dir(); dir != "" {
		slog.Info("writing telemetry", "dir", dir)
	}

	return g, nil
}

// Update handles input and runs stepsPerUpdate simulation ticks unless paused.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep()
	}
}

// UpdateHeadless runs stepsPerUpdate ticks without touching the window.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep()
	}
}

// simulationStep runs a single tick and its telemetry.
func (g *Game) simulationStep() {
	g.perfCollector.StartTick()

	res := g.sim.Update()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.collector.RecordStep(res.Collisions, res.Bounces, res.Spawned)
	g.flushTelemetry()

	g.perfCollector.EndTick()
}

// Resize applies a new canvas size.
func (g *Game) Resize(width, height float32) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == g.screenWidth && height == g.screenHeight {
		return
	}
	g.screenWidth = width
	g.screenHeight = height
	g.sim.SetBounds(float64(width), float64(height))
}

// Unload frees resources and closes output files.
func (g *Game) Unload() {
	if g.sprite != nil {
		g.sprite.Unload()
		g.sprite = nil
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
	g.outputManager = nil
}

// Tick returns the number of completed simulation ticks.
func (g *Game) Tick() int32 {
	return g.sim.Tick()
}

// Simulation exposes the underlying simulation.
func (g *Game) Simulation() *systems.Simulation {
	return g.sim
}
