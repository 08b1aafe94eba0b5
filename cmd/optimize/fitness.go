package main

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/bubbles/config"
	"github.com/pthm-cable/bubbles/game"
	"github.com/pthm-cable/bubbles/telemetry"
)

// Targets describe the motion the tuner looks for.
type Targets struct {
	Speed         float64 // Median bubble speed in pixels per tick
	CollisionRate float64 // Collisions per bubble per second
}

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params      *ParamVector
	maxTicks    int32
	seeds       []int64
	baseConfig  *config.Config
	targets     Targets
	statsWindow float64

	mu          sync.Mutex
	lastQuality float64 // quality from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []int64, baseCfg *config.Config, targets Targets) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxTicks:    maxTicks,
		seeds:       seeds,
		baseConfig:  baseCfg,
		targets:     targets,
		statsWindow: 5.0,
	}
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// Evaluate computes fitness for a parameter vector (lower = better).
// Fitness is the negated mean quality across seeds.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	qualities := make([]float64, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			windows, err := fe.runSimulation(x, s)
			if err != nil {
				return
			}
			qualities[idx] = fe.computeQuality(windows)
		}(i, seed)
	}
	wg.Wait()

	quality := stat.Mean(qualities, nil)

	fe.mu.Lock()
	fe.lastQuality = quality
	fe.mu.Unlock()

	return -quality
}

// runSimulation executes a single headless simulation run and returns its windows.
func (fe *FitnessEvaluator) runSimulation(x []float64, seed int64) ([]telemetry.WindowStats, error) {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	var windows []telemetry.WindowStats
	g, err := game.NewGameWithOptions(game.Options{
		Seed:           seed,
		Headless:       true,
		StatsWindowSec: fe.statsWindow,
		StepsPerUpdate: 1,
		Config:         cfg,
		StatsCallback: func(stats telemetry.WindowStats) {
			windows = append(windows, stats)
		},
	})
	if err != nil {
		return nil, err
	}
	defer g.Unload()

	for g.Tick() < fe.maxTicks {
		g.UpdateHeadless()
	}
	return windows, nil
}

// copyConfig creates a copy of the base config. Config holds only value
// fields, so a struct copy is deep.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}

// Quality component weights.
const (
	qualityWeightSpeed     = 0.40
	qualityWeightCollision = 0.35
	qualityWeightStability = 0.25

	qualityWarmupWindows = 2 // skip first N windows while the store fills
)

// computeQuality computes motion quality ∈ [0, 1] from window stats.
func (fe *FitnessEvaluator) computeQuality(windows []telemetry.WindowStats) float64 {
	if len(windows) <= qualityWarmupWindows {
		return 0
	}
	valid := windows[qualityWarmupWindows:]

	var speedSum, collSum float64
	energies := make([]float64, 0, len(valid))

	for _, w := range valid {
		if w.Bubbles == 0 {
			continue
		}

		// 1. Median speed close to target
		speedSum += gaussian(w.SpeedP50, fe.targets.Speed, 0.75)

		// 2. Collision rate close to target
		duration := float64(w.WindowEndTick-w.WindowStartTick) / fe.baseConfig.Derived.TicksPerSecond
		rate := 0.0
		if duration > 0 {
			rate = float64(w.Collisions) / float64(w.Bubbles) / duration
		}
		collSum += gaussian(rate, fe.targets.CollisionRate, fe.targets.CollisionRate+0.1)

		energies = append(energies, w.KineticEnergy)
	}

	if len(energies) == 0 {
		return 0
	}
	n := float64(len(energies))

	// 3. Kinetic energy stability (CV across windows)
	stabilityScore := 0.0
	if len(energies) >= 2 {
		c := cv(energies)
		stabilityScore = math.Exp(-c * c)
	}

	quality := qualityWeightSpeed*speedSum/n +
		qualityWeightCollision*collSum/n +
		qualityWeightStability*stabilityScore

	return clamp01(quality)
}

func gaussian(x, mu, sigma float64) float64 {
	d := (x - mu) / sigma
	return math.Exp(-d * d)
}

// cv computes the coefficient of variation (std/mean) for a slice of values.
func cv(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	mean, std := stat.MeanStdDev(values, nil)
	if mean == 0 {
		return 0
	}
	return std / mean
}

// clamp01 clamps x to [0, 1].
func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
