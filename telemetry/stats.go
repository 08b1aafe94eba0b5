package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population at window end
	Bubbles  int `csv:"bubbles"`
	Capacity int `csv:"capacity"`
	InGrace  int `csv:"in_grace"`

	// Events during window
	Collisions int `csv:"collisions"`
	Bounces    int `csv:"bounces"`
	Spawns     int `csv:"spawns"`

	// Speed distribution (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`

	KineticEnergy float64 `csv:"kinetic_energy"` // Radius-weighted

	GravityX   float64 `csv:"gravity_x"`
	GravityY   float64 `csv:"gravity_y"`
	GravityDir int     `csv:"gravity_dir"` // -1 when no target
}

// ComputeSpeedStats calculates mean, std, and percentiles from speed values.
// Percentiles use the empirical quantile. Std is 0 for fewer than two values.
func ComputeSpeedStats(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	if n == 1 {
		mean = values[0]
	} else {
		mean, std = stat.MeanStdDev(values, nil)
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = stat.Quantile(0.10, stat.Empirical, sorted, nil)
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.90, stat.Empirical, sorted, nil)

	return mean, std, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("bubbles", s.Bubbles),
		slog.Int("in_grace", s.InGrace),
		slog.Int("collisions", s.Collisions),
		slog.Int("bounces", s.Bounces),
		slog.Int("spawns", s.Spawns),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("kinetic_energy", s.KineticEnergy),
		slog.Int("gravity_dir", s.GravityDir),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"bubbles", s.Bubbles,
		"capacity", s.Capacity,
		"in_grace", s.InGrace,
		"collisions", s.Collisions,
		"bounces", s.Bounces,
		"spawns", s.Spawns,
		"speed_mean", s.SpeedMean,
		"speed_std", s.SpeedStd,
		"speed_p10", s.SpeedP10,
		"speed_p50", s.SpeedP50,
		"speed_p90", s.SpeedP90,
		"kinetic_energy", s.KineticEnergy,
		"gravity_x", s.GravityX,
		"gravity_y", s.GravityY,
		"gravity_dir", s.GravityDir,
	)
}
