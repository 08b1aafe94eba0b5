package telemetry

import (
	"log/slog"
	"time"
)

// Phase names for a simulation tick. The first four match the phase hook
// names reported by systems.Simulation.
const (
	PhaseTimers    = "timers"
	PhaseIntegrate = "integrate"
	PhaseBounds    = "bounds"
	PhaseCollide   = "collide"
	PhaseTelemetry = "telemetry"
)

var phaseOrder = [...]string{PhaseTimers, PhaseIntegrate, PhaseBounds, PhaseCollide, PhaseTelemetry}

const numPhases = len(phaseOrder)

type phaseTimes [numPhases]time.Duration

func phaseIndex(name string) int {
	for i, p := range phaseOrder {
		if p == name {
			return i
		}
	}
	return -1
}

// PerfCollector times ticks and their phases over a ring of the last
// windowSize ticks. Time spent in an unknown phase counts toward the tick
// but no phase.
type PerfCollector struct {
	now func() time.Time

	ticks  []time.Duration
	phases []phaseTimes
	next   int
	filled int

	current    phaseTimes
	tickStart  time.Time
	phaseStart time.Time
	phase      int

	lastFrame time.Time
	frame     time.Duration
}

// NewPerfCollector creates a collector averaging over windowSize ticks
// (60 when windowSize < 1).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		now:    time.Now,
		ticks:  make([]time.Duration, windowSize),
		phases: make([]phaseTimes, windowSize),
		phase:  -1,
	}
}

// StartTick begins timing a new simulation tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = p.now()
	p.phaseStart = p.tickStart
	p.current = phaseTimes{}
	p.phase = -1
}

// StartPhase closes the running phase and opens the named one.
func (p *PerfCollector) StartPhase(name string) {
	now := p.now()
	p.closePhase(now)
	p.phase = phaseIndex(name)
	p.phaseStart = now
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.phase >= 0 {
		p.current[p.phase] += now.Sub(p.phaseStart)
	}
}

// EndTick closes the running phase and records the tick.
func (p *PerfCollector) EndTick() {
	now := p.now()
	p.closePhase(now)
	p.phase = -1

	p.ticks[p.next] = now.Sub(p.tickStart)
	p.phases[p.next] = p.current
	p.next = (p.next + 1) % len(p.ticks)
	p.filled = min(p.filled+1, len(p.ticks))
}

// RecordFrame marks a rendered frame; FPS comes from the gap to the previous one.
func (p *PerfCollector) RecordFrame() {
	now := p.now()
	if !p.lastFrame.IsZero() {
		p.frame = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats holds aggregated performance statistics.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration

	// Per-phase averages and share of the average tick, keyed by phase name.
	// Phases that never ran are absent.
	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64

	TicksPerSecond float64

	// Graphics mode only
	FrameDuration time.Duration
	FPS           float64
}

// Stats aggregates the recorded window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{
		PhaseAvg:      make(map[string]time.Duration),
		PhasePct:      make(map[string]float64),
		FrameDuration: p.frame,
	}
	if p.frame > 0 {
		s.FPS = float64(time.Second) / float64(p.frame)
	}
	if p.filled == 0 {
		return s
	}

	var total time.Duration
	var sums phaseTimes
	for i, d := range p.ticks[:p.filled] {
		total += d
		if i == 0 || d < s.MinTickDuration {
			s.MinTickDuration = d
		}
		s.MaxTickDuration = max(s.MaxTickDuration, d)
		for j, pd := range p.phases[i] {
			sums[j] += pd
		}
	}

	n := time.Duration(p.filled)
	s.AvgTickDuration = total / n
	if s.AvgTickDuration > 0 {
		s.TicksPerSecond = float64(time.Second) / float64(s.AvgTickDuration)
	}
	for j, sum := range sums {
		if sum == 0 {
			continue
		}
		avg := sum / n
		s.PhaseAvg[phaseOrder[j]] = avg
		if s.AvgTickDuration > 0 {
			s.PhasePct[phaseOrder[j]] = float64(avg) / float64(s.AvgTickDuration) * 100
		}
	}
	return s
}

// LogStats logs performance statistics.
func (s PerfStats) LogStats() {
	slog.Info("perf", "stats", s)
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("min_tick_us", s.MinTickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Int("ticks_per_sec", int(s.TicksPerSecond)),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Int("fps", int(s.FPS)))
	}
	for _, phase := range phaseOrder {
		if pct, ok := s.PhasePct[phase]; ok && pct > 0.1 {
			attrs = append(attrs, slog.Float64(phase+"_pct", float64(int(pct*10))/10))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is the perf.csv row.
type PerfStatsCSV struct {
	WindowEnd    int32   `csv:"window_end"`
	AvgTickUS    int64   `csv:"avg_tick_us"`
	MinTickUS    int64   `csv:"min_tick_us"`
	MaxTickUS    int64   `csv:"max_tick_us"`
	TicksPerSec  float64 `csv:"ticks_per_sec"`
	FPS          float64 `csv:"fps"`
	TimersPct    float64 `csv:"timers_pct"`
	IntegratePct float64 `csv:"integrate_pct"`
	BoundsPct    float64 `csv:"bounds_pct"`
	CollidePct   float64 `csv:"collide_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV flattens s into a row for the window ending at windowEnd.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		AvgTickUS:    s.AvgTickDuration.Microseconds(),
		MinTickUS:    s.MinTickDuration.Microseconds(),
		MaxTickUS:    s.MaxTickDuration.Microseconds(),
		TicksPerSec:  s.TicksPerSecond,
		FPS:          s.FPS,
		TimersPct:    s.PhasePct[PhaseTimers],
		IntegratePct: s.PhasePct[PhaseIntegrate],
		BoundsPct:    s.PhasePct[PhaseBounds],
		CollidePct:   s.PhasePct[PhaseCollide],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}
