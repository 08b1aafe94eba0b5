package game

import (
	"log/slog"

	"github.com/pthm-cable/bubbles/telemetry"
)

// flushTelemetry closes the stats window when it is due and hands it to
// the callback, the log and the CSV output.
func (g *Game) flushTelemetry() {
	tick := g.sim.Tick()
	if !g.collector.ShouldFlush(tick) {
		return
	}

	stats := g.collector.Flush(tick, g.sim.Bubbles(), g.sim.Store().Cap(), g.sim.Gravity())
	perf := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}
	if g.logStats {
		stats.LogStats()
		perf.LogStats()
	}
	g.writeWindow(stats, perf)
}

// writeWindow appends the window to the CSV logs. Failures are logged and
// the run continues.
func (g *Game) writeWindow(stats telemetry.WindowStats, perf telemetry.PerfStats) {
	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "tick", stats.WindowEndTick, "error", err)
	}
	if err := g.outputManager.WritePerf(perf, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "tick", stats.WindowEndTick, "error", err)
	}
}
