package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/bubbles/config"
	"github.com/pthm-cable/bubbles/telemetry"
)

func newHeadlessGame(t *testing.T, opts Options) *Game {
	t.Helper()
	opts.Headless = true
	if opts.Config == nil {
		opts.Config = config.Defaults()
	}
	g, err := NewGameWithOptions(opts)
	if err != nil {
		t.Fatalf("NewGameWithOptions: %v", err)
	}
	t.Cleanup(g.Unload)
	return g
}

func TestHeadlessRun(t *testing.T) {
	var windows []telemetry.WindowStats
	g := newHeadlessGame(t, Options{
		Seed:           7,
		StepsPerUpdate: 4,
		StatsWindowSec: 1,
		StatsCallback: func(s telemetry.WindowStats) {
			windows = append(windows, s)
		},
	})

	for g.Tick() < 600 {
		g.UpdateHeadless()
	}

	if g.Tick() != 600 {
		t.Errorf("tick = %d, want 600", g.Tick())
	}
	// 60 ticks per one-second window.
	if len(windows) != 10 {
		t.Fatalf("windows = %d, want 10", len(windows))
	}

	last := windows[len(windows)-1]
	if last.Bubbles < 1 || last.Bubbles > last.Capacity {
		t.Errorf("bubbles = %d, capacity %d", last.Bubbles, last.Capacity)
	}
	spawns := 0
	for _, w := range windows {
		spawns += w.Spawns
	}
	// One initial bubble plus one spawn every half second.
	if last.Bubbles != 1+spawns {
		t.Errorf("bubbles = %d, want 1 + %d spawns", last.Bubbles, spawns)
	}
}

func TestHeadlessOutput(t *testing.T) {
	dir := t.TempDir()
	g := newHeadlessGame(t, Options{
		Seed:           3,
		StatsWindowSec: 0.5,
		OutputDir:      dir,
	})

	for g.Tick() < 120 {
		g.UpdateHeadless()
	}
	g.Unload()

	for _, name := range []string{"telemetry.csv", "perf.csv", "config.yaml"} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}
}

func TestHeadlessResize(t *testing.T) {
	cfg := config.Defaults()
	cfg.Bubbles.Initial = 10
	cfg.Derived.InitialCount = 10
	g := newHeadlessGame(t, Options{Seed: 1, Config: cfg})

	g.Resize(300, 200)
	b := g.Simulation().Bounds()
	if b.Width != 300 || b.Height != 200 {
		t.Errorf("bounds = %+v, want 300x200", b)
	}
	for i, bub := range g.Simulation().Bubbles() {
		if bub.Pos.X-bub.Radius < -1e-9 || bub.Pos.X+bub.Radius > 300+1e-9 {
			t.Errorf("bubble %d outside after resize: %+v", i, bub.Pos)
		}
	}

	// Degenerate sizes are ignored.
	g.Resize(0, 100)
	if g.Simulation().Bounds().Width != 300 {
		t.Error("zero width should be ignored")
	}
}
