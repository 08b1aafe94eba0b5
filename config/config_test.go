package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if cfg.Bubbles.Capacity != 25 {
		t.Errorf("capacity = %d, want 25", cfg.Bubbles.Capacity)
	}
	if cfg.Collision.Policy != "elastic" {
		t.Errorf("policy = %q, want elastic", cfg.Collision.Policy)
	}
	if cfg.Derived.TicksPerSecond < 59.9 || cfg.Derived.TicksPerSecond > 60.1 {
		t.Errorf("ticks per second = %f, want 60", cfg.Derived.TicksPerSecond)
	}
	if cfg.Derived.ScreenW != 1280 || cfg.Derived.ScreenH != 720 {
		t.Errorf("derived screen = %fx%f, want 1280x720", cfg.Derived.ScreenW, cfg.Derived.ScreenH)
	}
}

func TestLoadOverlaysUserFile(t *testing.T) {
	path := writeConfig(t, `
bubbles:
  capacity: 100
  initial: 150
gravity:
  enabled: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Bubbles.Capacity != 100 {
		t.Errorf("capacity = %d, want 100", cfg.Bubbles.Capacity)
	}
	if !cfg.Gravity.Enabled {
		t.Error("gravity should be enabled by the user file")
	}
	// Fields absent from the user file keep their defaults
	if cfg.Bubbles.Radius != 40 {
		t.Errorf("radius = %f, want default 40", cfg.Bubbles.Radius)
	}
	if cfg.Derived.InitialCount != 100 {
		t.Errorf("initial count = %d, want clamp to capacity 100", cfg.Derived.InitialCount)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{"zero radius", "bubbles:\n  radius: 0\n", "bubbles.radius"},
		{"zero capacity", "bubbles:\n  capacity: 0\n", "bubbles.capacity"},
		{"unknown policy", "collision:\n  policy: bounce\n", "collision.policy"},
		{"unknown boundary", "physics:\n  boundary: wrap\n", "physics.boundary"},
		{"unknown spawn mode", "spawn:\n  mode: center\n", "spawn.mode"},
		{"opacity out of range", "bubbles:\n  max_opacity: 1.5\n", "opacity"},
		{"bad lerp", "gravity:\n  lerp: 2\n", "gravity.lerp"},
		{"malformed yaml", "bubbles: [\n", "parsing config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestWriteYAMLRoundtrip(t *testing.T) {
	cfg := Defaults()
	cfg.Collision.Policy = "angle"
	cfg.Physics.Boundary = "phase"
	cfg.Physics.PhaseDistance = 12

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if loaded.Collision.Policy != "angle" || loaded.Physics.Boundary != "phase" || loaded.Physics.PhaseDistance != 12 {
		t.Errorf("roundtrip lost values: policy=%q boundary=%q phase=%f",
			loaded.Collision.Policy, loaded.Physics.Boundary, loaded.Physics.PhaseDistance)
	}
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("Cfg() should panic before Init()")
		}
	}()
	Cfg()
}
