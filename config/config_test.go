package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/vehicles/gene"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Screen.Width != 1280 || cfg.Screen.Height != 720 {
		t.Errorf("screen = %dx%d, want 1280x720", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Derived.WorldW32 != 1280 || cfg.Derived.WorldH32 != 720 {
		t.Errorf("world should default to screen size, got %vx%v", cfg.Derived.WorldW32, cfg.Derived.WorldH32)
	}
	if cfg.Vehicle.BodyRadius != 20 || cfg.Vehicle.StimulusScale != 0.01 || cfg.Vehicle.MinimumSpeed != 0.5 {
		t.Errorf("vehicle = %+v", cfg.Vehicle)
	}
	if len(cfg.Roster) != 0 {
		t.Errorf("default roster should be empty, got %d entries", len(cfg.Roster))
	}

	if len(cfg.Derived.Lights) != 1 {
		t.Fatalf("got %d lights, want 1", len(cfg.Derived.Lights))
	}
	l := cfg.Derived.Lights[0]
	if l.X != 960 || l.Y != 288 || l.Radius != 360 {
		t.Errorf("light = %+v, want {960 288 360}", l)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverlay(t *testing.T) {
	path := writeConfig(t, `
world:
  width: 2000
vehicle:
  minimum_speed: 1.5
lights:
  - {x: 0.5, y: 0.5, radius: 0.1}
  - {x: 0.1, y: 0.9, radius: 0}
roster:
  - name: lover
    wiring: straight
    polarity: Inhibitory
  - name: one-eyed
    wiring: crossed
    polarity: excitatory
    sides: [left]
    x: 0.25
    heading: 90
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Untouched fields keep their defaults.
	if cfg.Vehicle.BodyRadius != 20 {
		t.Errorf("BodyRadius = %v, want default 20", cfg.Vehicle.BodyRadius)
	}
	if cfg.Vehicle.MinimumSpeed != 1.5 {
		t.Errorf("MinimumSpeed = %v, want 1.5", cfg.Vehicle.MinimumSpeed)
	}
	if cfg.Derived.WorldW32 != 2000 || cfg.Derived.WorldH32 != 720 {
		t.Errorf("world = %vx%v, want 2000x720", cfg.Derived.WorldW32, cfg.Derived.WorldH32)
	}

	if len(cfg.Derived.Lights) != 2 {
		t.Fatalf("got %d lights, want 2", len(cfg.Derived.Lights))
	}
	if l := cfg.Derived.Lights[0]; l.X != 1000 || l.Y != 360 || l.Radius != 72 {
		t.Errorf("light 0 = %+v", l)
	}

	if len(cfg.Roster) != 2 {
		t.Fatalf("got %d roster entries, want 2", len(cfg.Roster))
	}
	r0, r1 := cfg.Roster[0], cfg.Roster[1]
	if r0.Wiring != gene.Straight || r0.Polarity != gene.Inhibitory || len(r0.Sides) != 0 {
		t.Errorf("roster[0] = %+v", r0)
	}
	if r1.Wiring != gene.Crossed || len(r1.Sides) != 1 || r1.Sides[0] != gene.Left {
		t.Errorf("roster[1] = %+v", r1)
	}
	if r1.X == nil || *r1.X != 0.25 || r1.Y != nil || r1.Heading != 90 {
		t.Errorf("roster[1] placement = x %v y %v heading %v", r1.X, r1.Y, r1.Heading)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad enum", "roster:\n  - wiring: diagonal\n"},
		{"bad yaml", "screen: [1, 2\n"},
		{"negative radius", "lights:\n  - {x: 0, y: 0, radius: -1}\n"},
		{"zero screen", "screen:\n  width: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Error("expected error")
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestStepsClamped(t *testing.T) {
	cfg, err := Load(writeConfig(t, "simulation:\n  steps_per_update: 0\n  max_steps_per_update: 0\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Simulation.StepsPerUpdate != 1 || cfg.Simulation.MaxStepsPerUpdate != 1 {
		t.Errorf("simulation = %+v, want steps clamped to 1", cfg.Simulation)
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
roster:
  - name: coward
    wiring: straight
    polarity: excitatory
`))
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "effective.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	back, err := Load(path)
	if err != nil {
		t.Fatalf("reloading written config: %v", err)
	}
	if len(back.Roster) != 1 || back.Roster[0].Name != "coward" || back.Roster[0].Polarity != gene.Excitatory {
		t.Errorf("roster after round trip = %+v", back.Roster)
	}
	if back.Derived.WorldW32 != cfg.Derived.WorldW32 {
		t.Errorf("world width %v, want %v", back.Derived.WorldW32, cfg.Derived.WorldW32)
	}
}

func TestCfgBeforeInitPanics(t *testing.T) {
	saved := global
	global = nil
	defer func() {
		global = saved
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	Cfg()
}
