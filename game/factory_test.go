package game

import (
	"testing"

	"github.com/pthm-cable/vehicles/components"
	"github.com/pthm-cable/vehicles/gene"
)

func TestRosterFromConfigCanonical(t *testing.T) {
	cfg := loadConfig(t, "")
	specs := RosterFromConfig(cfg)
	if len(specs) != 4 {
		t.Fatalf("got %d specs, want 4", len(specs))
	}
	for _, s := range specs {
		if len(s.Genes) != 2 {
			t.Errorf("%s has %d genes", s.Name, len(s.Genes))
		}
		if s.Pos != (components.Vec2{X: 640, Y: 360}) {
			t.Errorf("%s at %+v", s.Name, s.Pos)
		}
	}
}

func TestRosterFromConfigEntries(t *testing.T) {
	cfg := loadConfig(t, `
roster:
  - name: lefty
    wiring: crossed
    polarity: inhibitory
    sides: [left]
    x: 0.25
    heading: 90
  - wiring: straight
    polarity: excitatory
    x: 1.5
    y: -0.5
`)
	specs := RosterFromConfig(cfg)
	if len(specs) != 2 {
		t.Fatalf("got %d specs, want 2", len(specs))
	}

	lefty := specs[0]
	if lefty.Name != "lefty" || lefty.Heading != 90 {
		t.Errorf("lefty = %+v", lefty)
	}
	if len(lefty.Genes) != 1 {
		t.Fatalf("lefty has %d genes, want 1", len(lefty.Genes))
	}
	g := lefty.Genes[0]
	if g.SensorSide() != gene.Left || g.ActuatorSide() != gene.Right || g.Polarity() != gene.Inhibitory {
		t.Errorf("lefty gene = %v", g)
	}
	if lefty.Pos != (components.Vec2{X: 320, Y: 360}) {
		t.Errorf("lefty at %+v, want unset y to default to the centre", lefty.Pos)
	}

	second := specs[1]
	if second.Name != "straight-excitatory-1" {
		t.Errorf("default name = %q", second.Name)
	}
	if second.Pos != (components.Vec2{X: 640, Y: 360}) {
		t.Errorf("out-of-range fractions should wrap, got %+v", second.Pos)
	}
}

func TestLightsFromConfig(t *testing.T) {
	cfg := loadConfig(t, "world:\n  width: 2000\n  height: 1000\nlights:\n  - {x: 0.5, y: 0.5, radius: 0.1}\n")
	lights := LightsFromConfig(cfg)
	if len(lights) != 1 {
		t.Fatalf("got %d lights", len(lights))
	}
	want := components.Light{Pos: components.Vec2{X: 1000, Y: 500}, Radius: 100}
	if lights[0] != want {
		t.Errorf("light = %+v, want %+v", lights[0], want)
	}
	if b := BoundsFromConfig(cfg); b.Width != 2000 || b.Height != 1000 {
		t.Errorf("bounds = %+v", b)
	}
}
