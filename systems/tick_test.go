package systems

import (
	"testing"

	"github.com/pthm-cable/vehicles/components"
	"github.com/pthm-cable/vehicles/gene"
)

func TestCanonicalRoster(t *testing.T) {
	center := components.Vec2{X: 640, Y: 360}
	roster := CanonicalRoster(center)
	entries := CanonicalEntries()

	if len(roster) != 4 || len(entries) != 4 {
		t.Fatalf("roster size %d / %d, want 4", len(roster), len(entries))
	}

	wantNames := []string{
		"straight-excitatory",
		"straight-inhibitory",
		"crossed-excitatory",
		"crossed-inhibitory",
	}
	for i, v := range roster {
		if entries[i].Name != wantNames[i] {
			t.Errorf("entry %d name = %q, want %q", i, entries[i].Name, wantNames[i])
		}
		if v.Pos != center || v.Heading != 0 {
			t.Errorf("%s: pose (%+v, %v), want centre heading 0", wantNames[i], v.Pos, v.Heading)
		}
		if v.NumGenes() != 2 {
			t.Fatalf("%s: %d genes, want 2", wantNames[i], v.NumGenes())
		}
		if v.Gene(0).SensorSide() != gene.Left || v.Gene(1).SensorSide() != gene.Right {
			t.Errorf("%s: sensors not (left, right)", wantNames[i])
		}
		if v.Gene(0).Polarity() != v.Gene(1).Polarity() {
			t.Errorf("%s: mixed polarity", wantNames[i])
		}
	}

	if roster[0].Crossed() || roster[1].Crossed() {
		t.Error("straight vehicles reported crossed")
	}
	if !roster[2].Crossed() || !roster[3].Crossed() {
		t.Error("crossed vehicles reported straight")
	}
}

func TestSimulateTickSteering(t *testing.T) {
	b := Bounds{Width: 1000, Height: 1000}
	// Light on the vehicle's left.
	lights := []components.Light{{Pos: components.Vec2{X: 500, Y: 600}, Radius: 200}}

	tests := []struct {
		wiring    gene.Wiring
		polarity  gene.Polarity
		turnsLeft bool
	}{
		{gene.Straight, gene.Excitatory, false},
		{gene.Crossed, gene.Excitatory, true},
		{gene.Straight, gene.Inhibitory, true},
		{gene.Crossed, gene.Inhibitory, false},
	}
	for _, tt := range tests {
		t.Run(tt.wiring.String()+"-"+tt.polarity.String(), func(t *testing.T) {
			v := components.NewVehicle(gene.Pair(tt.wiring, tt.polarity), components.Vec2{X: 500, Y: 500}, 0)
			m := SimulateTick(&v, lights, b, DefaultParams())

			if got := v.Heading > 0; got != tt.turnsLeft {
				t.Errorf("heading %v after tick, turn %v, want turning left = %v", v.Heading, m.Turn, tt.turnsLeft)
			}
		})
	}
}

func TestSimulateTickWraps(t *testing.T) {
	b := Bounds{Width: 100, Height: 100}
	v := components.NewVehicle(nil, components.Vec2{X: 99.75}, 0)

	m := SimulateTick(&v, nil, b, DefaultParams())

	assertVec(t, v.Pos, components.Vec2{X: 0.25}, 1e-4)
	if m.Speed != DefaultMinimumSpeed {
		t.Errorf("Speed = %v, want %v", m.Speed, DefaultMinimumSpeed)
	}
	if v.LeftActivation != 0 || v.RightActivation != 0 {
		t.Error("activations not reset after tick")
	}
}

func TestSimulateTickDeterministic(t *testing.T) {
	b := Bounds{Width: 1280, Height: 720}
	lights := []components.Light{{Pos: components.Vec2{X: 960, Y: 288}, Radius: 360}}

	run := func() []components.Vehicle {
		roster := CanonicalRoster(b.Center())
		for step := 0; step < 500; step++ {
			for i := range roster {
				SimulateTick(&roster[i], lights, b, DefaultParams())
			}
		}
		return roster
	}

	a, c := run(), run()
	for i := range a {
		if a[i].Pos != c[i].Pos || a[i].Heading != c[i].Heading {
			t.Errorf("vehicle %d diverged: %+v vs %+v", i, a[i].Pos, c[i].Pos)
		}
		if a[i].Pos.X < 0 || a[i].Pos.X >= b.Width || a[i].Pos.Y < 0 || a[i].Pos.Y >= b.Height {
			t.Errorf("vehicle %d left the world: %+v", i, a[i].Pos)
		}
	}
}
