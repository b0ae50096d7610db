package renderer

import (
	"math"
	"testing"

	"github.com/pthm-cable/vehicles/components"
	"github.com/pthm-cable/vehicles/gene"
)

func near(a, b components.Vec2) bool {
	return math.Abs(float64(a.X-b.X)) < 1e-4 && math.Abs(float64(a.Y-b.Y)) < 1e-4
}

func TestBodyAt(t *testing.T) {
	d := float32(20 * math.Sqrt2 / 2)
	b := bodyAt(components.Vec2{X: 100, Y: 50}, 0, 20)

	if b.Rotation != 45 {
		t.Errorf("rotation = %v, want 45", b.Rotation)
	}
	tests := []struct {
		name      string
		got, want components.Vec2
	}{
		{"left sensor", b.Sensors[gene.Left], components.Vec2{X: 100 + d, Y: 50 + d}},
		{"right sensor", b.Sensors[gene.Right], components.Vec2{X: 100 + d, Y: 50 - d}},
		{"left actuator", b.Actuators[gene.Left], components.Vec2{X: 100 - d, Y: 50 + d}},
		{"right actuator", b.Actuators[gene.Right], components.Vec2{X: 100 - d, Y: 50 - d}},
	}
	for _, tt := range tests {
		if !near(tt.got, tt.want) {
			t.Errorf("%s = %+v, want %+v", tt.name, tt.got, tt.want)
		}
	}
}

func TestBodyAtHeading(t *testing.T) {
	b := bodyAt(components.Vec2{}, 90, 10)
	if b.Rotation != 135 {
		t.Errorf("rotation = %v, want 135", b.Rotation)
	}
	// Facing +y, the left sensor is toward -x.
	if b.Sensors[gene.Left].X >= 0 || b.Sensors[gene.Left].Y <= 0 {
		t.Errorf("left sensor at %+v", b.Sensors[gene.Left])
	}
}

func TestWires(t *testing.T) {
	b := bodyAt(components.Vec2{}, 0, 10)

	straight := b.wires(gene.Pair(gene.Straight, gene.Excitatory))
	if len(straight) != 2 {
		t.Fatalf("got %d wires", len(straight))
	}
	if straight[0].From != b.Sensors[gene.Left] || straight[0].To != b.Actuators[gene.Left] {
		t.Errorf("straight left wire = %+v", straight[0])
	}

	crossed := b.wires(gene.Pair(gene.Crossed, gene.Inhibitory))
	if crossed[0].From != b.Sensors[gene.Left] || crossed[0].To != b.Actuators[gene.Right] {
		t.Errorf("crossed left wire = %+v", crossed[0])
	}
	if crossed[1].Polarity != gene.Inhibitory {
		t.Errorf("polarity = %v", crossed[1].Polarity)
	}

	if w := b.wires(nil); len(w) != 0 {
		t.Errorf("no genes gave %d wires", len(w))
	}
}

func TestAlphaByte(t *testing.T) {
	tests := []struct {
		in   float32
		want uint8
	}{
		{0, 0},
		{0.2, 51},
		{1, 255},
		{-1, 0},
		{2, 255},
	}
	for _, tt := range tests {
		if got := alphaByte(tt.in); got != tt.want {
			t.Errorf("alphaByte(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
