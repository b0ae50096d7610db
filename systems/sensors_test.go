package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/vehicles/components"
	"github.com/pthm-cable/vehicles/gene"
)

func TestSensorOffset(t *testing.T) {
	const r = 20
	left := SensorOffset(gene.Left, r)
	right := SensorOffset(gene.Right, r)

	if !approxEq(left.Len(), r, 1e-5) || !approxEq(right.Len(), r, 1e-5) {
		t.Errorf("sensors not on body radius: left %v, right %v", left.Len(), right.Len())
	}
	if left.X != right.X || left.Y != -right.Y {
		t.Errorf("sensors not mirrored: left %+v, right %+v", left, right)
	}
	if left.Y <= 0 {
		t.Errorf("left sensor should be on +y side of the body frame, got %+v", left)
	}
	if !approxEq(left.X, r*frac1Sqrt2, 1e-5) {
		t.Errorf("left.X = %v, want %v", left.X, r*frac1Sqrt2)
	}
}

func TestSensorPositionFollowsHeading(t *testing.T) {
	v := components.NewVehicle(nil, components.Vec2{X: 100, Y: 100}, 90)
	const r = 20

	// Facing +y, the left sensor is on the -x side.
	left := SensorPosition(&v, gene.Left, r)
	right := SensorPosition(&v, gene.Right, r)

	assertVec(t, left, components.Vec2{X: 100 - r*frac1Sqrt2, Y: 100 + r*frac1Sqrt2}, 1e-4)
	assertVec(t, right, components.Vec2{X: 100 + r*frac1Sqrt2, Y: 100 + r*frac1Sqrt2}, 1e-4)
}

func TestIntensity(t *testing.T) {
	light := components.Light{Pos: components.Vec2{X: 0, Y: 0}, Radius: 100}

	tests := []struct {
		name     string
		sensor   components.Vec2
		polarity gene.Polarity
		want     float32
	}{
		{"excitatory at centre", components.Vec2{}, gene.Excitatory, 100},
		{"excitatory inside", components.Vec2{X: 30, Y: 40}, gene.Excitatory, 50},
		{"excitatory at radius", components.Vec2{X: 100}, gene.Excitatory, 0},
		{"excitatory outside", components.Vec2{X: 300}, gene.Excitatory, 0},
		{"inhibitory at centre", components.Vec2{}, gene.Inhibitory, 0},
		{"inhibitory inside", components.Vec2{X: 30, Y: 40}, gene.Inhibitory, 50},
		{"inhibitory outside radius", components.Vec2{X: 300}, gene.Inhibitory, 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Intensity(tt.sensor, light, tt.polarity)
			if !approxEq(got, tt.want, 1e-4) {
				t.Errorf("Intensity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntensityZeroRadius(t *testing.T) {
	light := components.Light{Pos: components.Vec2{X: 10, Y: 0}}
	sensor := components.Vec2{}

	if got := Intensity(sensor, light, gene.Excitatory); got != 0 {
		t.Errorf("excitatory with zero radius = %v, want 0", got)
	}
	if got := Intensity(sensor, light, gene.Inhibitory); got != 10 {
		t.Errorf("inhibitory with zero radius = %v, want 10", got)
	}
}

func TestIntensityNeverNegative(t *testing.T) {
	light := components.Light{Pos: components.Vec2{X: 5, Y: 5}, Radius: 50}
	for x := float32(-500); x <= 500; x += 37 {
		for _, p := range []gene.Polarity{gene.Excitatory, gene.Inhibitory} {
			if got := Intensity(components.Vec2{X: x, Y: -x / 2}, light, p); got < 0 {
				t.Fatalf("Intensity(%v, %v) = %v, want >= 0", x, p, got)
			}
		}
	}
}

func TestStimulateScale(t *testing.T) {
	p := DefaultParams()
	v := components.NewVehicle(
		[]gene.Gene{gene.NewStraight(gene.Left, gene.Excitatory)},
		components.Vec2{}, 0,
	)

	// Light sits exactly on the left sensor.
	lights := []components.Light{{Pos: SensorPosition(&v, gene.Left, p.BodyRadius), Radius: 100}}
	Stimulate(&v, lights, p)

	if !approxEq(v.LeftActivation, 1, 1e-5) {
		t.Errorf("LeftActivation = %v, want 1", v.LeftActivation)
	}
	if v.RightActivation != 0 {
		t.Errorf("RightActivation = %v, want 0", v.RightActivation)
	}
}

func TestStimulateNoGenes(t *testing.T) {
	v := components.NewVehicle(nil, components.Vec2{X: 1, Y: 1}, 0)
	lights := []components.Light{{Pos: components.Vec2{X: 1, Y: 1}, Radius: 100}}
	Stimulate(&v, lights, DefaultParams())

	if v.LeftActivation != 0 || v.RightActivation != 0 {
		t.Errorf("activations = (%v, %v), want (0, 0)", v.LeftActivation, v.RightActivation)
	}
}

func TestStimulateNoLights(t *testing.T) {
	v := components.NewVehicle(gene.Pair(gene.Crossed, gene.Inhibitory), components.Vec2{}, 0)
	Stimulate(&v, nil, DefaultParams())

	if v.LeftActivation != 0 || v.RightActivation != 0 {
		t.Errorf("activations = (%v, %v), want (0, 0)", v.LeftActivation, v.RightActivation)
	}
}

func TestStimulateOnlyTouchesActivations(t *testing.T) {
	v := components.NewVehicle(gene.Pair(gene.Straight, gene.Excitatory), components.Vec2{X: 50, Y: 60}, 30)
	lights := []components.Light{{Pos: components.Vec2{X: 70, Y: 60}, Radius: 100}}
	before := lights[0]

	Stimulate(&v, lights, DefaultParams())

	if v.Pos != (components.Vec2{X: 50, Y: 60}) || v.Heading != 30 {
		t.Errorf("pose changed: pos %+v heading %v", v.Pos, v.Heading)
	}
	if lights[0] != before {
		t.Errorf("light modified: %+v", lights[0])
	}
	if v.LeftActivation == 0 && v.RightActivation == 0 {
		t.Error("expected some activation")
	}
}

func TestStimulateAccumulates(t *testing.T) {
	p := DefaultParams()
	v := components.NewVehicle(gene.Pair(gene.Straight, gene.Inhibitory), components.Vec2{}, 0)
	lights := []components.Light{{Pos: components.Vec2{X: 100}, Radius: 10}}

	Stimulate(&v, lights, p)
	l1, r1 := v.Activations()
	Stimulate(&v, lights, p)
	l2, r2 := v.Activations()

	if !approxEq(l2, 2*l1, 1e-5) || !approxEq(r2, 2*r1, 1e-5) {
		t.Errorf("second stimulation should add: (%v, %v) then (%v, %v)", l1, r1, l2, r2)
	}
}

func TestStimulateLightOrderIndependent(t *testing.T) {
	p := DefaultParams()
	lights := []components.Light{
		{Pos: components.Vec2{X: 120, Y: 40}, Radius: 200},
		{Pos: components.Vec2{X: -30, Y: 90}, Radius: 80},
		{Pos: components.Vec2{X: 10, Y: -60}, Radius: 0},
	}
	reversed := []components.Light{lights[2], lights[1], lights[0]}

	for _, w := range []gene.Wiring{gene.Straight, gene.Crossed} {
		for _, pol := range []gene.Polarity{gene.Excitatory, gene.Inhibitory} {
			a := components.NewVehicle(gene.Pair(w, pol), components.Vec2{X: 5, Y: 5}, 17)
			b := components.NewVehicle(gene.Pair(w, pol), components.Vec2{X: 5, Y: 5}, 17)

			Stimulate(&a, lights, p)
			Stimulate(&b, reversed, p)

			if !approxEq(a.LeftActivation, b.LeftActivation, 1e-5) ||
				!approxEq(a.RightActivation, b.RightActivation, 1e-5) {
				t.Errorf("%v %v: order changed activations (%v, %v) vs (%v, %v)",
					w, pol, a.LeftActivation, a.RightActivation, b.LeftActivation, b.RightActivation)
			}
		}
	}
}

func TestCrossedSwapsActivations(t *testing.T) {
	p := DefaultParams()
	lights := []components.Light{{Pos: components.Vec2{X: 100, Y: 60}, Radius: 300}}

	for _, pol := range []gene.Polarity{gene.Excitatory, gene.Inhibitory} {
		straight := components.NewVehicle(gene.Pair(gene.Straight, pol), components.Vec2{}, 0)
		crossed := components.NewVehicle(gene.Pair(gene.Crossed, pol), components.Vec2{}, 0)

		Stimulate(&straight, lights, p)
		Stimulate(&crossed, lights, p)

		if straight.LeftActivation == straight.RightActivation {
			t.Fatalf("%v: light off-axis should stimulate sides unequally", pol)
		}
		if straight.LeftActivation != crossed.RightActivation ||
			straight.RightActivation != crossed.LeftActivation {
			t.Errorf("%v: straight (%v, %v), crossed (%v, %v)", pol,
				straight.LeftActivation, straight.RightActivation,
				crossed.LeftActivation, crossed.RightActivation)
		}
	}
}

func TestStimulateNearerSensorStronger(t *testing.T) {
	p := DefaultParams()
	// Light ahead and to the left.
	lights := []components.Light{{Pos: components.Vec2{X: 0, Y: 100}, Radius: 200}}
	v := components.NewVehicle(gene.Pair(gene.Straight, gene.Excitatory), components.Vec2{}, 0)
	Stimulate(&v, lights, p)

	wantLeft := (200 - Distance(SensorPosition(&v, gene.Left, p.BodyRadius), lights[0].Pos)) * p.StimulusScale
	if !approxEq(v.LeftActivation, wantLeft, 1e-5) {
		t.Errorf("LeftActivation = %v, want %v", v.LeftActivation, wantLeft)
	}
	if v.LeftActivation <= v.RightActivation {
		t.Errorf("left sensor is nearer, want left > right: (%v, %v)", v.LeftActivation, v.RightActivation)
	}
	if math.IsNaN(float64(v.RightActivation)) {
		t.Error("RightActivation is NaN")
	}
}
