package systems

import (
	"math"

	"github.com/pthm-cable/vehicles/components"
	"github.com/pthm-cable/vehicles/gene"
)

// SensorOffset returns a sensor's position in the body frame. Both sensors sit
// on the body radius, 45 degrees either side of the forward axis.
func SensorOffset(side gene.Side, bodyRadius float32) components.Vec2 {
	d := bodyRadius * math.Sqrt2 / 2
	if side == gene.Left {
		return components.Vec2{X: d, Y: d}
	}
	return components.Vec2{X: d, Y: -d}
}

// SensorPosition returns the world position of the sensor on the given side.
func SensorPosition(v *components.Vehicle, side gene.Side, bodyRadius float32) components.Vec2 {
	return ComposePos(v.Pos, v.Heading, SensorOffset(side, bodyRadius))
}

// Intensity returns how strongly a sensor at the given position responds to a
// light. Excitatory sensors respond to radius minus distance, inhibitory ones
// to the distance itself, so inhibitory response is not limited by the
// radius. The result is never negative.
func Intensity(sensor components.Vec2, light components.Light, polarity gene.Polarity) float32 {
	dist := Distance(sensor, light.Pos)

	var raw float32
	if polarity == gene.Excitatory {
		raw = light.Radius - dist
	} else {
		raw = dist
	}
	if raw < 0 {
		return 0
	}
	return raw
}

// Stimulate adds every light's contribution, through every gene, to the
// vehicle's pending actuator activations. Only the vehicle's two activation
// fields are written; lights are read-only.
func Stimulate(v *components.Vehicle, lights []components.Light, p Params) {
	for i := 0; i < v.NumGenes(); i++ {
		g := v.Gene(i)
		sensor := SensorPosition(v, g.SensorSide(), p.BodyRadius)

		var sum float32
		for j := range lights {
			sum += Intensity(sensor, lights[j], g.Polarity()) * p.StimulusScale
		}

		if g.ActuatorSide() == gene.Left {
			v.LeftActivation += sum
		} else {
			v.RightActivation += sum
		}
	}
}
