// Package renderer draws lights and vehicles with raylib through a camera.
package renderer

import (
	"math"

	"github.com/pthm-cable/vehicles/components"
	"github.com/pthm-cable/vehicles/gene"
	"github.com/pthm-cable/vehicles/systems"
)

// Body is a vehicle's outline in screen space. Sensors are the two front
// corners of the square and actuators the two rear corners, both indexed by
// gene.Side.
type Body struct {
	Center    components.Vec2
	Radius    float32
	Rotation  float32 // degrees, for rl.DrawPoly with four sides
	Sensors   [2]components.Vec2
	Actuators [2]components.Vec2
}

// bodyAt lays out a vehicle body of the given screen radius around center.
func bodyAt(center components.Vec2, heading, radius float32) Body {
	b := Body{
		Center:   center,
		Radius:   radius,
		Rotation: 45 + heading,
	}
	for _, side := range []gene.Side{gene.Left, gene.Right} {
		front := systems.SensorOffset(side, radius)
		b.Sensors[side] = systems.ComposePos(center, heading, front)
		b.Actuators[side] = systems.ComposePos(center, heading, components.Vec2{X: -front.X, Y: front.Y})
	}
	return b
}

// Wire is the line drawn for one gene, from its sensor to its actuator.
type Wire struct {
	From, To components.Vec2
	Polarity gene.Polarity
}

// wires returns one line per gene. Crossed genes produce the X that marks
// crossed wiring.
func (b Body) wires(genes []gene.Gene) []Wire {
	out := make([]Wire, len(genes))
	for i, g := range genes {
		out[i] = Wire{
			From:     b.Sensors[g.SensorSide()],
			To:       b.Actuators[g.ActuatorSide()],
			Polarity: g.Polarity(),
		}
	}
	return out
}

// lightBands are the fractions of a light's radius drawn as discs, largest
// first so the smaller discs stack on top.
var lightBands = [...]struct {
	Fraction float32
	Alpha    float32
}{
	{1.0, 0.2},
	{0.75, 0.05},
	{0.5, 0.05},
	{0.25, 0.05},
}

// alphaByte converts an opacity in [0, 1] to a color channel.
func alphaByte(a float32) uint8 {
	return uint8(math.Round(float64(min(max(a, 0), 1)) * 255))
}
