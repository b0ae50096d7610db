// Package components defines the state shared between the simulation core,
// the ECS world and the presentation layer.
package components

import (
	"fmt"

	"github.com/pthm-cable/vehicles/gene"
)

// Identity labels a vehicle entity for display and telemetry.
type Identity struct {
	ID   uint32
	Name string
}

// Motion is the result of one kinematic step, kept for display after the
// activations have been reset.
type Motion struct {
	Left  float32 // left actuator activation that was applied
	Right float32 // right actuator activation that was applied
	Turn  float32 // right - left
	Speed float32 // left + right + minimum speed
}

// Vehicle is a Braitenberg vehicle: a fixed set of genes plus the mutable
// state advanced once per tick.
//
// LeftActivation and RightActivation are per-tick accumulators. They are
// filled by stimulation and reset to zero by the kinematic step. Heading is in
// degrees and is never normalized.
type Vehicle struct {
	genes []gene.Gene

	Pos             Vec2
	Heading         float32
	LeftActivation  float32
	RightActivation float32
	Motion          Motion
}

// NewVehicle creates a vehicle at pos facing heading degrees. The genes are
// copied so later changes to the caller's slice do not affect the vehicle.
func NewVehicle(genes []gene.Gene, pos Vec2, heading float32) Vehicle {
	owned := make([]gene.Gene, len(genes))
	copy(owned, genes)
	return Vehicle{
		genes:   owned,
		Pos:     pos,
		Heading: heading,
	}
}

// Position returns the vehicle's world position.
func (v *Vehicle) Position() Vec2 { return v.Pos }

// HeadingDegrees returns the heading in degrees. Callers must not assume it
// lies in any particular range.
func (v *Vehicle) HeadingDegrees() float32 { return v.Heading }

// NumGenes returns the number of genes.
func (v *Vehicle) NumGenes() int { return len(v.genes) }

// Gene returns the i-th gene.
func (v *Vehicle) Gene(i int) gene.Gene { return v.genes[i] }

// Genes returns a copy of the vehicle's genes.
func (v *Vehicle) Genes() []gene.Gene {
	out := make([]gene.Gene, len(v.genes))
	copy(out, v.genes)
	return out
}

// Activations returns the pending left and right actuator activations.
func (v *Vehicle) Activations() (left, right float32) {
	return v.LeftActivation, v.RightActivation
}

// Crossed reports whether any gene uses crossed wiring.
func (v *Vehicle) Crossed() bool {
	for _, g := range v.genes {
		if g.Crossed() {
			return true
		}
	}
	return false
}

// CountPolarity returns how many genes have the given polarity.
func (v *Vehicle) CountPolarity(p gene.Polarity) int {
	n := 0
	for _, g := range v.genes {
		if g.Polarity() == p {
			n++
		}
	}
	return n
}

// Describe returns human-readable lines describing the vehicle's state and
// wiring, suitable for an inspector panel or a log record.
func (v *Vehicle) Describe() []string {
	lines := make([]string, 0, len(v.genes)+4)
	lines = append(lines,
		fmt.Sprintf("position: (%.1f, %.1f)", v.Pos.X, v.Pos.Y),
		fmt.Sprintf("heading: %.1f deg", v.Heading),
		fmt.Sprintf("activation: left %.3f, right %.3f", v.LeftActivation, v.RightActivation),
		fmt.Sprintf("last motion: left %.3f, right %.3f, turn %+.3f, speed %.3f",
			v.Motion.Left, v.Motion.Right, v.Motion.Turn, v.Motion.Speed),
	)
	if len(v.genes) == 0 {
		return append(lines, "genes: none")
	}
	for i, g := range v.genes {
		lines = append(lines, fmt.Sprintf("gene %d: %s", i, g))
	}
	return lines
}
