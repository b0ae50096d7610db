package game

import (
	"fmt"

	"github.com/pthm-cable/vehicles/components"
	"github.com/pthm-cable/vehicles/config"
	"github.com/pthm-cable/vehicles/gene"
	"github.com/pthm-cable/vehicles/systems"
)

// SpawnSpec describes one vehicle to create.
type SpawnSpec struct {
	Name    string
	Genes   []gene.Gene
	Pos     components.Vec2
	Heading float32
}

// ParamsFromConfig converts the vehicle section of the config.
func ParamsFromConfig(cfg *config.Config) systems.Params {
	return systems.Params{
		BodyRadius:    float32(cfg.Vehicle.BodyRadius),
		StimulusScale: float32(cfg.Vehicle.StimulusScale),
		MinimumSpeed:  float32(cfg.Vehicle.MinimumSpeed),
	}
}

// BoundsFromConfig returns the effective world size.
func BoundsFromConfig(cfg *config.Config) systems.Bounds {
	return systems.Bounds{Width: cfg.Derived.WorldW32, Height: cfg.Derived.WorldH32}
}

// LightsFromConfig returns the configured lights in world units.
func LightsFromConfig(cfg *config.Config) []components.Light {
	lights := make([]components.Light, len(cfg.Derived.Lights))
	for i, l := range cfg.Derived.Lights {
		lights[i] = components.Light{Pos: components.Vec2{X: l.X, Y: l.Y}, Radius: l.Radius}
	}
	return lights
}

// RosterFromConfig returns the starting vehicles. An empty roster section
// yields one vehicle per wiring and polarity at the world centre.
func RosterFromConfig(cfg *config.Config) []SpawnSpec {
	bounds := BoundsFromConfig(cfg)
	center := bounds.Center()

	if len(cfg.Roster) == 0 {
		entries := systems.CanonicalEntries()
		specs := make([]SpawnSpec, len(entries))
		for i, e := range entries {
			specs[i] = SpawnSpec{Name: e.Name, Genes: e.Genes, Pos: center}
		}
		return specs
	}

	specs := make([]SpawnSpec, 0, len(cfg.Roster))
	for i, r := range cfg.Roster {
		sides := r.Sides
		if len(sides) == 0 {
			sides = []gene.Side{gene.Left, gene.Right}
		}
		genes := make([]gene.Gene, len(sides))
		for j, side := range sides {
			genes[j] = gene.New(r.Wiring, side, r.Polarity)
		}

		name := r.Name
		if name == "" {
			name = fmt.Sprintf("%s-%s-%d", r.Wiring, r.Polarity, i)
		}

		pos := center
		if r.X != nil {
			pos.X = float32(*r.X) * bounds.Width
		}
		if r.Y != nil {
			pos.Y = float32(*r.Y) * bounds.Height
		}

		specs = append(specs, SpawnSpec{
			Name:    name,
			Genes:   genes,
			Pos:     bounds.Wrap(pos),
			Heading: float32(r.Heading),
		})
	}
	return specs
}
