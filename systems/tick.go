package systems

import (
	"github.com/pthm-cable/vehicles/components"
	"github.com/pthm-cable/vehicles/gene"
)

// SimulateTick advances one vehicle by one tick: stimulate, advance, wrap, in
// that order. lights is shared between vehicles and is not modified.
func SimulateTick(v *components.Vehicle, lights []components.Light, b Bounds, p Params) components.Motion {
	Stimulate(v, lights, p)
	m := Advance(v, p)
	ToroidMap(v, b)
	return m
}

// RosterEntry names one vehicle of a starting roster.
type RosterEntry struct {
	Name  string
	Genes []gene.Gene
}

// CanonicalEntries returns the reference roster: every combination of
// straight/crossed wiring and excitatory/inhibitory polarity, each with one
// left-sensor gene and one right-sensor gene.
func CanonicalEntries() []RosterEntry {
	entries := make([]RosterEntry, 0, 4)
	for _, w := range []gene.Wiring{gene.Straight, gene.Crossed} {
		for _, p := range []gene.Polarity{gene.Excitatory, gene.Inhibitory} {
			entries = append(entries, RosterEntry{
				Name:  w.String() + "-" + p.String(),
				Genes: gene.Pair(w, p),
			})
		}
	}
	return entries
}

// CanonicalRoster builds the reference roster with every vehicle at center,
// heading 0.
func CanonicalRoster(center components.Vec2) []components.Vehicle {
	entries := CanonicalEntries()
	vehicles := make([]components.Vehicle, len(entries))
	for i, e := range entries {
		vehicles[i] = components.NewVehicle(e.Genes, center, 0)
	}
	return vehicles
}
