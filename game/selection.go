package game

import (
	"sort"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/vehicles/components"
	"github.com/pthm-cable/vehicles/config"
	"github.com/pthm-cable/vehicles/systems"
)

// minLightPickRadius is the smallest distance from a light's centre that
// still counts as pointing at it.
const minLightPickRadius = 10

// SelectAt selects the vehicle nearest to pos whose body contains pos.
// Clicking empty space clears the selection. Reports whether a vehicle was
// selected.
func (g *Game) SelectAt(pos components.Vec2) bool {
	g.selectedEntity, g.hasSelection = g.vehicleAt(pos)
	return g.hasSelection
}

// ClearSelection deselects the current vehicle.
func (g *Game) ClearSelection() {
	g.hasSelection = false
}

// Selected returns a copy of the selected vehicle, if any.
func (g *Game) Selected() (VehicleInfo, bool) {
	if !g.hasSelection || !g.world.Alive(g.selectedEntity) {
		g.hasSelection = false
		return VehicleInfo{}, false
	}
	id, v := g.vehicleMap.Get(g.selectedEntity)
	return VehicleInfo{Entity: g.selectedEntity, Identity: *id, Vehicle: *v}, true
}

// vehicleAt returns the vehicle nearest to pos that is strictly closer than
// one body radius. Distance is measured the short way round the world, so
// wrapped copies drawn at the screen edges can be picked too.
func (g *Game) vehicleAt(pos components.Vec2) (ecs.Entity, bool) {
	if g.gridDirty {
		g.rebuildGrid()
	}
	n, ok := g.grid.Nearest(pos, g.params.BodyRadius)
	return n.E, ok
}

// rebuildGrid re-buckets every vehicle by its current position.
func (g *Game) rebuildGrid() {
	g.grid.Clear()
	query := g.vehicleFilter.Query()
	for query.Next() {
		_, v := query.Get()
		g.grid.Insert(query.Entity(), v.Pos)
	}
	g.gridDirty = false
}

// gridCellSize sizes picking cells to a few vehicle bodies.
func gridCellSize(cfg *config.Config) float32 {
	return float32(4 * cfg.Vehicle.BodyRadius)
}

// lightAt returns the light nearest to pos within its pick radius: a quarter
// of its radius, the brightest band drawn, but at least minLightPickRadius.
func (g *Game) lightAt(pos components.Vec2) (ecs.Entity, bool) {
	var found ecs.Entity
	var ok bool
	best := float32(0)

	query := g.lightFilter.Query()
	for query.Next() {
		l := query.Get()
		pick := max(l.Radius/4, minLightPickRadius)
		if !systems.CloserThan(pos, l.Pos, pick) {
			continue
		}
		d := systems.DistanceSq(pos, l.Pos)
		if !ok || d < best {
			found, best, ok = query.Entity(), d, true
		}
	}
	return found, ok
}

func sortVehicleInfo(vs []VehicleInfo) {
	sort.Slice(vs, func(i, j int) bool { return vs[i].Identity.ID < vs[j].Identity.ID })
}
