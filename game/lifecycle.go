package game

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/vehicles/components"
)

// spawnLights creates the configured lights.
func (g *Game) spawnLights() {
	for _, l := range LightsFromConfig(g.cfg) {
		g.spawnLight(l)
	}
	g.gatherLights()
}

// spawnLight creates a light entity.
func (g *Game) spawnLight(l components.Light) ecs.Entity {
	return g.lightMap.NewEntity(&l)
}

// spawnRoster creates the configured starting vehicles.
func (g *Game) spawnRoster() {
	for _, spec := range RosterFromConfig(g.cfg) {
		g.spawnVehicle(spec)
	}
}

// spawnVehicle creates a vehicle entity with the next free ID.
func (g *Game) spawnVehicle(spec SpawnSpec) ecs.Entity {
	id := components.Identity{ID: g.nextID, Name: spec.Name}
	g.nextID++

	v := components.NewVehicle(spec.Genes, spec.Pos, spec.Heading)
	g.gridDirty = true
	return g.vehicleMap.NewEntity(&id, &v)
}

// AddVehicle creates a vehicle and returns its ID.
func (g *Game) AddVehicle(spec SpawnSpec) uint32 {
	spec.Pos = g.bounds.Wrap(spec.Pos)
	e := g.spawnVehicle(spec)
	id, _ := g.vehicleMap.Get(e)
	return id.ID
}

// AddLight places a new light.
func (g *Game) AddLight(pos components.Vec2, radius float32) {
	if radius < 0 {
		radius = 0
	}
	g.spawnLight(components.Light{Pos: g.bounds.Wrap(pos), Radius: radius})
	g.gatherLights()
	slog.Info("light added", "x", pos.X, "y", pos.Y, "radius", radius, "lights", len(g.lightScratch))
}

// RemoveLightAt removes the light whose centre is nearest to pos, if pos is
// within that light's pick radius. Reports whether a light was removed.
func (g *Game) RemoveLightAt(pos components.Vec2) bool {
	e, ok := g.lightAt(pos)
	if !ok {
		return false
	}
	l := *g.lightMap.Get(e)
	g.world.RemoveEntity(e)
	g.gatherLights()
	slog.Info("light removed", "x", l.Pos.X, "y", l.Pos.Y, "radius", l.Radius, "lights", len(g.lightScratch))
	return true
}

// Reset removes every vehicle and light and recreates them from the config.
// The tick counter and telemetry window restart at zero.
func (g *Game) Reset() {
	g.removeAll()

	g.tick = 0
	g.nextID = 0
	g.hasSelection = false
	g.collector.Reset(0)

	g.spawnLights()
	g.spawnRoster()

	slog.Info("reset", "vehicles", g.VehicleCount(), "lights", len(g.lightScratch))
}

// removeAll deletes every entity. Entities are collected first since the
// world is locked while a query is open.
func (g *Game) removeAll() {
	var toRemove []ecs.Entity

	vq := g.vehicleFilter.Query()
	for vq.Next() {
		toRemove = append(toRemove, vq.Entity())
	}
	lq := g.lightFilter.Query()
	for lq.Next() {
		toRemove = append(toRemove, lq.Entity())
	}

	for _, e := range toRemove {
		g.world.RemoveEntity(e)
	}
	g.lightScratch = g.lightScratch[:0]
	g.gridDirty = true
}
