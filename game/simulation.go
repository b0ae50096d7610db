package game

import (
	"github.com/pthm-cable/vehicles/telemetry"
)

// simulationStep runs a single tick of the simulation.
func (g *Game) simulationStep() {
	g.perfCollector.StartTick()

	// 1. Collect lights into the shared read-only slice
	g.perfCollector.StartPhase(telemetry.PhaseLights)
	g.gatherLights()

	// 2. Stimulate, move and wrap every vehicle
	g.perfCollector.StartPhase(telemetry.PhaseVehicles)
	g.updateVehicles()

	g.tick++

	// 3. Window stats, trajectory samples, CSV output
	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.recordTelemetry()
	g.flushTelemetry()

	g.perfCollector.EndTick()
}

// gatherLights refreshes lightScratch from the light entities.
func (g *Game) gatherLights() {
	g.lightScratch = g.lightScratch[:0]
	query := g.lightFilter.Query()
	for query.Next() {
		g.lightScratch = append(g.lightScratch, *query.Get())
	}
}
