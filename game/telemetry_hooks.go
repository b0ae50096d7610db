package game

import (
	"log/slog"
	"math"

	"github.com/pthm-cable/vehicles/components"
	"github.com/pthm-cable/vehicles/systems"
	"github.com/pthm-cable/vehicles/telemetry"
)

// recordTelemetry feeds this tick's motions into the window collector and
// writes a trajectory sample when one is due.
func (g *Game) recordTelemetry() {
	snaps := g.parallel.snapshots
	for i := range snaps {
		s := &snaps[i]
		g.collector.Record(s.Identity, g.parallel.motions[i], nearestLightDistance(s.Vehicle.Pos, g.lightScratch))
	}

	if g.outputManager == nil || !g.trajectory.ShouldSample(g.tick) {
		return
	}
	points := make([]telemetry.TrajectoryPoint, len(snaps))
	for i := range snaps {
		points[i] = telemetry.NewTrajectoryPoint(g.tick, snaps[i].Identity, &snaps[i].Vehicle)
	}
	if err := g.outputManager.WriteTrajectory(points); err != nil {
		slog.Error("failed to write trajectory", "error", err)
	}
}

// flushTelemetry checks if the stats window should be flushed.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick)
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	if g.logStats {
		for _, s := range stats {
			s.LogStats()
		}
		perfStats.LogStats()
	}

	if g.outputManager != nil {
		if err := g.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := g.outputManager.WritePerf(perfStats, g.tick, len(g.parallel.snapshots)); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// nearestLightDistance returns the distance from pos to the closest light
// centre, or NaN when there are no lights.
func nearestLightDistance(pos components.Vec2, lights []components.Light) float32 {
	if len(lights) == 0 {
		return float32(math.NaN())
	}
	best := systems.DistanceSq(pos, lights[0].Pos)
	for _, l := range lights[1:] {
		best = min(best, systems.DistanceSq(pos, l.Pos))
	}
	return float32(math.Sqrt(float64(best)))
}
