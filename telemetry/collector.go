package telemetry

import (
	"math"
	"sort"

	"github.com/pthm-cable/vehicles/components"
)

// vehicleSeries accumulates one vehicle's samples for the current window.
type vehicleSeries struct {
	name      string
	speeds    []float64
	turns     []float64
	lightDist []float64
}

// Collector accumulates per-tick vehicle samples within fixed tick windows
// and produces one WindowStats per vehicle when a window is flushed.
type Collector struct {
	windowDurationTicks int32
	windowStartTick     int32

	series map[uint32]*vehicleSeries
}

// NewCollector creates a new stats collector. windowTicks is the number of
// ticks per window; values below 1 are raised to 1.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowDurationTicks: int32(windowTicks),
		series:              make(map[uint32]*vehicleSeries),
	}
}

// Record adds one tick's motion for a vehicle. lightDist is the distance to
// the nearest light; pass NaN when there are no lights and it will be
// skipped.
func (c *Collector) Record(id components.Identity, m components.Motion, lightDist float32) {
	s, ok := c.series[id.ID]
	if !ok {
		s = &vehicleSeries{name: id.Name}
		c.series[id.ID] = s
	}
	s.speeds = append(s.speeds, float64(m.Speed))
	s.turns = append(s.turns, float64(m.Turn))
	if !math.IsNaN(float64(lightDist)) {
		s.lightDist = append(s.lightDist, float64(lightDist))
	}
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces stats for every vehicle seen in the window, ordered by
// vehicle ID, and resets for the next window.
func (c *Collector) Flush(currentTick int32) []WindowStats {
	ids := make([]uint32, 0, len(c.series))
	for id := range c.series {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]WindowStats, 0, len(ids))
	for _, id := range ids {
		s := c.series[id]
		speed := ComputeSeriesStats(s.speeds)
		turn := ComputeSeriesStats(s.turns)
		light := ComputeSeriesStats(s.lightDist)

		var distance, rotation float64
		for i := range s.speeds {
			distance += s.speeds[i]
			rotation += 2 * s.turns[i]
		}

		out = append(out, WindowStats{
			WindowStartTick: c.windowStartTick,
			WindowEndTick:   currentTick,
			VehicleID:       id,
			Name:            s.name,
			Samples:         len(s.speeds),

			Distance:    distance,
			NetRotation: rotation,

			SpeedMean: speed.Mean,
			SpeedStd:  speed.Std,
			SpeedP10:  speed.P10,
			SpeedP50:  speed.P50,
			SpeedP90:  speed.P90,

			TurnMean:    turn.Mean,
			TurnStd:     turn.Std,
			TurnAbsMean: absMean(s.turns),

			LightDistMean: light.Mean,
			LightDistMin:  light.Min,
			LightDistP50:  light.P50,
			LightDistMax:  light.Max,
		})
	}

	c.Reset(currentTick)
	return out
}

// Reset discards the current window and starts a new one at tick.
func (c *Collector) Reset(tick int32) {
	c.windowStartTick = tick
	clear(c.series)
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
