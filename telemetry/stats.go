package telemetry

import (
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds one vehicle's aggregated motion over a time window.
type WindowStats struct {
	WindowStartTick int32  `csv:"-"`
	WindowEndTick   int32  `csv:"window_end"`
	VehicleID       uint32 `csv:"vehicle_id"`
	Name            string `csv:"name"`
	Samples         int    `csv:"samples"`

	// Path length travelled during the window
	Distance float64 `csv:"distance"`
	// Sum of heading changes in degrees; sign gives the net turning direction
	NetRotation float64 `csv:"net_rotation"`

	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP10  float64 `csv:"speed_p10"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`

	TurnMean    float64 `csv:"turn_mean"`
	TurnStd     float64 `csv:"turn_std"`
	TurnAbsMean float64 `csv:"turn_abs_mean"`

	// Distance from the body centre to the nearest light
	LightDistMean float64 `csv:"light_dist_mean"`
	LightDistMin  float64 `csv:"light_dist_min"`
	LightDistP50  float64 `csv:"light_dist_p50"`
	LightDistMax  float64 `csv:"light_dist_max"`
}

// SeriesStats summarises a series of samples.
type SeriesStats struct {
	Mean, Std     float64
	Min, Max      float64
	P10, P50, P90 float64
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeSeriesStats calculates mean, population std, range and percentiles.
// An empty series yields all zeros.
func ComputeSeriesStats(values []float64) SeriesStats {
	n := len(values)
	if n == 0 {
		return SeriesStats{}
	}

	var s SeriesStats
	s.Mean = stat.Mean(values, nil)
	if n > 1 {
		s.Std = stat.PopStdDev(values, nil)
	}
	s.Min = floats.Min(values)
	s.Max = floats.Max(values)

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	s.P10 = Percentile(sorted, 0.10)
	s.P50 = Percentile(sorted, 0.50)
	s.P90 = Percentile(sorted, 0.90)
	return s
}

// absMean returns the mean magnitude of values.
func absMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += math.Abs(v)
	}
	return sum / float64(len(values))
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Int("vehicle_id", int(s.VehicleID)),
		slog.String("name", s.Name),
		slog.Int("samples", s.Samples),
		slog.Float64("distance", s.Distance),
		slog.Float64("net_rotation", s.NetRotation),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_std", s.SpeedStd),
		slog.Float64("speed_p10", s.SpeedP10),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Float64("turn_mean", s.TurnMean),
		slog.Float64("turn_std", s.TurnStd),
		slog.Float64("turn_abs_mean", s.TurnAbsMean),
		slog.Float64("light_dist_mean", s.LightDistMean),
		slog.Float64("light_dist_min", s.LightDistMin),
		slog.Float64("light_dist_p50", s.LightDistP50),
		slog.Float64("light_dist_max", s.LightDistMax),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"vehicle_id", s.VehicleID,
		"name", s.Name,
		"distance", s.Distance,
		"net_rotation", s.NetRotation,
		"speed_mean", s.SpeedMean,
		"turn_abs_mean", s.TurnAbsMean,
		"light_dist_mean", s.LightDistMean,
		"light_dist_min", s.LightDistMin,
	)
}
