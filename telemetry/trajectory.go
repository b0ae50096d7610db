package telemetry

import "github.com/pthm-cable/vehicles/components"

// TrajectoryPoint is one sampled vehicle pose, written to trajectory.csv.
type TrajectoryPoint struct {
	Tick      int32   `csv:"tick"`
	VehicleID uint32  `csv:"vehicle_id"`
	Name      string  `csv:"name"`
	X         float32 `csv:"x"`
	Y         float32 `csv:"y"`
	Heading   float32 `csv:"heading"`
	Left      float32 `csv:"left"`
	Right     float32 `csv:"right"`
	Speed     float32 `csv:"speed"`
}

// NewTrajectoryPoint captures a vehicle's pose and last motion.
func NewTrajectoryPoint(tick int32, id components.Identity, v *components.Vehicle) TrajectoryPoint {
	return TrajectoryPoint{
		Tick:      tick,
		VehicleID: id.ID,
		Name:      id.Name,
		X:         v.Pos.X,
		Y:         v.Pos.Y,
		Heading:   v.Heading,
		Left:      v.Motion.Left,
		Right:     v.Motion.Right,
		Speed:     v.Motion.Speed,
	}
}

// TrajectorySampler decides which ticks get a trajectory sample.
type TrajectorySampler struct {
	interval int32
}

// NewTrajectorySampler samples every interval ticks; interval <= 0 disables
// sampling.
func NewTrajectorySampler(interval int) TrajectorySampler {
	return TrajectorySampler{interval: int32(interval)}
}

// ShouldSample reports whether tick falls on the sampling interval.
func (s TrajectorySampler) ShouldSample(tick int32) bool {
	return s.interval > 0 && tick%s.interval == 0
}
