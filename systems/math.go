package systems

import (
	"math"

	"github.com/pthm-cable/vehicles/components"
)

const degToRad = math.Pi / 180

// Angle conversion functions

// AngleToCartesian returns the unit vector (cos θ, sin θ) for a heading in
// degrees. Any angle is accepted, including negative and >360 values.
func AngleToCartesian(angleDegrees float32) components.Vec2 {
	rad := float64(angleDegrees) * degToRad
	return components.Vec2{
		X: float32(math.Cos(rad)),
		Y: float32(math.Sin(rad)),
	}
}

// CartesianToAngleDegrees returns the heading of a vector in degrees, in (-180, 180].
func CartesianToAngleDegrees(v components.Vec2) float32 {
	return float32(math.Atan2(float64(v.Y), float64(v.X)) / degToRad)
}

// Distance functions

// DistanceSq returns the squared distance between two points.
func DistanceSq(p1, p2 components.Vec2) float32 {
	d := p2.Sub(p1)
	return d.Dot(d)
}

// Distance returns the Euclidean distance between two points.
func Distance(p1, p2 components.Vec2) float32 {
	return float32(math.Sqrt(float64(DistanceSq(p1, p2))))
}

// CloserThan reports whether p1 and p2 are strictly closer than threshold.
// Compares squared distances to avoid a square root.
func CloserThan(p1, p2 components.Vec2, threshold float32) bool {
	return DistanceSq(p1, p2) < threshold*threshold
}

// Frame composition

// ComposePos converts an offset in a body's local frame (x forward, y to the
// left) into world coordinates, given the body's origin and heading in degrees.
func ComposePos(origin components.Vec2, heading float32, local components.Vec2) components.Vec2 {
	dir := AngleToCartesian(heading)
	return components.Vec2{
		X: origin.X + local.X*dir.X - local.Y*dir.Y,
		Y: origin.Y + local.X*dir.Y + local.Y*dir.X,
	}
}

// wrapAxis folds x into [0, size). Non-finite values and non-positive sizes
// are returned unchanged.
func wrapAxis(x, size float32) float32 {
	if size <= 0 || math.IsNaN(float64(x)) || math.IsInf(float64(x), 0) {
		return x
	}
	if x >= 0 && x < size {
		return x
	}
	x = float32(math.Mod(float64(x), float64(size)))
	if x < 0 {
		x += size
	}
	// x + size can round up to exactly size for tiny negative inputs
	if x >= size {
		x -= size
	}
	return x
}
