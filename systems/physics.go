package systems

import "github.com/pthm-cable/vehicles/components"

// Bounds represents the simulation bounds.
type Bounds struct {
	Width, Height float32
}

// Center returns the middle of the world.
func (b Bounds) Center() components.Vec2 {
	return components.Vec2{X: b.Width / 2, Y: b.Height / 2}
}

// Advance turns the vehicle's pending activations into motion.
//
//	turn    = right - left
//	speed   = left + right + MinimumSpeed
//	heading = heading + 2*turn
//
// The vehicle travels along heading+turn, halfway between the old and new
// headings, which approximates the arc driven during the turn. Both
// activations are reset to the baseline afterwards.
func Advance(v *components.Vehicle, p Params) components.Motion {
	left, right := v.LeftActivation, v.RightActivation

	turn := right - left
	speed := left + right + p.MinimumSpeed

	travel := AngleToCartesian(v.Heading + turn)
	v.Pos = v.Pos.Add(travel.Scale(speed))
	v.Heading += 2 * turn

	m := components.Motion{Left: left, Right: right, Turn: turn, Speed: speed}
	v.Motion = m
	v.LeftActivation = BaselineActivation
	v.RightActivation = BaselineActivation
	return m
}

// ToroidMap folds the vehicle's position back into [0, Width) x [0, Height).
// Heading and activations are untouched.
func ToroidMap(v *components.Vehicle, b Bounds) {
	v.Pos = b.Wrap(v.Pos)
}

// Wrap folds a point into the bounds. Points already inside are returned
// unchanged.
func (b Bounds) Wrap(p components.Vec2) components.Vec2 {
	return components.Vec2{
		X: wrapAxis(p.X, b.Width),
		Y: wrapAxis(p.Y, b.Height),
	}
}

// ToroidalDelta returns the shortest displacement from p1 to p2 in a world
// whose edges connect.
func (b Bounds) ToroidalDelta(p1, p2 components.Vec2) components.Vec2 {
	d := p2.Sub(p1)
	if b.Width > 0 {
		if d.X > b.Width/2 {
			d.X -= b.Width
		} else if d.X < -b.Width/2 {
			d.X += b.Width
		}
	}
	if b.Height > 0 {
		if d.Y > b.Height/2 {
			d.Y -= b.Height
		} else if d.Y < -b.Height/2 {
			d.Y += b.Height
		}
	}
	return d
}
