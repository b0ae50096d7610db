// Package camera maps between world and screen coordinates for a pannable,
// zoomable view of a toroidal world.
package camera

import (
	"github.com/pthm-cable/vehicles/components"
	"github.com/pthm-cable/vehicles/systems"
)

const defaultMaxZoom = 4.0

// Camera controls the viewport into the simulation world.
type Camera struct {
	// Center of the view in world coordinates
	Center components.Vec2

	// Zoom level (1.0 = 1:1, 2.0 = 2x magnification)
	Zoom float32

	ViewportW, ViewportH float32

	World systems.Bounds

	MinZoom, MaxZoom float32
}

// New creates a camera centered on the world with 1:1 zoom.
func New(viewportW, viewportH float32, world systems.Bounds) *Camera {
	c := &Camera{
		Center:  world.Center(),
		Zoom:    1.0,
		World:   world,
		MaxZoom: defaultMaxZoom,
	}
	c.Resize(viewportW, viewportH)
	return c
}

// minZoom is the smallest zoom at which the view still fits inside the world,
// so nothing is drawn twice.
func (c *Camera) minZoom() float32 {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return 1
	}
	return max(c.ViewportW/c.World.Width, c.ViewportH/c.World.Height)
}

// WorldToScreen converts a world position to screen coordinates, taking the
// shortest way round the torus from the view center.
func (c *Camera) WorldToScreen(p components.Vec2) components.Vec2 {
	d := c.World.ToroidalDelta(c.Center, p)
	return components.Vec2{
		X: c.ViewportW/2 + d.X*c.Zoom,
		Y: c.ViewportH/2 + d.Y*c.Zoom,
	}
}

// ScreenToWorld converts screen coordinates to a wrapped world position.
func (c *Camera) ScreenToWorld(s components.Vec2) components.Vec2 {
	d := components.Vec2{
		X: (s.X - c.ViewportW/2) / c.Zoom,
		Y: (s.Y - c.ViewportH/2) / c.Zoom,
	}
	return c.World.Wrap(c.Center.Add(d))
}

// IsVisible returns true if a circle at p with the given radius could be on
// screen. The check is conservative and meant for culling.
func (c *Camera) IsVisible(p components.Vec2, radius float32) bool {
	d := c.World.ToroidalDelta(c.Center, p)
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	return abs(d.X) <= halfW && abs(d.Y) <= halfH
}

// Ghosts returns extra screen positions for a circle straddling the edge of
// the view, so it appears on both sides while wrapping. The primary position
// from WorldToScreen is not included.
func (c *Camera) Ghosts(p components.Vec2, radius float32) []components.Vec2 {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)
	d := c.World.ToroidalDelta(c.Center, p)

	var ghostX, ghostY float32
	hasX, hasY := false, false
	switch {
	case d.X > halfW-radius && d.X < halfW+radius:
		ghostX, hasX = c.ViewportW/2+(d.X-c.World.Width)*c.Zoom, true
	case d.X < -halfW+radius && d.X > -halfW-radius:
		ghostX, hasX = c.ViewportW/2+(d.X+c.World.Width)*c.Zoom, true
	}
	switch {
	case d.Y > halfH-radius && d.Y < halfH+radius:
		ghostY, hasY = c.ViewportH/2+(d.Y-c.World.Height)*c.Zoom, true
	case d.Y < -halfH+radius && d.Y > -halfH-radius:
		ghostY, hasY = c.ViewportH/2+(d.Y+c.World.Height)*c.Zoom, true
	}

	primary := c.WorldToScreen(p)
	var ghosts []components.Vec2
	if hasX {
		ghosts = append(ghosts, components.Vec2{X: ghostX, Y: primary.Y})
	}
	if hasY {
		ghosts = append(ghosts, components.Vec2{X: primary.X, Y: ghostY})
	}
	if hasX && hasY {
		ghosts = append(ghosts, components.Vec2{X: ghostX, Y: ghostY})
	}
	return ghosts
}

// Resize updates the viewport and re-clamps the zoom.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	c.MinZoom = min(c.minZoom(), c.MaxZoom)
	c.SetZoom(c.Zoom)
}

// Pan moves the camera by a delta in screen pixels, wrapping at the world
// edges.
func (c *Camera) Pan(dx, dy float32) {
	c.Center = c.World.Wrap(c.Center.Add(components.Vec2{X: dx / c.Zoom, Y: dy / c.Zoom}))
}

// SetZoom sets the zoom level, clamped to [MinZoom, MaxZoom].
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = min(max(zoom, c.MinZoom), c.MaxZoom)
}

// ZoomBy multiplies the current zoom by factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// ZoomAt zooms by factor while keeping the world point under the screen
// position s fixed.
func (c *Camera) ZoomAt(s components.Vec2, factor float32) {
	anchor := c.ScreenToWorld(s)
	c.ZoomBy(factor)
	moved := c.ScreenToWorld(s)
	c.Center = c.World.Wrap(c.Center.Add(c.World.ToroidalDelta(moved, anchor)))
}

// Reset returns the camera to the world center at 1:1 zoom.
func (c *Camera) Reset() {
	c.Center = c.World.Center()
	c.SetZoom(1.0)
}

// Scale converts a world length to screen pixels.
func (c *Camera) Scale(length float32) float32 {
	return length * c.Zoom
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
