package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/vehicles/camera"
	"github.com/pthm-cable/vehicles/components"
)

// LightRenderer draws lights as stacked translucent discs, brightest near the
// centre, fading out at the light's radius.
type LightRenderer struct {
	Color rl.Color
}

// NewLightRenderer creates a light renderer with the default yellow.
func NewLightRenderer() *LightRenderer {
	return &LightRenderer{Color: rl.Yellow}
}

// Draw renders every light visible through the camera, including wrapped
// copies near the view edges.
func (l *LightRenderer) Draw(cam *camera.Camera, lights []components.Light) {
	for _, light := range lights {
		if !cam.IsVisible(light.Pos, light.Radius) {
			continue
		}
		r := cam.Scale(light.Radius)
		l.drawAt(cam.WorldToScreen(light.Pos), r)
		for _, g := range cam.Ghosts(light.Pos, light.Radius) {
			l.drawAt(g, r)
		}
	}
}

func (l *LightRenderer) drawAt(center components.Vec2, radius float32) {
	c := rl.Vector2{X: center.X, Y: center.Y}
	for _, band := range lightBands {
		col := l.Color
		col.A = alphaByte(band.Alpha)
		rl.DrawCircleV(c, radius*band.Fraction, col)
	}
	rl.DrawCircleV(c, 3, l.Color)
}
