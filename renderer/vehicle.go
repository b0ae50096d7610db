package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/vehicles/camera"
	"github.com/pthm-cable/vehicles/components"
	"github.com/pthm-cable/vehicles/gene"
)

var (
	excitatoryColor = rl.Color{R: 230, G: 90, B: 70, A: 255}
	inhibitoryColor = rl.Color{R: 80, G: 140, B: 230, A: 255}
	mixedColor      = rl.Color{R: 170, G: 110, B: 200, A: 255}
	sensorColor     = rl.Color{R: 255, G: 240, B: 150, A: 255}
	selectColor     = rl.White
)

// PolarityColor returns the color used for genes of polarity p.
func PolarityColor(p gene.Polarity) rl.Color {
	if p == gene.Inhibitory {
		return inhibitoryColor
	}
	return excitatoryColor
}

// BodyColor colors a vehicle by the polarity of its genes. Vehicles with both
// polarities get a mixed color.
func BodyColor(v *components.Vehicle) rl.Color {
	exc := v.CountPolarity(gene.Excitatory)
	inh := v.CountPolarity(gene.Inhibitory)
	switch {
	case exc > 0 && inh > 0:
		return mixedColor
	case inh > 0:
		return inhibitoryColor
	default:
		return excitatoryColor
	}
}

// VehicleRenderer draws vehicles as squares with their wiring drawn inside.
type VehicleRenderer struct {
	BodyRadius float32 // world units
}

// NewVehicleRenderer creates a vehicle renderer for bodies of the given radius.
func NewVehicleRenderer(bodyRadius float32) *VehicleRenderer {
	return &VehicleRenderer{BodyRadius: bodyRadius}
}

// Draw renders one vehicle, plus wrapped copies near the view edges.
func (r *VehicleRenderer) Draw(cam *camera.Camera, v *components.Vehicle, selected bool) {
	if !cam.IsVisible(v.Pos, r.BodyRadius) {
		return
	}
	radius := cam.Scale(r.BodyRadius)
	r.drawAt(bodyAt(cam.WorldToScreen(v.Pos), v.Heading, radius), v, selected)
	for _, g := range cam.Ghosts(v.Pos, r.BodyRadius) {
		r.drawAt(bodyAt(g, v.Heading, radius), v, selected)
	}
}

func (r *VehicleRenderer) drawAt(b Body, v *components.Vehicle, selected bool) {
	center := rl.Vector2{X: b.Center.X, Y: b.Center.Y}

	fill := BodyColor(v)
	fill.A = 90
	rl.DrawPoly(center, 4, b.Radius, b.Rotation, fill)
	rl.DrawPolyLines(center, 4, b.Radius, b.Rotation, BodyColor(v))

	thick := max(b.Radius/10, 1)
	for _, w := range b.wires(v.Genes()) {
		rl.DrawLineEx(
			rl.Vector2{X: w.From.X, Y: w.From.Y},
			rl.Vector2{X: w.To.X, Y: w.To.Y},
			thick, PolarityColor(w.Polarity),
		)
	}

	dot := max(b.Radius/6, 1.5)
	for _, s := range b.Sensors {
		rl.DrawCircleV(rl.Vector2{X: s.X, Y: s.Y}, dot, sensorColor)
	}

	if selected {
		rl.DrawPolyLinesEx(center, 4, b.Radius+4, b.Rotation, 2, selectColor)
	}
}
