package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/vehicles/components"
)

// InspectorData holds everything the inspector shows for one vehicle.
type InspectorData struct {
	Identity components.Identity
	Vehicle  *components.Vehicle
}

// Inspector renders the selected vehicle's state and wiring.
type Inspector struct {
	renderer *Renderer
	width    int32
	anchor   PanelAnchor
}

// NewInspector creates an inspector panel of the given width.
func NewInspector(width int32) *Inspector {
	return &Inspector{
		renderer: NewRenderer(),
		width:    width,
		anchor:   AnchorTopRight,
	}
}

// Title returns the panel header for a vehicle.
func (d InspectorData) Title() string {
	return fmt.Sprintf("#%d %s", d.Identity.ID, d.Identity.Name)
}

// geneLines returns the Describe lines after the fixed state lines, i.e. the
// wiring.
func (d InspectorData) geneLines() []string {
	lines := d.Vehicle.Describe()
	const stateLines = 4
	if len(lines) <= stateLines {
		return nil
	}
	return lines[stateLines:]
}

// height returns the panel height needed for d.
func (ins *Inspector) height(d InspectorData) int32 {
	t := ins.renderer.Theme
	fields := int32(len(components.VehicleFieldDescriptors()))
	groups := int32(len(components.VehicleGroups()))
	genes := int32(len(d.geneLines()))
	return t.Padding*2 + t.LineHeight + // title
		groups*(t.LineHeight+t.Padding) + fields*(t.LineHeight+2) +
		t.LineHeight + t.Padding + genes*t.LineHeight
}

// Bounds returns the panel's screen rectangle for d.
func (ins *Inspector) Bounds(d InspectorData, screenW, screenH int32) rl.Rectangle {
	h := ins.height(d)
	x, y := ins.anchor.Place(ins.width, h, screenW, screenH, ins.renderer.Theme.Padding)
	return rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(ins.width), Height: float32(h)}
}

// Draw renders the inspector panel for d.
func (ins *Inspector) Draw(d InspectorData, screenW, screenH int32) {
	if d.Vehicle == nil {
		return
	}
	r := ins.renderer
	t := r.Theme
	b := ins.Bounds(d, screenW, screenH)
	x, y := int32(b.X), int32(b.Y)

	r.DrawPanel(x, y, ins.width, int32(b.Height))
	x += t.Padding
	y += t.Padding
	contentWidth := ins.width - t.Padding*2

	y = r.DrawSectionHeader(x, y, d.Title())

	descriptors := components.VehicleFieldDescriptors()
	for _, group := range components.VehicleGroups() {
		y += t.Padding / 2
		start := y
		y += t.LineHeight / 2
		for _, fd := range descriptors {
			if fd.Group != group {
				continue
			}
			y = r.DrawField(x+4, y, fd, components.GetVehicleValue(d.Vehicle, fd.ID), contentWidth-8)
		}
		gui.GroupBox(rl.Rectangle{X: float32(x), Y: float32(start), Width: float32(contentWidth), Height: float32(y - start)}, group)
	}

	y += t.Padding
	y = r.DrawSectionHeader(x, y, "wiring")
	for _, line := range d.geneLines() {
		y = r.DrawLine(x, y, line)
	}
}
