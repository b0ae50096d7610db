package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const helpTitleBar = 24

// HelpPanel is a closable window listing the controls.
type HelpPanel struct {
	renderer *Renderer
	visible  bool
	lines    []string
	width    int32
}

// NewHelpPanel creates a hidden help panel.
func NewHelpPanel() *HelpPanel {
	return &HelpPanel{
		renderer: NewRenderer(),
		lines:    HelpLines(),
		width:    340,
	}
}

// Toggle switches panel visibility.
func (h *HelpPanel) Toggle() {
	h.visible = !h.visible
}

// Visible reports whether the panel is shown.
func (h *HelpPanel) Visible() bool {
	return h.visible
}

// Bounds returns the panel's screen rectangle.
func (h *HelpPanel) Bounds(screenW, screenH int32) rl.Rectangle {
	t := h.renderer.Theme
	height := helpTitleBar + t.Padding*2 + int32(len(h.lines))*t.LineHeight
	x, y := AnchorCenter.Place(h.width, height, screenW, screenH, t.Padding)
	return rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(h.width), Height: float32(height)}
}

// Draw renders the panel if visible. Clicking the window's close button
// hides it.
func (h *HelpPanel) Draw(screenW, screenH int32) {
	if !h.visible {
		return
	}
	b := h.Bounds(screenW, screenH)
	if gui.WindowBox(b, "Controls") {
		h.visible = false
		return
	}

	t := h.renderer.Theme
	x := int32(b.X) + t.Padding
	y := int32(b.Y) + helpTitleBar + t.Padding
	for _, line := range h.lines {
		gui.Label(rl.Rectangle{X: float32(x), Y: float32(y), Width: b.Width - float32(2*t.Padding), Height: float32(t.LineHeight)}, line)
		y += t.LineHeight
	}
}
