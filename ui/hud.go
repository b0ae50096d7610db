package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title    string
	Vehicles int
	Lights   int
	Tick     int32
	Speed    int
	FPS      int32
	Paused   bool
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{renderer: NewRenderer()}
}

// StatusLine returns the second HUD line.
func (d HUDData) StatusLine() string {
	return fmt.Sprintf("Tick: %d | Speed: %dx | FPS: %d | Vehicles: %d | Lights: %d",
		d.Tick, d.Speed, d.FPS, d.Vehicles, d.Lights)
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)
	rl.DrawText(data.StatusLine(), 10, 35, 16, rl.LightGray)
	if data.Paused {
		rl.DrawText("PAUSED", 10, 55, 16, rl.Yellow)
	}
}

// DrawControls renders the one-line control hint at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32) {
	rl.DrawText("[H] help  [Space] pause  [R] reset  [,/.] speed", 10, screenHeight-25, 14, rl.Gray)
}
