package main

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/vehicles/camera"
	"github.com/pthm-cable/vehicles/config"
	"github.com/pthm-cable/vehicles/game"
	"github.com/pthm-cable/vehicles/renderer"
	"github.com/pthm-cable/vehicles/ui"
)

// New lights are this fraction of the world height in radius, matching the
// default light.
const newLightRadius = 0.5

// viewer ties the game to a raylib window: input, camera and drawing.
type viewer struct {
	game *game.Game

	camera    *camera.Camera
	lights    *renderer.LightRenderer
	vehicles  *renderer.VehicleRenderer
	hud       *ui.HUD
	help      *ui.HelpPanel
	inspector *ui.Inspector

	screenW, screenH int32
}

// runWindow opens the window and runs the interactive loop until the window
// closes or maxTicks is reached.
func runWindow(opts game.Options, maxTicks int) error {
	cfg := config.Cfg()

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Braitenberg Vehicles")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		return err
	}
	defer g.Unload()

	v := newViewer(g, cfg)
	for !rl.WindowShouldClose() {
		v.handleInput()
		g.Update()
		g.RecordFrame()
		v.draw()

		if maxTicks > 0 && int(g.Tick()) >= maxTicks {
			break
		}
	}
	return nil
}

func newViewer(g *game.Game, cfg *config.Config) *viewer {
	w, h := int32(cfg.Screen.Width), int32(cfg.Screen.Height)
	return &viewer{
		game:      g,
		camera:    camera.New(float32(w), float32(h), g.Bounds()),
		lights:    renderer.NewLightRenderer(),
		vehicles:  renderer.NewVehicleRenderer(g.Params().BodyRadius),
		hud:       ui.NewHUD(),
		help:      ui.NewHelpPanel(),
		inspector: ui.NewInspector(280),
		screenW:   w,
		screenH:   h,
	}
}

// handleInput applies this frame's input to the camera and the game.
func (v *viewer) handleInput() {
	v.handleResize()

	cmds := ui.PollInput(v.camera, v.panels()...)

	if cmds.Has(ui.ActionToggleHelp) {
		v.help.Toggle()
	}
	if cmds.Has(ui.ActionPause) {
		v.game.TogglePause()
	}
	if cmds.Has(ui.ActionStep) && v.game.Paused() {
		v.game.Step()
	}
	if cmds.Has(ui.ActionSlower) {
		v.game.Slower()
	}
	if cmds.Has(ui.ActionFaster) {
		v.game.Faster()
	}
	if cmds.Has(ui.ActionReset) {
		v.game.Reset()
	}
	if cmds.Has(ui.ActionRemoveLight) {
		v.game.RemoveLightAt(cmds.Cursor)
	}
	if cmds.Select {
		v.game.SelectAt(cmds.Cursor)
	}
	if cmds.AddLight {
		v.game.AddLight(cmds.Cursor, newLightRadius*v.game.Bounds().Height)
	}
}

// handleResize propagates window size changes to the camera.
func (v *viewer) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	v.screenW = int32(rl.GetScreenWidth())
	v.screenH = int32(rl.GetScreenHeight())
	v.camera.Resize(float32(v.screenW), float32(v.screenH))
}

// panels returns the screen areas where clicks belong to the UI.
func (v *viewer) panels() []rl.Rectangle {
	var rects []rl.Rectangle
	if v.help.Visible() {
		rects = append(rects, v.help.Bounds(v.screenW, v.screenH))
	}
	if sel, ok := v.game.Selected(); ok {
		rects = append(rects, v.inspector.Bounds(inspectorData(sel), v.screenW, v.screenH))
	}
	return rects
}

func inspectorData(sel game.VehicleInfo) ui.InspectorData {
	return ui.InspectorData{Identity: sel.Identity, Vehicle: &sel.Vehicle}
}

// draw renders one frame.
func (v *viewer) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	v.lights.Draw(v.camera, v.game.Lights())

	sel, hasSel := v.game.Selected()
	for _, info := range v.game.Vehicles() {
		selected := hasSel && info.Identity.ID == sel.Identity.ID
		v.vehicles.Draw(v.camera, &info.Vehicle, selected)
	}

	v.hud.Draw(ui.HUDData{
		Title:    "Braitenberg Vehicles",
		Vehicles: v.game.VehicleCount(),
		Lights:   len(v.game.Lights()),
		Tick:     v.game.Tick(),
		Speed:    v.game.StepsPerUpdate(),
		FPS:      rl.GetFPS(),
		Paused:   v.game.Paused(),
	})
	v.hud.DrawControls(v.screenH)

	if hasSel {
		v.inspector.Draw(inspectorData(sel), v.screenW, v.screenH)
	}
	v.help.Draw(v.screenW, v.screenH)

	rl.EndDrawing()
}
