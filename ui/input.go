package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/vehicles/camera"
	"github.com/pthm-cable/vehicles/components"
)

const (
	panPixelsPerFrame = 8
	wheelZoomStep     = 0.1
	keyZoomFactor     = 1.25
)

// Commands is the input gathered in one frame, already translated to world
// coordinates.
type Commands struct {
	pressed [numActions]bool

	Cursor    components.Vec2 // cursor position in world units
	Select    bool            // left click at Cursor
	AddLight  bool            // right click at Cursor
	OverPanel bool            // cursor is over a UI panel; clicks are ignored
}

// Has reports whether the action was triggered this frame.
func (c Commands) Has(a Action) bool {
	if a < 0 || a >= numActions {
		return false
	}
	return c.pressed[a]
}

// Set marks an action as triggered.
func (c *Commands) Set(a Action) {
	if a >= 0 && a < numActions {
		c.pressed[a] = true
	}
}

// PollInput reads the keyboard and mouse. Camera pan and zoom are applied to
// cam directly; everything else is returned for the caller to act on. Clicks
// inside any of the blocking rectangles are dropped.
func PollInput(cam *camera.Camera, blocking ...rl.Rectangle) Commands {
	var cmds Commands

	for _, b := range Bindings() {
		for _, key := range b.Keys {
			if rl.IsKeyPressed(key) {
				cmds.Set(b.Action)
			}
		}
	}

	pollCamera(cam)
	if cmds.Has(ActionResetCamera) {
		cam.Reset()
	}

	mouse := rl.GetMousePosition()
	cmds.Cursor = cam.ScreenToWorld(components.Vec2{X: mouse.X, Y: mouse.Y})
	for _, r := range blocking {
		if rl.CheckCollisionPointRec(mouse, r) {
			cmds.OverPanel = true
			break
		}
	}
	if !cmds.OverPanel {
		cmds.Select = rl.IsMouseButtonPressed(rl.MouseButtonLeft)
		cmds.AddLight = rl.IsMouseButtonPressed(rl.MouseButtonRight)
	}
	return cmds
}

// pollCamera handles arrow-key panning and wheel or +/- zoom.
func pollCamera(cam *camera.Camera) {
	// Pan speed is in screen pixels so it feels the same at any zoom
	if rl.IsKeyDown(rl.KeyRight) {
		cam.Pan(panPixelsPerFrame, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		cam.Pan(-panPixelsPerFrame, 0)
	}
	if rl.IsKeyDown(rl.KeyDown) {
		cam.Pan(0, panPixelsPerFrame)
	}
	if rl.IsKeyDown(rl.KeyUp) {
		cam.Pan(0, -panPixelsPerFrame)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		mouse := rl.GetMousePosition()
		cam.ZoomAt(components.Vec2{X: mouse.X, Y: mouse.Y}, 1+wheel*wheelZoomStep)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		cam.ZoomBy(keyZoomFactor)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		cam.ZoomBy(1 / keyZoomFactor)
	}
}
