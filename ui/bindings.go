package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Action is a keyboard command.
type Action int

const (
	ActionToggleHelp Action = iota
	ActionReset
	ActionPause
	ActionStep
	ActionSlower
	ActionFaster
	ActionRemoveLight
	ActionResetCamera
	numActions
)

// Binding maps keys to an action.
type Binding struct {
	Action      Action
	Keys        []int32
	Label       string // key names as shown in help
	Description string
}

// Bindings returns the keyboard bindings in help order.
func Bindings() []Binding {
	return []Binding{
		{ActionToggleHelp, []int32{rl.KeyH}, "H", "toggle this help"},
		{ActionReset, []int32{rl.KeyR}, "R", "reset vehicles and lights"},
		{ActionPause, []int32{rl.KeySpace}, "Space", "pause / resume"},
		{ActionStep, []int32{rl.KeyN}, "N", "single step while paused"},
		{ActionSlower, []int32{rl.KeyComma}, ",", "fewer ticks per frame"},
		{ActionFaster, []int32{rl.KeyPeriod}, ".", "more ticks per frame"},
		{ActionRemoveLight, []int32{rl.KeyDelete, rl.KeyBackspace}, "Del", "remove light under cursor"},
		{ActionResetCamera, []int32{rl.KeyHome}, "Home", "reset camera"},
	}
}

// mouseHelp lists the pointer and window controls that are not key bindings.
var mouseHelp = [][2]string{
	{"Left click", "select / inspect vehicle"},
	{"Right click", "add a light"},
	{"Arrows", "pan camera"},
	{"Wheel, +/-", "zoom camera"},
	{"Esc", "exit"},
}

// HelpLines returns the help text, one control per line.
func HelpLines() []string {
	bindings := Bindings()
	lines := make([]string, 0, len(bindings)+len(mouseHelp))
	for _, b := range bindings {
		lines = append(lines, helpLine(b.Label, b.Description))
	}
	for _, m := range mouseHelp {
		lines = append(lines, helpLine(m[0], m[1]))
	}
	return lines
}

func helpLine(keys, desc string) string {
	return fmt.Sprintf("%-12s %s", keys, desc)
}

// String returns the action's description, or "unknown".
func (a Action) String() string {
	for _, b := range Bindings() {
		if b.Action == a {
			return b.Description
		}
	}
	return "unknown"
}
