package ui

import (
	"strings"
	"testing"

	"github.com/pthm-cable/vehicles/components"
	"github.com/pthm-cable/vehicles/gene"
)

func TestBindingsCoverEveryAction(t *testing.T) {
	seen := make(map[Action]bool)
	keys := make(map[int32]Action)
	for _, b := range Bindings() {
		if seen[b.Action] {
			t.Errorf("action %v bound twice", b.Action)
		}
		seen[b.Action] = true
		if len(b.Keys) == 0 {
			t.Errorf("action %v has no keys", b.Action)
		}
		for _, k := range b.Keys {
			if other, ok := keys[k]; ok {
				t.Errorf("key %d bound to both %v and %v", k, other, b.Action)
			}
			keys[k] = b.Action
		}
	}
	for a := Action(0); a < numActions; a++ {
		if !seen[a] {
			t.Errorf("action %d has no binding", a)
		}
	}
}

func TestHelpLines(t *testing.T) {
	lines := HelpLines()
	if len(lines) != int(numActions)+len(mouseHelp) {
		t.Fatalf("got %d help lines", len(lines))
	}
	for _, want := range []string{"H ", "Space", "Right click", "Esc"} {
		found := false
		for _, l := range lines {
			if strings.HasPrefix(l, want) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no help line for %q", want)
		}
	}
}

func TestActionString(t *testing.T) {
	if got := ActionPause.String(); got != "pause / resume" {
		t.Errorf("ActionPause = %q", got)
	}
	if got := numActions.String(); got != "unknown" {
		t.Errorf("numActions = %q", got)
	}
}

func TestCommands(t *testing.T) {
	var c Commands
	if c.Has(ActionReset) {
		t.Error("zero Commands has an action")
	}
	c.Set(ActionReset)
	c.Set(numActions) // ignored
	if !c.Has(ActionReset) || c.Has(ActionPause) || c.Has(-1) {
		t.Errorf("Commands = %+v", c)
	}
}

func TestPanelAnchorPlace(t *testing.T) {
	tests := []struct {
		anchor PanelAnchor
		x, y   int32
	}{
		{AnchorTopLeft, 10, 10},
		{AnchorTopRight, 690, 10},
		{AnchorBottomLeft, 10, 490},
		{AnchorBottomRight, 690, 490},
		{AnchorCenter, 350, 250},
	}
	for _, tt := range tests {
		x, y := tt.anchor.Place(100, 100, 800, 600, 10)
		if x != tt.x || y != tt.y {
			t.Errorf("anchor %d: got (%d, %d), want (%d, %d)", tt.anchor, x, y, tt.x, tt.y)
		}
	}
}

func TestBarFraction(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float32
	}{
		{2.5, 0, 5, 0.5},
		{-1, 0, 5, 0},
		{9, 0, 5, 1},
		{0, -5, 5, 0.5},
		{1, 3, 3, 0},
	}
	for _, tt := range tests {
		if got := barFraction(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("barFraction(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestHUDStatusLine(t *testing.T) {
	d := HUDData{Tick: 42, Speed: 3, FPS: 60, Vehicles: 4, Lights: 1}
	want := "Tick: 42 | Speed: 3x | FPS: 60 | Vehicles: 4 | Lights: 1"
	if got := d.StatusLine(); got != want {
		t.Errorf("StatusLine = %q, want %q", got, want)
	}
}

func TestInspectorData(t *testing.T) {
	v := components.NewVehicle(gene.Pair(gene.Crossed, gene.Excitatory), components.Vec2{}, 0)
	d := InspectorData{Identity: components.Identity{ID: 2, Name: "crossed-excitatory"}, Vehicle: &v}

	if got := d.Title(); got != "#2 crossed-excitatory" {
		t.Errorf("Title = %q", got)
	}
	genes := d.geneLines()
	if len(genes) != 2 || !strings.HasPrefix(genes[0], "gene 0:") {
		t.Errorf("geneLines = %q", genes)
	}

	empty := components.NewVehicle(nil, components.Vec2{}, 0)
	d.Vehicle = &empty
	if genes := d.geneLines(); len(genes) != 1 || genes[0] != "genes: none" {
		t.Errorf("geneLines without genes = %q", genes)
	}
}
