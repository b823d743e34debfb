package controls

import (
	"testing"

	"github.com/Faultbox/roomview/internal/engine/camera"
	"github.com/Faultbox/roomview/pkg/math"
)

func newCamera() *camera.Camera {
	c := camera.New()
	c.SetPosition(math.Vec3{Y: -100, Z: 50})
	c.SetLookAt(math.Vec3{Z: 50})
	c.SetViewUp(math.Vec3{Z: 1})
	return c
}

func near(a, b float32) bool {
	d := a - b
	return d < 1e-4 && d > -1e-4
}

func TestKeyActions(t *testing.T) {
	c := New(newCamera(), DefaultSettings(), 800, 600)
	tests := map[rune]Action{
		'i': ResetView,
		'1': TogglePower,
		'2': ToggleTextures,
		'3': ToggleOutlines,
		'4': ToggleNormalMaps,
		'r': None,
		'z': None,
	}
	for r, want := range tests {
		if got := c.Key(r); got != want {
			t.Errorf("Key(%q): got %v, want %v", r, got, want)
		}
	}
}

func TestKeySlides(t *testing.T) {
	cam := newCamera()
	c := New(cam, DefaultSettings(), 800, 600)

	c.Key('F')
	if p := cam.Position(); !near(p.Y, -95) {
		t.Errorf("F: got eye %v, want y=-95", p)
	}
	c.Key('f')
	c.Key('X')
	if p := cam.Position(); !near(p.X, 5) || !near(p.Y, -100) {
		t.Errorf("X: got eye %v, want (5,-100,50)", p)
	}
	c.Key('Y')
	if p := cam.Position(); !near(p.Z, 55) {
		t.Errorf("Y: got eye %v, want z=55", p)
	}
}

func TestKeyRotationsUndo(t *testing.T) {
	cam := newCamera()
	c := New(cam, DefaultSettings(), 800, 600)
	u0, v0, n0 := cam.Basis()
	for _, pair := range []string{"rR", "pP", "hH"} {
		c.Key(rune(pair[0]))
		c.Key(rune(pair[1]))
	}
	u, v, n := cam.Basis()
	for i, pair := range [][2]math.Vec3{{u0, u}, {v0, v}, {n0, n}} {
		d := pair[0].Sub(pair[1])
		if !near(d.Length(), 0) {
			t.Errorf("basis vector %d drifted by %v", i, d)
		}
	}
}

func TestVelocity(t *testing.T) {
	c := New(newCamera(), DefaultSettings(), 800, 600)
	c.Key('V')
	if !near(c.Velocity(), 1.2) {
		t.Errorf("V: got %v, want 1.2", c.Velocity())
	}
	for i := 0; i < 5; i++ {
		c.Key('v')
	}
	if !near(c.Velocity(), 0.2) {
		t.Errorf("after 5 v: got %v, want 0.2", c.Velocity())
	}
	c.Key('v')
	if !near(c.Velocity(), 0.1) {
		t.Errorf("floor: got %v, want 0.1", c.Velocity())
	}
	c.Key('v')
	if !near(c.Velocity(), 0.1) {
		t.Errorf("below floor: got %v, want 0.1", c.Velocity())
	}
}

func TestDragFromCenterMovesStraight(t *testing.T) {
	cam := newCamera()
	c := New(cam, DefaultSettings(), 800, 600)

	c.Press(400, 300, true)
	if p := cam.Position(); !near(p.Y, -99) || !near(p.X, 0) || !near(p.Z, 50) {
		t.Errorf("forward press: got eye %v, want (0,-99,50)", p)
	}
	c.Step()
	if p := cam.Position(); !near(p.Y, -98) {
		t.Errorf("second step: got eye %v, want y=-98", p)
	}
	c.Release()
	c.Move(400, 300)
	if p := cam.Position(); !near(p.Y, -98) {
		t.Errorf("move after release changed the eye: %v", p)
	}

	c.Press(400, 300, false)
	if p := cam.Position(); !near(p.Y, -99) {
		t.Errorf("backward press: got eye %v, want y=-99", p)
	}
	if !c.Dragging() {
		t.Error("Dragging: got false while pressed")
	}
}

func TestDragOffCenterTurns(t *testing.T) {
	cam := newCamera()
	c := New(cam, DefaultSettings(), 800, 600)
	_, _, n0 := cam.Basis()

	// Right of center: heading turns right, so the view direction (-n)
	// gains +x.
	c.Press(800, 300, true)
	_, _, n := cam.Basis()
	if -n.X <= 0 {
		t.Errorf("view direction %v did not turn right", n.Neg())
	}
	if near(n.Sub(n0).Length(), 0) {
		t.Error("basis unchanged after off-center drag")
	}
}

func TestActionString(t *testing.T) {
	if ToggleNormalMaps.String() != "toggle-normal-maps" || Action(99).String() != "unknown" {
		t.Error("Action.String mismatch")
	}
}
