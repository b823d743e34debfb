// Package controls maps keyboard and mouse input onto camera motion and
// viewer toggles.
package controls

import (
	"github.com/Faultbox/roomview/internal/engine/camera"
)

// Action is a request the controls cannot carry out themselves.
type Action int

const (
	None Action = iota
	ResetView
	TogglePower
	ToggleTextures
	ToggleOutlines
	ToggleNormalMaps
)

var actionNames = [...]string{"none", "reset-view", "toggle-power", "toggle-textures",
	"toggle-outlines", "toggle-normal-maps"}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Settings are the tunable navigation constants.
type Settings struct {
	Velocity     float32 // initial mouse velocity
	VelocityStep float32
	MinVelocity  float32 // velocity set when a decrease would drop below VelocityStep
	KeyStep      float32 // slide distance per key press
	KeyAngle     float32 // degrees per rotation key press
}

// DefaultSettings returns the stock navigation feel.
func DefaultSettings() Settings {
	return Settings{
		Velocity:     1,
		VelocityStep: 0.2,
		MinVelocity:  0.1,
		KeyStep:      5,
		KeyAngle:     5,
	}
}

// Controls drives a camera from input events.
type Controls struct {
	cam      *camera.Camera
	settings Settings
	velocity float32

	dragging bool
	forward  bool
	mouseX   int
	mouseY   int
	width    int
	height   int
}

// New returns controls for cam in a window of the given size.
func New(cam *camera.Camera, s Settings, width, height int) *Controls {
	c := &Controls{cam: cam, settings: s, velocity: s.Velocity}
	c.Resize(width, height)
	return c
}

// Velocity returns the current mouse navigation speed.
func (c *Controls) Velocity() float32 { return c.velocity }

// Dragging reports whether a mouse button is held.
func (c *Controls) Dragging() bool { return c.dragging }

// Resize records the window size used to center mouse offsets.
func (c *Controls) Resize(width, height int) {
	if width > 0 && height > 0 {
		c.width, c.height = width, height
	}
}

// Key handles a typed character. Camera keys act immediately; toggles are
// returned to the caller.
func (c *Controls) Key(r rune) Action {
	step, angle := c.settings.KeyStep, c.settings.KeyAngle
	switch r {
	case 'i':
		return ResetView
	case 'r':
		c.cam.Roll(angle)
	case 'R':
		c.cam.Roll(-angle)
	case 'p':
		c.cam.Pitch(angle)
	case 'P':
		c.cam.Pitch(-angle)
	case 'h':
		c.cam.Heading(angle)
	case 'H':
		c.cam.Heading(-angle)
	case 'X':
		c.cam.Slide(step, 0, 0)
	case 'x':
		c.cam.Slide(-step, 0, 0)
	case 'Y':
		c.cam.Slide(0, step, 0)
	case 'y':
		c.cam.Slide(0, -step, 0)
	case 'F':
		c.cam.Slide(0, 0, -step)
	case 'f':
		c.cam.Slide(0, 0, step)
	case 'V':
		c.velocity += c.settings.VelocityStep
	case 'v':
		c.velocity -= c.settings.VelocityStep
		if c.velocity < c.settings.VelocityStep {
			c.velocity = c.settings.MinVelocity
		}
	case '1':
		return TogglePower
	case '2':
		return ToggleTextures
	case '3':
		return ToggleOutlines
	case '4':
		return ToggleNormalMaps
	}
	return None
}

// Press starts dragging at (x, y): forward for the primary button,
// backward otherwise. The camera moves once immediately.
func (c *Controls) Press(x, y int, forward bool) {
	c.dragging, c.forward = true, forward
	c.mouseX, c.mouseY = x, y
	c.Step()
}

// Release stops dragging.
func (c *Controls) Release() { c.dragging = false }

// Move updates the pointer position. While dragging the camera moves at
// once toward the new offset.
func (c *Controls) Move(x, y int) {
	c.mouseX, c.mouseY = x, y
	if c.dragging {
		c.Step()
	}
}

// Step applies one navigation increment: the pointer's offset from the
// window center turns and pitches, velocity moves along the view.
func (c *Controls) Step() {
	if c.width == 0 || c.height == 0 {
		return
	}
	w, h := float32(c.width), float32(c.height)
	dx := 4 * (float32(c.mouseX) - w/2) / w
	dy := 4 * (h/2 - float32(c.mouseY)) / h
	dz := c.velocity
	if !c.forward {
		dz = -dz
	}
	c.cam.MoveAndTurn(dx*c.velocity, dy*c.velocity, dz)
}
