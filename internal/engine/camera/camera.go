// Package camera implements the viewer: an eye point with an orthonormal
// u (right), v (up), n (backward) basis and a perspective projection.
// The basis can be slid and rotated incrementally for navigation.
package camera

import (
	gomath "math"

	"github.com/Faultbox/roomview/pkg/math"
)

// Camera is a first-person viewer. The zero value is not usable; call New.
type Camera struct {
	eye    math.Vec3
	lookAt math.Vec3
	up     math.Vec3

	// Orthonormal view basis
	u, v, n math.Vec3

	fov    float32 // vertical field of view, degrees
	aspect float32
	near   float32
	far    float32
	proj   math.Mat4
}

// New returns a camera at (0,0,1) looking at the origin with +y up and
// a 50 degree square perspective.
func New() *Camera {
	c := &Camera{
		eye: math.Vec3{Z: 1},
		up:  math.Vec3{Y: 1},
	}
	c.setBasis()
	c.SetPerspective(50, 1, 1, 1000)
	return c
}

// SetPosition moves the eye and re-aims the camera at the look-at point.
func (c *Camera) SetPosition(eye math.Vec3) {
	c.eye = eye
	c.setBasis()
}

// SetLookAt sets the point the camera faces.
func (c *Camera) SetLookAt(p math.Vec3) {
	c.lookAt = p
	c.setBasis()
}

// SetViewUp sets the approximate up direction used to derive the basis.
func (c *Camera) SetViewUp(up math.Vec3) {
	c.up = up
	c.setBasis()
}

// setBasis rebuilds u, v, n from eye, lookAt and up. An eye on top of the
// look-at point, or an up vector parallel to the view direction, leaves
// the previous basis in place.
func (c *Camera) setBasis() {
	n := c.eye.Sub(c.lookAt)
	if n.Length() == 0 {
		return
	}
	n = n.Normalize()
	u := c.up.Cross(n)
	if u.Length() == 0 {
		return
	}
	c.n = n
	c.u = u.Normalize()
	c.v = c.n.Cross(c.u)
}

// Slide moves the eye along the camera's own axes: dx to the right,
// dy up, dz backward (negative dz moves forward).
func (c *Camera) Slide(dx, dy, dz float32) {
	c.eye = c.eye.
		Add(c.u.Scale(dx)).
		Add(c.v.Scale(dy)).
		Add(c.n.Scale(dz))
}

// Roll rotates the camera about its viewing axis. Positive angles roll
// counter-clockwise as seen by the viewer.
func (c *Camera) Roll(degrees float32) {
	c.u, c.v = rotatePair(c.u, c.v, degrees)
}

// Pitch tilts the camera about its right axis. Positive angles look up.
func (c *Camera) Pitch(degrees float32) {
	c.v, c.n = rotatePair(c.v, c.n, degrees)
}

// Heading turns the camera about its up axis. Positive angles turn left.
func (c *Camera) Heading(degrees float32) {
	c.n, c.u = rotatePair(c.n, c.u, degrees)
}

// rotatePair rotates the plane spanned by a and b so that a moves toward b.
func rotatePair(a, b math.Vec3, degrees float32) (math.Vec3, math.Vec3) {
	rad := float64(math.DegToRad(degrees))
	cs, sn := float32(gomath.Cos(rad)), float32(gomath.Sin(rad))
	return a.Scale(cs).Add(b.Scale(sn)), b.Scale(cs).Sub(a.Scale(sn))
}

// MoveAndTurn is the mouse navigation step: dx turns right, dy pitches up
// and dz moves forward.
func (c *Camera) MoveAndTurn(dx, dy, dz float32) {
	c.Heading(-dx)
	c.Pitch(dy)
	c.Slide(0, 0, -dz)
}

// SetPerspective sets the projection from a vertical field of view in
// degrees, the aspect ratio and the clip planes.
func (c *Camera) SetPerspective(fov, aspect, near, far float32) {
	c.fov, c.aspect, c.near, c.far = fov, aspect, near, far
	c.proj = math.Perspective(math.DegToRad(fov), aspect, near, far)
}

// ChangeAspectRatio updates the projection for a new viewport shape.
// The view is unaffected.
func (c *Camera) ChangeAspectRatio(ratio float32) {
	c.SetPerspective(c.fov, ratio, c.near, c.far)
}

// Position returns the eye point.
func (c *Camera) Position() math.Vec3 { return c.eye }

// Basis returns the right, up and backward unit vectors.
func (c *Camera) Basis() (u, v, n math.Vec3) { return c.u, c.v, c.n }

// AspectRatio returns the current projection aspect ratio.
func (c *Camera) AspectRatio() float32 { return c.aspect }

// ViewMatrix returns the world-to-eye transform.
func (c *Camera) ViewMatrix() math.Mat4 {
	u, v, n, e := c.u, c.v, c.n, c.eye
	return math.Mat4{
		u.X, v.X, n.X, 0,
		u.Y, v.Y, n.Y, 0,
		u.Z, v.Z, n.Z, 0,
		-u.Dot(e), -v.Dot(e), -n.Dot(e), 1,
	}
}

// ProjectionMatrix returns the perspective projection.
func (c *Camera) ProjectionMatrix() math.Mat4 { return c.proj }
