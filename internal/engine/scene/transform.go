package scene

import "github.com/Faultbox/roomview/pkg/math"

// Transform applies an affine matrix to its subtree. Each builder call
// post-multiplies, so Translate then RotateX then Scale yields T*R*S and
// the scale acts on the geometry first.
type Transform struct {
	children
	local math.Mat4
}

// NewTransform returns an identity transform.
func NewTransform() *Transform {
	return &Transform{local: math.Identity()}
}

// Translate appends a translation.
func (t *Transform) Translate(x, y, z float32) *Transform {
	t.local = t.local.Mul(math.Translate(x, y, z))
	return t
}

// Scale appends a scale.
func (t *Transform) Scale(x, y, z float32) *Transform {
	t.local = t.local.Mul(math.Scale(x, y, z))
	return t
}

// RotateX appends a rotation about x in degrees.
func (t *Transform) RotateX(deg float32) *Transform {
	t.local = t.local.Mul(math.RotateX(math.DegToRad(deg)))
	return t
}

// RotateY appends a rotation about y in degrees.
func (t *Transform) RotateY(deg float32) *Transform {
	t.local = t.local.Mul(math.RotateY(math.DegToRad(deg)))
	return t
}

// RotateZ appends a rotation about z in degrees.
func (t *Transform) RotateZ(deg float32) *Transform {
	t.local = t.local.Mul(math.RotateZ(math.DegToRad(deg)))
	return t
}

// Matrix returns the local transform.
func (t *Transform) Matrix() math.Mat4 { return t.local }

// Draw composes the local matrix into the model matrix for the subtree.
func (t *Transform) Draw(s *State) {
	s.PushModel()
	s.Model = s.Model.Mul(t.local)
	t.drawChildren(s)
	s.PopModel()
}
