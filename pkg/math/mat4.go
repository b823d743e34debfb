package math

import "math"

// Mat4 is a 4x4 affine or projective transform stored column by column,
// the layout glUniformMatrix4fv expects without transposing:
//
//	[0 4  8 12]
//	[1 5  9 13]
//	[2 6 10 14]
//	[3 7 11 15]
type Mat4 [16]float32

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * math.Pi / 180
}

// Identity returns the identity transform.
func Identity() Mat4 {
	var m Mat4
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// Perspective returns the OpenGL clip-space projection for a vertical
// field of view fovY (radians) and width/height aspect.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := float32(1 / math.Tan(float64(fovY)/2))
	depth := near - far

	var m Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) / depth
	m[11] = -1
	m[14] = 2 * far * near / depth
	return m
}

// Translate moves points by (x, y, z).
func Translate(x, y, z float32) Mat4 {
	m := Identity()
	m[12], m[13], m[14] = x, y, z
	return m
}

// Scale scales each axis. A negative factor mirrors across that axis.
func Scale(x, y, z float32) Mat4 {
	m := Identity()
	m[0], m[5], m[10] = x, y, z
	return m
}

// sinCos returns the sine and cosine of a radian angle as float32.
func sinCos(angle float32) (s, c float32) {
	sn, cs := math.Sincos(float64(angle))
	return float32(sn), float32(cs)
}

// RotateX rotates counter-clockwise about +x, looking down the axis.
// angle is in radians.
func RotateX(angle float32) Mat4 {
	s, c := sinCos(angle)
	m := Identity()
	m[5], m[6] = c, s
	m[9], m[10] = -s, c
	return m
}

// RotateY rotates counter-clockwise about +y. angle is in radians.
func RotateY(angle float32) Mat4 {
	s, c := sinCos(angle)
	m := Identity()
	m[0], m[2] = c, -s
	m[8], m[10] = s, c
	return m
}

// RotateZ rotates counter-clockwise about +z. angle is in radians.
func RotateZ(angle float32) Mat4 {
	s, c := sinCos(angle)
	m := Identity()
	m[0], m[1] = c, s
	m[4], m[5] = -s, c
	return m
}

// Mul returns m * other: other is applied first.
func (m Mat4) Mul(other Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * other[col*4+k]
			}
			out[col*4+row] = sum
		}
	}
	return out
}

// MulVec4 transforms a homogeneous vector. Directions (w = 0) are
// unaffected by translation.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	var out Vec4
	for row := 0; row < 4; row++ {
		out[row] = m[row]*v[0] + m[4+row]*v[1] + m[8+row]*v[2] + m[12+row]*v[3]
	}
	return out
}

// TransformVec3 transforms a point (w = 1) and drops w.
func (m Mat4) TransformVec3(p Vec3) Vec3 {
	return m.MulVec4(Point(p.X, p.Y, p.Z)).XYZ()
}

// TransformDirection transforms a direction, ignoring translation.
func (m Mat4) TransformDirection(d Vec3) Vec3 {
	return m.MulVec4(Direction(d.X, d.Y, d.Z)).XYZ()
}

// column returns the xyz part of column i.
func (m Mat4) column(i int) Vec3 {
	return Vec3{m[i*4], m[i*4+1], m[i*4+2]}
}

// NormalMatrix returns the inverse transpose of the upper-left 3x3 block,
// column-major, for carrying normals through non-uniform and mirroring
// scales. For columns a, b, c its columns are b×c, c×a and a×b over the
// determinant. A singular block yields the identity.
func (m Mat4) NormalMatrix() [9]float32 {
	a, b, c := m.column(0), m.column(1), m.column(2)
	bc, ca, ab := b.Cross(c), c.Cross(a), a.Cross(b)
	det := a.Dot(bc)
	if det == 0 {
		return [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1}
	}
	inv := 1 / det
	bc, ca, ab = bc.Scale(inv), ca.Scale(inv), ab.Scale(inv)
	return [9]float32{
		bc.X, bc.Y, bc.Z,
		ca.X, ca.Y, ca.Z,
		ab.X, ab.Y, ab.Z,
	}
}

// ApproxEqual reports whether every element differs by at most eps.
func (m Mat4) ApproxEqual(other Mat4, eps float32) bool {
	for i := range m {
		if d := m[i] - other[i]; d > eps || d < -eps {
			return false
		}
	}
	return true
}

// Ptr returns a pointer to the first element for GL uniform uploads.
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}
