package math

// Vec4 is a 4-component homogeneous vector.
// A w of 1 denotes a point, a w of 0 a direction.
type Vec4 [4]float32

// Point returns the homogeneous point (x, y, z, 1).
func Point(x, y, z float32) Vec4 {
	return Vec4{x, y, z, 1}
}

// Direction returns the homogeneous direction (x, y, z, 0).
func Direction(x, y, z float32) Vec4 {
	return Vec4{x, y, z, 0}
}

// IsPoint reports whether v is a positional (w != 0) vector.
func (v Vec4) IsPoint() bool {
	return v[3] != 0
}

// XYZ returns the first three components.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v[0], v[1], v[2]}
}
