package math

// Vec2 is a texture coordinate pair (s, t).
type Vec2 struct {
	X, Y float32
}

// Sub returns the coordinate delta v - other, as used by the tangent solve.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}
