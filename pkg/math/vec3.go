// Package math provides the vector, matrix and color types used by the scene graph.
package math

import "math"

// Vec3 is a position, direction or normal in 3-space.
type Vec3 struct {
	X, Y, Z float32
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Neg() Vec3       { return Vec3{-v.X, -v.Y, -v.Z} }

// Scale multiplies every component by s.
func (v Vec3) Scale(s float32) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Dot(o Vec3) float32 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the right-handed cross product v × o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean norm.
func (v Vec3) Length() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Normalize returns v scaled to unit length. The zero vector stays zero,
// so accumulated normals of unreferenced vertices remain (0, 0, 0).
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Distance returns the distance between two points.
func (v Vec3) Distance(o Vec3) float32 { return v.Sub(o).Length() }

// Array returns the components for GL uniform arrays.
func (v Vec3) Array() [3]float32 { return [3]float32{v.X, v.Y, v.Z} }
