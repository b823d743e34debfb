package math

import (
	"testing"
)

func TestVec2Sub(t *testing.T) {
	got := Vec2{0.75, 1}.Sub(Vec2{0.25, 0.5})
	if got != (Vec2{0.5, 0.5}) {
		t.Errorf("Vec2.Sub() = %v, want (0.5, 0.5)", got)
	}
}

func TestVec3Basics(t *testing.T) {
	a, b := Vec3{1, 2, 3}, Vec3{4, 6, 3}
	if got := b.Sub(a); got != (Vec3{3, 4, 0}) {
		t.Errorf("Vec3.Sub() = %v, want (3, 4, 0)", got)
	}
	if got := a.Distance(b); got != 5 {
		t.Errorf("Vec3.Distance() = %v, want 5", got)
	}
	if got := a.Dot(b); got != 25 {
		t.Errorf("Vec3.Dot() = %v, want 25", got)
	}
	if got := a.Add(b).Neg(); got != (Vec3{-5, -8, -6}) {
		t.Errorf("Vec3.Add().Neg() = %v, want (-5, -8, -6)", got)
	}
	if got := (Vec3{0, 3, 4}).Normalize(); abs(got.Length()-1) > 1e-6 || abs(got.Z-0.8) > 1e-6 {
		t.Errorf("Vec3.Normalize() = %v, want (0, 0.6, 0.8)", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	got := Vec3{}.Normalize()
	if got != (Vec3{}) {
		t.Errorf("Vec3{}.Normalize() = %v, want zero vector", got)
	}
}

func TestVec4Kinds(t *testing.T) {
	if !Point(1, 2, 3).IsPoint() {
		t.Error("Point should be positional")
	}
	if Direction(0, 0, 1).IsPoint() {
		t.Error("Direction should not be positional")
	}
	if got := Point(1, 2, 3).XYZ(); got != (Vec3{1, 2, 3}) {
		t.Errorf("Vec4.XYZ() = %v, want (1, 2, 3)", got)
	}
}

func TestColorClamp(t *testing.T) {
	c := RGBA(1.5, -0.2, 0.5, 2).Clamp()
	want := Color4{1, 0, 0.5, 1}
	if c != want {
		t.Errorf("Color4.Clamp() = %v, want %v", c, want)
	}
}

func TestColorArithmetic(t *testing.T) {
	a := RGB(0.2, 0.4, 0.6)
	if got := a.Add(RGB(0.1, 0.1, 0.1)); abs(got.R-0.3) > 1e-6 || got.A != 2 {
		t.Errorf("Color4.Add() = %v", got)
	}
	if got := a.Mul(RGBA(0.5, 0.5, 0.5, 0.5)); abs(got.B-0.3) > 1e-6 || got.A != 0.5 {
		t.Errorf("Color4.Mul() = %v", got)
	}
	r, g, b := RGB(1, 0.5, 0).Bytes()
	if r != 255 || g != 127 || b != 0 {
		t.Errorf("Color4.Bytes() = (%d, %d, %d), want (255, 127, 0)", r, g, b)
	}
}
