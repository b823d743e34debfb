package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	id := Identity()
	result := m.Mul(id)

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)

	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Errorf("Scale diagonal: got (%f, %f, %f), want (2, 3, 4)", m[0], m[5], m[10])
	}
}

func TestTransformVec3(t *testing.T) {
	if got := Translate(10, 20, 30).TransformVec3(Vec3{1, 2, 3}); got != (Vec3{11, 22, 33}) {
		t.Errorf("TransformVec3 translate: got %v, want (11, 22, 33)", got)
	}
	if got := Scale(2, 2, 2).TransformVec3(Vec3{1, 2, 3}); got != (Vec3{2, 4, 6}) {
		t.Errorf("TransformVec3 scale: got %v, want (2, 4, 6)", got)
	}
	if got := Translate(10, 20, 30).TransformDirection(Vec3{0, 0, 1}); got != (Vec3{0, 0, 1}) {
		t.Errorf("TransformDirection: got %v, want (0, 0, 1)", got)
	}
}

func TestRotateY90(t *testing.T) {
	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	p := RotateY(float32(math.Pi / 2)).TransformVec3(Vec3{1, 0, 0})
	if abs(p.X) > 0.001 || abs(p.Y) > 0.001 || abs(p.Z+1) > 0.001 {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", p)
	}
}

func TestPerspective(t *testing.T) {
	fov := float32(math.Pi / 4) // 45 degrees
	aspect := float32(1.0)
	near := float32(0.1)
	far := float32(100.0)

	m := Perspective(fov, aspect, near, far)

	// Should be a valid projection matrix (not identity)
	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	// Element [15] should be 0 for perspective projection
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	// Element [11] should be -1 for perspective projection
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestPerspectiveMatchesMathGL(t *testing.T) {
	got := Perspective(DegToRad(50), 4.0/3.0, 1, 1000)
	want := mgl32.Perspective(mgl32.DegToRad(50), 4.0/3.0, 1, 1000)
	if !got.ApproxEqual(Mat4(want), 1e-4) {
		t.Errorf("Perspective: got %v, want %v", got, want)
	}
}

func TestRotationsMatchMathGL(t *testing.T) {
	angle := DegToRad(30)
	tests := []struct {
		name string
		got  Mat4
		want mgl32.Mat4
	}{
		{"x", RotateX(angle), mgl32.HomogRotate3DX(angle)},
		{"y", RotateY(angle), mgl32.HomogRotate3DY(angle)},
		{"z", RotateZ(angle), mgl32.HomogRotate3DZ(angle)},
	}
	for _, tt := range tests {
		if !tt.got.ApproxEqual(Mat4(tt.want), 1e-5) {
			t.Errorf("Rotate %s: got %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestCompositionOrder(t *testing.T) {
	tr := Translate(10, 0, 0)
	rot := RotateZ(DegToRad(90))
	sc := Scale(2, 1, 1)

	trs := tr.Mul(rot).Mul(sc)
	tsr := tr.Mul(sc).Mul(rot)

	want := mgl32.Translate3D(10, 0, 0).Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(90))).Mul4(mgl32.Scale3D(2, 1, 1))
	if !trs.ApproxEqual(Mat4(want), 1e-5) {
		t.Errorf("T*R*S: got %v, want %v", trs, want)
	}

	// (1,0,0) scaled to (2,0,0), rotated to (0,2,0), translated to (10,2,0)
	p := trs.TransformVec3(Vec3{1, 0, 0})
	if abs(p.X-10) > 1e-5 || abs(p.Y-2) > 1e-5 || abs(p.Z) > 1e-5 {
		t.Errorf("T*R*S point: got %v, want (10, 2, 0)", p)
	}

	if trs.ApproxEqual(tsr, 1e-5) {
		t.Error("T*R*S and T*S*R should differ for a non-uniform scale")
	}
}

func TestNormalMatrix(t *testing.T) {
	// Non-uniform scale: normals scale by the reciprocal
	n := Scale(2, 4, 1).NormalMatrix()
	want := [9]float32{0.5, 0, 0, 0, 0.25, 0, 0, 0, 1}
	for i := range n {
		if abs(n[i]-want[i]) > 1e-6 {
			t.Fatalf("NormalMatrix: got %v, want %v", n, want)
		}
	}
}

func TestNormalMatrixMatchesMathGL(t *testing.T) {
	m := Translate(3, -2, 5).Mul(RotateY(DegToRad(40))).Mul(Scale(2, -3, 4))
	mg := mgl32.Mat4(m).Mat3().Inv().Transpose()
	got := m.NormalMatrix()
	for i := range got {
		if abs(got[i]-mg[i]) > 1e-5 {
			t.Fatalf("NormalMatrix: got %v, want %v", got, mg)
		}
	}

	var singular Mat4
	if singular.NormalMatrix() != [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1} {
		t.Error("NormalMatrix of a singular matrix should be identity")
	}
}

func TestMulVec4Direction(t *testing.T) {
	m := Translate(0, 200, 0).Mul(Scale(1, -1, 1))

	p := m.MulVec4(Point(0, 40, 38))
	if p != (Vec4{0, 160, 38, 1}) {
		t.Errorf("MulVec4 point: got %v, want (0, 160, 38, 1)", p)
	}

	// Directions ignore translation
	d := m.MulVec4(Direction(0, 1, 0))
	if d != (Vec4{0, -1, 0, 0}) {
		t.Errorf("MulVec4 direction: got %v, want (0, -1, 0, 0)", d)
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
