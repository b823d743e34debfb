package geometry

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/roomview/pkg/math"
)

// Conic builds the side of a truncated cone around the z axis with z in
// [-0.5, 0.5]. The radius moves linearly from bottomRadius at z = -0.5 to
// topRadius at z = 0.5. There are no end caps. A cylinder is a conic with
// equal radii.
func Conic(bottomRadius, topRadius float32, numSides, numStacks int, textured bool) (*Mesh, error) {
	if numSides < 3 || numStacks < 1 {
		return nil, fmt.Errorf("conic: %w: %d sides, %d stacks", ErrInvalidSubdivision, numSides, numStacks)
	}
	if bottomRadius < 0 || topRadius < 0 || (bottomRadius == 0 && topRadius == 0) {
		return nil, fmt.Errorf("conic: %w: radii %g, %g", ErrInvalidSubdivision, bottomRadius, topRadius)
	}
	rows, cols := numStacks+1, numSides+1
	if err := checkCount(rows, cols); err != nil {
		return nil, fmt.Errorf("conic: %w", err)
	}

	// Normal slope is constant along the side: the cross product of the
	// angular and axial surface tangents.
	dz := bottomRadius - topRadius

	vertices := make([]Vertex, 0, rows*cols)
	for row := 0; row < rows; row++ {
		t := float32(row) / float32(numStacks)
		z := t - 0.5
		radius := bottomRadius + (topRadius-bottomRadius)*t
		for col := 0; col < cols; col++ {
			s := float32(col) / float32(numSides)
			// The last column repeats angle 0 with s = 1.
			theta := 2 * gomath.Pi * float64(col%numSides) / float64(numSides)
			c, sn := float32(gomath.Cos(theta)), float32(gomath.Sin(theta))
			vertices = append(vertices, Vertex{
				Position: math.Vec3{X: radius * c, Y: radius * sn, Z: z},
				Normal:   math.Vec3{X: c, Y: sn, Z: dz}.Normalize(),
				TexCoord: math.Vec2{X: s, Y: t},
			})
		}
	}

	m, err := newMesh(vertices, RowColFaces(rows, cols), Triangles, textured)
	if err != nil {
		return nil, fmt.Errorf("conic: %w", err)
	}
	if textured {
		CalcTangents(m)
	}
	return m, nil
}
