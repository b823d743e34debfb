package geometry

import (
	"fmt"

	"github.com/Faultbox/roomview/pkg/math"
)

// UnitSquare builds an n x n subdivided square spanning [-0.5, 0.5] in x
// and y at z = 0, facing +z. Texture coordinates run from (0,0) at the
// lower left corner to (1,1) at the upper right.
func UnitSquare(n int, textured bool) (*Mesh, error) {
	if n < 1 {
		return nil, fmt.Errorf("unit square: %w: %d divisions", ErrInvalidSubdivision, n)
	}
	size := n + 1
	if err := checkCount(size, size); err != nil {
		return nil, fmt.Errorf("unit square: %w", err)
	}

	step := 1 / float32(n)
	vertices := make([]Vertex, 0, size*size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			s := float32(col) * step
			t := float32(row) * step
			vertices = append(vertices, Vertex{
				Position: math.Vec3{X: s - 0.5, Y: t - 0.5},
				Normal:   math.Vec3{Z: 1},
				TexCoord: math.Vec2{X: s, Y: t},
			})
		}
	}

	m, err := newMesh(vertices, RowColFaces(size, size), Triangles, textured)
	if err != nil {
		return nil, fmt.Errorf("unit square: %w", err)
	}
	if textured {
		CalcTangents(m)
	}
	return m, nil
}
