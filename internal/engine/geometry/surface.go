package geometry

import (
	"fmt"

	"github.com/Faultbox/roomview/pkg/math"
)

// FromTriangles builds an untextured triangle surface from positions and a
// counter-clockwise triangle index list. Vertex normals are averaged from
// the face normals.
func FromTriangles(positions []math.Vec3, indices []uint16) (*Mesh, error) {
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("triangle surface: %w: %d indices", ErrInvalidSubdivision, len(indices))
	}
	for _, i := range indices {
		if int(i) >= len(positions) {
			return nil, fmt.Errorf("triangle surface: index %d out of range (%d vertices)", i, len(positions))
		}
	}

	vertices := make([]Vertex, len(positions))
	for i, p := range positions {
		vertices[i].Position = p
	}
	m, err := newMesh(vertices, append([]uint16(nil), indices...), Triangles, false)
	if err != nil {
		return nil, fmt.Errorf("triangle surface: %w", err)
	}
	CalcNormals(m)
	return m, nil
}
