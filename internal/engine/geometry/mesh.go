// Package geometry builds the procedural meshes drawn by the scene graph:
// subdivided squares, cones, sphere sections, troughs and generic triangle
// surfaces, together with their vertex normals and tangent frames.
package geometry

import (
	"errors"
	"fmt"

	"github.com/Faultbox/roomview/pkg/math"
)

// MaxVertices is the largest vertex count addressable by uint16 indices.
const MaxVertices = 1 << 16

var (
	// ErrInvalidSubdivision is returned when a generator receives a
	// subdivision count or range it cannot build a surface from.
	ErrInvalidSubdivision = errors.New("invalid subdivision")

	// ErrTooManyVertices is returned when a mesh would need indices wider than 16 bits.
	ErrTooManyVertices = errors.New("too many vertices")
)

// Topology selects how the index list is assembled into triangles.
type Topology int

const (
	Triangles Topology = iota
	TriangleStrip
)

func (t Topology) String() string {
	switch t {
	case Triangles:
		return "triangles"
	case TriangleStrip:
		return "triangle-strip"
	default:
		return fmt.Sprintf("topology(%d)", int(t))
	}
}

// Vertex is the interleaved vertex layout uploaded to the GPU.
// Fields are tightly packed float32 values (14 per vertex).
type Vertex struct {
	Position  math.Vec3
	Normal    math.Vec3
	TexCoord  math.Vec2
	Tangent   math.Vec3
	Bitangent math.Vec3
}

// Mesh is an indexed vertex list. A mesh is not modified after its
// generator returns, so one mesh may back any number of scene nodes.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
	Topology Topology
	Textured bool
}

func newMesh(vertices []Vertex, indices []uint16, topology Topology, textured bool) (*Mesh, error) {
	if len(vertices) > MaxVertices {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyVertices, len(vertices), MaxVertices)
	}
	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Topology: topology,
		Textured: textured,
	}, nil
}

// checkCount validates a grid size before any allocation happens.
func checkCount(rows, cols int) error {
	if rows*cols > MaxVertices {
		return fmt.Errorf("%w: %dx%d grid", ErrTooManyVertices, rows, cols)
	}
	return nil
}

// Attribute counts in Vertex field order. Untextured meshes carry no
// tangent frame, so only position, normal and texture coordinates apply.
const (
	UntexturedAttributes = 3
	TexturedAttributes   = 5
)

// Attributes returns how many leading Vertex fields hold data for m.
func (m *Mesh) Attributes() int {
	if m.Textured {
		return TexturedAttributes
	}
	return UntexturedAttributes
}

// TriangleCount returns the number of non-degenerate triangles.
func (m *Mesh) TriangleCount() int {
	n := 0
	m.Triangles(func(_, _, _ uint16) { n++ })
	return n
}

// Triangles calls fn for every triangle of the mesh with its vertex
// indices in counter-clockwise order. For strips, the winding of odd
// triangles is swapped back and triangles that repeat an index (the
// degenerate row joins) are skipped.
func (m *Mesh) Triangles(fn func(i0, i1, i2 uint16)) {
	idx := m.Indices
	switch m.Topology {
	case Triangles:
		for i := 0; i+2 < len(idx); i += 3 {
			fn(idx[i], idx[i+1], idx[i+2])
		}
	case TriangleStrip:
		for i := 0; i+2 < len(idx); i++ {
			a, b, c := idx[i], idx[i+1], idx[i+2]
			if a == b || b == c || a == c {
				continue
			}
			if i%2 == 1 {
				a, b = b, a
			}
			fn(a, b, c)
		}
	}
}

// Bounds returns the axis-aligned bounding box of the vertex positions.
func (m *Mesh) Bounds() (lo, hi math.Vec3) {
	if len(m.Vertices) == 0 {
		return lo, hi
	}
	lo, hi = m.Vertices[0].Position, m.Vertices[0].Position
	for _, v := range m.Vertices[1:] {
		p := v.Position
		lo = math.Vec3{X: min(lo.X, p.X), Y: min(lo.Y, p.Y), Z: min(lo.Z, p.Z)}
		hi = math.Vec3{X: max(hi.X, p.X), Y: max(hi.Y, p.Y), Z: max(hi.Z, p.Z)}
	}
	return lo, hi
}

// gridIndex maps a (row, col) grid coordinate to a vertex index for a
// surface whose vertices were emitted in row order.
func gridIndex(row, col, ncols int) uint16 {
	return uint16(row*ncols + col)
}

// RowColFaces returns the triangle list for an nrows x ncols vertex grid
// laid out in row order. Each cell becomes two counter-clockwise triangles.
func RowColFaces(nrows, ncols int) []uint16 {
	if nrows < 2 || ncols < 2 {
		return nil
	}
	faces := make([]uint16, 0, (nrows-1)*(ncols-1)*6)
	for row := 0; row < nrows-1; row++ {
		for col := 0; col < ncols-1; col++ {
			faces = append(faces,
				gridIndex(row+1, col, ncols),
				gridIndex(row, col, ncols),
				gridIndex(row, col+1, ncols),

				gridIndex(row+1, col, ncols),
				gridIndex(row, col+1, ncols),
				gridIndex(row+1, col+1, ncols),
			)
		}
	}
	return faces
}
