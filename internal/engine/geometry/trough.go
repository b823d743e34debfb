package geometry

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/roomview/pkg/math"
)

// Trough builds an open tube shell of radius 1 with z in [-0.25, 0.25] as
// a single triangle strip. The outer ring is emitted first, bottom to top,
// with outward normals; the inner ring follows, top to bottom, with the
// normals flipped. Each ring has numStacks+1 rows of numSides+1 columns,
// the last column repeating angle 0.
func Trough(numSides, numStacks int, textured bool) (*Mesh, error) {
	if numSides < 3 || numStacks < 1 {
		return nil, fmt.Errorf("trough: %w: %d sides, %d stacks", ErrInvalidSubdivision, numSides, numStacks)
	}
	cols := numSides + 1
	rows := 2 * (numStacks + 1)
	if err := checkCount(rows, cols); err != nil {
		return nil, fmt.Errorf("trough: %w", err)
	}

	vertices := make([]Vertex, 0, rows*cols)
	sign := float32(1)
	for ring := 0; ring < 2; ring++ {
		for stack := 0; stack <= numStacks; stack++ {
			// Both rings share the rim row bit for bit
			step := stack
			if ring == 1 {
				step = numStacks - stack
			}
			z := 0.5*float32(step)/float32(numStacks) - 0.25
			t := 2*z + 0.5
			for col := 0; col < cols; col++ {
				theta := 2 * gomath.Pi * float64(col%numSides) / float64(numSides)
				c, s := float32(gomath.Cos(theta)), float32(gomath.Sin(theta))
				vertices = append(vertices, Vertex{
					Position: math.Vec3{X: c, Y: s, Z: z},
					Normal:   math.Vec3{X: sign * c, Y: sign * s},
					TexCoord: math.Vec2{X: float32(col) / float32(numSides), Y: t},
				})
			}
		}
		sign = -1
	}

	m, err := newMesh(vertices, troughStrip(rows-1, cols), TriangleStrip, textured)
	if err != nil {
		return nil, fmt.Errorf("trough: %w", err)
	}
	if textured {
		CalcTangents(m)
	}
	return m, nil
}

// troughStrip zig-zags across each pair of adjacent rows. Repeating the
// last vertex of a row and the first vertex of the next one produces the
// degenerate triangles that join the rows.
func troughStrip(numRows, numCols int) []uint16 {
	strip := make([]uint16, 0, numRows*(2*numCols+2))
	for row := 0; row < numRows; row++ {
		if row > 0 {
			strip = append(strip, gridIndex(row+1, 0, numCols))
		}
		for col := 0; col < numCols; col++ {
			strip = append(strip, gridIndex(row+1, col, numCols), gridIndex(row, col, numCols))
		}
		strip = append(strip, gridIndex(row, numCols, numCols))
	}
	return strip
}
