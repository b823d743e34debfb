package geometry

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/roomview/pkg/math"
)

// SphereSection builds the part of a sphere centered at the origin that
// lies between two latitudes and two longitudes (degrees). Latitude is
// measured from the xy plane toward +z, longitude from +x toward +y.
func SphereSection(minLat, maxLat float32, numLat int, minLon, maxLon float32, numLon int, radius float32, textured bool) (*Mesh, error) {
	switch {
	case numLat < 1 || numLon < 1:
		return nil, fmt.Errorf("sphere section: %w: %d latitude, %d longitude divisions",
			ErrInvalidSubdivision, numLat, numLon)
	case minLat < -90 || maxLat > 90 || minLat >= maxLat:
		return nil, fmt.Errorf("sphere section: %w: latitude range [%g, %g]", ErrInvalidSubdivision, minLat, maxLat)
	case minLon >= maxLon:
		return nil, fmt.Errorf("sphere section: %w: longitude range [%g, %g]", ErrInvalidSubdivision, minLon, maxLon)
	case radius <= 0:
		return nil, fmt.Errorf("sphere section: %w: radius %g", ErrInvalidSubdivision, radius)
	}
	rows, cols := numLat+1, numLon+1
	if err := checkCount(rows, cols); err != nil {
		return nil, fmt.Errorf("sphere section: %w", err)
	}

	latStep := (maxLat - minLat) / float32(numLat)
	lonStep := (maxLon - minLon) / float32(numLon)

	vertices := make([]Vertex, 0, rows*cols)
	for row := 0; row < rows; row++ {
		lat := float64(math.DegToRad(minLat + float32(row)*latStep))
		cosLat, sinLat := gomath.Cos(lat), gomath.Sin(lat)
		for col := 0; col < cols; col++ {
			lon := float64(math.DegToRad(minLon + float32(col)*lonStep))
			dir := math.Vec3{
				X: float32(cosLat * gomath.Cos(lon)),
				Y: float32(cosLat * gomath.Sin(lon)),
				Z: float32(sinLat),
			}
			vertices = append(vertices, Vertex{
				Position: dir.Scale(radius),
				Normal:   dir,
				TexCoord: math.Vec2{X: float32(col) / float32(numLon), Y: float32(row) / float32(numLat)},
			})
		}
	}

	m, err := newMesh(vertices, RowColFaces(rows, cols), Triangles, textured)
	if err != nil {
		return nil, fmt.Errorf("sphere section: %w", err)
	}
	if textured {
		CalcTangents(m)
	}
	return m, nil
}
