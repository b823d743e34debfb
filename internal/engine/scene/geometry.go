package scene

import (
	"fmt"

	"github.com/Faultbox/roomview/internal/engine/geometry"
)

// Geometry draws a shared, immutable mesh with the current model matrix.
type Geometry struct {
	children
	mesh *geometry.Mesh
	id   MeshID
}

// NewGeometry uploads mesh and returns a node drawing it.
func NewGeometry(u MeshUploader, mesh *geometry.Mesh) (*Geometry, error) {
	id, err := u.UploadMesh(mesh)
	if err != nil {
		return nil, fmt.Errorf("upload mesh: %w", err)
	}
	return &Geometry{mesh: mesh, id: id}, nil
}

// Mesh returns the geometry payload.
func (g *Geometry) Mesh() *geometry.Mesh { return g.mesh }

// ID returns the renderer mesh index.
func (g *Geometry) ID() MeshID { return g.id }

// Draw issues the draw call, then draws any children.
func (g *Geometry) Draw(s *State) {
	s.Renderer.DrawMesh(g.id, s.Model)
	g.drawChildren(s)
}
