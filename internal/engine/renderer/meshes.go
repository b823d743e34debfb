package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/roomview/internal/engine/geometry"
	"github.com/Faultbox/roomview/internal/engine/scene"
	"github.com/Faultbox/roomview/internal/engine/shader"
)

// vertexStride is the byte size of one interleaved geometry.Vertex.
const vertexStride = int32(unsafe.Sizeof(geometry.Vertex{}))

// attribute describes one vertex attribute inside geometry.Vertex.
type attribute struct {
	size   int32
	offset uintptr
}

var vertexAttributes = [5]attribute{
	{3, unsafe.Offsetof(geometry.Vertex{}.Position)},
	{3, unsafe.Offsetof(geometry.Vertex{}.Normal)},
	{2, unsafe.Offsetof(geometry.Vertex{}.TexCoord)},
	{3, unsafe.Offsetof(geometry.Vertex{}.Tangent)},
	{3, unsafe.Offsetof(geometry.Vertex{}.Bitangent)},
}

// glMesh is one entry of the mesh table.
type glMesh struct {
	vao, vbo, ebo uint32
	count         int32
	mode          uint32
	attributes    int
	// layout is the program whose attribute locations the VAO was set
	// up for.
	layout uint32
}

// UploadMesh copies m into GPU buffers and returns its table index.
func (r *Renderer) UploadMesh(m *geometry.Mesh) (scene.MeshID, error) {
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return 0, fmt.Errorf("upload mesh: empty %s mesh", m.Topology)
	}

	var gm glMesh
	gm.count = int32(len(m.Indices))
	gm.mode = topologyMode(m.Topology)
	gm.attributes = m.Attributes()

	gl.GenVertexArrays(1, &gm.vao)
	gl.BindVertexArray(gm.vao)

	gl.GenBuffers(1, &gm.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*int(vertexStride), unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &gm.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, gm.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*2, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	id := scene.MeshID(len(r.meshes))
	r.meshes = append(r.meshes, gm)
	r.log.Debug("mesh uploaded",
		zap.Int("id", int(id)),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("indices", len(m.Indices)),
		zap.Bool("textured", m.Textured),
		zap.Stringer("topology", m.Topology))
	return id, nil
}

// bindLayout points the VAO's attributes at the current program's
// locations. Attributes the program does not use stay disabled, as do
// the tangent frame arrays of untextured meshes.
func (gm *glMesh) bindLayout(program uint32, loc shader.Locations) {
	gl.BindVertexArray(gm.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, gm.vbo)
	for i, l := range loc.Attributes() {
		if l < 0 {
			continue
		}
		if i >= gm.attributes {
			gl.DisableVertexAttribArray(uint32(l))
			continue
		}
		a := vertexAttributes[i]
		gl.EnableVertexAttribArray(uint32(l))
		gl.VertexAttribPointerWithOffset(uint32(l), a.size, gl.FLOAT, false, vertexStride, a.offset)
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gm.layout = program
}

func (gm *glMesh) delete() {
	gl.DeleteVertexArrays(1, &gm.vao)
	gl.DeleteBuffers(1, &gm.vbo)
	gl.DeleteBuffers(1, &gm.ebo)
	*gm = glMesh{}
}

func topologyMode(t geometry.Topology) uint32 {
	if t == geometry.TriangleStrip {
		return gl.TRIANGLE_STRIP
	}
	return gl.TRIANGLES
}
