package scene

import (
	"errors"
	"fmt"

	"github.com/Faultbox/roomview/internal/engine/geometry"
	"github.com/Faultbox/roomview/internal/engine/lighting"
	"github.com/Faultbox/roomview/internal/engine/texture"
	"github.com/Faultbox/roomview/pkg/math"
)

// drawCall captures the renderer state seen by one DrawMesh.
type drawCall struct {
	mesh      MeshID
	model     math.Mat4
	material  Material
	texture   Binding
	normalMap Binding
}

// recorder is a Renderer that logs every call and tracks current bindings.
type recorder struct {
	calls []string
	draws []drawCall
	// lights holds the last value emitted per slot
	lights  [lighting.MaxLights]lighting.Light
	bound   [2]Binding
	mat     Material
	meshes  []*geometry.Mesh
	filters map[TextureID][2]texture.Filter
	fail    bool
}

func newRecorder() *recorder {
	return &recorder{filters: make(map[TextureID][2]texture.Filter)}
}

func (r *recorder) log(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) UseProgram(program uint32) { r.log("UseProgram(%d)", program) }
func (r *recorder) SetModes(m Modes)          { r.log("SetModes(%+v)", m) }
func (r *recorder) SetGlobalAmbient(c math.Color4) {
	r.log("SetGlobalAmbient(%v)", c)
}

func (r *recorder) SetCamera(eye math.Vec3, view, projection math.Mat4) {
	r.log("SetCamera(%v, %v, %v)", eye, view, projection)
}

func (r *recorder) SetLight(index int, l lighting.Light) {
	r.lights[index] = l
	r.log("SetLight(%d, %+v)", index, l)
}

func (r *recorder) SetMaterial(m Material) {
	r.mat = m
	r.log("SetMaterial(%+v)", m)
}

func (r *recorder) BindTexture(slot TextureSlot, b Binding) {
	r.bound[slot] = b
	r.log("BindTexture(%v, %+v)", slot, b)
}

func (r *recorder) DrawMesh(id MeshID, model math.Mat4) {
	r.draws = append(r.draws, drawCall{
		mesh:      id,
		model:     model,
		material:  r.mat,
		texture:   r.bound[ColorMap],
		normalMap: r.bound[NormalMap],
	})
	r.log("DrawMesh(%d, %v)", id, model)
}

func (r *recorder) UploadMesh(m *geometry.Mesh) (MeshID, error) {
	if r.fail {
		return 0, errors.New("out of memory")
	}
	r.meshes = append(r.meshes, m)
	return MeshID(len(r.meshes) - 1), nil
}

func (r *recorder) SetTextureFilters(id TextureID, minFilter, magFilter texture.Filter) {
	r.filters[id] = [2]texture.Filter{minFilter, magFilter}
}

func (r *recorder) reset() {
	r.calls = nil
	r.draws = nil
}
