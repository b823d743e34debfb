package scene

import (
	"github.com/Faultbox/roomview/internal/engine/geometry"
	"github.com/Faultbox/roomview/internal/engine/lighting"
	"github.com/Faultbox/roomview/internal/engine/texture"
	"github.com/Faultbox/roomview/pkg/math"
)

// MeshID indexes a mesh uploaded to the renderer's mesh table.
type MeshID int

// TextureID names an uploaded texture. Zero means no texture.
type TextureID uint32

// TextureSlot is a texture unit used by the lighting shader.
type TextureSlot int

const (
	ColorMap TextureSlot = iota
	NormalMap
)

func (t TextureSlot) String() string {
	if t == NormalMap {
		return "normal"
	}
	return "color"
}

// Binding is the texture bound to a slot. The zero value disables the slot.
type Binding struct {
	Texture TextureID
	Scale   float32
}

// Enabled reports whether a texture is bound.
func (b Binding) Enabled() bool { return b.Texture != 0 }

// Material holds the reflection coefficients of a surface.
type Material struct {
	Ambient   math.Color4
	Diffuse   math.Color4
	Specular  math.Color4
	Emission  math.Color4
	Shininess float32
}

// DefaultMaterial is black with opaque alpha and a shininess of 1.
func DefaultMaterial() Material {
	return Material{
		Ambient:   math.RGB(0, 0, 0),
		Diffuse:   math.RGB(0, 0, 0),
		Specular:  math.RGB(0, 0, 0),
		Emission:  math.RGB(0, 0, 0),
		Shininess: 1,
	}
}

// Modes are the application-wide render toggles.
type Modes struct {
	// Textures enables texture mapping together with the realistic
	// lighting model.
	Textures   bool
	NormalMaps bool
	Outlines   bool
}

// Renderer receives the draw protocol emitted by a traversal.
type Renderer interface {
	UseProgram(program uint32)
	SetModes(m Modes)
	SetGlobalAmbient(c math.Color4)
	SetCamera(eye math.Vec3, view, projection math.Mat4)
	SetLight(index int, l lighting.Light)
	SetMaterial(m Material)
	BindTexture(slot TextureSlot, b Binding)
	DrawMesh(id MeshID, model math.Mat4)
}

// MeshUploader stores a mesh on the GPU and returns its table index.
type MeshUploader interface {
	UploadMesh(m *geometry.Mesh) (MeshID, error)
}

// FilterSetter changes the sampling filters of an uploaded texture.
type FilterSetter interface {
	SetTextureFilters(id TextureID, minFilter, magFilter texture.Filter)
}
