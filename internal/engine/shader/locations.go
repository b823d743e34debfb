package shader

import "fmt"

// Locations are the attribute and uniform slots of the lighting program.
// A location of -1 means the program does not use that input; writes to it
// are ignored by GL.
type Locations struct {
	// Vertex attributes
	Position  int32
	Normal    int32
	TexCoord  int32
	Tangent   int32
	Bitangent int32

	// Transforms
	Model          int32
	View           int32
	Projection     int32
	NormalMatrix   int32
	CameraPosition int32

	// Lights (arrays of lighting.MaxLights)
	GlobalAmbient    int32
	LightEnabled     int32
	LightPosition    int32
	LightAmbient     int32
	LightDiffuse     int32
	LightSpecular    int32
	LightAttenuation int32
	SpotDirection    int32
	SpotParams       int32

	// Material
	MaterialAmbient   int32
	MaterialDiffuse   int32
	MaterialSpecular  int32
	MaterialEmission  int32
	MaterialShininess int32

	// Textures and modes
	UseTexture   int32
	UseNormalMap int32
	Texture      int32
	NormalMap    int32
	TextureScale int32
	Realistic    int32
	Outline      int32
}

// Lookup reads every location from a linked program. The position
// attribute is required.
func Lookup(program uint32) (Locations, error) {
	u := func(name string) int32 { return uniform(program, name) }
	a := func(name string) int32 { return attrib(program, name) }

	loc := Locations{
		Position:  a("aPosition"),
		Normal:    a("aNormal"),
		TexCoord:  a("aTexCoord"),
		Tangent:   a("aTangent"),
		Bitangent: a("aBitangent"),

		Model:          u("uModel"),
		View:           u("uView"),
		Projection:     u("uProjection"),
		NormalMatrix:   u("uNormalMatrix"),
		CameraPosition: u("uCameraPosition"),

		GlobalAmbient:    u("uGlobalAmbient"),
		LightEnabled:     u("uLightEnabled"),
		LightPosition:    u("uLightPosition"),
		LightAmbient:     u("uLightAmbient"),
		LightDiffuse:     u("uLightDiffuse"),
		LightSpecular:    u("uLightSpecular"),
		LightAttenuation: u("uLightAttenuation"),
		SpotDirection:    u("uSpotDirection"),
		SpotParams:       u("uSpotParams"),

		MaterialAmbient:   u("uMaterialAmbient"),
		MaterialDiffuse:   u("uMaterialDiffuse"),
		MaterialSpecular:  u("uMaterialSpecular"),
		MaterialEmission:  u("uMaterialEmission"),
		MaterialShininess: u("uMaterialShininess"),

		UseTexture:   u("uUseTexture"),
		UseNormalMap: u("uUseNormalMap"),
		Texture:      u("uTexture"),
		NormalMap:    u("uNormalMap"),
		TextureScale: u("uTextureScale"),
		Realistic:    u("uRealistic"),
		Outline:      u("uOutline"),
	}
	if loc.Position < 0 {
		return loc, fmt.Errorf("program %d has no aPosition attribute", program)
	}
	if loc.Model < 0 || loc.View < 0 || loc.Projection < 0 {
		return loc, fmt.Errorf("program %d is missing a transform uniform", program)
	}
	return loc, nil
}

// Attributes returns the five vertex attribute locations in vertex layout order.
func (l Locations) Attributes() [5]int32 {
	return [5]int32{l.Position, l.Normal, l.TexCoord, l.Tangent, l.Bitangent}
}
