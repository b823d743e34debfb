package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/roomview/internal/engine/lighting"
	"github.com/Faultbox/roomview/internal/engine/scene"
	"github.com/Faultbox/roomview/internal/engine/shader"
	"github.com/Faultbox/roomview/pkg/math"
)

// Texture units of the two sampler slots.
const (
	colorUnit  = 0
	normalUnit = 1
)

// UseProgram makes program current and looks up its locations on first use.
func (r *Renderer) UseProgram(program uint32) {
	if program == r.program {
		return
	}
	if program == 0 {
		gl.UseProgram(0)
		r.program, r.loc = 0, shader.Locations{}
		return
	}

	loc, ok := r.locations[program]
	if !ok {
		var err error
		loc, err = shader.Lookup(program)
		if err != nil {
			r.log.Error("program rejected", zap.Uint32("program", program), zap.Error(err))
			return
		}
		r.locations[program] = loc
		r.log.Debug("program locations resolved", zap.Uint32("program", program))
	}

	gl.UseProgram(program)
	r.program, r.loc = program, loc
	gl.Uniform1i(loc.Texture, colorUnit)
	gl.Uniform1i(loc.NormalMap, normalUnit)
	r.lightsDirty = true
}

// ForgetProgram drops cached locations, for a program about to be deleted.
func (r *Renderer) ForgetProgram(program uint32) {
	delete(r.locations, program)
	if r.program == program {
		gl.UseProgram(0)
		r.program, r.loc = 0, shader.Locations{}
	}
}

// SetModes uploads the render toggles.
func (r *Renderer) SetModes(m scene.Modes) {
	if r.program == 0 {
		return
	}
	gl.Uniform1i(r.loc.Realistic, boolInt(m.Textures))
	gl.Uniform1i(r.loc.Outline, boolInt(m.Outlines))
}

// SetGlobalAmbient uploads the scene-wide ambient light.
func (r *Renderer) SetGlobalAmbient(c math.Color4) {
	if r.program == 0 {
		return
	}
	gl.Uniform4f(r.loc.GlobalAmbient, c.R, c.G, c.B, c.A)
}

// SetCamera uploads the view and projection matrices and the eye position.
func (r *Renderer) SetCamera(eye math.Vec3, view, projection math.Mat4) {
	if r.program == 0 {
		return
	}
	gl.UniformMatrix4fv(r.loc.View, 1, false, view.Ptr())
	gl.UniformMatrix4fv(r.loc.Projection, 1, false, projection.Ptr())
	gl.Uniform3f(r.loc.CameraPosition, eye.X, eye.Y, eye.Z)
}

// SetLight records a light slot. Light arrays are uploaded before the
// next draw.
func (r *Renderer) SetLight(index int, l lighting.Light) {
	if err := r.lights.Put(index, l); err != nil {
		r.log.Warn("light ignored", zap.Int("index", index), zap.Error(err))
		return
	}
	r.lightsDirty = true
}

func (r *Renderer) flushLights() {
	if !r.lightsDirty || r.program == 0 {
		return
	}
	const n = lighting.MaxLights
	ambient, diffuse, specular := r.lights.Colors()
	directions, spots := r.lights.Spots()
	flags := r.lights.EnabledFlags()
	positions := r.lights.Positions()
	attenuations := r.lights.Attenuations()

	gl.Uniform1iv(r.loc.LightEnabled, n, &flags[0])
	gl.Uniform4fv(r.loc.LightPosition, n, &positions[0])
	gl.Uniform4fv(r.loc.LightAmbient, n, &ambient[0])
	gl.Uniform4fv(r.loc.LightDiffuse, n, &diffuse[0])
	gl.Uniform4fv(r.loc.LightSpecular, n, &specular[0])
	gl.Uniform3fv(r.loc.LightAttenuation, n, &attenuations[0])
	gl.Uniform3fv(r.loc.SpotDirection, n, &directions[0])
	gl.Uniform2fv(r.loc.SpotParams, n, &spots[0])
	r.lightsDirty = false
}

// SetMaterial uploads the surface reflection coefficients.
func (r *Renderer) SetMaterial(m scene.Material) {
	if r.program == 0 {
		return
	}
	uniformColor(r.loc.MaterialAmbient, m.Ambient)
	uniformColor(r.loc.MaterialDiffuse, m.Diffuse)
	uniformColor(r.loc.MaterialSpecular, m.Specular)
	uniformColor(r.loc.MaterialEmission, m.Emission)
	gl.Uniform1f(r.loc.MaterialShininess, m.Shininess)
}

// BindTexture binds b to the unit of slot and toggles its sampler flag.
func (r *Renderer) BindTexture(slot scene.TextureSlot, b scene.Binding) {
	if r.program == 0 {
		return
	}
	unit, flag := uint32(colorUnit), r.loc.UseTexture
	if slot == scene.NormalMap {
		unit, flag = normalUnit, r.loc.UseNormalMap
	}
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, uint32(b.Texture))
	gl.Uniform1i(flag, boolInt(b.Enabled()))
	if slot == scene.ColorMap {
		r.colorBound = b.Enabled()
	}
	// The color map owns the scale; a normal map alone still needs one.
	if b.Enabled() && (slot == scene.ColorMap || !r.colorBound) {
		gl.Uniform1f(r.loc.TextureScale, textureScale(b.Scale))
	}
}

// DrawMesh draws an uploaded mesh with model as its model matrix.
func (r *Renderer) DrawMesh(id scene.MeshID, model math.Mat4) {
	if r.program == 0 {
		return
	}
	if int(id) < 0 || int(id) >= len(r.meshes) {
		r.log.Warn("draw of unknown mesh", zap.Int("id", int(id)))
		return
	}
	r.flushLights()

	normal := model.NormalMatrix()
	gl.UniformMatrix4fv(r.loc.Model, 1, false, model.Ptr())
	gl.UniformMatrix3fv(r.loc.NormalMatrix, 1, false, &normal[0])

	gm := &r.meshes[id]
	if gm.layout != r.program {
		gm.bindLayout(r.program, r.loc)
	}
	gl.BindVertexArray(gm.vao)
	gl.DrawElementsWithOffset(gm.mode, gm.count, gl.UNSIGNED_SHORT, 0)
	gl.BindVertexArray(0)
}

func uniformColor(loc int32, c math.Color4) {
	gl.Uniform4f(loc, c.R, c.G, c.B, c.A)
}

func textureScale(s float32) float32 {
	if s <= 0 {
		return 1
	}
	return s
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
