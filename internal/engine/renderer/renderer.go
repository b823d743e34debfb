// Package renderer implements the scene draw protocol on OpenGL 4.1:
// it owns uploaded meshes and textures, feeds the lighting program its
// uniforms, and exposes the frame and stencil controls of the mirror pass.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/roomview/internal/engine/lighting"
	"github.com/Faultbox/roomview/internal/engine/scene"
	"github.com/Faultbox/roomview/internal/engine/shader"
	"github.com/Faultbox/roomview/internal/logger"
	"github.com/Faultbox/roomview/pkg/math"
)

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor math.Color4
	// Multisample enables GL_MULTISAMPLE when the window has sample buffers.
	Multisample bool
}

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config Config
	log    *zap.Logger

	program   uint32
	loc       shader.Locations
	locations map[uint32]shader.Locations

	meshes   []glMesh
	textures map[scene.TextureID]bool

	lights      lighting.Set
	lightsDirty bool
	colorBound  bool
}

var (
	_ scene.Renderer     = (*Renderer)(nil)
	_ scene.MeshUploader = (*Renderer)(nil)
	_ scene.FilterSetter = (*Renderer)(nil)
)

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config:    cfg,
		log:       logger.Named("renderer"),
		locations: make(map[uint32]shader.Locations),
		textures:  make(map[scene.TextureID]bool),
	}
	r.lights.Clear()

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
		zap.String("glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.ONE, gl.ONE_MINUS_SRC_ALPHA)
	if cfg.Multisample {
		gl.Enable(gl.MULTISAMPLE)
	}
	c := cfg.ClearColor
	gl.ClearColor(c.R, c.G, c.B, c.A)

	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

// Close releases every mesh and texture.
func (r *Renderer) Close() {
	r.log.Info("closing renderer",
		zap.Int("meshes", len(r.meshes)),
		zap.Int("textures", len(r.textures)))
	for i := range r.meshes {
		r.meshes[i].delete()
	}
	r.meshes = nil
	for id := range r.textures {
		r.deleteTexture(id)
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the viewport size.
func (r *Renderer) Size() (int, int) {
	return r.config.Width, r.config.Height
}

// Clear clears the color, depth and stencil buffers.
func (r *Renderer) Clear() {
	gl.ClearStencil(0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
}

// BeginStencilFill makes subsequent draws mark the stencil buffer
// without touching color or depth.
func (r *Renderer) BeginStencilFill() {
	gl.Enable(gl.STENCIL_TEST)
	gl.StencilFunc(gl.NEVER, 1, 1)
	gl.StencilOp(gl.REPLACE, gl.REPLACE, gl.REPLACE)
}

// BeginStencilMask limits subsequent draws to the marked stencil area.
func (r *Renderer) BeginStencilMask() {
	gl.Enable(gl.STENCIL_TEST)
	gl.StencilFunc(gl.EQUAL, 1, 1)
	gl.StencilOp(gl.KEEP, gl.KEEP, gl.KEEP)
}

// EndStencil disables the stencil test.
func (r *Renderer) EndStencil() {
	gl.Disable(gl.STENCIL_TEST)
}

// SetMirrored selects clockwise front faces for geometry drawn through
// a reflecting model matrix.
func (r *Renderer) SetMirrored(mirrored bool) {
	if mirrored {
		gl.FrontFace(gl.CW)
	} else {
		gl.FrontFace(gl.CCW)
	}
}

// ReadPixels returns the RGBA contents of the back buffer, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// CheckError logs and returns the pending GL error, if any.
func (r *Renderer) CheckError(where string) error {
	if code := gl.GetError(); code != gl.NO_ERROR {
		err := fmt.Errorf("gl error 0x%x in %s", code, where)
		r.log.Warn("gl error", zap.String("where", where), zap.Uint32("code", code))
		return err
	}
	return nil
}
