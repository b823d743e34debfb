// Package room assembles the living room scene: walls, floor and ceiling,
// a couch, a chair, a floor lamp, a rug and a television whose screen plays
// an animation and reflects the room.
package room

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/Faultbox/roomview/internal/engine/camera"
	"github.com/Faultbox/roomview/internal/engine/lighting"
	"github.com/Faultbox/roomview/internal/engine/scene"
	"github.com/Faultbox/roomview/internal/engine/texture"
	"github.com/Faultbox/roomview/internal/logger"
	"github.com/Faultbox/roomview/pkg/math"
)

// Uploader creates GPU resources for the room.
type Uploader interface {
	scene.MeshUploader
	UploadTexture(img *image.RGBA, p texture.Params) (scene.TextureID, error)
	// UploadFrames uploads all frames or, on error, none of them.
	UploadFrames(frames []*image.RGBA, p texture.Params) ([]scene.TextureID, error)
}

// Config selects the tessellation and the TV animation.
type Config struct {
	// Subdivisions of the square used by walls, floor, furniture and rug.
	Subdivisions int
	// ScreenSubdivisions of the square used by the TV.
	ScreenSubdivisions int

	VideoBase   string
	VideoExt    string
	VideoFrames int

	GlobalAmbient float32
}

// DefaultConfig returns the stock room.
func DefaultConfig() Config {
	return Config{
		Subdivisions:       2,
		ScreenSubdivisions: 1,
		VideoBase:          "Video/futurama00",
		VideoExt:           ".jpg",
		VideoFrames:        336,
		GlobalAmbient:      0.4,
	}
}

// Room is the built scene. Contents and TV are separate roots so the TV
// can mask the stencil and the contents can be drawn mirrored behind it.
// Both roots share the camera and carry identical lights.
type Room struct {
	Contents scene.Node
	TV       scene.Node

	// Video is the animated screen material.
	Video *scene.Presentation
	// Materials lists every presentation node, Video included.
	Materials []*scene.Presentation

	Viewer  *camera.Camera
	shaders []*scene.Shader
}

// Initial view.
var (
	InitialEye    = math.Vec3{X: 0, Y: -100, Z: 60}
	InitialLookAt = math.Vec3{X: 0, Y: 0, Z: 35}
	InitialUp     = math.Vec3{X: 0, Y: 0, Z: 1}
)

// Camera projection.
const (
	FieldOfView = 50
	Near        = 1
	Far         = 1000
)

// ResetView puts the viewer back at the initial position and orientation.
func ResetView(c *camera.Camera) {
	c.SetPosition(InitialEye)
	c.SetLookAt(InitialLookAt)
	c.SetViewUp(InitialUp)
}

// Build creates the meshes, textures and node trees of the room. Missing
// textures are logged and leave their material untextured.
func Build(u Uploader, loader *texture.Loader, program uint32, viewer *camera.Camera, cfg Config) (*Room, error) {
	b := newBuilder(u, loader)
	if err := b.meshes(cfg); err != nil {
		return nil, err
	}

	contents := scene.NewGroup(
		b.shell(),
		scene.Chain(scene.NewTransform().Translate(20, -15, 0).RotateZ(225), b.chair()),
		scene.Chain(scene.NewTransform().Translate(-30, -10, 0).RotateZ(135), b.couch()),
		scene.Chain(scene.NewTransform().Translate(0, -40, 0.1), b.lamp()),
		b.rug(),
	)
	tv := scene.Chain(scene.NewTransform().Translate(0, 99, 45), b.television(cfg))

	r := &Room{Video: b.video, Materials: b.materials, Viewer: viewer}
	var err error
	if r.Contents, err = r.root(program, cfg.GlobalAmbient, contents); err != nil {
		return nil, err
	}
	if r.TV, err = r.root(program, cfg.GlobalAmbient, tv); err != nil {
		return nil, err
	}

	logger.Info("room built",
		zap.Int("meshes", b.meshCount),
		zap.Int("textures", b.textureCount()),
		zap.Int("missing_textures", b.missing),
		zap.Int("video_frames", r.Video.FrameCount()))
	return r, nil
}

// root wraps content in shader, camera and the two room lights.
func (r *Room) root(program uint32, ambient float32, content scene.Node) (scene.Node, error) {
	sh := scene.NewShader(program)
	sh.GlobalAmbient = math.RGB(ambient, ambient, ambient)
	r.shaders = append(r.shaders, sh)

	lamp, err := scene.NewLight(0)
	if err != nil {
		return nil, fmt.Errorf("lamp light: %w", err)
	}
	lamp.Light = LampLight()

	ceiling, err := scene.NewLight(2)
	if err != nil {
		return nil, fmt.Errorf("ceiling light: %w", err)
	}
	ceiling.Light = CeilingLight()

	return scene.Chain(sh, scene.NewCamera(r.Viewer), lamp, ceiling, content), nil
}

// LampLight is the point light inside the lamp shade.
func LampLight() lighting.Light {
	l := lighting.NewLight()
	l.Enabled = true
	l.Position = math.Point(0, -40, 38)
	l.Diffuse = math.RGB(0.5, 0.5, 0.5)
	l.Specular = math.RGB(0.5, 0.5, 0.5)
	return l
}

// CeilingLight is a directional light shining down from the ceiling.
func CeilingLight() lighting.Light {
	l := lighting.NewLight()
	l.Enabled = true
	l.Position = math.Direction(0, 0, 1)
	l.Diffuse = math.RGB(0.5, 0.5, 0.5)
	l.Specular = math.RGB(0.5, 0.5, 0.5)
	return l
}

// SetProgram switches both roots to program.
func (r *Room) SetProgram(program uint32) {
	for _, sh := range r.shaders {
		sh.Program = program
	}
}

// Program returns the program the roots draw with.
func (r *Room) Program() uint32 {
	if len(r.shaders) == 0 {
		return 0
	}
	return r.shaders[0].Program
}

// UpdateTextureFilters changes the sampling of every texture in the room.
func (r *Room) UpdateTextureFilters(f scene.FilterSetter, minFilter, magFilter texture.Filter) {
	for _, m := range r.Materials {
		m.UpdateTextureFilters(f, minFilter, magFilter)
	}
}

// Stencil is the part of the renderer the mirror pass drives.
type Stencil interface {
	BeginStencilFill()
	BeginStencilMask()
	EndStencil()
	SetMirrored(mirrored bool)
}

// MirrorY is the y coordinate of the plane the TV screen reflects across.
const MirrorY = 100

// Draw renders one frame. The TV marks the stencil, the contents are
// drawn reflected across y = MirrorY inside the mark, then the TV and the
// contents are drawn normally on top.
func (r *Room) Draw(s *scene.State, st Stencil) {
	st.BeginStencilFill()
	s.Init()
	r.TV.Draw(s)

	st.BeginStencilMask()
	s.Init()
	s.Translate(0, 2*MirrorY, 0)
	s.Scale(1, -1, 1)
	st.SetMirrored(true)
	r.Contents.Draw(s)
	st.SetMirrored(false)
	st.EndStencil()

	s.Init()
	r.TV.Draw(s)
	s.Init()
	r.Contents.Draw(s)
}
