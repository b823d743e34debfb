package room

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/roomview/internal/engine/geometry"
	"github.com/Faultbox/roomview/internal/engine/scene"
	"github.com/Faultbox/roomview/internal/engine/texture"
	"github.com/Faultbox/roomview/internal/logger"
	"github.com/Faultbox/roomview/pkg/math"
)

// builder collects the shared meshes and textures while the node trees
// are assembled.
type builder struct {
	up     Uploader
	loader *texture.Loader

	cache     map[string]scene.TextureID
	missing   int
	meshCount int

	materials []*scene.Presentation
	video     *scene.Presentation

	square    *scene.Geometry
	screen    *scene.Geometry
	lampBase  *scene.Geometry
	lampPost  *scene.Geometry
	lampCap   *scene.Geometry
	lampShade *scene.Geometry
	box       scene.Node
	bezelBox  scene.Node
}

func newBuilder(u Uploader, loader *texture.Loader) *builder {
	return &builder{
		up:     u,
		loader: loader,
		cache:  make(map[string]scene.TextureID),
	}
}

// meshes uploads every shared mesh once.
func (b *builder) meshes(cfg Config) error {
	steps := []struct {
		name string
		dst  **scene.Geometry
		mesh func() (*geometry.Mesh, error)
	}{
		{"square", &b.square, func() (*geometry.Mesh, error) { return geometry.UnitSquare(cfg.Subdivisions, true) }},
		{"screen", &b.screen, func() (*geometry.Mesh, error) { return geometry.UnitSquare(cfg.ScreenSubdivisions, true) }},
		{"lamp base", &b.lampBase, func() (*geometry.Mesh, error) { return geometry.Conic(7, 0.5, 20, 4, true) }},
		{"lamp post", &b.lampPost, func() (*geometry.Mesh, error) { return geometry.Conic(0.5, 0.5, 20, 20, true) }},
		{"lamp cap", &b.lampCap, func() (*geometry.Mesh, error) { return geometry.SphereSection(-90, 90, 18, 0, 360, 36, 0.5, true) }},
		{"lamp shade", &b.lampShade, func() (*geometry.Mesh, error) { return geometry.Trough(20, 20, true) }},
	}
	for _, s := range steps {
		m, err := s.mesh()
		if err != nil {
			return fmt.Errorf("%s mesh: %w", s.name, err)
		}
		g, err := scene.NewGeometry(b.up, m)
		if err != nil {
			return fmt.Errorf("%s mesh: %w", s.name, err)
		}
		*s.dst = g
		b.meshCount++
	}
	b.box = unitBox(b.square)
	b.bezelBox = unitBox(b.screen)
	return nil
}

// texture loads and uploads name once. Failures are logged and yield 0.
func (b *builder) texture(name string, p texture.Params) scene.TextureID {
	if name == "" {
		return 0
	}
	if id, ok := b.cache[name]; ok {
		return id
	}
	id, err := b.upload(name, p)
	if err != nil {
		logger.Warn("texture unavailable, material stays untextured",
			zap.String("name", name), zap.Error(err))
		b.missing++
	}
	b.cache[name] = id
	return id
}

func (b *builder) textureCount() int {
	n := 0
	for _, id := range b.cache {
		if id != 0 {
			n++
		}
	}
	return n
}

func (b *builder) upload(name string, p texture.Params) (scene.TextureID, error) {
	img, err := b.loader.Load(name)
	if err != nil {
		return 0, err
	}
	return b.up.UploadTexture(img, p)
}

// surface describes a presentation: its material, optional color and
// normal maps, their sampling and the texture coordinate scale.
type surface struct {
	material  scene.Material
	texture   string
	normalMap string
	params    texture.Params
	scale     float32
}

func (b *builder) presentation(s surface) *scene.Presentation {
	p := scene.NewPresentation(s.material)
	p.Texture = b.texture(s.texture, s.params)
	p.NormalMap = b.texture(s.normalMap, s.params)
	if s.scale > 0 {
		p.TextureScale = s.scale
	}
	b.materials = append(b.materials, p)
	return p
}

// animation loads the TV frames into p. Every frame is decoded before
// any is uploaded; a missing frame leaves the screen without animation.
func (b *builder) animation(p *scene.Presentation, cfg Config) {
	names := texture.FrameNames(cfg.VideoBase, cfg.VideoExt, cfg.VideoFrames)
	if len(names) == 0 {
		return
	}
	frames, err := b.loader.LoadFrames(names)
	if err != nil {
		logger.Warn("video frames unavailable, screen stays blank", zap.Error(err))
		b.missing++
		return
	}
	ids, err := b.up.UploadFrames(frames, texture.ClampParams())
	if err != nil {
		logger.Warn("video frames not uploaded, screen stays blank", zap.Error(err))
		return
	}
	if err := p.SetAnimation(ids); err != nil {
		logger.Warn("video animation rejected", zap.Error(err))
	}
}

// material builds a scene.Material from RGB triples.
func material(ambient, diffuse, specular, emission math.Color4, shininess float32) scene.Material {
	return scene.Material{
		Ambient:   ambient,
		Diffuse:   diffuse,
		Specular:  specular,
		Emission:  emission,
		Shininess: shininess,
	}
}

func gray(v float32) math.Color4 { return math.RGB(v, v, v) }

// place returns a transform holding child.
func place(t *scene.Transform, child scene.Node) scene.Node {
	t.AddChild(child)
	return t
}
