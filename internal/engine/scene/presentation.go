package scene

import (
	"fmt"

	"github.com/Faultbox/roomview/internal/engine/texture"
)

// Presentation sets the material and textures for its subtree. With an
// animation it shows one frame at a time, and a final extra frame while
// powered off.
type Presentation struct {
	children
	Material     Material
	Texture      TextureID
	NormalMap    TextureID
	TextureScale float32

	// ForceTexture keeps the texture on when the textures mode is off.
	ForceTexture bool

	frames    []TextureID
	frame     int
	poweredOn bool
}

// NewPresentation returns a node with material m and no textures.
func NewPresentation(m Material) *Presentation {
	return &Presentation{
		Material:     m,
		TextureScale: 1,
		poweredOn:    true,
	}
}

// SetAnimation installs a frame sequence. The last entry is the image
// shown while powered off, so at least two are required.
func (p *Presentation) SetAnimation(frames []TextureID) error {
	if len(frames) < 2 {
		return fmt.Errorf("animation needs at least one frame and an off frame, got %d", len(frames))
	}
	p.frames = frames
	p.frame = 0
	p.Texture = frames[0]
	if !p.poweredOn {
		p.Texture = p.offFrame()
	}
	return nil
}

// Animated reports whether a frame sequence is installed.
func (p *Presentation) Animated() bool { return len(p.frames) > 0 }

// FrameCount returns the number of animation frames, not counting the
// off frame.
func (p *Presentation) FrameCount() int {
	if len(p.frames) == 0 {
		return 0
	}
	return len(p.frames) - 1
}

// Frame returns the current animation frame index.
func (p *Presentation) Frame() int { return p.frame }

func (p *Presentation) offFrame() TextureID { return p.frames[len(p.frames)-1] }

// UpdateFrame advances to the next frame, wrapping to the first. It does
// nothing while powered off.
func (p *Presentation) UpdateFrame() {
	if !p.Animated() || !p.poweredOn {
		return
	}
	p.frame = (p.frame + 1) % p.FrameCount()
	p.Texture = p.frames[p.frame]
}

// PoweredOn reports the power state.
func (p *Presentation) PoweredOn() bool { return p.poweredOn }

// TogglePower switches between the current frame and the off frame.
func (p *Presentation) TogglePower() {
	p.poweredOn = !p.poweredOn
	if !p.Animated() {
		return
	}
	if p.poweredOn {
		p.Texture = p.frames[p.frame]
	} else {
		p.Texture = p.offFrame()
	}
}

// UpdateTextureFilters changes the sampling of every texture the node uses.
func (p *Presentation) UpdateTextureFilters(f FilterSetter, minFilter, magFilter texture.Filter) {
	ids := append([]TextureID{p.Texture, p.NormalMap}, p.frames...)
	seen := make(map[TextureID]bool, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		f.SetTextureFilters(id, minFilter, magFilter)
	}
}

// Draw emits the material and bindings, draws the children, then puts
// back the material and bindings that were active before.
func (p *Presentation) Draw(s *State) {
	prevMaterial, prevTexture, prevNormal := s.Material, s.Texture, s.NormalMap

	textured := s.Modes.Textures || p.ForceTexture
	s.Material = p.Material
	s.Texture = Binding{}
	if textured && p.Texture != 0 {
		s.Texture = Binding{Texture: p.Texture, Scale: p.TextureScale}
	}
	s.NormalMap = Binding{}
	if s.Modes.NormalMaps && p.NormalMap != 0 {
		s.NormalMap = Binding{Texture: p.NormalMap, Scale: p.TextureScale}
	}
	s.Renderer.SetMaterial(s.Material)
	s.Renderer.BindTexture(ColorMap, s.Texture)
	s.Renderer.BindTexture(NormalMap, s.NormalMap)

	p.drawChildren(s)

	s.Material, s.Texture, s.NormalMap = prevMaterial, prevTexture, prevNormal
	s.Renderer.SetMaterial(prevMaterial)
	s.Renderer.BindTexture(ColorMap, prevTexture)
	s.Renderer.BindTexture(NormalMap, prevNormal)
}
