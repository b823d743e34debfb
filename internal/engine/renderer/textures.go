package renderer

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/roomview/internal/engine/scene"
	"github.com/Faultbox/roomview/internal/engine/texture"
)

// UploadTexture creates a texture from img, generating mipmaps when the
// minification filter needs them.
func (r *Renderer) UploadTexture(img *image.RGBA, p texture.Params) (scene.TextureID, error) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return 0, fmt.Errorf("upload texture: empty image")
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, wrapMode(p.WrapS))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, wrapMode(p.WrapT))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filterMode(p.Min))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filterMode(magnification(p.Mag)))
	// Mipmaps are always built so filters can switch to a mipmapped mode later.
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.BindTexture(gl.TEXTURE_2D, 0)

	tid := scene.TextureID(id)
	r.textures[tid] = true
	r.log.Debug("texture uploaded",
		zap.Uint32("id", id),
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()))
	return tid, nil
}

// UploadFrames uploads an animation's images in order. On failure the
// frames already uploaded are deleted again.
func (r *Renderer) UploadFrames(frames []*image.RGBA, p texture.Params) ([]scene.TextureID, error) {
	ids := make([]scene.TextureID, 0, len(frames))
	for i, img := range frames {
		id, err := r.UploadTexture(img, p)
		if err != nil {
			for _, done := range ids {
				r.deleteTexture(done)
			}
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func (r *Renderer) deleteTexture(id scene.TextureID) {
	t := uint32(id)
	gl.DeleteTextures(1, &t)
	delete(r.textures, id)
}

// SetTextureFilters changes the sampling filters of an uploaded texture.
func (r *Renderer) SetTextureFilters(id scene.TextureID, minFilter, magFilter texture.Filter) {
	if !r.textures[id] {
		r.log.Warn("filter change for unknown texture", zap.Uint32("id", uint32(id)))
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, uint32(id))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filterMode(minFilter))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filterMode(magnification(magFilter)))
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// magnification maps mipmapped filters to their base filter, the only
// kinds GL accepts for magnification.
func magnification(f texture.Filter) texture.Filter {
	switch f {
	case texture.NearestMipmapNearest:
		return texture.Nearest
	case texture.LinearMipmapLinear, texture.LinearMipmapNearest:
		return texture.Linear
	default:
		return f
	}
}

func wrapMode(w texture.Wrap) int32 {
	switch w {
	case texture.ClampToEdge:
		return gl.CLAMP_TO_EDGE
	case texture.MirroredRepeat:
		return gl.MIRRORED_REPEAT
	default:
		return gl.REPEAT
	}
}

func filterMode(f texture.Filter) int32 {
	switch f {
	case texture.Nearest:
		return gl.NEAREST
	case texture.LinearMipmapLinear:
		return gl.LINEAR_MIPMAP_LINEAR
	case texture.LinearMipmapNearest:
		return gl.LINEAR_MIPMAP_NEAREST
	case texture.NearestMipmapNearest:
		return gl.NEAREST_MIPMAP_NEAREST
	default:
		return gl.LINEAR
	}
}
