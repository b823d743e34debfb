// Package texture loads image files into RGBA pixel buffers ready for
// upload, and describes how uploaded textures are sampled.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/Faultbox/roomview/internal/logger"
)

// ErrNotFound is returned when a texture exists in none of the search paths.
var ErrNotFound = errors.New("texture not found")

// Loader resolves texture names against a list of directories.
type Loader struct {
	SearchPaths []string
}

// NewLoader returns a loader searching paths in order. With no paths the
// working directory is searched.
func NewLoader(paths ...string) *Loader {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	return &Loader{SearchPaths: paths}
}

// Resolve returns the first existing file for name.
func (l *Loader) Resolve(name string) (string, error) {
	if filepath.IsAbs(name) {
		if _, err := os.Stat(name); err != nil {
			return "", fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return name, nil
	}
	for _, dir := range l.SearchPaths {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}
	return "", fmt.Errorf("%s: %w", name, ErrNotFound)
}

// Load reads and decodes name. Rows are flipped so the first row of the
// result is the bottom of the picture, matching GL texture coordinates.
func (l *Loader) Load(name string) (*image.RGBA, error) {
	path, err := l.Resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read texture: %w", err)
	}
	img, err := Decode(path, data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	logger.Debug("texture loaded",
		zap.String("path", path),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()))
	return FlipVertical(img), nil
}

// LoadFrames loads every name in order. The first failure stops loading.
func (l *Loader) LoadFrames(names []string) ([]*image.RGBA, error) {
	frames := make([]*image.RGBA, 0, len(names))
	for _, name := range names {
		img, err := l.Load(name)
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}
	return frames, nil
}

// Decode decodes data, picking the TGA decoder by file extension and the
// registered image formats otherwise.
func Decode(path string, data []byte) (*image.RGBA, error) {
	if strings.EqualFold(filepath.Ext(path), ".tga") {
		return DecodeTGA(data)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return ToRGBA(img), nil
}

// ToRGBA converts img to an RGBA image anchored at the origin.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// FlipVertical returns a copy of img with its rows reversed.
func FlipVertical(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	rowLen := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		src := img.PixOffset(b.Min.X, b.Min.Y+y)
		dst := out.PixOffset(0, b.Dy()-1-y)
		copy(out.Pix[dst:dst+rowLen], img.Pix[src:src+rowLen])
	}
	return out
}

// Resize scales img to w x h with bilinear filtering.
func Resize(img image.Image, w, h int) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	return out
}

// FrameNames returns the file names of an animation: base followed by a
// two-digit index from 1 through frames, then the extra off frame at
// frames+1.
func FrameNames(base, ext string, frames int) []string {
	if frames <= 0 {
		return nil
	}
	names := make([]string, 0, frames+1)
	for i := 1; i <= frames+1; i++ {
		names = append(names, fmt.Sprintf("%s%02d%s", base, i, ext))
	}
	return names
}
