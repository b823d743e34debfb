// Package debug holds developer tooling for the viewer.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/Faultbox/roomview/internal/engine/texture"
)

// ScreenshotCapture writes framebuffer contents to PNG files.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// NewScreenshotCapture creates a capture writing <prefix>_<timestamp>.png
// files into outputDir.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// CaptureFromPixels saves RGBA pixels read from GL, bottom row first.
func (sc *ScreenshotCapture) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}
	img := &image.RGBA{
		Pix:    pixels,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	return sc.CaptureFromImage(texture.FlipVertical(img))
}

// CaptureFromImage saves img and returns the file name.
func (sc *ScreenshotCapture) CaptureFromImage(img image.Image) (string, error) {
	if sc.outputDir != "" {
		if err := os.MkdirAll(sc.outputDir, 0o755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	filename, err := sc.nextFilename()
	if err != nil {
		return "", err
	}
	file, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}
	return filename, nil
}

// nextFilename picks a timestamped name, adding a counter when several
// captures land in the same second.
func (sc *ScreenshotCapture) nextFilename() (string, error) {
	stamp := sc.now().Format("2006-01-02_15-04-05")
	for i := 0; i < 100; i++ {
		name := fmt.Sprintf("%s_%s.png", sc.prefix, stamp)
		if i > 0 {
			name = fmt.Sprintf("%s_%s_%d.png", sc.prefix, stamp, i)
		}
		path := filepath.Join(sc.outputDir, name)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return path, nil
		}
	}
	return "", fmt.Errorf("too many screenshots for %s", stamp)
}
