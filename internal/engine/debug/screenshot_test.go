package debug

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCaptureFromPixelsFlips(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "room")

	// 1x2: GL row 0 (bottom) red, row 1 (top) green.
	pixels := []byte{255, 0, 0, 255, 0, 255, 0, 255}
	name, err := sc.CaptureFromPixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels: %v", err)
	}

	f, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	top := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA)
	if top != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("top pixel: got %v, want green", top)
	}
}

func TestCaptureSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "room")
	if _, err := sc.CaptureFromPixels(make([]byte, 3), 1, 1); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestCaptureNamesDoNotCollide(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "room")
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	sc.now = func() time.Time { return fixed }

	pixels := make([]byte, 4)
	first, err := sc.CaptureFromPixels(pixels, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	second, err := sc.CaptureFromPixels(pixels, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Errorf("names collide: %s", first)
	}
	if filepath.Base(first) != "room_2024-05-01_12-00-00.png" {
		t.Errorf("first name: got %s", filepath.Base(first))
	}
	if filepath.Base(second) != "room_2024-05-01_12-00-00_1.png" {
		t.Errorf("second name: got %s", filepath.Base(second))
	}
}
