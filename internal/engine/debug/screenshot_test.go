package debug

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func fixedCapture(dir string) *Capture {
	c := NewCapture(dir, "shot")
	c.now = func() time.Time { return time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC) }
	return c
}

func TestSavePixelsFlips(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	c := fixedCapture(dir)

	// 1x2 image: bottom row red, top row blue, as glReadPixels returns it.
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	path, err := c.SavePixels(pixels, 1, 2)
	if err != nil {
		t.Fatalf("SavePixels: %v", err)
	}
	if filepath.Base(path) != "shot_2024-05-01_12-30-00.png" {
		t.Errorf("unexpected file name %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	top := color.RGBAModel.Convert(img.At(0, 0)).(color.RGBA)
	bottom := color.RGBAModel.Convert(img.At(0, 1)).(color.RGBA)
	if top.B != 255 || bottom.R != 255 {
		t.Errorf("image not flipped: top %v, bottom %v", top, bottom)
	}
}

func TestSavePixelsSizeMismatch(t *testing.T) {
	c := fixedCapture(t.TempDir())
	if _, err := c.SavePixels(make([]byte, 7), 1, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestSaveImageDoesNotOverwrite(t *testing.T) {
	c := fixedCapture(t.TempDir())
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))

	first, err := c.SaveImage(img)
	if err != nil {
		t.Fatal(err)
	}
	second, err := c.SaveImage(img)
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Errorf("second capture overwrote %s", first)
	}
	if filepath.Base(second) != "shot_2024-05-01_12-30-00_2.png" {
		t.Errorf("unexpected second name %s", second)
	}
}
