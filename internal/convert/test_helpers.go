package convert

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// solidNRGBA creates a w×h image filled with a single color.
func solidNRGBA(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// createTestPNG writes a solid-color PNG and returns its path.
func createTestPNG(t *testing.T, dir, name string, w, h int, c color.NRGBA) string {
	t.Helper()
	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	defer file.Close()
	if err := png.Encode(file, solidNRGBA(w, h, c)); err != nil {
		t.Fatalf("Failed to encode %s: %v", path, err)
	}
	return path
}

// createTestFile writes arbitrary bytes and returns the path.
func createTestFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// countDifferingPixels compares two same-sized images.
func countDifferingPixels(t *testing.T, a, b *image.NRGBA) int {
	t.Helper()
	if a.Bounds() != b.Bounds() {
		t.Fatalf("Image bounds differ: %v vs %v", a.Bounds(), b.Bounds())
	}
	diff := 0
	bounds := a.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if a.NRGBAAt(x, y) != b.NRGBAAt(x, y) {
				diff++
			}
		}
	}
	return diff
}
