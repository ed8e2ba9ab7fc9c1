package convert

import (
	"image/color"
	"math"
	"testing"
)

func TestFitOverlay_DownscalesToFit(t *testing.T) {
	tests := []struct {
		overlayW, overlayH int
		baseW, baseH       int
		expectedW          int
		expectedH          int
	}{
		{400, 200, 100, 100, 100, 50},  // wider than base
		{200, 400, 100, 100, 50, 100},  // taller than base
		{2048, 2048, 512, 256, 256, 256},
		{50, 50, 100, 100, 50, 50},     // already fits, untouched
		{100, 100, 100, 100, 100, 100}, // exact fit, untouched
	}

	for _, tt := range tests {
		overlay := solidNRGBA(tt.overlayW, tt.overlayH, color.NRGBA{R: 1, A: 255})
		out := fitOverlay(overlay, tt.baseW, tt.baseH)

		w, h := out.Bounds().Dx(), out.Bounds().Dy()
		if w != tt.expectedW || h != tt.expectedH {
			t.Errorf("fitOverlay(%dx%d into %dx%d) = %dx%d, expected %dx%d",
				tt.overlayW, tt.overlayH, tt.baseW, tt.baseH, w, h, tt.expectedW, tt.expectedH)
		}
		if w > tt.baseW || h > tt.baseH {
			t.Errorf("fitOverlay result %dx%d exceeds base %dx%d", w, h, tt.baseW, tt.baseH)
		}
	}
}

func TestFitOverlay_PreservesAspectRatio(t *testing.T) {
	overlay := solidNRGBA(1600, 900, color.NRGBA{R: 1, A: 255})
	out := fitOverlay(overlay, 320, 320)

	w, h := out.Bounds().Dx(), out.Bounds().Dy()
	original := 1600.0 / 900.0
	scaled := float64(w) / float64(h)
	if math.Abs(original-scaled) > 0.05 {
		t.Errorf("Aspect ratio %f drifted from %f (result %dx%d)", scaled, original, w, h)
	}
}

func TestApplyImage_FullOpacityReplacesCentre(t *testing.T) {
	tmpDir := t.TempDir()
	wmPath := createTestPNG(t, tmpDir, "wm.png", 16, 16, color.NRGBA{B: 255, A: 255})

	base := solidNRGBA(64, 64, color.NRGBA{R: 255, A: 255})
	comp := NewCompositor()

	out, err := comp.ApplyImage(base, ImageWatermark{Path: wmPath, Transparency: 255})
	if err != nil {
		t.Fatalf("ApplyImage failed: %v", err)
	}

	centre := out.NRGBAAt(32, 32)
	if centre.B != 255 || centre.R != 0 {
		t.Errorf("Centre pixel = %v, expected pure blue", centre)
	}
	corner := out.NRGBAAt(0, 0)
	if corner.R != 255 || corner.B != 0 {
		t.Errorf("Corner pixel = %v, expected untouched red base", corner)
	}
	if centre.A != 255 || corner.A != 255 {
		t.Error("Output must be fully opaque")
	}
}

func TestApplyImage_ZeroTransparencyIsInvisible(t *testing.T) {
	tmpDir := t.TempDir()
	wmPath := createTestPNG(t, tmpDir, "wm.png", 16, 16, color.NRGBA{B: 255, A: 255})

	base := solidNRGBA(64, 64, color.NRGBA{R: 255, A: 255})
	comp := NewCompositor()

	out, err := comp.ApplyImage(base, ImageWatermark{Path: wmPath, Transparency: 0})
	if err != nil {
		t.Fatalf("ApplyImage failed: %v", err)
	}

	if diff := countDifferingPixels(t, Flatten(base), out); diff != 0 {
		t.Errorf("Invisible watermark changed %d pixels, expected 0", diff)
	}
}

func TestApplyImage_KeepsBaseDimensions(t *testing.T) {
	tmpDir := t.TempDir()
	// Watermark larger than the base in both dimensions.
	wmPath := createTestPNG(t, tmpDir, "wm.png", 256, 128, color.NRGBA{G: 255, A: 255})

	base := solidNRGBA(100, 60, color.NRGBA{R: 255, A: 255})
	comp := NewCompositor()

	out, err := comp.ApplyImage(base, ImageWatermark{Path: wmPath, Transparency: 200})
	if err != nil {
		t.Fatalf("ApplyImage failed: %v", err)
	}
	if out.Bounds().Dx() != 100 || out.Bounds().Dy() != 60 {
		t.Errorf("Output size = %dx%d, expected 100x60", out.Bounds().Dx(), out.Bounds().Dy())
	}
}

func TestApplyImage_DoesNotMutateBase(t *testing.T) {
	tmpDir := t.TempDir()
	wmPath := createTestPNG(t, tmpDir, "wm.png", 8, 8, color.NRGBA{B: 255, A: 255})

	base := solidNRGBA(32, 32, color.NRGBA{R: 255, A: 255})
	comp := NewCompositor()

	if _, err := comp.ApplyImage(base, ImageWatermark{Path: wmPath, Transparency: 255}); err != nil {
		t.Fatalf("ApplyImage failed: %v", err)
	}
	if px := base.NRGBAAt(16, 16); px.B != 0 {
		t.Errorf("Base image mutated: centre pixel %v", px)
	}
}

func TestApplyImage_MissingWatermarkFile(t *testing.T) {
	base := solidNRGBA(32, 32, color.NRGBA{R: 255, A: 255})
	comp := NewCompositor()

	_, err := comp.ApplyImage(base, ImageWatermark{Path: "/nonexistent/wm.png", Transparency: 255})
	if err == nil {
		t.Error("Expected error for missing watermark file")
	}
}
