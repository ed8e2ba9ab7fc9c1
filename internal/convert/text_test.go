package convert

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected color.NRGBA
		wantErr  bool
	}{
		{"#FFFFFF", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"#ff0000", color.NRGBA{R: 255, A: 255}, false},
		{"#00Ff80", color.NRGBA{G: 255, B: 128, A: 255}, false},
		{"255,0,0", color.NRGBA{R: 255, A: 255}, false},
		{"0, 128, 255", color.NRGBA{G: 128, B: 255, A: 255}, false},
		{" 12,34,56 ", color.NRGBA{R: 12, G: 34, B: 56, A: 255}, false},
		{"#fff", color.NRGBA{}, true},
		{"#zzzzzz", color.NRGBA{}, true},
		{"256,0,0", color.NRGBA{}, true},
		{"-1,0,0", color.NRGBA{}, true},
		{"1,2", color.NRGBA{}, true},
		{"1,2,3,4", color.NRGBA{}, true},
		{"red", color.NRGBA{}, true},
		{"", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		result, err := ParseColor(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseColor(%q) expected error, got %v", tt.input, result)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColor(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseColor(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}

func TestLoadFace_FallsBackOnMissingFile(t *testing.T) {
	face := loadFace("/nonexistent/font.ttf", 24)
	if face == nil {
		t.Fatal("loadFace returned nil for missing font file")
	}
}

func TestLoadFace_FallsBackOnCorruptFile(t *testing.T) {
	tmpDir := t.TempDir()
	bogus := createTestFile(t, tmpDir, "bogus.ttf", []byte("not a font"))

	face := loadFace(bogus, 24)
	if face == nil {
		t.Fatal("loadFace returned nil for corrupt font file")
	}
}

func TestLoadFace_BundledDefault(t *testing.T) {
	face := loadFace("", 36)
	if face == nil {
		t.Fatal("loadFace returned nil with no font path")
	}
}

func TestApplyText_RendersWithoutFont(t *testing.T) {
	base := solidNRGBA(800, 600, color.NRGBA{R: 10, G: 10, B: 10, A: 255})
	comp := NewCompositor()

	out, err := comp.ApplyText(base, TextWatermark{
		Text:         "SAMPLE",
		FontSize:     36,
		Color:        "255,0,0",
		Transparency: 128,
	})
	if err != nil {
		t.Fatalf("ApplyText failed: %v", err)
	}

	if out.Bounds().Dx() != 800 || out.Bounds().Dy() != 600 {
		t.Errorf("Output size = %dx%d, expected 800x600", out.Bounds().Dx(), out.Bounds().Dy())
	}
	diff := countDifferingPixels(t, Flatten(base), out)
	if diff == 0 {
		t.Error("Text watermark rendered no visible pixels")
	}
}

func TestApplyText_CentredOnBase(t *testing.T) {
	base := solidNRGBA(400, 300, color.NRGBA{A: 255})
	comp := NewCompositor()

	out, err := comp.ApplyText(base, TextWatermark{
		Text:         "X",
		FontSize:     24,
		Color:        "#FFFFFF",
		Transparency: 255,
	})
	if err != nil {
		t.Fatalf("ApplyText failed: %v", err)
	}

	// All rendered pixels must sit in the middle half of the image.
	bounds := out.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			px := out.NRGBAAt(x, y)
			if px.R == 0 && px.G == 0 && px.B == 0 {
				continue
			}
			if x < 100 || x >= 300 || y < 75 || y >= 225 {
				t.Fatalf("Rendered pixel at (%d,%d) outside the centre region", x, y)
			}
		}
	}
}

func TestApplyText_InvalidColor(t *testing.T) {
	base := solidNRGBA(100, 100, color.NRGBA{A: 255})
	comp := NewCompositor()

	_, err := comp.ApplyText(base, TextWatermark{
		Text:         "X",
		FontSize:     12,
		Color:        "chartreuse",
		Transparency: 255,
	})
	if err == nil {
		t.Error("Expected error for invalid color")
	}
}

func TestApplyText_ZeroTransparencyIsInvisible(t *testing.T) {
	base := solidNRGBA(200, 100, color.NRGBA{R: 50, G: 60, B: 70, A: 255})
	comp := NewCompositor()

	out, err := comp.ApplyText(base, TextWatermark{
		Text:         "HIDDEN",
		FontSize:     18,
		Color:        "#FFFFFF",
		Transparency: 0,
	})
	if err != nil {
		t.Fatalf("ApplyText failed: %v", err)
	}
	if diff := countDifferingPixels(t, Flatten(base), out); diff != 0 {
		t.Errorf("Invisible text changed %d pixels, expected 0", diff)
	}
}
