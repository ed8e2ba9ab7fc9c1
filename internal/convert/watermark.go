package convert

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/nfnt/resize"
)

// ImageWatermark describes an image overlay blended onto the centre of a
// base image with a global opacity of Transparency/255.
type ImageWatermark struct {
	Path         string
	Transparency uint8
}

// TextWatermark describes a text overlay rendered onto the centre of a
// base image. FontPath may be empty; the renderer falls back to a bundled
// font and finally a builtin bitmap face.
type TextWatermark struct {
	Text         string
	FontPath     string
	FontSize     int
	Color        string
	Transparency uint8
}

// Compositor blends watermark layers onto a base image. Both methods
// return a new opaque image and leave the base untouched.
type Compositor interface {
	ApplyImage(base *image.NRGBA, wm ImageWatermark) (*image.NRGBA, error)
	ApplyText(base *image.NRGBA, wm TextWatermark) (*image.NRGBA, error)
}

// compositor implements the Compositor interface.
type compositor struct{}

// NewCompositor creates a new Compositor instance.
func NewCompositor() Compositor {
	return &compositor{}
}

// ApplyImage loads the watermark image, scales it down to fit the base if
// needed, applies the requested global transparency on top of the
// watermark's own alpha map, and alpha-composites it at the centre.
func (c *compositor) ApplyImage(base *image.NRGBA, wm ImageWatermark) (*image.NRGBA, error) {
	overlay, err := decodeImage(wm.Path)
	if err != nil {
		return nil, fmt.Errorf("load watermark: %w", err)
	}

	baseW, baseH := base.Bounds().Dx(), base.Bounds().Dy()
	overlay = fitOverlay(overlay, baseW, baseH)
	overlay = ScaleAlpha(overlay, wm.Transparency)

	pos := centerOffset(baseW, baseH, overlay.Bounds().Dx(), overlay.Bounds().Dy())
	out := ToNRGBA(base)
	target := image.Rect(pos.X, pos.Y, pos.X+overlay.Bounds().Dx(), pos.Y+overlay.Bounds().Dy())
	draw.Draw(out, target, overlay, overlay.Bounds().Min, draw.Over)
	return Flatten(out), nil
}

// fitOverlay downscales the overlay by the largest uniform factor that
// makes it fit inside the base dimensions. It never upscales.
func fitOverlay(overlay *image.NRGBA, baseW, baseH int) *image.NRGBA {
	w, h := overlay.Bounds().Dx(), overlay.Bounds().Dy()
	if w <= baseW && h <= baseH {
		return overlay
	}

	scale := math.Min(float64(baseW)/float64(w), float64(baseH)/float64(h))
	scaledW := max(int(float64(w)*scale), 1)
	scaledH := max(int(float64(h)*scale), 1)
	scaled := resize.Resize(uint(scaledW), uint(scaledH), overlay, resize.Lanczos3)
	return ToNRGBA(scaled)
}
