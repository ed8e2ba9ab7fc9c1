package convert

import (
	"image"

	"github.com/disintegration/gift"
	"github.com/nfnt/resize"
)

// ResizeSpec is the bounding box the output must fit within. Sharpen
// applies a mild unsharp mask after a real downscale to recover edge
// contrast.
type ResizeSpec struct {
	MaxWidth  int
	MaxHeight int
	Sharpen   bool
}

// FitWithin scales the image down so both dimensions fit inside the box,
// preserving aspect ratio. Images already inside the box pass through
// untouched and are never upscaled.
func FitWithin(img *image.NRGBA, spec ResizeSpec) *image.NRGBA {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w <= spec.MaxWidth && h <= spec.MaxHeight {
		return img
	}

	scaled := resize.Thumbnail(uint(spec.MaxWidth), uint(spec.MaxHeight), img, resize.Lanczos3)
	out := ToNRGBA(scaled)
	if spec.Sharpen {
		out = sharpen(out)
	}
	return out
}

func sharpen(img *image.NRGBA) *image.NRGBA {
	g := gift.New(gift.UnsharpMask(1.0, 1.0, 0.05))
	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}
