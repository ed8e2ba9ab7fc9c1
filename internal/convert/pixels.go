package convert

import (
	"image"
	"image/draw"
)

// ToNRGBA returns a copy of the image as a 4-channel non-premultiplied
// buffer anchored at the origin. The conversion is total: any source pixel
// format is accepted and the input is never modified.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// Flatten returns a copy with every pixel forced fully opaque, the
// equivalent of dropping the alpha channel after compositing. Color
// channels are non-premultiplied and pass through unchanged.
func Flatten(img *image.NRGBA) *image.NRGBA {
	out := ToNRGBA(img)
	b := out.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := out.Pix[y*out.Stride : y*out.Stride+b.Dx()*4]
		for i := 3; i < len(row); i += 4 {
			row[i] = 0xff
		}
	}
	return out
}

// ScaleAlpha returns a copy with every alpha value multiplied by
// transparency/255. Partially transparent source pixels keep their
// relative opacity: 255 is an exact copy, 0 makes the image invisible.
func ScaleAlpha(img *image.NRGBA, transparency uint8) *image.NRGBA {
	out := ToNRGBA(img)
	b := out.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := out.Pix[y*out.Stride : y*out.Stride+b.Dx()*4]
		for i := 3; i < len(row); i += 4 {
			row[i] = uint8(uint16(row[i]) * uint16(transparency) / 255)
		}
	}
	return out
}

// centerOffset positions a w×h layer at the centre of a W×H base using
// floor division. Offsets go negative when the layer is larger than the
// base, which clips the layer evenly on both sides.
func centerOffset(baseW, baseH, w, h int) image.Point {
	return image.Point{X: floorDiv(baseW-w, 2), Y: floorDiv(baseH-h, 2)}
}

// floorDiv rounds toward negative infinity, unlike Go's truncating division.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
