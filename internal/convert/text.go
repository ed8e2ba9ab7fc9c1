package convert

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/webpify/webpify/internal/logger"
)

// fontLoader produces a font face at the given point size, or an error if
// its source is unavailable.
type fontLoader func(size int) (font.Face, error)

// loadFace tries each loader in order and returns the first face that
// loads: the requested TTF file (if any), then the bundled Go Regular
// font, then a builtin bitmap face that cannot fail. The bitmap face
// ignores the requested size.
func loadFace(path string, size int) font.Face {
	var loaders []fontLoader
	if path != "" {
		loaders = append(loaders, fileFont(path))
	}
	loaders = append(loaders, bundledFont())

	for _, load := range loaders {
		face, err := load(size)
		if err == nil {
			return face
		}
		logger.Debug("Font loader failed, trying next", "error", err)
	}
	return basicfont.Face7x13
}

// fileFont loads a TTF/OTF font from disk.
func fileFont(path string) fontLoader {
	return func(size int) (font.Face, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font %s: %w", path, err)
		}
		return parseFace(data, size)
	}
}

// bundledFont loads the Go Regular font compiled into the binary.
func bundledFont() fontLoader {
	return func(size int) (font.Face, error) {
		return parseFace(goregular.TTF, size)
	}
}

func parseFace(data []byte, size int) (font.Face, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build font face: %w", err)
	}
	return face, nil
}

// ParseColor accepts "#rrggbb" hex or "r,g,b" decimal and returns an
// opaque color; the caller combines it with the requested transparency.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) != 6 {
			return color.NRGBA{}, fmt.Errorf("hex color must be #rrggbb, got %q", s)
		}
		value, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		return color.NRGBA{
			R: uint8(value >> 16),
			G: uint8(value >> 8),
			B: uint8(value),
			A: 0xff,
		}, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return color.NRGBA{}, fmt.Errorf("color must be #rrggbb or r,g,b, got %q", s)
	}
	var channels [3]uint8
	for i, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || value < 0 || value > 255 {
			return color.NRGBA{}, fmt.Errorf("color channel %q out of range 0-255", part)
		}
		channels[i] = uint8(value)
	}
	return color.NRGBA{R: channels[0], G: channels[1], B: channels[2], A: 0xff}, nil
}

// ApplyText renders the text onto a transparent layer the size of the
// base, centres it, and alpha-composites the layer over the base. Font
// loading cannot fail; see loadFace.
func (c *compositor) ApplyText(base *image.NRGBA, wm TextWatermark) (*image.NRGBA, error) {
	fill, err := ParseColor(wm.Color)
	if err != nil {
		return nil, fmt.Errorf("text watermark: %w", err)
	}
	fill.A = wm.Transparency

	face := loadFace(wm.FontPath, wm.FontSize)
	bounds, _ := font.BoundString(face, wm.Text)
	textW := (bounds.Max.X - bounds.Min.X).Ceil()
	textH := (bounds.Max.Y - bounds.Min.Y).Ceil()

	baseW, baseH := base.Bounds().Dx(), base.Bounds().Dy()
	pos := centerOffset(baseW, baseH, textW, textH)

	layer := image.NewNRGBA(image.Rect(0, 0, baseW, baseH))
	drawer := &font.Drawer{
		Dst:  layer,
		Src:  image.NewUniform(fill),
		Face: face,
		// Shift the dot so the text's bounding box lands at pos.
		Dot: fixed.Point26_6{
			X: fixed.I(pos.X) - bounds.Min.X,
			Y: fixed.I(pos.Y) - bounds.Min.Y,
		},
	}
	drawer.DrawString(wm.Text)

	out := ToNRGBA(base)
	draw.Draw(out, out.Bounds(), layer, image.Point{}, draw.Over)
	return Flatten(out), nil
}
