package convert

import (
	"fmt"
	"image"
	"io"

	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

// Encoder writes an image to a specific output format.
type Encoder interface {
	// Format returns the output format name (e.g. "webp").
	Format() string
	// Extension returns the file extension without the dot.
	Extension() string
	// Encode writes the image at the given quality (0-100).
	Encode(w io.Writer, img image.Image, quality int) error
}

// webpEncoder implements the Encoder interface with lossy WebP output.
type webpEncoder struct{}

// NewWebPEncoder creates a new Encoder instance producing lossy WebP.
func NewWebPEncoder() Encoder {
	return &webpEncoder{}
}

// Format returns the output format name.
func (e *webpEncoder) Format() string { return "webp" }

// Extension returns the file extension without the dot.
func (e *webpEncoder) Extension() string { return "webp" }

// Encode writes the image as lossy WebP at the given quality.
func (e *webpEncoder) Encode(w io.Writer, img image.Image, quality int) error {
	opts, err := encoderOptions(quality)
	if err != nil {
		return err
	}
	if err := webp.Encode(w, img, opts); err != nil {
		return fmt.Errorf("webp encode: %w", err)
	}
	return nil
}

// encoderOptions builds lossy options at the given quality with the
// compression effort raised to its maximum, trading encode time for
// smaller files.
func encoderOptions(quality int) (*encoder.Options, error) {
	opts, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, float32(quality))
	if err != nil {
		return nil, fmt.Errorf("webp encoder options: %w", err)
	}
	opts.Method = 6
	return opts, nil
}
