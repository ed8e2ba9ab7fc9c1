package convert

import (
	"fmt"
	"image"
	"os"

	// Register decoders for the supported input formats, plus WebP so
	// previously converted files can serve as watermark sources.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// decodeImage reads and decodes an image file into 4-channel form.
func decodeImage(path string) (*image.NRGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return ToNRGBA(img), nil
}
