package convert

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/webpify/webpify/internal/logger"
)

// Options holds one invocation's conversion settings. Image and Text are
// nil when the corresponding watermark was not requested.
type Options struct {
	Quality      int
	Prefix       string
	OutputDir    string
	Resize       ResizeSpec
	Image        *ImageWatermark
	Text         *TextWatermark
	CopyMetadata bool
}

// DefaultOptions returns the compiled-in conversion defaults.
func DefaultOptions() Options {
	return Options{
		Quality:   85,
		OutputDir: "./webp",
		Resize:    ResizeSpec{MaxWidth: 1024, MaxHeight: 1024},
	}
}

// Converter runs the batch conversion pipeline.
type Converter interface {
	// Convert processes the files sequentially and returns the batch
	// totals. Unsupported and failed files are skipped without aborting
	// the batch; only setup failures (an uncreatable output directory)
	// return an error.
	Convert(files []string, opts Options) (BatchTotals, error)
}

// converter implements the Converter interface.
type converter struct {
	extensions Extensions
	compositor Compositor
	encoder    Encoder
	metadata   MetadataCopier
	reporter   Reporter
}

// NewConverter creates a new Converter instance. metadata may be nil when
// metadata copying is disabled.
func NewConverter(enc Encoder, metadata MetadataCopier, reporter Reporter) Converter {
	return &converter{
		extensions: NewExtensions(),
		compositor: NewCompositor(),
		encoder:    enc,
		metadata:   metadata,
		reporter:   reporter,
	}
}

// Convert processes the files sequentially and returns the batch totals.
func (c *converter) Convert(files []string, opts Options) (BatchTotals, error) {
	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return BatchTotals{}, fmt.Errorf("create output directory %s: %w", opts.OutputDir, err)
	}

	var totals BatchTotals
	for _, file := range files {
		if !c.extensions.IsSupported(file) {
			c.reporter.Skipped(file)
			continue
		}

		rec, outPath, err := c.convertFile(file, opts)
		if err != nil {
			logger.Error("Conversion failed, skipping file", "file", file, "error", err)
			continue
		}

		totals = totals.Add(rec)
		c.reporter.FileDone(file, outPath, rec)
	}

	c.reporter.Summary(totals)
	return totals, nil
}

// convertFile runs one file through decode, watermarking, resize, encode
// and metadata copy, and returns its size record and output path.
func (c *converter) convertFile(path string, opts Options) (SizeRecord, string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return SizeRecord{}, "", fmt.Errorf("stat %s: %w", path, err)
	}
	originalBytes := info.Size()

	img, err := decodeImage(path)
	if err != nil {
		return SizeRecord{}, "", err
	}

	if opts.Image != nil {
		img, err = c.compositor.ApplyImage(img, *opts.Image)
		if err != nil {
			return SizeRecord{}, "", fmt.Errorf("image watermark: %w", err)
		}
	}
	if opts.Text != nil {
		img, err = c.compositor.ApplyText(img, *opts.Text)
		if err != nil {
			return SizeRecord{}, "", fmt.Errorf("text watermark: %w", err)
		}
	}

	img = FitWithin(img, opts.Resize)

	outPath := c.outputPath(path, opts)
	logger.Debug("Encoding file", "format", c.encoder.Format(), "quality", opts.Quality, "output", outPath)
	if err := c.writeOutput(outPath, img, opts.Quality); err != nil {
		return SizeRecord{}, "", err
	}

	outInfo, err := os.Stat(outPath)
	if err != nil {
		return SizeRecord{}, "", fmt.Errorf("stat %s: %w", outPath, err)
	}

	if opts.CopyMetadata && c.metadata != nil {
		if err := c.metadata.CopyTags(path, outPath); err != nil {
			// Metadata is best-effort; the converted file is already valid.
			logger.Warn("Metadata copy failed", "file", path, "error", err)
		}
	}

	return SizeRecord{OriginalBytes: originalBytes, NewBytes: outInfo.Size()}, outPath, nil
}

// outputPath derives {outputDir}/{prefix}{basename}.{ext}.
func (c *converter) outputPath(path string, opts Options) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return filepath.Join(opts.OutputDir, opts.Prefix+base+"."+c.encoder.Extension())
}

// writeOutput encodes the image to disk, removing partial output on
// failure.
func (c *converter) writeOutput(path string, img image.Image, quality int) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := c.encoder.Encode(out, img, quality); err != nil {
		out.Close()
		os.Remove(path)
		return err
	}
	return out.Close()
}
