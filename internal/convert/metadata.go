package convert

import (
	"fmt"
	"path/filepath"

	"github.com/barasher/go-exiftool"

	"github.com/webpify/webpify/internal/logger"
)

// copiedTags are the EXIF fields carried over to converted files. WebP
// holds them in its EXIF chunk, written by exiftool.
var copiedTags = []string{
	"Artist",
	"Copyright",
	"ImageDescription",
	"DateTimeOriginal",
}

// MetadataCopier carries EXIF tags from a source image to its converted
// output.
type MetadataCopier interface {
	// CopyTags copies the source file's known tags onto the output file.
	// Sources without any of the tags are a no-op, not an error.
	CopyTags(srcPath, dstPath string) error
}

// exifCopier implements the MetadataCopier interface.
type exifCopier struct {
	et *exiftool.Exiftool
}

// NewMetadataCopier creates a MetadataCopier backed by exiftool. The
// caller owns the exiftool handle.
func NewMetadataCopier(et *exiftool.Exiftool) MetadataCopier {
	return &exifCopier{et: et}
}

// CopyTags copies the source file's known tags onto the output file.
func (c *exifCopier) CopyTags(srcPath, dstPath string) error {
	if c.et == nil {
		return fmt.Errorf("exiftool not initialised")
	}

	srcMeta := c.et.ExtractMetadata(srcPath)
	if len(srcMeta) == 0 || srcMeta[0].Err != nil {
		return fmt.Errorf("extract metadata from %s: %w", srcPath, metaErr(srcMeta))
	}

	dstMeta := c.et.ExtractMetadata(dstPath)
	if len(dstMeta) == 0 || dstMeta[0].Err != nil {
		return fmt.Errorf("extract metadata from %s: %w", dstPath, metaErr(dstMeta))
	}

	copied := 0
	for _, tag := range copiedTags {
		value, err := srcMeta[0].GetString(tag)
		if err != nil {
			continue
		}
		dstMeta[0].SetString(tag, value)
		copied++
	}
	if copied == 0 {
		logger.Debug("No copyable tags found", "file", filepath.Base(srcPath))
		return nil
	}

	c.et.WriteMetadata(dstMeta)
	if dstMeta[0].Err != nil {
		return fmt.Errorf("write metadata to %s: %w", dstPath, dstMeta[0].Err)
	}
	logger.Debug("Copied EXIF tags", "count", copied, "file", filepath.Base(dstPath))
	return nil
}

func metaErr(meta []exiftool.FileMetadata) error {
	if len(meta) == 0 {
		return fmt.Errorf("no metadata returned")
	}
	return meta[0].Err
}
