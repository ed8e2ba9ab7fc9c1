package convert

import (
	"path/filepath"
	"slices"
	"strings"
)

// Extensions defines the interface for file extension operations.
type Extensions interface {
	// IsSupported returns true if the file extension is a convertible image format.
	IsSupported(filePath string) bool
}

// extensions implements the Extensions interface.
type extensions struct {
	imageExts []string
}

// NewExtensions creates a new Extensions instance covering the input
// formats the converter accepts.
func NewExtensions() Extensions {
	return &extensions{
		imageExts: []string{".png", ".jpg", ".jpeg"},
	}
}

// IsSupported returns true if the file extension is a convertible image format.
func (e *extensions) IsSupported(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	return slices.Contains(e.imageExts, ext)
}
