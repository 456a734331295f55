// Package generator writes rendered wallpapers to disk.
//
// Every output follows the same pipeline: the caller hands over a finished
// image.Image and the file extension picks the codec.
package generator

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"
)

// DefaultOutput is the file name written when no output path is given.
const DefaultOutput = "today.png"

// ErrNoImage is returned when Config carries nothing to encode.
var ErrNoImage = errors.New("no image to encode")

// Config holds parameters for file generation.
type Config struct {
	Image image.Image // Rendered frame
}

// Generate writes cfg.Image to output, overwriting any existing file.
// The format is inferred from the file extension:
//   - ".png" → PNG image
//   - ".bmp" → 24-bit uncompressed bitmap
func Generate(output string, cfg Config) error {
	if cfg.Image == nil {
		return ErrNoImage
	}
	if output == "" {
		output = DefaultOutput
	}

	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".png":
		return writePNG(output, cfg.Image)
	case ".bmp":
		return writeBMP(output, cfg.Image)
	default:
		return fmt.Errorf("unsupported format %q: use .png or .bmp", ext)
	}
}

// GenerateToWriter writes the image to an io.Writer. The format is specified by ext (".png" or ".bmp").
func GenerateToWriter(w io.Writer, ext string, cfg Config) error {
	if cfg.Image == nil {
		return ErrNoImage
	}

	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, cfg.Image)
	case ".bmp":
		return encodeBMP(w, cfg.Image)
	default:
		return fmt.Errorf("unsupported format %q: use .png or .bmp", ext)
	}
}
