// fonts.go - Font management with custom TTF support and embedded fallback font.
// Uses golang.org/x/image/font for OpenType rendering. Defaults to Go Mono
// when no custom font is specified or when custom font loading fails.
package grid

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
)

// DefaultFontPath is the monospace font looked up next to the binary's cwd.
const DefaultFontPath = "RobotoMono-Regular.ttf"

// FontManager handles font loading with fallback.
type FontManager struct {
	parsed   *opentype.Font
	fallback bool
}

// NewFontManager loads the font at customPath. A missing or unparsable
// font is not fatal: a warning is printed and Go Mono is used instead.
func NewFontManager(customPath string) (*FontManager, error) {
	if customPath != "" {
		parsed, err := parseFontFile(customPath)
		if err == nil {
			return &FontManager{parsed: parsed}, nil
		}
		fmt.Fprintf(os.Stderr, "Warning: could not register font %q: %v, using embedded monospace\n", customPath, err)
	}

	parsed, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse fallback font: %w", err)
	}
	return &FontManager{parsed: parsed, fallback: true}, nil
}

func parseFontFile(path string) (*opentype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return opentype.Parse(data)
}

// Fallback reports whether the embedded font is in use.
func (fm *FontManager) Fallback() bool { return fm.fallback }

// GetFace returns a font.Face at the specified pixel size.
func (fm *FontManager) GetFace(size float64, dpi float64) (font.Face, error) {
	if dpi <= 0 {
		dpi = 72
	}

	face, err := opentype.NewFace(fm.parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}

	return face, nil
}
