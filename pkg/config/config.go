// Package config holds the immutable wallpaper configuration: canvas,
// safe areas, grid limits, palette, overlay and date mode.
package config

import (
	"math"

	"github.com/xob0t/daydots/pkg/generator"
	"github.com/xob0t/daydots/pkg/grid"
	"github.com/xob0t/daydots/pkg/progress"
)

// ── Config types ──

// Config is the full description of one wallpaper variant.
type Config struct {
	Preset   string          `json:"preset,omitempty"`
	Canvas   Canvas          `json:"canvas"`
	SafeArea SafeArea        `json:"safeArea"`
	Grid     Grid            `json:"grid"`
	Colors   Colors          `json:"colors"`
	Overlay  Overlay         `json:"overlay"`
	Dates    progress.Config `json:"dates"`
	Output   string          `json:"output,omitempty"`
}

// Canvas defines output dimensions. A known Device overrides Width/Height.
type Canvas struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Device string `json:"device,omitempty"`
}

// SafeArea reserves space for device UI. Top and Bottom are fractions of
// the canvas height; Side is a pixel padding on both edges.
type SafeArea struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Side   int     `json:"side"`
}

// Grid bounds the dot grid.
type Grid struct {
	MaxCols int    `json:"maxCols"`
	Radius  Radius `json:"radius"`
}

// Radius selects a fixed dot radius or a derived one clamped to [Min, Max].
type Radius struct {
	Fixed  float64 `json:"fixed,omitempty"`
	Min    int     `json:"min,omitempty"`
	Max    int     `json:"max,omitempty"`
	Factor float64 `json:"factor,omitempty"`
}

// Colors is the "#rrggbb" palette.
type Colors struct {
	Background string `json:"background"`
	Done       string `json:"done"`
	Pending    string `json:"pending"`
}

// Overlay controls the "<N> days left" label.
type Overlay struct {
	DaysLeft bool    `json:"daysLeft"`
	FontPath string  `json:"fontPath,omitempty"`
	FontSize float64 `json:"fontSize,omitempty"`
}

// ── Derived values ──

// GridCanvas resolves safe-area fractions to pixels.
func (c Config) GridCanvas() grid.Canvas {
	h := c.Canvas.Height
	return grid.Canvas{
		Width:      c.Canvas.Width,
		Height:     h,
		TopSafe:    int(math.Floor(float64(h) * c.SafeArea.Top)),
		BottomSafe: int(math.Floor(float64(h) * c.SafeArea.Bottom)),
		SidePad:    c.SafeArea.Side,
		MaxCols:    c.Grid.MaxCols,
	}
}

// RendererOptions builds grid.Options for this configuration.
func (c Config) RendererOptions() grid.Options {
	return grid.Options{
		Canvas: c.GridCanvas(),
		Radius: grid.RadiusRule{
			Fixed:  c.Grid.Radius.Fixed,
			Min:    c.Grid.Radius.Min,
			Max:    c.Grid.Radius.Max,
			Factor: c.Grid.Radius.Factor,
		},
		Palette: grid.Palette{
			Background: generator.ParseHexRGBA(c.Colors.Background),
			Done:       generator.ParseHexRGBA(c.Colors.Done),
			Pending:    generator.ParseHexRGBA(c.Colors.Pending),
		},
		ShowDaysLeft: c.Overlay.DaysLeft,
		FontPath:     c.Overlay.FontPath,
		FontSize:     c.Overlay.FontSize,
	}
}

// OutputPath returns the configured output or generator.DefaultOutput.
func (c Config) OutputPath() string {
	if c.Output == "" {
		return generator.DefaultOutput
	}
	return c.Output
}
