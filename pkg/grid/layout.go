// Package grid lays out one dot per day and rasterizes the dot grid.
package grid

import (
	"math"

	"github.com/xob0t/daydots/pkg/progress"
)

// DefaultRadiusFactor scales the smaller grid step into a dot radius.
const DefaultRadiusFactor = 0.15

// Canvas is the resolved pixel geometry of the wallpaper.
type Canvas struct {
	Width      int
	Height     int
	TopSafe    int // reserved for the status bar / clock overlay
	BottomSafe int // reserved for the home indicator
	SidePad    int
	MaxCols    int
}

// AvailWidth is the horizontal span between the outermost dot centers.
func (c Canvas) AvailWidth() int { return c.Width - 2*c.SidePad }

// AvailHeight is the vertical span between the outermost dot centers.
func (c Canvas) AvailHeight() int { return c.Height - c.TopSafe - c.BottomSafe }

// RadiusRule picks the dot radius. A positive Fixed wins; otherwise the
// radius is floor(min(stepX, stepY) * Factor) clamped to [Min, Max].
type RadiusRule struct {
	Fixed  float64
	Min    int
	Max    int
	Factor float64
}

// Layout is the grid derived from a day count and a canvas.
type Layout struct {
	Cols    int
	Rows    int
	Radius  float64
	StepX   float64
	StepY   float64
	OriginX float64
	OriginY float64
	Total   int
}

// Dot is one day slot. Index starts at 1, row-major.
type Dot struct {
	Index int
	X, Y  float64
	Done  bool
}

// ComputeLayout derives the grid for totalDays on canvas c.
func ComputeLayout(totalDays int, c Canvas, rule RadiusRule) Layout {
	total := max(totalDays, 0)
	cols := progress.Clamp(c.MaxCols, 1, max(total, 1))
	rows := max((total+cols-1)/cols, 1)

	stepX := float64(c.AvailWidth()) / float64(max(cols-1, 1))
	stepY := float64(c.AvailHeight()) / float64(max(rows-1, 1))

	return Layout{
		Cols:    cols,
		Rows:    rows,
		Radius:  rule.radius(stepX, stepY),
		StepX:   stepX,
		StepY:   stepY,
		OriginX: float64(c.SidePad),
		OriginY: float64(c.TopSafe),
		Total:   total,
	}
}

func (r RadiusRule) radius(stepX, stepY float64) float64 {
	if r.Fixed > 0 {
		return r.Fixed
	}
	factor := r.Factor
	if factor <= 0 {
		factor = DefaultRadiusFactor
	}
	lo, hi := max(r.Min, 1), max(r.Max, r.Min, 1)
	derived := int(math.Floor(math.Min(stepX, stepY) * factor))
	return float64(progress.Clamp(derived, lo, hi))
}

// Center returns the center of dot idx (1-based).
func (l Layout) Center(idx int) (x, y float64) {
	row, col := (idx-1)/l.Cols, (idx-1)%l.Cols
	return l.OriginX + float64(col)*l.StepX, l.OriginY + float64(row)*l.StepY
}

// Dots enumerates every day slot of l, marking dots up to p.DayNumber done.
// p is clamped first; a partial final row is left short.
func Dots(p progress.Progress, l Layout) []Dot {
	day := progress.Clamp(p.DayNumber, 0, l.Total)

	dots := make([]Dot, 0, l.Total)
	for idx := 1; idx <= l.Total; idx++ {
		x, y := l.Center(idx)
		dots = append(dots, Dot{Index: idx, X: x, Y: y, Done: idx <= day})
	}
	return dots
}
