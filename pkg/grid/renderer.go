// renderer.go - Wallpaper rendering: background -> dots -> optional text overlay.
package grid

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/xob0t/daydots/pkg/generator"
	"github.com/xob0t/daydots/pkg/progress"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

// DaysLeftSuffix follows the numeral in the overlay.
const DaysLeftSuffix = " days left"

// Palette holds the three wallpaper colors.
type Palette struct {
	Background color.RGBA
	Done       color.RGBA
	Pending    color.RGBA
}

// Options configures a Renderer.
type Options struct {
	Canvas       Canvas
	Radius       RadiusRule
	Palette      Palette
	ShowDaysLeft bool
	FontPath     string
	FontSize     float64
}

// Renderer draws progress wallpapers.
type Renderer struct {
	opts        Options
	fontManager *FontManager
	dpi         float64
}

// NewRenderer creates a renderer. Fonts are only loaded when the
// days-left overlay is enabled.
func NewRenderer(opts Options) (*Renderer, error) {
	if opts.FontSize <= 0 {
		opts.FontSize = 40
	}

	r := &Renderer{opts: opts, dpi: 72}
	if opts.ShowDaysLeft {
		fm, err := NewFontManager(opts.FontPath)
		if err != nil {
			return nil, err
		}
		r.fontManager = fm
	}
	return r, nil
}

// Layout returns the grid that Render would use for totalDays.
func (r *Renderer) Layout(totalDays int) Layout {
	return ComputeLayout(totalDays, r.opts.Canvas, r.opts.Radius)
}

// Render draws p onto a fresh canvas. p is clamped before use.
func (r *Renderer) Render(p progress.Progress) (*image.RGBA, error) {
	p = p.Clamped()
	c := r.opts.Canvas

	img := generator.NewSolidImage(c.Width, c.Height, r.opts.Palette.Background)

	layout := r.Layout(p.TotalDays)
	var z vector.Rasterizer
	for _, d := range Dots(p, layout) {
		col := r.opts.Palette.Pending
		if d.Done {
			col = r.opts.Palette.Done
		}
		fillCircle(&z, img, d.X, d.Y, layout.Radius, col)
	}

	if r.opts.ShowDaysLeft {
		if err := r.drawDaysLeft(img, p.DaysLeft()); err != nil {
			return nil, err
		}
	}

	return img, nil
}

// fillCircle rasterizes an anti-aliased disc. The rasterizer only covers the
// disc's bounding box so its buffers stay small on dense grids.
func fillCircle(z *vector.Rasterizer, dst *image.RGBA, cx, cy, radius float64, col color.RGBA) {
	x0 := int(math.Floor(cx-radius)) - 1
	y0 := int(math.Floor(cy-radius)) - 1
	size := int(math.Ceil(2*radius)) + 3

	lx, ly := float32(cx-float64(x0)), float32(cy-float64(y0))
	rr := float32(radius)
	k := rr * kappa

	z.Reset(size, size)
	z.MoveTo(lx+rr, ly)
	z.CubeTo(lx+rr, ly+k, lx+k, ly+rr, lx, ly+rr)
	z.CubeTo(lx-k, ly+rr, lx-rr, ly+k, lx-rr, ly)
	z.CubeTo(lx-rr, ly-k, lx-k, ly-rr, lx, ly-rr)
	z.CubeTo(lx+k, ly-rr, lx+rr, ly-k, lx+rr, ly)
	z.ClosePath()

	bounds := image.Rect(x0, y0, x0+size, y0+size)
	if !bounds.In(dst.Bounds()) {
		// Clip via an intermediate mask when the disc touches the edge.
		mask := image.NewAlpha(image.Rect(0, 0, size, size))
		z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
		draw.DrawMask(dst, bounds, image.NewUniform(col), image.Point{}, mask, image.Point{}, draw.Over)
		return
	}
	z.Draw(dst, bounds, image.NewUniform(col), image.Point{})
}

// OverlayPosition returns the x of the numeral, the x of the suffix and the
// shared baseline. The suffix's right edge sits 10px past the grid margin;
// the numeral ends where the suffix begins.
func OverlayPosition(c Canvas, numWidth, suffixWidth fixed.Int26_6) (numX, suffixX, baseline fixed.Int26_6) {
	suffixX = fixed.I(c.Width-c.SidePad+10) - suffixWidth
	numX = suffixX - numWidth
	baseline = fixed.I(c.Height - c.BottomSafe + 10)
	return numX, suffixX, baseline
}

// drawDaysLeft renders "<N> days left" below the bottom safe-area line.
func (r *Renderer) drawDaysLeft(img *image.RGBA, daysLeft int) error {
	face, err := r.fontManager.GetFace(r.opts.FontSize, r.dpi)
	if err != nil {
		return err
	}
	defer face.Close()

	numText := strconv.Itoa(daysLeft)
	numX, suffixX, baseline := OverlayPosition(r.opts.Canvas,
		font.MeasureString(face, numText),
		font.MeasureString(face, DaysLeftSuffix))

	r.drawString(img, DaysLeftSuffix, fixed.Point26_6{X: suffixX, Y: baseline}, r.opts.Palette.Pending, face)
	r.drawString(img, numText, fixed.Point26_6{X: numX, Y: baseline}, r.opts.Palette.Done, face)
	return nil
}

// drawString draws text with its baseline origin at dot.
func (r *Renderer) drawString(img *image.RGBA, text string, dot fixed.Point26_6, col color.Color, face font.Face) {
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  dot,
	}
	drawer.DrawString(text)
}
