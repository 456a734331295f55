// validator.go — Reject configurations that cannot produce a wallpaper.
package config

import (
	"errors"
	"fmt"

	"github.com/xob0t/daydots/pkg/generator"
	"github.com/xob0t/daydots/pkg/progress"
)

// Validate checks geometry, palette and dates. All problems are joined
// into one error.
func (c Config) Validate() error {
	_, err := c.Calculator()
	return err
}

// Calculator validates c like Validate and returns the calculator for its
// dates, so callers build it only once.
func (c Config) Calculator() (*progress.Calculator, error) {
	var errs []error

	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height))
	}
	if c.SafeArea.Top < 0 || c.SafeArea.Bottom < 0 || c.SafeArea.Top+c.SafeArea.Bottom >= 1 {
		errs = append(errs, fmt.Errorf("safe areas must be non-negative and leave room for the grid, got top=%v bottom=%v", c.SafeArea.Top, c.SafeArea.Bottom))
	}
	if c.SafeArea.Side < 0 || 2*c.SafeArea.Side >= c.Canvas.Width {
		errs = append(errs, fmt.Errorf("side padding %d does not fit a %dpx canvas", c.SafeArea.Side, c.Canvas.Width))
	}
	if c.Grid.MaxCols < 1 {
		errs = append(errs, fmt.Errorf("maxCols must be at least 1, got %d", c.Grid.MaxCols))
	}
	if r := c.Grid.Radius; r.Fixed <= 0 && (r.Min < 1 || r.Max < r.Min) {
		errs = append(errs, fmt.Errorf("radius needs fixed > 0 or 1 <= min <= max, got %+v", r))
	}

	for name, hex := range map[string]string{
		"background": c.Colors.Background,
		"done":       c.Colors.Done,
		"pending":    c.Colors.Pending,
	} {
		if _, _, _, err := generator.ParseColor(hex); err != nil {
			errs = append(errs, fmt.Errorf("%s color: %w", name, err))
		}
	}

	calc, err := progress.NewCalculator(c.Dates)
	if err != nil {
		errs = append(errs, fmt.Errorf("dates: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return calc, nil
}
