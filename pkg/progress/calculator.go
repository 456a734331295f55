// calculator.go — The three date-range modes.
package progress

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Mode selects how the date span is derived.
type Mode string

const (
	// ModeYear counts through the current UTC calendar year.
	ModeYear Mode = "year"
	// ModeRange counts from a literal start date to a literal end date.
	ModeRange Mode = "range"
	// ModeYears counts from a literal start date to the same month/day
	// a fixed number of calendar years later.
	ModeYears Mode = "years"
)

var (
	ErrUnknownMode = errors.New("unknown progress mode")
	ErrEmptySpan   = errors.New("end date must be after start date")
)

// Config describes one calculator variant. Start and End use DateLayout.
type Config struct {
	Mode  Mode   `json:"mode"`
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
	Years int    `json:"years,omitempty"`
}

// Calculator turns a clock reading into a Progress.
type Calculator struct {
	mode  Mode
	start time.Time
	end   time.Time
}

// NewCalculator validates cfg and returns a calculator for it.
func NewCalculator(cfg Config) (*Calculator, error) {
	mode := Mode(strings.ToLower(string(cfg.Mode)))
	if mode == "" {
		mode = ModeYear
	}

	c := &Calculator{mode: mode}
	switch mode {
	case ModeYear:
		return c, nil
	case ModeRange:
		start, err := parseDate("start", cfg.Start)
		if err != nil {
			return nil, err
		}
		end, err := parseDate("end", cfg.End)
		if err != nil {
			return nil, err
		}
		c.start, c.end = start, end
	case ModeYears:
		start, err := parseDate("start", cfg.Start)
		if err != nil {
			return nil, err
		}
		if cfg.Years <= 0 {
			return nil, fmt.Errorf("years must be positive, got %d: %w", cfg.Years, ErrEmptySpan)
		}
		c.start, c.end = start, AddYears(start, cfg.Years)
	default:
		return nil, fmt.Errorf("%w: %q (use year, range, years)", ErrUnknownMode, cfg.Mode)
	}

	if WholeDaysBetween(c.start, c.end) <= 0 {
		return nil, fmt.Errorf("%s to %s: %w", c.start.Format(DateLayout), c.end.Format(DateLayout), ErrEmptySpan)
	}
	return c, nil
}

// Mode returns the calculator's mode.
func (c *Calculator) Mode() Mode { return c.mode }

// Span returns the date span in effect at now. Only ModeYear depends on now.
func (c *Calculator) Span(now time.Time) DateSpan {
	if c.mode == ModeYear {
		y := now.UTC().Year()
		return DateSpan{
			Start: time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(y+1, time.January, 1, 0, 0, 0, 0, time.UTC),
		}
	}
	return DateSpan{Start: c.start, End: c.end}
}

// Compute returns the unclamped progress at now. DayNumber may be negative
// before the span starts or exceed TotalDays after it ends; renderers clamp.
func (c *Calculator) Compute(now time.Time) Progress {
	if c.mode == ModeYear {
		return Progress{
			DayNumber: DayOfYear(now),
			TotalDays: DaysInYear(now.UTC().Year()),
		}
	}
	return Progress{
		DayNumber: WholeDaysBetween(c.start, TruncateUTC(now)),
		TotalDays: WholeDaysBetween(c.start, c.end),
	}
}

func parseDate(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, fmt.Errorf("%s date is required", field)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid %s date %q: %w", field, s, err)
	}
	return t, nil
}
