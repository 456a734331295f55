// Package progress computes elapsed and total whole days inside a date span.
//
// All arithmetic happens on UTC-midnight dates, so results do not depend on
// the local time of day or on DST transitions. The clock is always passed
// in explicitly.
package progress

import (
	"fmt"
	"time"
)

// DateSpan is the [Start, End) range a wallpaper counts through.
type DateSpan struct {
	Start time.Time
	End   time.Time
}

// Days returns the whole days from Start to End.
func (s DateSpan) Days() int {
	return WholeDaysBetween(s.Start, s.End)
}

// String renders the span as "YYYY-MM-DD → YYYY-MM-DD".
func (s DateSpan) String() string {
	return fmt.Sprintf("%s → %s", s.Start.Format(DateLayout), s.End.Format(DateLayout))
}

// Progress is the number of elapsed days out of a total.
type Progress struct {
	DayNumber int
	TotalDays int
}

// Clamped returns p with DayNumber bounded to [0, TotalDays].
// A non-positive TotalDays clamps DayNumber to 0.
func (p Progress) Clamped() Progress {
	total := max(p.TotalDays, 0)
	return Progress{
		DayNumber: Clamp(p.DayNumber, 0, total),
		TotalDays: total,
	}
}

// DaysLeft returns TotalDays - DayNumber after clamping.
func (p Progress) DaysLeft() int {
	c := p.Clamped()
	return c.TotalDays - c.DayNumber
}

// Fraction returns the elapsed share in [0, 1].
func (p Progress) Fraction() float64 {
	c := p.Clamped()
	if c.TotalDays == 0 {
		return 0
	}
	return float64(c.DayNumber) / float64(c.TotalDays)
}
