package progress

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsLeapYear(t *testing.T) {
	testCases := []struct {
		year int
		leap bool
		days int
	}{
		{2000, true, 366},
		{1900, false, 365},
		{2024, true, 366},
		{2023, false, 365},
		{2100, false, 365},
		{2400, true, 366},
	}

	for _, tc := range testCases {
		if got := IsLeapYear(tc.year); got != tc.leap {
			t.Errorf("IsLeapYear(%d) = %v, want %v", tc.year, got, tc.leap)
		}
		if got := DaysInYear(tc.year); got != tc.days {
			t.Errorf("DaysInYear(%d) = %d, want %d", tc.year, got, tc.days)
		}
	}
}

func TestClamp(t *testing.T) {
	for x := -20; x <= 20; x++ {
		got := Clamp(x, -5, 7)
		if got < -5 || got > 7 {
			t.Fatalf("Clamp(%d, -5, 7) = %d out of range", x, got)
		}
		if x >= -5 && x <= 7 && got != x {
			t.Errorf("Clamp(%d, -5, 7) = %d, want identity", x, got)
		}
	}
}

func TestWholeDaysBetween(t *testing.T) {
	testCases := []struct {
		a, b time.Time
		want int
	}{
		{date(2024, 1, 1), date(2024, 1, 1), 0},
		{date(2024, 1, 1), date(2024, 1, 2), 1},
		{date(2024, 1, 1), date(2025, 1, 1), 366},
		{date(2024, 1, 2), date(2024, 1, 1), -1},
		{date(2024, 1, 1), date(2024, 1, 1).Add(23 * time.Hour), 0},
		{date(2024, 1, 2), date(2024, 1, 1).Add(12 * time.Hour), -1},
	}

	for _, tc := range testCases {
		if got := WholeDaysBetween(tc.a, tc.b); got != tc.want {
			t.Errorf("WholeDaysBetween(%s, %s) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDayOfYear_IgnoresTimeOfDay(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*3600)

	testCases := []struct {
		now  time.Time
		want int
	}{
		{date(2024, 1, 1), 1},
		{date(2024, 1, 1).Add(23*time.Hour + 59*time.Minute), 1},
		{date(2024, 12, 31), 366},
		{date(2023, 12, 31), 365},
		// 2024-01-01 20:00 in UTC-8 is already January 2 in UTC.
		{time.Date(2024, 1, 1, 20, 0, 0, 0, loc), 2},
	}

	for _, tc := range testCases {
		if got := DayOfYear(tc.now); got != tc.want {
			t.Errorf("DayOfYear(%s) = %d, want %d", tc.now, got, tc.want)
		}
	}
}

func TestCalculator_YearMode(t *testing.T) {
	c, err := NewCalculator(Config{Mode: ModeYear})
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}

	p := c.Compute(date(2024, 1, 1).Add(9 * time.Hour))
	if p.DayNumber != 1 || p.TotalDays != 366 {
		t.Errorf("2024-01-01: got %+v, want {1 366}", p)
	}

	p = c.Compute(date(2023, 7, 1))
	if p.DayNumber != 182 || p.TotalDays != 365 {
		t.Errorf("2023-07-01: got %+v, want {182 365}", p)
	}

	span := c.Span(date(2024, 6, 1))
	if !span.Start.Equal(date(2024, 1, 1)) || span.Days() != 366 {
		t.Errorf("span = %s (%d days), want 2024 with 366 days", span, span.Days())
	}
}

func TestCalculator_EmptyModeDefaultsToYear(t *testing.T) {
	c, err := NewCalculator(Config{})
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	if c.Mode() != ModeYear {
		t.Errorf("mode = %q, want %q", c.Mode(), ModeYear)
	}
}

func TestCalculator_YearsMode(t *testing.T) {
	c, err := NewCalculator(Config{Mode: ModeYears, Start: "2006-07-22", Years: 75})
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}

	// 75 * 365 plus the 19 leap days 2008..2080.
	p := c.Compute(date(2006, 7, 23).Add(15 * time.Hour))
	if p.TotalDays != 27394 {
		t.Errorf("TotalDays = %d, want 27394", p.TotalDays)
	}
	if p.DayNumber != 1 {
		t.Errorf("DayNumber = %d, want 1", p.DayNumber)
	}

	span := c.Span(time.Now())
	if got := span.End.Format(DateLayout); got != "2081-07-22" {
		t.Errorf("end = %s, want 2081-07-22", got)
	}
}

func TestCalculator_YearsModeLeapSensitive(t *testing.T) {
	leap, err := NewCalculator(Config{Mode: ModeYears, Start: "2023-03-01", Years: 1})
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}
	flat, err := NewCalculator(Config{Mode: ModeYears, Start: "2022-03-01", Years: 1})
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}

	if got := leap.Compute(date(2023, 3, 1)).TotalDays; got != 366 {
		t.Errorf("span over Feb 29 = %d days, want 366", got)
	}
	if got := flat.Compute(date(2022, 3, 1)).TotalDays; got != 365 {
		t.Errorf("span without Feb 29 = %d days, want 365", got)
	}
}

func TestCalculator_RangeMode(t *testing.T) {
	c, err := NewCalculator(Config{Mode: ModeRange, Start: "2025-09-01", End: "2026-06-30"})
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}

	p := c.Compute(date(2025, 9, 1))
	if p.DayNumber != 0 || p.TotalDays != 302 {
		t.Errorf("start day: got %+v, want {0 302}", p)
	}

	// Before the span and after it the raw values leave the range.
	if got := c.Compute(date(2025, 8, 30)).DayNumber; got != -2 {
		t.Errorf("before start: DayNumber = %d, want -2", got)
	}
	after := c.Compute(date(2026, 7, 10))
	if after.DayNumber <= after.TotalDays {
		t.Errorf("after end: DayNumber = %d, want > %d", after.DayNumber, after.TotalDays)
	}
	if c := after.Clamped(); c.DayNumber != c.TotalDays {
		t.Errorf("clamped after end = %+v, want DayNumber == TotalDays", c)
	}
}

func TestCalculator_MonotonicByDay(t *testing.T) {
	calcs := map[string]Config{
		"range": {Mode: ModeRange, Start: "2020-01-01", End: "2030-01-01"},
		"years": {Mode: ModeYears, Start: "2020-02-29", Years: 4},
	}

	for name, cfg := range calcs {
		c, err := NewCalculator(cfg)
		if err != nil {
			t.Fatalf("%s: NewCalculator: %v", name, err)
		}
		now := date(2020, 3, 1).Add(13 * time.Hour)
		prev := c.Compute(now).DayNumber
		for i := 0; i < 800; i++ {
			now = now.Add(Day)
			cur := c.Compute(now).DayNumber
			if cur != prev+1 {
				t.Fatalf("%s: day %d: DayNumber went %d -> %d", name, i, prev, cur)
			}
			prev = cur
		}
	}
}

func TestNewCalculator_Errors(t *testing.T) {
	testCases := []struct {
		name string
		cfg  Config
		want error
	}{
		{"unknown mode", Config{Mode: "weekly"}, ErrUnknownMode},
		{"end before start", Config{Mode: ModeRange, Start: "2025-01-02", End: "2025-01-01"}, ErrEmptySpan},
		{"end equals start", Config{Mode: ModeRange, Start: "2025-01-01", End: "2025-01-01"}, ErrEmptySpan},
		{"zero years", Config{Mode: ModeYears, Start: "2025-01-01"}, ErrEmptySpan},
		{"bad date", Config{Mode: ModeRange, Start: "2025-13-01", End: "2026-01-01"}, nil},
		{"missing start", Config{Mode: ModeYears, Years: 3}, nil},
	}

	for _, tc := range testCases {
		_, err := NewCalculator(tc.cfg)
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if tc.want != nil && !errors.Is(err, tc.want) {
			t.Errorf("%s: error %v does not wrap %v", tc.name, err, tc.want)
		}
	}
}

func TestProgress_Clamped(t *testing.T) {
	testCases := []struct {
		in, want Progress
	}{
		{Progress{5, 10}, Progress{5, 10}},
		{Progress{-3, 10}, Progress{0, 10}},
		{Progress{12, 10}, Progress{10, 10}},
		{Progress{4, 0}, Progress{0, 0}},
		{Progress{4, -2}, Progress{0, 0}},
	}

	for _, tc := range testCases {
		if got := tc.in.Clamped(); got != tc.want {
			t.Errorf("%+v.Clamped() = %+v, want %+v", tc.in, got, tc.want)
		}
	}

	if got := (Progress{DayNumber: 100, TotalDays: 366}).DaysLeft(); got != 266 {
		t.Errorf("DaysLeft = %d, want 266", got)
	}
	if got := (Progress{DayNumber: 1, TotalDays: 4}).Fraction(); got != 0.25 {
		t.Errorf("Fraction = %v, want 0.25", got)
	}
}

func TestCalculator_CenturiesLongSpan(t *testing.T) {
	c, err := NewCalculator(Config{Mode: ModeYears, Start: "2000-01-01", Years: 400})
	if err != nil {
		t.Fatalf("NewCalculator: %v", err)
	}

	// One full Gregorian cycle has 146097 days.
	p := c.Compute(date(2000, 1, 2))
	if p.TotalDays != 146097 || p.DayNumber != 1 {
		t.Errorf("got %+v, want {1 146097}", p)
	}
	if got := WholeDaysBetween(date(2400, 1, 1), date(2000, 1, 1)); got != -146097 {
		t.Errorf("reversed span = %d, want -146097", got)
	}
}
