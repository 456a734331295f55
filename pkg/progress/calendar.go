// calendar.go — UTC calendar helpers used by every progress mode.
package progress

import "time"

// Day is one whole-day unit.
const Day = 24 * time.Hour

// DateLayout is the format accepted for literal dates.
const DateLayout = "2006-01-02"

// TruncateUTC strips the time of day, returning midnight of t's UTC date.
func TruncateUTC(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// secondsPerDay is Day in whole seconds.
const secondsPerDay = int64(Day / time.Second)

// WholeDaysBetween returns floor((b - a) / 24h). It works on Unix seconds
// so spans longer than a time.Duration can hold stay exact.
func WholeDaysBetween(a, b time.Time) int {
	diff := b.Unix() - a.Unix()
	days := diff / secondsPerDay
	if diff%secondsPerDay != 0 && diff < 0 {
		days--
	}
	return int(days)
}

// IsLeapYear reports whether y is a Gregorian leap year.
func IsLeapYear(y int) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(y int) int {
	if IsLeapYear(y) {
		return 366
	}
	return 365
}

// DayOfYear returns the UTC day-of-year of t, with January 1 = 1.
func DayOfYear(t time.Time) int {
	today := TruncateUTC(t)
	jan1 := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	return WholeDaysBetween(jan1, today) + 1
}

// AddYears adds n calendar years to t, keeping month and day.
// February 29 rolls over to March 1 in non-leap target years.
func AddYears(t time.Time, n int) time.Time {
	return t.AddDate(n, 0, 0)
}

// Clamp bounds n to [lo, hi].
func Clamp(n, lo, hi int) int {
	return max(lo, min(hi, n))
}
