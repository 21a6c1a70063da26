package calendar

import (
	"fmt"
	"time"

	errorvalues "github.com/limbo/moodcalendar/internal/error_values"
)

const (
	DateLayout      = "02-01-2006"
	ClockLayout     = "15:04"
	TimestampLayout = "2006-01-02 15:04"
)

// Date builds a calendar date, rejecting values time.Date would silently
// roll over (e.g. 30 February).
func Date(year, month, day int) (time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, errorvalues.ErrInvalidMonth
	}
	if day < 1 || day > DaysIn(year, month) {
		return time.Time{}, fmt.Errorf("%w: day %d out of range", errorvalues.ErrInvalidDate, day)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// ParseDateTime combines a DD-MM-YYYY date with an optional HH:MM clock.
// Without a clock the start of day is used, or 23:59 when isEnd is set.
func ParseDateTime(date, clock string, isEnd bool) (time.Time, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", errorvalues.ErrInvalidDate, date)
	}
	hour, minute := 0, 0
	if isEnd {
		hour, minute = 23, 59
	}
	if clock != "" {
		c, err := time.Parse(ClockLayout, clock)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", errorvalues.ErrInvalidTime, clock)
		}
		hour, minute = c.Hour(), c.Minute()
	}
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.UTC), nil
}

// FormatTimestamp renders t as YYYY-MM-DD HH:MM.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
