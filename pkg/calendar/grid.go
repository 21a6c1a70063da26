// Package calendar holds the pure date arithmetic behind the month views:
// grid layout, month and day windows, and wire date parsing.
package calendar

import (
	"time"

	"github.com/limbo/moodcalendar/pkg/entity"
)

// GridCells is the size of a month view: 6 rows of 7 days.
const GridCells = 42

// BuildGrid lays out a month on a Monday-first 6x7 grid. Leading cells are
// filled with the trailing days of the previous month, trailing cells with
// the first days of the next one.
func BuildGrid(year, month int) entity.CalendarGrid {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	// time.Weekday is Sunday-based, shift to Monday = 0
	lead := (int(first.Weekday()) + 6) % 7

	prev := make([]int, 0, lead)
	if lead > 0 {
		prevYear, prevMonth := Normalize(year, month-1)
		prevLen := DaysIn(prevYear, prevMonth)
		for d := prevLen - lead + 1; d <= prevLen; d++ {
			prev = append(prev, d)
		}
	}

	n := DaysIn(year, month)
	current := make([]int, 0, n)
	for d := 1; d <= n; d++ {
		current = append(current, d)
	}

	rest := GridCells - len(prev) - len(current)
	if rest < 0 {
		rest = 0
	}
	next := make([]int, 0, rest)
	for d := 1; d <= rest; d++ {
		next = append(next, d)
	}

	return entity.CalendarGrid{
		PrevDays:    prev,
		CurrentDays: current,
		NextDays:    next,
	}
}

// DaysIn returns the number of days in the month.
func DaysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Normalize rolls month 13 into January of the next year and month 0 into
// December of the previous one. Other values are returned unchanged.
func Normalize(year, month int) (int, int) {
	switch {
	case month > 12:
		return year + 1, 1
	case month < 1:
		return year - 1, 12
	}
	return year, month
}

// ValidMonth reports whether the month is accepted by Normalize callers:
// 1..12 plus the 0 and 13 navigation values.
func ValidMonth(month int) bool {
	return month >= 0 && month <= 13
}

// MonthBounds returns the [start, end) window of a month.
func MonthBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// DayBounds returns the [start, end) window of the day containing date.
func DayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}

// MonthLabel renders "February 2024".
func MonthLabel(year, month int) string {
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}
