package calendar

import (
	"sort"
	"time"

	"github.com/limbo/moodcalendar/pkg/entity"
)

// EventDays returns the sorted days of month within [start, end) covered by
// at least one event. Each event is clipped to the window first, so an event
// spanning two months only marks the days that fall into this one.
// Open-ended events are skipped.
func EventDays(events []*entity.Event, start, end time.Time) []int {
	seen := make(map[int]struct{})
	lastDay := end.AddDate(0, 0, -1)
	for _, e := range events {
		if e == nil || e.End == nil {
			continue
		}
		from, _ := DayBounds(e.Start)
		if from.Before(start) {
			from = start
		}
		to, _ := DayBounds(*e.End)
		if to.After(lastDay) {
			to = lastDay
		}
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			seen[d.Day()] = struct{}{}
		}
	}
	days := make([]int, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}
