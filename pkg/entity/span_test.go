package entity_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/moodcalendar/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func ptr(t time.Time) *time.Time { return &t }

func TestSpanContains(t *testing.T) {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC)
	parent := entity.Span{Start: start, End: &end}
	open := entity.Span{Start: start}

	testCases := []struct {
		Desc   string
		Outer  entity.Span
		Inner  entity.Span
		Result bool
	}{
		{"same span", parent, entity.Span{Start: start, End: ptr(end)}, true},
		{"strictly inside", parent, entity.Span{Start: start.Add(time.Hour), End: ptr(end.Add(-time.Hour))}, true},
		{"starts before parent", parent, entity.Span{Start: start.Add(-time.Minute), End: ptr(end)}, false},
		{"ends after parent", parent, entity.Span{Start: start, End: ptr(end.Add(time.Minute))}, false},
		{"open inner in closed parent", parent, entity.Span{Start: start}, false},
		{"open parent accepts late end", open, entity.Span{Start: start, End: ptr(end.AddDate(1, 0, 0))}, true},
		{"open parent still checks start", open, entity.Span{Start: start.Add(-time.Hour)}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Result, tc.Outer.Contains(tc.Inner))
		})
	}
}

func TestSpanOverlaps(t *testing.T) {
	dayStart := time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	assert.True(t, entity.Span{Start: dayStart.Add(-time.Hour), End: ptr(dayStart)}.Overlaps(dayStart, dayEnd))
	assert.True(t, entity.Span{Start: dayStart.Add(time.Hour), End: ptr(dayEnd.Add(time.Hour))}.Overlaps(dayStart, dayEnd))
	assert.False(t, entity.Span{Start: dayEnd, End: ptr(dayEnd.Add(time.Hour))}.Overlaps(dayStart, dayEnd))
	assert.False(t, entity.Span{Start: dayStart.Add(-2 * time.Hour), End: ptr(dayStart.Add(-time.Hour))}.Overlaps(dayStart, dayEnd))
	assert.False(t, entity.Span{Start: dayStart}.Overlaps(dayStart, dayEnd))
}

func TestDailyLogEmpty(t *testing.T) {
	log := entity.DailyLog{}
	assert.True(t, log.Empty())
	log.HasMarker = true
	assert.False(t, log.Empty())
	log.HasMarker = false
	id := uuid.New()
	log.MoodID = &id
	assert.False(t, log.Empty())
}
