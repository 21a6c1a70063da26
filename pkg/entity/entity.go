package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type Mood struct {
	ID    uuid.UUID `json:"id"`
	Color string    `json:"color"`
	Name  string    `json:"name"`
}

// DailyLog is the per-user, per-date row carrying an optional mood and a marker.
type DailyLog struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Date      time.Time
	MoodID    *uuid.UUID
	HasMarker bool
}

// Empty reports whether the log carries neither a mood nor a marker.
// Such a row must not be kept in storage.
func (l *DailyLog) Empty() bool {
	return l.MoodID == nil && !l.HasMarker
}

type CalendarGrid struct {
	PrevDays    []int `json:"prev_days"`
	CurrentDays []int `json:"current_days"`
	NextDays    []int `json:"next_days"`
}

type MonthData struct {
	Year           int            `json:"year"`
	Month          int            `json:"month"`
	Grid           CalendarGrid   `json:"calendar_data"`
	MoodColors     map[int]string `json:"mood_colors"`
	DaysWithEvents []int          `json:"days_with_events"`
	DaysWithMarker []int          `json:"days_with_marker"`
}
