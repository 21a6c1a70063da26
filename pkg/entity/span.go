package entity

import (
	"time"

	"github.com/google/uuid"
)

// Span is the schedulable shape shared by events and sub-events.
// End is nil for open-ended spans.
type Span struct {
	Name    string
	Start   time.Time
	End     *time.Time
	Notes   string
	WithWho string
	Where   string
}

// Contains reports whether inner lies within s: inner starts no earlier than s
// and, when s has an end, inner ends no later than it. An open-ended inner span
// cannot fit into a closed one.
func (s Span) Contains(inner Span) bool {
	if inner.Start.Before(s.Start) {
		return false
	}
	if s.End == nil {
		return true
	}
	if inner.End == nil {
		return false
	}
	return !inner.End.After(*s.End)
}

// Overlaps matches the storage filter: start < to AND end >= from.
// Open-ended spans never overlap.
func (s Span) Overlaps(from, to time.Time) bool {
	if s.End == nil {
		return false
	}
	return s.Start.Before(to) && !s.End.Before(from)
}

type Event struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Span
	CreatedAt    time.Time
	LastModified time.Time
	SubEvents    []*SubEvent
}

type SubEvent struct {
	ID      uuid.UUID
	EventID uuid.UUID
	Span
}
