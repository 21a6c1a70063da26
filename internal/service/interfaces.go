package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/moodcalendar/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

// SpanRequest is the create/update form shared by events and subevents.
// Dates are DD-MM-YYYY, times HH:MM.
type SpanRequest struct {
	Name      string `validate:"required,max=200"`
	StartDate string `validate:"required,dmy_date"`
	StartTime string `validate:"omitempty,hm_time"`
	EndDate   string `validate:"required,dmy_date"`
	EndTime   string `validate:"omitempty,hm_time"`
	Notes     string `validate:"max=2000"`
	WithWho   string `validate:"max=200"`
	Where     string `validate:"max=200"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type CalendarServiceI interface {
	// Month view. Anonymous callers (nil uid) get the bare grid.
	// Month 13 and 0 roll over into the adjacent year
	GetMonthData(ctx context.Context, year, month int, uid *uuid.UUID) (*entity.MonthData, error)
	// Twelve month views of the year in order
	GetYearData(ctx context.Context, year int, uid *uuid.UUID) ([]*entity.MonthData, error)
}

type DailyLogsServiceI interface {
	// Sets mood of the day. Nil color clears it
	SetMood(ctx context.Context, uid uuid.UUID, year, month, day int, color *string) error
	// Flips marker of the day, returns new state
	ToggleMarker(ctx context.Context, uid uuid.UUID, year, month, day int) (bool, error)
}

type EventsServiceI interface {
	CreateEvent(ctx context.Context, uid uuid.UUID, req *SpanRequest) (uuid.UUID, error)
	UpdateEvent(ctx context.Context, uid, id uuid.UUID, req *SpanRequest) error
	// Deletes event with all its subevents
	DeleteEvent(ctx context.Context, uid, id uuid.UUID) error
	// Events overlapping the day, each with its subevents overlapping the same day
	GetDayEvents(ctx context.Context, uid uuid.UUID, year, month, day int) ([]*entity.Event, error)
	// Events overlapping the month, without subevents
	GetMonthEvents(ctx context.Context, uid uuid.UUID, year, month int) ([]*entity.Event, error)

	CreateSubEvent(ctx context.Context, uid, eventID uuid.UUID, req *SpanRequest) (uuid.UUID, error)
	GetSubEvent(ctx context.Context, uid, id uuid.UUID) (*entity.SubEvent, error)
	UpdateSubEvent(ctx context.Context, uid, id uuid.UUID, req *SpanRequest) error
	DeleteSubEvent(ctx context.Context, uid, id uuid.UUID) error
}

// MonthCacheI stores computed month views per user. Entries are addressed by
// the user's version, which Invalidate bumps.
type MonthCacheI interface {
	Version(ctx context.Context, uid uuid.UUID) (int64, error)
	Get(ctx context.Context, uid uuid.UUID, version int64, year, month int) (*entity.MonthData, bool, error)
	Set(ctx context.Context, uid uuid.UUID, version int64, data *entity.MonthData) error
	Invalidate(ctx context.Context, uid uuid.UUID) error
}
