package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/moodcalendar/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database, returns generated id
	Create(ctx context.Context, user *entity.User) (uuid.UUID, error)
	// Looks up user by name. Used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
}

// All range reads take [from, to) windows
type DailyLogsRepositoryI interface {
	// Day of month -> mood color for logs carrying a mood
	MoodsInRange(ctx context.Context, uid uuid.UUID, from, to time.Time) (map[int]string, error)
	// Ascending days of month with has_marker set
	MarkedDaysInRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]int, error)
	// Runs fn inside one transaction. Commits when fn returns nil, rolls back otherwise
	RunInTx(ctx context.Context, fn func(tx DailyLogsTxI) error) error
}

type DailyLogsTxI interface {
	// Locks and returns the user's log for date
	GetByDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.DailyLog, error)
	// Inserts log, sets its ID
	Create(ctx context.Context, log *entity.DailyLog) error
	Update(ctx context.Context, log *entity.DailyLog) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Returns mood with given color, creating it on first use
	GetOrCreateMood(ctx context.Context, color string) (*entity.Mood, error)
}

type EventsRepositoryI interface {
	// Creates event owned by event.UserID
	Create(ctx context.Context, event *entity.Event) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	// Deletes event and all of its subevents
	Delete(ctx context.Context, id, uid uuid.UUID) error
	// Events with start < to and end >= from, ordered by start
	GetOverlapping(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.Event, error)
	// Runs fn inside one transaction. Commits when fn returns nil, rolls back otherwise
	RunInTx(ctx context.Context, fn func(tx EventsTxI) error) error
}

// Writes bound by subevent containment. Lock the parent with GetForUpdate first
type EventsTxI interface {
	// Locks and returns the event
	GetForUpdate(ctx context.Context, id uuid.UUID) (*entity.Event, error)
	// Updates event with event.ID owned by event.UserID
	Update(ctx context.Context, event *entity.Event) error
	// All subevents of the event, ordered by start
	SubEvents(ctx context.Context, eventID uuid.UUID) ([]*entity.SubEvent, error)
	CreateSubEvent(ctx context.Context, sub *entity.SubEvent) (uuid.UUID, error)
	UpdateSubEvent(ctx context.Context, sub *entity.SubEvent) error
}

type SubEventsRepositoryI interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SubEvent, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Subevents of given events with start < to and end >= from, ordered by start
	GetOverlapping(ctx context.Context, eventIDs []uuid.UUID, from, to time.Time) ([]*entity.SubEvent, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
