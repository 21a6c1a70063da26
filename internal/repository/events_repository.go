package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/moodcalendar/internal/error_values"
	"github.com/limbo/moodcalendar/pkg/entity"
)

const eventColumns = `id, user_id, name, start_time, end_time, notes, with_who, place, created_at, last_modified`

type EventsRepository struct {
	conn PgConnection
}

func NewEventsRepo(cfg DBConfig) *EventsRepository {
	return &EventsRepository{
		conn: NewPool(cfg),
	}
}

func NewEventsRepoWithConn(conn PgConnection) *EventsRepository {
	mustPing(conn, "eventsRepo")
	return &EventsRepository{
		conn: conn,
	}
}

func scanEvent(row pgx.Row) (*entity.Event, error) {
	var e entity.Event
	err := row.Scan(&e.ID, &e.UserID, &e.Name, &e.Start, &e.End, &e.Notes, &e.WithWho, &e.Where, &e.CreatedAt, &e.LastModified)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (er *EventsRepository) Create(ctx context.Context, event *entity.Event) (uuid.UUID, error) {
	var id uuid.UUID
	row := er.conn.QueryRow(ctx, `INSERT INTO events (user_id, name, start_time, end_time, notes, with_who, place)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`,
		event.UserID,
		event.Name,
		event.Start,
		event.End,
		event.Notes,
		event.WithWho,
		event.Where,
	)
	if err := row.Scan(&id); err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return uuid.Nil, errorvalues.ErrUserNotFound
		}
		return uuid.Nil, errors.New("creating event error: " + err.Error())
	}
	return id, nil
}

func (er *EventsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	e, err := scanEvent(er.conn.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrEventNotFound
		}
		return nil, errors.New("getting event by id error: " + err.Error())
	}
	return e, nil
}

func (er *EventsRepository) Delete(ctx context.Context, id, uid uuid.UUID) error {
	tx, err := er.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning event delete tx error: " + err.Error())
	}
	_, err = tx.Exec(ctx, `DELETE FROM subevents WHERE event_id = $1;`, id)
	if err != nil {
		_ = tx.Rollback(ctx)
		return errors.New("deleting subevents error: " + err.Error())
	}
	ct, err := tx.Exec(ctx, `DELETE FROM events WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		_ = tx.Rollback(ctx)
		return errors.New("deleting event error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		_ = tx.Rollback(ctx)
		return errorvalues.ErrEventNotFound
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing event delete error: " + err.Error())
	}
	return nil
}

func (er *EventsRepository) GetOverlapping(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]*entity.Event, error) {
	rows, err := er.conn.Query(ctx, `SELECT `+eventColumns+` FROM events
		WHERE user_id = $1 AND start_time < $2 AND end_time >= $3 ORDER BY start_time;`, uid, to, from)
	if err != nil {
		return nil, errors.New("getting events for period error: " + err.Error())
	}
	defer rows.Close()
	events := make([]*entity.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, errors.New("event row parsing error: " + err.Error())
		}
		events = append(events, e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected event rows error: " + err.Error())
	}
	return events, nil
}

func (er *EventsRepository) RunInTx(ctx context.Context, fn func(tx EventsTxI) error) error {
	tx, err := er.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning event tx error: " + err.Error())
	}
	if err = fn(&eventsTx{tx: tx}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing event tx error: " + err.Error())
	}
	return nil
}

type eventsTx struct {
	tx pgx.Tx
}

func (t *eventsTx) GetForUpdate(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	e, err := scanEvent(t.tx.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1 FOR UPDATE;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrEventNotFound
		}
		return nil, errors.New("locking event error: " + err.Error())
	}
	return e, nil
}

func (t *eventsTx) Update(ctx context.Context, event *entity.Event) error {
	ct, err := t.tx.Exec(ctx, `UPDATE events SET name = $1, start_time = $2, end_time = $3, notes = $4, with_who = $5, place = $6,
		last_modified = NOW() WHERE id = $7 AND user_id = $8;`,
		event.Name,
		event.Start,
		event.End,
		event.Notes,
		event.WithWho,
		event.Where,
		event.ID,
		event.UserID,
	)
	if err != nil {
		return errors.New("updating event error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrEventNotFound
	}
	return nil
}

func (t *eventsTx) SubEvents(ctx context.Context, eventID uuid.UUID) ([]*entity.SubEvent, error) {
	rows, err := t.tx.Query(ctx, `SELECT `+subEventColumns+` FROM subevents WHERE event_id = $1 ORDER BY start_time;`, eventID)
	if err != nil {
		return nil, errors.New("getting event subevents error: " + err.Error())
	}
	defer rows.Close()
	subs := make([]*entity.SubEvent, 0)
	for rows.Next() {
		s, err := scanSubEvent(rows)
		if err != nil {
			return nil, errors.New("subevent row parsing error: " + err.Error())
		}
		subs = append(subs, s)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected subevent rows error: " + err.Error())
	}
	return subs, nil
}

func (t *eventsTx) CreateSubEvent(ctx context.Context, sub *entity.SubEvent) (uuid.UUID, error) {
	var id uuid.UUID
	row := t.tx.QueryRow(ctx, `INSERT INTO subevents (event_id, name, start_time, end_time, notes, with_who, place)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`,
		sub.EventID,
		sub.Name,
		sub.Start,
		sub.End,
		sub.Notes,
		sub.WithWho,
		sub.Where,
	)
	if err := row.Scan(&id); err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return uuid.Nil, errorvalues.ErrEventNotFound
		}
		return uuid.Nil, errors.New("creating subevent error: " + err.Error())
	}
	return id, nil
}

func (t *eventsTx) UpdateSubEvent(ctx context.Context, sub *entity.SubEvent) error {
	ct, err := t.tx.Exec(ctx, `UPDATE subevents SET name = $1, start_time = $2, end_time = $3, notes = $4, with_who = $5, place = $6
		WHERE id = $7 AND event_id = $8;`,
		sub.Name,
		sub.Start,
		sub.End,
		sub.Notes,
		sub.WithWho,
		sub.Where,
		sub.ID,
		sub.EventID,
	)
	if err != nil {
		return errors.New("updating subevent error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSubEventNotFound
	}
	return nil
}
