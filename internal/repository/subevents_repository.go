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

const subEventColumns = `id, event_id, name, start_time, end_time, notes, with_who, place`

type SubEventsRepository struct {
	conn PgConnection
}

func NewSubEventsRepo(cfg DBConfig) *SubEventsRepository {
	return &SubEventsRepository{
		conn: NewPool(cfg),
	}
}

func NewSubEventsRepoWithConn(conn PgConnection) *SubEventsRepository {
	mustPing(conn, "subEventsRepo")
	return &SubEventsRepository{
		conn: conn,
	}
}

func scanSubEvent(row pgx.Row) (*entity.SubEvent, error) {
	var s entity.SubEvent
	err := row.Scan(&s.ID, &s.EventID, &s.Name, &s.Start, &s.End, &s.Notes, &s.WithWho, &s.Where)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (sr *SubEventsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SubEvent, error) {
	s, err := scanSubEvent(sr.conn.QueryRow(ctx, `SELECT `+subEventColumns+` FROM subevents WHERE id = $1;`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrSubEventNotFound
		}
		return nil, errors.New("getting subevent by id error: " + err.Error())
	}
	return s, nil
}

func (sr *SubEventsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := sr.conn.Exec(ctx, `DELETE FROM subevents WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting subevent error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSubEventNotFound
	}
	return nil
}

func (sr *SubEventsRepository) GetOverlapping(ctx context.Context, eventIDs []uuid.UUID, from, to time.Time) ([]*entity.SubEvent, error) {
	subs := make([]*entity.SubEvent, 0)
	if len(eventIDs) == 0 {
		return subs, nil
	}
	rows, err := sr.conn.Query(ctx, `SELECT `+subEventColumns+` FROM subevents
		WHERE event_id = ANY($1) AND start_time < $2 AND end_time >= $3 ORDER BY start_time;`, eventIDs, to, from)
	if err != nil {
		return nil, errors.New("getting subevents for period error: " + err.Error())
	}
	defer rows.Close()
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
