package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/moodcalendar/internal/error_values"
	"github.com/limbo/moodcalendar/pkg/entity"
)

// Placeholder name of moods created implicitly by color
const DefaultMoodName = "untitled"

type DailyLogsRepository struct {
	conn PgConnection
}

func NewDailyLogsRepo(cfg DBConfig) *DailyLogsRepository {
	return &DailyLogsRepository{
		conn: NewPool(cfg),
	}
}

func NewDailyLogsRepoWithConn(conn PgConnection) *DailyLogsRepository {
	mustPing(conn, "dailyLogsRepo")
	return &DailyLogsRepository{
		conn: conn,
	}
}

func (dr *DailyLogsRepository) MoodsInRange(ctx context.Context, uid uuid.UUID, from, to time.Time) (map[int]string, error) {
	rows, err := dr.conn.Query(ctx, `SELECT dl.date, m.color FROM daily_logs dl JOIN moods m ON m.id = dl.mood_id
		WHERE dl.user_id = $1 AND dl.date >= $2 AND dl.date < $3;`, uid, from, to)
	if err != nil {
		return nil, errors.New("getting moods for period error: " + err.Error())
	}
	defer rows.Close()
	result := make(map[int]string)
	for rows.Next() {
		var (
			date  time.Time
			color string
		)
		if err = rows.Scan(&date, &color); err != nil {
			return nil, errors.New("mood row parsing error: " + err.Error())
		}
		result[date.Day()] = color
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected mood rows error: " + err.Error())
	}
	return result, nil
}

func (dr *DailyLogsRepository) MarkedDaysInRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]int, error) {
	rows, err := dr.conn.Query(ctx, `SELECT date FROM daily_logs
		WHERE user_id = $1 AND has_marker AND date >= $2 AND date < $3 ORDER BY date;`, uid, from, to)
	if err != nil {
		return nil, errors.New("getting marked days for period error: " + err.Error())
	}
	defer rows.Close()
	days := make([]int, 0)
	for rows.Next() {
		var date time.Time
		if err = rows.Scan(&date); err != nil {
			return nil, errors.New("marker row parsing error: " + err.Error())
		}
		days = append(days, date.Day())
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected marker rows error: " + err.Error())
	}
	sort.Ints(days)
	return days, nil
}

func (dr *DailyLogsRepository) RunInTx(ctx context.Context, fn func(tx DailyLogsTxI) error) error {
	tx, err := dr.conn.Begin(ctx)
	if err != nil {
		return errors.New("beginning daily log tx error: " + err.Error())
	}
	if err = fn(&dailyLogsTx{tx: tx}); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("committing daily log tx error: " + err.Error())
	}
	return nil
}

type dailyLogsTx struct {
	tx pgx.Tx
}

func (t *dailyLogsTx) GetByDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.DailyLog, error) {
	var log entity.DailyLog
	row := t.tx.QueryRow(ctx, `SELECT id, user_id, date, mood_id, has_marker FROM daily_logs
		WHERE user_id = $1 AND date = $2 FOR UPDATE;`, uid, date)
	if err := row.Scan(&log.ID, &log.UserID, &log.Date, &log.MoodID, &log.HasMarker); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrDailyLogNotFound
		}
		return nil, errors.New("getting daily log by date error: " + err.Error())
	}
	return &log, nil
}

func (t *dailyLogsTx) Create(ctx context.Context, log *entity.DailyLog) error {
	row := t.tx.QueryRow(ctx, `INSERT INTO daily_logs (user_id, date, mood_id, has_marker) VALUES ($1, $2, $3, $4) RETURNING id;`,
		log.UserID,
		log.Date,
		log.MoodID,
		log.HasMarker,
	)
	if err := row.Scan(&log.ID); err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return errorvalues.ErrDailyLogExists
		}
		return errors.New("creating daily log error: " + err.Error())
	}
	return nil
}

func (t *dailyLogsTx) Update(ctx context.Context, log *entity.DailyLog) error {
	ct, err := t.tx.Exec(ctx, `UPDATE daily_logs SET mood_id = $1, has_marker = $2 WHERE id = $3;`,
		log.MoodID,
		log.HasMarker,
		log.ID,
	)
	if err != nil {
		return errors.New("updating daily log error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrDailyLogNotFound
	}
	return nil
}

func (t *dailyLogsTx) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := t.tx.Exec(ctx, `DELETE FROM daily_logs WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting daily log error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrDailyLogNotFound
	}
	return nil
}

func (t *dailyLogsTx) GetOrCreateMood(ctx context.Context, color string) (*entity.Mood, error) {
	_, err := t.tx.Exec(ctx, `INSERT INTO moods (color, name) VALUES ($1, $2) ON CONFLICT (color) DO NOTHING;`, color, DefaultMoodName)
	if err != nil {
		return nil, errors.New("creating mood error: " + err.Error())
	}
	var mood entity.Mood
	row := t.tx.QueryRow(ctx, `SELECT id, color, name FROM moods WHERE color = $1;`, color)
	if err = row.Scan(&mood.ID, &mood.Color, &mood.Name); err != nil {
		return nil, errors.New("getting mood by color error: " + err.Error())
	}
	return &mood, nil
}
