package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/moodcalendar/internal/error_values"
	"github.com/limbo/moodcalendar/internal/repository"
	"github.com/limbo/moodcalendar/pkg/calendar"
	"github.com/limbo/moodcalendar/pkg/entity"
)

type DailyLogsService struct {
	repo  repository.DailyLogsRepositoryI
	cache MonthCacheI
}

func NewDailyLogsService(logsRepo repository.DailyLogsRepositoryI, cache MonthCacheI) *DailyLogsService {
	if logsRepo == nil {
		log.Fatal("provided nil dailyLogsRepo")
	}
	if cache == nil {
		cache = noopCache{}
	}
	InitValidator()
	return &DailyLogsService{
		repo:  logsRepo,
		cache: cache,
	}
}

// runInTx retries once when a concurrent request created the day row first.
// The second attempt finds that row and updates it.
func (ds *DailyLogsService) runInTx(ctx context.Context, fn func(tx repository.DailyLogsTxI) error) error {
	err := ds.repo.RunInTx(ctx, fn)
	if errors.Is(err, errorvalues.ErrDailyLogExists) {
		err = ds.repo.RunInTx(ctx, fn)
	}
	return err
}

// findLog returns the locked day row or nil when there is none.
func findLog(ctx context.Context, tx repository.DailyLogsTxI, uid uuid.UUID, date time.Time) (*entity.DailyLog, error) {
	dl, err := tx.GetByDate(ctx, uid, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDailyLogNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return dl, nil
}

// saveLog writes dl back, deleting the row when it carries nothing.
func saveLog(ctx context.Context, tx repository.DailyLogsTxI, dl *entity.DailyLog) error {
	if dl.Empty() {
		return tx.Delete(ctx, dl.ID)
	}
	return tx.Update(ctx, dl)
}

func (ds *DailyLogsService) SetMood(ctx context.Context, uid uuid.UUID, year, month, day int, color *string) error {
	date, err := calendar.Date(year, month, day)
	if err != nil {
		return err
	}
	var normalized string
	if color != nil {
		if err = validateColor(*color); err != nil {
			return err
		}
		normalized = strings.ToLower(*color)
	}
	err = ds.runInTx(ctx, func(tx repository.DailyLogsTxI) error {
		dl, err := findLog(ctx, tx, uid, date)
		if err != nil {
			return err
		}
		if color == nil {
			if dl == nil {
				return nil
			}
			dl.MoodID = nil
			return saveLog(ctx, tx, dl)
		}
		mood, err := tx.GetOrCreateMood(ctx, normalized)
		if err != nil {
			return err
		}
		if dl == nil {
			return tx.Create(ctx, &entity.DailyLog{
				UserID: uid,
				Date:   date,
				MoodID: &mood.ID,
			})
		}
		dl.MoodID = &mood.ID
		return tx.Update(ctx, dl)
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrDailyLogExists) {
			return err
		}
		return errors.New("setting mood error: " + err.Error())
	}
	invalidateMonths(ctx, ds.cache, uid)
	return nil
}

func (ds *DailyLogsService) ToggleMarker(ctx context.Context, uid uuid.UUID, year, month, day int) (bool, error) {
	date, err := calendar.Date(year, month, day)
	if err != nil {
		return false, err
	}
	var state bool
	err = ds.runInTx(ctx, func(tx repository.DailyLogsTxI) error {
		dl, err := findLog(ctx, tx, uid, date)
		if err != nil {
			return err
		}
		if dl == nil {
			state = true
			return tx.Create(ctx, &entity.DailyLog{
				UserID:    uid,
				Date:      date,
				HasMarker: true,
			})
		}
		dl.HasMarker = !dl.HasMarker
		state = dl.HasMarker
		return saveLog(ctx, tx, dl)
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrDailyLogExists) {
			return false, err
		}
		return false, errors.New("toggling marker error: " + err.Error())
	}
	invalidateMonths(ctx, ds.cache, uid)
	return state, nil
}
