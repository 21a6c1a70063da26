package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/moodcalendar/internal/error_values"
	"github.com/limbo/moodcalendar/internal/repository"
	"github.com/limbo/moodcalendar/pkg/calendar"
	"github.com/limbo/moodcalendar/pkg/entity"
)

type CalendarService struct {
	logs   repository.DailyLogsRepositoryI
	events repository.EventsRepositoryI
	cache  MonthCacheI
}

// NewCalendarService builds the month aggregator. A nil cache disables caching.
func NewCalendarService(logsRepo repository.DailyLogsRepositoryI, eventsRepo repository.EventsRepositoryI, cache MonthCacheI) *CalendarService {
	if logsRepo == nil {
		log.Fatal("provided nil dailyLogsRepo")
	}
	if eventsRepo == nil {
		log.Fatal("provided nil eventsRepo")
	}
	if cache == nil {
		cache = noopCache{}
	}
	return &CalendarService{
		logs:   logsRepo,
		events: eventsRepo,
		cache:  cache,
	}
}

func (cs *CalendarService) GetMonthData(ctx context.Context, year, month int, uid *uuid.UUID) (*entity.MonthData, error) {
	if !calendar.ValidMonth(month) {
		return nil, errorvalues.ErrInvalidMonth
	}
	year, month = calendar.Normalize(year, month)
	if uid == nil {
		return &entity.MonthData{
			Year:           year,
			Month:          month,
			Grid:           calendar.BuildGrid(year, month),
			MoodColors:     map[int]string{},
			DaysWithEvents: []int{},
			DaysWithMarker: []int{},
		}, nil
	}

	version, err := cs.cache.Version(ctx, *uid)
	cacheOK := err == nil
	if err != nil {
		slog.WarnContext(ctx, "month cache unavailable", slog.String("error", err.Error()))
	}
	if cacheOK {
		data, hit, err := cs.cache.Get(ctx, *uid, version, year, month)
		switch {
		case err != nil:
			slog.WarnContext(ctx, "month cache read failed", slog.String("error", err.Error()))
		case hit:
			return data, nil
		}
	}

	data, err := cs.aggregate(ctx, year, month, *uid)
	if err != nil {
		return nil, err
	}
	if cacheOK {
		if err = cs.cache.Set(ctx, *uid, version, data); err != nil {
			slog.WarnContext(ctx, "month cache write failed", slog.String("error", err.Error()))
		}
	}
	return data, nil
}

func (cs *CalendarService) aggregate(ctx context.Context, year, month int, uid uuid.UUID) (*entity.MonthData, error) {
	start, end := calendar.MonthBounds(year, month)
	moods, err := cs.logs.MoodsInRange(ctx, uid, start, end)
	if err != nil {
		return nil, errors.New("daily logs repository error: " + err.Error())
	}
	marked, err := cs.logs.MarkedDaysInRange(ctx, uid, start, end)
	if err != nil {
		return nil, errors.New("daily logs repository error: " + err.Error())
	}
	events, err := cs.events.GetOverlapping(ctx, uid, start, end)
	if err != nil {
		return nil, errors.New("events repository error: " + err.Error())
	}
	if moods == nil {
		moods = map[int]string{}
	}
	if marked == nil {
		marked = []int{}
	}
	return &entity.MonthData{
		Year:           year,
		Month:          month,
		Grid:           calendar.BuildGrid(year, month),
		MoodColors:     moods,
		DaysWithEvents: calendar.EventDays(events, start, end),
		DaysWithMarker: marked,
	}, nil
}

func (cs *CalendarService) GetYearData(ctx context.Context, year int, uid *uuid.UUID) ([]*entity.MonthData, error) {
	months := make([]*entity.MonthData, 0, 12)
	for month := 1; month <= 12; month++ {
		data, err := cs.GetMonthData(ctx, year, month, uid)
		if err != nil {
			return nil, err
		}
		months = append(months, data)
	}
	return months, nil
}

type noopCache struct{}

func (noopCache) Version(context.Context, uuid.UUID) (int64, error) { return 0, nil }

func (noopCache) Get(context.Context, uuid.UUID, int64, int, int) (*entity.MonthData, bool, error) {
	return nil, false, nil
}

func (noopCache) Set(context.Context, uuid.UUID, int64, *entity.MonthData) error { return nil }

func (noopCache) Invalidate(context.Context, uuid.UUID) error { return nil }

// invalidateMonths drops the user's cached months after a mutation.
// The cache purges months itself when the version bump fails, so an error
// here means redis refused both and is only logged.
func invalidateMonths(ctx context.Context, cache MonthCacheI, uid uuid.UUID) {
	if err := cache.Invalidate(ctx, uid); err != nil {
		slog.WarnContext(ctx, "month cache invalidation failed", slog.String("uid", uid.String()), slog.String("error", err.Error()))
	}
}
