package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/moodcalendar/internal/error_values"
	"github.com/limbo/moodcalendar/internal/repository"
	repomocks "github.com/limbo/moodcalendar/internal/repository/mocks"
	"github.com/limbo/moodcalendar/internal/service"
	"github.com/limbo/moodcalendar/internal/service/mocks"
	"github.com/limbo/moodcalendar/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateEvent(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	eventsRepo := repomocks.NewMockEventsRepositoryI(ctrl)
	subsRepo := repomocks.NewMockSubEventsRepositoryI(ctrl)
	cache := mocks.NewMockMonthCacheI(ctrl)
	serv := service.NewEventsService(eventsRepo, subsRepo, cache)
	uid := uuid.New()
	eventID := uuid.New()

	testCases := []struct {
		Desc         string
		Req          service.SpanRequest
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "end time defaults to end of day",
			Req: service.SpanRequest{
				Name:      "trip",
				StartDate: "30-01-2024",
				StartTime: "10:00",
				EndDate:   "02-02-2024",
				Where:     "riga",
			},
			MockPrepFunc: func() {
				eventsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *entity.Event) (uuid.UUID, error) {
					assert.Equal(t, uid, e.UserID)
					assert.Equal(t, time.Date(2024, 1, 30, 10, 0, 0, 0, time.UTC), e.Start)
					require.NotNil(t, e.End)
					assert.Equal(t, time.Date(2024, 2, 2, 23, 59, 0, 0, time.UTC), *e.End)
					assert.Equal(t, "riga", e.Where)
					return eventID, nil
				})
				cache.EXPECT().Invalidate(gomock.Any(), uid).Return(nil)
			},
		},
		{
			Desc: "missing name",
			Req: service.SpanRequest{
				StartDate: "30-01-2024",
				EndDate:   "02-02-2024",
			},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc: "missing end date",
			Req: service.SpanRequest{
				Name:      "trip",
				StartDate: "30-01-2024",
			},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc: "iso date",
			Req: service.SpanRequest{
				Name:      "trip",
				StartDate: "2024-01-30",
				EndDate:   "02-02-2024",
			},
			Error:        errorvalues.ErrValidation,
			MockPrepFunc: func() {},
		},
		{
			Desc: "end before start",
			Req: service.SpanRequest{
				Name:      "trip",
				StartDate: "02-02-2024",
				StartTime: "12:00",
				EndDate:   "02-02-2024",
				EndTime:   "11:00",
			},
			Error:        errorvalues.ErrEndBeforeStart,
			MockPrepFunc: func() {},
		},
		{
			Desc: "storage error",
			Req: service.SpanRequest{
				Name:      "trip",
				StartDate: "30-01-2024",
				EndDate:   "02-02-2024",
			},
			Error: errors.New("events repository error: db error"),
			MockPrepFunc: func() {
				eventsRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			id, err := serv.CreateEvent(ctx, uid, &tc.Req)
			switch {
			case tc.Error == nil:
				assert.NoError(t, err)
				assert.Equal(t, eventID, id)
			case errors.Is(err, tc.Error):
			default:
				assert.EqualError(t, err, tc.Error.Error())
			}
		})
	}
}

// eventsTxIn makes RunInTx execute the callback against tx.
func eventsTxIn(tx repository.EventsTxI) func(context.Context, func(repository.EventsTxI) error) error {
	return func(_ context.Context, fn func(repository.EventsTxI) error) error {
		return fn(tx)
	}
}

func TestUpdateEvent(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	eventsRepo := repomocks.NewMockEventsRepositoryI(ctrl)
	subsRepo := repomocks.NewMockSubEventsRepositoryI(ctrl)
	tx := repomocks.NewMockEventsTxI(ctrl)
	cache := mocks.NewMockMonthCacheI(ctrl)
	serv := service.NewEventsService(eventsRepo, subsRepo, cache)
	uid := uuid.New()
	event := spanEvent(uid, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC))
	childEnd := time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC)
	child := &entity.SubEvent{
		ID:      uuid.New(),
		EventID: event.ID,
		Span:    entity.Span{Name: "concert", Start: time.Date(2024, 1, 8, 10, 0, 0, 0, time.UTC), End: &childEnd},
	}

	testCases := []struct {
		Desc         string
		Req          service.SpanRequest
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "still covers its subevents",
			Req:  service.SpanRequest{Name: "holidays", StartDate: "01-01-2024", EndDate: "09-01-2024"},
			MockPrepFunc: func() {
				eventsRepo.EXPECT().RunInTx(gomock.Any(), gomock.Any()).DoAndReturn(eventsTxIn(tx))
				tx.EXPECT().GetForUpdate(gomock.Any(), event.ID).Return(event, nil)
				tx.EXPECT().SubEvents(gomock.Any(), event.ID).Return([]*entity.SubEvent{child}, nil)
				tx.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, e *entity.Event) error {
					assert.Equal(t, event.ID, e.ID)
					assert.Equal(t, uid, e.UserID)
					assert.Equal(t, "holidays", e.Name)
					return nil
				})
				cache.EXPECT().Invalidate(gomock.Any(), uid).Return(nil)
			},
		},
		{
			Desc:  "shrinking below a subevent persists nothing",
			Req:   service.SpanRequest{Name: "holidays", StartDate: "01-01-2024", EndDate: "02-01-2024"},
			Error: errorvalues.ErrSubEventOutsideParent,
			MockPrepFunc: func() {
				eventsRepo.EXPECT().RunInTx(gomock.Any(), gomock.Any()).DoAndReturn(eventsTxIn(tx))
				tx.EXPECT().GetForUpdate(gomock.Any(), event.ID).Return(event, nil)
				tx.EXPECT().SubEvents(gomock.Any(), event.ID).Return([]*entity.SubEvent{child}, nil)
			},
		},
		{
			Desc:  "moving past a subevent persists nothing",
			Req:   service.SpanRequest{Name: "holidays", StartDate: "09-01-2024", EndDate: "20-01-2024"},
			Error: errorvalues.ErrSubEventOutsideParent,
			MockPrepFunc: func() {
				eventsRepo.EXPECT().RunInTx(gomock.Any(), gomock.Any()).DoAndReturn(eventsTxIn(tx))
				tx.EXPECT().GetForUpdate(gomock.Any(), event.ID).Return(event, nil)
				tx.EXPECT().SubEvents(gomock.Any(), event.ID).Return([]*entity.SubEvent{child}, nil)
			},
		},
		{
			Desc:  "foreign event",
			Req:   service.SpanRequest{Name: "holidays", StartDate: "01-01-2024", EndDate: "09-01-2024"},
			Error: errorvalues.ErrWrongOwner,
			MockPrepFunc: func() {
				stranger := *event
				stranger.UserID = uuid.New()
				eventsRepo.EXPECT().RunInTx(gomock.Any(), gomock.Any()).DoAndReturn(eventsTxIn(tx))
				tx.EXPECT().GetForUpdate(gomock.Any(), event.ID).Return(&stranger, nil)
			},
		},
		{
			Desc:  "missing event",
			Req:   service.SpanRequest{Name: "holidays", StartDate: "01-01-2024", EndDate: "09-01-2024"},
			Error: errorvalues.ErrEventNotFound,
			MockPrepFunc: func() {
				eventsRepo.EXPECT().RunInTx(gomock.Any(), gomock.Any()).DoAndReturn(eventsTxIn(tx))
				tx.EXPECT().GetForUpdate(gomock.Any(), event.ID).Return(nil, errorvalues.ErrEventNotFound)
			},
		},
		{
			Desc:  "storage error",
			Req:   service.SpanRequest{Name: "holidays", StartDate: "01-01-2024", EndDate: "09-01-2024"},
			Error: errors.New("events repository error: db error"),
			MockPrepFunc: func() {
				eventsRepo.EXPECT().RunInTx(gomock.Any(), gomock.Any()).DoAndReturn(eventsTxIn(tx))
				tx.EXPECT().GetForUpdate(gomock.Any(), event.ID).Return(event, nil)
				tx.EXPECT().SubEvents(gomock.Any(), event.ID).Return(nil, errors.New("db error"))
			},
		},
		{
			Desc:         "invalid span never opens a transaction",
			Req:          service.SpanRequest{Name: "holidays", StartDate: "10-01-2024", EndDate: "01-01-2024"},
			Error:        errorvalues.ErrEndBeforeStart,
			MockPrepFunc: func() {},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := serv.UpdateEvent(ctx, uid, event.ID, &tc.Req)
			switch {
			case tc.Error == nil:
				assert.NoError(t, err)
			case errors.Is(err, tc.Error):
			default:
				assert.EqualError(t, err, tc.Error.Error())
			}
		})
	}
}

func TestDeleteEvent(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	eventsRepo := repomocks.NewMockEventsRepositoryI(ctrl)
	subsRepo := repomocks.NewMockSubEventsRepositoryI(ctrl)
	serv := service.NewEventsService(eventsRepo, subsRepo, nil)
	uid, id := uuid.New(), uuid.New()
	ctx := context.Background()

	t.Run("delete", func(t *testing.T) {
		eventsRepo.EXPECT().Delete(gomock.Any(), id, uid).Return(nil)
		assert.NoError(t, serv.DeleteEvent(ctx, uid, id))
	})
	t.Run("delete not found", func(t *testing.T) {
		eventsRepo.EXPECT().Delete(gomock.Any(), id, uid).Return(errorvalues.ErrEventNotFound)
		assert.ErrorIs(t, serv.DeleteEvent(ctx, uid, id), errorvalues.ErrEventNotFound)
	})
}

func TestCreateSubEvent(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	eventsRepo := repomocks.NewMockEventsRepositoryI(ctrl)
	subsRepo := repomocks.NewMockSubEventsRepositoryI(ctrl)
	tx := repomocks.NewMockEventsTxI(ctrl)
	serv := service.NewEventsService(eventsRepo, subsRepo, nil)
	uid := uuid.New()
	parent := spanEvent(uid, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC))
	subID := uuid.New()

	testCases := []struct {
		Desc         string
		Req          service.SpanRequest
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "inside parent",
			Req:  service.SpanRequest{Name: "lunch", StartDate: "01-05-2024", StartTime: "12:00", EndDate: "01-05-2024", EndTime: "13:00"},
			MockPrepFunc: func() {
				eventsRepo.EXPECT().RunInTx(gomock.Any(), gomock.Any()).DoAndReturn(eventsTxIn(tx))
				tx.EXPECT().GetForUpdate(gomock.Any(), parent.ID).Return(parent, nil)
				tx.EXPECT().CreateSubEvent(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *entity.SubEvent) (uuid.UUID, error) {
					assert.Equal(t, parent.ID, s.EventID)
					return subID, nil
				})
			},
		},
		{
			Desc:  "starts before parent persists nothing",
			Req:   service.SpanRequest{Name: "breakfast", StartDate: "01-05-2024", StartTime: "08:00", EndDate: "01-05-2024", EndTime: "10:00"},
			Error: errorvalues.ErrSubEventOutsideParent,
			MockPrepFunc: func() {
				eventsRepo.EXPECT().RunInTx(gomock.Any(), gomock.Any()).DoAndReturn(eventsTxIn(tx))
				tx.EXPECT().GetForUpdate(gomock.Any(), parent.ID).Return(parent, nil)
			},
		},
		{
			Desc:  "default end time overflows parent",
			Req:   service.SpanRequest{Name: "dinner", StartDate: "01-05-2024", StartTime: "17:00", EndDate: "01-05-2024"},
			Error: errorvalues.ErrSubEventOutsideParent,
			MockPrepFunc: func() {
				eventsRepo.EXPECT().RunInTx(gomock.Any(), gomock.Any()).DoAndReturn(eventsTxIn(tx))
				tx.EXPECT().GetForUpdate(gomock.Any(), parent.ID).Return(parent, nil)
			},
		},
		{
			Desc:  "parent of another user",
			Req:   service.SpanRequest{Name: "lunch", StartDate: "01-05-2024", StartTime: "12:00", EndDate: "01-05-2024", EndTime: "13:00"},
			Error: errorvalues.ErrWrongOwner,
			MockPrepFunc: func() {
				stranger := *parent
				stranger.UserID = uuid.New()
				eventsRepo.EXPECT().RunInTx(gomock.Any(), gomock.Any()).DoAndReturn(eventsTxIn(tx))
				tx.EXPECT().GetForUpdate(gomock.Any(), parent.ID).Return(&stranger, nil)
			},
		},
		{
			Desc:  "missing parent",
			Req:   service.SpanRequest{Name: "lunch", StartDate: "01-05-2024", StartTime: "12:00", EndDate: "01-05-2024", EndTime: "13:00"},
			Error: errorvalues.ErrEventNotFound,
			MockPrepFunc: func() {
				eventsRepo.EXPECT().RunInTx(gomock.Any(), gomock.Any()).DoAndReturn(eventsTxIn(tx))
				tx.EXPECT().GetForUpdate(gomock.Any(), parent.ID).Return(nil, errorvalues.ErrEventNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			id, err := serv.CreateSubEvent(ctx, uid, parent.ID, &tc.Req)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, subID, id)
		})
	}
}

func TestSubEventOwnership(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	eventsRepo := repomocks.NewMockEventsRepositoryI(ctrl)
	subsRepo := repomocks.NewMockSubEventsRepositoryI(ctrl)
	tx := repomocks.NewMockEventsTxI(ctrl)
	serv := service.NewEventsService(eventsRepo, subsRepo, nil)
	uid := uuid.New()
	parent := spanEvent(uid, time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC), time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC))
	subEnd := time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC)
	sub := &entity.SubEvent{
		ID:      uuid.New(),
		EventID: parent.ID,
		Span:    entity.Span{Name: "coffee", Start: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC), End: &subEnd},
	}
	ctx := context.Background()

	t.Run("get own", func(t *testing.T) {
		subsRepo.EXPECT().GetByID(gomock.Any(), sub.ID).Return(sub, nil)
		eventsRepo.EXPECT().GetByID(gomock.Any(), parent.ID).Return(parent, nil)
		res, err := serv.GetSubEvent(ctx, uid, sub.ID)
		assert.NoError(t, err)
		assert.Equal(t, sub, res)
	})
	t.Run("get foreign", func(t *testing.T) {
		subsRepo.EXPECT().GetByID(gomock.Any(), sub.ID).Return(sub, nil)
		eventsRepo.EXPECT().GetByID(gomock.Any(), parent.ID).Return(parent, nil)
		_, err := serv.GetSubEvent(ctx, uuid.New(), sub.ID)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("get missing", func(t *testing.T) {
		subsRepo.EXPECT().GetByID(gomock.Any(), sub.ID).Return(nil, errorvalues.ErrSubEventNotFound)
		_, err := serv.GetSubEvent(ctx, uid, sub.ID)
		assert.ErrorIs(t, err, errorvalues.ErrSubEventNotFound)
	})
	t.Run("update keeps containment", func(t *testing.T) {
		subsRepo.EXPECT().GetByID(gomock.Any(), sub.ID).Return(sub, nil)
		eventsRepo.EXPECT().GetByID(gomock.Any(), parent.ID).Return(parent, nil)
		eventsRepo.EXPECT().RunInTx(gomock.Any(), gomock.Any()).DoAndReturn(eventsTxIn(tx))
		tx.EXPECT().GetForUpdate(gomock.Any(), parent.ID).Return(parent, nil)
		err := serv.UpdateSubEvent(ctx, uid, sub.ID, &service.SpanRequest{
			Name: "coffee", StartDate: "01-05-2024", StartTime: "17:00", EndDate: "02-05-2024", EndTime: "01:00",
		})
		assert.ErrorIs(t, err, errorvalues.ErrSubEventOutsideParent)
	})
	t.Run("update checks the locked parent", func(t *testing.T) {
		// parent shrank between the ownership read and the lock
		shrunk := *parent
		shrunkEnd := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		shrunk.End = &shrunkEnd
		subsRepo.EXPECT().GetByID(gomock.Any(), sub.ID).Return(sub, nil)
		eventsRepo.EXPECT().GetByID(gomock.Any(), parent.ID).Return(parent, nil)
		eventsRepo.EXPECT().RunInTx(gomock.Any(), gomock.Any()).DoAndReturn(eventsTxIn(tx))
		tx.EXPECT().GetForUpdate(gomock.Any(), parent.ID).Return(&shrunk, nil)
		err := serv.UpdateSubEvent(ctx, uid, sub.ID, &service.SpanRequest{
			Name: "tea", StartDate: "01-05-2024", StartTime: "15:00", EndDate: "01-05-2024", EndTime: "16:00",
		})
		assert.ErrorIs(t, err, errorvalues.ErrSubEventOutsideParent)
	})
	t.Run("update after parent vanished", func(t *testing.T) {
		subsRepo.EXPECT().GetByID(gomock.Any(), sub.ID).Return(sub, nil)
		eventsRepo.EXPECT().GetByID(gomock.Any(), parent.ID).Return(parent, nil)
		eventsRepo.EXPECT().RunInTx(gomock.Any(), gomock.Any()).DoAndReturn(eventsTxIn(tx))
		tx.EXPECT().GetForUpdate(gomock.Any(), parent.ID).Return(nil, errorvalues.ErrEventNotFound)
		err := serv.UpdateSubEvent(ctx, uid, sub.ID, &service.SpanRequest{
			Name: "tea", StartDate: "01-05-2024", StartTime: "15:00", EndDate: "01-05-2024", EndTime: "16:00",
		})
		assert.ErrorIs(t, err, errorvalues.ErrSubEventNotFound)
	})
	t.Run("update", func(t *testing.T) {
		subsRepo.EXPECT().GetByID(gomock.Any(), sub.ID).Return(sub, nil)
		eventsRepo.EXPECT().GetByID(gomock.Any(), parent.ID).Return(parent, nil)
		eventsRepo.EXPECT().RunInTx(gomock.Any(), gomock.Any()).DoAndReturn(eventsTxIn(tx))
		tx.EXPECT().GetForUpdate(gomock.Any(), parent.ID).Return(parent, nil)
		tx.EXPECT().UpdateSubEvent(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s *entity.SubEvent) error {
			assert.Equal(t, sub.ID, s.ID)
			assert.Equal(t, parent.ID, s.EventID)
			assert.Equal(t, "tea", s.Name)
			return nil
		})
		err := serv.UpdateSubEvent(ctx, uid, sub.ID, &service.SpanRequest{
			Name: "tea", StartDate: "01-05-2024", StartTime: "15:00", EndDate: "01-05-2024", EndTime: "16:00",
		})
		assert.NoError(t, err)
	})
	t.Run("delete", func(t *testing.T) {
		subsRepo.EXPECT().GetByID(gomock.Any(), sub.ID).Return(sub, nil)
		eventsRepo.EXPECT().GetByID(gomock.Any(), parent.ID).Return(parent, nil)
		subsRepo.EXPECT().Delete(gomock.Any(), sub.ID).Return(nil)
		assert.NoError(t, serv.DeleteSubEvent(ctx, uid, sub.ID))
	})
	t.Run("delete after parent vanished", func(t *testing.T) {
		subsRepo.EXPECT().GetByID(gomock.Any(), sub.ID).Return(sub, nil)
		eventsRepo.EXPECT().GetByID(gomock.Any(), parent.ID).Return(nil, errorvalues.ErrEventNotFound)
		assert.ErrorIs(t, serv.DeleteSubEvent(ctx, uid, sub.ID), errorvalues.ErrSubEventNotFound)
	})
}

func TestGetDayEvents(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	eventsRepo := repomocks.NewMockEventsRepositoryI(ctrl)
	subsRepo := repomocks.NewMockSubEventsRepositoryI(ctrl)
	serv := service.NewEventsService(eventsRepo, subsRepo, nil)
	uid := uuid.New()
	dayStart := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)
	ctx := context.Background()

	t.Run("subevents attached to their parents", func(t *testing.T) {
		trip := spanEvent(uid, time.Date(2024, 1, 30, 10, 0, 0, 0, time.UTC), time.Date(2024, 2, 2, 12, 0, 0, 0, time.UTC))
		call := spanEvent(uid, time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC), time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC))
		museumEnd := time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)
		museum := &entity.SubEvent{
			ID:      uuid.New(),
			EventID: trip.ID,
			Span:    entity.Span{Name: "museum", Start: time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC), End: &museumEnd},
		}
		eventsRepo.EXPECT().GetOverlapping(gomock.Any(), uid, dayStart, dayEnd).Return([]*entity.Event{trip, call}, nil)
		subsRepo.EXPECT().GetOverlapping(gomock.Any(), []uuid.UUID{trip.ID, call.ID}, dayStart, dayEnd).Return([]*entity.SubEvent{museum}, nil)
		events, err := serv.GetDayEvents(ctx, uid, 2024, 1, 31)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, []*entity.SubEvent{museum}, events[0].SubEvents)
		assert.NotNil(t, events[1].SubEvents)
		assert.Empty(t, events[1].SubEvents)
	})
	t.Run("empty day skips subevents query", func(t *testing.T) {
		eventsRepo.EXPECT().GetOverlapping(gomock.Any(), uid, dayStart, dayEnd).Return([]*entity.Event{}, nil)
		events, err := serv.GetDayEvents(ctx, uid, 2024, 1, 31)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
	t.Run("invalid day", func(t *testing.T) {
		_, err := serv.GetDayEvents(ctx, uid, 2024, 2, 30)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)
	})
}

func TestGetMonthEvents(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	eventsRepo := repomocks.NewMockEventsRepositoryI(ctrl)
	subsRepo := repomocks.NewMockSubEventsRepositoryI(ctrl)
	serv := service.NewEventsService(eventsRepo, subsRepo, nil)
	uid := uuid.New()
	ctx := context.Background()

	t.Run("december window ends in january", func(t *testing.T) {
		eventsRepo.EXPECT().GetOverlapping(gomock.Any(), uid,
			time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).Return([]*entity.Event{}, nil)
		events, err := serv.GetMonthEvents(ctx, uid, 2024, 12)
		assert.NoError(t, err)
		assert.Empty(t, events)
	})
	t.Run("invalid month", func(t *testing.T) {
		_, err := serv.GetMonthEvents(ctx, uid, 2024, 20)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidMonth)
	})
}
