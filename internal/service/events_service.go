package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/moodcalendar/internal/error_values"
	"github.com/limbo/moodcalendar/internal/repository"
	"github.com/limbo/moodcalendar/pkg/calendar"
	"github.com/limbo/moodcalendar/pkg/entity"
)

type EventsService struct {
	events repository.EventsRepositoryI
	subs   repository.SubEventsRepositoryI
	cache  MonthCacheI
}

func NewEventsService(eventsRepo repository.EventsRepositoryI, subEventsRepo repository.SubEventsRepositoryI, cache MonthCacheI) *EventsService {
	if eventsRepo == nil {
		log.Fatal("provided nil eventsRepo")
	}
	if subEventsRepo == nil {
		log.Fatal("provided nil subEventsRepo")
	}
	if cache == nil {
		cache = noopCache{}
	}
	InitValidator()
	return &EventsService{
		events: eventsRepo,
		subs:   subEventsRepo,
		cache:  cache,
	}
}

func (es *EventsService) CreateEvent(ctx context.Context, uid uuid.UUID, req *SpanRequest) (uuid.UUID, error) {
	span, err := req.toSpan()
	if err != nil {
		return uuid.Nil, err
	}
	id, err := es.events.Create(ctx, &entity.Event{
		UserID: uid,
		Span:   span,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return uuid.Nil, err
		}
		return uuid.Nil, errors.New("events repository error: " + err.Error())
	}
	invalidateMonths(ctx, es.cache, uid)
	return id, nil
}

// ownedEvent fetches the event and checks it belongs to uid.
func (es *EventsService) ownedEvent(ctx context.Context, uid, id uuid.UUID) (*entity.Event, error) {
	event, err := es.events.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEventNotFound) {
			return nil, err
		}
		return nil, errors.New("events repository error: " + err.Error())
	}
	if event.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return event, nil
}

// lockOwnedEvent locks the event inside tx and checks it belongs to uid.
func lockOwnedEvent(ctx context.Context, tx repository.EventsTxI, uid, id uuid.UUID) (*entity.Event, error) {
	event, err := tx.GetForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.UserID != uid {
		return nil, errorvalues.ErrWrongOwner
	}
	return event, nil
}

// eventsTxError passes domain errors through and wraps storage ones.
func eventsTxError(err error) error {
	switch {
	case errors.Is(err, errorvalues.ErrEventNotFound),
		errors.Is(err, errorvalues.ErrSubEventNotFound),
		errors.Is(err, errorvalues.ErrWrongOwner),
		errors.Is(err, errorvalues.ErrSubEventOutsideParent):
		return err
	}
	return errors.New("events repository error: " + err.Error())
}

// UpdateEvent fails with ErrSubEventOutsideParent when the new span drops any existing subevent.
func (es *EventsService) UpdateEvent(ctx context.Context, uid, id uuid.UUID, req *SpanRequest) error {
	span, err := req.toSpan()
	if err != nil {
		return err
	}
	err = es.events.RunInTx(ctx, func(tx repository.EventsTxI) error {
		if _, err := lockOwnedEvent(ctx, tx, uid, id); err != nil {
			return err
		}
		children, err := tx.SubEvents(ctx, id)
		if err != nil {
			return err
		}
		for _, child := range children {
			if !span.Contains(child.Span) {
				return errorvalues.ErrSubEventOutsideParent
			}
		}
		return tx.Update(ctx, &entity.Event{
			ID:     id,
			UserID: uid,
			Span:   span,
		})
	})
	if err != nil {
		return eventsTxError(err)
	}
	invalidateMonths(ctx, es.cache, uid)
	return nil
}

func (es *EventsService) DeleteEvent(ctx context.Context, uid, id uuid.UUID) error {
	err := es.events.Delete(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEventNotFound) {
			return err
		}
		return errors.New("events repository error: " + err.Error())
	}
	invalidateMonths(ctx, es.cache, uid)
	return nil
}

func (es *EventsService) GetDayEvents(ctx context.Context, uid uuid.UUID, year, month, day int) ([]*entity.Event, error) {
	date, err := calendar.Date(year, month, day)
	if err != nil {
		return nil, err
	}
	from, to := calendar.DayBounds(date)
	events, err := es.events.GetOverlapping(ctx, uid, from, to)
	if err != nil {
		return nil, errors.New("events repository error: " + err.Error())
	}
	ids := make([]uuid.UUID, 0, len(events))
	byID := make(map[uuid.UUID]*entity.Event, len(events))
	for _, e := range events {
		e.SubEvents = make([]*entity.SubEvent, 0)
		ids = append(ids, e.ID)
		byID[e.ID] = e
	}
	if len(ids) == 0 {
		return events, nil
	}
	// subevents are filtered by the day, not by their parent's span
	subs, err := es.subs.GetOverlapping(ctx, ids, from, to)
	if err != nil {
		return nil, errors.New("subevents repository error: " + err.Error())
	}
	for _, s := range subs {
		if parent, ok := byID[s.EventID]; ok {
			parent.SubEvents = append(parent.SubEvents, s)
		}
	}
	return events, nil
}

func (es *EventsService) GetMonthEvents(ctx context.Context, uid uuid.UUID, year, month int) ([]*entity.Event, error) {
	if !calendar.ValidMonth(month) {
		return nil, errorvalues.ErrInvalidMonth
	}
	from, to := calendar.MonthBounds(calendar.Normalize(year, month))
	events, err := es.events.GetOverlapping(ctx, uid, from, to)
	if err != nil {
		return nil, errors.New("events repository error: " + err.Error())
	}
	return events, nil
}

func (es *EventsService) CreateSubEvent(ctx context.Context, uid, eventID uuid.UUID, req *SpanRequest) (uuid.UUID, error) {
	span, err := req.toSpan()
	if err != nil {
		return uuid.Nil, err
	}
	var id uuid.UUID
	err = es.events.RunInTx(ctx, func(tx repository.EventsTxI) error {
		parent, err := lockOwnedEvent(ctx, tx, uid, eventID)
		if err != nil {
			return err
		}
		if !parent.Contains(span) {
			return errorvalues.ErrSubEventOutsideParent
		}
		id, err = tx.CreateSubEvent(ctx, &entity.SubEvent{
			EventID: parent.ID,
			Span:    span,
		})
		return err
	})
	if err != nil {
		return uuid.Nil, eventsTxError(err)
	}
	invalidateMonths(ctx, es.cache, uid)
	return id, nil
}

// ownedSubEvent fetches the subevent and checks its parent belongs to uid.
func (es *EventsService) ownedSubEvent(ctx context.Context, uid, id uuid.UUID) (*entity.SubEvent, error) {
	sub, err := es.subs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrSubEventNotFound) {
			return nil, err
		}
		return nil, errors.New("subevents repository error: " + err.Error())
	}
	if _, err = es.ownedEvent(ctx, uid, sub.EventID); err != nil {
		if errors.Is(err, errorvalues.ErrEventNotFound) {
			return nil, errorvalues.ErrSubEventNotFound
		}
		return nil, err
	}
	return sub, nil
}

func (es *EventsService) GetSubEvent(ctx context.Context, uid, id uuid.UUID) (*entity.SubEvent, error) {
	return es.ownedSubEvent(ctx, uid, id)
}

func (es *EventsService) UpdateSubEvent(ctx context.Context, uid, id uuid.UUID, req *SpanRequest) error {
	span, err := req.toSpan()
	if err != nil {
		return err
	}
	sub, err := es.ownedSubEvent(ctx, uid, id)
	if err != nil {
		return err
	}
	err = es.events.RunInTx(ctx, func(tx repository.EventsTxI) error {
		parent, err := lockOwnedEvent(ctx, tx, uid, sub.EventID)
		if err != nil {
			if errors.Is(err, errorvalues.ErrEventNotFound) {
				return errorvalues.ErrSubEventNotFound
			}
			return err
		}
		if !parent.Contains(span) {
			return errorvalues.ErrSubEventOutsideParent
		}
		sub.Span = span
		return tx.UpdateSubEvent(ctx, sub)
	})
	if err != nil {
		return eventsTxError(err)
	}
	invalidateMonths(ctx, es.cache, uid)
	return nil
}

func (es *EventsService) DeleteSubEvent(ctx context.Context, uid, id uuid.UUID) error {
	sub, err := es.ownedSubEvent(ctx, uid, id)
	if err != nil {
		return err
	}
	if err = es.subs.Delete(ctx, sub.ID); err != nil {
		if errors.Is(err, errorvalues.ErrSubEventNotFound) {
			return err
		}
		return errors.New("subevents repository error: " + err.Error())
	}
	invalidateMonths(ctx, es.cache, uid)
	return nil
}
