package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/moodcalendar/internal/service"
	"github.com/limbo/moodcalendar/pkg/calendar"
	"github.com/limbo/moodcalendar/pkg/entity"
	"github.com/limbo/moodcalendar/pkg/httputil"
)

// EventRequest is the body of event and subevent create/update calls.
type EventRequest struct {
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	StartTime string `json:"start_time,omitempty"`
	EndDate   string `json:"end_date"`
	EndTime   string `json:"end_time,omitempty"`
	Notes     string `json:"notes,omitempty"`
	WithWho   string `json:"with_who,omitempty"`
	Where     string `json:"where,omitempty"`
}

func (req *EventRequest) toService() *service.SpanRequest {
	return &service.SpanRequest{
		Name:      req.Name,
		StartDate: req.StartDate,
		StartTime: req.StartTime,
		EndDate:   req.EndDate,
		EndTime:   req.EndTime,
		Notes:     req.Notes,
		WithWho:   req.WithWho,
		Where:     req.Where,
	}
}

type SpanDTO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	StartTime string  `json:"start_time"`
	EndTime   *string `json:"end_time"`
	Notes     string  `json:"notes"`
	WithWho   string  `json:"with_who"`
	Where     string  `json:"where"`
}

type SubEventDTO struct {
	SpanDTO
	EventID string `json:"event_id"`
}

type EventDTO struct {
	SpanDTO
	CreatedAt    string `json:"created_at"`
	LastModified string `json:"last_modified"`
}

type DayEventDTO struct {
	EventDTO
	SubEvents []SubEventDTO `json:"subevents"`
}

func toSpanDTO(id uuid.UUID, span entity.Span) SpanDTO {
	dto := SpanDTO{
		ID:        id.String(),
		Name:      span.Name,
		StartTime: calendar.FormatTimestamp(span.Start),
		Notes:     span.Notes,
		WithWho:   span.WithWho,
		Where:     span.Where,
	}
	if span.End != nil {
		end := calendar.FormatTimestamp(*span.End)
		dto.EndTime = &end
	}
	return dto
}

func toEventDTO(e *entity.Event) EventDTO {
	return EventDTO{
		SpanDTO:      toSpanDTO(e.ID, e.Span),
		CreatedAt:    calendar.FormatTimestamp(e.CreatedAt),
		LastModified: calendar.FormatTimestamp(e.LastModified),
	}
}

func toSubEventDTO(s *entity.SubEvent) SubEventDTO {
	return SubEventDTO{
		SpanDTO: toSpanDTO(s.ID, s.Span),
		EventID: s.EventID.String(),
	}
}

func pathID(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error(op + " error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid id in path value", nil)
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) GetDayEvents(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r)
	if !ok {
		return
	}
	var date [3]int
	for i, key := range []string{"year", "month", "day"} {
		v, err := queryInt(r, key)
		if err != nil {
			logger.Error("get day events error: " + err.Error())
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
			return
		}
		date[i] = v
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	events, err := s.eventsService.GetDayEvents(ctx, uid, date[0], date[1], date[2])
	if err != nil {
		writeServiceError(w, logger, "getting day events", err)
		return
	}
	resp := make([]DayEventDTO, 0, len(events))
	for _, e := range events {
		dto := DayEventDTO{
			EventDTO:  toEventDTO(e),
			SubEvents: make([]SubEventDTO, 0, len(e.SubEvents)),
		}
		for _, sub := range e.SubEvents {
			dto.SubEvents = append(dto.SubEvents, toSubEventDTO(sub))
		}
		resp = append(resp, dto)
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"status": httputil.StatusSuccess,
		"events": resp,
	})
	logger.Info("day events provided", slog.Int("count", len(resp)))
}

func (s *Server) GetMonthEvents(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r)
	if !ok {
		return
	}
	year, err := queryInt(r, "year")
	if err != nil {
		logger.Error("get month events error: " + err.Error())
		httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	month, err := queryInt(r, "month")
	if err != nil {
		logger.Error("get month events error: " + err.Error())
		httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	events, err := s.eventsService.GetMonthEvents(ctx, uid, year, month)
	if err != nil {
		writeServiceError(w, logger, "getting month events", err)
		return
	}
	resp := make([]EventDTO, 0, len(events))
	for _, e := range events {
		resp = append(resp, toEventDTO(e))
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"status": httputil.StatusSuccess,
		"events": resp,
	})
	logger.Info("month events provided", slog.Int("count", len(resp)))
}

func (s *Server) CreateEvent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r)
	if !ok {
		return
	}
	var req EventRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		writeBadBody(w, logger, "creating event")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	id, err := s.eventsService.CreateEvent(ctx, uid, req.toService())
	if err != nil {
		writeServiceError(w, logger, "creating event", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"status":  httputil.StatusSuccess,
		"message": "Event created successfully",
		"id":      id.String(),
	})
	logger.Info("event created", slog.String("event_id", id.String()))
}

func (s *Server) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "updating event")
	if !ok {
		return
	}
	var req EventRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		writeBadBody(w, logger, "updating event")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err := s.eventsService.UpdateEvent(ctx, uid, id, req.toService()); err != nil {
		writeServiceError(w, logger, "updating event", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"status":  httputil.StatusSuccess,
		"message": "Event updated",
	})
	logger.Info("event updated", slog.String("event_id", id.String()))
}

func (s *Server) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "deleting event")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err := s.eventsService.DeleteEvent(ctx, uid, id); err != nil {
		writeServiceError(w, logger, "deleting event", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"status":  httputil.StatusSuccess,
		"message": "Event deleted",
	})
	logger.Info("event deleted", slog.String("event_id", id.String()))
}

func (s *Server) CreateSubEvent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r)
	if !ok {
		return
	}
	eventID, ok := pathID(w, r, logger, "creating subevent")
	if !ok {
		return
	}
	var req EventRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		writeBadBody(w, logger, "creating subevent")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	id, err := s.eventsService.CreateSubEvent(ctx, uid, eventID, req.toService())
	if err != nil {
		writeServiceError(w, logger, "creating subevent", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"status":  httputil.StatusSuccess,
		"message": "Subevent created successfully",
		"id":      id.String(),
	})
	logger.Info("subevent created", slog.String("subevent_id", id.String()))
}

func (s *Server) GetSubEvent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "getting subevent")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	sub, err := s.eventsService.GetSubEvent(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "getting subevent", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"status":   httputil.StatusSuccess,
		"subevent": toSubEventDTO(sub),
	})
	logger.Info("subevent provided")
}

func (s *Server) UpdateSubEvent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "updating subevent")
	if !ok {
		return
	}
	var req EventRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		writeBadBody(w, logger, "updating subevent")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err := s.eventsService.UpdateSubEvent(ctx, uid, id, req.toService()); err != nil {
		writeServiceError(w, logger, "updating subevent", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"status":  httputil.StatusSuccess,
		"message": "Subevent updated",
	})
	logger.Info("subevent updated", slog.String("subevent_id", id.String()))
}

func (s *Server) DeleteSubEvent(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, logger, "deleting subevent")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err := s.eventsService.DeleteSubEvent(ctx, uid, id); err != nil {
		writeServiceError(w, logger, "deleting subevent", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"status":  httputil.StatusSuccess,
		"message": "Subevent deleted",
	})
	logger.Info("subevent deleted", slog.String("subevent_id", id.String()))
}
