package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/limbo/moodcalendar/pkg/calendar"
	"github.com/limbo/moodcalendar/pkg/entity"
	"github.com/limbo/moodcalendar/pkg/httputil"
)

type MonthResponse struct {
	CalendarData   entity.CalendarGrid `json:"calendar_data"`
	MonthLabel     string              `json:"month_label"`
	MoodColors     map[int]string      `json:"mood_colors"`
	DaysWithEvents []int               `json:"days_with_events"`
	DaysWithMarker []int               `json:"days_with_marker"`
}

type YearMonth struct {
	Month          int                 `json:"month"`
	CalendarData   entity.CalendarGrid `json:"calendar_data"`
	MoodColors     map[int]string      `json:"mood_colors"`
	DaysWithEvents []int               `json:"days_with_events"`
	DaysWithMarker []int               `json:"days_with_marker"`
}

type YearResponse struct {
	Status string      `json:"status"`
	Year   int         `json:"year"`
	Months []YearMonth `json:"months"`
}

func queryInt(r *http.Request, key string) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, errors.New("missing " + key)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New("invalid " + key)
	}
	return v, nil
}

func (s *Server) GetMonth(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	year, err := queryInt(r, "year")
	if err != nil {
		logger.Error("get month error: " + err.Error())
		httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	month, err := queryInt(r, "month")
	if err != nil {
		logger.Error("get month error: " + err.Error())
		httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	data, err := s.calendarService.GetMonthData(ctx, year, month, optionalUID(r))
	if err != nil {
		writeServiceError(w, logger, "getting month", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, MonthResponse{
		CalendarData:   data.Grid,
		MonthLabel:     calendar.MonthLabel(data.Year, data.Month),
		MoodColors:     data.MoodColors,
		DaysWithEvents: data.DaysWithEvents,
		DaysWithMarker: data.DaysWithMarker,
	})
	logger.Info("month provided")
}

func (s *Server) GetYear(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	year, err := queryInt(r, "year")
	if err != nil {
		logger.Error("get year error: " + err.Error())
		httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*30)
	defer cancel()
	months, err := s.calendarService.GetYearData(ctx, year, optionalUID(r))
	if err != nil {
		writeServiceError(w, logger, "getting year", err)
		return
	}
	resp := YearResponse{
		Status: httputil.StatusSuccess,
		Year:   year,
		Months: make([]YearMonth, 0, len(months)),
	}
	for _, m := range months {
		resp.Months = append(resp.Months, YearMonth{
			Month:          m.Month,
			CalendarData:   m.Grid,
			MoodColors:     m.MoodColors,
			DaysWithEvents: m.DaysWithEvents,
			DaysWithMarker: m.DaysWithMarker,
		})
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
	logger.Info("year provided")
}
