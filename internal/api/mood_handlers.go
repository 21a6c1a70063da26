package api

import (
	"context"
	"net/http"
	"time"

	"github.com/limbo/moodcalendar/pkg/httputil"
)

type DayRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// UpdateMoodRequest with null color clears the mood of the day.
type UpdateMoodRequest struct {
	DayRequest
	Color *string `json:"color"`
}

func (s *Server) UpdateMood(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r)
	if !ok {
		return
	}
	var req UpdateMoodRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		writeBadBody(w, logger, "updating mood")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	err := s.logsService.SetMood(ctx, uid, req.Year, req.Month, req.Day, req.Color)
	if err != nil {
		writeServiceError(w, logger, "updating mood", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": httputil.StatusSuccess})
	logger.Info("mood updated")
}

func (s *Server) ToggleMarker(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := requireUID(w, r)
	if !ok {
		return
	}
	var req DayRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		writeBadBody(w, logger, "toggling marker")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	state, err := s.logsService.ToggleMarker(ctx, uid, req.Year, req.Month, req.Day)
	if err != nil {
		writeServiceError(w, logger, "toggling marker", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"status":     httputil.StatusSuccess,
		"has_marker": state,
	})
	logger.Info("marker toggled")
}
