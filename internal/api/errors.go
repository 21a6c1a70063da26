package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/moodcalendar/internal/error_values"
	"github.com/limbo/moodcalendar/pkg/httputil"
)

// writeServiceError maps service errors to statuses. op names the failed
// operation in logs and in the 500 message.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation):
		logger.Error(op+" error: invalid input", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, errorvalues.ErrEventNotFound),
		errors.Is(err, errorvalues.ErrSubEventNotFound),
		errors.Is(err, errorvalues.ErrUserNotFound):
		logger.Error(op+" error: not found", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, errorvalues.ErrWrongOwner):
		// Foreign resources look missing
		logger.Error(op + " error: resource has different owner")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "resource not found", nil)
	case errors.Is(err, errorvalues.ErrUserExists),
		errors.Is(err, errorvalues.ErrDailyLogExists):
		logger.Error(op+" error: conflict", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, errorvalues.ErrWrongCredentials):
		logger.Error(op + " error: wrong credentials")
		httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while "+op, err)
	}
}

func writeBadBody(w http.ResponseWriter, logger *slog.Logger, op string) {
	logger.Error(op + " error: invalid body")
	httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
}
