package httputil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/limbo/moodcalendar/pkg/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteErrorResponse(rr, http.StatusNotFound, "event not found", errors.New("no rows"))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var resp httputil.ErrorResponse
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, httputil.ErrorResponse{
		Status:  "error",
		Code:    http.StatusNotFound,
		Message: "event not found",
		Details: "no rows",
	}, resp)
}

func TestWriteJSONResponse(t *testing.T) {
	t.Run("body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		httputil.WriteJSONResponse(rr, http.StatusCreated, map[string]any{"status": "success"})
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.JSONEq(t, `{"status":"success"}`, rr.Body.String())
	})
	t.Run("no body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		httputil.WriteJSONResponse(rr, http.StatusNoContent, nil)
		assert.Equal(t, http.StatusNoContent, rr.Code)
		assert.Empty(t, rr.Body.String())
	})
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Year int `json:"year"`
	}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"year":2024}`))
	require.NoError(t, httputil.DecodeJSON(r, &v))
	assert.Equal(t, 2024, v.Year)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`corrupted`))
	assert.Error(t, httputil.DecodeJSON(r, &v))
}
