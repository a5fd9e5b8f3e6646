package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pribylovaa/foundation-portal/internal/service"
	"github.com/pribylovaa/foundation-portal/internal/slider"
	"github.com/pribylovaa/foundation-portal/internal/storage"
	"github.com/stretchr/testify/require"
)

func TestToHTTP_BaseMapping(t *testing.T) {
	wrap := func(err error) error { return fmt.Errorf("op: %w", err) }

	tcs := []struct {
		name       string
		in         error
		wantStatus int
		wantCode   string
	}{
		{"unavailable", wrap(service.ErrUnavailable), http.StatusServiceUnavailable, "unavailable"},
		{"credentials", wrap(service.ErrInvalidCredentials), http.StatusUnauthorized, "unauthenticated"},
		{"revoked", wrap(service.ErrTokenRevoked), http.StatusUnauthorized, "unauthenticated"},
		{"email_taken", wrap(service.ErrEmailTaken), http.StatusConflict, "already_exists"},
		{"weak_password", wrap(service.ErrWeakPassword), http.StatusBadRequest, "invalid_argument"},
		{"storage_invalid", wrap(storage.ErrInvalidArgument), http.StatusBadRequest, "invalid_argument"},
		{"slide_range", wrap(slider.ErrOutOfRange), http.StatusBadRequest, "invalid_argument"},
		{"not_found", wrap(storage.ErrNotFound), http.StatusNotFound, "not_found"},
		{"route_not_found", ErrNotFound, http.StatusNotFound, "not_found"},
		{"canceled", wrap(context.Canceled), StatusClientClosedRequest, "canceled"},
		{"deadline", wrap(context.DeadlineExceeded), http.StatusGatewayTimeout, "deadline_exceeded"},
		{"internal", stderrors.New("boom"), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			gotStatus, resp := ToHTTP(tc.in)
			require.Equal(t, tc.wantStatus, gotStatus)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

// Таймаут внутри недоступного источника — 504, а не 503.
func TestToHTTP_DeadlineBeatsUnavailable(t *testing.T) {
	err := fmt.Errorf("op: %w: %w", service.ErrUnavailable, context.DeadlineExceeded)
	status, _ := ToHTTP(err)
	require.Equal(t, http.StatusGatewayTimeout, status)
}

func TestToHTTP_NilError_Returns500Internal(t *testing.T) {
	gotStatus, resp := ToHTTP(nil)
	require.Equal(t, http.StatusInternalServerError, gotStatus)
	require.Equal(t, "internal", resp.Error.Code)
	require.Equal(t, "internal error", resp.Error.Message)
}

func TestWriteError_SetsJSONAndRequestID(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	req.Header.Set("X-Request-Id", "rid-1")

	WriteError(rec, req, service.ErrUnavailable)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "unavailable", body.Error.Code)
	require.Equal(t, "rid-1", body.Error.RequestID)
}
