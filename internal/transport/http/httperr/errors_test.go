package httperr

// Тесты маппинга ошибок сервисного слоя в HTTP (errors.go).

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/medforum/threads-service/internal/service"
)

func TestToHTTP_Mapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid_argument", service.ErrInvalidArgument, http.StatusBadRequest, "invalid_argument"},
		{"invalid_cursor", service.ErrInvalidCursor, http.StatusBadRequest, "invalid_argument"},
		{"unauthenticated", ErrUnauthenticated, http.StatusUnauthorized, "unauthenticated"},
		{"forbidden", service.ErrForbidden, http.StatusForbidden, "forbidden"},
		{"not_found", service.ErrNotFound, http.StatusNotFound, "not_found"},
		{"conflict", service.ErrConflict, http.StatusConflict, "conflict"},
		{"data_integrity", service.ErrDataIntegrity, http.StatusInternalServerError, "data_integrity"},
		{"canceled", context.Canceled, StatusClientClosedRequest, "canceled"},
		{"deadline", context.DeadlineExceeded, http.StatusGatewayTimeout, "deadline_exceeded"},
		{"internal", service.ErrInternal, http.StatusInternalServerError, "internal"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal"},
		{"nil", nil, http.StatusInternalServerError, "internal"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			status, resp := ToHTTP(tc.err)
			require.Equal(t, tc.status, status)
			require.Equal(t, tc.code, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

// Обёрнутые ошибки сервисного слоя распознаются через errors.Is.
func TestToHTTP_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("service/votes/CastVote: %w", service.ErrForbidden)
	status, resp := ToHTTP(err)
	require.Equal(t, http.StatusForbidden, status)
	require.Equal(t, "forbidden", resp.Error.Code)
}

func TestWriteError_JSONAndRequestID(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/v1/posts/x", nil)
	r.Header.Set("X-Request-Id", "req-42")
	w := httptest.NewRecorder()

	WriteError(w, r, service.ErrNotFound)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.Contains(t, w.Body.String(), `"code":"not_found"`)
	require.Contains(t, w.Body.String(), `"request_id":"req-42"`)
}
