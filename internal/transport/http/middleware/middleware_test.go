package middleware

// Тесты HTTP-мидлваров.
//
//  Проверяем:
//  - Chain применяет обёртки в порядке перечисления;
//  - RequestID генерирует id и уважает входящий;
//  - Recover гасит панику в 500 с JSON-телом;
//  - Timeout навешивает deadline и уважает уже существующий;
//  - AuthUser кладёт валидный X-User-Id в контекст, игнорирует мусор.

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestChain_Order(t *testing.T) {
	t.Parallel()

	var trace []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				trace = append(trace, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		trace = append(trace, "handler")
	}), mw("outer"), mw("inner"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, []string{"outer", "inner", "handler"}, trace)
}

func TestRequestID_Generates(t *testing.T) {
	t.Parallel()

	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NotEmpty(t, r.Header.Get("X-Request-Id"))
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Len(t, w.Header().Get("X-Request-Id"), 32)
}

func TestRequestID_RespectsIncoming(t *testing.T) {
	t.Parallel()

	h := RequestID()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Request-Id", "incoming-id")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	require.Equal(t, "incoming-id", w.Header().Get("X-Request-Id"))
}

func TestRecover_PanicTo500(t *testing.T) {
	t.Parallel()

	h := Recover()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), `"code":"internal"`)
	// Детали паники не утекли.
	require.NotContains(t, w.Body.String(), "boom")
}

func TestTimeout_SetsDeadline(t *testing.T) {
	t.Parallel()

	h := Timeout(time.Second)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, ok := r.Context().Deadline()
		require.True(t, ok)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestTimeout_ZeroIsNoop(t *testing.T) {
	t.Parallel()

	h := Timeout(0)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, ok := r.Context().Deadline()
		require.False(t, ok)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestAuthUser_ValidHeader(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	h := AuthUser()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got, ok := UserFrom(r.Context())
		require.True(t, ok)
		require.Equal(t, userID, got)
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-User-Id", userID.String())
	h.ServeHTTP(httptest.NewRecorder(), r)
}

func TestAuthUser_GarbageIsAnonymous(t *testing.T) {
	t.Parallel()

	h := AuthUser()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, ok := UserFrom(r.Context())
		require.False(t, ok)
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-User-Id", "not-a-uuid")
	h.ServeHTTP(httptest.NewRecorder(), r)
}

func TestAuthUser_MissingHeaderIsAnonymous(t *testing.T) {
	t.Parallel()

	h := AuthUser()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		_, ok := UserFrom(r.Context())
		require.False(t, ok)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}
