package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// Аутентификация — внешний коллаборатор: платформенный gateway проверяет
// токен и прокидывает идентификатор пользователя заголовком X-User-Id.
// Здесь он только вынимается в контекст; отсутствие заголовка — анонимный
// запрос (обязательность решают хендлеры).

type ctxKeyUserID struct{}

// AuthUser кладёт аутентифицированного пользователя (X-User-Id) в контекст.
// Невалидный UUID игнорируется — запрос продолжается как анонимный.
func AuthUser() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if raw := r.Header.Get("X-User-Id"); raw != "" {
				if id, err := uuid.Parse(raw); err == nil && id != uuid.Nil {
					ctx := context.WithValue(r.Context(), ctxKeyUserID{}, id)
					r = r.WithContext(ctx)
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// UserFrom возвращает пользователя из контекста (uuid.Nil, false — аноним).
func UserFrom(ctx context.Context) (uuid.UUID, bool) {
	if v := ctx.Value(ctxKeyUserID{}); v != nil {
		if id, ok := v.(uuid.UUID); ok && id != uuid.Nil {
			return id, true
		}
	}

	return uuid.Nil, false
}
