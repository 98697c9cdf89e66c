// Package handlers — HTTP-обработчики threads-service.
//
// Обработчики тонкие: декодирование запроса, вызов сервисного слоя,
// конвертация доменной модели в JSON-ответ. Ошибки сервисного слоя
// транслируются в HTTP через httperr.WriteError.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/medforum/threads-service/internal/service"
	"github.com/medforum/threads-service/internal/transport/http/httperr"
	"github.com/medforum/threads-service/internal/transport/http/middleware"
)

// Разумный потолок на размер тела запроса.
const maxBodyBytes = 1 << 20 // 1 MiB

// Handlers агрегирует зависимости HTTP-слоя.
type Handlers struct {
	service *service.Service
}

// New создаёт набор обработчиков поверх сервисного слоя.
func New(s *service.Service) *Handlers {
	return &Handlers{service: s}
}

// writeJSON сериализует ответ с указанным статусом.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeStrict декодирует JSON-тело в dst, отклоняя неизвестные поля
// и мусор после первого объекта.
func decodeStrict(r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(nil, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed body", service.ErrInvalidArgument)
	}
	if dec.More() {
		return fmt.Errorf("%w: trailing data", service.ErrInvalidArgument)
	}

	return nil
}

// pathUUID достаёт и валидирует UUID из URL-параметра chi.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)

	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: bad %s", service.ErrInvalidArgument, name)
	}

	return id, nil
}

// parseUUIDField валидирует UUID из поля JSON-тела.
func parseUUIDField(raw, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: bad %s", service.ErrInvalidArgument, name)
	}

	return id, nil
}

// pathErrInvalid — ошибка валидации параметра запроса с именем поля.
func pathErrInvalid(name string) error {
	return fmt.Errorf("%w: bad %s", service.ErrInvalidArgument, name)
}

// viewerFrom — опциональная идентичность смотрящего (nil для анонима).
func viewerFrom(r *http.Request) *uuid.UUID {
	if id, ok := middleware.UserFrom(r.Context()); ok {
		return &id
	}

	return nil
}

// requireUser — обязательная идентичность; её отсутствие — 401.
func requireUser(r *http.Request) (uuid.UUID, error) {
	id, ok := middleware.UserFrom(r.Context())
	if !ok {
		return uuid.Nil, httperr.ErrUnauthenticated
	}

	return id, nil
}
