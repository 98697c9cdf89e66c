package models

import (
	"time"

	"github.com/google/uuid"
)

// Community — сообщество по специальности; владеет постами.
// Имя и slug неизменяемы после создания.
type Community struct {
	ID        uuid.UUID
	Slug      string
	Name      string
	OwnerID   uuid.UUID
	CreatedAt time.Time
}

// User — минимальная проекция пользователя, нужная ядру
// (идентичность + авторство). Профильные атрибуты живут снаружи.
type User struct {
	ID        uuid.UUID
	Username  string
	CreatedAt time.Time
}
