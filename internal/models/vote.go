// Package models содержит доменные сущности threads-сервиса.
package models

import (
	"time"

	"github.com/google/uuid"
)

// TargetType — тип сущности, к которой относится голос: пост или комментарий.
type TargetType string

const (
	TargetPost    TargetType = "post"
	TargetComment TargetType = "comment"
)

// Valid сообщает, является ли значение одним из двух допустимых типов.
func (t TargetType) Valid() bool {
	return t == TargetPost || t == TargetComment
}

// VoteDirection — направление голоса в запросе пользователя.
type VoteDirection string

const (
	VoteUp   VoteDirection = "up"
	VoteDown VoteDirection = "down"
)

// Value возвращает числовое значение голоса: up -> +1, down -> -1.
func (d VoteDirection) Value() int16 {
	if d == VoteDown {
		return -1
	}

	return 1
}

// Vote — запись реестра голосов.
// Важно:
//   - на пару (UserID, TargetType, TargetID) существует не более одной записи,
//     уникальность закреплена индексом в БД;
//   - Value строго +1 или -1, ноль не хранится (снятый голос — удалённая строка).
type Vote struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	TargetType TargetType
	TargetID   uuid.UUID
	Value      int16
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// VoteOutcome — исход операции голосования.
type VoteOutcome string

const (
	// VoteCreated — голоса не было, создан новый.
	VoteCreated VoteOutcome = "created"
	// VoteRemoved — повторный голос того же направления снял существующий.
	VoteRemoved VoteOutcome = "removed"
	// VoteChanged — голос противоположного направления перевёрнут на месте.
	VoteChanged VoteOutcome = "changed"
)

// VoteResult — авторитетное состояние после мутации: исход + свежий счёт цели.
// Клиентский optimistic-UI сверяется именно с этим ответом.
type VoteResult struct {
	Outcome VoteOutcome
	Score   Score
}
