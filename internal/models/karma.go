package models

import (
	"time"

	"github.com/google/uuid"
)

// Karma — единственная запись агрегата на пользователя.
// Важно:
//   - PostKarma — сумма счетов всех неудалённых постов автора;
//   - CommentKarma — то же по комментариям;
//   - AwardKarma — внешние награды, реестром голосов не выводится и
//     переживает полный пересчёт;
//   - TotalKarma = PostKarma + CommentKarma + AwardKarma.
//
// Запись существует для каждого пользователя, включая нулевую карму:
// пересчёт всегда делает upsert явного нуля.
type Karma struct {
	UserID       uuid.UUID
	PostKarma    int64
	CommentKarma int64
	AwardKarma   int64
	TotalKarma   int64
	UpdatedAt    time.Time
}
