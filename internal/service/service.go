// service содержит бизнес-логику threads-сервиса.
//
// votes.go — реестр голосов (cast с toggle/flip-семантикой и политикой локов).
// scores.go — вычисление счёта целей на момент чтения (одиночное и батч).
// tree.go — восстановление дерева комментариев из плоской выборки.
// karma.go — полный и батчевый пересчёт кармы пользователей.
// lifecycle.go — мягкое удаление, lock/pin и модераторская политика.
// posts.go / comments.go — создание и чтение постов/комментариев.
// attachments.go — presigned-загрузка вложений постов.
package service

import (
	"errors"

	"github.com/medforum/threads-service/internal/config"
	"github.com/medforum/threads-service/internal/storage"
)

var (
	// ErrNotFound — сущность отсутствует или мягко удалена.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument — неверные входные параметры запроса к сервису.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrForbidden — политика запретила операцию (залоченный пост,
	// недостаточно прав). Автоматически не ретраится.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict — конфликт уникальности, который транзакционный слой не
	// разрешил (гонка на вставке голоса). Безопасно повторить один раз.
	ErrConflict = errors.New("conflict")
	// ErrInvalidCursor — битый/чужой page_token.
	ErrInvalidCursor = errors.New("invalid cursor")
	// ErrDataIntegrity — повреждённые данные (цикл в цепочке родителей,
	// осиротевшая ссылка). Фатально для запроса, молча не чинится.
	ErrDataIntegrity = errors.New("data integrity violation")
	// ErrInternal — внутренняя ошибка (сторадж/БД/контекст/и т.д.).
	ErrInternal = errors.New("internal")
)

// Service — описывает бизнес-логику threads-service.
type Service struct {
	storage     storage.Storage
	attachments storage.AttachmentsStorage
	cfg         config.Config
}

// New создает новый экземпляр Service.
func New(st storage.Storage, attachments storage.AttachmentsStorage, cfg config.Config) *Service {
	return &Service{
		storage:     st,
		attachments: attachments,
		cfg:         cfg,
	}
}
