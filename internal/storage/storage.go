// storage содержит контракты слоя хранилищ threads-service.
//
// storage.go — работа с реляционной БД: посты, комментарии, реестр голосов,
// карма и справочные чтения (пользователи, сообщества, модераторы).
// attachments.go — контракт загрузки вложений постов в S3/MinIO.
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/medforum/threads-service/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrConflict — конфликт уникальности, который транзакция не разрешила
	// (гонка вставки голоса, пойманная индексом (user_id, target_type, target_id)).
	ErrConflict = errors.New("conflict")
	// ErrParentNotFound — указан parent_id, но родительский комментарий отсутствует.
	ErrParentNotFound = errors.New("parent not found")
	// ErrParentMismatch — родительский комментарий принадлежит другому посту.
	ErrParentMismatch = errors.New("parent belongs to another post")
	// ErrTargetDeleted — цель существует, но мягко удалена; новые мутации запрещены.
	ErrTargetDeleted = errors.New("target deleted")
)

// Votes — реестр голосов: не более одной записи на (user, target).
type Votes interface {
	// UpsertVote выполняет атомарный read-check-write для одной пары (user, target):
	//   - записи нет -> вставка value, исход VoteCreated;
	//   - запись с тем же value -> удаление, исход VoteRemoved;
	//   - запись с противоположным value -> обновление на месте, исход VoteChanged.
	// Вся последовательность идёт в одной транзакции с блокировкой строки голоса;
	// вставку дополнительно страхует уникальный индекс (гонка -> ErrConflict).
	UpsertVote(ctx context.Context, userID uuid.UUID, target models.TargetType, targetID uuid.UUID, value int16) (models.VoteOutcome, error)

	// VoteCounts возвращает счётчики up/down для набора целей одним запросом.
	// Цели без голосов в карте отсутствуют (трактуются как нулевые).
	VoteCounts(ctx context.Context, target models.TargetType, targetIDs []uuid.UUID) (map[uuid.UUID]models.VoteCounts, error)

	// ViewerVotes возвращает значения голосов конкретного пользователя
	// по набору целей: target_id -> +1/-1.
	ViewerVotes(ctx context.Context, viewerID uuid.UUID, target models.TargetType, targetIDs []uuid.UUID) (map[uuid.UUID]int16, error)
}

// Posts — посты и их lifecycle-флаги.
type Posts interface {
	// SavePost сохраняет новый пост (id/таймстемпы заполняет вызывающий).
	SavePost(ctx context.Context, post *models.Post) error
	// PostByID возвращает пост по id, включая удалённые и залоченные.
	PostByID(ctx context.Context, id uuid.UUID) (*models.Post, error)
	// ListPosts — keyset-страница неудалённых постов сообщества:
	// закреплённые первыми, далее по created_at DESC. Битый токен -> ErrInvalidCursor.
	ListPosts(ctx context.Context, communityID uuid.UUID, p models.ListParams) (*models.PostPage, error)
	// SetPostDeleted выставляет is_deleted (односторонний переход).
	SetPostDeleted(ctx context.Context, id uuid.UUID) error
	// SetPostLocked управляет флагом is_locked.
	SetPostLocked(ctx context.Context, id uuid.UUID, locked bool) error
	// SetPostPinned управляет флагом is_pinned.
	SetPostPinned(ctx context.Context, id uuid.UUID, pinned bool) error
	// SaveAttachment фиксирует подтверждённое вложение поста.
	SaveAttachment(ctx context.Context, att *models.Attachment) error
}

// Comments — комментарии постов.
type Comments interface {
	// SaveComment сохраняет новый комментарий. Родитель (если задан) должен
	// существовать и принадлежать тому же посту: иначе ErrParentNotFound /
	// ErrParentMismatch.
	SaveComment(ctx context.Context, comment *models.Comment) error
	// CommentByID возвращает комментарий по id, включая удалённые.
	CommentByID(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	// CommentsByPost возвращает все комментарии поста одним запросом,
	// включая мягко удалённые (они сохраняют место в дереве).
	CommentsByPost(ctx context.Context, postID uuid.UUID) ([]models.Comment, error)
	// SetCommentDeleted выставляет is_deleted (односторонний переход).
	SetCommentDeleted(ctx context.Context, id uuid.UUID) error
}

// KarmaStore — агрегат кармы.
type KarmaStore interface {
	// PostKarmaSum — сумма значений голосов по всем неудалённым постам автора.
	PostKarmaSum(ctx context.Context, userID uuid.UUID) (int64, error)
	// CommentKarmaSum — то же по неудалённым комментариям автора.
	CommentKarmaSum(ctx context.Context, userID uuid.UUID) (int64, error)
	// UpsertKarma перезаписывает post/comment-карму одним стейтментом,
	// сохраняя существующую award-карму; total пересчитывается в БД.
	// Возвращает итоговую запись.
	UpsertKarma(ctx context.Context, userID uuid.UUID, postKarma, commentKarma int64) (*models.Karma, error)
	// KarmaByUser возвращает сохранённую запись кармы (ErrNotFound, если
	// пересчёт ещё не выполнялся).
	KarmaByUser(ctx context.Context, userID uuid.UUID) (*models.Karma, error)
}

// Directory — справочные чтения, нужные политикам и батч-пересчёту.
type Directory interface {
	// UserByID возвращает пользователя по id.
	UserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// UserIDs возвращает идентификаторы всех пользователей (батч-пересчёт кармы).
	UserIDs(ctx context.Context) ([]uuid.UUID, error)
	// CommunityByID возвращает сообщество по id.
	CommunityByID(ctx context.Context, id uuid.UUID) (*models.Community, error)
	// IsModerator сообщает, является ли пользователь модератором сообщества.
	// Владелец сообщества учитывается отдельно (Community.OwnerID).
	IsModerator(ctx context.Context, communityID, userID uuid.UUID) (bool, error)
}

// ErrInvalidCursor — битый/чужой page_token.
var ErrInvalidCursor = errors.New("invalid cursor")

// Storage — верхнеуровневый контракт реляционного хранилища.
type Storage interface {
	Votes
	Posts
	Comments
	KarmaStore
	Directory
	// Close закрывает соединения/ресурсы хранилища.
	Close()
}
