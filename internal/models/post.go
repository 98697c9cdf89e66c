package models

import (
	"time"

	"github.com/google/uuid"
)

// PostType — тег типа публикации.
type PostType string

const (
	PostDiscussion PostType = "discussion"
	PostCaseStudy  PostType = "case_study"
	PostToolReview PostType = "tool_review"
	PostQuestion   PostType = "question"
)

// Valid сообщает, входит ли значение в допустимый набор тегов.
func (t PostType) Valid() bool {
	switch t {
	case PostDiscussion, PostCaseStudy, PostToolReview, PostQuestion:
		return true
	}

	return false
}

// Post — публикация в сообществе.
// Важно:
//   - IsLocked блокирует новые комментарии и голоса от не-модераторов,
//     существующие данные остаются читаемыми;
//   - IsPinned — только подсказка сортировки выдачи, на агрегаты не влияет;
//   - IsDeleted — мягкое удаление: пост исчезает из выдачи и из пересчёта кармы,
//     но его голоса и комментарии сохраняются.
type Post struct {
	ID          uuid.UUID
	CommunityID uuid.UUID
	AuthorID    uuid.UUID
	Title       string
	Content     string
	Type        PostType
	IsPinned    bool
	IsLocked    bool
	IsDeleted   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Attachment — вложение поста; содержимое живёт в объектном хранилище,
// здесь только ссылка на ключ объекта.
type Attachment struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	ObjectKey string
	Size      int64
	MimeType  string
	CreatedAt time.Time
}

// ListParams — базовые параметры постраничной выдачи.
type ListParams struct {
	PageSize  int32
	PageToken string
}

// PostPage — результат постраничной выдачи постов.
type PostPage struct {
	Items         []Post
	NextPageToken string
}
