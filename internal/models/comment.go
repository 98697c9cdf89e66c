package models

import (
	"time"

	"github.com/google/uuid"
)

// RemovedContent — маркер, которым подменяется текст мягко удалённого
// комментария при отдаче наружу. Сам узел из дерева не выпадает.
const RemovedContent = "[removed]"

// Comment — комментарий к посту.
// Важно:
//   - ParentID указывает на родительский комментарий того же поста
//     (nil — корневой); кросс-постовая вложенность запрещена;
//   - IsDeleted — мягкое удаление: узел сохраняет место в дереве, чтобы
//     ответы оставались достижимыми, но Content маскируется.
type Comment struct {
	ID        uuid.UUID
	PostID    uuid.UUID
	AuthorID  uuid.UUID
	ParentID  *uuid.UUID
	Content   string
	IsDeleted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CommentSort — порядок сортировки братьев на каждом уровне дерева.
type CommentSort string

const (
	SortNewest        CommentSort = "newest"
	SortOldest        CommentSort = "oldest"
	SortTop           CommentSort = "top"
	SortBest          CommentSort = "best"
	SortControversial CommentSort = "controversial"
)

// Valid сообщает, поддерживается ли такой порядок.
func (s CommentSort) Valid() bool {
	switch s {
	case SortNewest, SortOldest, SortTop, SortBest, SortControversial:
		return true
	}

	return false
}

// CommentNode — узел восстановленного дерева ответов.
// Presentation-слой обходит готовое значение, никакой рекурсии рендера
// внутри сервиса нет.
type CommentNode struct {
	Comment Comment
	Score   Score
	Replies []*CommentNode
}
