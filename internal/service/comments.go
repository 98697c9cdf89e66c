package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medforum/threads-service/internal/models"
	"github.com/medforum/threads-service/internal/storage"
	"github.com/medforum/threads-service/pkg/log"
)

// CreateCommentInput — создание корневого комментария или ответа.
// Правила:
//   - если ParentID nil, создаётся корень;
//   - если ParentID задан, создаётся ответ; родитель обязан принадлежать
//     тому же посту (кросс-постовая вложенность запрещена);
//   - всегда обязательны: PostID, AuthorID, Content.
type CreateCommentInput struct {
	PostID   uuid.UUID
	AuthorID uuid.UUID
	ParentID *uuid.UUID
	Content  string
}

// CreateComment — бизнес-операция создания комментария.
//
// Валидация:
//   - PostID/AuthorID обязательны; Content нормализуется (TrimSpace)
//     и не должен быть пустым.
//
// Политика:
//   - пост должен существовать и быть неудалённым -> иначе ErrNotFound;
//   - залоченный пост принимает комментарии только от модераторов/владельца
//     сообщества -> иначе ErrForbidden.
//
// Поведение/ошибки:
//   - ErrNotFound — родительский комментарий отсутствует;
//   - ErrInvalidArgument — родитель принадлежит другому посту;
//   - ErrInternal — прочие ошибки стораджа.
func (s *Service) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	const op = "service/comments/CreateComment"

	lg := log.From(ctx).With(
		"op", op,
		"post_id", in.PostID.String(),
		"author_id", in.AuthorID.String(),
	)

	if in.PostID == uuid.Nil || in.AuthorID == uuid.Nil {
		lg.Warn("invalid argument: empty post_id or author_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		lg.Warn("invalid argument: empty content")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.ParentID != nil && *in.ParentID == uuid.Nil {
		lg.Warn("invalid argument: nil parent_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	post, err := s.storage.PostByID(ctx, in.PostID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("post not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on PostByID", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	if post.IsDeleted {
		lg.Warn("post deleted")
		return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	if post.IsLocked {
		allowed, err := s.mayModerate(ctx, post.CommunityID, in.AuthorID)
		if err != nil {
			lg.Error("storage error on moderator check", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}

		if !allowed {
			lg.Warn("post locked, author is not a moderator")
			return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
		}
	}

	now := time.Now().UTC()
	comment := &models.Comment{
		ID:        uuid.New(),
		PostID:    in.PostID,
		AuthorID:  in.AuthorID,
		ParentID:  in.ParentID,
		Content:   in.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.SaveComment(ctx, comment); err != nil {
		switch {
		case errors.Is(err, storage.ErrParentNotFound):
			lg.Warn("parent comment not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrParentMismatch):
			lg.Warn("parent belongs to another post")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		default:
			lg.Error("storage error on SaveComment", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return comment, nil
}
