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

// CreatePostInput — создание поста в сообществе.
type CreatePostInput struct {
	CommunityID uuid.UUID
	AuthorID    uuid.UUID
	Title       string
	Content     string
	Type        models.PostType
}

// CreatePost — бизнес-операция создания поста.
//
// Валидация:
//   - CommunityID/AuthorID обязательны;
//   - Title и Content нормализуются (TrimSpace) и не должны быть пустыми;
//   - Type из допустимого набора тегов (пустой — discussion).
//
// Поведение/ошибки:
//   - ErrNotFound — сообщество или автор не существуют;
//   - ErrInternal — прочие ошибки стораджа.
func (s *Service) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	const op = "service/posts/CreatePost"

	lg := log.From(ctx).With(
		"op", op,
		"community_id", in.CommunityID.String(),
		"author_id", in.AuthorID.String(),
	)

	if in.CommunityID == uuid.Nil || in.AuthorID == uuid.Nil {
		lg.Warn("invalid argument: empty community_id or author_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		lg.Warn("invalid argument: empty title")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		lg.Warn("invalid argument: empty content")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.Type == "" {
		in.Type = models.PostDiscussion
	}

	if !in.Type.Valid() {
		lg.Warn("invalid argument: bad post type")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := s.storage.CommunityByID(ctx, in.CommunityID); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("community not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on CommunityByID", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	now := time.Now().UTC()
	post := &models.Post{
		ID:          uuid.New(),
		CommunityID: in.CommunityID,
		AuthorID:    in.AuthorID,
		Title:       in.Title,
		Content:     in.Content,
		Type:        in.Type,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.storage.SavePost(ctx, post); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("author or community reference broken")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrConflict):
			lg.Warn("post id conflict")
			return nil, fmt.Errorf("%s: %w", op, ErrConflict)
		default:
			lg.Error("storage error on SavePost", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return post, nil
}

// PostByID возвращает пост по id. Мягко удалённый пост наружу не отдаётся.
func (s *Service) PostByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	const op = "service/posts/PostByID"

	lg := log.From(ctx).With("op", op, "post_id", id.String())

	if id == uuid.Nil {
		lg.Warn("invalid argument: empty id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	post, err := s.storage.PostByID(ctx, id)
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

	return post, nil
}

// ListPostsInput — параметры постраничной выдачи постов сообщества.
type ListPostsInput struct {
	CommunityID uuid.UUID
	PageSize    int32
	PageToken   string
}

// ListPosts — страница неудалённых постов сообщества: закреплённые первыми,
// далее новые. page_size=0 берёт Limits.Default, верхняя граница — Limits.Max.
func (s *Service) ListPosts(ctx context.Context, in ListPostsInput) (*models.PostPage, error) {
	const op = "service/posts/ListPosts"

	lg := log.From(ctx).With("op", op, "community_id", in.CommunityID.String())

	if in.CommunityID == uuid.Nil {
		lg.Warn("invalid argument: empty community_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	size := in.PageSize
	if size <= 0 {
		size = s.cfg.Limits.Default
	}
	if size > s.cfg.Limits.Max {
		size = s.cfg.Limits.Max
	}

	page, err := s.storage.ListPosts(ctx, in.CommunityID, models.ListParams{
		PageSize:  size,
		PageToken: in.PageToken,
	})

	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidCursor):
			lg.Warn("invalid cursor")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCursor)
		default:
			lg.Error("storage error on ListPosts", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return page, nil
}
