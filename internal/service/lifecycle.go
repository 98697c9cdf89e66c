package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/medforum/threads-service/internal/storage"
	"github.com/medforum/threads-service/pkg/log"
)

// Lifecycle-операции: мягкое удаление (односторонний переход),
// lock/pin (обратимые тумблеры) и единая модераторская политика,
// которой пользуются остальные компоненты вместо собственных проверок флагов.

// DeletePost — мягкое удаление поста автором или модератором.
// Пост исчезает из выдачи и из последующих пересчётов кармы;
// его голоса и комментарии сохраняются (ответы остаются достижимыми,
// карма по комментариям — атрибутируемой).
func (s *Service) DeletePost(ctx context.Context, postID, actorID uuid.UUID) error {
	const op = "service/lifecycle/DeletePost"

	lg := log.From(ctx).With("op", op, "post_id", postID.String(), "actor_id", actorID.String())

	if postID == uuid.Nil || actorID == uuid.Nil {
		lg.Warn("invalid argument")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	post, err := s.storage.PostByID(ctx, postID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("post not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on PostByID", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	if post.IsDeleted {
		lg.Warn("post already deleted")
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	if post.AuthorID != actorID {
		allowed, err := s.mayModerate(ctx, post.CommunityID, actorID)
		if err != nil {
			lg.Error("storage error on moderator check", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}

		if !allowed {
			lg.Warn("actor is neither author nor moderator")
			return fmt.Errorf("%s: %w", op, ErrForbidden)
		}
	}

	if err := s.storage.SetPostDeleted(ctx, postID); err != nil {
		lg.Error("storage error on SetPostDeleted", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return nil
}

// DeleteComment — мягкое удаление комментария автором или модератором.
// Узел сохраняет место в дереве, прячется только контент.
func (s *Service) DeleteComment(ctx context.Context, commentID, actorID uuid.UUID) error {
	const op = "service/lifecycle/DeleteComment"

	lg := log.From(ctx).With("op", op, "comment_id", commentID.String(), "actor_id", actorID.String())

	if commentID == uuid.Nil || actorID == uuid.Nil {
		lg.Warn("invalid argument")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	comment, err := s.storage.CommentByID(ctx, commentID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("comment not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on CommentByID", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	if comment.IsDeleted {
		lg.Warn("comment already deleted")
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	if comment.AuthorID != actorID {
		post, err := s.storage.PostByID(ctx, comment.PostID)
		if err != nil {
			lg.Error("storage error on PostByID", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}

		allowed, err := s.mayModerate(ctx, post.CommunityID, actorID)
		if err != nil {
			lg.Error("storage error on moderator check", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}

		if !allowed {
			lg.Warn("actor is neither author nor moderator")
			return fmt.Errorf("%s: %w", op, ErrForbidden)
		}
	}

	if err := s.storage.SetCommentDeleted(ctx, commentID); err != nil {
		lg.Error("storage error on SetCommentDeleted", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return nil
}

// SetPostLocked — lock/unlock поста (только модератор/владелец сообщества).
// Лок блокирует новые комментарии и голоса не-модераторов; существующие
// данные остаются читаемыми и вычислимыми.
func (s *Service) SetPostLocked(ctx context.Context, postID, actorID uuid.UUID, locked bool) error {
	const op = "service/lifecycle/SetPostLocked"

	return s.setModeratedFlag(ctx, op, postID, actorID, func(c context.Context) error {
		return s.storage.SetPostLocked(c, postID, locked)
	})
}

// SetPostPinned — pin/unpin поста (только модератор/владелец сообщества).
// Закрепление — подсказка сортировки выдачи, на агрегаты не влияет.
func (s *Service) SetPostPinned(ctx context.Context, postID, actorID uuid.UUID, pinned bool) error {
	const op = "service/lifecycle/SetPostPinned"

	return s.setModeratedFlag(ctx, op, postID, actorID, func(c context.Context) error {
		return s.storage.SetPostPinned(c, postID, pinned)
	})
}

// setModeratedFlag — общий каркас модераторских тумблеров поста.
func (s *Service) setModeratedFlag(ctx context.Context, op string, postID, actorID uuid.UUID, apply func(context.Context) error) error {
	lg := log.From(ctx).With("op", op, "post_id", postID.String(), "actor_id", actorID.String())

	if postID == uuid.Nil || actorID == uuid.Nil {
		lg.Warn("invalid argument")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	post, err := s.storage.PostByID(ctx, postID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("post not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on PostByID", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	if post.IsDeleted {
		lg.Warn("post deleted")
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	allowed, err := s.mayModerate(ctx, post.CommunityID, actorID)
	if err != nil {
		lg.Error("storage error on moderator check", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if !allowed {
		lg.Warn("actor is not a moderator")
		return fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	if err := apply(ctx); err != nil {
		lg.Error("storage error on flag update", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return nil
}

// mayModerate — единственная точка модераторской политики:
// владелец сообщества или пользователь с модераторской записью.
func (s *Service) mayModerate(ctx context.Context, communityID, userID uuid.UUID) (bool, error) {
	community, err := s.storage.CommunityByID(ctx, communityID)
	if err != nil {
		return false, err
	}

	if community.OwnerID == userID {
		return true, nil
	}

	return s.storage.IsModerator(ctx, communityID, userID)
}
