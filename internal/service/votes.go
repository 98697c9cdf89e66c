package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/medforum/threads-service/internal/models"
	"github.com/medforum/threads-service/internal/storage"
	"github.com/medforum/threads-service/pkg/log"
)

// CastVoteInput — голос пользователя за пост или комментарий.
type CastVoteInput struct {
	UserID    uuid.UUID
	Target    models.TargetType
	TargetID  uuid.UUID
	Direction models.VoteDirection
}

// CastVote — бизнес-операция голосования.
//
// Семантика (не более одного голоса на пару (user, target)):
//   - голоса не было -> создаётся новый, исход created;
//   - повторный голос того же направления -> снятие, исход removed;
//   - голос противоположного направления -> переворот на месте, исход changed.
//
// Валидация:
//   - UserID/TargetID обязательны, Target и Direction из допустимых наборов.
//
// Политика:
//   - цель должна существовать и быть неудалённой -> иначе ErrNotFound;
//   - залоченный пост принимает голоса только от модераторов/владельца
//     сообщества -> иначе ErrForbidden.
//
// Возвращает исход и авторитетный счёт цели после мутации: клиентская
// optimistic-мутация сверяется с этим ответом, а не предсказывает сама.
func (s *Service) CastVote(ctx context.Context, in CastVoteInput) (*models.VoteResult, error) {
	const op = "service/votes/CastVote"

	lg := log.From(ctx).With(
		"op", op,
		"user_id", in.UserID.String(),
		"target_type", string(in.Target),
		"target_id", in.TargetID.String(),
	)

	if in.UserID == uuid.Nil || in.TargetID == uuid.Nil {
		lg.Warn("invalid argument: empty user_id or target_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if !in.Target.Valid() {
		lg.Warn("invalid argument: bad target type")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if in.Direction != models.VoteUp && in.Direction != models.VoteDown {
		lg.Warn("invalid argument: bad direction")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	post, err := s.resolveTargetPost(ctx, in.Target, in.TargetID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrTargetDeleted):
			lg.Warn("vote target not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on target resolve", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	if post.IsLocked {
		allowed, err := s.mayModerate(ctx, post.CommunityID, in.UserID)
		if err != nil {
			lg.Error("storage error on moderator check", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}

		if !allowed {
			lg.Warn("post locked, voter is not a moderator")
			return nil, fmt.Errorf("%s: %w", op, ErrForbidden)
		}
	}

	outcome, err := s.storage.UpsertVote(ctx, in.UserID, in.Target, in.TargetID, in.Direction.Value())
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrConflict):
			lg.Warn("vote upsert lost an insert race")
			return nil, fmt.Errorf("%s: %w", op, ErrConflict)
		default:
			lg.Error("storage error on UpsertVote", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	score, err := s.scoreFor(ctx, in.Target, in.TargetID, &in.UserID)
	if err != nil {
		lg.Error("storage error on score read-back", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return &models.VoteResult{Outcome: outcome, Score: *score}, nil
}

// resolveTargetPost возвращает пост, которому принадлежит цель голоса
// (сам пост либо пост комментария). Удалённая цель — storage.ErrTargetDeleted.
func (s *Service) resolveTargetPost(ctx context.Context, target models.TargetType, targetID uuid.UUID) (*models.Post, error) {
	if target == models.TargetPost {
		post, err := s.storage.PostByID(ctx, targetID)
		if err != nil {
			return nil, err
		}

		if post.IsDeleted {
			return nil, storage.ErrTargetDeleted
		}

		return post, nil
	}

	comment, err := s.storage.CommentByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if comment.IsDeleted {
		return nil, storage.ErrTargetDeleted
	}

	post, err := s.storage.PostByID(ctx, comment.PostID)
	if err != nil {
		return nil, err
	}

	if post.IsDeleted {
		return nil, storage.ErrTargetDeleted
	}

	return post, nil
}
