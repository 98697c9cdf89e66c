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

// RecomputeReport — итог батч-пересчёта кармы.
type RecomputeReport struct {
	Total  int
	Failed int
}

// RecomputeKarma — полный пересчёт кармы пользователя из реестра голосов.
//
// Семантика:
//   - post-карма: сумма счетов всех неудалённых постов автора;
//   - comment-карма: то же по комментариям;
//   - award-карма приходит извне и пересчётом не трогается;
//   - total = post + comment + award, считается в БД при upsert.
//
// Пересчёт идемпотентен: два вызова подряд без новых голосов дают
// идентичные снапшоты. Запись кармы создаётся всегда, включая явный ноль.
// Upsert — один стейтмент, отмена контекста не оставляет частичной записи.
func (s *Service) RecomputeKarma(ctx context.Context, userID uuid.UUID) (*models.Karma, error) {
	const op = "service/karma/RecomputeKarma"

	lg := log.From(ctx).With("op", op, "user_id", userID.String())

	if userID == uuid.Nil {
		lg.Warn("invalid argument: empty user_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := s.storage.UserByID(ctx, userID); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("user not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UserByID", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	postKarma, err := s.storage.PostKarmaSum(ctx, userID)
	if err != nil {
		lg.Error("storage error on PostKarmaSum", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	commentKarma, err := s.storage.CommentKarmaSum(ctx, userID)
	if err != nil {
		lg.Error("storage error on CommentKarmaSum", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	karma, err := s.storage.UpsertKarma(ctx, userID, postKarma, commentKarma)
	if err != nil {
		lg.Error("storage error on UpsertKarma", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return karma, nil
}

// RecomputeAllKarma — документированный maintenance-путь: полный пересчёт
// для всех пользователей (после миграции данных или починки реестра).
// Сбой одного пользователя логируется и не прерывает остальных;
// останавливает батч только отмена контекста.
func (s *Service) RecomputeAllKarma(ctx context.Context) (*RecomputeReport, error) {
	const op = "service/karma/RecomputeAllKarma"

	lg := log.From(ctx).With("op", op)

	ids, err := s.storage.UserIDs(ctx)
	if err != nil {
		lg.Error("storage error on UserIDs", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	report := &RecomputeReport{Total: len(ids)}

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			lg.Warn("batch recompute canceled", "done", report.Total-report.Failed)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}

		if _, err := s.RecomputeKarma(ctx, id); err != nil {
			report.Failed++
			lg.Error("recompute failed for user", "user_id", id.String(), "err", err)
		}
	}

	lg.Info("batch recompute finished", "total", report.Total, "failed", report.Failed)

	return report, nil
}

// Karma возвращает сохранённую запись кармы пользователя.
// ErrNotFound — пересчёт для пользователя ещё не выполнялся.
func (s *Service) Karma(ctx context.Context, userID uuid.UUID) (*models.Karma, error) {
	const op = "service/karma/Karma"

	lg := log.From(ctx).With("op", op, "user_id", userID.String())

	if userID == uuid.Nil {
		lg.Warn("invalid argument: empty user_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	karma, err := s.storage.KarmaByUser(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("karma not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on KarmaByUser", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return karma, nil
}
