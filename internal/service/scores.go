package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/medforum/threads-service/internal/models"
	"github.com/medforum/threads-service/pkg/log"
)

// Score возвращает счёт одной цели на момент чтения.
// Счёт всегда выводится из реестра голосов (read-through): кэшированных
// значений, способных разойтись с реестром, сервис не держит.
// Цель без голосов даёт нулевые счётчики — существование цели здесь
// не проверяется, агрегат чисто вычислительный.
func (s *Service) Score(ctx context.Context, target models.TargetType, targetID uuid.UUID, viewerID *uuid.UUID) (*models.Score, error) {
	const op = "service/scores/Score"

	lg := log.From(ctx).With("op", op, "target_type", string(target), "target_id", targetID.String())

	if !target.Valid() || targetID == uuid.Nil {
		lg.Warn("invalid argument")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	score, err := s.scoreFor(ctx, target, targetID, viewerID)
	if err != nil {
		lg.Error("storage error on score read", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return score, nil
}

// Scores — батч-вариант: результат эквивалентен поштучным вызовам Score,
// но хранилище опрашивается двумя запросами на весь набор
// (счётчики + голоса зрителя), без per-target обращений.
func (s *Service) Scores(ctx context.Context, target models.TargetType, targetIDs []uuid.UUID, viewerID *uuid.UUID) (map[uuid.UUID]models.Score, error) {
	const op = "service/scores/Scores"

	lg := log.From(ctx).With("op", op, "target_type", string(target), "targets", len(targetIDs))

	if !target.Valid() {
		lg.Warn("invalid argument: bad target type")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	for _, id := range targetIDs {
		if id == uuid.Nil {
			lg.Warn("invalid argument: nil target id in batch")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}
	}

	result, err := s.scoresFor(ctx, target, targetIDs, viewerID)
	if err != nil {
		lg.Error("storage error on batch score read", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return result, nil
}

// scoreFor — внутренний путь чтения счёта одной цели.
func (s *Service) scoreFor(ctx context.Context, target models.TargetType, targetID uuid.UUID, viewerID *uuid.UUID) (*models.Score, error) {
	scores, err := s.scoresFor(ctx, target, []uuid.UUID{targetID}, viewerID)
	if err != nil {
		return nil, err
	}

	score := scores[targetID]

	return &score, nil
}

// scoresFor собирает счёты набора целей: счётчики из реестра + голос зрителя.
// Каждый запрошенный id присутствует в результате (без голосов — нули).
func (s *Service) scoresFor(ctx context.Context, target models.TargetType, targetIDs []uuid.UUID, viewerID *uuid.UUID) (map[uuid.UUID]models.Score, error) {
	counts, err := s.storage.VoteCounts(ctx, target, targetIDs)
	if err != nil {
		return nil, err
	}

	var viewer map[uuid.UUID]int16
	if viewerID != nil && *viewerID != uuid.Nil {
		viewer, err = s.storage.ViewerVotes(ctx, *viewerID, target, targetIDs)
		if err != nil {
			return nil, err
		}
	}

	result := make(map[uuid.UUID]models.Score, len(targetIDs))
	for _, id := range targetIDs {
		c := counts[id]
		score := models.Score{
			Upvotes:   c.Upvotes,
			Downvotes: c.Downvotes,
			Value:     c.Upvotes - c.Downvotes,
		}

		if value, ok := viewer[id]; ok {
			direction := models.VoteUp
			if value < 0 {
				direction = models.VoteDown
			}
			score.ViewerVote = &direction
		}

		result[id] = score
	}

	return result, nil
}
