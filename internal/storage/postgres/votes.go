package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/medforum/threads-service/internal/models"
	"github.com/medforum/threads-service/internal/storage"
)

// UpsertVote выполняет атомарный read-check-write для пары (user, target).
// Последовательность целиком идёт в одной транзакции:
//   - SELECT ... FOR UPDATE сериализует конкурентные голоса одного пользователя
//     по одной цели (голоса разных пользователей друг друга не блокируют);
//   - вставку дополнительно страхует уникальный индекс
//     (user_id, target_type, target_id): проигравший гонку получает ErrConflict.
func (s *Storage) UpsertVote(ctx context.Context, userID uuid.UUID, target models.TargetType, targetID uuid.UUID, value int16) (models.VoteOutcome, error) {
	const op = "storage.postgres.UpsertVote"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var existing int16
	err = tx.QueryRow(ctx, `
		SELECT value
		FROM votes
		WHERE user_id = $1 AND target_type = $2 AND target_id = $3
		FOR UPDATE
	`, userID, target, targetID).Scan(&existing)

	var outcome models.VoteOutcome

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		now := time.Now().UTC()
		_, err = tx.Exec(ctx, `
			INSERT INTO votes(id, user_id, target_type, target_id, value, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $6)
		`, uuid.New(), userID, target, targetID, value, now)

		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return "", fmt.Errorf("%s: %w", op, storage.ErrConflict)
			}

			return "", fmt.Errorf("%s: %w", op, err)
		}

		outcome = models.VoteCreated

	case err != nil:
		return "", fmt.Errorf("%s: %w", op, err)

	case existing == value:
		// Повторный голос того же направления — toggle-off.
		_, err = tx.Exec(ctx, `
			DELETE FROM votes
			WHERE user_id = $1 AND target_type = $2 AND target_id = $3
		`, userID, target, targetID)

		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}

		outcome = models.VoteRemoved

	default:
		// Противоположное направление — переворот значения на месте.
		_, err = tx.Exec(ctx, `
			UPDATE votes
			SET value = $4, updated_at = $5
			WHERE user_id = $1 AND target_type = $2 AND target_id = $3
		`, userID, target, targetID, value, time.Now().UTC())

		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}

		outcome = models.VoteChanged
	}

	if err := tx.Commit(ctx); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return outcome, nil
}

// VoteCounts возвращает счётчики up/down для набора целей одним запросом.
// Цели без голосов в карте отсутствуют.
func (s *Storage) VoteCounts(ctx context.Context, target models.TargetType, targetIDs []uuid.UUID) (map[uuid.UUID]models.VoteCounts, error) {
	const op = "storage.postgres.VoteCounts"

	result := make(map[uuid.UUID]models.VoteCounts, len(targetIDs))
	if len(targetIDs) == 0 {
		return result, nil
	}

	rows, err := s.db.Query(ctx, `
		SELECT target_id,
		       COUNT(*) FILTER (WHERE value = 1)  AS upvotes,
		       COUNT(*) FILTER (WHERE value = -1) AS downvotes
		FROM votes
		WHERE target_type = $1 AND target_id = ANY($2)
		GROUP BY target_id
	`, target, targetIDs)

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id     uuid.UUID
			counts models.VoteCounts
		)
		if err := rows.Scan(&id, &counts.Upvotes, &counts.Downvotes); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		result[id] = counts
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// ViewerVotes возвращает значения голосов пользователя по набору целей.
func (s *Storage) ViewerVotes(ctx context.Context, viewerID uuid.UUID, target models.TargetType, targetIDs []uuid.UUID) (map[uuid.UUID]int16, error) {
	const op = "storage.postgres.ViewerVotes"

	result := make(map[uuid.UUID]int16, len(targetIDs))
	if len(targetIDs) == 0 {
		return result, nil
	}

	rows, err := s.db.Query(ctx, `
		SELECT target_id, value
		FROM votes
		WHERE user_id = $1 AND target_type = $2 AND target_id = ANY($3)
	`, viewerID, target, targetIDs)

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id    uuid.UUID
			value int16
		)
		if err := rows.Scan(&id, &value); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		result[id] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}
