package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/medforum/threads-service/internal/models"
	"github.com/medforum/threads-service/internal/storage"
)

// PostKarmaSum — сумма значений голосов по всем неудалённым постам автора.
// Считается напрямую из реестра голосов: денормализованных счётчиков,
// которые могли бы разойтись, здесь нет.
func (s *Storage) PostKarmaSum(ctx context.Context, userID uuid.UUID) (int64, error) {
	const op = "storage.postgres.PostKarmaSum"

	query := `
		SELECT COALESCE(SUM(v.value), 0)
		FROM votes v
		JOIN posts p ON p.id = v.target_id
		WHERE v.target_type = 'post' AND p.author_id = $1 AND NOT p.is_deleted
	`

	var sum int64
	if err := s.db.QueryRow(ctx, query, userID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return sum, nil
}

// CommentKarmaSum — то же по неудалённым комментариям автора.
func (s *Storage) CommentKarmaSum(ctx context.Context, userID uuid.UUID) (int64, error) {
	const op = "storage.postgres.CommentKarmaSum"

	query := `
		SELECT COALESCE(SUM(v.value), 0)
		FROM votes v
		JOIN comments c ON c.id = v.target_id
		WHERE v.target_type = 'comment' AND c.author_id = $1 AND NOT c.is_deleted
	`

	var sum int64
	if err := s.db.QueryRow(ctx, query, userID).Scan(&sum); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return sum, nil
}

// UpsertKarma перезаписывает post/comment-карму одним стейтментом.
// Award-карма приходит извне и пересчётом не выводится, поэтому при
// конфликте сохраняется прежнее значение; total пересчитывается в БД.
// Один стейтмент — отмена контекста не оставляет частичной записи.
func (s *Storage) UpsertKarma(ctx context.Context, userID uuid.UUID, postKarma, commentKarma int64) (*models.Karma, error) {
	const op = "storage.postgres.UpsertKarma"

	query := `
		INSERT INTO karma(user_id, post_karma, comment_karma, award_karma, total_karma, updated_at)
		VALUES ($1, $2, $3, 0, $2 + $3, now())
		ON CONFLICT (user_id) DO UPDATE
		SET post_karma    = EXCLUDED.post_karma,
		    comment_karma = EXCLUDED.comment_karma,
		    total_karma   = EXCLUDED.post_karma + EXCLUDED.comment_karma + karma.award_karma,
		    updated_at    = now()
		RETURNING user_id, post_karma, comment_karma, award_karma, total_karma, updated_at
	`

	var k models.Karma
	err := s.db.QueryRow(ctx, query, userID, postKarma, commentKarma).Scan(
		&k.UserID,
		&k.PostKarma,
		&k.CommentKarma,
		&k.AwardKarma,
		&k.TotalKarma,
		&k.UpdatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &k, nil
}

// KarmaByUser возвращает сохранённую запись кармы.
func (s *Storage) KarmaByUser(ctx context.Context, userID uuid.UUID) (*models.Karma, error) {
	const op = "storage.postgres.KarmaByUser"

	query := `
		SELECT user_id, post_karma, comment_karma, award_karma, total_karma, updated_at
		FROM karma
		WHERE user_id = $1
	`

	var k models.Karma
	err := s.db.QueryRow(ctx, query, userID).Scan(
		&k.UserID,
		&k.PostKarma,
		&k.CommentKarma,
		&k.AwardKarma,
		&k.TotalKarma,
		&k.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &k, nil
}
