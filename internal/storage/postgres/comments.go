package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/medforum/threads-service/internal/models"
	"github.com/medforum/threads-service/internal/storage"
)

// SaveComment сохраняет новый комментарий.
// Родитель (если задан) проверяется в той же транзакции:
//   - отсутствует -> ErrParentNotFound;
//   - принадлежит другому посту -> ErrParentMismatch (кросс-постовая
//     вложенность запрещена инвариантом доменной модели).
func (s *Storage) SaveComment(ctx context.Context, comment *models.Comment) error {
	const op = "storage.postgres.SaveComment"

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if comment.ParentID != nil {
		var parentPostID uuid.UUID
		err := tx.QueryRow(ctx, `
			SELECT post_id FROM comments WHERE id = $1
		`, *comment.ParentID).Scan(&parentPostID)

		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return fmt.Errorf("%s: %w", op, storage.ErrParentNotFound)
			}

			return fmt.Errorf("%s: %w", op, err)
		}

		if parentPostID != comment.PostID {
			return fmt.Errorf("%s: %w", op, storage.ErrParentMismatch)
		}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO comments(id, post_id, author_id, parent_id, content, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		comment.ID,
		comment.PostID,
		comment.AuthorID,
		comment.ParentID,
		comment.Content,
		comment.IsDeleted,
		comment.CreatedAt,
		comment.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// CommentByID возвращает комментарий по id, включая удалённые.
func (s *Storage) CommentByID(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	const op = "storage.postgres.CommentByID"

	query := `
		SELECT id, post_id, author_id, parent_id, content, is_deleted, created_at, updated_at
		FROM comments
		WHERE id = $1
	`

	var comment models.Comment
	err := s.db.QueryRow(ctx, query, id).Scan(
		&comment.ID,
		&comment.PostID,
		&comment.AuthorID,
		&comment.ParentID,
		&comment.Content,
		&comment.IsDeleted,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &comment, nil
}

// CommentsByPost возвращает все комментарии поста одним запросом, включая
// мягко удалённые. Порядок чтения фиксирован (created_at, id) — сборка дерева
// детерминирована при любом количестве одинаковых таймстемпов.
func (s *Storage) CommentsByPost(ctx context.Context, postID uuid.UUID) ([]models.Comment, error) {
	const op = "storage.postgres.CommentsByPost"

	query := `
		SELECT id, post_id, author_id, parent_id, content, is_deleted, created_at, updated_at
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at, id
	`

	rows, err := s.db.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.AuthorID,
			&comment.ParentID,
			&comment.Content,
			&comment.IsDeleted,
			&comment.CreatedAt,
			&comment.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return comments, nil
}

// SetCommentDeleted выставляет is_deleted (односторонний переход).
func (s *Storage) SetCommentDeleted(ctx context.Context, id uuid.UUID) error {
	const op = "storage.postgres.SetCommentDeleted"

	cmdTag, err := s.db.Exec(ctx, `
		UPDATE comments
		SET is_deleted = TRUE, updated_at = $2
		WHERE id = $1
	`, id, time.Now().UTC())

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
