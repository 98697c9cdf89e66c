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

// UserByID возвращает пользователя по id.
func (s *Storage) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "storage.postgres.UserByID"

	query := `
		SELECT id, username, created_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := s.db.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &user, nil
}

// UserIDs возвращает идентификаторы всех пользователей (батч-пересчёт кармы).
func (s *Storage) UserIDs(ctx context.Context) ([]uuid.UUID, error) {
	const op = "storage.postgres.UserIDs"

	rows, err := s.db.Query(ctx, `SELECT id FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ids, nil
}

// CommunityByID возвращает сообщество по id.
func (s *Storage) CommunityByID(ctx context.Context, id uuid.UUID) (*models.Community, error) {
	const op = "storage.postgres.CommunityByID"

	query := `
		SELECT id, slug, name, owner_id, created_at
		FROM communities
		WHERE id = $1
	`

	var community models.Community
	err := s.db.QueryRow(ctx, query, id).Scan(
		&community.ID,
		&community.Slug,
		&community.Name,
		&community.OwnerID,
		&community.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &community, nil
}

// IsModerator сообщает, есть ли у пользователя модераторская запись в сообществе.
func (s *Storage) IsModerator(ctx context.Context, communityID, userID uuid.UUID) (bool, error) {
	const op = "storage.postgres.IsModerator"

	query := `
		SELECT EXISTS (
			SELECT 1 FROM community_moderators
			WHERE community_id = $1 AND user_id = $2
		)
	`

	var exists bool
	if err := s.db.QueryRow(ctx, query, communityID, userID).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return exists, nil
}
