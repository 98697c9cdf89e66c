package postgres

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/medforum/threads-service/internal/models"
	"github.com/medforum/threads-service/internal/storage"
)

// encodeCursor кодирует тройку (is_pinned, created_at, id) в непрозрачный токен.
// Выдача упорядочена pinned -> created_at DESC -> id DESC, поэтому ключа из трёх
// полей достаточно для устойчивой keyset-пагинации.
func encodeCursor(pinned bool, createdAt time.Time, id uuid.UUID) string {
	p := 0
	if pinned {
		p = 1
	}

	raw := fmt.Sprintf("%d|%d|%s", p, createdAt.UTC().UnixNano(), id.String())

	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

// decodeCursor декодирует токен обратно в тройку ключей.
func decodeCursor(token string) (bool, time.Time, uuid.UUID, error) {
	res, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return false, time.Time{}, uuid.Nil, err
	}

	parts := strings.SplitN(string(res), "|", 3)
	if len(parts) != 3 {
		return false, time.Time{}, uuid.Nil, fmt.Errorf("bad parts")
	}

	p, err := strconv.Atoi(parts[0])
	if err != nil || (p != 0 && p != 1) {
		return false, time.Time{}, uuid.Nil, fmt.Errorf("bad pinned flag")
	}

	nanos, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return false, time.Time{}, uuid.Nil, err
	}

	id, err := uuid.Parse(parts[2])
	if err != nil {
		return false, time.Time{}, uuid.Nil, err
	}

	return p == 1, time.Unix(0, nanos).UTC(), id, nil
}

// SavePost сохраняет новый пост.
func (s *Storage) SavePost(ctx context.Context, post *models.Post) error {
	const op = "storage.postgres.SavePost"

	query := `
		INSERT INTO posts(id, community_id, author_id, title, content, type,
		                  is_pinned, is_locked, is_deleted, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := s.db.Exec(ctx, query,
		post.ID,
		post.CommunityID,
		post.AuthorID,
		post.Title,
		post.Content,
		post.Type,
		post.IsPinned,
		post.IsLocked,
		post.IsDeleted,
		post.CreatedAt,
		post.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return fmt.Errorf("%s: %w", op, storage.ErrConflict)
			case pgerrcode.ForeignKeyViolation:
				return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
			}
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// PostByID возвращает пост по id, включая удалённые и залоченные.
func (s *Storage) PostByID(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	const op = "storage.postgres.PostByID"

	query := `
		SELECT id, community_id, author_id, title, content, type,
		       is_pinned, is_locked, is_deleted, created_at, updated_at
		FROM posts
		WHERE id = $1
	`

	var post models.Post
	err := s.db.QueryRow(ctx, query, id).Scan(
		&post.ID,
		&post.CommunityID,
		&post.AuthorID,
		&post.Title,
		&post.Content,
		&post.Type,
		&post.IsPinned,
		&post.IsLocked,
		&post.IsDeleted,
		&post.CreatedAt,
		&post.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &post, nil
}

// ListPosts возвращает keyset-страницу неудалённых постов сообщества:
// закреплённые первыми, далее новые.
func (s *Storage) ListPosts(ctx context.Context, communityID uuid.UUID, p models.ListParams) (*models.PostPage, error) {
	const op = "storage.postgres.ListPosts"

	limit := p.PageSize
	if limit <= 0 {
		return nil, fmt.Errorf("%s: page size must be positive", op)
	}

	args := []any{communityID, limit + 1}
	cursorCond := ""

	if p.PageToken != "" {
		pinned, createdAt, id, err := decodeCursor(p.PageToken)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		pin := 0
		if pinned {
			pin = 1
		}

		cursorCond = "AND (is_pinned::int, created_at, id) < ($3::int, $4, $5)"
		args = append(args, pin, createdAt, id)
	}

	query := fmt.Sprintf(`
		SELECT id, community_id, author_id, title, content, type,
		       is_pinned, is_locked, is_deleted, created_at, updated_at
		FROM posts
		WHERE community_id = $1 AND NOT is_deleted %s
		ORDER BY is_pinned DESC, created_at DESC, id DESC
		LIMIT $2
	`, cursorCond)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	items := make([]models.Post, 0, limit)
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(
			&post.ID,
			&post.CommunityID,
			&post.AuthorID,
			&post.Title,
			&post.Content,
			&post.Type,
			&post.IsPinned,
			&post.IsLocked,
			&post.IsDeleted,
			&post.CreatedAt,
			&post.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		items = append(items, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	page := &models.PostPage{}
	if len(items) > int(limit) {
		items = items[:limit]
		last := items[len(items)-1]
		page.NextPageToken = encodeCursor(last.IsPinned, last.CreatedAt, last.ID)
	}
	page.Items = items

	return page, nil
}

// setPostFlag — общий апдейт одного булевого флага поста.
func (s *Storage) setPostFlag(ctx context.Context, op string, id uuid.UUID, column string, value bool) error {
	query := fmt.Sprintf(`
		UPDATE posts
		SET %s = $2, updated_at = $3
		WHERE id = $1
	`, column)

	cmdTag, err := s.db.Exec(ctx, query, id, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// SetPostDeleted выставляет is_deleted (односторонний переход).
func (s *Storage) SetPostDeleted(ctx context.Context, id uuid.UUID) error {
	return s.setPostFlag(ctx, "storage.postgres.SetPostDeleted", id, "is_deleted", true)
}

// SetPostLocked управляет флагом is_locked.
func (s *Storage) SetPostLocked(ctx context.Context, id uuid.UUID, locked bool) error {
	return s.setPostFlag(ctx, "storage.postgres.SetPostLocked", id, "is_locked", locked)
}

// SetPostPinned управляет флагом is_pinned.
func (s *Storage) SetPostPinned(ctx context.Context, id uuid.UUID, pinned bool) error {
	return s.setPostFlag(ctx, "storage.postgres.SetPostPinned", id, "is_pinned", pinned)
}

// SaveAttachment фиксирует подтверждённое вложение поста.
func (s *Storage) SaveAttachment(ctx context.Context, att *models.Attachment) error {
	const op = "storage.postgres.SaveAttachment"

	query := `
		INSERT INTO attachments(id, post_id, object_key, size, mime_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := s.db.Exec(ctx, query,
		att.ID,
		att.PostID,
		att.ObjectKey,
		att.Size,
		att.MimeType,
		att.CreatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgerrcode.UniqueViolation:
				return fmt.Errorf("%s: %w", op, storage.ErrConflict)
			case pgerrcode.ForeignKeyViolation:
				return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
			}
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
