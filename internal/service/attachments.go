package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/medforum/threads-service/internal/models"
	"github.com/medforum/threads-service/internal/storage"
	"github.com/medforum/threads-service/pkg/log"
)

// AttachmentUploadInput — запрос presigned PUT для вложения поста.
type AttachmentUploadInput struct {
	PostID        uuid.UUID
	UserID        uuid.UUID
	ContentType   string
	ContentLength int64
}

// AttachmentUploadURL выдаёт presigned PUT URL для загрузки вложения.
// Прикладывать вложения может только автор неудалённого поста.
func (s *Service) AttachmentUploadURL(ctx context.Context, in AttachmentUploadInput) (*storage.UploadInfo, error) {
	const op = "service/attachments/AttachmentUploadURL"

	lg := log.From(ctx).With("op", op, "post_id", in.PostID.String(), "user_id", in.UserID.String())

	if in.PostID == uuid.Nil || in.UserID == uuid.Nil {
		lg.Warn("invalid argument: empty post_id or user_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.ensureAttachmentOwner(ctx, lg, op, in.PostID, in.UserID); err != nil {
		return nil, err
	}

	info, err := s.attachments.AttachmentUploadURL(ctx, in.PostID, in.ContentType, in.ContentLength)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidObject):
			lg.Warn("upload constraints violated")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		default:
			lg.Error("object storage error on presign", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return info, nil
}

// ConfirmAttachmentInput — подтверждение загрузки вложения.
type ConfirmAttachmentInput struct {
	PostID    uuid.UUID
	UserID    uuid.UUID
	ObjectKey string
}

// ConfirmAttachment подтверждает факт загрузки (наличие и размер объекта
// в бакете) и фиксирует вложение в БД.
func (s *Service) ConfirmAttachment(ctx context.Context, in ConfirmAttachmentInput) (*models.Attachment, error) {
	const op = "service/attachments/ConfirmAttachment"

	lg := log.From(ctx).With("op", op, "post_id", in.PostID.String(), "user_id", in.UserID.String())

	if in.PostID == uuid.Nil || in.UserID == uuid.Nil {
		lg.Warn("invalid argument: empty post_id or user_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	in.ObjectKey = strings.TrimSpace(in.ObjectKey)
	if in.ObjectKey == "" {
		lg.Warn("invalid argument: empty object key")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.ensureAttachmentOwner(ctx, lg, op, in.PostID, in.UserID); err != nil {
		return nil, err
	}

	size, contentType, err := s.attachments.CheckAttachmentUpload(ctx, in.PostID, in.ObjectKey)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFoundObject):
			lg.Warn("object not found in bucket")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrInvalidObject):
			lg.Warn("object violates upload constraints")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		default:
			lg.Error("object storage error on confirm", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	att := &models.Attachment{
		ID:        uuid.New(),
		PostID:    in.PostID,
		ObjectKey: in.ObjectKey,
		Size:      size,
		MimeType:  contentType,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.storage.SaveAttachment(ctx, att); err != nil {
		switch {
		case errors.Is(err, storage.ErrConflict):
			lg.Warn("attachment already confirmed")
			return nil, fmt.Errorf("%s: %w", op, ErrConflict)
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("post reference broken")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on SaveAttachment", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return att, nil
}

// ensureAttachmentOwner — пост существует, не удалён и принадлежит пользователю.
func (s *Service) ensureAttachmentOwner(ctx context.Context, lg *slog.Logger, op string, postID, userID uuid.UUID) error {
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

	if post.AuthorID != userID {
		lg.Warn("user is not the post author")
		return fmt.Errorf("%s: %w", op, ErrForbidden)
	}

	return nil
}
