package minio

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"

	"github.com/medforum/threads-service/internal/storage"
)

// AttachmentUploadURL генерирует presigned PUT URL для загрузки вложения.
// Содержимое вложений для ядра непрозрачно, поэтому тип не ограничивается
// allow-list'ом — проверяется только разумность размера. Ключ имеет вид
// "attachments/<postID>/<uuid>".
func (s *AttachmentsStorage) AttachmentUploadURL(ctx context.Context, postID uuid.UUID, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	op := "storage/minio/attachments/AttachmentUploadURL"

	if contentLength <= 0 || contentLength > s.cfg.S3.MaxSizeBytes {
		return nil, storage.ErrInvalidObject
	}

	if strings.TrimSpace(contentType) == "" {
		return nil, storage.ErrInvalidObject
	}

	key := path.Join("attachments", postID.String(), uuid.NewString())

	url, err := s.client.PresignedPutObject(ctx, s.cfg.S3.Bucket, key, s.cfg.S3.UploadTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	info := &storage.UploadInfo{
		UploadURL: url.String(),
		ObjectKey: key,
		Expires:   s.cfg.S3.UploadTTL,
		RequiredHeader: map[string]string{
			"Content-Type":   contentType,
			"Content-Length": fmt.Sprintf("%d", contentLength),
		},
	}

	return info, nil
}

// CheckAttachmentUpload подтверждает факт загрузки по key:
// проверяет, что объект существует, принадлежит посту и удовлетворяет
// ограничению размера. Возвращает фактические размер и content-type.
func (s *AttachmentsStorage) CheckAttachmentUpload(ctx context.Context, postID uuid.UUID, key string) (int64, string, error) {
	op := "storage/minio/attachments/CheckAttachmentUpload"

	prefix := "attachments/" + postID.String() + "/"
	if !strings.HasPrefix(key, prefix) {
		return 0, "", storage.ErrInvalidObject
	}

	objInfo, err := s.client.StatObject(ctx, s.cfg.S3.Bucket, key, mclient.StatObjectOptions{})
	if err != nil {
		errResp := mclient.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.StatusCode == 404 {
			return 0, "", storage.ErrNotFoundObject
		}

		return 0, "", fmt.Errorf("%s: %w", op, err)
	}

	if objInfo.Size <= 0 || objInfo.Size > s.cfg.S3.MaxSizeBytes {
		return 0, "", storage.ErrInvalidObject
	}

	return objInfo.Size, objInfo.ContentType, nil
}
