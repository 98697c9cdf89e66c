package storage

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFoundObject — объект (ключ) отсутствует в бакете.
	ErrNotFoundObject = errors.New("not found")
	// ErrInvalidObject — нарушены ограничения загрузки (размер/ключ).
	ErrInvalidObject = errors.New("invalid object")
)

// UploadInfo — информация для клиента о presigned PUT загрузке.
//   - UploadURL: конечный URL для PUT-запроса.
//   - ObjectKey: ключ будущего объекта в бакете.
//   - Expires: время жизни подписи.
//   - RequiredHeader: заголовки, которые клиент ОБЯЗАН передать при PUT (например Content-Type).
type UploadInfo struct {
	UploadURL      string
	ObjectKey      string
	Expires        time.Duration
	RequiredHeader map[string]string
}

// Attachments — контракт генерации presigned URL и подтверждения факта загрузки.
type Attachments interface {
	// AttachmentUploadURL генерирует presigned PUT для вложения поста.
	// Внутри — валидация contentType и contentLength.
	AttachmentUploadURL(ctx context.Context, postID uuid.UUID, contentType string, contentLength int64) (*UploadInfo, error)
	// CheckAttachmentUpload проверяет факт загрузки по key (наличие, размер).
	// Возвращает фактические размер и content-type объекта.
	CheckAttachmentUpload(ctx context.Context, postID uuid.UUID, key string) (size int64, contentType string, err error)
}

// AttachmentsStorage — алиас-обёртка для внедрения зависимости.
type AttachmentsStorage interface {
	Attachments
}
