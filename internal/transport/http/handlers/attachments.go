package handlers

import (
	"net/http"
	"time"

	"github.com/medforum/threads-service/internal/service"
	"github.com/medforum/threads-service/internal/transport/http/httperr"
)

// uploadURLRequest — тело POST /v1/posts/{post_id}/attachments/upload-url.
type uploadURLRequest struct {
	ContentType   string `json:"content_type"`
	ContentLength int64  `json:"content_length"`
}

// uploadURLResponse — presigned PUT для загрузки вложения в бакет.
type uploadURLResponse struct {
	UploadURL      string            `json:"upload_url"`
	ObjectKey      string            `json:"object_key"`
	ExpiresSec     int64             `json:"expires_sec"`
	RequiredHeader map[string]string `json:"required_header,omitempty"`
}

// confirmAttachmentRequest — тело POST /v1/posts/{post_id}/attachments/confirm.
type confirmAttachmentRequest struct {
	ObjectKey string `json:"object_key"`
}

// attachmentResponse — зафиксированное вложение поста.
type attachmentResponse struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	ObjectKey string    `json:"object_key"`
	Size      int64     `json:"size"`
	MimeType  string    `json:"mime_type"`
	CreatedAt time.Time `json:"created_at"`
}

// AttachmentUploadURL — POST /v1/posts/{post_id}/attachments/upload-url.
// Выдаёт presigned PUT; доступно только автору неудалённого поста.
func (h *Handlers) AttachmentUploadURL(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	postID, err := pathUUID(r, "post_id")
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	var req uploadURLRequest
	if err := decodeStrict(r, &req); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	info, err := h.service.AttachmentUploadURL(r.Context(), service.AttachmentUploadInput{
		PostID:        postID,
		UserID:        userID,
		ContentType:   req.ContentType,
		ContentLength: req.ContentLength,
	})
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, uploadURLResponse{
		UploadURL:      info.UploadURL,
		ObjectKey:      info.ObjectKey,
		ExpiresSec:     int64(info.Expires / time.Second),
		RequiredHeader: info.RequiredHeader,
	})
}

// ConfirmAttachment — POST /v1/posts/{post_id}/attachments/confirm.
// Сверяет факт загрузки с бакетом и фиксирует вложение в БД.
func (h *Handlers) ConfirmAttachment(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	postID, err := pathUUID(r, "post_id")
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	var req confirmAttachmentRequest
	if err := decodeStrict(r, &req); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	att, err := h.service.ConfirmAttachment(r.Context(), service.ConfirmAttachmentInput{
		PostID:    postID,
		UserID:    userID,
		ObjectKey: req.ObjectKey,
	})
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, attachmentResponse{
		ID:        att.ID.String(),
		PostID:    att.PostID.String(),
		ObjectKey: att.ObjectKey,
		Size:      att.Size,
		MimeType:  att.MimeType,
		CreatedAt: att.CreatedAt,
	})
}
