package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/medforum/threads-service/internal/models"
	"github.com/medforum/threads-service/internal/service"
	"github.com/medforum/threads-service/internal/transport/http/httperr"
)

// createCommentRequest — тело POST /v1/posts/{post_id}/comments.
// parent_id отсутствует или null для корневого комментария.
type createCommentRequest struct {
	ParentID *string `json:"parent_id,omitempty"`
	Content  string  `json:"content"`
}

// commentResponse — комментарий наружу. Для мягко удалённого content
// уже замаскирован сервисным слоем.
type commentResponse struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	ParentID  *string   `json:"parent_id,omitempty"`
	Content   string    `json:"content"`
	IsDeleted bool      `json:"is_deleted"`
	CreatedAt time.Time `json:"created_at"`
}

// commentNodeResponse — узел дерева ответов: комментарий, его счёт и дети.
type commentNodeResponse struct {
	Comment commentResponse       `json:"comment"`
	Score   scoreResponse         `json:"score"`
	Replies []commentNodeResponse `json:"replies"`
}

// commentTreeResponse — корневой объект GET /v1/posts/{post_id}/comments.
type commentTreeResponse struct {
	Roots []commentNodeResponse `json:"roots"`
}

func toCommentResponse(c models.Comment) commentResponse {
	out := commentResponse{
		ID:        c.ID.String(),
		PostID:    c.PostID.String(),
		AuthorID:  c.AuthorID.String(),
		Content:   c.Content,
		IsDeleted: c.IsDeleted,
		CreatedAt: c.CreatedAt,
	}
	if c.ParentID != nil {
		p := c.ParentID.String()
		out.ParentID = &p
	}

	return out
}

func toCommentNodes(nodes []*models.CommentNode) []commentNodeResponse {
	out := make([]commentNodeResponse, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, commentNodeResponse{
			Comment: toCommentResponse(n.Comment),
			Score:   toScoreResponse(n.Score),
			Replies: toCommentNodes(n.Replies),
		})
	}

	return out
}

// CreateComment — POST /v1/posts/{post_id}/comments.
func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
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

	var req createCommentRequest
	if err := decodeStrict(r, &req); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	var parentID *uuid.UUID
	if req.ParentID != nil {
		id, err := parseUUIDField(*req.ParentID, "parent_id")
		if err != nil {
			httperr.WriteError(w, r, err)
			return
		}
		parentID = &id
	}

	comment, err := h.service.CreateComment(r.Context(), service.CreateCommentInput{
		PostID:   postID,
		AuthorID: userID,
		ParentID: parentID,
		Content:  req.Content,
	})
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCommentResponse(*comment))
}

// CommentTree — GET /v1/posts/{post_id}/comments?sort=.
// Возвращает полное дерево ответов; sort по умолчанию newest.
func (h *Handlers) CommentTree(w http.ResponseWriter, r *http.Request) {
	postID, err := pathUUID(r, "post_id")
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	roots, err := h.service.CommentTree(
		r.Context(),
		postID,
		viewerFrom(r),
		models.CommentSort(r.URL.Query().Get("sort")),
	)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, commentTreeResponse{Roots: toCommentNodes(roots)})
}

// DeleteComment — DELETE /v1/comments/{comment_id} (автор или модератор).
func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	commentID, err := pathUUID(r, "comment_id")
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	if err := h.service.DeleteComment(r.Context(), commentID, userID); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
