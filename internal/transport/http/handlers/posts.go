package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/medforum/threads-service/internal/models"
	"github.com/medforum/threads-service/internal/service"
	"github.com/medforum/threads-service/internal/transport/http/httperr"
)

// createPostRequest — тело POST /v1/posts.
type createPostRequest struct {
	CommunityID string `json:"community_id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Type        string `json:"type,omitempty"`
}

// postResponse — публикация наружу.
type postResponse struct {
	ID          string    `json:"id"`
	CommunityID string    `json:"community_id"`
	AuthorID    string    `json:"author_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Type        string    `json:"type"`
	IsPinned    bool      `json:"is_pinned"`
	IsLocked    bool      `json:"is_locked"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// postPageResponse — страница выдачи постов сообщества.
type postPageResponse struct {
	Items         []postResponse `json:"items"`
	NextPageToken string         `json:"next_page_token,omitempty"`
}

// setFlagRequest — тело PUT /v1/posts/{id}/lock|pin.
type setFlagRequest struct {
	Value bool `json:"value"`
}

func toPostResponse(p models.Post) postResponse {
	return postResponse{
		ID:          p.ID.String(),
		CommunityID: p.CommunityID.String(),
		AuthorID:    p.AuthorID.String(),
		Title:       p.Title,
		Content:     p.Content,
		Type:        string(p.Type),
		IsPinned:    p.IsPinned,
		IsLocked:    p.IsLocked,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// CreatePost — POST /v1/posts.
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	var req createPostRequest
	if err := decodeStrict(r, &req); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	communityID, err := parseUUIDField(req.CommunityID, "community_id")
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	post, err := h.service.CreatePost(r.Context(), service.CreatePostInput{
		CommunityID: communityID,
		AuthorID:    userID,
		Title:       req.Title,
		Content:     req.Content,
		Type:        models.PostType(req.Type),
	})
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toPostResponse(*post))
}

// Post — GET /v1/posts/{post_id}. Мягко удалённый пост наружу не отдаётся.
func (h *Handlers) Post(w http.ResponseWriter, r *http.Request) {
	postID, err := pathUUID(r, "post_id")
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	post, err := h.service.PostByID(r.Context(), postID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPostResponse(*post))
}

// ListPosts — GET /v1/communities/{community_id}/posts?page_size=&page_token=.
// Закреплённые первыми, дальше новые; keyset-пагинация.
func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	communityID, err := pathUUID(r, "community_id")
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	var size int32
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || n < 0 {
			httperr.WriteError(w, r, pathErrInvalid("page_size"))
			return
		}
		size = int32(n)
	}

	page, err := h.service.ListPosts(r.Context(), service.ListPostsInput{
		CommunityID: communityID,
		PageSize:    size,
		PageToken:   r.URL.Query().Get("page_token"),
	})
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	resp := postPageResponse{
		Items:         make([]postResponse, 0, len(page.Items)),
		NextPageToken: page.NextPageToken,
	}
	for _, p := range page.Items {
		resp.Items = append(resp.Items, toPostResponse(p))
	}

	writeJSON(w, http.StatusOK, resp)
}

// DeletePost — DELETE /v1/posts/{post_id} (автор или модератор).
func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
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

	if err := h.service.DeletePost(r.Context(), postID, userID); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetPostLocked — PUT /v1/posts/{post_id}/lock (только модератор).
func (h *Handlers) SetPostLocked(w http.ResponseWriter, r *http.Request) {
	h.setPostFlag(w, r, h.service.SetPostLocked)
}

// SetPostPinned — PUT /v1/posts/{post_id}/pin (только модератор).
func (h *Handlers) SetPostPinned(w http.ResponseWriter, r *http.Request) {
	h.setPostFlag(w, r, h.service.SetPostPinned)
}

func (h *Handlers) setPostFlag(
	w http.ResponseWriter,
	r *http.Request,
	apply func(ctx context.Context, postID, actorID uuid.UUID, value bool) error,
) {
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

	var req setFlagRequest
	if err := decodeStrict(r, &req); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	if err := apply(r.Context(), postID, userID, req.Value); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
