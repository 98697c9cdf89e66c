package handlers

import (
	"net/http"
	"time"

	"github.com/medforum/threads-service/internal/models"
	"github.com/medforum/threads-service/internal/transport/http/httperr"
)

// karmaResponse — снапшот кармы пользователя.
type karmaResponse struct {
	UserID       string    `json:"user_id"`
	PostKarma    int64     `json:"post_karma"`
	CommentKarma int64     `json:"comment_karma"`
	AwardKarma   int64     `json:"award_karma"`
	TotalKarma   int64     `json:"total_karma"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// recomputeReportResponse — итог батч-пересчёта.
type recomputeReportResponse struct {
	Total  int `json:"total"`
	Failed int `json:"failed"`
}

func toKarmaResponse(k models.Karma) karmaResponse {
	return karmaResponse{
		UserID:       k.UserID.String(),
		PostKarma:    k.PostKarma,
		CommentKarma: k.CommentKarma,
		AwardKarma:   k.AwardKarma,
		TotalKarma:   k.TotalKarma,
		UpdatedAt:    k.UpdatedAt,
	}
}

// Karma — GET /v1/users/{user_id}/karma.
func (h *Handlers) Karma(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "user_id")
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	karma, err := h.service.Karma(r.Context(), userID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toKarmaResponse(*karma))
}

// RecomputeKarma — POST /v1/users/{user_id}/karma/recompute.
// Полный идемпотентный пересчёт из реестра голосов; award-карма не трогается.
func (h *Handlers) RecomputeKarma(w http.ResponseWriter, r *http.Request) {
	if _, err := requireUser(r); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	userID, err := pathUUID(r, "user_id")
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	karma, err := h.service.RecomputeKarma(r.Context(), userID)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toKarmaResponse(*karma))
}

// RecomputeAllKarma — POST /v1/karma/recompute — батч по всем пользователям.
// Сбой одного пользователя не прерывает остальных; итог в отчёте.
func (h *Handlers) RecomputeAllKarma(w http.ResponseWriter, r *http.Request) {
	if _, err := requireUser(r); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	report, err := h.service.RecomputeAllKarma(r.Context())
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, recomputeReportResponse{
		Total:  report.Total,
		Failed: report.Failed,
	})
}
