package handlers

import (
	"net/http"

	"github.com/medforum/threads-service/internal/models"
	"github.com/medforum/threads-service/internal/service"
	"github.com/medforum/threads-service/internal/transport/http/httperr"
)

// castVoteRequest — тело POST /v1/votes/{target_type}/{target_id}.
type castVoteRequest struct {
	Direction string `json:"direction"`
}

// scoreResponse — агрегат голосов цели.
type scoreResponse struct {
	Upvotes    int64   `json:"upvotes"`
	Downvotes  int64   `json:"downvotes"`
	Value      int64   `json:"value"`
	ViewerVote *string `json:"viewer_vote,omitempty"`
}

// voteResultResponse — исход мутации + авторитетный счёт после неё.
type voteResultResponse struct {
	Outcome string        `json:"outcome"`
	Score   scoreResponse `json:"score"`
}

func toScoreResponse(s models.Score) scoreResponse {
	out := scoreResponse{
		Upvotes:   s.Upvotes,
		Downvotes: s.Downvotes,
		Value:     s.Value,
	}
	if s.ViewerVote != nil {
		v := string(*s.ViewerVote)
		out.ViewerVote = &v
	}

	return out
}

// CastVote — POST /v1/votes/{target_type}/{target_id}.
//
// Семантика upsert-or-toggle: created / removed / changed.
// Требует аутентифицированного пользователя.
func (h *Handlers) CastVote(w http.ResponseWriter, r *http.Request) {
	userID, err := requireUser(r)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	targetID, err := pathUUID(r, "target_id")
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	var req castVoteRequest
	if err := decodeStrict(r, &req); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	result, err := h.service.CastVote(r.Context(), service.CastVoteInput{
		UserID:    userID,
		Target:    models.TargetType(pathTargetType(r)),
		TargetID:  targetID,
		Direction: models.VoteDirection(req.Direction),
	})
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, voteResultResponse{
		Outcome: string(result.Outcome),
		Score:   toScoreResponse(result.Score),
	})
}
