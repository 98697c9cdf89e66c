package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/medforum/threads-service/internal/models"
	"github.com/medforum/threads-service/internal/transport/http/httperr"
)

// Верхняя граница размера батча /scores — защита от произвольно
// тяжёлых IN-запросов.
const maxScoreBatch = 200

// scoresBatchResponse — карта target_id -> score.
type scoresBatchResponse struct {
	Scores map[string]scoreResponse `json:"scores"`
}

// pathTargetType — значение URL-параметра {target_type} (валидирует сервис).
func pathTargetType(r *http.Request) string {
	return chi.URLParam(r, "target_type")
}

// Score — GET /v1/scores/{target_type}/{target_id}.
// Доступен анониму; viewer_vote появляется только для аутентифицированного.
func (h *Handlers) Score(w http.ResponseWriter, r *http.Request) {
	targetID, err := pathUUID(r, "target_id")
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	score, err := h.service.Score(r.Context(), models.TargetType(pathTargetType(r)), targetID, viewerFrom(r))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toScoreResponse(*score))
}

// Scores — GET /v1/scores/{target_type}?ids=a,b,c — батч для лент.
// Каждый запрошенный id присутствует в ответе (нулевой счёт для целей
// без голосов), чтобы фронт не делал своих предположений о пропусках.
func (h *Handlers) Scores(w http.ResponseWriter, r *http.Request) {
	raw := strings.Split(r.URL.Query().Get("ids"), ",")

	ids := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}

		id, err := uuid.Parse(s)
		if err != nil {
			httperr.WriteError(w, r, pathErrInvalid("ids"))
			return
		}
		ids = append(ids, id)
	}

	if len(ids) > maxScoreBatch {
		httperr.WriteError(w, r, pathErrInvalid("ids"))
		return
	}

	scores, err := h.service.Scores(r.Context(), models.TargetType(pathTargetType(r)), ids, viewerFrom(r))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	resp := scoresBatchResponse{Scores: make(map[string]scoreResponse, len(scores))}
	for id, sc := range scores {
		resp.Scores[id.String()] = toScoreResponse(sc)
	}

	writeJSON(w, http.StatusOK, resp)
}
