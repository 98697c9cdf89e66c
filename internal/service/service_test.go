package service

// Общие хелперы тестов сервисного слоя.
//
// Подготовка окружения:
//   go test ./internal/service -v -race -count=1
//
// Примечание: моки сгенерированы в пакете /mocks (MockStorage,
// MockAttachmentsStorage).

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"

	"github.com/medforum/threads-service/internal/config"
	"github.com/medforum/threads-service/internal/models"
	"github.com/medforum/threads-service/mocks"
)

func newServiceWithMocks(t *testing.T) (*Service, *mocks.MockStorage, *mocks.MockAttachmentsStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ms := mocks.NewMockStorage(ctrl)
	ma := mocks.NewMockAttachmentsStorage(ctrl)

	cfg := config.Config{
		Limits: config.LimitsConfig{Default: 20, Max: 100},
	}

	s := New(ms, ma, cfg)
	return s, ms, ma, ctrl
}

// mustPost — быстрый хелпер для сборки поста.
func mustPost(id, communityID, authorID uuid.UUID) *models.Post {
	now := time.Now().UTC()
	return &models.Post{
		ID:          id,
		CommunityID: communityID,
		AuthorID:    authorID,
		Title:       "case: persistent cough",
		Content:     "details",
		Type:        models.PostDiscussion,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// mustComment — быстрый хелпер для сборки комментария.
func mustComment(id, postID, authorID uuid.UUID, parentID *uuid.UUID, createdAt time.Time) models.Comment {
	return models.Comment{
		ID:        id,
		PostID:    postID,
		AuthorID:  authorID,
		ParentID:  parentID,
		Content:   "comment",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

// mustCommunity — сообщество с заданным владельцем.
func mustCommunity(id, ownerID uuid.UUID) *models.Community {
	return &models.Community{
		ID:      id,
		OwnerID: ownerID,
		Name:    "pulmonology",
	}
}
