package service

// Тесты постов (internal/service/posts.go).
//
//  Проверяем:
//  - валидацию входов (trim, пустой тип -> discussion, неизвестный тип);
//  - несуществующее сообщество -> NotFound;
//  - скрытие удалённого поста при чтении;
//  - клампинг page_size и маппинг битого курсора.

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/medforum/threads-service/internal/models"
	"github.com/medforum/threads-service/internal/storage"
)

func TestService_CreatePost_HappyPath(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	communityID := uuid.New()
	authorID := uuid.New()

	ms.EXPECT().CommunityByID(gomock.Any(), communityID).Return(mustCommunity(communityID, uuid.New()), nil)
	ms.EXPECT().SavePost(gomock.Any(), gomock.Any()).Return(nil)

	post, err := s.CreatePost(context.Background(), CreatePostInput{
		CommunityID: communityID,
		AuthorID:    authorID,
		Title:       "  ECG interpretation question  ",
		Content:     " details ",
		Type:        models.PostQuestion,
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, post.ID)
	require.Equal(t, "ECG interpretation question", post.Title)
	require.Equal(t, "details", post.Content)
	require.Equal(t, models.PostQuestion, post.Type)
	require.False(t, post.IsPinned)
	require.False(t, post.IsLocked)
	require.False(t, post.IsDeleted)
}

func TestService_CreatePost_DefaultsToDiscussion(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	communityID := uuid.New()

	ms.EXPECT().CommunityByID(gomock.Any(), communityID).Return(mustCommunity(communityID, uuid.New()), nil)
	ms.EXPECT().SavePost(gomock.Any(), gomock.Any()).Return(nil)

	post, err := s.CreatePost(context.Background(), CreatePostInput{
		CommunityID: communityID,
		AuthorID:    uuid.New(),
		Title:       "title",
		Content:     "content",
	})
	require.NoError(t, err)
	require.Equal(t, models.PostDiscussion, post.Type)
}

func TestService_CreatePost_Validation(t *testing.T) {
	s, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	communityID, authorID := uuid.New(), uuid.New()

	cases := []struct {
		name string
		in   CreatePostInput
	}{
		{"empty_community", CreatePostInput{AuthorID: authorID, Title: "t", Content: "c"}},
		{"empty_author", CreatePostInput{CommunityID: communityID, Title: "t", Content: "c"}},
		{"blank_title", CreatePostInput{CommunityID: communityID, AuthorID: authorID, Title: "   ", Content: "c"}},
		{"blank_content", CreatePostInput{CommunityID: communityID, AuthorID: authorID, Title: "t", Content: "\n\t"}},
		{"bad_type", CreatePostInput{CommunityID: communityID, AuthorID: authorID, Title: "t", Content: "c", Type: "meme"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.CreatePost(context.Background(), tc.in)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestService_CreatePost_CommunityNotFound(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	communityID := uuid.New()
	ms.EXPECT().CommunityByID(gomock.Any(), communityID).Return(nil, storage.ErrNotFound)

	_, err := s.CreatePost(context.Background(), CreatePostInput{
		CommunityID: communityID,
		AuthorID:    uuid.New(),
		Title:       "t",
		Content:     "c",
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_PostByID_DeletedHidden(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	post := mustPost(uuid.New(), uuid.New(), uuid.New())
	post.IsDeleted = true

	ms.EXPECT().PostByID(gomock.Any(), post.ID).Return(post, nil)

	_, err := s.PostByID(context.Background(), post.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_ListPosts_ClampsPageSize(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	communityID := uuid.New()

	// page_size=0 -> дефолт; page_size=10000 -> максимум.
	ms.EXPECT().ListPosts(gomock.Any(), communityID, models.ListParams{PageSize: 20}).
		Return(&models.PostPage{}, nil)
	ms.EXPECT().ListPosts(gomock.Any(), communityID, models.ListParams{PageSize: 100}).
		Return(&models.PostPage{}, nil)

	_, err := s.ListPosts(context.Background(), ListPostsInput{CommunityID: communityID})
	require.NoError(t, err)

	_, err = s.ListPosts(context.Background(), ListPostsInput{CommunityID: communityID, PageSize: 10000})
	require.NoError(t, err)
}

func TestService_ListPosts_InvalidCursor(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	communityID := uuid.New()

	ms.EXPECT().ListPosts(gomock.Any(), communityID, gomock.Any()).
		Return(nil, storage.ErrInvalidCursor)

	_, err := s.ListPosts(context.Background(), ListPostsInput{
		CommunityID: communityID,
		PageToken:   "garbage",
	})
	require.ErrorIs(t, err, ErrInvalidCursor)
}
