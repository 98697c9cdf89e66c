package service

// Тесты создания комментариев (internal/service/comments.go).
//
//  Проверяем:
//  - валидацию входов (trim, nil parent_id);
//  - пост не существует/удалён -> NotFound;
//  - политику залоченного поста;
//  - маппинг ParentNotFound/ParentMismatch из стораджа;
//  - happy-path корня и ответа.

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/medforum/threads-service/internal/storage"
)

func TestService_CreateComment_Validation(t *testing.T) {
	s, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	postID, authorID := uuid.New(), uuid.New()
	nilParent := uuid.Nil

	cases := []struct {
		name string
		in   CreateCommentInput
	}{
		{"empty_post", CreateCommentInput{AuthorID: authorID, Content: "c"}},
		{"empty_author", CreateCommentInput{PostID: postID, Content: "c"}},
		{"blank_content", CreateCommentInput{PostID: postID, AuthorID: authorID, Content: "  "}},
		{"nil_parent", CreateCommentInput{PostID: postID, AuthorID: authorID, Content: "c", ParentID: &nilParent}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.CreateComment(context.Background(), tc.in)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestService_CreateComment_Root(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	post := mustPost(uuid.New(), uuid.New(), uuid.New())
	authorID := uuid.New()

	ms.EXPECT().PostByID(gomock.Any(), post.ID).Return(post, nil)
	ms.EXPECT().SaveComment(gomock.Any(), gomock.Any()).Return(nil)

	comment, err := s.CreateComment(context.Background(), CreateCommentInput{
		PostID:   post.ID,
		AuthorID: authorID,
		Content:  "  agree with the assessment  ",
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, comment.ID)
	require.Nil(t, comment.ParentID)
	require.Equal(t, "agree with the assessment", comment.Content)
}

func TestService_CreateComment_Reply(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	post := mustPost(uuid.New(), uuid.New(), uuid.New())
	parentID := uuid.New()

	ms.EXPECT().PostByID(gomock.Any(), post.ID).Return(post, nil)
	ms.EXPECT().SaveComment(gomock.Any(), gomock.Any()).Return(nil)

	comment, err := s.CreateComment(context.Background(), CreateCommentInput{
		PostID:   post.ID,
		AuthorID: uuid.New(),
		ParentID: &parentID,
		Content:  "reply",
	})
	require.NoError(t, err)
	require.NotNil(t, comment.ParentID)
	require.Equal(t, parentID, *comment.ParentID)
}

func TestService_CreateComment_DeletedPost(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	post := mustPost(uuid.New(), uuid.New(), uuid.New())
	post.IsDeleted = true

	ms.EXPECT().PostByID(gomock.Any(), post.ID).Return(post, nil)

	_, err := s.CreateComment(context.Background(), CreateCommentInput{
		PostID:   post.ID,
		AuthorID: uuid.New(),
		Content:  "c",
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_CreateComment_LockedPostForbidden(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	authorID := uuid.New()
	post := mustPost(uuid.New(), uuid.New(), uuid.New())
	post.IsLocked = true

	ms.EXPECT().PostByID(gomock.Any(), post.ID).Return(post, nil)
	ms.EXPECT().CommunityByID(gomock.Any(), post.CommunityID).Return(mustCommunity(post.CommunityID, uuid.New()), nil)
	ms.EXPECT().IsModerator(gomock.Any(), post.CommunityID, authorID).Return(false, nil)

	_, err := s.CreateComment(context.Background(), CreateCommentInput{
		PostID:   post.ID,
		AuthorID: authorID,
		Content:  "c",
	})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestService_CreateComment_ParentErrors(t *testing.T) {
	cases := []struct {
		name       string
		storageErr error
		want       error
	}{
		{"parent_not_found", storage.ErrParentNotFound, ErrNotFound},
		{"parent_mismatch", storage.ErrParentMismatch, ErrInvalidArgument},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, ms, _, ctrl := newServiceWithMocks(t)
			defer ctrl.Finish()

			post := mustPost(uuid.New(), uuid.New(), uuid.New())
			parentID := uuid.New()

			ms.EXPECT().PostByID(gomock.Any(), post.ID).Return(post, nil)
			ms.EXPECT().SaveComment(gomock.Any(), gomock.Any()).Return(tc.storageErr)

			_, err := s.CreateComment(context.Background(), CreateCommentInput{
				PostID:   post.ID,
				AuthorID: uuid.New(),
				ParentID: &parentID,
				Content:  "c",
			})
			require.ErrorIs(t, err, tc.want)
		})
	}
}
