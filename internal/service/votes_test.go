package service

// Тесты бизнес-операции голосования (internal/service/votes.go).
//
//  Проверяем:
//  - валидацию входов (пустые id, неизвестный тип цели, нулевое направление);
//  - маппинг ошибок storage -> service (NotFound / Conflict / Internal);
//  - политику залоченного поста (модератор может, обычный пользователь — нет);
//  - исходы created/removed/changed и авторитетный счёт в ответе;
//  - голос за комментарий резолвится через его пост.

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/medforum/threads-service/internal/models"
	"github.com/medforum/threads-service/internal/storage"
)

func TestService_CastVote_InvalidArgument(t *testing.T) {
	s, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()
	targetID := uuid.New()

	cases := []struct {
		name string
		in   CastVoteInput
	}{
		{"empty_user", CastVoteInput{Target: models.TargetPost, TargetID: targetID, Direction: models.VoteUp}},
		{"empty_target_id", CastVoteInput{UserID: userID, Target: models.TargetPost, Direction: models.VoteUp}},
		{"bad_target_type", CastVoteInput{UserID: userID, Target: "thread", TargetID: targetID, Direction: models.VoteUp}},
		{"empty_direction", CastVoteInput{UserID: userID, Target: models.TargetPost, TargetID: targetID}},
		{"bad_direction", CastVoteInput{UserID: userID, Target: models.TargetPost, TargetID: targetID, Direction: "sideways"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.CastVote(ctx, tc.in)
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestService_CastVote_TargetNotFound(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	targetID := uuid.New()

	ms.EXPECT().PostByID(gomock.Any(), targetID).Return(nil, storage.ErrNotFound)

	_, err := s.CastVote(ctx, CastVoteInput{
		UserID:    uuid.New(),
		Target:    models.TargetPost,
		TargetID:  targetID,
		Direction: models.VoteUp,
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_CastVote_DeletedTargetNotFound(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	post := mustPost(uuid.New(), uuid.New(), uuid.New())
	post.IsDeleted = true

	ms.EXPECT().PostByID(gomock.Any(), post.ID).Return(post, nil)

	_, err := s.CastVote(ctx, CastVoteInput{
		UserID:    uuid.New(),
		Target:    models.TargetPost,
		TargetID:  post.ID,
		Direction: models.VoteDown,
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_CastVote_LockedPostForbidden(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	voterID := uuid.New()
	post := mustPost(uuid.New(), uuid.New(), uuid.New())
	post.IsLocked = true

	ms.EXPECT().PostByID(gomock.Any(), post.ID).Return(post, nil)
	ms.EXPECT().CommunityByID(gomock.Any(), post.CommunityID).Return(mustCommunity(post.CommunityID, uuid.New()), nil)
	ms.EXPECT().IsModerator(gomock.Any(), post.CommunityID, voterID).Return(false, nil)

	_, err := s.CastVote(ctx, CastVoteInput{
		UserID:    voterID,
		Target:    models.TargetPost,
		TargetID:  post.ID,
		Direction: models.VoteUp,
	})
	require.ErrorIs(t, err, ErrForbidden)
}

func TestService_CastVote_LockedPostModeratorAllowed(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	voterID := uuid.New()
	post := mustPost(uuid.New(), uuid.New(), uuid.New())
	post.IsLocked = true

	ms.EXPECT().PostByID(gomock.Any(), post.ID).Return(post, nil)
	ms.EXPECT().CommunityByID(gomock.Any(), post.CommunityID).Return(mustCommunity(post.CommunityID, uuid.New()), nil)
	ms.EXPECT().IsModerator(gomock.Any(), post.CommunityID, voterID).Return(true, nil)
	ms.EXPECT().UpsertVote(gomock.Any(), voterID, models.TargetPost, post.ID, int16(1)).Return(models.VoteCreated, nil)
	ms.EXPECT().VoteCounts(gomock.Any(), models.TargetPost, []uuid.UUID{post.ID}).
		Return(map[uuid.UUID]models.VoteCounts{post.ID: {Upvotes: 1}}, nil)
	ms.EXPECT().ViewerVotes(gomock.Any(), voterID, models.TargetPost, []uuid.UUID{post.ID}).
		Return(map[uuid.UUID]int16{post.ID: 1}, nil)

	result, err := s.CastVote(ctx, CastVoteInput{
		UserID:    voterID,
		Target:    models.TargetPost,
		TargetID:  post.ID,
		Direction: models.VoteUp,
	})
	require.NoError(t, err)
	require.Equal(t, models.VoteCreated, result.Outcome)
	require.EqualValues(t, 1, result.Score.Value)
}

func TestService_CastVote_Outcomes(t *testing.T) {
	cases := []struct {
		name      string
		direction models.VoteDirection
		value     int16
		outcome   models.VoteOutcome
		up, down  int64
		viewer    map[uuid.UUID]int16
	}{
		{"created_up", models.VoteUp, 1, models.VoteCreated, 3, 1, nil},
		{"removed", models.VoteUp, 1, models.VoteRemoved, 2, 1, nil},
		{"changed_down", models.VoteDown, -1, models.VoteChanged, 2, 2, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, ms, _, ctrl := newServiceWithMocks(t)
			defer ctrl.Finish()

			ctx := context.Background()
			voterID := uuid.New()
			post := mustPost(uuid.New(), uuid.New(), uuid.New())

			viewer := tc.viewer
			if viewer == nil {
				viewer = map[uuid.UUID]int16{}
			}

			ms.EXPECT().PostByID(gomock.Any(), post.ID).Return(post, nil)
			ms.EXPECT().UpsertVote(gomock.Any(), voterID, models.TargetPost, post.ID, tc.value).Return(tc.outcome, nil)
			ms.EXPECT().VoteCounts(gomock.Any(), models.TargetPost, []uuid.UUID{post.ID}).
				Return(map[uuid.UUID]models.VoteCounts{post.ID: {Upvotes: tc.up, Downvotes: tc.down}}, nil)
			ms.EXPECT().ViewerVotes(gomock.Any(), voterID, models.TargetPost, []uuid.UUID{post.ID}).
				Return(viewer, nil)

			result, err := s.CastVote(ctx, CastVoteInput{
				UserID:    voterID,
				Target:    models.TargetPost,
				TargetID:  post.ID,
				Direction: tc.direction,
			})
			require.NoError(t, err)
			require.Equal(t, tc.outcome, result.Outcome)
			require.Equal(t, tc.up, result.Score.Upvotes)
			require.Equal(t, tc.down, result.Score.Downvotes)
			require.Equal(t, tc.up-tc.down, result.Score.Value)
		})
	}
}

// Голос за комментарий резолвится через пост комментария: политика локов
// действует и на ветки залоченного поста.
func TestService_CastVote_CommentTarget(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	voterID := uuid.New()
	post := mustPost(uuid.New(), uuid.New(), uuid.New())
	comment := mustComment(uuid.New(), post.ID, uuid.New(), nil, post.CreatedAt)

	ms.EXPECT().CommentByID(gomock.Any(), comment.ID).Return(&comment, nil)
	ms.EXPECT().PostByID(gomock.Any(), post.ID).Return(post, nil)
	ms.EXPECT().UpsertVote(gomock.Any(), voterID, models.TargetComment, comment.ID, int16(-1)).Return(models.VoteCreated, nil)
	ms.EXPECT().VoteCounts(gomock.Any(), models.TargetComment, []uuid.UUID{comment.ID}).
		Return(map[uuid.UUID]models.VoteCounts{comment.ID: {Downvotes: 1}}, nil)
	ms.EXPECT().ViewerVotes(gomock.Any(), voterID, models.TargetComment, []uuid.UUID{comment.ID}).
		Return(map[uuid.UUID]int16{comment.ID: -1}, nil)

	result, err := s.CastVote(ctx, CastVoteInput{
		UserID:    voterID,
		Target:    models.TargetComment,
		TargetID:  comment.ID,
		Direction: models.VoteDown,
	})
	require.NoError(t, err)
	require.Equal(t, models.VoteCreated, result.Outcome)
	require.EqualValues(t, -1, result.Score.Value)
	require.NotNil(t, result.Score.ViewerVote)
	require.Equal(t, models.VoteDown, *result.Score.ViewerVote)
}

func TestService_CastVote_InsertRaceConflict(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	voterID := uuid.New()
	post := mustPost(uuid.New(), uuid.New(), uuid.New())

	ms.EXPECT().PostByID(gomock.Any(), post.ID).Return(post, nil)
	ms.EXPECT().UpsertVote(gomock.Any(), voterID, models.TargetPost, post.ID, int16(1)).
		Return(models.VoteOutcome(""), storage.ErrConflict)

	_, err := s.CastVote(ctx, CastVoteInput{
		UserID:    voterID,
		Target:    models.TargetPost,
		TargetID:  post.ID,
		Direction: models.VoteUp,
	})
	require.ErrorIs(t, err, ErrConflict)
}

func TestService_CastVote_StorageInternal(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ctx := context.Background()
	targetID := uuid.New()

	ms.EXPECT().PostByID(gomock.Any(), targetID).Return(nil, errors.New("connection reset"))

	_, err := s.CastVote(ctx, CastVoteInput{
		UserID:    uuid.New(),
		Target:    models.TargetPost,
		TargetID:  targetID,
		Direction: models.VoteUp,
	})
	require.ErrorIs(t, err, ErrInternal)
}
