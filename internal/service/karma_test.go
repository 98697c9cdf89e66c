package service

// Тесты пересчёта кармы (internal/service/karma.go).
//
//  Проверяем:
//  - валидацию входов и несуществующего пользователя;
//  - передачу сумм из реестра в upsert (award-карма не трогается сервисом);
//  - идемпотентность пересчёта;
//  - изоляцию сбоев в батче и остановку по отмене контекста;
//  - чтение сохранённой записи.

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/medforum/threads-service/internal/models"
	"github.com/medforum/threads-service/internal/storage"
)

func TestService_RecomputeKarma_InvalidArgument(t *testing.T) {
	s, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.RecomputeKarma(context.Background(), uuid.Nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestService_RecomputeKarma_UserNotFound(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	userID := uuid.New()
	ms.EXPECT().UserByID(gomock.Any(), userID).Return(nil, storage.ErrNotFound)

	_, err := s.RecomputeKarma(context.Background(), userID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_RecomputeKarma_HappyPath(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	userID := uuid.New()
	want := &models.Karma{
		UserID:       userID,
		PostKarma:    12,
		CommentKarma: -3,
		AwardKarma:   50,
		TotalKarma:   59,
		UpdatedAt:    time.Now().UTC(),
	}

	ms.EXPECT().UserByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil)
	ms.EXPECT().PostKarmaSum(gomock.Any(), userID).Return(int64(12), nil)
	ms.EXPECT().CommentKarmaSum(gomock.Any(), userID).Return(int64(-3), nil)
	ms.EXPECT().UpsertKarma(gomock.Any(), userID, int64(12), int64(-3)).Return(want, nil)

	karma, err := s.RecomputeKarma(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, want, karma)
	// Награды пережили пересчёт: сервис их не пересчитывает и не обнуляет.
	require.EqualValues(t, 50, karma.AwardKarma)
}

// Пересчёт без новых голосов идемпотентен: повторный вызов делает
// идентичный upsert и возвращает идентичный снапшот.
func TestService_RecomputeKarma_Idempotent(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	userID := uuid.New()
	snapshot := &models.Karma{UserID: userID, PostKarma: 4, CommentKarma: 1, TotalKarma: 5}

	ms.EXPECT().UserByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil).Times(2)
	ms.EXPECT().PostKarmaSum(gomock.Any(), userID).Return(int64(4), nil).Times(2)
	ms.EXPECT().CommentKarmaSum(gomock.Any(), userID).Return(int64(1), nil).Times(2)
	ms.EXPECT().UpsertKarma(gomock.Any(), userID, int64(4), int64(1)).Return(snapshot, nil).Times(2)

	first, err := s.RecomputeKarma(context.Background(), userID)
	require.NoError(t, err)
	second, err := s.RecomputeKarma(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

// Нулевая активность даёт явную нулевую запись, а не отсутствие записи.
func TestService_RecomputeKarma_ExplicitZero(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	userID := uuid.New()

	ms.EXPECT().UserByID(gomock.Any(), userID).Return(&models.User{ID: userID}, nil)
	ms.EXPECT().PostKarmaSum(gomock.Any(), userID).Return(int64(0), nil)
	ms.EXPECT().CommentKarmaSum(gomock.Any(), userID).Return(int64(0), nil)
	ms.EXPECT().UpsertKarma(gomock.Any(), userID, int64(0), int64(0)).
		Return(&models.Karma{UserID: userID}, nil)

	karma, err := s.RecomputeKarma(context.Background(), userID)
	require.NoError(t, err)
	require.Zero(t, karma.TotalKarma)
}

func TestService_RecomputeAllKarma_FailureIsolation(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	good, bad := uuid.New(), uuid.New()

	ms.EXPECT().UserIDs(gomock.Any()).Return([]uuid.UUID{bad, good}, nil)

	// Первый пользователь падает на чтении сумм — второй всё равно пересчитан.
	ms.EXPECT().UserByID(gomock.Any(), bad).Return(&models.User{ID: bad}, nil)
	ms.EXPECT().PostKarmaSum(gomock.Any(), bad).Return(int64(0), errors.New("deadlock"))

	ms.EXPECT().UserByID(gomock.Any(), good).Return(&models.User{ID: good}, nil)
	ms.EXPECT().PostKarmaSum(gomock.Any(), good).Return(int64(2), nil)
	ms.EXPECT().CommentKarmaSum(gomock.Any(), good).Return(int64(0), nil)
	ms.EXPECT().UpsertKarma(gomock.Any(), good, int64(2), int64(0)).
		Return(&models.Karma{UserID: good, PostKarma: 2, TotalKarma: 2}, nil)

	report, err := s.RecomputeAllKarma(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, report.Total)
	require.Equal(t, 1, report.Failed)
}

func TestService_RecomputeAllKarma_Canceled(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().UserIDs(gomock.Any()).Return([]uuid.UUID{uuid.New()}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.RecomputeAllKarma(ctx)
	require.ErrorIs(t, err, ErrInternal)
}

func TestService_Karma_NotFound(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	userID := uuid.New()
	ms.EXPECT().KarmaByUser(gomock.Any(), userID).Return(nil, storage.ErrNotFound)

	_, err := s.Karma(context.Background(), userID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_Karma_HappyPath(t *testing.T) {
	s, ms, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	userID := uuid.New()
	want := &models.Karma{UserID: userID, PostKarma: 1, CommentKarma: 2, AwardKarma: 3, TotalKarma: 6}
	ms.EXPECT().KarmaByUser(gomock.Any(), userID).Return(want, nil)

	karma, err := s.Karma(context.Background(), userID)
	require.NoError(t, err)
	require.Equal(t, want, karma)
}
