package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/venturearena/backend/internal/mocks"
	"github.com/venturearena/backend/internal/model"
	"github.com/venturearena/backend/internal/repository"
	"github.com/venturearena/backend/internal/service"
	"go.uber.org/zap"
)

func TestPayoutQueue_FindPayoutsToQueue(t *testing.T) {
	logger := zap.NewNop()

	t.Run("maps unpublished events to notifications", func(t *testing.T) {
		mockPayoutEventRepo := &mocks.PayoutEventRepository{}

		svc := service.NewPayoutQueueService(mockPayoutEventRepo, logger)

		events := []model.PayoutEvent{
			{
				ID:        1,
				EventID:   "evt-1",
				StartupID: 10,
				TeamID:    1,
				Amount:    200,
				Outcome:   model.OutcomeSuccess,
				Startup:   model.Startup{ID: 10, Name: "Rocketly"},
			},
			{
				ID:        2,
				EventID:   "evt-1",
				StartupID: 10,
				TeamID:    2,
				Amount:    500,
				Outcome:   model.OutcomeSuccess,
				Startup:   model.Startup{ID: 10, Name: "Rocketly"},
			},
		}

		mockPayoutEventRepo.On("FindUnpublished", context.Background(), 100).Return(events, nil)

		notifications, err := svc.FindPayoutsToQueue(context.Background(), 100)

		assert.NoError(t, err)
		assert.Len(t, notifications, 2)

		assert.Equal(t, int64(1), notifications[0].PayoutID)
		assert.Equal(t, "Rocketly", notifications[0].StartupName)
		assert.Equal(t, int64(200), notifications[0].Amount)
		assert.Equal(t, "SUCCESS", notifications[0].Outcome)

		assert.Equal(t, int64(2), notifications[1].PayoutID)
		assert.Equal(t, int64(500), notifications[1].Amount)

		mockPayoutEventRepo.AssertExpectations(t)
	})

	t.Run("returns empty slice when nothing is pending", func(t *testing.T) {
		mockPayoutEventRepo := &mocks.PayoutEventRepository{}

		svc := service.NewPayoutQueueService(mockPayoutEventRepo, logger)

		mockPayoutEventRepo.On("FindUnpublished", context.Background(), 100).
			Return([]model.PayoutEvent{}, nil)

		notifications, err := svc.FindPayoutsToQueue(context.Background(), 100)

		assert.NoError(t, err)
		assert.Empty(t, notifications)
	})

	t.Run("surfaces database errors", func(t *testing.T) {
		mockPayoutEventRepo := &mocks.PayoutEventRepository{}

		svc := service.NewPayoutQueueService(mockPayoutEventRepo, logger)

		dbError := errors.New("database connection failed")
		mockPayoutEventRepo.On("FindUnpublished", context.Background(), 100).Return(nil, dbError)

		notifications, err := svc.FindPayoutsToQueue(context.Background(), 100)

		assert.Error(t, err)
		assert.Nil(t, notifications)
	})
}

func TestPayoutQueue_MarkPayoutAsQueued(t *testing.T) {
	logger := zap.NewNop()

	t.Run("marks payout as published", func(t *testing.T) {
		mockPayoutEventRepo := &mocks.PayoutEventRepository{}

		svc := service.NewPayoutQueueService(mockPayoutEventRepo, logger)

		mockPayoutEventRepo.On("MarkPublished", context.Background(), int64(1)).Return(nil)

		err := svc.MarkPayoutAsQueued(context.Background(), 1)

		assert.NoError(t, err)
		mockPayoutEventRepo.AssertExpectations(t)
	})

	t.Run("treats a lost publish race as done", func(t *testing.T) {
		mockPayoutEventRepo := &mocks.PayoutEventRepository{}

		svc := service.NewPayoutQueueService(mockPayoutEventRepo, logger)

		mockPayoutEventRepo.On("MarkPublished", context.Background(), int64(1)).
			Return(repository.ErrNoRowsAffected)

		err := svc.MarkPayoutAsQueued(context.Background(), 1)

		assert.NoError(t, err)
	})

	t.Run("surfaces database errors", func(t *testing.T) {
		mockPayoutEventRepo := &mocks.PayoutEventRepository{}

		svc := service.NewPayoutQueueService(mockPayoutEventRepo, logger)

		dbError := errors.New("database update failed")
		mockPayoutEventRepo.On("MarkPublished", context.Background(), int64(1)).Return(dbError)

		err := svc.MarkPayoutAsQueued(context.Background(), 1)

		assertServiceError(t, err, service.ErrCodeDatabase)
	})
}
