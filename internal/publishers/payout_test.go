package publishers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/venturearena/backend/internal/mocks"
	"github.com/venturearena/backend/internal/publishers"
	"github.com/venturearena/backend/internal/service"
	"go.uber.org/zap"
)

func TestPayoutPublisher_Publish(t *testing.T) {
	logger := zap.NewNop()

	notifications := []service.PayoutNotification{
		{EventID: "evt-1", PayoutID: 1, StartupID: 10, StartupName: "Rocketly", TeamID: 1, Amount: 200, Outcome: "SUCCESS"},
		{EventID: "evt-1", PayoutID: 2, StartupID: 10, StartupName: "Rocketly", TeamID: 2, Amount: 500, Outcome: "SUCCESS"},
	}

	t.Run("publishes each payout and marks it queued", func(t *testing.T) {
		mockQueueService := &mocks.PayoutQueueService{}
		mockPublisher := &mocks.Publisher{}

		publisher := publishers.NewPayoutPublisher(mockQueueService, mockPublisher, logger)

		mockQueueService.On("FindPayoutsToQueue", context.Background(), 100).Return(notifications, nil)

		mockPublisher.On("Publish", context.Background(), "", publishers.PayoutQueue,
			mock.MatchedBy(func(body []byte) bool {
				var n service.PayoutNotification
				return json.Unmarshal(body, &n) == nil && n.EventID == "evt-1"
			})).Return(nil).Twice()

		mockQueueService.On("MarkPayoutAsQueued", context.Background(), int64(1)).Return(nil)
		mockQueueService.On("MarkPayoutAsQueued", context.Background(), int64(2)).Return(nil)

		err := publisher.Publish(context.Background())

		assert.NoError(t, err)
		mockQueueService.AssertExpectations(t)
		mockPublisher.AssertExpectations(t)
	})

	t.Run("does nothing when the outbox is empty", func(t *testing.T) {
		mockQueueService := &mocks.PayoutQueueService{}
		mockPublisher := &mocks.Publisher{}

		publisher := publishers.NewPayoutPublisher(mockQueueService, mockPublisher, logger)

		mockQueueService.On("FindPayoutsToQueue", context.Background(), 100).
			Return([]service.PayoutNotification{}, nil)

		err := publisher.Publish(context.Background())

		assert.NoError(t, err)
		mockPublisher.AssertNotCalled(t, "Publish")
		mockQueueService.AssertNotCalled(t, "MarkPayoutAsQueued")
	})

	t.Run("keeps a failed publish unmarked and continues", func(t *testing.T) {
		mockQueueService := &mocks.PayoutQueueService{}
		mockPublisher := &mocks.Publisher{}

		publisher := publishers.NewPayoutPublisher(mockQueueService, mockPublisher, logger)

		mockQueueService.On("FindPayoutsToQueue", context.Background(), 100).Return(notifications, nil)

		brokerError := errors.New("channel closed")
		mockPublisher.On("Publish", context.Background(), "", publishers.PayoutQueue,
			mock.AnythingOfType("[]uint8")).Return(brokerError).Once()
		mockPublisher.On("Publish", context.Background(), "", publishers.PayoutQueue,
			mock.AnythingOfType("[]uint8")).Return(nil).Once()

		mockQueueService.On("MarkPayoutAsQueued", context.Background(), int64(2)).Return(nil)

		err := publisher.Publish(context.Background())

		assert.NoError(t, err)
		mockQueueService.AssertNotCalled(t, "MarkPayoutAsQueued", context.Background(), int64(1))
		mockQueueService.AssertCalled(t, "MarkPayoutAsQueued", context.Background(), int64(2))
	})

	t.Run("returns the error when the outbox fetch fails", func(t *testing.T) {
		mockQueueService := &mocks.PayoutQueueService{}
		mockPublisher := &mocks.Publisher{}

		publisher := publishers.NewPayoutPublisher(mockQueueService, mockPublisher, logger)

		dbError := errors.New("database connection failed")
		mockQueueService.On("FindPayoutsToQueue", context.Background(), 100).Return(nil, dbError)

		err := publisher.Publish(context.Background())

		assert.Error(t, err)
		mockPublisher.AssertNotCalled(t, "Publish")
	})
}
