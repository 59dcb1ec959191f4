package publishers

import (
	"context"
	"encoding/json"

	"github.com/venturearena/backend/internal/service"
	"github.com/venturearena/backend/pkg/mq"
	"go.uber.org/zap"
)

const PayoutQueue = "payout.notify"

type PayoutPublisher interface {
	Publish(ctx context.Context) error
}

type payoutPublisher struct {
	service   service.PayoutQueueService
	publisher mq.Publisher
	logger    *zap.Logger
}

func NewPayoutPublisher(service service.PayoutQueueService, publisher mq.Publisher, logger *zap.Logger) PayoutPublisher {
	return &payoutPublisher{service: service, publisher: publisher, logger: logger}
}

func (p *payoutPublisher) Publish(ctx context.Context) error {
	notifications, err := p.service.FindPayoutsToQueue(ctx, 100)
	if err != nil {
		return err
	}

	if len(notifications) == 0 {
		return nil
	}

	p.logger.Info("Publishing payouts", zap.Int("count", len(notifications)))

	successCount := 0
	for _, notification := range notifications {
		body, _ := json.Marshal(notification)
		if err := p.publisher.Publish(ctx, "", PayoutQueue, body); err != nil {
			p.logger.Error("Failed to publish payout",
				zap.Error(err),
				zap.Int64("payoutID", notification.PayoutID))
			continue
		}

		if err := p.service.MarkPayoutAsQueued(ctx, notification.PayoutID); err != nil {
			continue
		}

		successCount++
	}

	if successCount > 0 {
		p.logger.Info("Successfully published payouts",
			zap.Int("published", successCount),
			zap.Int("total", len(notifications)))
	}

	return nil
}
