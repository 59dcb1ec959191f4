package consumers

import (
	"context"
	"encoding/json"

	"github.com/venturearena/backend/internal/service"
	"github.com/venturearena/backend/pkg/mq"
	"go.uber.org/zap"
)

const PayoutQueue = "payout.notify"

type PayoutConsumer interface {
	Consume(ctx context.Context) error
}

type payoutConsumer struct {
	service  service.NotifierService
	consumer mq.Consumer
	logger   *zap.Logger
}

func NewPayoutConsumer(service service.NotifierService, consumer mq.Consumer, logger *zap.Logger) PayoutConsumer {
	return &payoutConsumer{service: service, consumer: consumer, logger: logger}
}

func (p *payoutConsumer) Consume(ctx context.Context) error {
	return p.consumer.Consume(ctx, 1, PayoutQueue, p.handleMessage)
}

func (p *payoutConsumer) handleMessage(ctx context.Context, body []byte) error {
	p.logger.Info("received payout notification", zap.ByteString("body", body))

	var notification service.PayoutNotification
	if err := json.Unmarshal(body, &notification); err != nil {
		p.logger.Warn("invalid payout notification", zap.Error(err))
		return err
	}

	return p.service.Notify(ctx, notification)
}
