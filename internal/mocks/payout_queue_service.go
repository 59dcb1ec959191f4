package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/venturearena/backend/internal/service"
)

type PayoutQueueService struct {
	mock.Mock
}

func (p *PayoutQueueService) FindPayoutsToQueue(ctx context.Context, limit int) ([]service.PayoutNotification, error) {
	args := p.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.PayoutNotification), args.Error(1)
}

func (p *PayoutQueueService) MarkPayoutAsQueued(ctx context.Context, payoutID int64) error {
	args := p.Called(ctx, payoutID)
	return args.Error(0)
}
