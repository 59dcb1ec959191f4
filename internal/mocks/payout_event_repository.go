package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/venturearena/backend/internal/model"
)

type PayoutEventRepository struct {
	mock.Mock
}

func (p *PayoutEventRepository) Create(ctx context.Context, event *model.PayoutEvent) error {
	args := p.Called(ctx, event)
	return args.Error(0)
}

func (p *PayoutEventRepository) FindUnpublished(ctx context.Context, limit int) ([]model.PayoutEvent, error) {
	args := p.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PayoutEvent), args.Error(1)
}

func (p *PayoutEventRepository) MarkPublished(ctx context.Context, id int64) error {
	args := p.Called(ctx, id)
	return args.Error(0)
}
