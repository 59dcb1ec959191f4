package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/venturearena/backend/internal/model"
)

type InvestmentRepository struct {
	mock.Mock
}

func (i *InvestmentRepository) Create(ctx context.Context, investment *model.Investment) error {
	args := i.Called(ctx, investment)
	return args.Error(0)
}

func (i *InvestmentRepository) ListByStartupID(ctx context.Context, startupID int64) ([]model.Investment, error) {
	args := i.Called(ctx, startupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Investment), args.Error(1)
}

func (i *InvestmentRepository) ListByTeamID(ctx context.Context, teamID int64) ([]model.Investment, error) {
	args := i.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Investment), args.Error(1)
}
