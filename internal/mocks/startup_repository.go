package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/venturearena/backend/internal/model"
)

type StartupRepository struct {
	mock.Mock
}

func (s *StartupRepository) Create(ctx context.Context, startup *model.Startup) error {
	args := s.Called(ctx, startup)
	return args.Error(0)
}

func (s *StartupRepository) GetByID(ctx context.Context, id int64) (*model.Startup, error) {
	args := s.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Startup), args.Error(1)
}

func (s *StartupRepository) GetByIDForUpdate(ctx context.Context, id int64) (*model.Startup, error) {
	args := s.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Startup), args.Error(1)
}

func (s *StartupRepository) ListPending(ctx context.Context) ([]model.Startup, error) {
	args := s.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Startup), args.Error(1)
}

func (s *StartupRepository) ListWithInvestments(ctx context.Context) ([]model.Startup, error) {
	args := s.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Startup), args.Error(1)
}

func (s *StartupRepository) UpdateOutcome(ctx context.Context, id int64, outcome model.Outcome) error {
	args := s.Called(ctx, id, outcome)
	return args.Error(0)
}

func (s *StartupRepository) UpdateMultiplier(ctx context.Context, id int64, multiplier float64) error {
	args := s.Called(ctx, id, multiplier)
	return args.Error(0)
}
