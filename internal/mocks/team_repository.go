package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/venturearena/backend/internal/model"
	"github.com/venturearena/backend/internal/repository"
)

type TeamRepository struct {
	mock.Mock
}

func (t *TeamRepository) Create(ctx context.Context, team *model.Team) error {
	args := t.Called(ctx, team)
	return args.Error(0)
}

func (t *TeamRepository) GetByID(ctx context.Context, id int64) (*model.Team, error) {
	args := t.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Team), args.Error(1)
}

func (t *TeamRepository) DebitBalance(ctx context.Context, teamID, amount int64) error {
	args := t.Called(ctx, teamID, amount)
	return args.Error(0)
}

func (t *TeamRepository) CreditBalance(ctx context.Context, teamID, amount int64) error {
	args := t.Called(ctx, teamID, amount)
	return args.Error(0)
}

func (t *TeamRepository) ListByBalanceDesc(ctx context.Context) ([]repository.TeamStanding, error) {
	args := t.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.TeamStanding), args.Error(1)
}

func (t *TeamRepository) ListWithRelations(ctx context.Context) ([]model.Team, error) {
	args := t.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Team), args.Error(1)
}
