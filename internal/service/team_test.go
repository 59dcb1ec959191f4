package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/venturearena/backend/internal/constants"
	"github.com/venturearena/backend/internal/mocks"
	"github.com/venturearena/backend/internal/model"
	"github.com/venturearena/backend/internal/repository"
	"github.com/venturearena/backend/internal/service"
	"go.uber.org/zap"
)

func TestTeam_Snapshot(t *testing.T) {
	logger := zap.NewNop()

	t.Run("returns team with its investments", func(t *testing.T) {
		mockTeamRepo := &mocks.TeamRepository{}
		mockInvestmentRepo := &mocks.InvestmentRepository{}

		svc := service.NewTeamService(mockTeamRepo, mockInvestmentRepo, logger)

		mockTeamRepo.On("GetByID", context.Background(), int64(1)).
			Return(&model.Team{ID: 1, Name: "Alpha", Balance: 900}, nil)

		investments := []model.Investment{
			{ID: 2, TeamID: 1, StartupID: 10, Amount: 50, Startup: model.Startup{ID: 10, Name: "Rocketly"}},
			{ID: 1, TeamID: 1, StartupID: 11, Amount: 50, Startup: model.Startup{ID: 11, Name: "Snailify"}},
		}
		mockInvestmentRepo.On("ListByTeamID", context.Background(), int64(1)).Return(investments, nil)

		snapshot, err := svc.Snapshot(context.Background(), 1)

		assert.NoError(t, err)
		assert.Equal(t, "Alpha", snapshot.Team.Name)
		assert.Len(t, snapshot.Investments, 2)
		assert.Equal(t, "Rocketly", snapshot.Investments[0].Startup.Name)

		mockTeamRepo.AssertExpectations(t)
		mockInvestmentRepo.AssertExpectations(t)
	})

	t.Run("fails when team does not exist", func(t *testing.T) {
		mockTeamRepo := &mocks.TeamRepository{}
		mockInvestmentRepo := &mocks.InvestmentRepository{}

		svc := service.NewTeamService(mockTeamRepo, mockInvestmentRepo, logger)

		mockTeamRepo.On("GetByID", context.Background(), int64(99)).
			Return((*model.Team)(nil), repository.ErrTeamNotFound)

		_, err := svc.Snapshot(context.Background(), 99)

		assertServiceError(t, err, constants.ErrCodeTeamNotFound)
		mockInvestmentRepo.AssertNotCalled(t, "ListByTeamID")
	})
}

func TestTeam_Leaderboard(t *testing.T) {
	logger := zap.NewNop()

	t.Run("returns standings ordered by the repository", func(t *testing.T) {
		mockTeamRepo := &mocks.TeamRepository{}
		mockInvestmentRepo := &mocks.InvestmentRepository{}

		svc := service.NewTeamService(mockTeamRepo, mockInvestmentRepo, logger)

		standings := []repository.TeamStanding{
			{ID: 2, Name: "Bravo", Balance: 2_000_000, MemberCount: 3, InvestmentCount: 5},
			{ID: 1, Name: "Alpha", Balance: 900_000, MemberCount: 2, InvestmentCount: 1},
		}
		mockTeamRepo.On("ListByBalanceDesc", context.Background()).Return(standings, nil)

		result, err := svc.Leaderboard(context.Background())

		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, "Bravo", result[0].Name)
		assert.Equal(t, int64(2_000_000), result[0].Balance)
	})

	t.Run("surfaces database errors", func(t *testing.T) {
		mockTeamRepo := &mocks.TeamRepository{}
		mockInvestmentRepo := &mocks.InvestmentRepository{}

		svc := service.NewTeamService(mockTeamRepo, mockInvestmentRepo, logger)

		dbError := errors.New("database connection failed")
		mockTeamRepo.On("ListByBalanceDesc", context.Background()).Return(nil, dbError)

		_, err := svc.Leaderboard(context.Background())

		assertServiceError(t, err, service.ErrCodeDatabase)
	})
}
