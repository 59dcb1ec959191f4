package service

import (
	"context"
	"errors"

	"github.com/venturearena/backend/internal/constants"
	"github.com/venturearena/backend/internal/model"
	"github.com/venturearena/backend/internal/repository"
	"go.uber.org/zap"
)

type TeamService interface {
	Snapshot(ctx context.Context, teamID int64) (TeamSnapshot, error)
	Leaderboard(ctx context.Context) ([]repository.TeamStanding, error)
	ListTeams(ctx context.Context) ([]model.Team, error)
}

type team struct {
	teamRepo       repository.TeamRepository
	investmentRepo repository.InvestmentRepository
	logger         *zap.Logger
}

func NewTeamService(teamRepo repository.TeamRepository, investmentRepo repository.InvestmentRepository,
	logger *zap.Logger) TeamService {
	return &team{teamRepo: teamRepo, investmentRepo: investmentRepo, logger: logger}
}

func (s *team) Snapshot(ctx context.Context, teamID int64) (TeamSnapshot, error) {
	row, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return TeamSnapshot{}, NewServiceError(constants.ErrCodeTeamNotFound, err)
		}
		return TeamSnapshot{}, NewServiceError(ErrCodeDatabase, err)
	}

	investments, err := s.investmentRepo.ListByTeamID(ctx, teamID)
	if err != nil {
		s.logger.Error("Failed to load team investments",
			zap.Int64("teamID", teamID),
			zap.Error(err))
		return TeamSnapshot{}, NewServiceError(ErrCodeDatabase, err)
	}

	return TeamSnapshot{Team: *row, Investments: investments}, nil
}

func (s *team) Leaderboard(ctx context.Context) ([]repository.TeamStanding, error) {
	standings, err := s.teamRepo.ListByBalanceDesc(ctx)
	if err != nil {
		s.logger.Error("Failed to load leaderboard", zap.Error(err))
		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	return standings, nil
}

func (s *team) ListTeams(ctx context.Context) ([]model.Team, error) {
	teams, err := s.teamRepo.ListWithRelations(ctx)
	if err != nil {
		s.logger.Error("Failed to list teams", zap.Error(err))
		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	return teams, nil
}
