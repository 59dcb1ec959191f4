package service

import (
	"context"
	"errors"
	"time"

	"github.com/venturearena/backend/internal/constants"
	"github.com/venturearena/backend/internal/model"
	"github.com/venturearena/backend/internal/repository"
	"go.uber.org/zap"
)

type InvestmentService interface {
	PlaceInvestment(ctx context.Context, cmd PlaceInvestmentCommand) (PlaceInvestmentResult, error)
}

type investment struct {
	teamRepo       repository.TeamRepository
	startupRepo    repository.StartupRepository
	investmentRepo repository.InvestmentRepository
	txManager      repository.TxManager
	logger         *zap.Logger
}

func NewInvestmentService(teamRepo repository.TeamRepository, startupRepo repository.StartupRepository,
	investmentRepo repository.InvestmentRepository, txManager repository.TxManager,
	logger *zap.Logger) InvestmentService {
	return &investment{teamRepo: teamRepo, startupRepo: startupRepo, investmentRepo: investmentRepo,
		txManager: txManager, logger: logger}
}

// PlaceInvestment creates the investment row and debits the team balance as
// one transaction. The balance check rides on the debit itself (conditional
// UPDATE), so a concurrent placement against the same team cannot overdraw.
// The startup is read under a row lock; a resolution committing concurrently
// either waits for this transaction or has already flipped the outcome the
// lock-read observes.
func (s *investment) PlaceInvestment(ctx context.Context, cmd PlaceInvestmentCommand) (PlaceInvestmentResult, error) {
	if cmd.Amount <= 0 {
		return PlaceInvestmentResult{}, NewServiceError(constants.ErrCodeInvalidAmount, ErrInvalidAmount)
	}

	var result PlaceInvestmentResult

	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		startup, err := s.startupRepo.GetByIDForUpdate(ctx, cmd.StartupID)
		if err != nil {
			if errors.Is(err, repository.ErrStartupNotFound) {
				return NewServiceError(constants.ErrCodeStartupNotFound, err)
			}
			return NewServiceError(ErrCodeDatabase, err)
		}

		if startup.Outcome != model.OutcomePending {
			s.logger.Warn("Investment rejected, startup already resolved",
				zap.Int64("startupID", cmd.StartupID),
				zap.String("outcome", string(startup.Outcome)))
			return NewServiceError(constants.ErrCodeStartupResolved, ErrStartupResolved)
		}

		if err := s.teamRepo.DebitBalance(ctx, cmd.TeamID, cmd.Amount); err != nil {
			if !errors.Is(err, repository.ErrNoRowsAffected) {
				return NewServiceError(ErrCodeDatabase, err)
			}

			if _, getErr := s.teamRepo.GetByID(ctx, cmd.TeamID); getErr != nil {
				if errors.Is(getErr, repository.ErrTeamNotFound) {
					return NewServiceError(constants.ErrCodeTeamNotFound, getErr)
				}
				return NewServiceError(ErrCodeDatabase, getErr)
			}

			s.logger.Warn("Investment rejected, insufficient funds",
				zap.Int64("teamID", cmd.TeamID),
				zap.Int64("amount", cmd.Amount))
			return NewServiceError(constants.ErrCodeInsufficientFunds, ErrInsufficientFunds)
		}

		inv := model.Investment{
			TeamID:    cmd.TeamID,
			StartupID: cmd.StartupID,
			Amount:    cmd.Amount,
			CreatedAt: time.Now(),
		}

		if err := s.investmentRepo.Create(ctx, &inv); err != nil {
			return NewServiceError(ErrCodeDatabase, err)
		}

		team, err := s.teamRepo.GetByID(ctx, cmd.TeamID)
		if err != nil {
			return NewServiceError(ErrCodeDatabase, err)
		}

		inv.Startup = *startup
		result = PlaceInvestmentResult{Investment: inv, Team: *team}
		return nil
	})

	if err != nil {
		return PlaceInvestmentResult{}, err
	}

	s.logger.Info("Investment placed",
		zap.Int64("investmentID", result.Investment.ID),
		zap.Int64("teamID", cmd.TeamID),
		zap.Int64("startupID", cmd.StartupID),
		zap.Int64("amount", cmd.Amount),
		zap.Int64("teamBalance", result.Team.Balance))

	return result, nil
}
