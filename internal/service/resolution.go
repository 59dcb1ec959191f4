package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/venturearena/backend/internal/constants"
	"github.com/venturearena/backend/internal/model"
	"github.com/venturearena/backend/internal/repository"
	"go.uber.org/zap"
)

type ResolutionService interface {
	ResolveOutcome(ctx context.Context, cmd ResolveOutcomeCommand) (ResolveOutcomeResult, error)
}

type resolution struct {
	teamRepo        repository.TeamRepository
	startupRepo     repository.StartupRepository
	investmentRepo  repository.InvestmentRepository
	payoutEventRepo repository.PayoutEventRepository
	txManager       repository.TxManager
	logger          *zap.Logger
}

func NewResolutionService(teamRepo repository.TeamRepository, startupRepo repository.StartupRepository,
	investmentRepo repository.InvestmentRepository, payoutEventRepo repository.PayoutEventRepository,
	txManager repository.TxManager, logger *zap.Logger) ResolutionService {
	return &resolution{teamRepo: teamRepo, startupRepo: startupRepo, investmentRepo: investmentRepo,
		payoutEventRepo: payoutEventRepo, txManager: txManager, logger: logger}
}

// ResolveOutcome transitions a startup out of PENDING and, on SUCCESS,
// credits every investing team inside the same transaction. The outcome
// update is conditioned on the row still being PENDING; when two resolutions
// race, the loser's transaction rolls back with ALREADY_RESOLVED and no
// balance is touched twice. Investments are fetched after the guard so the
// payout covers exactly what was committed before resolution won.
func (s *resolution) ResolveOutcome(ctx context.Context, cmd ResolveOutcomeCommand) (ResolveOutcomeResult, error) {
	outcome := model.Outcome(cmd.Outcome)
	if !ValidOutcome(outcome) {
		return ResolveOutcomeResult{}, NewServiceError(constants.ErrCodeInvalidOutcome, ErrInvalidOutcome)
	}

	var result ResolveOutcomeResult

	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		startup, err := s.startupRepo.GetByID(ctx, cmd.StartupID)
		if err != nil {
			if errors.Is(err, repository.ErrStartupNotFound) {
				return NewServiceError(constants.ErrCodeStartupNotFound, err)
			}
			return NewServiceError(ErrCodeDatabase, err)
		}

		if err := s.startupRepo.UpdateOutcome(ctx, cmd.StartupID, outcome); err != nil {
			if errors.Is(err, repository.ErrNoRowsAffected) {
				s.logger.Warn("Resolution lost the PENDING guard",
					zap.Int64("startupID", cmd.StartupID),
					zap.String("requestedOutcome", string(outcome)))
				return NewServiceError(constants.ErrCodeAlreadyResolved, ErrAlreadyResolved)
			}
			return NewServiceError(ErrCodeDatabase, err)
		}

		result.Payouts = []TeamPayout{}

		if outcome == model.OutcomeSuccess {
			investments, err := s.investmentRepo.ListByStartupID(ctx, cmd.StartupID)
			if err != nil {
				return NewServiceError(ErrCodeDatabase, err)
			}

			groupID := uuid.NewString()
			for _, inv := range investments {
				amount := PayoutAmount(inv.Amount, startup.Multiplier)

				if err := s.teamRepo.CreditBalance(ctx, inv.TeamID, amount); err != nil {
					return NewServiceError(ErrCodeDatabase, err)
				}

				event := model.PayoutEvent{
					EventID:   groupID,
					StartupID: cmd.StartupID,
					TeamID:    inv.TeamID,
					Amount:    amount,
					Outcome:   outcome,
					CreatedAt: time.Now(),
				}
				if err := s.payoutEventRepo.Create(ctx, &event); err != nil {
					return NewServiceError(ErrCodeDatabase, err)
				}

				result.Payouts = append(result.Payouts, TeamPayout{TeamID: inv.TeamID, Amount: amount})
			}
		}

		startup.Outcome = outcome
		result.Startup = *startup
		return nil
	})

	if err != nil {
		return ResolveOutcomeResult{}, err
	}

	s.logger.Info("Startup resolved",
		zap.Int64("startupID", cmd.StartupID),
		zap.String("outcome", string(outcome)),
		zap.Float64("multiplier", result.Startup.Multiplier),
		zap.Int("payouts", len(result.Payouts)))

	return result, nil
}
