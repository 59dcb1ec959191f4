package service

import (
	"context"
	"errors"
	"time"

	"github.com/venturearena/backend/internal/config"
	"github.com/venturearena/backend/internal/constants"
	"github.com/venturearena/backend/internal/model"
	"github.com/venturearena/backend/internal/repository"
	"go.uber.org/zap"
)

type StartupService interface {
	CreateStartup(ctx context.Context, cmd CreateStartupCommand) (model.Startup, error)
	UpdateMultiplier(ctx context.Context, cmd UpdateMultiplierCommand) (model.Startup, error)
	ListPending(ctx context.Context) ([]model.Startup, error)
	ListAll(ctx context.Context) ([]model.Startup, error)
}

type startup struct {
	startupRepo       repository.StartupRepository
	defaultMultiplier float64
	logger            *zap.Logger
}

func NewStartupService(startupRepo repository.StartupRepository, cfg *config.Config,
	logger *zap.Logger) StartupService {
	return &startup{startupRepo: startupRepo, defaultMultiplier: cfg.Game.DefaultMultiplier, logger: logger}
}

func (s *startup) CreateStartup(ctx context.Context, cmd CreateStartupCommand) (model.Startup, error) {
	multiplier := s.defaultMultiplier
	if cmd.Multiplier != nil {
		multiplier = *cmd.Multiplier
	}
	if !ValidMultiplier(multiplier) {
		return model.Startup{}, NewServiceError(constants.ErrCodeInvalidMultiplier, ErrInvalidMultiplier)
	}

	row := model.Startup{
		Name:        cmd.Name,
		Description: cmd.Description,
		Pitch:       cmd.Pitch,
		Outcome:     model.OutcomePending,
		Multiplier:  multiplier,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := s.startupRepo.Create(ctx, &row); err != nil {
		s.logger.Error("Failed to create startup", zap.String("name", cmd.Name), zap.Error(err))
		return model.Startup{}, NewServiceError(ErrCodeDatabase, err)
	}

	s.logger.Info("Startup created",
		zap.Int64("startupID", row.ID),
		zap.String("name", row.Name),
		zap.Float64("multiplier", row.Multiplier))

	return row, nil
}

func (s *startup) UpdateMultiplier(ctx context.Context, cmd UpdateMultiplierCommand) (model.Startup, error) {
	if !ValidMultiplier(cmd.Multiplier) {
		return model.Startup{}, NewServiceError(constants.ErrCodeInvalidMultiplier, ErrInvalidMultiplier)
	}

	err := s.startupRepo.UpdateMultiplier(ctx, cmd.StartupID, cmd.Multiplier)
	if err != nil {
		if !errors.Is(err, repository.ErrNoRowsAffected) {
			return model.Startup{}, NewServiceError(ErrCodeDatabase, err)
		}

		// Zero rows: either the startup is gone or it already resolved.
		row, getErr := s.startupRepo.GetByID(ctx, cmd.StartupID)
		if getErr != nil {
			if errors.Is(getErr, repository.ErrStartupNotFound) {
				return model.Startup{}, NewServiceError(constants.ErrCodeStartupNotFound, getErr)
			}
			return model.Startup{}, NewServiceError(ErrCodeDatabase, getErr)
		}

		s.logger.Warn("Multiplier edit rejected, startup already resolved",
			zap.Int64("startupID", cmd.StartupID),
			zap.String("outcome", string(row.Outcome)))
		return model.Startup{}, NewServiceError(constants.ErrCodeStartupResolved, ErrStartupResolved)
	}

	row, err := s.startupRepo.GetByID(ctx, cmd.StartupID)
	if err != nil {
		return model.Startup{}, NewServiceError(ErrCodeDatabase, err)
	}

	s.logger.Info("Startup multiplier updated",
		zap.Int64("startupID", cmd.StartupID),
		zap.Float64("multiplier", cmd.Multiplier))

	return *row, nil
}

func (s *startup) ListPending(ctx context.Context) ([]model.Startup, error) {
	startups, err := s.startupRepo.ListPending(ctx)
	if err != nil {
		s.logger.Error("Failed to list pending startups", zap.Error(err))
		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	return startups, nil
}

func (s *startup) ListAll(ctx context.Context) ([]model.Startup, error) {
	startups, err := s.startupRepo.ListWithInvestments(ctx)
	if err != nil {
		s.logger.Error("Failed to list startups", zap.Error(err))
		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	return startups, nil
}
