package service

import (
	"context"
	"errors"
	"time"

	"github.com/venturearena/backend/internal/config"
	"github.com/venturearena/backend/internal/constants"
	"github.com/venturearena/backend/internal/model"
	"github.com/venturearena/backend/internal/repository"
	"github.com/venturearena/backend/pkg/token"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AccountService interface {
	Register(ctx context.Context, cmd RegisterCommand) (RegisterResult, error)
	Login(ctx context.Context, cmd LoginCommand) (LoginResult, error)
}

type account struct {
	userRepo        repository.UserRepository
	teamRepo        repository.TeamRepository
	txManager       repository.TxManager
	jwtSecret       string
	tokenTTL        time.Duration
	startingBalance int64
	logger          *zap.Logger
}

func NewAccountService(userRepo repository.UserRepository, teamRepo repository.TeamRepository,
	txManager repository.TxManager, cfg *config.Config, logger *zap.Logger) AccountService {
	return &account{
		userRepo:        userRepo,
		teamRepo:        teamRepo,
		txManager:       txManager,
		jwtSecret:       cfg.Auth.JWTSecret,
		tokenTTL:        cfg.Auth.TokenTTL,
		startingBalance: cfg.Game.StartingBalance,
		logger:          logger,
	}
}

// Register creates a user and their team in one transaction. Every
// registration founds a new team seeded with the configured starting balance.
func (s *account) Register(ctx context.Context, cmd RegisterCommand) (RegisterResult, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return RegisterResult{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	var result RegisterResult

	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		team := model.Team{
			Name:      cmd.TeamName,
			Balance:   s.startingBalance,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := s.teamRepo.Create(ctx, &team); err != nil {
			if errors.Is(err, repository.ErrTeamDuplicate) {
				return NewServiceError(constants.ErrCodeDuplicateTeamName, err)
			}
			return NewServiceError(ErrCodeDatabase, err)
		}

		user := model.User{
			Name:         cmd.Name,
			Email:        cmd.Email,
			PasswordHash: string(hash),
			Role:         model.RoleMember,
			TeamID:       &team.ID,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		if err := s.userRepo.Create(ctx, &user); err != nil {
			if errors.Is(err, repository.ErrUserDuplicate) {
				return NewServiceError(constants.ErrCodeDuplicateEmail, err)
			}
			return NewServiceError(ErrCodeDatabase, err)
		}

		result = RegisterResult{User: user, Team: team}
		return nil
	})

	if err != nil {
		return RegisterResult{}, err
	}

	s.logger.Info("User registered",
		zap.Int64("userID", result.User.ID),
		zap.Int64("teamID", result.Team.ID),
		zap.String("teamName", result.Team.Name))

	return result, nil
}

func (s *account) Login(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return LoginResult{}, NewServiceError(constants.ErrCodeUnauthorized, ErrInvalidCredentials)
		}
		return LoginResult{}, NewServiceError(ErrCodeDatabase, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(cmd.Password)); err != nil {
		s.logger.Warn("Login rejected, bad password", zap.Int64("userID", user.ID))
		return LoginResult{}, NewServiceError(constants.ErrCodeUnauthorized, ErrInvalidCredentials)
	}

	signed, err := s.issueToken(user)
	if err != nil {
		return LoginResult{}, NewServiceError(constants.ErrCodeInternalError, err)
	}

	s.logger.Info("User logged in", zap.Int64("userID", user.ID))

	return LoginResult{Token: signed, User: *user}, nil
}

func (s *account) issueToken(user *model.User) (string, error) {
	return token.Issue(s.jwtSecret, s.tokenTTL, user)
}
