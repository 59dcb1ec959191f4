package service

import (
	"context"
	"errors"

	"github.com/venturearena/backend/internal/repository"
	"go.uber.org/zap"
)

type PayoutQueueService interface {
	FindPayoutsToQueue(ctx context.Context, limit int) ([]PayoutNotification, error)
	MarkPayoutAsQueued(ctx context.Context, payoutID int64) error
}

type payoutQueue struct {
	payoutEventRepo repository.PayoutEventRepository
	logger          *zap.Logger
}

func NewPayoutQueueService(payoutEventRepo repository.PayoutEventRepository,
	logger *zap.Logger) PayoutQueueService {
	return &payoutQueue{payoutEventRepo: payoutEventRepo, logger: logger}
}

// FindPayoutsToQueue returns unpublished payout events as wire notifications,
// oldest first.
func (s *payoutQueue) FindPayoutsToQueue(ctx context.Context, limit int) ([]PayoutNotification, error) {
	events, err := s.payoutEventRepo.FindUnpublished(ctx, limit)
	if err != nil {
		s.logger.Error("Failed to fetch unpublished payout events", zap.Error(err))
		return nil, NewServiceError(ErrCodeDatabase, err)
	}

	notifications := make([]PayoutNotification, 0, len(events))
	for _, event := range events {
		notifications = append(notifications, PayoutNotification{
			EventID:     event.EventID,
			PayoutID:    event.ID,
			StartupID:   event.StartupID,
			StartupName: event.Startup.Name,
			TeamID:      event.TeamID,
			Amount:      event.Amount,
			Outcome:     string(event.Outcome),
		})
	}

	return notifications, nil
}

// MarkPayoutAsQueued flips the published flag. Losing the race to another
// publisher instance is not an error; the event went out exactly once.
func (s *payoutQueue) MarkPayoutAsQueued(ctx context.Context, payoutID int64) error {
	err := s.payoutEventRepo.MarkPublished(ctx, payoutID)
	if err != nil && !errors.Is(err, repository.ErrNoRowsAffected) {
		return NewServiceError(ErrCodeDatabase, err)
	}

	return nil
}
