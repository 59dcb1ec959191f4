package service

import (
	"context"

	"go.uber.org/zap"
)

type NotifierService interface {
	Notify(ctx context.Context, notification PayoutNotification) error
}

type notifier struct {
	logger *zap.Logger
}

func NewNotifierService(logger *zap.Logger) NotifierService {
	return &notifier{logger: logger}
}

// Notify delivers a payout notification. Delivery is a structured log line
// for now; teams read their balance from the API either way.
func (s *notifier) Notify(_ context.Context, notification PayoutNotification) error {
	s.logger.Info("Payout delivered",
		zap.String("eventID", notification.EventID),
		zap.Int64("payoutID", notification.PayoutID),
		zap.Int64("startupID", notification.StartupID),
		zap.String("startup", notification.StartupName),
		zap.Int64("teamID", notification.TeamID),
		zap.Int64("amount", notification.Amount),
		zap.String("outcome", notification.Outcome))

	return nil
}
