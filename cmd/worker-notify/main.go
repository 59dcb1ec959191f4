package main

import (
	"context"

	"github.com/venturearena/backend/internal/config"
	"github.com/venturearena/backend/internal/consumers"
	"github.com/venturearena/backend/internal/service"
	"github.com/venturearena/backend/pkg/mq"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			NewMQConnection,
			NewMQConsumer,

			service.NewNotifierService,

			consumers.NewPayoutConsumer,
		),
		fx.Invoke(runPayoutConsumer),
	).Run()
}

func runPayoutConsumer(cfg *config.Config, payoutConsumer consumers.PayoutConsumer, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle,
) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareTopology([]string{consumers.PayoutQueue}); err != nil {
				logger.Error("declare topology failed", zap.Error(err))
				return err
			}
			logger.Info("queue declared", zap.String("queue", consumers.PayoutQueue))

			go func() {
				if err := payoutConsumer.Consume(appCtx); err != nil {
					logger.Error("consumer exited", zap.Error(err))
				}
			}()

			logger.Info("payout consumer started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping payout consumer")
			cancel()
			return rabbit.Close()
		},
	})
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQConsumer(rabbitMQ *mq.RabbitMQ) (mq.Consumer, error) {
	return rabbitMQ.CreateConsumer()
}
