package main

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/venturearena/backend/internal/api"
	"github.com/venturearena/backend/internal/api/middleware"
	v1 "github.com/venturearena/backend/internal/api/v1"
	"github.com/venturearena/backend/internal/config"
	"github.com/venturearena/backend/internal/database"
	"github.com/venturearena/backend/internal/repository"
	"github.com/venturearena/backend/internal/service"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,

			repository.NewTeamRepository,
			repository.NewUserRepository,
			repository.NewStartupRepository,
			repository.NewInvestmentRepository,
			repository.NewPayoutEventRepository,
			repository.NewTransactionManager,

			service.NewAccountService,
			service.NewInvestmentService,
			service.NewResolutionService,
			service.NewStartupService,
			service.NewTeamService,

			newFiberApp,
			v1.NewHandler,
		),
		fx.Invoke(startServer),
	).Run()
}

func newFiberApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler, cfg)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}
