package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/venturearena/backend/internal/api/middleware"
	v1 "github.com/venturearena/backend/internal/api/v1"
	"github.com/venturearena/backend/internal/config"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler, cfg *config.Config) {
	app.Get("/ping", handler.Pong)

	app.Post("/v1/register", handler.Register)
	app.Post("/v1/login", handler.Login)

	authed := app.Group("/v1", middleware.Authenticate(cfg.Auth.JWTSecret))
	authed.Get("/startups", handler.GetStartups)
	authed.Get("/leaderboard", handler.GetLeaderboard)

	team := authed.Group("", middleware.RequireTeam())
	team.Get("/team", handler.GetTeam)
	team.Post("/investments", handler.PlaceInvestment)

	admin := authed.Group("/admin", middleware.RequireAdmin())
	admin.Post("/startups", handler.CreateStartup)
	admin.Get("/startups", handler.GetAdminStartups)
	admin.Put("/startups/:id/outcome", handler.ResolveOutcome)
	admin.Put("/startups/:id/multiplier", handler.UpdateMultiplier)
	admin.Get("/teams", handler.GetAdminTeams)
}
