package v1

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/venturearena/backend/internal/api/middleware"
	"github.com/venturearena/backend/internal/constants"
	"github.com/venturearena/backend/internal/repository"
	"github.com/venturearena/backend/internal/service"
	"go.uber.org/zap"
)

type Handler struct {
	logger      *zap.Logger
	validator   *validator.Validate
	accounts    service.AccountService
	investments service.InvestmentService
	resolutions service.ResolutionService
	startups    service.StartupService
	teams       service.TeamService
}

func NewHandler(logger *zap.Logger, accounts service.AccountService,
	investments service.InvestmentService, resolutions service.ResolutionService,
	startups service.StartupService, teams service.TeamService) *Handler {
	return &Handler{
		logger:      logger,
		validator:   validator.New(),
		accounts:    accounts,
		investments: investments,
		resolutions: resolutions,
		startups:    startups,
		teams:       teams,
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request RegisterRequest
	if err := h.parseBody(c, &request); err != nil {
		return err
	}

	cmd := service.RegisterCommand{
		Name:     request.Name,
		Email:    request.Email,
		Password: request.Password,
		TeamName: request.TeamName,
	}

	result, err := h.accounts.Register(ctx, cmd)
	if err != nil {
		h.logger.Error("Failed to register user",
			zap.Error(err),
			zap.String("email", request.Email),
			zap.String("teamName", request.TeamName))
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(RegisterResponse{
		User: toUserResponse(result.User),
		Team: toTeamResponse(result.Team),
	})
}

func (h *Handler) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request LoginRequest
	if err := h.parseBody(c, &request); err != nil {
		return err
	}

	result, err := h.accounts.Login(ctx, service.LoginCommand{
		Email:    request.Email,
		Password: request.Password,
	})
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    result.Token,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(LoginResponse{Token: result.Token, User: toUserResponse(result.User)})
}

func (h *Handler) GetStartups(c *fiber.Ctx) error {
	startups, err := h.startups.ListPending(c.UserContext())
	if err != nil {
		return err
	}

	responses := toStartupResponses(startups)
	return c.JSON(GetStartupsResponse{Startups: responses, Total: len(responses)})
}

func (h *Handler) GetTeam(c *fiber.Ctx) error {
	claims := middleware.Claims(c)

	snapshot, err := h.teams.Snapshot(c.UserContext(), *claims.TeamID)
	if err != nil {
		return err
	}

	return c.JSON(GetTeamResponse{
		Team:        toTeamResponse(snapshot.Team),
		Investments: toInvestmentResponses(snapshot.Investments),
	})
}

func (h *Handler) GetLeaderboard(c *fiber.Ctx) error {
	standings, err := h.teams.Leaderboard(c.UserContext())
	if err != nil {
		return err
	}

	return c.JSON(GetLeaderboardResponse{Standings: standings, Total: len(standings)})
}

func (h *Handler) PlaceInvestment(c *fiber.Ctx) error {
	ctx := c.UserContext()
	claims := middleware.Claims(c)

	var request PlaceInvestmentRequest
	if err := h.parseBody(c, &request); err != nil {
		return err
	}

	cmd := service.PlaceInvestmentCommand{
		TeamID:    *claims.TeamID,
		StartupID: request.StartupID,
		Amount:    request.Amount,
	}

	result, err := h.investments.PlaceInvestment(ctx, cmd)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(PlaceInvestmentResponse{
		Investment: toInvestmentResponse(result.Investment),
		Team:       toTeamResponse(result.Team),
	})
}

func (h *Handler) CreateStartup(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request CreateStartupRequest
	if err := h.parseBody(c, &request); err != nil {
		return err
	}

	cmd := service.CreateStartupCommand{
		Name:        request.Name,
		Description: request.Description,
		Pitch:       request.Pitch,
		Multiplier:  request.Multiplier,
	}

	startup, err := h.startups.CreateStartup(ctx, cmd)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(toStartupResponse(startup))
}

func (h *Handler) GetAdminStartups(c *fiber.Ctx) error {
	startups, err := h.startups.ListAll(c.UserContext())
	if err != nil {
		return err
	}

	responses := toStartupResponses(startups)
	return c.JSON(GetStartupsResponse{Startups: responses, Total: len(responses)})
}

func (h *Handler) ResolveOutcome(c *fiber.Ctx) error {
	ctx := c.UserContext()

	startupID, err := h.pathID(c)
	if err != nil {
		return err
	}

	var request ResolveOutcomeRequest
	if err := h.parseBody(c, &request); err != nil {
		return err
	}

	result, err := h.resolutions.ResolveOutcome(ctx, service.ResolveOutcomeCommand{
		StartupID: startupID,
		Outcome:   request.Outcome,
	})
	if err != nil {
		h.logger.Error("Failed to resolve startup",
			zap.Error(err),
			zap.Int64("startupID", startupID),
			zap.String("outcome", request.Outcome))
		return err
	}

	return c.JSON(ResolveOutcomeResponse{
		Startup: toStartupResponse(result.Startup),
		Payouts: result.Payouts,
	})
}

func (h *Handler) UpdateMultiplier(c *fiber.Ctx) error {
	ctx := c.UserContext()

	startupID, err := h.pathID(c)
	if err != nil {
		return err
	}

	var request UpdateMultiplierRequest
	if err := h.parseBody(c, &request); err != nil {
		return err
	}

	startup, err := h.startups.UpdateMultiplier(ctx, service.UpdateMultiplierCommand{
		StartupID:  startupID,
		Multiplier: request.Multiplier,
	})
	if err != nil {
		return err
	}

	return c.JSON(toStartupResponse(startup))
}

func (h *Handler) GetAdminTeams(c *fiber.Ctx) error {
	teams, err := h.teams.ListTeams(c.UserContext())
	if err != nil {
		return err
	}

	responses := make([]AdminTeamResponse, 0, len(teams))
	for _, team := range teams {
		members := make([]UserResponse, 0, len(team.Users))
		for _, user := range team.Users {
			members = append(members, toUserResponse(user))
		}

		responses = append(responses, AdminTeamResponse{
			ID:          team.ID,
			Name:        team.Name,
			Balance:     team.Balance,
			Members:     members,
			Investments: toInvestmentResponses(team.Investments),
		})
	}

	return c.JSON(GetAdminTeamsResponse{Teams: responses, Total: len(responses)})
}

func (h *Handler) parseBody(c *fiber.Ctx, request interface{}) error {
	if err := c.BodyParser(request); err != nil {
		h.logger.Warn("Failed to parse body",
			zap.Error(err),
			zap.String("path", c.Path()))
		return invalidRequestBody(c)
	}

	if err := h.validator.Struct(request); err != nil {
		h.logger.Warn("Request validation failed",
			zap.Error(err),
			zap.String("path", c.Path()))
		return invalidRequestBody(c)
	}

	return nil
}

func (h *Handler) pathID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, service.NewServiceError(constants.ErrCodeStartupNotFound, repository.ErrStartupNotFound)
	}

	return int64(id), nil
}

func invalidRequestBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":    constants.ErrCodeInvalidRequestBody,
		"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
	})
}
