package v1

import (
	"time"

	"github.com/venturearena/backend/internal/model"
	"github.com/venturearena/backend/internal/repository"
	"github.com/venturearena/backend/internal/service"
)

type UserResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	TeamID *int64 `json:"team_id,omitempty"`
}

type TeamResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Balance int64  `json:"balance"`
}

type StartupResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Pitch       string  `json:"pitch"`
	Outcome     string  `json:"outcome"`
	Multiplier  float64 `json:"multiplier"`
	CreatedAt   string  `json:"created_at"`
}

type InvestmentResponse struct {
	ID          int64  `json:"id"`
	StartupID   int64  `json:"startup_id"`
	StartupName string `json:"startup_name"`
	Amount      int64  `json:"amount"`
	CreatedAt   string `json:"created_at"`
}

type RegisterResponse struct {
	User UserResponse `json:"user"`
	Team TeamResponse `json:"team"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type GetStartupsResponse struct {
	Startups []StartupResponse `json:"startups"`
	Total    int               `json:"total"`
}

type GetTeamResponse struct {
	Team        TeamResponse         `json:"team"`
	Investments []InvestmentResponse `json:"investments"`
}

type GetLeaderboardResponse struct {
	Standings []repository.TeamStanding `json:"standings"`
	Total     int                       `json:"total"`
}

type PlaceInvestmentResponse struct {
	Investment InvestmentResponse `json:"investment"`
	Team       TeamResponse       `json:"team"`
}

type ResolveOutcomeResponse struct {
	Startup StartupResponse      `json:"startup"`
	Payouts []service.TeamPayout `json:"payouts"`
}

type AdminTeamResponse struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Balance     int64                `json:"balance"`
	Members     []UserResponse       `json:"members"`
	Investments []InvestmentResponse `json:"investments"`
}

type GetAdminTeamsResponse struct {
	Teams []AdminTeamResponse `json:"teams"`
	Total int                 `json:"total"`
}

func toUserResponse(user model.User) UserResponse {
	return UserResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   string(user.Role),
		TeamID: user.TeamID,
	}
}

func toTeamResponse(team model.Team) TeamResponse {
	return TeamResponse{ID: team.ID, Name: team.Name, Balance: team.Balance}
}

func toStartupResponse(startup model.Startup) StartupResponse {
	return StartupResponse{
		ID:          startup.ID,
		Name:        startup.Name,
		Description: startup.Description,
		Pitch:       startup.Pitch,
		Outcome:     string(startup.Outcome),
		Multiplier:  startup.Multiplier,
		CreatedAt:   startup.CreatedAt.Format(time.RFC3339),
	}
}

func toInvestmentResponse(investment model.Investment) InvestmentResponse {
	return InvestmentResponse{
		ID:          investment.ID,
		StartupID:   investment.StartupID,
		StartupName: investment.Startup.Name,
		Amount:      investment.Amount,
		CreatedAt:   investment.CreatedAt.Format(time.RFC3339),
	}
}

func toStartupResponses(startups []model.Startup) []StartupResponse {
	out := make([]StartupResponse, 0, len(startups))
	for _, s := range startups {
		out = append(out, toStartupResponse(s))
	}
	return out
}

func toInvestmentResponses(investments []model.Investment) []InvestmentResponse {
	out := make([]InvestmentResponse, 0, len(investments))
	for _, inv := range investments {
		out = append(out, toInvestmentResponse(inv))
	}
	return out
}
