package service

import "github.com/venturearena/backend/internal/model"

type PlaceInvestmentCommand struct {
	TeamID    int64
	StartupID int64
	Amount    int64
}

type PlaceInvestmentResult struct {
	Investment model.Investment
	Team       model.Team
}

type ResolveOutcomeCommand struct {
	StartupID int64
	Outcome   string
}

type TeamPayout struct {
	TeamID int64 `json:"team_id"`
	Amount int64 `json:"amount"`
}

type ResolveOutcomeResult struct {
	Startup model.Startup
	Payouts []TeamPayout
}

type CreateStartupCommand struct {
	Name        string
	Description string
	Pitch       string
	Multiplier  *float64
}

type UpdateMultiplierCommand struct {
	StartupID  int64
	Multiplier float64
}

type RegisterCommand struct {
	Name     string
	Email    string
	Password string
	TeamName string
}

type RegisterResult struct {
	User model.User
	Team model.Team
}

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	Token string
	User  model.User
}

type TeamSnapshot struct {
	Team        model.Team
	Investments []model.Investment
}

type PayoutNotification struct {
	EventID     string `json:"event_id"`
	PayoutID    int64  `json:"payout_id"`
	StartupID   int64  `json:"startup_id"`
	StartupName string `json:"startup_name"`
	TeamID      int64  `json:"team_id"`
	Amount      int64  `json:"amount"`
	Outcome     string `json:"outcome"`
}
