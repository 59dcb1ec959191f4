package v1

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	TeamName string `json:"team_name" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type PlaceInvestmentRequest struct {
	StartupID int64 `json:"startup_id" validate:"required"`
	Amount    int64 `json:"amount" validate:"required"`
}

type CreateStartupRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Pitch       string   `json:"pitch" validate:"required"`
	Multiplier  *float64 `json:"multiplier"`
}

type ResolveOutcomeRequest struct {
	Outcome string `json:"outcome" validate:"required"`
}

type UpdateMultiplierRequest struct {
	Multiplier float64 `json:"multiplier" validate:"required"`
}
