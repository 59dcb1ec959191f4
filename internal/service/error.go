package service

import "errors"

const ErrCodeDatabase = "DATABASE_ERROR"

var (
	ErrInvalidAmount      = errors.New("INVALID_AMOUNT")
	ErrInvalidOutcome     = errors.New("INVALID_OUTCOME")
	ErrInvalidMultiplier  = errors.New("INVALID_MULTIPLIER")
	ErrStartupResolved    = errors.New("STARTUP_RESOLVED")
	ErrAlreadyResolved    = errors.New("ALREADY_RESOLVED")
	ErrInsufficientFunds  = errors.New("INSUFFICIENT_FUNDS")
	ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")
	ErrDatabase           = errors.New("DATABASE_ERROR")
)

type Error struct {
	Code  string
	Cause error
}

func NewServiceError(code string, cause error) error {
	return Error{Code: code, Cause: cause}
}

func (e Error) Error() string {
	return e.Cause.Error()
}

func (e Error) Unwrap() error {
	return e.Cause
}
