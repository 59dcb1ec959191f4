package constants

const (
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeTeamNotFound       = "TEAM_NOT_FOUND"
	ErrCodeStartupNotFound    = "STARTUP_NOT_FOUND"
	ErrCodeUserNotFound       = "USER_NOT_FOUND"
	ErrCodeInvalidAmount      = "INVALID_AMOUNT"
	ErrCodeInvalidOutcome     = "INVALID_OUTCOME"
	ErrCodeInvalidMultiplier  = "INVALID_MULTIPLIER"
	ErrCodeStartupResolved    = "STARTUP_RESOLVED"
	ErrCodeAlreadyResolved    = "ALREADY_RESOLVED"
	ErrCodeInsufficientFunds  = "INSUFFICIENT_FUNDS"
	ErrCodeDuplicateEmail     = "DUPLICATE_EMAIL"
	ErrCodeDuplicateTeamName  = "DUPLICATE_TEAM_NAME"
	ErrCodeInvalidRequestBody = "INVALID_REQUEST_BODY"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

var errorMessages = map[string]string{
	ErrCodeUnauthorized:       "unauthorized",
	ErrCodeForbidden:          "insufficient role",
	ErrCodeTeamNotFound:       "team not found",
	ErrCodeStartupNotFound:    "startup not found",
	ErrCodeUserNotFound:       "user not found",
	ErrCodeInvalidAmount:      "investment amount must be positive",
	ErrCodeInvalidOutcome:     "outcome must be SUCCESS or FAILURE",
	ErrCodeInvalidMultiplier:  "multiplier must be at least 1.0",
	ErrCodeStartupResolved:    "startup outcome has already been determined",
	ErrCodeAlreadyResolved:    "startup has already been resolved",
	ErrCodeInsufficientFunds:  "insufficient funds",
	ErrCodeDuplicateEmail:     "email already registered",
	ErrCodeDuplicateTeamName:  "team name already taken",
	ErrCodeInvalidRequestBody: "failed to parse request body",
	ErrCodeInternalError:      "internal server error",
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return errorMessages[ErrCodeInternalError]
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeUnauthorized:
		return 401
	case ErrCodeForbidden:
		return 403
	case ErrCodeTeamNotFound, ErrCodeStartupNotFound, ErrCodeUserNotFound:
		return 404
	case ErrCodeInvalidRequestBody, ErrCodeInvalidAmount, ErrCodeInvalidOutcome,
		ErrCodeInvalidMultiplier, ErrCodeStartupResolved, ErrCodeAlreadyResolved,
		ErrCodeInsufficientFunds, ErrCodeDuplicateEmail, ErrCodeDuplicateTeamName:
		return 400
	default:
		return 500
	}
}
