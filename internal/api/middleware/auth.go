package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/venturearena/backend/internal/constants"
	"github.com/venturearena/backend/internal/model"
	"github.com/venturearena/backend/pkg/token"
)

// ClaimsKey is the fiber.Ctx locals key the authenticated identity is stored
// under.
const ClaimsKey = "claims"

// Authenticate resolves the caller's identity from the Authorization header,
// falling back to the access_token cookie, and stores the parsed claims in
// the request locals. Requests without a valid token are rejected.
func Authenticate(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := bearerToken(c)
		if raw == "" {
			raw = c.Cookies("access_token")
		}

		if raw == "" {
			return unauthorized(c)
		}

		claims, err := token.Parse(secret, raw)
		if err != nil {
			return unauthorized(c)
		}

		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}

// RequireTeam rejects authenticated callers that do not belong to a team.
func RequireTeam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := Claims(c)
		if claims == nil || claims.TeamID == nil {
			return forbidden(c)
		}

		return c.Next()
	}
}

// RequireAdmin rejects callers whose token does not carry the ADMIN role.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims := Claims(c)
		if claims == nil || claims.Role != model.RoleAdmin {
			return forbidden(c)
		}

		return c.Next()
	}
}

// Claims returns the identity stored by Authenticate, or nil outside an
// authenticated route.
func Claims(c *fiber.Ctx) *token.Claims {
	claims, _ := c.Locals(ClaimsKey).(*token.Claims)
	return claims
}

func bearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"code":    constants.ErrCodeUnauthorized,
		"message": constants.GetErrorMessage(constants.ErrCodeUnauthorized),
	})
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"code":    constants.ErrCodeForbidden,
		"message": constants.GetErrorMessage(constants.ErrCodeForbidden),
	})
}
