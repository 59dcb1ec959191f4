package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/venturearena/backend/internal/model"
)

var ErrInvalidToken = errors.New("INVALID_TOKEN")

// Claims carries the already-authenticated identity the core services
// operate on: user, owning team (nil for team-less admins) and role.
type Claims struct {
	UserID int64      `json:"uid"`
	TeamID *int64     `json:"tid,omitempty"`
	Role   model.Role `json:"role"`
	jwt.RegisteredClaims
}

func Issue(secret string, ttl time.Duration, user *model.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		TeamID: user.TeamID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func Parse(secret, tokenString string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
