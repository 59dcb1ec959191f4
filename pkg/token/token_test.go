package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/venturearena/backend/internal/model"
	"github.com/venturearena/backend/pkg/token"
)

func TestIssueAndParse(t *testing.T) {
	teamID := int64(7)
	user := &model.User{
		ID:     3,
		Email:  "ada@example.com",
		Role:   model.RoleMember,
		TeamID: &teamID,
	}

	t.Run("round trips the identity claims", func(t *testing.T) {
		signed, err := token.Issue("secret", time.Hour, user)
		assert.NoError(t, err)
		assert.NotEmpty(t, signed)

		claims, err := token.Parse("secret", signed)
		assert.NoError(t, err)
		assert.Equal(t, int64(3), claims.UserID)
		assert.Equal(t, model.RoleMember, claims.Role)
		assert.NotNil(t, claims.TeamID)
		assert.Equal(t, int64(7), *claims.TeamID)
		assert.Equal(t, "ada@example.com", claims.Subject)
	})

	t.Run("keeps admin tokens team-less", func(t *testing.T) {
		admin := &model.User{ID: 1, Email: "root@example.com", Role: model.RoleAdmin}

		signed, err := token.Issue("secret", time.Hour, admin)
		assert.NoError(t, err)

		claims, err := token.Parse("secret", signed)
		assert.NoError(t, err)
		assert.Equal(t, model.RoleAdmin, claims.Role)
		assert.Nil(t, claims.TeamID)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		signed, err := token.Issue("secret", time.Hour, user)
		assert.NoError(t, err)

		_, err = token.Parse("other-secret", signed)
		assert.Error(t, err)
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		signed, err := token.Issue("secret", -time.Minute, user)
		assert.NoError(t, err)

		_, err = token.Parse("secret", signed)
		assert.Error(t, err)
	})

	t.Run("rejects garbage input", func(t *testing.T) {
		_, err := token.Parse("secret", "not-a-token")
		assert.Error(t, err)
	})
}
