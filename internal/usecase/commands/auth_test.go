//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"merch-store/internal/pkg/config"
	"merch-store/internal/pkg/jwt"
	"merch-store/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthCommands() commands.AuthCommands {
	cfg := config.NewTestConfig()
	jwtService := jwt.NewService(cfg.JWT.Secret, 24*time.Hour)
	return commands.NewAuthCommands(cfg, jwtService)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	auth := newAuthCommands()

	t.Run("valid credentials", func(t *testing.T) {
		result, err := auth.Login(ctx, "admin@example.com", config.TestAdminPassword)
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.NotEmpty(t, result.AccessToken)
	})

	t.Run("email is case insensitive and trimmed", func(t *testing.T) {
		result, err := auth.Login(ctx, "  ADMIN@Example.com  ", config.TestAdminPassword)
		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		result, err := auth.Login(ctx, "admin@example.com", "wrong-password")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		result, err := auth.Login(ctx, "intruder@example.com", config.TestAdminPassword)
		assert.Nil(t, result)
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("empty credentials", func(t *testing.T) {
		result, err := auth.Login(ctx, "", "")
		assert.Nil(t, result)
		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})
}
