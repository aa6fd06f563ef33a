package commands

import (
	"context"
	"crypto/subtle"
	"strings"

	"merch-store/internal/pkg/config"
	"merch-store/internal/pkg/errs"
	"merch-store/internal/pkg/jwt"
	"merch-store/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
)

const RoleAdmin = "admin"

type LoginResult struct {
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

// The shop has a single operator account configured through the
// environment, so login checks credentials without any user table.
type authCommandsImpl struct {
	admin      config.AdminConfig
	jwtService *jwt.Service
}

func NewAuthCommands(cfg config.Config, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		admin:      cfg.Admin,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(_ context.Context, email, plainPassword string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	emailMatch := subtle.ConstantTimeCompare([]byte(email), []byte(strings.ToLower(a.admin.Email))) == 1
	passwordMatch := password.ComparePassword(a.admin.PasswordHash, plainPassword) == nil
	if !emailMatch || !passwordMatch {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(email, RoleAdmin)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{AccessToken: token}, nil
}
