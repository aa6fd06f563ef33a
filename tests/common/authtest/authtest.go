//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"
	"time"

	reqdto "merch-store/internal/handler/dto/request"
	resdto "merch-store/internal/handler/dto/response"
	"merch-store/internal/pkg/config"
	"merch-store/internal/pkg/jwt"
	"merch-store/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginAdmin authenticates through the real login endpoint and returns
// the issued access token.
func LoginAdmin(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		reqdto.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, "Login failed: %s", w.Body.String())

	var res resdto.LoginResponse
	_ = httptest.DecodeResponseBody(t, w.Body, &res)
	require.NotEmpty(t, res.AccessToken, "Access token should not be empty")
	return res.AccessToken
}

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, email, role string) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(email, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, email, role string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(email, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
