//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	reqdto "merch-store/internal/handler/dto/request"
	resdto "merch-store/internal/handler/dto/response"
	"merch-store/internal/pkg/config"
	"merch-store/tests/common/authtest"
	"merch-store/tests/common/httptest"
	"merch-store/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const loginURL = "/api/auth/login"

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestLogin() {
	s.Run("Normal case: operator can log in with configured credentials", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			reqdto.LoginRequest{Email: s.Config.Admin.Email, Password: config.TestAdminPassword}, "")
		require.Equal(t, http.StatusOK, w.Code, "Login should succeed: %s", w.Body.String())

		var res resdto.LoginResponse
		_ = httptest.DecodeResponseBody(t, w.Body, &res)
		require.NotEmpty(t, res.AccessToken)
		require.Equal(t, s.Config.Admin.Email, res.Email)
		require.Equal(t, "admin", res.Role)
	})

	s.Run("Normal case: email comparison is case-insensitive", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			reqdto.LoginRequest{Email: "Admin@Example.com", Password: config.TestAdminPassword}, "")
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("Error case: wrong password is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			reqdto.LoginRequest{Email: s.Config.Admin.Email, Password: "wrong-password"}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("Error case: unknown email is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			reqdto.LoginRequest{Email: "someone@else.com", Password: config.TestAdminPassword}, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid email or password")
	})
}

func (s *AuthSuite) TestAdminRouteProtection() {
	url := "/api/admin/products"

	s.Run("Error case: missing token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: garbage token is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "not-a-jwt")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: expired token is rejected", func() {
		t := s.T()

		helper := authtest.NewJWTHelper(s.Config.JWT)
		token := helper.CreateExpiredToken(t, s.Config.Admin.Email, "admin")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Normal case: issued token grants access", func() {
		t := s.T()

		token := authtest.LoginAdmin(t, s.Router, s.Config.Admin.Email, config.TestAdminPassword)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, token)
		require.Equal(t, http.StatusOK, w.Code)
	})
}
