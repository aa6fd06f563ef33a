package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"merch-store/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	ctxAdminEmailKey = "admin_email"
	ctxAdminRoleKey  = "admin_role"

	// AutomationSecretHeader carries the shared secret for machine-to-
	// machine callers of the generation pipeline.
	AutomationSecretHeader = "X-Automation-Secret"
)

type AuthMiddleware struct {
	jwtService       *jwt.Service
	automationSecret string
}

func NewAuthMiddleware(jwtService *jwt.Service, automationSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:       jwtService,
		automationSecret: automationSecret,
	}
}

// RequireAdmin guards the operator surface with a JWT bearer token.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
			token = strings.TrimSpace(authHeader[len("Bearer "):])
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		claims, err := m.jwtService.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxAdminEmailKey, claims.Email)
		c.Set(ctxAdminRoleKey, claims.Role)
		c.Next()
	}
}

// RequireAutomationSecret authenticates pipeline callers by shared secret.
// An unset secret rejects everything rather than open the endpoint up.
func (m *AuthMiddleware) RequireAutomationSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		secret := c.GetHeader(AutomationSecretHeader)
		if m.automationSecret == "" ||
			subtle.ConstantTimeCompare([]byte(secret), []byte(m.automationSecret)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"ok":    false,
				"error": "Unauthorized",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetAdminEmail(c *gin.Context) (string, bool) {
	if v, exists := c.Get(ctxAdminEmailKey); exists {
		if email, ok := v.(string); ok {
			return email, true
		}
	}
	return "", false
}
