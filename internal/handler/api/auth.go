package api

import (
	"errors"
	"net/http"

	reqdto "merch-store/internal/handler/dto/request"
	resdto "merch-store/internal/handler/dto/response"
	"merch-store/internal/handler/httperr"
	"merch-store/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds commands.AuthCommands
}

func NewAuthHandler(cmds commands.AuthCommands) *AuthHandler {
	return &AuthHandler{cmds: cmds}
}

// @Summary Admin login
// @Description Authenticate the store operator and return an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid email or password", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Login failed", nil)
		return
	}
	c.JSON(http.StatusOK, &resdto.LoginResponse{
		AccessToken: result.AccessToken,
		Email:       req.Email,
		Role:        commands.RoleAdmin,
	})
}
