package api

import (
	"errors"
	"net/http"

	reqdto "merch-store/internal/handler/dto/request"
	resdto "merch-store/internal/handler/dto/response"
	"merch-store/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// GenerateHandler serves the automation pipeline. Responses keep the
// flat {ok, error} envelope the pipeline templates parse, rather than
// the admin API error shape.
type GenerateHandler struct {
	cmds commands.GenerateCommands
}

func NewGenerateHandler(cmds commands.GenerateCommands) *GenerateHandler {
	return &GenerateHandler{cmds: cmds}
}

// @Summary Generate assets
// @Description Run an image generation job and store the results
// @Tags pipeline
// @Accept json
// @Produce json
// @Param X-Automation-Secret header string true "Shared automation secret"
// @Param request body reqdto.GenerateAssetRequest true "Generation request"
// @Success 200 {object} resdto.GenerateAssetResponse
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Failure 429 {object} map[string]any
// @Failure 500 {object} map[string]any
// @Router /assets/generate [post]
func (h *GenerateHandler) Generate(c *gin.Context) {
	var req reqdto.GenerateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abort(c, http.StatusBadRequest, err, "Invalid JSON body", nil)
		return
	}

	result, err := h.cmds.GenerateAssets(c.Request.Context(), req.ToCommand())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrMissingPrompt):
			h.abort(c, http.StatusBadRequest, err, "Missing prompt", result)
		case errors.Is(err, commands.ErrDailyLimitReached):
			h.abort(c, http.StatusTooManyRequests, err, "Daily limit reached", result)
		case errors.Is(err, commands.ErrNoImagesGenerated):
			h.abort(c, http.StatusInternalServerError, err, "No images generated", result)
		default:
			h.abort(c, http.StatusInternalServerError, err, "Generation failed", result)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromGenerateResult(result))
}

// abort writes the flat pipeline envelope. When the usecase got far enough
// to mint correlation ids they ride along, so a failed run can still be
// matched to its job row.
func (h *GenerateHandler) abort(c *gin.Context, status int, err error, msg string, result *commands.GenerateResult) {
	_ = c.Error(err)
	if result != nil {
		c.AbortWithStatusJSON(status, resdto.FromGenerateError(result, msg))
		return
	}
	c.AbortWithStatusJSON(status, gin.H{"ok": false, "error": msg})
}
