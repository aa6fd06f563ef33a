package api

import (
	"errors"
	"net/http"

	reqdto "merch-store/internal/handler/dto/request"
	resdto "merch-store/internal/handler/dto/response"
	"merch-store/internal/handler/httperr"
	"merch-store/internal/infra"
	"merch-store/internal/usecase/commands"
	"merch-store/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MockupHandler struct {
	cmds commands.MockupCommands
	q    queries.MockupQueries
}

func NewMockupHandler(cmds commands.MockupCommands, q queries.MockupQueries) *MockupHandler {
	return &MockupHandler{cmds: cmds, q: q}
}

// @Summary Save mockup
// @Description Upload a rendered product mockup image
// @Tags pipeline
// @Accept json
// @Produce json
// @Param X-Automation-Secret header string true "Shared automation secret"
// @Param request body reqdto.SaveMockupRequest true "Save mockup request"
// @Success 201 {object} resdto.MockupSavedResponse
// @Failure 400 {object} map[string]any
// @Failure 401 {object} map[string]any
// @Failure 404 {object} map[string]any
// @Router /mockups [post]
func (h *MockupHandler) Save(c *gin.Context) {
	var req reqdto.SaveMockupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.abort(c, http.StatusBadRequest, err, "Invalid JSON body")
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		h.abort(c, http.StatusBadRequest, err, "Invalid product or asset id")
		return
	}
	result, err := h.cmds.SaveMockup(c.Request.Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidDataURL):
			h.abort(c, http.StatusBadRequest, err, "Image must be a base64 data URL")
		case errors.Is(err, commands.ErrProductNotFound):
			h.abort(c, http.StatusNotFound, err, "Product not found")
		case errors.Is(err, commands.ErrAssetNotFound):
			h.abort(c, http.StatusNotFound, err, "Asset not found")
		default:
			h.abort(c, http.StatusInternalServerError, err, "Failed to save mockup")
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromMockupSaved(result))
}

// @Summary Get mockup
// @Description Get a saved mockup by ID
// @Tags mockups
// @Produce json
// @Security BearerAuth
// @Param id path string true "Mockup ID"
// @Success 200 {object} resdto.MockupResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/mockups/{id} [get]
func (h *MockupHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Mockup not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load mockup", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMockupView(view))
}

func (h *MockupHandler) abort(c *gin.Context, status int, err error, msg string) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"ok": false, "error": msg})
}
