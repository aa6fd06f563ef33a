package api

import (
	"errors"
	"net/http"

	reqdto "merch-store/internal/handler/dto/request"
	resdto "merch-store/internal/handler/dto/response"
	"merch-store/internal/handler/httperr"
	"merch-store/internal/infra"
	"merch-store/internal/pkg/boolflag"
	"merch-store/internal/usecase/commands"
	"merch-store/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AssetHandler struct {
	cmds commands.AssetCommands
	q    queries.AssetQueries
}

func NewAssetHandler(cmds commands.AssetCommands, q queries.AssetQueries) *AssetHandler {
	return &AssetHandler{cmds: cmds, q: q}
}

// @Summary List gallery assets
// @Description List published assets for the storefront gallery
// @Tags assets
// @Produce json
// @Success 200 {array} resdto.AssetResponse
// @Router /assets [get]
func (h *AssetHandler) List(c *gin.Context) {
	published := true
	items, err := h.q.List(c.Request.Context(), &published)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list assets", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAssetList(items))
}

// @Summary List assets (admin)
// @Description List all assets, optionally filtered by publication state
// @Tags assets
// @Produce json
// @Security BearerAuth
// @Param published query string false "Filter by published flag"
// @Success 200 {array} resdto.AssetResponse
// @Failure 401 {object} map[string]string
// @Router /admin/assets [get]
func (h *AssetHandler) AdminList(c *gin.Context) {
	var published *bool
	if raw, ok := c.GetQuery("published"); ok {
		v := boolflag.Parse(raw)
		published = &v
	}
	items, err := h.q.List(c.Request.Context(), published)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list assets", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAssetList(items))
}

// @Summary Get asset
// @Description Get an asset by ID
// @Tags assets
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} resdto.AssetResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /assets/{id} [get]
func (h *AssetHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Asset not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load asset", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAssetView(view))
}

// @Summary Create asset
// @Description Create an asset from a URL or a base64 data URL image
// @Tags assets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAssetRequest true "Create asset request"
// @Success 201 {object} resdto.AssetCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/assets [post]
func (h *AssetHandler) Create(c *gin.Context) {
	var req reqdto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.CreateAsset(c.Request.Context(), req.ToCommand())
	if err != nil {
		if errors.Is(err, commands.ErrInvalidDataURL) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid image data URL", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create asset failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAssetCreated(result))
}

// @Summary Publish or unpublish asset
// @Description Toggle the publication flag of an asset
// @Tags assets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Asset ID"
// @Param request body reqdto.PublishAssetRequest true "Publish request"
// @Success 200 {object} resdto.AssetResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/assets/{id}/publish [patch]
func (h *AssetHandler) SetPublished(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.PublishAssetRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err := h.cmds.SetPublished(c.Request.Context(), id, req.Published); err != nil {
		if errors.Is(err, commands.ErrAssetNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Asset not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Publish asset failed", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load asset", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAssetView(view))
}

// @Summary Delete asset
// @Description Delete an asset by ID
// @Tags assets
// @Security BearerAuth
// @Param id path string true "Asset ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /admin/assets/{id} [delete]
func (h *AssetHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.DeleteAsset(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrAssetNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Asset not found", nil)
		case errors.Is(err, commands.ErrAssetInUse):
			httperr.AbortWithError(c, http.StatusConflict, err, "Asset is referenced by a product", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete asset failed", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
