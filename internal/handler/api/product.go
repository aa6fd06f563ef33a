package api

import (
	"errors"
	"net/http"

	"merch-store/internal/domain/product"
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

type ProductHandler struct {
	cmds    commands.ProductCommands
	q       queries.ProductQueries
	mockups queries.MockupQueries
}

func NewProductHandler(cmds commands.ProductCommands, q queries.ProductQueries, mockups queries.MockupQueries) *ProductHandler {
	return &ProductHandler{cmds: cmds, q: q, mockups: mockups}
}

// @Summary List products
// @Description List active products in the storefront
// @Tags products
// @Produce json
// @Success 200 {array} resdto.ProductResponse
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context(), false)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list products", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductList(items))
}

// @Summary List products (admin)
// @Description List all products, optionally including inactive ones
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param includeInactive query string false "Include inactive products"
// @Success 200 {array} resdto.ProductResponse
// @Failure 401 {object} map[string]string
// @Router /admin/products [get]
func (h *ProductHandler) AdminList(c *gin.Context) {
	includeInactive := boolflag.Parse(c.DefaultQuery("includeInactive", "true"))
	items, err := h.q.List(c.Request.Context(), includeInactive)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list products", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductList(items))
}

// @Summary Get product
// @Description Get a product by ID
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load product", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductView(view))
}

// @Summary List product mockups
// @Description List saved mockups for a product
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {array} resdto.MockupResponse
// @Failure 400 {object} map[string]string
// @Router /products/{id}/mockups [get]
func (h *ProductHandler) ListMockups(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	items, err := h.mockups.ListByProduct(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list mockups", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMockupList(items))
}

// @Summary Create product
// @Description Create a new product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ProductRequest true "Product request"
// @Success 201 {object} resdto.ProductResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req reqdto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid default asset id", nil)
		return
	}
	id, err := h.cmds.CreateProduct(c.Request.Context(), cmd)
	if err != nil {
		h.abortCommandError(c, err, "Create product failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load product", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromProductView(view))
}

// @Summary Update product
// @Description Update a product by ID
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.ProductRequest true "Product request"
// @Success 200 {object} resdto.ProductResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/products/{id} [put]
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.ProductRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid default asset id", nil)
		return
	}
	if err := h.cmds.UpdateProduct(c.Request.Context(), id, cmd); err != nil {
		h.abortCommandError(c, err, "Update product failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load product", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProductView(view))
}

// @Summary Delete product
// @Description Delete a product by ID
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/products/{id} [delete]
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.DeleteProduct(c.Request.Context(), id); err != nil {
		h.abortCommandError(c, err, "Delete product failed")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) abortCommandError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, commands.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
	case errors.Is(err, commands.ErrAssetNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Default asset not found", nil)
	case errors.Is(err, product.ErrMissingName), errors.Is(err, product.ErrNegativePrice):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Validation failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, msg, nil)
	}
}
