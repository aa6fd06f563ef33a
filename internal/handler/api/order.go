package api

import (
	"net/http"
	"strconv"

	resdto "merch-store/internal/handler/dto/response"
	"merch-store/internal/handler/httperr"
	"merch-store/internal/infra"
	"merch-store/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	q queries.OrderQueries
}

func NewOrderHandler(q queries.OrderQueries) *OrderHandler {
	return &OrderHandler{q: q}
}

// @Summary List orders
// @Description List orders newest first with keyset pagination
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param after query string false "Opaque cursor from a previous page"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.OrderListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /admin/orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = n
	}

	var after *queries.Cursor
	if raw := c.Query("after"); raw != "" {
		after = &queries.Cursor{After: raw}
	}

	items, next, err := h.q.List(c.Request.Context(), after, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to list orders", nil)
		return
	}

	var nextCursor *string
	if next != nil {
		nextCursor = &next.After
	}
	c.JSON(http.StatusOK, resdto.FromOrderList(items, nextCursor))
}

// @Summary Get order
// @Description Get an order with its received Stripe events
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID (checkout session ID)"
// @Success 200 {object} resdto.OrderResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /admin/orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load order", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrderView(view))
}
