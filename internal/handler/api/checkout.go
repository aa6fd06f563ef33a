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

type CheckoutHandler struct {
	cmds commands.CheckoutCommands
	q    queries.CheckoutQueries
}

func NewCheckoutHandler(cmds commands.CheckoutCommands, q queries.CheckoutQueries) *CheckoutHandler {
	return &CheckoutHandler{cmds: cmds, q: q}
}

// @Summary Create checkout session
// @Description Create a Stripe hosted checkout session for the cart
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCheckoutRequest true "Checkout request"
// @Success 201 {object} resdto.CheckoutCreatedResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /checkout [post]
func (h *CheckoutHandler) Create(c *gin.Context) {
	var req reqdto.CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid product or asset id", nil)
		return
	}
	result, err := h.cmds.CreateCheckout(c.Request.Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmptyCart):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Cart is empty", nil)
		case errors.Is(err, commands.ErrProductUnavailable):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Product is not available", nil)
		case errors.Is(err, commands.ErrAssetUnavailable):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Asset is not available", nil)
		case errors.Is(err, commands.ErrCheckoutSessionFailed):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Failed to create checkout session", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Checkout failed", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCheckoutCreated(result))
}

// @Summary Get checkout session
// @Description Get a checkout session by ID, used by the success page
// @Tags checkout
// @Produce json
// @Param id path string true "Checkout session ID"
// @Success 200 {object} resdto.CheckoutSessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /checkout/{id} [get]
func (h *CheckoutHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Checkout session not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load checkout session", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutSessionView(view))
}
