//go:build e2e

package checkout_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	reqdto "merch-store/internal/handler/dto/request"
	"merch-store/internal/handler/dto/response"
	"merch-store/internal/pkg/config"
	"merch-store/tests/common/authtest"
	"merch-store/tests/common/dbtest"
	"merch-store/tests/common/httptest"
	"merch-store/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	checkoutURL    = "/api/checkout"
	webhookURL     = "/api/webhooks/stripe"
	adminOrdersURL = "/api/admin/orders"
)

type CheckoutSuite struct {
	e2e.SharedSuite
}

func (s *CheckoutSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestCheckoutSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CheckoutSuite))
}

func (s *CheckoutSuite) seedCatalog(t *testing.T) (productID, assetID uuid.UUID) {
	productID = dbtest.CreateTestProduct(t, s.DB, "Classic Tee", 2500, true)
	assetID = dbtest.CreateTestAsset(t, s.DB, "Retro sunset", true)
	return productID, assetID
}

func (s *CheckoutSuite) createCheckout(t *testing.T, productID, assetID uuid.UUID, quantity int) response.CheckoutCreatedResponse {
	reqBody := reqdto.CreateCheckoutRequest{
		BuyerID: "buyer-123",
		Items: []reqdto.CheckoutItemRequest{
			{
				ID:        "cart-item-1",
				ProductID: productID.String(),
				AssetID:   assetID.String(),
				Quantity:  quantity,
			},
		},
	}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, reqBody, "")
	require.Equal(t, http.StatusCreated, w.Code, "Checkout should be created: %s", w.Body.String())

	var created response.CheckoutCreatedResponse
	_ = httptest.DecodeResponseBody(t, w.Body, &created)
	require.NotEmpty(t, created.CheckoutID)
	require.Contains(t, created.URL, "https://checkout.stripe.test/")
	return created
}

func (s *CheckoutSuite) deliverEvent(t *testing.T, event map[string]any) {
	payload, err := json.Marshal(event)
	require.NoError(t, err)

	w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, payload,
		map[string]string{
			"Content-Type":     "application/json",
			"Stripe-Signature": e2e.StubWebhookSignature,
		})
	require.Equal(t, http.StatusOK, w.Code, "Webhook should be acknowledged: %s", w.Body.String())
}

func paidEvent(checkoutID uuid.UUID, eventID string) map[string]any {
	return map[string]any{
		"ID":               eventID,
		"Type":             "checkout.session.completed",
		"Created":          time.Now().UTC().Format(time.RFC3339),
		"CheckoutID":       checkoutID.String(),
		"BuyerID":          "buyer-123",
		"CustomerEmail":    "buyer@example.com",
		"CustomerName":     "Pat Buyer",
		"AmountTotalCents": 5000,
		"Currency":         "usd",
		"StripeSessionID":  "cs_test_e2e",
		"PaymentIntentID":  "pi_test_e2e",
	}
}

// =============================================================================
// TestCheckoutFlow - Session creation and validation
// =============================================================================

func (s *CheckoutSuite) TestCheckoutFlow() {
	s.Run("Normal case: checkout session is created against the catalog", func() {
		t := s.T()
		productID, assetID := s.seedCatalog(t)

		created := s.createCheckout(t, productID, assetID, 2)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, checkoutURL+"/"+created.CheckoutID.String(), nil, "")
		require.Equal(t, http.StatusOK, gw.Code)

		var session response.CheckoutSessionResponse
		_ = httptest.DecodeResponseBody(t, gw.Body, &session)
		require.Equal(t, "stripe_created", session.Status)
		require.Equal(t, int64(5000), session.SubtotalCents)
		require.Equal(t, "usd", session.Currency)
		require.NotEmpty(t, session.StripeSessionID)
	})

	s.Run("Error case: empty cart is rejected", func() {
		t := s.T()

		body := map[string]any{"buyerId": "buyer-123", "items": []any{}}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, body, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "")
	})

	s.Run("Error case: inactive product cannot be bought", func() {
		t := s.T()
		productID := dbtest.CreateTestProduct(t, s.DB, "Retired Tee", 2500, false)
		assetID := dbtest.CreateTestAsset(t, s.DB, "Retro sunset", true)

		reqBody := reqdto.CreateCheckoutRequest{
			Items: []reqdto.CheckoutItemRequest{
				{ProductID: productID.String(), AssetID: assetID.String(), Quantity: 1},
			},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Product is not available")
	})

	s.Run("Error case: unpublished asset cannot be bought", func() {
		t := s.T()
		productID := dbtest.CreateTestProduct(t, s.DB, "Classic Tee", 2500, true)
		assetID := dbtest.CreateTestAsset(t, s.DB, "Hidden design", false)

		reqBody := reqdto.CreateCheckoutRequest{
			Items: []reqdto.CheckoutItemRequest{
				{ProductID: productID.String(), AssetID: assetID.String(), Quantity: 1},
			},
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, checkoutURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Asset is not available")
	})
}

// =============================================================================
// TestWebhookReconciliation - Paid and expired event handling
// =============================================================================

func (s *CheckoutSuite) TestWebhookReconciliation() {
	s.Run("Normal case: paid event creates an order and marks the session paid", func() {
		t := s.T()
		token := authtest.LoginAdmin(t, s.Router, s.Config.Admin.Email, config.TestAdminPassword)
		productID, assetID := s.seedCatalog(t)

		created := s.createCheckout(t, productID, assetID, 2)
		s.deliverEvent(t, paidEvent(created.CheckoutID, "evt_paid_1"))

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, checkoutURL+"/"+created.CheckoutID.String(), nil, "")
		var session response.CheckoutSessionResponse
		_ = httptest.DecodeResponseBody(t, gw.Body, &session)
		require.Equal(t, "paid", session.Status)

		ow := httptest.PerformRequest(t, s.Router, http.MethodGet, adminOrdersURL+"/"+created.CheckoutID.String(), nil, token)
		require.Equal(t, http.StatusOK, ow.Code, "Order should exist: %s", ow.Body.String())

		var order response.OrderResponse
		_ = httptest.DecodeResponseBody(t, ow.Body, &order)
		require.Equal(t, created.CheckoutID, order.ID)
		require.Equal(t, "paid", order.PaymentStatus)
		require.Equal(t, "unfulfilled", order.FulfillmentStatus)
		require.Equal(t, int64(5000), order.AmountTotalCents)
		require.Equal(t, "buyer@example.com", order.CustomerEmail)
		require.Len(t, order.Items, 1)
	})

	s.Run("Normal case: redelivered event is a no-op", func() {
		t := s.T()
		token := authtest.LoginAdmin(t, s.Router, s.Config.Admin.Email, config.TestAdminPassword)
		productID, assetID := s.seedCatalog(t)

		created := s.createCheckout(t, productID, assetID, 2)
		s.deliverEvent(t, paidEvent(created.CheckoutID, "evt_paid_2"))

		orderURL := adminOrdersURL + "/" + created.CheckoutID.String()
		fw := httptest.PerformRequest(t, s.Router, http.MethodGet, orderURL, nil, token)
		require.Equal(t, http.StatusOK, fw.Code)
		var first response.OrderResponse
		_ = httptest.DecodeResponseBody(t, fw.Body, &first)

		s.deliverEvent(t, paidEvent(created.CheckoutID, "evt_paid_2"))

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, adminOrdersURL, nil, token)
		require.Equal(t, http.StatusOK, lw.Code)

		var list response.OrderListResponse
		_ = httptest.DecodeResponseBody(t, lw.Body, &list)
		require.Len(t, list.Orders, 1)

		// The original order timestamp survives the redelivery; only
		// updated_at moves.
		sw := httptest.PerformRequest(t, s.Router, http.MethodGet, orderURL, nil, token)
		require.Equal(t, http.StatusOK, sw.Code)
		var second response.OrderResponse
		_ = httptest.DecodeResponseBody(t, sw.Body, &second)
		require.True(t, second.CreatedAt.Equal(first.CreatedAt),
			"createdAt moved: %s -> %s", first.CreatedAt, second.CreatedAt)
		require.True(t, second.UpdatedAt.After(first.UpdatedAt),
			"updatedAt did not advance: %s -> %s", first.UpdatedAt, second.UpdatedAt)
	})

	s.Run("Normal case: expired event closes the session without an order", func() {
		t := s.T()
		token := authtest.LoginAdmin(t, s.Router, s.Config.Admin.Email, config.TestAdminPassword)
		productID, assetID := s.seedCatalog(t)

		created := s.createCheckout(t, productID, assetID, 1)
		expired := paidEvent(created.CheckoutID, "evt_expired_1")
		expired["Type"] = "checkout.session.expired"
		s.deliverEvent(t, expired)

		gw := httptest.PerformRequest(t, s.Router, http.MethodGet, checkoutURL+"/"+created.CheckoutID.String(), nil, "")
		var session response.CheckoutSessionResponse
		_ = httptest.DecodeResponseBody(t, gw.Body, &session)
		require.Equal(t, "expired", session.Status)

		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, adminOrdersURL, nil, token)
		var list response.OrderListResponse
		_ = httptest.DecodeResponseBody(t, lw.Body, &list)
		require.Empty(t, list.Orders)
	})

	s.Run("Error case: bad signature is refused", func() {
		t := s.T()

		w := httptest.PerformRawRequest(t, s.Router, http.MethodPost, webhookURL, []byte(`{}`),
			map[string]string{
				"Content-Type":     "application/json",
				"Stripe-Signature": "t=bogus,v1=bogus",
			})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}
