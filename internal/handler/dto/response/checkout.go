package response

import (
	"time"

	"merch-store/internal/domain/checkout"
	"merch-store/internal/usecase/commands"
	"merch-store/internal/usecase/queries"

	"github.com/google/uuid"
)

type CheckoutCreatedResponse struct {
	CheckoutID uuid.UUID `json:"checkoutId"`
	URL        string    `json:"url"`
}

func FromCheckoutCreated(r *commands.CreateCheckoutResult) *CheckoutCreatedResponse {
	return &CheckoutCreatedResponse{CheckoutID: r.CheckoutID, URL: r.URL}
}

type CheckoutSessionResponse struct {
	ID              uuid.UUID           `json:"id"`
	Status          string              `json:"status"`
	BuyerID         string              `json:"buyerId,omitempty"`
	Items           []checkout.LineItem `json:"items"`
	SubtotalCents   int64               `json:"subtotalCents"`
	Currency        string              `json:"currency"`
	StripeSessionID string              `json:"stripeSessionId,omitempty"`
	ErrorMessage    string              `json:"errorMessage,omitempty"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
}

func FromCheckoutSessionView(v *queries.CheckoutSessionView) *CheckoutSessionResponse {
	return &CheckoutSessionResponse{
		ID:              v.ID,
		Status:          v.Status,
		BuyerID:         v.BuyerID,
		Items:           v.Items,
		SubtotalCents:   v.SubtotalCents,
		Currency:        v.Currency,
		StripeSessionID: v.StripeSessionID,
		ErrorMessage:    v.ErrorMessage,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}
