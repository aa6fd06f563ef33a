package response

import (
	"time"

	"merch-store/internal/domain/checkout"
	"merch-store/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderEventResponse struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	ReceivedAt time.Time `json:"receivedAt"`
}

type OrderResponse struct {
	ID                uuid.UUID           `json:"id"`
	PaymentStatus     string              `json:"paymentStatus"`
	FulfillmentStatus string              `json:"fulfillmentStatus"`
	BuyerID           string              `json:"buyerId,omitempty"`
	CustomerEmail     string              `json:"customerEmail,omitempty"`
	CustomerName      string              `json:"customerName,omitempty"`
	Items             []checkout.LineItem `json:"items"`
	AmountTotalCents  int64               `json:"amountTotalCents"`
	Currency          string              `json:"currency"`
	StripeSessionID   string              `json:"stripeSessionId,omitempty"`
	PaymentIntentID   string              `json:"paymentIntentId,omitempty"`
	PaidAt            time.Time           `json:"paidAt"`
	CreatedAt         time.Time           `json:"createdAt"`
	UpdatedAt         time.Time           `json:"updatedAt"`
	Events            []OrderEventResponse `json:"events,omitempty"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	events := make([]OrderEventResponse, len(v.Events))
	for i, e := range v.Events {
		events[i] = OrderEventResponse{ID: e.ID, Type: e.Type, ReceivedAt: e.ReceivedAt}
	}
	return &OrderResponse{
		ID:                v.ID,
		PaymentStatus:     v.PaymentStatus,
		FulfillmentStatus: v.FulfillmentStatus,
		BuyerID:           v.BuyerID,
		CustomerEmail:     v.CustomerEmail,
		CustomerName:      v.CustomerName,
		Items:             v.Items,
		AmountTotalCents:  v.AmountTotalCents,
		Currency:          v.Currency,
		StripeSessionID:   v.StripeSessionID,
		PaymentIntentID:   v.PaymentIntentID,
		PaidAt:            v.PaidAt,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
		Events:            events,
	}
}

type OrderListItemResponse struct {
	ID                uuid.UUID `json:"id"`
	PaymentStatus     string    `json:"paymentStatus"`
	FulfillmentStatus string    `json:"fulfillmentStatus"`
	CustomerEmail     string    `json:"customerEmail,omitempty"`
	AmountTotalCents  int64     `json:"amountTotalCents"`
	Currency          string    `json:"currency"`
	ItemCount         int       `json:"itemCount"`
	PaidAt            time.Time `json:"paidAt"`
	CreatedAt         time.Time `json:"createdAt"`
}

type OrderListResponse struct {
	Orders     []*OrderListItemResponse `json:"orders"`
	NextCursor *string                  `json:"nextCursor,omitempty"`
}

func FromOrderList(items []*queries.OrderListItem, nextCursor *string) *OrderListResponse {
	orders := make([]*OrderListItemResponse, len(items))
	for i, it := range items {
		orders[i] = &OrderListItemResponse{
			ID:                it.ID,
			PaymentStatus:     it.PaymentStatus,
			FulfillmentStatus: it.FulfillmentStatus,
			CustomerEmail:     it.CustomerEmail,
			AmountTotalCents:  it.AmountTotalCents,
			Currency:          it.Currency,
			ItemCount:         it.ItemCount,
			PaidAt:            it.PaidAt,
			CreatedAt:         it.CreatedAt,
		}
	}
	return &OrderListResponse{Orders: orders, NextCursor: nextCursor}
}
