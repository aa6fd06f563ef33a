package queries

import (
	"time"

	"merch-store/internal/domain/checkout"

	"github.com/google/uuid"
)

type ProductView struct {
	ID                   uuid.UUID  `json:"id"`
	Name                 string     `json:"name"`
	Description          string     `json:"description"`
	PriceCents           int64      `json:"price_cents"`
	Active               bool       `json:"active"`
	PreviewImageURL      string     `json:"preview_image_url"`
	DefaultAssetID       *uuid.UUID `json:"default_asset_id,omitempty"`
	DefaultAssetImageURL *string    `json:"default_asset_image_url,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

type AssetView struct {
	ID        uuid.UUID  `json:"id"`
	JobID     *uuid.UUID `json:"job_id,omitempty"`
	Title     string     `json:"title"`
	Niche     string     `json:"niche"`
	Style     string     `json:"style,omitempty"`
	Prompt    string     `json:"prompt"`
	ImageURL  string     `json:"image_url"`
	ThumbURL  string     `json:"thumb_url"`
	Source    string     `json:"source"`
	RunID     string     `json:"run_id,omitempty"`
	RowID     string     `json:"row_id,omitempty"`
	Published bool       `json:"published"`
	CreatedAt time.Time  `json:"created_at"`
}

type JobView struct {
	ID             uuid.UUID  `json:"id"`
	RequestID      uuid.UUID  `json:"request_id"`
	RunID          string     `json:"run_id"`
	RowID          string     `json:"row_id,omitempty"`
	Prompt         string     `json:"prompt"`
	Title          string     `json:"title"`
	Niche          string     `json:"niche"`
	Style          string     `json:"style,omitempty"`
	Count          int        `json:"count"`
	Mock           bool       `json:"mock"`
	Status         string     `json:"status"`
	GeneratedCount int        `json:"generated_count"`
	ErrorMessage   string     `json:"error_message,omitempty"`
	StartedAt      time.Time  `json:"started_at"`
	FinishedAt     *time.Time `json:"finished_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type OrderEventView struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	ReceivedAt time.Time `json:"received_at"`
}

type OrderView struct {
	ID                uuid.UUID           `json:"id"`
	PaymentStatus     string              `json:"payment_status"`
	FulfillmentStatus string              `json:"fulfillment_status"`
	BuyerID           string              `json:"buyer_id,omitempty"`
	CustomerEmail     string              `json:"customer_email,omitempty"`
	CustomerName      string              `json:"customer_name,omitempty"`
	Items             []checkout.LineItem `json:"items"`
	AmountTotalCents  int64               `json:"amount_total_cents"`
	Currency          string              `json:"currency"`
	StripeSessionID   string              `json:"stripe_session_id,omitempty"`
	PaymentIntentID   string              `json:"payment_intent_id,omitempty"`
	PaidAt            time.Time           `json:"paid_at"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
	Events            []OrderEventView    `json:"events,omitempty"`
}

type OrderListItem struct {
	ID                uuid.UUID `json:"id"`
	PaymentStatus     string    `json:"payment_status"`
	FulfillmentStatus string    `json:"fulfillment_status"`
	CustomerEmail     string    `json:"customer_email,omitempty"`
	AmountTotalCents  int64     `json:"amount_total_cents"`
	Currency          string    `json:"currency"`
	ItemCount         int       `json:"item_count"`
	PaidAt            time.Time `json:"paid_at"`
	CreatedAt         time.Time `json:"created_at"`
}

type MockupView struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"product_id"`
	AssetID     uuid.UUID `json:"asset_id"`
	ImageURL    string    `json:"image_url"`
	Scale       float64   `json:"scale"`
	OffsetX     float64   `json:"offset_x"`
	OffsetY     float64   `json:"offset_y"`
	CreatedAt   time.Time `json:"created_at"`
	ProductName string    `json:"product_name"`
	AssetTitle  string    `json:"asset_title"`
}

type CheckoutSessionView struct {
	ID              uuid.UUID           `json:"id"`
	Status          string              `json:"status"`
	BuyerID         string              `json:"buyer_id,omitempty"`
	Items           []checkout.LineItem `json:"items"`
	SubtotalCents   int64               `json:"subtotal_cents"`
	Currency        string              `json:"currency"`
	StripeSessionID string              `json:"stripe_session_id,omitempty"`
	PaymentIntentID string              `json:"payment_intent_id,omitempty"`
	ErrorMessage    string              `json:"error_message,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}
