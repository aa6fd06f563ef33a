package shared

import (
	"time"

	"merch-store/internal/domain/checkout"

	"github.com/google/uuid"
)

type ProductSnapshot struct {
	ID             uuid.UUID
	Name           string
	PriceCents     int64
	Active         bool
	DefaultAssetID *uuid.UUID
}

type AssetSnapshot struct {
	ID        uuid.UUID
	Title     string
	ImageURL  string
	Published bool
}

type CheckoutSessionSnapshot struct {
	ID              uuid.UUID
	Status          checkout.Status
	BuyerID         string
	Items           []checkout.LineItem
	SubtotalCents   int64
	Currency        string
	StripeSessionID string
	CreatedAt       time.Time
}
