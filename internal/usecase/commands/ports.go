package commands

import (
	"context"
	"time"

	"merch-store/internal/domain/checkout"

	"github.com/google/uuid"
)

// CheckoutSessionParams carries everything the payment provider needs to
// build a hosted checkout page for one of our sessions.
type CheckoutSessionParams struct {
	CheckoutID uuid.UUID
	BuyerID    string
	Items      []checkout.LineItem
	Currency   string
}

type CheckoutSessionResult struct {
	URL             string
	StripeSessionID string
}

// PaymentEvent is a provider-neutral view of a verified webhook delivery.
// Payload keeps the exact raw body for the audit log.
type PaymentEvent struct {
	ID               string
	Type             string
	Created          time.Time
	Livemode         bool
	APIVersion       string
	CheckoutID       *uuid.UUID
	BuyerID          string
	CustomerEmail    string
	CustomerName     string
	AmountTotalCents int64
	Currency         string
	StripeSessionID  string
	PaymentIntentID  string
	Payload          []byte
}

type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, p CheckoutSessionParams) (*CheckoutSessionResult, error)
}

// WebhookVerifier checks the provider signature over the exact raw body
// and decodes the event. Verification happens before any persistence.
type WebhookVerifier interface {
	VerifyEvent(payload []byte, sigHeader string) (*PaymentEvent, error)
}

// GeneratedImage is one produced image. Exactly one of Bytes or URL is
// set depending on how the provider returned it.
type GeneratedImage struct {
	Bytes []byte
	URL   string
}

type ImageGenerator interface {
	Generate(ctx context.Context, prompt string, n int) ([]GeneratedImage, error)
}

type ImageFetcher interface {
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

type ObjectStore interface {
	// UploadPNG stores data under path and returns a publicly fetchable URL.
	UploadPNG(ctx context.Context, path string, data []byte) (string, error)
}
