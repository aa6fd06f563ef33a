package stripegw

import (
	"context"
	"encoding/json"
	"time"

	"merch-store/internal/pkg/config"
	"merch-store/internal/pkg/errs"
	"merch-store/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
	"github.com/stripe/stripe-go/v80/webhook"
)

// metadataCheckoutIDKey links a Stripe session back to our checkout row.
// The webhook side reads the same key, so the two must never drift.
const metadataCheckoutIDKey = "checkoutId"

type Gateway struct {
	cfg config.StripeConfig

	successURL string
	cancelURL  string
}

func NewGateway(cfg config.Config) *Gateway {
	stripe.Key = cfg.Stripe.SecretKey
	return &Gateway{
		cfg:        cfg.Stripe,
		successURL: cfg.Server.PublicBaseURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		cancelURL:  cfg.Server.PublicBaseURL + "/shop",
	}
}

func (g *Gateway) CreateCheckoutSession(ctx context.Context, p commands.CheckoutSessionParams) (*commands.CheckoutSessionResult, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(p.Items))
	for _, item := range p.Items {
		li := &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(p.Currency),
				UnitAmount: stripe.Int64(item.UnitAmountCents),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.DisplayName()),
				},
			},
			Quantity: stripe.Int64(int64(item.Quantity)),
		}
		if item.PreviewURL != "" {
			li.PriceData.ProductData.Images = []*string{stripe.String(item.PreviewURL)}
		}
		lineItems = append(lineItems, li)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(g.successURL),
		CancelURL:  stripe.String(g.cancelURL),
		Metadata: map[string]string{
			metadataCheckoutIDKey: p.CheckoutID.String(),
		},
	}
	if p.BuyerID != "" {
		params.Metadata["buyerId"] = p.BuyerID
	}
	params.Context = ctx

	s, err := session.New(params)
	if err != nil {
		return nil, errs.Wrap(err, "failed to create stripe checkout session")
	}

	return &commands.CheckoutSessionResult{
		URL:             s.URL,
		StripeSessionID: s.ID,
	}, nil
}

type Verifier struct {
	secret string
}

func NewVerifier(cfg config.Config) *Verifier {
	return &Verifier{secret: cfg.Stripe.WebhookSecret}
}

// VerifyEvent validates the signature over the exact raw body and maps the
// event into the neutral shape the reconciler consumes. Events that carry
// no checkout session object still come back with session fields zeroed.
func (v *Verifier) VerifyEvent(payload []byte, sigHeader string) (*commands.PaymentEvent, error) {
	event, err := webhook.ConstructEvent(payload, sigHeader, v.secret)
	if err != nil {
		return nil, errs.Wrap(err, "webhook signature verification failed")
	}

	pe := &commands.PaymentEvent{
		ID:         event.ID,
		Type:       string(event.Type),
		Created:    time.Unix(event.Created, 0).UTC(),
		Livemode:   event.Livemode,
		APIVersion: event.APIVersion,
		Payload:    payload,
	}

	switch event.Type {
	case "checkout.session.completed",
		"checkout.session.async_payment_succeeded",
		"checkout.session.expired":
		var cs stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &cs); err != nil {
			return nil, errs.Wrap(err, "failed to decode checkout session from event")
		}
		applySession(pe, &cs)
	}

	return pe, nil
}

func applySession(pe *commands.PaymentEvent, cs *stripe.CheckoutSession) {
	pe.StripeSessionID = cs.ID
	pe.AmountTotalCents = cs.AmountTotal
	pe.Currency = string(cs.Currency)

	if raw, ok := cs.Metadata[metadataCheckoutIDKey]; ok {
		if id, err := uuid.Parse(raw); err == nil {
			pe.CheckoutID = &id
		}
	}
	pe.BuyerID = cs.Metadata["buyerId"]

	if cs.CustomerDetails != nil {
		pe.CustomerEmail = cs.CustomerDetails.Email
		pe.CustomerName = cs.CustomerDetails.Name
	}
	if cs.PaymentIntent != nil {
		pe.PaymentIntentID = cs.PaymentIntent.ID
	}
}

var (
	_ commands.PaymentGateway  = (*Gateway)(nil)
	_ commands.WebhookVerifier = (*Verifier)(nil)
)
