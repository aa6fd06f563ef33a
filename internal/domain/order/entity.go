package order

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"merch-store/internal/domain/checkout"
)

// PaymentStatus tracks what Stripe told us; FulfillmentStatus tracks what
// the shop has done about it. The axes move independently.
type PaymentStatus string

type FulfillmentStatus string

const (
	PaymentPaid PaymentStatus = "paid"

	FulfillmentUnfulfilled FulfillmentStatus = "unfulfilled"
	FulfillmentShipped     FulfillmentStatus = "shipped"
	FulfillmentDelivered   FulfillmentStatus = "delivered"
)

var ErrNoItems = errors.New("order requires at least one line item")

// Order is the durable record written when a checkout session completes.
// Its id equals the originating checkout session id, which is what makes
// webhook redelivery converge on a single row.
type Order struct {
	id                uuid.UUID
	paymentStatus     PaymentStatus
	fulfillmentStatus FulfillmentStatus
	buyerID           string
	customerEmail     string
	customerName      string
	items             []checkout.LineItem
	amountTotalCents  int64
	currency          string
	stripeSessionID   string
	paymentIntentID   string
	paidAt            time.Time
	createdAt         time.Time
	updatedAt         time.Time
}

type NewOrderParams struct {
	CheckoutID       uuid.UUID
	BuyerID          string
	CustomerEmail    string
	CustomerName     string
	Items            []checkout.LineItem
	AmountTotalCents int64
	Currency         string
	StripeSessionID  string
	PaymentIntentID  string
	PaidAt           time.Time
}

func NewOrder(p NewOrderParams) (*Order, error) {
	if len(p.Items) == 0 {
		return nil, ErrNoItems
	}
	return &Order{
		id:                p.CheckoutID,
		paymentStatus:     PaymentPaid,
		fulfillmentStatus: FulfillmentUnfulfilled,
		buyerID:           p.BuyerID,
		customerEmail:     p.CustomerEmail,
		customerName:      p.CustomerName,
		items:             p.Items,
		amountTotalCents:  p.AmountTotalCents,
		currency:          p.Currency,
		stripeSessionID:   p.StripeSessionID,
		paymentIntentID:   p.PaymentIntentID,
		paidAt:            p.PaidAt,
	}, nil
}

func ReconstructOrder(
	id uuid.UUID,
	paymentStatus PaymentStatus,
	fulfillmentStatus FulfillmentStatus,
	buyerID, customerEmail, customerName string,
	items []checkout.LineItem,
	amountTotalCents int64,
	currency, stripeSessionID, paymentIntentID string,
	paidAt, createdAt, updatedAt time.Time,
) *Order {
	return &Order{
		id:                id,
		paymentStatus:     paymentStatus,
		fulfillmentStatus: fulfillmentStatus,
		buyerID:           buyerID,
		customerEmail:     customerEmail,
		customerName:      customerName,
		items:             items,
		amountTotalCents:  amountTotalCents,
		currency:          currency,
		stripeSessionID:   stripeSessionID,
		paymentIntentID:   paymentIntentID,
		paidAt:            paidAt,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (o *Order) ID() uuid.UUID                        { return o.id }
func (o *Order) PaymentStatus() PaymentStatus         { return o.paymentStatus }
func (o *Order) FulfillmentStatus() FulfillmentStatus { return o.fulfillmentStatus }
func (o *Order) BuyerID() string                      { return o.buyerID }
func (o *Order) CustomerEmail() string                { return o.customerEmail }
func (o *Order) CustomerName() string                 { return o.customerName }
func (o *Order) Items() []checkout.LineItem           { return o.items }
func (o *Order) AmountTotalCents() int64              { return o.amountTotalCents }
func (o *Order) Currency() string                     { return o.currency }
func (o *Order) StripeSessionID() string              { return o.stripeSessionID }
func (o *Order) PaymentIntentID() string              { return o.paymentIntentID }
func (o *Order) PaidAt() time.Time                    { return o.paidAt }
func (o *Order) CreatedAt() time.Time                 { return o.createdAt }
func (o *Order) UpdatedAt() time.Time                 { return o.updatedAt }
