package repository

import (
	"context"
	"encoding/json"

	"merch-store/internal/domain/order"
	"merch-store/internal/infra"
	"merch-store/internal/infra/db"
	"merch-store/internal/pkg/errs"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// created_at is deliberately absent from the DO UPDATE set list so a
// redelivered webhook cannot move the original order timestamp.
const upsertOrderSQL = `
INSERT INTO orders (id, payment_status, fulfillment_status, buyer_id, customer_email, customer_name,
                    items, amount_total_cents, currency, stripe_session_id, payment_intent_id, paid_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
ON CONFLICT (id) DO UPDATE SET
    payment_status     = EXCLUDED.payment_status,
    buyer_id           = EXCLUDED.buyer_id,
    customer_email     = EXCLUDED.customer_email,
    customer_name      = EXCLUDED.customer_name,
    items              = EXCLUDED.items,
    amount_total_cents = EXCLUDED.amount_total_cents,
    currency           = EXCLUDED.currency,
    stripe_session_id  = EXCLUDED.stripe_session_id,
    payment_intent_id  = EXCLUDED.payment_intent_id,
    paid_at            = EXCLUDED.paid_at,
    updated_at         = now()
`

func (r *OrderRepository) Upsert(ctx context.Context, tx db.DBTX, o *order.Order) error {
	items, err := json.Marshal(o.Items())
	if err != nil {
		return errs.Wrap(err, "failed to encode order items")
	}

	_, err = tx.Exec(ctx, upsertOrderSQL,
		o.ID(), o.PaymentStatus(), o.FulfillmentStatus(), o.BuyerID(), o.CustomerEmail(), o.CustomerName(),
		items, o.AmountTotalCents(), o.Currency(), o.StripeSessionID(), o.PaymentIntentID(), o.PaidAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert order", err)
	}
	return nil
}
