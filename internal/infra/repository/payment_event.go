package repository

import (
	"context"

	"merch-store/internal/infra"
	"merch-store/internal/infra/db"
	"merch-store/internal/usecase/shared"
)

type PaymentEventRepository struct{}

func NewPaymentEventRepository() *PaymentEventRepository {
	return &PaymentEventRepository{}
}

// The DO UPDATE branch intentionally writes nothing new: it makes the
// statement succeed on redelivery without touching the original row.
const upsertPaymentEventSQL = `
INSERT INTO payment_events (id, type, api_version, livemode, checkout_id, stripe_session_id, payload, event_created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET id = payment_events.id
`

func (r *PaymentEventRepository) Upsert(ctx context.Context, tx db.DBTX, e *shared.PaymentEventRow) error {
	_, err := tx.Exec(ctx, upsertPaymentEventSQL,
		e.ID, e.Type, e.APIVersion, e.Livemode, e.CheckoutID, e.StripeSessionID, e.Payload, e.CreatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to persist payment event", err)
	}
	return nil
}
