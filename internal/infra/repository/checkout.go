package repository

import (
	"context"
	"encoding/json"

	"merch-store/internal/domain/checkout"
	"merch-store/internal/infra"
	"merch-store/internal/infra/db"
	"merch-store/internal/pkg/errs"

	"github.com/google/uuid"
)

type CheckoutSessionRepository struct{}

func NewCheckoutSessionRepository() *CheckoutSessionRepository {
	return &CheckoutSessionRepository{}
}

const insertCheckoutSessionSQL = `
INSERT INTO checkout_sessions (id, status, buyer_id, items, subtotal_cents, currency, stripe_session_id, payment_intent_id, error_message)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING id
`

func (r *CheckoutSessionRepository) Create(ctx context.Context, tx db.DBTX, s *checkout.Session) (uuid.UUID, error) {
	items, err := json.Marshal(s.Items())
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "failed to encode line items")
	}

	var id uuid.UUID
	err = tx.QueryRow(ctx, insertCheckoutSessionSQL,
		s.ID(), s.Status(), s.BuyerID(), items, s.Amount().SubtotalCents, s.Amount().Currency,
		s.StripeSessionID(), s.PaymentIntentID(), s.ErrorMessage(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create checkout session", err)
	}
	return id, nil
}

const updateCheckoutSessionSQL = `
UPDATE checkout_sessions
SET status = $2, stripe_session_id = $3, payment_intent_id = $4, error_message = $5, updated_at = now()
WHERE id = $1
`

func (r *CheckoutSessionRepository) Update(ctx context.Context, tx db.DBTX, s *checkout.Session) error {
	tag, err := tx.Exec(ctx, updateCheckoutSessionSQL,
		s.ID(), s.Status(), s.StripeSessionID(), s.PaymentIntentID(), s.ErrorMessage(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update checkout session", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("checkout session not found", nil, infra.KindNotFound)
	}
	return nil
}
