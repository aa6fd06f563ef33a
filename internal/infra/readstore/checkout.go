package readstore

import (
	"context"
	"encoding/json"

	"merch-store/internal/infra"
	"merch-store/internal/infra/db"
	"merch-store/internal/usecase/queries"

	"github.com/google/uuid"
)

type CheckoutSessionReadStore struct {
	db db.DBTX
}

func NewCheckoutSessionReadStore(dbtx db.DBTX) *CheckoutSessionReadStore {
	return &CheckoutSessionReadStore{db: dbtx}
}

const checkoutSessionSelectSQL = `
SELECT id, status, buyer_id, items, subtotal_cents, currency,
       stripe_session_id, payment_intent_id, error_message, created_at, updated_at
FROM checkout_sessions
`

func (r *CheckoutSessionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CheckoutSessionView, error) {
	var (
		v        queries.CheckoutSessionView
		rawItems []byte
	)
	err := r.db.QueryRow(ctx, checkoutSessionSelectSQL+`WHERE id = $1`, id).Scan(
		&v.ID, &v.Status, &v.BuyerID, &rawItems, &v.SubtotalCents, &v.Currency,
		&v.StripeSessionID, &v.PaymentIntentID, &v.ErrorMessage, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("checkout session not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find checkout session by ID", err)
	}
	if err := json.Unmarshal(rawItems, &v.Items); err != nil {
		return nil, infra.WrapRepoErr("failed to decode checkout session items", err)
	}
	return &v, nil
}
