package readstore

import (
	"context"

	"merch-store/internal/infra"
	"merch-store/internal/infra/db"
	"merch-store/internal/usecase/shared"
)

type PaymentEventReadStore struct {
	db db.DBTX
}

func NewPaymentEventReadStore(dbtx db.DBTX) *PaymentEventReadStore {
	return &PaymentEventReadStore{db: dbtx}
}

func (r *PaymentEventReadStore) FindByID(ctx context.Context, id string) (*shared.PaymentEventRecord, error) {
	var rec shared.PaymentEventRecord
	err := r.db.QueryRow(ctx,
		`SELECT id, type, checkout_id, received_at FROM payment_events WHERE id = $1`, id,
	).Scan(&rec.ID, &rec.Type, &rec.CheckoutID, &rec.ReceivedAt)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment event by ID", err)
	}
	return &rec, nil
}
