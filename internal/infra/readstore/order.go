package readstore

import (
	"context"
	"encoding/json"
	"time"

	"merch-store/internal/infra"
	"merch-store/internal/infra/db"
	"merch-store/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

const orderSelectSQL = `
SELECT id, payment_status, fulfillment_status, buyer_id, customer_email, customer_name,
       items, amount_total_cents, currency, stripe_session_id, payment_intent_id,
       paid_at, created_at, updated_at
FROM orders
`

func (r *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	row := r.db.QueryRow(ctx, orderSelectSQL+`WHERE id = $1`, id)

	v, err := scanOrderView(row)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	events, err := r.eventsForOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Events = events
	return v, nil
}

// eventsForOrder projects the raw webhook event log onto the order, so an
// operator can see every delivery Stripe made for a session.
func (r *OrderReadStore) eventsForOrder(ctx context.Context, id uuid.UUID) ([]queries.OrderEventView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, type, received_at FROM payment_events WHERE checkout_id = $1 ORDER BY received_at`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load payment events for order", err)
	}
	defer rows.Close()

	var events []queries.OrderEventView
	for rows.Next() {
		var e queries.OrderEventView
		if err := rows.Scan(&e.ID, &e.Type, &e.ReceivedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment event row", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payment event rows", err)
	}
	return events, nil
}

const orderListSQL = `
SELECT id, payment_status, fulfillment_status, customer_email, amount_total_cents,
       currency, jsonb_array_length(items), paid_at, created_at
FROM orders
`

func (r *OrderReadStore) ListFirstPage(ctx context.Context, limit int32) ([]*queries.OrderListItem, error) {
	rows, err := r.db.Query(ctx, orderListSQL+`ORDER BY created_at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders first page", err)
	}
	return collectOrderListItems(rows)
}

func (r *OrderReadStore) ListKeyset(ctx context.Context, afterCreatedAt time.Time, afterID uuid.UUID, limit int32) ([]*queries.OrderListItem, error) {
	rows, err := r.db.Query(ctx,
		orderListSQL+`WHERE (created_at, id) < ($1, $2) ORDER BY created_at DESC, id DESC LIMIT $3`,
		afterCreatedAt, afterID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders keyset page", err)
	}
	return collectOrderListItems(rows)
}

func collectOrderListItems(rows pgx.Rows) ([]*queries.OrderListItem, error) {
	defer rows.Close()

	var result []*queries.OrderListItem
	for rows.Next() {
		var item queries.OrderListItem
		err := rows.Scan(
			&item.ID, &item.PaymentStatus, &item.FulfillmentStatus, &item.CustomerEmail,
			&item.AmountTotalCents, &item.Currency, &item.ItemCount, &item.PaidAt, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order list row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order list rows", err)
	}
	return result, nil
}

func scanOrderView(row rowScanner) (*queries.OrderView, error) {
	var (
		v        queries.OrderView
		rawItems []byte
	)
	err := row.Scan(
		&v.ID, &v.PaymentStatus, &v.FulfillmentStatus, &v.BuyerID, &v.CustomerEmail, &v.CustomerName,
		&rawItems, &v.AmountTotalCents, &v.Currency, &v.StripeSessionID, &v.PaymentIntentID,
		&v.PaidAt, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rawItems, &v.Items); err != nil {
		return nil, err
	}
	return &v, nil
}
