package readstore

import (
	"context"

	"merch-store/internal/infra"
	"merch-store/internal/infra/db"
	"merch-store/internal/usecase/queries"

	"github.com/google/uuid"
)

type MockupReadStore struct {
	db db.DBTX
}

func NewMockupReadStore(dbtx db.DBTX) *MockupReadStore {
	return &MockupReadStore{db: dbtx}
}

const mockupSelectSQL = `
SELECT m.id, m.product_id, m.asset_id, m.image_url, m.scale, m.offset_x, m.offset_y, m.created_at,
       p.name AS product_name, a.title AS asset_title
FROM mockups m
JOIN products p ON p.id = m.product_id
JOIN assets a ON a.id = m.asset_id
`

func (r *MockupReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MockupView, error) {
	var v queries.MockupView
	err := r.db.QueryRow(ctx, mockupSelectSQL+`WHERE m.id = $1`, id).Scan(
		&v.ID, &v.ProductID, &v.AssetID, &v.ImageURL, &v.Scale, &v.OffsetX, &v.OffsetY, &v.CreatedAt,
		&v.ProductName, &v.AssetTitle,
	)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("mockup not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find mockup by ID", err)
	}
	return &v, nil
}

func (r *MockupReadStore) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*queries.MockupView, error) {
	rows, err := r.db.Query(ctx, mockupSelectSQL+`WHERE m.product_id = $1 ORDER BY m.created_at DESC`, productID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list mockups for product", err)
	}
	defer rows.Close()

	var result []*queries.MockupView
	for rows.Next() {
		var v queries.MockupView
		err := rows.Scan(&v.ID, &v.ProductID, &v.AssetID, &v.ImageURL, &v.Scale, &v.OffsetX, &v.OffsetY, &v.CreatedAt,
			&v.ProductName, &v.AssetTitle)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan mockup row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate mockup rows", err)
	}
	return result, nil
}
