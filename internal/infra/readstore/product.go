package readstore

import (
	"context"

	"merch-store/internal/infra"
	"merch-store/internal/infra/db"
	"merch-store/internal/usecase/queries"

	"github.com/google/uuid"
)

type ProductReadStore struct {
	db db.DBTX
}

func NewProductReadStore(dbtx db.DBTX) *ProductReadStore {
	return &ProductReadStore{db: dbtx}
}

const productSelectSQL = `
SELECT p.id, p.name, p.description, p.price_cents, p.active, p.preview_image_url,
       p.default_asset_id, a.image_url, p.created_at, p.updated_at
FROM products p
LEFT JOIN assets a ON a.id = p.default_asset_id
`

func (r *ProductReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ProductView, error) {
	row := r.db.QueryRow(ctx, productSelectSQL+`WHERE p.id = $1`, id)

	v, err := scanProductView(row)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find product by ID", err)
	}
	return v, nil
}

// List returns active products only when activeOnly is set; the admin
// surface passes false to see drafts too.
func (r *ProductReadStore) List(ctx context.Context, activeOnly bool) ([]*queries.ProductView, error) {
	sql := productSelectSQL
	if activeOnly {
		sql += `WHERE p.active `
	}
	sql += `ORDER BY p.created_at DESC`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	var result []*queries.ProductView
	for rows.Next() {
		v, err := scanProductView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate product rows", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProductView(row rowScanner) (*queries.ProductView, error) {
	var v queries.ProductView
	err := row.Scan(
		&v.ID, &v.Name, &v.Description, &v.PriceCents, &v.Active, &v.PreviewImageURL,
		&v.DefaultAssetID, &v.DefaultAssetImageURL, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
