package repository

import (
	"context"

	"merch-store/internal/domain/product"
	"merch-store/internal/infra"
	"merch-store/internal/infra/db"

	"github.com/google/uuid"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

const insertProductSQL = `
INSERT INTO products (id, name, description, price_cents, active, preview_image_url, default_asset_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`

func (r *ProductRepository) Create(ctx context.Context, tx db.DBTX, p *product.Product) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertProductSQL,
		p.ID(), p.Name(), p.Description(), p.PriceCents(), p.Active(), p.PreviewImageURL(), p.DefaultAssetID(),
	).Scan(&id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("default asset does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create product", err)
	}
	return id, nil
}

const updateProductSQL = `
UPDATE products
SET name = $2, description = $3, price_cents = $4, active = $5,
    preview_image_url = $6, default_asset_id = $7, updated_at = now()
WHERE id = $1
`

func (r *ProductRepository) Update(ctx context.Context, tx db.DBTX, p *product.Product) error {
	tag, err := tx.Exec(ctx, updateProductSQL,
		p.ID(), p.Name(), p.Description(), p.PriceCents(), p.Active(), p.PreviewImageURL(), p.DefaultAssetID(),
	)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("default asset does not exist", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to update product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("product not found", nil, infra.KindNotFound)
	}
	return nil
}
