package repository

import (
	"context"

	"merch-store/internal/infra"
	"merch-store/internal/infra/db"
	"merch-store/internal/usecase/shared"

	"github.com/google/uuid"
)

type MockupRepository struct{}

func NewMockupRepository() *MockupRepository {
	return &MockupRepository{}
}

const insertMockupSQL = `
INSERT INTO mockups (id, product_id, asset_id, image_url, scale, offset_x, offset_y)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id
`

func (r *MockupRepository) Create(ctx context.Context, tx db.DBTX, m *shared.Mockup) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertMockupSQL,
		m.ID, m.ProductID, m.AssetID, m.ImageURL, m.Scale, m.OffsetX, m.OffsetY,
	).Scan(&id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("product or asset does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create mockup", err)
	}
	return id, nil
}
