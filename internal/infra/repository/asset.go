package repository

import (
	"context"

	"merch-store/internal/domain/asset"
	"merch-store/internal/infra"
	"merch-store/internal/infra/db"

	"github.com/google/uuid"
)

type AssetRepository struct{}

func NewAssetRepository() *AssetRepository {
	return &AssetRepository{}
}

const insertAssetSQL = `
INSERT INTO assets (id, job_id, title, niche, style, prompt, image_url, thumb_url, storage_path, source, run_id, row_id, published)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
RETURNING id
`

func (r *AssetRepository) Create(ctx context.Context, tx db.DBTX, a *asset.Asset) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertAssetSQL,
		a.ID(), a.JobID(), a.Title(), a.Niche(), a.Style(), a.Prompt(), a.ImageURL(), a.ThumbURL(),
		a.StoragePath(), a.Source(), a.RunID(), a.RowID(), a.Published(),
	).Scan(&id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("generation job does not exist", err, infra.KindForeignKeyViolated)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create asset", err)
	}
	return id, nil
}

func (r *AssetRepository) SetPublished(ctx context.Context, tx db.DBTX, id uuid.UUID, published bool) error {
	tag, err := tx.Exec(ctx, `UPDATE assets SET published = $2, updated_at = now() WHERE id = $1`, id, published)
	if err != nil {
		return infra.WrapRepoErr("failed to update asset publish state", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("asset not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AssetRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM assets WHERE id = $1`, id)
	if err != nil {
		if db.IsForeignKeyViolation(err) {
			return infra.WrapRepoErr("asset is referenced by a product", err, infra.KindForeignKeyViolated)
		}
		return infra.WrapRepoErr("failed to delete asset", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("asset not found", nil, infra.KindNotFound)
	}
	return nil
}
