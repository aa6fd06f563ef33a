package readstore

import (
	"context"

	"merch-store/internal/infra"
	"merch-store/internal/infra/db"
	"merch-store/internal/usecase/queries"

	"github.com/google/uuid"
)

type AssetReadStore struct {
	db db.DBTX
}

func NewAssetReadStore(dbtx db.DBTX) *AssetReadStore {
	return &AssetReadStore{db: dbtx}
}

const assetSelectSQL = `
SELECT id, job_id, title, niche, style, prompt, image_url, thumb_url, source, run_id, row_id, published, created_at
FROM assets
`

func (r *AssetReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AssetView, error) {
	row := r.db.QueryRow(ctx, assetSelectSQL+`WHERE id = $1`, id)

	v, err := scanAssetView(row)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("asset not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find asset by ID", err)
	}
	return v, nil
}

// List filters on publish state when published is non-nil. The public
// storefront only ever sees published assets.
func (r *AssetReadStore) List(ctx context.Context, published *bool) ([]*queries.AssetView, error) {
	sql := assetSelectSQL
	args := []any{}
	if published != nil {
		sql += `WHERE published = $1 `
		args = append(args, *published)
	}
	sql += `ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list assets", err)
	}
	defer rows.Close()

	var result []*queries.AssetView
	for rows.Next() {
		v, err := scanAssetView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan asset row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate asset rows", err)
	}
	return result, nil
}

func scanAssetView(row rowScanner) (*queries.AssetView, error) {
	var v queries.AssetView
	err := row.Scan(
		&v.ID, &v.JobID, &v.Title, &v.Niche, &v.Style, &v.Prompt, &v.ImageURL, &v.ThumbURL,
		&v.Source, &v.RunID, &v.RowID, &v.Published, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
