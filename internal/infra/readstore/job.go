package readstore

import (
	"context"

	"merch-store/internal/infra"
	"merch-store/internal/infra/db"
	"merch-store/internal/usecase/queries"

	"github.com/google/uuid"
)

type JobReadStore struct {
	db db.DBTX
}

func NewJobReadStore(dbtx db.DBTX) *JobReadStore {
	return &JobReadStore{db: dbtx}
}

const jobSelectSQL = `
SELECT id, request_id, run_id, row_id, prompt, title, niche, style, count, mock,
       status, generated_count, error_message, started_at, finished_at, created_at
FROM jobs
`

func (r *JobReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.JobView, error) {
	row := r.db.QueryRow(ctx, jobSelectSQL+`WHERE id = $1`, id)

	v, err := scanJobView(row)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, infra.WrapRepoErr("job not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find job by ID", err)
	}
	return v, nil
}

func (r *JobReadStore) ListRecent(ctx context.Context, limit int) ([]*queries.JobView, error) {
	rows, err := r.db.Query(ctx, jobSelectSQL+`ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list jobs", err)
	}
	defer rows.Close()

	var result []*queries.JobView
	for rows.Next() {
		v, err := scanJobView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan job row", err)
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate job rows", err)
	}
	return result, nil
}

func scanJobView(row rowScanner) (*queries.JobView, error) {
	var v queries.JobView
	err := row.Scan(
		&v.ID, &v.RequestID, &v.RunID, &v.RowID, &v.Prompt, &v.Title, &v.Niche, &v.Style,
		&v.Count, &v.Mock, &v.Status, &v.GeneratedCount, &v.ErrorMessage,
		&v.StartedAt, &v.FinishedAt, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
