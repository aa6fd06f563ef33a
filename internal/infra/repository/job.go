package repository

import (
	"context"

	"merch-store/internal/domain/job"
	"merch-store/internal/infra"
	"merch-store/internal/infra/db"

	"github.com/google/uuid"
)

type JobRepository struct{}

func NewJobRepository() *JobRepository {
	return &JobRepository{}
}

const insertJobSQL = `
INSERT INTO jobs (id, request_id, run_id, row_id, prompt, title, niche, style, count, mock, status, started_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id
`

func (r *JobRepository) Create(ctx context.Context, tx db.DBTX, j *job.Job) (uuid.UUID, error) {
	req := j.Request()
	var id uuid.UUID
	err := tx.QueryRow(ctx, insertJobSQL,
		j.ID(), req.RequestID, req.RunID, req.RowID, req.Prompt, req.Title, req.Niche, req.Style,
		req.Count, req.Mock, j.Status(), j.StartedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create generation job", err)
	}
	return id, nil
}

const finishJobSQL = `
UPDATE jobs
SET status = $2, generated_count = $3, error_message = $4, finished_at = $5, updated_at = now()
WHERE id = $1 AND status = 'pending'
`

func (r *JobRepository) Finish(ctx context.Context, tx db.DBTX, j *job.Job) error {
	tag, err := tx.Exec(ctx, finishJobSQL,
		j.ID(), j.Status(), j.GeneratedCount(), j.ErrorMessage(), j.FinishedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to finish generation job", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("job missing or already finished", nil, infra.KindNotFound)
	}
	return nil
}
