package queries

import (
	"context"

	"github.com/google/uuid"
)

type JobQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*JobView, error)
	ListRecent(ctx context.Context, limit int) ([]*JobView, error)
}

type JobViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*JobView, error)
	ListRecent(ctx context.Context, limit int) ([]*JobView, error)
}

type jobQueriesImpl struct {
	repo JobViewRepo
}

func NewJobQueries(repo JobViewRepo) JobQueries {
	return &jobQueriesImpl{repo: repo}
}

func (q *jobQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*JobView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *jobQueriesImpl) ListRecent(ctx context.Context, limit int) ([]*JobView, error) {
	return q.repo.ListRecent(ctx, ValidateLimit(limit))
}
