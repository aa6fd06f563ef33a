package queries

import (
	"context"

	"github.com/google/uuid"
)

type ProductQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	// List returns only active products unless includeInactive is set.
	List(ctx context.Context, includeInactive bool) ([]*ProductView, error)
}

type ProductViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductView, error)
	List(ctx context.Context, activeOnly bool) ([]*ProductView, error)
}

type productQueriesImpl struct {
	repo ProductViewRepo
}

func NewProductQueries(repo ProductViewRepo) ProductQueries {
	return &productQueriesImpl{repo: repo}
}

func (q *productQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ProductView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *productQueriesImpl) List(ctx context.Context, includeInactive bool) ([]*ProductView, error) {
	return q.repo.List(ctx, !includeInactive)
}

type AssetQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AssetView, error)
	// List filters on publish state when published is non-nil.
	List(ctx context.Context, published *bool) ([]*AssetView, error)
}

type AssetViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AssetView, error)
	List(ctx context.Context, published *bool) ([]*AssetView, error)
}

type assetQueriesImpl struct {
	repo AssetViewRepo
}

func NewAssetQueries(repo AssetViewRepo) AssetQueries {
	return &assetQueriesImpl{repo: repo}
}

func (q *assetQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AssetView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *assetQueriesImpl) List(ctx context.Context, published *bool) ([]*AssetView, error) {
	return q.repo.List(ctx, published)
}
