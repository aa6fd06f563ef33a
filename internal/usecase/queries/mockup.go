package queries

import (
	"context"

	"github.com/google/uuid"
)

type MockupQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*MockupView, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*MockupView, error)
}

type MockupViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MockupView, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]*MockupView, error)
}

type mockupQueriesImpl struct {
	repo MockupViewRepo
}

func NewMockupQueries(repo MockupViewRepo) MockupQueries {
	return &mockupQueriesImpl{repo: repo}
}

func (q *mockupQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*MockupView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *mockupQueriesImpl) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*MockupView, error) {
	return q.repo.ListByProduct(ctx, productID)
}
