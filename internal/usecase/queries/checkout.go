package queries

import (
	"context"

	"github.com/google/uuid"
)

type CheckoutQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CheckoutSessionView, error)
}

type CheckoutViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CheckoutSessionView, error)
}

type checkoutQueriesImpl struct {
	repo CheckoutViewRepo
}

func NewCheckoutQueries(repo CheckoutViewRepo) CheckoutQueries {
	return &checkoutQueriesImpl{repo: repo}
}

func (q *checkoutQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CheckoutSessionView, error) {
	return q.repo.FindByID(ctx, id)
}
