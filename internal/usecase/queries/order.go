package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type OrderQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	// List pages newest-first with an opaque keyset cursor.
	List(ctx context.Context, after *Cursor, limit int) ([]*OrderListItem, *Cursor, error)
}

type OrderViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListFirstPage(ctx context.Context, limit int32) ([]*OrderListItem, error)
	ListKeyset(ctx context.Context, afterCreatedAt time.Time, afterID uuid.UUID, limit int32) ([]*OrderListItem, error)
}

type orderQueriesImpl struct {
	repo OrderViewRepo
}

func NewOrderQueries(repo OrderViewRepo) OrderQueries {
	return &orderQueriesImpl{repo: repo}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *orderQueriesImpl) List(ctx context.Context, after *Cursor, limit int) ([]*OrderListItem, *Cursor, error) {
	limit = ValidateLimit(limit)

	var (
		rows []*OrderListItem
		err  error
	)
	if after == nil || after.After == "" {
		rows, err = q.repo.ListFirstPage(ctx, int32(limit))
	} else {
		createdAt, id, derr := DecodeAfterCursor(after.After)
		if derr != nil {
			return nil, nil, derr
		}
		rows, err = q.repo.ListKeyset(ctx, createdAt, id, int32(limit))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) == limit {
		last := rows[len(rows)-1]
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
	}
	return rows, next, nil
}
