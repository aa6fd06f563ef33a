package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"merch-store/internal/domain/checkout"
	"merch-store/internal/infra/db"
	"merch-store/internal/infra/readstore"
	"merch-store/internal/infra/repository"
	"merch-store/internal/pkg/errs"
	"merch-store/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	productRepo  shared.ProductRepository
	assetRepo    shared.AssetRepository
	jobRepo      shared.JobRepository
	checkoutRepo shared.CheckoutSessionRepository
	eventRepo    shared.PaymentEventRepository
	orderRepo    shared.OrderRepository
	mockupRepo   shared.MockupRepository
	quotaRepo    shared.QuotaRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Products() shared.ProductRepository {
	if t.productRepo == nil {
		t.productRepo = repository.NewProductRepository()
	}
	return t.productRepo
}

func (t *pgTx) Assets() shared.AssetRepository {
	if t.assetRepo == nil {
		t.assetRepo = repository.NewAssetRepository()
	}
	return t.assetRepo
}

func (t *pgTx) Jobs() shared.JobRepository {
	if t.jobRepo == nil {
		t.jobRepo = repository.NewJobRepository()
	}
	return t.jobRepo
}

func (t *pgTx) CheckoutSessions() shared.CheckoutSessionRepository {
	if t.checkoutRepo == nil {
		t.checkoutRepo = repository.NewCheckoutSessionRepository()
	}
	return t.checkoutRepo
}

func (t *pgTx) PaymentEvents() shared.PaymentEventRepository {
	if t.eventRepo == nil {
		t.eventRepo = repository.NewPaymentEventRepository()
	}
	return t.eventRepo
}

func (t *pgTx) Orders() shared.OrderRepository {
	if t.orderRepo == nil {
		t.orderRepo = repository.NewOrderRepository()
	}
	return t.orderRepo
}

func (t *pgTx) Mockups() shared.MockupRepository {
	if t.mockupRepo == nil {
		t.mockupRepo = repository.NewMockupRepository()
	}
	return t.mockupRepo
}

func (t *pgTx) Quotas() shared.QuotaRepository {
	if t.quotaRepo == nil {
		t.quotaRepo = repository.NewQuotaRepository()
	}
	return t.quotaRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	productStore  *readstore.ProductReadStore
	assetStore    *readstore.AssetReadStore
	checkoutStore *readstore.CheckoutSessionReadStore
	eventStore    *readstore.PaymentEventReadStore
}

func (r *commandReads) ProductByID(ctx context.Context, id uuid.UUID) (*shared.ProductSnapshot, error) {
	if r.productStore == nil {
		r.productStore = readstore.NewProductReadStore(r.dbtx)
	}

	p, err := r.productStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.ProductSnapshot{
		ID:             p.ID,
		Name:           p.Name,
		PriceCents:     p.PriceCents,
		Active:         p.Active,
		DefaultAssetID: p.DefaultAssetID,
	}
	return snapshot, nil
}

func (r *commandReads) AssetByID(ctx context.Context, id uuid.UUID) (*shared.AssetSnapshot, error) {
	if r.assetStore == nil {
		r.assetStore = readstore.NewAssetReadStore(r.dbtx)
	}

	a, err := r.assetStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.AssetSnapshot{
		ID:        a.ID,
		Title:     a.Title,
		ImageURL:  a.ImageURL,
		Published: a.Published,
	}
	return snapshot, nil
}

func (r *commandReads) CheckoutSessionByID(ctx context.Context, id uuid.UUID) (*shared.CheckoutSessionSnapshot, error) {
	if r.checkoutStore == nil {
		r.checkoutStore = readstore.NewCheckoutSessionReadStore(r.dbtx)
	}

	s, err := r.checkoutStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.CheckoutSessionSnapshot{
		ID:              s.ID,
		Status:          checkout.Status(s.Status),
		BuyerID:         s.BuyerID,
		Items:           s.Items,
		SubtotalCents:   s.SubtotalCents,
		Currency:        s.Currency,
		StripeSessionID: s.StripeSessionID,
		CreatedAt:       s.CreatedAt,
	}
	return snapshot, nil
}

func (r *commandReads) PaymentEventByID(ctx context.Context, id string) (*shared.PaymentEventRecord, error) {
	if r.eventStore == nil {
		r.eventStore = readstore.NewPaymentEventReadStore(r.dbtx)
	}
	return r.eventStore.FindByID(ctx, id)
}
