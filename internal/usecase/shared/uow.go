package shared

import (
	"context"
	"time"

	"merch-store/internal/domain/asset"
	"merch-store/internal/domain/checkout"
	"merch-store/internal/domain/job"
	"merch-store/internal/domain/order"
	"merch-store/internal/domain/product"
	"merch-store/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Products() ProductRepository
	Assets() AssetRepository
	Jobs() JobRepository
	CheckoutSessions() CheckoutSessionRepository
	PaymentEvents() PaymentEventRepository
	Orders() OrderRepository
	Mockups() MockupRepository
	Quotas() QuotaRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ProductByID(ctx context.Context, id uuid.UUID) (*ProductSnapshot, error)
	AssetByID(ctx context.Context, id uuid.UUID) (*AssetSnapshot, error)
	CheckoutSessionByID(ctx context.Context, id uuid.UUID) (*CheckoutSessionSnapshot, error)
	PaymentEventByID(ctx context.Context, id string) (*PaymentEventRecord, error)
}

type ProductRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *product.Product) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, p *product.Product) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type AssetRepository interface {
	Create(ctx context.Context, tx db.DBTX, a *asset.Asset) (uuid.UUID, error)
	SetPublished(ctx context.Context, tx db.DBTX, id uuid.UUID, published bool) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type JobRepository interface {
	Create(ctx context.Context, tx db.DBTX, j *job.Job) (uuid.UUID, error)
	// Finish persists the terminal state of a job. A job row is written
	// exactly once more after creation.
	Finish(ctx context.Context, tx db.DBTX, j *job.Job) error
}

type CheckoutSessionRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *checkout.Session) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, s *checkout.Session) error
}

// PaymentEventRecord mirrors a stored webhook event row.
type PaymentEventRecord struct {
	ID         string
	Type       string
	CheckoutID *uuid.UUID
	ReceivedAt time.Time
}

type PaymentEventRepository interface {
	// Upsert persists the raw event before any processing. Redelivered
	// events hit the same primary key and converge on one row.
	Upsert(ctx context.Context, tx db.DBTX, e *PaymentEventRow) error
}

// PaymentEventRow is the full event payload as persisted.
type PaymentEventRow struct {
	ID              string
	Type            string
	APIVersion      string
	Livemode        bool
	CheckoutID      *uuid.UUID
	StripeSessionID string
	Payload         []byte
	CreatedAt       time.Time
}

type OrderRepository interface {
	// Upsert writes the order keyed by checkout session id. Replays
	// rewrite every column except created_at.
	Upsert(ctx context.Context, tx db.DBTX, o *order.Order) error
}

// Mockup records a design placed on a product with placement coordinates.
type Mockup struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	AssetID   uuid.UUID
	ImageURL  string
	Scale     float64
	OffsetX   float64
	OffsetY   float64
	CreatedAt time.Time
}

type MockupRepository interface {
	Create(ctx context.Context, tx db.DBTX, m *Mockup) (uuid.UUID, error)
}

type QuotaRepository interface {
	// TryConsume atomically adds n to the day's usage if the result stays
	// within cap. Returns the new usage and false when the cap would be
	// exceeded, leaving the counter untouched.
	TryConsume(ctx context.Context, tx db.DBTX, day time.Time, n, cap int) (int, bool, error)
}
