package components

import (
	"merch-store/internal/infra/db"
	"merch-store/internal/infra/readstore"
	"merch-store/internal/infra/uow"
	"merch-store/internal/usecase/queries"
	"merch-store/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			readstore.NewProductReadStore,
			fx.As(new(queries.ProductViewRepo)),
		),
		fx.Annotate(
			readstore.NewAssetReadStore,
			fx.As(new(queries.AssetViewRepo)),
		),
		fx.Annotate(
			readstore.NewJobReadStore,
			fx.As(new(queries.JobViewRepo)),
		),
		fx.Annotate(
			readstore.NewOrderReadStore,
			fx.As(new(queries.OrderViewRepo)),
		),
		fx.Annotate(
			readstore.NewMockupReadStore,
			fx.As(new(queries.MockupViewRepo)),
		),
		fx.Annotate(
			readstore.NewCheckoutSessionReadStore,
			fx.As(new(queries.CheckoutViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
