package bootstrap

import (
	"context"

	"merch-store/internal/infra/imagegen"
	"merch-store/internal/infra/objstore"
	"merch-store/internal/infra/stripegw"
	"merch-store/internal/pkg/config"
	"merch-store/internal/usecase/commands"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateways",
	fx.Provide(
		fx.Annotate(
			stripegw.NewGateway,
			fx.As(new(commands.PaymentGateway)),
		),
		fx.Annotate(
			stripegw.NewVerifier,
			fx.As(new(commands.WebhookVerifier)),
		),
		fx.Annotate(
			NewObjectStore,
			fx.As(new(commands.ObjectStore)),
		),
		fx.Annotate(
			NewImageGenerator,
			fx.As(new(commands.ImageGenerator)),
		),
		fx.Annotate(
			imagegen.NewHTTPFetcher,
			fx.As(new(commands.ImageFetcher)),
		),
	),
)

func NewObjectStore(lc fx.Lifecycle, cfg config.Config) (*objstore.GCSStore, error) {
	store, cleanup, err := objstore.NewGCSStore(context.Background(), cfg.Storage)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return store, nil
}

func NewImageGenerator(cfg config.Config) *imagegen.OpenAIGenerator {
	return imagegen.NewOpenAIGenerator(cfg.ImageGen)
}
