package components

import (
	"merch-store/internal/pkg/clock"
	"merch-store/internal/usecase/commands"
	"merch-store/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewProductCommands,
		commands.NewAssetCommands,
		commands.NewGenerateUseCase,
		commands.NewCheckoutUseCase,
		commands.NewWebhookUseCase,
		commands.NewMockupUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewProductQueries,
		queries.NewAssetQueries,
		queries.NewJobQueries,
		queries.NewOrderQueries,
		queries.NewMockupQueries,
		queries.NewCheckoutQueries,
	),
)
