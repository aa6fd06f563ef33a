package bootstrap

import (
	"merch-store/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	JWTModule,
	GatewayModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
