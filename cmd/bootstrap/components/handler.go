package components

import (
	"merch-store/internal/handler"
	"merch-store/internal/handler/api"
	"merch-store/internal/handler/middleware"
	"merch-store/internal/pkg/config"
	"merch-store/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewProductHandler,
		api.NewAssetHandler,
		api.NewGenerateHandler,
		api.NewCheckoutHandler,
		api.NewWebhookHandler,
		api.NewMockupHandler,
		api.NewOrderHandler,
		api.NewJobHandler,
		NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewAuthMiddleware(jwtService *jwt.Service, cfg config.Config) *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(jwtService, cfg.Automation.SharedSecret)
}

func NewHandlers(
	auth *api.AuthHandler,
	product *api.ProductHandler,
	asset *api.AssetHandler,
	generate *api.GenerateHandler,
	checkout *api.CheckoutHandler,
	webhook *api.WebhookHandler,
	mockup *api.MockupHandler,
	order *api.OrderHandler,
	job *api.JobHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:     auth,
		Product:  product,
		Asset:    asset,
		Generate: generate,
		Checkout: checkout,
		Webhook:  webhook,
		Mockup:   mockup,
		Order:    order,
		Job:      job,
	}
}
