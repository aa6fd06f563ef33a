package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"merch-store/internal/handler/api"
	"merch-store/internal/handler/middleware"
	"merch-store/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth     *api.AuthHandler
	Product  *api.ProductHandler
	Asset    *api.AssetHandler
	Generate *api.GenerateHandler
	Checkout *api.CheckoutHandler
	Webhook  *api.WebhookHandler
	Mockup   *api.MockupHandler
	Order    *api.OrderHandler
	Job      *api.JobHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/auth"), []route{
			{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
		})

		addRoutes(apiGroup.Group("/products"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Product.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Product.Get},
			{Method: http.MethodGet, Path: "/:id/mockups", Handler: h.Product.ListMockups},
		})

		addRoutes(apiGroup.Group("/assets"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Asset.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Asset.Get},
		})

		addRoutes(apiGroup.Group("/checkout"), []route{
			{Method: http.MethodPost, Path: "", Handler: h.Checkout.Create},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Checkout.Get},
		})

		apiGroup.POST("/webhooks/stripe", h.Webhook.Handle)

		automation := apiGroup.Group("")
		automation.Use(authMiddleware.RequireAutomationSecret())
		{
			addRoutes(automation, []route{
				{Method: http.MethodPost, Path: "/assets/generate", Handler: h.Generate.Generate},
				{Method: http.MethodPost, Path: "/mockups", Handler: h.Mockup.Save},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/products", Handler: h.Product.AdminList},
				{Method: http.MethodPost, Path: "/products", Handler: h.Product.Create},
				{Method: http.MethodPut, Path: "/products/:id", Handler: h.Product.Update},
				{Method: http.MethodDelete, Path: "/products/:id", Handler: h.Product.Delete},

				{Method: http.MethodGet, Path: "/assets", Handler: h.Asset.AdminList},
				{Method: http.MethodPost, Path: "/assets", Handler: h.Asset.Create},
				{Method: http.MethodPatch, Path: "/assets/:id/publish", Handler: h.Asset.SetPublished},
				{Method: http.MethodDelete, Path: "/assets/:id", Handler: h.Asset.Delete},

				{Method: http.MethodGet, Path: "/orders", Handler: h.Order.List},
				{Method: http.MethodGet, Path: "/orders/:id", Handler: h.Order.Get},

				{Method: http.MethodGet, Path: "/jobs", Handler: h.Job.List},
				{Method: http.MethodGet, Path: "/jobs/:id", Handler: h.Job.Get},

				{Method: http.MethodGet, Path: "/mockups/:id", Handler: h.Mockup.Get},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
