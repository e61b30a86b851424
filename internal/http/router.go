package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/glacefrais/storefront/internal/config"
	"github.com/glacefrais/storefront/internal/http/handlers"
	"github.com/glacefrais/storefront/internal/http/middlewares"
	"github.com/glacefrais/storefront/internal/observability"
	"github.com/glacefrais/storefront/internal/repo/memory"
)

const ServiceName = "storefront-api"

func NewRouter(
	log *slog.Logger,
	cfg config.Config,
	catalog *memory.CatalogRepo,
	users *memory.UsersRepo,
	prom *observability.Prom,
) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// middleware

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORS(cfg.AllowedOrigins))
	r.Use(middlewares.RequireJSON())
	r.Use(middlewares.MaxBodyBytes(cfg.MaxBodyBytes))

	if prom != nil {
		r.Use(prom.GinHandleMiddleware())
	}

	if cfg.OTLPEndpoint != "" {
		r.Use(otelgin.Middleware(ServiceName))
	}

	// health
	h := handlers.NewHealthHandler()
	r.GET("/healthz", h.Healthz)
	r.GET("/readyz", h.Readyz)

	if prom != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(prom.Registry, promhttp.HandlerOpts{})))
	}

	// wire up handlers against the in-memory repos
	productsHandler := handlers.NewProductsHandler(catalog, prom)
	authHandler := handlers.NewAuthHandler(users, prom)

	loginLimiter := middlewares.NewRateLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow)

	r.GET("/products", productsHandler.ListProducts)
	r.GET("/products/categories", productsHandler.ListCategories)
	r.GET("/products/featured", productsHandler.ListFeatured)
	r.POST("/products", middlewares.RequireAdmin(), productsHandler.CreateProduct)

	r.POST("/login", loginLimiter.Middleware(middlewares.KeyByIP), authHandler.Login)

	return r
}
