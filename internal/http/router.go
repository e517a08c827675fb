package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/lavalbakery/fulfillment-service/internal/metrics"
	"github.com/lavalbakery/fulfillment-service/internal/middleware"
	"github.com/lavalbakery/fulfillment-service/internal/service"
)

// RouterConfig holds router configuration options.
type RouterConfig struct {
	RateLimit         int
	RateWindow        time.Duration
	RequestTimeout    time.Duration
	APIKeys           map[string]bool
	EnableAPIKeyAuth  bool
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string

	// StaffJWTSecret enables the staff order routes when non-empty and an
	// order service is configured.
	StaffJWTSecret string

	Quotes      service.QuoteService
	Scheduler   service.Scheduler
	Eligibility service.EligibilityService
	Checkout    service.CheckoutService
	Orders      service.OrderService

	// Clock supplies the current instant in the bakery's timezone. Nil
	// falls back to the wall clock.
	Clock service.Clock
}

// DefaultRouterConfig returns the default router configuration.
func DefaultRouterConfig() RouterConfig {
	return RouterConfig{
		RateLimit:  100,
		RateWindow: time.Minute,
	}
}

// NewRouter creates and configures the Gin router for the fulfillment
// service.
func NewRouter(healthHandler *HealthHandler, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, healthHandler, &cfg)

	api := router.Group("/api")
	configureAPIMiddleware(api, &cfg)

	registerDeliveryRoutes(api, &cfg)
	registerCheckoutRoutes(api, &cfg)
	registerStaffRoutes(api, &cfg)

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept-Language", "Authorization", "accept", "Cache-Control", "X-Requested-With", "X-API-Key", "Idempotency-Key", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(),
		metrics.PrometheusMiddleware(),
		middleware.Compression(),
		middleware.RequestLogger(),
		middleware.ErrorHandler(),
	)

	if cfg.RequestTimeout > 0 {
		router.Use(middleware.TimeoutWithDuration(cfg.RequestTimeout))
	}

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		router.Use(limiter.RateLimit())
	}
}

// registerInfrastructureRoutes registers health, metrics, and documentation
// routes.
func registerInfrastructureRoutes(router *gin.Engine, healthHandler *HealthHandler, cfg *RouterConfig) {
	healthHandler.Register(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger with optional basic auth
	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

// configureAPIMiddleware sets up middleware for the API group.
func configureAPIMiddleware(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.EnableIdempotency {
		idempotencyCfg := middleware.DefaultIdempotencyConfig()
		api.Use(middleware.Idempotency(idempotencyCfg))
	}

	if cfg.EnableAPIKeyAuth && len(cfg.APIKeys) > 0 {
		api.Use(middleware.APIKeyAuth(cfg.APIKeys))
	}
}

// registerDeliveryRoutes registers the public quoting and scheduling routes.
func registerDeliveryRoutes(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.Quotes == nil || cfg.Scheduler == nil {
		return
	}
	handler := NewDeliveryHandler(cfg.Quotes, cfg.Scheduler, cfg.Clock)

	delivery := api.Group("/delivery")
	delivery.GET("/quote", handler.Quote)
	delivery.POST("/minimum-order", handler.CheckMinimumOrder)
	delivery.POST("/earliest-date", handler.EarliestDate)
	delivery.GET("/slots/:date", handler.StartTimes)
	delivery.GET("/slots/:date/:start", handler.EndTimes)
	delivery.POST("/validate-slot", handler.ValidateSlot)
}

// registerCheckoutRoutes registers the public checkout workflow routes.
func registerCheckoutRoutes(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.Checkout == nil || cfg.Eligibility == nil {
		return
	}
	handler := NewCheckoutHandler(cfg.Checkout, cfg.Eligibility, cfg.Clock)

	checkout := api.Group("/checkout")
	checkout.POST("/eligibility", handler.Eligibility)
	checkout.POST("/sessions", handler.StartSession)
	checkout.GET("/sessions/:id", handler.GetSession)
	checkout.PUT("/sessions/:id/contact", handler.SubmitContact)
	checkout.PUT("/sessions/:id/window", handler.SubmitWindow)
	checkout.POST("/sessions/:id/back", handler.Back)
	checkout.POST("/sessions/:id/submit", handler.Submit)
}

// registerStaffRoutes registers JWT-protected staff order routes. The routes
// are omitted entirely when order persistence or the JWT secret is not
// configured.
func registerStaffRoutes(api *gin.RouterGroup, cfg *RouterConfig) {
	if cfg.Orders == nil || cfg.StaffJWTSecret == "" {
		return
	}
	handler := NewOrdersHandler(cfg.Orders)

	staff := api.Group("/staff")
	staff.Use(middleware.JWTAuth(cfg.StaffJWTSecret))

	// Per-staff rate limiting on top of the global IP limiter.
	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow)
		staff.Use(limiter.StaffRateLimit())
	}

	staff.GET("/orders", handler.List)
	staff.GET("/orders/:id", handler.Get)
	staff.PATCH("/orders/:id/status", handler.UpdateStatus)
}
