// Package app provides router initialization.
package app

import (
	"context"
	"time"

	"github.com/lavalbakery/fulfillment-service/config"
	"github.com/lavalbakery/fulfillment-service/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter builds the router configuration and health handler.
func InitializeRouter(services *ServiceComponents, db *DatabaseComponents, cfg config.Config) *RouterComponents {
	healthHandler := http.NewHealthHandler()

	if db != nil {
		healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return db.DB.HealthCheck(ctx)
		}))
		healthHandler.RegisterCircuitBreaker("mongodb-orders", db.OrdersCircuitBreaker)
	}

	routerConfig := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		RequestTimeout:    cfg.Server.RequestTimeout,
		APIKeys:           cfg.Auth.APIKeys,
		EnableAPIKeyAuth:  cfg.Auth.APIKeyEnabled,
		EnableIdempotency: cfg.Server.EnableIdempotency,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		StaffJWTSecret:    cfg.Auth.StaffJWTSecret,
		Quotes:            services.Quotes,
		Scheduler:         services.Scheduler,
		Eligibility:       services.Eligibility,
		Checkout:          services.Checkout,
		Orders:            services.Orders,
		Clock:             services.Clock,
	}

	return &RouterComponents{
		HealthHandler: healthHandler,
		Config:        routerConfig,
	}
}
