// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/lavalbakery/fulfillment-service/config"
	"github.com/lavalbakery/fulfillment-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Initialize logger first (needed by other components)
	InitializeLogger(cfg.Logging)

	// Initialize database components (MongoDB repository, optional)
	dbComponents := InitializeDatabase(cfg.Database)

	// Initialize business services on top of the optional order store
	serviceComponents := InitializeServices(cfg.Schedule, dbComponents)

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return http.NewRouter(routerComponents.HealthHandler, routerComponents.Config)
}
