package app

import (
	"github.com/lavalbakery/fulfillment-service/config"
	"github.com/lavalbakery/fulfillment-service/internal/logger"
)

// InitializeLogger sets up the global structured logger.
func InitializeLogger(cfg config.LoggingConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}
