// Package app provides database initialization and setup.
package app

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/lavalbakery/fulfillment-service/config"
	"github.com/lavalbakery/fulfillment-service/internal/circuitbreaker"
	"github.com/lavalbakery/fulfillment-service/internal/repository"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                   *repository.MongoDB
	OrdersRepo           repository.OrdersRepositoryInterface
	OrdersCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes the MongoDB connection and the orders
// repository. Returns nil if the database is disabled or the connection
// fails; the service then runs with checkout persistence off and the staff
// routes unregistered.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without order persistence")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	ordersCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-orders",
	})

	ordersRepo := repository.NewOrdersRepository(db)
	ordersRepoWithCB := repository.NewOrdersRepositoryWithCircuitBreaker(ordersRepo, ordersCB)

	return &DatabaseComponents{
		DB:                   db,
		OrdersRepo:           ordersRepoWithCB,
		OrdersCircuitBreaker: ordersCB,
	}
}

// Close releases database resources.
func (d *DatabaseComponents) Close(ctx context.Context) {
	if d == nil || d.DB == nil {
		return
	}
	if err := d.DB.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to disconnect from MongoDB")
	}
}
