// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/lavalbakery/fulfillment-service/internal/circuitbreaker"
)

// OrdersRepositoryWithCircuitBreaker wraps OrdersRepository with circuit
// breaker protection so a struggling database fails fast instead of backing
// up checkout submissions.
type OrdersRepositoryWithCircuitBreaker struct {
	repo           *OrdersRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewOrdersRepositoryWithCircuitBreaker creates the protected wrapper.
func NewOrdersRepositoryWithCircuitBreaker(repo *OrdersRepository, cb *circuitbreaker.CircuitBreaker) *OrdersRepositoryWithCircuitBreaker {
	return &OrdersRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create inserts an order with circuit breaker protection. Order creation is
// never silently dropped; an open circuit surfaces as an error.
func (r *OrdersRepositoryWithCircuitBreaker) Create(ctx context.Context, doc *OrderDocument) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, doc)
	})
}

// GetByID returns one order with circuit breaker protection.
func (r *OrdersRepositoryWithCircuitBreaker) GetByID(ctx context.Context, id string) (*OrderDocument, error) {
	var result *OrderDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByID(ctx, id)
		return cbErr
	})
	return result, err
}

// List returns orders with circuit breaker protection.
func (r *OrdersRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]*OrderDocument, error) {
	var result []*OrderDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// UpdateStatus updates an order with circuit breaker protection.
func (r *OrdersRepositoryWithCircuitBreaker) UpdateStatus(ctx context.Context, id string, status string) (*OrderDocument, error) {
	var result *OrderDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.UpdateStatus(ctx, id, status)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *OrdersRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
