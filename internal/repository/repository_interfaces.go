// Package repository provides interfaces for repository operations.
package repository

import "context"

// OrdersRepositoryInterface defines the order persistence operations used by
// the service layer. Implemented by OrdersRepository and its circuit breaker
// wrapper; mocked in tests.
type OrdersRepositoryInterface interface {
	Create(ctx context.Context, doc *OrderDocument) error
	GetByID(ctx context.Context, id string) (*OrderDocument, error)
	List(ctx context.Context, limit int) ([]*OrderDocument, error)
	UpdateStatus(ctx context.Context, id string, status string) (*OrderDocument, error)
}
