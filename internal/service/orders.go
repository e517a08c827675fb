package service

import (
	"context"
	"errors"

	"github.com/lavalbakery/fulfillment-service/internal/domain/model"
	"github.com/lavalbakery/fulfillment-service/internal/repository"
)

// ErrOrdersNotConfigured is returned when order persistence is disabled.
var ErrOrdersNotConfigured = errors.New("order repository not configured")

// OrderService provides order persistence operations for checkout submission
// and staff review.
type OrderService interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	GetByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context, limit int) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
}

// OrderServiceImpl implements OrderService over the orders repository.
type OrderServiceImpl struct {
	repo repository.OrdersRepositoryInterface
}

// NewOrderService creates an order service. A nil repository yields a
// service whose operations all fail with ErrOrdersNotConfigured.
func NewOrderService(repo repository.OrdersRepositoryInterface) OrderService {
	return &OrderServiceImpl{repo: repo}
}

// Create stores a new order record.
func (s *OrderServiceImpl) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if s.repo == nil {
		return nil, ErrOrdersNotConfigured
	}
	doc := repository.OrderDocumentFromModel(order)
	if err := s.repo.Create(ctx, doc); err != nil {
		return nil, err
	}
	return doc.ToModel()
}

// GetByID returns one order.
func (s *OrderServiceImpl) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.repo == nil {
		return nil, ErrOrdersNotConfigured
	}
	doc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return doc.ToModel()
}

// List returns the newest orders first, up to limit.
func (s *OrderServiceImpl) List(ctx context.Context, limit int) ([]model.Order, error) {
	if s.repo == nil {
		return nil, ErrOrdersNotConfigured
	}
	docs, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	orders := make([]model.Order, 0, len(docs))
	for _, doc := range docs {
		order, err := doc.ToModel()
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, nil
}

// UpdateStatus transitions an order to a new lifecycle status.
func (s *OrderServiceImpl) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if s.repo == nil {
		return nil, ErrOrdersNotConfigured
	}
	if !status.Valid() {
		return nil, errors.New("unknown order status: " + string(status))
	}
	doc, err := s.repo.UpdateStatus(ctx, id, string(status))
	if err != nil {
		return nil, err
	}
	return doc.ToModel()
}
