// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/lavalbakery/fulfillment-service/internal/repository"
)

type MockOrdersRepositoryInterface struct {
	mock.Mock
}

func (m *MockOrdersRepositoryInterface) Create(ctx context.Context, doc *repository.OrderDocument) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockOrdersRepositoryInterface) GetByID(ctx context.Context, id string) (*repository.OrderDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.OrderDocument), args.Error(1)
}

func (m *MockOrdersRepositoryInterface) List(ctx context.Context, limit int) ([]*repository.OrderDocument, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*repository.OrderDocument), args.Error(1)
}

func (m *MockOrdersRepositoryInterface) UpdateStatus(ctx context.Context, id string, status string) (*repository.OrderDocument, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.OrderDocument), args.Error(1)
}
