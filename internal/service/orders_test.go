package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lavalbakery/fulfillment-service/internal/domain/model"
	"github.com/lavalbakery/fulfillment-service/internal/mocks"
	"github.com/lavalbakery/fulfillment-service/internal/repository"
)

func testOrderDocument() *repository.OrderDocument {
	return &repository.OrderDocument{
		ID:     primitive.NewObjectID(),
		Number: "ord-123",
		Contact: model.ContactInfo{
			Name:  "Marie Tremblay",
			Email: "marie@example.com",
			Phone: "514-555-0101",
		},
		Items: []repository.OrderLineItemDocument{
			{ProductID: "prod-croissant-12", Name: "Croissants (12)", Quantity: 2, UnitPrice: "18.50", PreparationTimeHours: 24},
		},
		Subtotal:     "37",
		DeliveryType: "delivery",
		PostalCode:   "H7X",
		ZoneName:     "Zone 1",
		DeliveryFee:  "15",
		WindowDate:   "2026-09-01",
		WindowStart:  "10:00",
		WindowEnd:    "10:30",
		Status:       "pending_payment",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

// TestOrderService_NotConfigured tests the nil repository guard.
func TestOrderService_NotConfigured(t *testing.T) {
	svc := NewOrderService(nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, &model.Order{})
	assert.ErrorIs(t, err, ErrOrdersNotConfigured)

	_, err = svc.GetByID(ctx, "abc")
	assert.ErrorIs(t, err, ErrOrdersNotConfigured)

	_, err = svc.List(ctx, 10)
	assert.ErrorIs(t, err, ErrOrdersNotConfigured)

	_, err = svc.UpdateStatus(ctx, "abc", model.OrderStatusConfirmed)
	assert.ErrorIs(t, err, ErrOrdersNotConfigured)
}

// TestOrderService_Create tests order creation through the repository.
func TestOrderService_Create(t *testing.T) {
	repo := new(mocks.MockOrdersRepositoryInterface)
	svc := NewOrderService(repo)

	order := &model.Order{
		Number:       "ord-123",
		Contact:      model.ContactInfo{Name: "Marie Tremblay", Email: "marie@example.com", Phone: "514-555-0101"},
		Items:        []model.CartLineItem{{ProductID: "p", Name: "Croissants (12)", Quantity: 2, UnitPrice: decimal.RequireFromString("18.50"), PreparationTimeHours: 24}},
		Subtotal:     decimal.RequireFromString("37.00"),
		DeliveryType: model.DeliveryTypeDelivery,
		PostalCode:   "H7X",
		ZoneName:     "Zone 1",
		DeliveryFee:  decimal.RequireFromString("15.00"),
		Window:       model.DeliveryWindowSelection{Date: "2026-09-01", StartTime: "10:00", EndTime: "10:30"},
		Status:       model.OrderStatusPendingPayment,
	}

	repo.On("Create", mock.Anything, mock.AnythingOfType("*repository.OrderDocument")).
		Run(func(args mock.Arguments) {
			doc := args.Get(1).(*repository.OrderDocument)
			doc.ID = primitive.NewObjectID()
		}).
		Return(nil)

	created, err := svc.Create(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, "ord-123", created.Number)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.Subtotal.Equal(decimal.RequireFromString("37.00")))
	repo.AssertExpectations(t)
}

// TestOrderService_GetByID tests retrieval and round-trip conversion.
func TestOrderService_GetByID(t *testing.T) {
	repo := new(mocks.MockOrdersRepositoryInterface)
	svc := NewOrderService(repo)

	doc := testOrderDocument()
	repo.On("GetByID", mock.Anything, doc.ID.Hex()).Return(doc, nil)

	order, err := svc.GetByID(context.Background(), doc.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, doc.ID.Hex(), order.ID)
	assert.Equal(t, model.DeliveryTypeDelivery, order.DeliveryType)
	assert.True(t, order.DeliveryFee.Equal(decimal.RequireFromString("15.00")))
	assert.Equal(t, "10:30", order.Window.EndTime)
	repo.AssertExpectations(t)
}

// TestOrderService_GetByID_NotFound propagates the repository sentinel.
func TestOrderService_GetByID_NotFound(t *testing.T) {
	repo := new(mocks.MockOrdersRepositoryInterface)
	svc := NewOrderService(repo)

	repo.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrOrderNotFound)

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}

// TestOrderService_List tests listing with conversion.
func TestOrderService_List(t *testing.T) {
	repo := new(mocks.MockOrdersRepositoryInterface)
	svc := NewOrderService(repo)

	docs := []*repository.OrderDocument{testOrderDocument(), testOrderDocument()}
	repo.On("List", mock.Anything, 10).Return(docs, nil)

	orders, err := svc.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
	repo.AssertExpectations(t)
}

// TestOrderService_UpdateStatus tests status transitions.
func TestOrderService_UpdateStatus(t *testing.T) {
	t.Run("valid status", func(t *testing.T) {
		repo := new(mocks.MockOrdersRepositoryInterface)
		svc := NewOrderService(repo)

		doc := testOrderDocument()
		doc.Status = "confirmed"
		repo.On("UpdateStatus", mock.Anything, doc.ID.Hex(), "confirmed").Return(doc, nil)

		order, err := svc.UpdateStatus(context.Background(), doc.ID.Hex(), model.OrderStatusConfirmed)
		require.NoError(t, err)
		assert.Equal(t, model.OrderStatusConfirmed, order.Status)
		repo.AssertExpectations(t)
	})

	t.Run("unknown status never reaches the repository", func(t *testing.T) {
		repo := new(mocks.MockOrdersRepositoryInterface)
		svc := NewOrderService(repo)

		_, err := svc.UpdateStatus(context.Background(), "abc", model.OrderStatus("shipped"))
		require.Error(t, err)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		repo := new(mocks.MockOrdersRepositoryInterface)
		svc := NewOrderService(repo)

		dbErr := errors.New("db down")
		repo.On("UpdateStatus", mock.Anything, "abc", "cancelled").Return(nil, dbErr)

		_, err := svc.UpdateStatus(context.Background(), "abc", model.OrderStatusCancelled)
		assert.ErrorIs(t, err, dbErr)
	})
}
