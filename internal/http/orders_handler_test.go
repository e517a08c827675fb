package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lavalbakery/fulfillment-service/internal/domain/model"
	"github.com/lavalbakery/fulfillment-service/internal/middleware"
	"github.com/lavalbakery/fulfillment-service/internal/mocks"
	"github.com/lavalbakery/fulfillment-service/internal/repository"
)

const staffTestSecret = "staff-test-secret"

func newStaffRouter(t *testing.T, orders *mocks.MockOrderService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := DefaultRouterConfig()
	cfg.RateLimit = 0
	cfg.Orders = orders
	cfg.StaffJWTSecret = staffTestSecret

	return NewRouter(NewHealthHandler(), cfg)
}

func staffToken(t *testing.T, secret string) string {
	t.Helper()
	claims := middleware.StaffClaims{
		StaffID: "staff-1",
		Email:   "baker@example.com",
		Name:    "Jean Fournier",
		Roles:   []string{"staff"},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func doStaffRequest(t *testing.T, router *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func staffTestOrder() *model.Order {
	return &model.Order{
		ID:           "66b1f0c2e4b0a1d2c3e4f5a6",
		Number:       "ord-123",
		Contact:      model.ContactInfo{Name: "Marie Tremblay", Email: "marie@example.com", Phone: "514-555-0101"},
		Items:        []model.CartLineItem{{ProductID: "p", Name: "Croissants (12)", Quantity: 3, UnitPrice: decimal.RequireFromString("18.50"), PreparationTimeHours: 24}},
		Subtotal:     decimal.RequireFromString("55.50"),
		DeliveryType: model.DeliveryTypeDelivery,
		PostalCode:   "H7X",
		ZoneName:     "Zone 1",
		DeliveryFee:  decimal.RequireFromString("15.00"),
		Window:       model.DeliveryWindowSelection{Date: "2026-09-01", StartTime: "10:00", EndTime: "10:30"},
		Status:       model.OrderStatusPendingPayment,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

// TestOrdersHandler_Auth tests the JWT gate on staff routes.
func TestOrdersHandler_Auth(t *testing.T) {
	orders := new(mocks.MockOrderService)
	router := newStaffRouter(t, orders)

	t.Run("missing token", func(t *testing.T) {
		w := doStaffRequest(t, router, http.MethodGet, "/api/staff/orders", "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with the wrong secret", func(t *testing.T) {
		w := doStaffRequest(t, router, http.MethodGet, "/api/staff/orders", "", staffToken(t, "other-secret"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed bearer header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/staff/orders", nil)
		req.Header.Set("Authorization", "Token abc")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	orders.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

// TestOrdersHandler_List tests order listing.
func TestOrdersHandler_List(t *testing.T) {
	t.Run("lists orders", func(t *testing.T) {
		orders := new(mocks.MockOrderService)
		orders.On("List", mock.Anything, 0).Return([]model.Order{*staffTestOrder()}, nil)
		router := newStaffRouter(t, orders)

		w := doStaffRequest(t, router, http.MethodGet, "/api/staff/orders", "", staffToken(t, staffTestSecret))
		require.Equal(t, http.StatusOK, w.Code)

		data := decodeData(t, w)
		assert.Equal(t, float64(1), data["count"])
		orders.AssertExpectations(t)
	})

	t.Run("limit query is forwarded", func(t *testing.T) {
		orders := new(mocks.MockOrderService)
		orders.On("List", mock.Anything, 5).Return([]model.Order{}, nil)
		router := newStaffRouter(t, orders)

		w := doStaffRequest(t, router, http.MethodGet, "/api/staff/orders?limit=5", "", staffToken(t, staffTestSecret))
		require.Equal(t, http.StatusOK, w.Code)
		orders.AssertExpectations(t)
	})

	t.Run("negative limit rejected", func(t *testing.T) {
		orders := new(mocks.MockOrderService)
		router := newStaffRouter(t, orders)

		w := doStaffRequest(t, router, http.MethodGet, "/api/staff/orders?limit=-1", "", staffToken(t, staffTestSecret))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		orders.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}

// TestOrdersHandler_Get tests single order retrieval.
func TestOrdersHandler_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		order := staffTestOrder()
		orders := new(mocks.MockOrderService)
		orders.On("GetByID", mock.Anything, order.ID).Return(order, nil)
		router := newStaffRouter(t, orders)

		w := doStaffRequest(t, router, http.MethodGet, "/api/staff/orders/"+order.ID, "", staffToken(t, staffTestSecret))
		require.Equal(t, http.StatusOK, w.Code)

		data := decodeData(t, w)
		assert.Equal(t, "ord-123", data["number"])
		assert.Equal(t, "pending_payment", data["status"])
	})

	t.Run("not found", func(t *testing.T) {
		orders := new(mocks.MockOrderService)
		orders.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrOrderNotFound)
		router := newStaffRouter(t, orders)

		w := doStaffRequest(t, router, http.MethodGet, "/api/staff/orders/missing", "", staffToken(t, staffTestSecret))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestOrdersHandler_UpdateStatus tests the status transition route.
func TestOrdersHandler_UpdateStatus(t *testing.T) {
	t.Run("confirms an order", func(t *testing.T) {
		order := staffTestOrder()
		order.Status = model.OrderStatusConfirmed
		orders := new(mocks.MockOrderService)
		orders.On("UpdateStatus", mock.Anything, order.ID, model.OrderStatusConfirmed).Return(order, nil)
		router := newStaffRouter(t, orders)

		w := doStaffRequest(t, router, http.MethodPatch, "/api/staff/orders/"+order.ID+"/status",
			`{"status":"confirmed"}`, staffToken(t, staffTestSecret))
		require.Equal(t, http.StatusOK, w.Code)

		data := decodeData(t, w)
		assert.Equal(t, "confirmed", data["status"])
		orders.AssertExpectations(t)
	})

	t.Run("missing body rejected", func(t *testing.T) {
		orders := new(mocks.MockOrderService)
		router := newStaffRouter(t, orders)

		w := doStaffRequest(t, router, http.MethodPatch, "/api/staff/orders/abc/status", "", staffToken(t, staffTestSecret))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
