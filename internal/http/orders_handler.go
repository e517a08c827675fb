package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lavalbakery/fulfillment-service/internal/domain/dto"
	"github.com/lavalbakery/fulfillment-service/internal/domain/model"
	"github.com/lavalbakery/fulfillment-service/internal/i18n"
	"github.com/lavalbakery/fulfillment-service/internal/repository"
	"github.com/lavalbakery/fulfillment-service/internal/service"
)

// OrdersHandler provides staff-facing HTTP handlers for order review.
type OrdersHandler struct {
	orders service.OrderService
}

// NewOrdersHandler creates a new OrdersHandler instance.
func NewOrdersHandler(orders service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orders}
}

// List handles GET /api/staff/orders requests.
//
// @Summary      List recent orders
// @Description  Returns the newest orders first, up to the limit query parameter.
// @Tags         Staff
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        limit query int false "Maximum orders to return" default(50)
// @Success      200 {object} dto.SuccessResponse{data=dto.OrderListResponse} "Orders"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure      503 {object} dto.ErrorResponse "Order store unavailable"
// @Security     BearerAuth
// @Router       /api/staff/orders [get]
func (h *OrdersHandler) List(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
			return
		}
		limit = parsed
	}

	orders, err := h.orders.List(c.Request.Context(), limit)
	if err != nil {
		h.respondOrderError(builder, err)
		return
	}

	builder.SuccessOK(dto.OrderListResponseFromModel(orders))
}

// Get handles GET /api/staff/orders/:id requests.
//
// @Summary      Fetch one order
// @Tags         Staff
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        id path string true "Order ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.OrderResponse} "Order"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Order not found"
// @Security     BearerAuth
// @Router       /api/staff/orders/{id} [get]
func (h *OrdersHandler) Get(c *gin.Context) {
	builder := NewResponseBuilder(c)

	order, err := h.orders.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondOrderError(builder, err)
		return
	}

	builder.SuccessOK(dto.OrderResponseFromModel(order))
}

// UpdateStatus handles PATCH /api/staff/orders/:id/status requests.
//
// @Summary      Update order status
// @Description  Transitions the order to a new lifecycle status after payment confirmation, completion, or cancellation.
// @Tags         Staff
// @Accept       json
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Param        id path string true "Order ID"
// @Param        request body dto.UpdateOrderStatusRequest true "New status"
// @Success      200 {object} dto.SuccessResponse{data=dto.OrderResponse} "Updated order"
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Failure      401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure      404 {object} dto.ErrorResponse "Order not found"
// @Security     BearerAuth
// @Router       /api/staff/orders/{id}/status [patch]
func (h *OrdersHandler) UpdateStatus(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.UpdateOrderStatusRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), c.Param("id"), model.OrderStatus(req.Status))
	if err != nil {
		h.respondOrderError(builder, err)
		return
	}

	builder.SuccessOK(dto.OrderResponseFromModel(order))
}

// respondOrderError maps persistence errors onto HTTP responses.
func (h *OrdersHandler) respondOrderError(builder *ResponseBuilder, err error) {
	switch {
	case errors.Is(err, repository.ErrOrderNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, err)
	case errors.Is(err, service.ErrOrdersNotConfigured):
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}
