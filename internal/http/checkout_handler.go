package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lavalbakery/fulfillment-service/internal/domain/dto"
	"github.com/lavalbakery/fulfillment-service/internal/domain/model"
	"github.com/lavalbakery/fulfillment-service/internal/i18n"
	"github.com/lavalbakery/fulfillment-service/internal/metrics"
	"github.com/lavalbakery/fulfillment-service/internal/service"
)

// CheckoutHandler provides HTTP handlers for the checkout workflow. Each
// step endpoint maps to one state transition; the service rejects
// out-of-order submissions.
type CheckoutHandler struct {
	checkout    service.CheckoutService
	eligibility service.EligibilityService
	clock       service.Clock
}

// NewCheckoutHandler creates a new CheckoutHandler instance. A nil clock
// falls back to the wall clock.
func NewCheckoutHandler(checkout service.CheckoutService, eligibility service.EligibilityService, clock service.Clock) *CheckoutHandler {
	if clock == nil {
		clock = time.Now
	}
	return &CheckoutHandler{checkout: checkout, eligibility: eligibility, clock: clock}
}

// Eligibility handles POST /api/checkout/eligibility requests.
//
// @Summary      Full fulfillment eligibility decision
// @Description  Evaluates one checkout attempt in a single call: zone serviceability, minimum order, preparation window, and slot validity. The decision is computed against the current instant, so a result near the noon cutoff can change between calls.
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        request body dto.EligibilityRequest true "Attempt to evaluate"
// @Success      200 {object} dto.SuccessResponse{data=dto.EligibilityResponse} "Decision"
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Failure      422 {object} dto.ErrorResponse "Attempt is not eligible"
// @Router       /api/checkout/eligibility [post]
func (h *CheckoutHandler) Eligibility(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.EligibilityRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	decision, err := h.eligibility.Decide(service.EligibilityInput{
		DeliveryType: model.DeliveryType(req.DeliveryType),
		PostalCode:   req.PostalCode,
		Items:        dto.CartItemsToModel(req.Items),
		Selection: model.DeliveryWindowSelection{
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		},
		Now: h.clock(),
	})
	if err != nil {
		metrics.RecordEligibilityDecision("rejected")
		respondServiceError(builder, err)
		return
	}

	metrics.RecordEligibilityDecision("eligible")
	builder.SuccessOK(eligibilityResponse(decision))
}

// StartSession handles POST /api/checkout/sessions requests.
//
// @Summary      Open a checkout session
// @Description  Snapshots the cart and opens a session in the contact collection step.
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.StartSessionRequest true "Cart snapshot"
// @Success      201 {object} dto.SuccessResponse{data=dto.SessionResponse} "New session"
// @Failure      400 {object} dto.ErrorResponse "Invalid request body or empty cart"
// @Router       /api/checkout/sessions [post]
func (h *CheckoutHandler) StartSession(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.StartSessionRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	session, err := h.checkout.StartSession(dto.CartItemsToModel(req.Items))
	if err != nil {
		metrics.RecordCheckoutTransition("start", "rejected")
		respondServiceError(builder, err)
		return
	}

	metrics.RecordCheckoutTransition("start", "ok")
	builder.SuccessCreated(dto.SessionResponseFromModel(session))
}

// GetSession handles GET /api/checkout/sessions/:id requests.
//
// @Summary      Fetch a checkout session
// @Tags         Checkout
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.SessionResponse} "Session state"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Router       /api/checkout/sessions/{id} [get]
func (h *CheckoutHandler) GetSession(c *gin.Context) {
	builder := NewResponseBuilder(c)

	session, err := h.checkout.GetSession(c.Param("id"))
	if err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(dto.SessionResponseFromModel(session))
}

// SubmitContact handles PUT /api/checkout/sessions/:id/contact requests.
//
// @Summary      Submit the contact step
// @Description  Records contact details and the delivery type. Delivery orders are checked for zone serviceability and the minimum order amount before the session advances to window collection.
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body dto.ContactStepRequest true "Contact details"
// @Success      200 {object} dto.SuccessResponse{data=dto.SessionResponse} "Advanced session"
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Failure      409 {object} dto.ErrorResponse "Step out of order"
// @Failure      422 {object} dto.ErrorResponse "Zone or minimum order check failed"
// @Router       /api/checkout/sessions/{id}/contact [put]
func (h *CheckoutHandler) SubmitContact(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.ContactStepRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	session, err := h.checkout.SubmitContact(c.Param("id"), model.ContactInfo{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}, model.DeliveryType(req.DeliveryType), req.PostalCode)
	if err != nil {
		metrics.RecordCheckoutTransition("contact", "rejected")
		respondServiceError(builder, err)
		return
	}

	metrics.RecordCheckoutTransition("contact", "ok")
	builder.SuccessOK(dto.SessionResponseFromModel(session))
}

// SubmitWindow handles PUT /api/checkout/sessions/:id/window requests.
//
// @Summary      Submit the delivery window step
// @Description  Validates the selected date and slot against the full eligibility decision and advances the session to payment collection.
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        id path string true "Session ID"
// @Param        request body dto.WindowStepRequest true "Window selection"
// @Success      200 {object} dto.SuccessResponse{data=dto.SessionResponse} "Advanced session"
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Failure      409 {object} dto.ErrorResponse "Step out of order"
// @Failure      422 {object} dto.ErrorResponse "Date or slot check failed"
// @Router       /api/checkout/sessions/{id}/window [put]
func (h *CheckoutHandler) SubmitWindow(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.WindowStepRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	session, err := h.checkout.SubmitWindow(c.Param("id"), model.DeliveryWindowSelection{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		metrics.RecordCheckoutTransition("window", "rejected")
		respondServiceError(builder, err)
		return
	}

	metrics.RecordCheckoutTransition("window", "ok")
	builder.SuccessOK(dto.SessionResponseFromModel(session))
}

// Back handles POST /api/checkout/sessions/:id/back requests.
//
// @Summary      Step back in checkout
// @Description  Re-enters the prior step without discarding previously entered data. The first step has nowhere to go back to.
// @Tags         Checkout
// @Produce      json
// @Param        id path string true "Session ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.SessionResponse} "Session in prior step"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Failure      409 {object} dto.ErrorResponse "No prior step"
// @Router       /api/checkout/sessions/{id}/back [post]
func (h *CheckoutHandler) Back(c *gin.Context) {
	builder := NewResponseBuilder(c)

	session, err := h.checkout.Back(c.Param("id"))
	if err != nil {
		metrics.RecordCheckoutTransition("back", "rejected")
		respondServiceError(builder, err)
		return
	}

	metrics.RecordCheckoutTransition("back", "ok")
	builder.SuccessOK(dto.SessionResponseFromModel(session))
}

// Submit handles POST /api/checkout/sessions/:id/submit requests.
//
// @Summary      Submit checkout for payment
// @Description  Finalizes the session into an order record in pending_payment status. Payment capture itself happens with an external processor. Supports idempotency via the Idempotency-Key header so a double-clicked submit does not create two orders.
// @Tags         Checkout
// @Produce      json
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        id path string true "Session ID"
// @Success      201 {object} dto.SuccessResponse{data=dto.OrderResponse} "Placed order"
// @Failure      404 {object} dto.ErrorResponse "Session not found"
// @Failure      409 {object} dto.ErrorResponse "Session is not ready for payment"
// @Failure      500 {object} dto.ErrorResponse "Order could not be stored"
// @Router       /api/checkout/sessions/{id}/submit [post]
func (h *CheckoutHandler) Submit(c *gin.Context) {
	builder := NewResponseBuilder(c)

	order, err := h.checkout.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		metrics.RecordCheckoutTransition("submit", "rejected")
		respondServiceError(builder, err)
		return
	}

	metrics.RecordCheckoutTransition("submit", "ok")
	metrics.RecordOrderCreated(string(order.DeliveryType))
	builder.SuccessCreated(dto.OrderResponseFromModel(order))
}

// eligibilityResponse converts a service decision to its wire form.
func eligibilityResponse(decision service.EligibilityDecision) dto.EligibilityResponse {
	resp := dto.EligibilityResponse{
		Eligible:     decision.Eligible,
		EarliestDate: decision.EarliestDate,
	}
	if decision.Quote != nil {
		q := dto.QuoteResponseFromModel(*decision.Quote)
		resp.Quote = &q
	}
	if decision.MinimumOrder != nil {
		resp.MinimumOrder = &dto.MinimumOrderResponse{
			IsSatisfied:        decision.MinimumOrder.IsSatisfied,
			MinimumOrderAmount: decision.MinimumOrder.MinimumOrderAmount,
			Shortfall:          decision.MinimumOrder.Shortfall,
		}
	}
	return resp
}
