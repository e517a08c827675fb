package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lavalbakery/fulfillment-service/internal/domain/dto"
	"github.com/lavalbakery/fulfillment-service/internal/i18n"
	"github.com/lavalbakery/fulfillment-service/internal/metrics"
	"github.com/lavalbakery/fulfillment-service/internal/service"
)

// DeliveryHandler provides HTTP handlers for zone quoting and scheduling
// routes. These endpoints are advisory: the storefront uses them to render
// fees and slot pickers, while checkout re-validates everything at
// submission time.
type DeliveryHandler struct {
	quotes    service.QuoteService
	scheduler service.Scheduler
	clock     service.Clock
}

// NewDeliveryHandler creates a new DeliveryHandler instance. A nil clock
// falls back to the wall clock.
func NewDeliveryHandler(quotes service.QuoteService, scheduler service.Scheduler, clock service.Clock) *DeliveryHandler {
	if clock == nil {
		clock = time.Now
	}
	return &DeliveryHandler{quotes: quotes, scheduler: scheduler, clock: clock}
}

// Quote handles GET /api/delivery/quote requests.
//
// @Summary      Quote delivery fee for a postal code
// @Description  Resolves the postal code to a delivery zone and returns the fee and minimum order amount. An unrecognized postal code returns a quote with is_serviceable false rather than an error.
// @Tags         Delivery
// @Produce      json
// @Param        postal_code query string true "Customer postal code" example("H7X 1A1")
// @Success      200 {object} dto.SuccessResponse{data=dto.QuoteResponse} "Fee quote"
// @Failure      400 {object} dto.ErrorResponse "Missing postal code"
// @Failure      429 {object} dto.ErrorResponse "Too many requests"
// @Router       /api/delivery/quote [get]
func (h *DeliveryHandler) Quote(c *gin.Context) {
	builder := NewResponseBuilder(c)

	postalCode := c.Query("postal_code")
	if postalCode == "" {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, nil)
		return
	}

	quote := h.quotes.Quote(postalCode)
	metrics.RecordQuote(quote.ZoneName, quote.IsServiceable)

	builder.SuccessOK(dto.QuoteResponseFromModel(quote))
}

// CheckMinimumOrder handles POST /api/delivery/minimum-order requests.
//
// @Summary      Check a subtotal against the zone minimum
// @Description  Reports whether a cart subtotal meets the minimum order amount for the postal code's zone, including the exact shortfall when it does not. Unserviceable postal codes report unsatisfied with zero amounts.
// @Tags         Delivery
// @Accept       json
// @Produce      json
// @Param        request body dto.MinimumOrderRequest true "Postal code and subtotal"
// @Success      200 {object} dto.SuccessResponse{data=dto.MinimumOrderResponse} "Check result"
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Router       /api/delivery/minimum-order [post]
func (h *DeliveryHandler) CheckMinimumOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.MinimumOrderRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	check := h.quotes.CheckMinimumOrder(req.PostalCode, req.Subtotal)
	builder.SuccessOK(dto.MinimumOrderResponse{
		IsSatisfied:        check.IsSatisfied,
		MinimumOrderAmount: check.MinimumOrderAmount,
		Shortfall:          check.Shortfall,
	})
}

// EarliestDate handles POST /api/delivery/earliest-date requests.
//
// @Summary      Earliest selectable delivery date for a cart
// @Description  Computes the first delivery date that honors every item's preparation time, the noon ordering cutoff, and the evening handoff rule. Also names the items that drive the window so the storefront can explain the date.
// @Tags         Delivery
// @Accept       json
// @Produce      json
// @Param        request body dto.EarliestDateRequest true "Cart items"
// @Success      200 {object} dto.SuccessResponse{data=dto.EarliestDateResponse} "Earliest date"
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Router       /api/delivery/earliest-date [post]
func (h *DeliveryHandler) EarliestDate(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.EarliestDateRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	items := dto.CartItemsToModel(req.Items)
	earliest := h.scheduler.EarliestDate(items, h.clock())

	builder.SuccessOK(dto.EarliestDateResponse{
		EarliestDate: earliest.Format(service.DateLayout),
		SlowestItems: h.scheduler.SlowestItems(items),
	})
}

// StartTimes handles GET /api/delivery/slots/:date requests.
//
// @Summary      List start times for a date
// @Description  Returns the ordered permissible window start times for the calendar date. Weekends offer hour slots in the morning; weekdays extend into the midday half-hour grid.
// @Tags         Delivery
// @Produce      json
// @Param        date path string true "Delivery date (YYYY-MM-DD)" example("2026-09-02")
// @Success      200 {object} dto.SuccessResponse{data=dto.SlotsResponse} "Start times"
// @Failure      400 {object} dto.ErrorResponse "Malformed date"
// @Router       /api/delivery/slots/{date} [get]
func (h *DeliveryHandler) StartTimes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	date, err := time.Parse(service.DateLayout, c.Param("date"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	builder.SuccessOK(dto.SlotsResponse{
		Date:       date.Format(service.DateLayout),
		StartTimes: h.scheduler.StartTimes(date),
	})
}

// EndTimes handles GET /api/delivery/slots/:date/:start requests.
//
// @Summary      List end times for a start time
// @Description  Returns the permissible window end times for the chosen start on the date. A start with no offerings yields an empty list.
// @Tags         Delivery
// @Produce      json
// @Param        date path string true "Delivery date (YYYY-MM-DD)" example("2026-09-02")
// @Param        start path string true "Window start time (HH:MM)" example("10:00")
// @Success      200 {object} dto.SuccessResponse{data=dto.EndTimesResponse} "End times"
// @Failure      400 {object} dto.ErrorResponse "Malformed date"
// @Router       /api/delivery/slots/{date}/{start} [get]
func (h *DeliveryHandler) EndTimes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	date, err := time.Parse(service.DateLayout, c.Param("date"))
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}
	startTime := c.Param("start")

	builder.SuccessOK(dto.EndTimesResponse{
		Date:      date.Format(service.DateLayout),
		StartTime: startTime,
		EndTimes:  h.scheduler.EndTimes(date, startTime),
	})
}

// ValidateSlot handles POST /api/delivery/validate-slot requests.
//
// @Summary      Validate a time slot pair
// @Description  Confirms the start and end form a well-ordered window. Times are zero-padded HH:MM within one day.
// @Tags         Delivery
// @Accept       json
// @Produce      json
// @Param        request body dto.ValidateSlotRequest true "Slot to validate"
// @Success      200 {object} dto.SuccessResponse "Slot is valid"
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Failure      422 {object} dto.ErrorResponse "Ill-ordered slot"
// @Router       /api/delivery/validate-slot [post]
func (h *DeliveryHandler) ValidateSlot(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.ValidateSlotRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := h.scheduler.ValidateSlot(req.StartTime, req.EndTime); err != nil {
		respondServiceError(builder, err)
		return
	}

	builder.SuccessOK(gin.H{"valid": true})
}
