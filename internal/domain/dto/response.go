package dto

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lavalbakery/fulfillment-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates missing or invalid authentication.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeForbidden indicates insufficient permissions.
	ErrCodeForbidden = "forbidden"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeConflict indicates a conflict with current state.
	ErrCodeConflict = "conflict"
	// ErrCodeTimeout indicates a request timeout.
	ErrCodeTimeout = "timeout"
	// ErrCodeNotServiceable indicates the postal code is outside every zone.
	ErrCodeNotServiceable = "zone_not_serviceable"
	// ErrCodeMinimumOrder indicates the cart is below the zone minimum.
	ErrCodeMinimumOrder = "minimum_order_not_met"
	// ErrCodeDateTooEarly indicates the chosen date precedes the earliest date.
	ErrCodeDateTooEarly = "date_too_early"
	// ErrCodeInvalidSlot indicates a malformed or unknown time slot.
	ErrCodeInvalidSlot = "invalid_time_slot"
	// ErrCodeInvalidTransition indicates an out-of-order checkout step.
	ErrCodeInvalidTransition = "invalid_transition"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response payload
	// Example: {"fee_amount": "15.00", "minimum_order_amount": "50.00", "zone_name": "Zone 1", "is_serviceable": true}
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2026-08-29T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error   string `json:"error" example:"minimum_order_not_met"`
	Message string `json:"message,omitempty" example:"Cart subtotal is below the zone minimum"`
	// Details contains additional error details (optional)
	// Example: {"minimum_order_amount": "50.00", "shortfall": "10.00"}
	Details   map[string]string `json:"details,omitempty"`
	RequestID string            `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time         `json:"timestamp" example:"2026-08-29T10:00:00Z"`
	TraceID   string            `json:"trace_id,omitempty" example:"trace-123"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// WithDetails adds structured details to the error response.
func (e ErrorResponse) WithDetails(details map[string]string) ErrorResponse {
	e.Details = details
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusForbidden:
		return ErrCodeForbidden
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusConflict:
		return ErrCodeConflict
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusGatewayTimeout, http.StatusRequestTimeout:
		return ErrCodeTimeout
	default:
		return ErrCodeInternal
	}
}

// QuoteResponse is the fee quote for a postal code.
// @Description Delivery fee quote
type QuoteResponse struct {
	FeeAmount          decimal.Decimal `json:"fee_amount" example:"15.00"`
	MinimumOrderAmount decimal.Decimal `json:"minimum_order_amount" example:"50.00"`
	ZoneName           string          `json:"zone_name" example:"Zone 1"`
	IsServiceable      bool            `json:"is_serviceable" example:"true"`
} // @name QuoteResponse

// QuoteResponseFromModel converts a domain quote to its wire form.
func QuoteResponseFromModel(q model.FulfillmentQuote) QuoteResponse {
	return QuoteResponse{
		FeeAmount:          q.FeeAmount,
		MinimumOrderAmount: q.MinimumOrderAmount,
		ZoneName:           q.ZoneName,
		IsServiceable:      q.IsServiceable,
	}
}

// MinimumOrderResponse reports whether a subtotal clears the zone minimum.
// @Description Minimum-order check result
type MinimumOrderResponse struct {
	IsSatisfied        bool            `json:"is_satisfied" example:"false"`
	MinimumOrderAmount decimal.Decimal `json:"minimum_order_amount" example:"50.00"`
	Shortfall          decimal.Decimal `json:"shortfall" example:"10.00"`
} // @name MinimumOrderResponse

// EarliestDateResponse carries the first selectable delivery date.
// @Description Earliest delivery date result
type EarliestDateResponse struct {
	EarliestDate string `json:"earliest_date" example:"2026-09-02"`
	// SlowestItems names the cart lines that drive the preparation window.
	SlowestItems []string `json:"slowest_items,omitempty" example:"Croissants (12)"`
} // @name EarliestDateResponse

// SlotsResponse lists selectable start times and, per start, end times.
// @Description Time slot catalog for a date
type SlotsResponse struct {
	Date       string   `json:"date" example:"2026-09-02"`
	StartTimes []string `json:"start_times"`
} // @name SlotsResponse

// EndTimesResponse lists valid end times for a chosen start.
// @Description End times for a start time
type EndTimesResponse struct {
	Date      string   `json:"date" example:"2026-09-02"`
	StartTime string   `json:"start_time" example:"10:00"`
	EndTimes  []string `json:"end_times"`
} // @name EndTimesResponse

// EligibilityResponse is the full eligibility decision for an attempt.
// @Description Fulfillment eligibility decision
type EligibilityResponse struct {
	Eligible     bool                  `json:"eligible" example:"true"`
	Quote        *QuoteResponse        `json:"quote,omitempty"`
	MinimumOrder *MinimumOrderResponse `json:"minimum_order,omitempty"`
	EarliestDate string                `json:"earliest_date,omitempty" example:"2026-09-02"`
} // @name EligibilityResponse

// SessionResponse is the wire form of a checkout session.
// @Description Checkout session state
type SessionResponse struct {
	ID           string                         `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	State        model.CheckoutState            `json:"state" swaggertype:"string" example:"collecting_delivery_window"`
	Contact      *model.ContactInfo             `json:"contact,omitempty"`
	DeliveryType string                         `json:"delivery_type,omitempty" example:"delivery"`
	PostalCode   string                         `json:"postal_code,omitempty" example:"H7X"`
	Quote        *QuoteResponse                 `json:"quote,omitempty"`
	Window       *model.DeliveryWindowSelection `json:"window,omitempty"`
} // @name SessionResponse

// SessionResponseFromModel converts a domain session to its wire form.
func SessionResponseFromModel(s *model.CheckoutSession) SessionResponse {
	resp := SessionResponse{
		ID:           s.ID,
		State:        s.State,
		Contact:      s.Contact,
		DeliveryType: string(s.DeliveryType),
		PostalCode:   s.PostalCode,
		Window:       s.Window,
	}
	if s.Quote != nil {
		q := QuoteResponseFromModel(*s.Quote)
		resp.Quote = &q
	}
	return resp
}

// OrderResponse is the wire form of a placed order.
// @Description A placed order
type OrderResponse struct {
	ID           string                        `json:"id" example:"66b1f0c2e4b0a1d2c3e4f5a6"`
	Number       string                        `json:"number" example:"550e8400-e29b-41d4-a716-446655440000"`
	Contact      model.ContactInfo             `json:"contact"`
	Items        []model.CartLineItem          `json:"items"`
	Subtotal     decimal.Decimal               `json:"subtotal" example:"62.50"`
	DeliveryType string                        `json:"delivery_type" example:"delivery"`
	PostalCode   string                        `json:"postal_code,omitempty" example:"H7X"`
	ZoneName     string                        `json:"zone_name,omitempty" example:"Zone 1"`
	DeliveryFee  decimal.Decimal               `json:"delivery_fee" example:"15.00"`
	Window       model.DeliveryWindowSelection `json:"window"`
	Status       string                        `json:"status" example:"pending_payment"`
	CreatedAt    time.Time                     `json:"created_at" example:"2026-08-29T10:00:00Z"`
	UpdatedAt    time.Time                     `json:"updated_at" example:"2026-08-29T10:00:00Z"`
} // @name OrderResponse

// OrderResponseFromModel converts a domain order to its wire form.
func OrderResponseFromModel(o *model.Order) OrderResponse {
	return OrderResponse{
		ID:           o.ID,
		Number:       o.Number,
		Contact:      o.Contact,
		Items:        o.Items,
		Subtotal:     o.Subtotal,
		DeliveryType: string(o.DeliveryType),
		PostalCode:   o.PostalCode,
		ZoneName:     o.ZoneName,
		DeliveryFee:  o.DeliveryFee,
		Window:       o.Window,
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}

// OrderListResponse wraps a page of orders.
// @Description A page of orders
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Count  int             `json:"count" example:"2"`
} // @name OrderListResponse

// OrderListResponseFromModel converts a slice of domain orders.
func OrderListResponseFromModel(orders []model.Order) OrderListResponse {
	out := make([]OrderResponse, len(orders))
	for i := range orders {
		out[i] = OrderResponseFromModel(&orders[i])
	}
	return OrderListResponse{Orders: out, Count: len(out)}
}
