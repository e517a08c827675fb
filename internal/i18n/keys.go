// Package i18n provides internationalization support for the fulfillment service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyAPIKeyRequired indicates that an API key is required.
	ErrKeyAPIKeyRequired = "error.api_key_required"
	// ErrKeyInvalidAPIKey indicates an invalid API key.
	ErrKeyInvalidAPIKey = "error.invalid_api_key"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Business condition translation keys. These map one-to-one to the
// fulfillment engine's user-correctable failure conditions.
const (
	// ErrKeyZoneNotServiceable: the postal code matches no delivery zone.
	ErrKeyZoneNotServiceable = "error.fulfillment.zone_not_serviceable"
	// ErrKeyMinimumOrderNotMet: the subtotal is below the zone minimum.
	ErrKeyMinimumOrderNotMet = "error.fulfillment.minimum_order_not_met"
	// ErrKeyDateTooEarly: the date precedes the earliest eligible date.
	ErrKeyDateTooEarly = "error.fulfillment.date_too_early"
	// ErrKeyInvalidTimeSlot: the slot is ill-ordered or not in the catalog.
	ErrKeyInvalidTimeSlot = "error.fulfillment.invalid_time_slot"
	// ErrKeySessionNotFound: no checkout session exists for the ID.
	ErrKeySessionNotFound = "error.checkout.session_not_found"
	// ErrKeyInvalidTransition: the step is not legal from the current state.
	ErrKeyInvalidTransition = "error.checkout.invalid_transition"
)
